package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Source column names in the lubricant-analysis sheet
const (
	ColNavitec     = "Navitec"
	ColCyl         = "Cyl"
	ColDateSample  = "DateSample"
	ColVesselName  = "VesselName"
	ColIMO         = "IMO"
	ColEngineMake  = "EngineMake"
	ColEngineType  = "EngineType"
	ColOwner       = "Owner"
	ColBN          = "BN_"
	ColIron        = "Iron_"
	ColPQIndex     = "PQ-Index_"
	ColChromium    = "Chromium"
	ColNickel      = "Nickel"
	ColVanadium    = "Vanadium"
	ColFeedRate    = "FeedRate"
	ColEngineLoad  = "EngineLoad"
	ColFOSulphur   = "FOSulphur"
	ColFOCategory  = "FOCategory"
	ColCatfine     = "Catfine"
	ColLOinSample  = "LOinSample"
	ColWater       = "Water"
	ColCylinderOil = "CylinderOil"
	ColBNLevel     = "BNLevel"
)

// NumericColumns are coerced to float-or-absent during normalization
var NumericColumns = []string{
	ColBN, ColIron, ColPQIndex, ColChromium,
	ColFeedRate, ColEngineLoad, ColFOSulphur, ColWater,
}

// FillColumns are the only columns the imputer ever fills
var FillColumns = []string{ColBN, ColIron, ColPQIndex, ColChromium}

// RawRow is one spreadsheet row keyed by header name
type RawRow map[string]Value

// Sample is a normalized lubricant-analysis record for one cylinder on one date
type Sample struct {
	Navitec Value
	Cyl     Value
	// DateSample is YYYY-MM-DD for native date cells, the cell's string form
	// otherwise, and nil when the cell was empty.
	DateSample *string
	// Numbers holds the designated numeric columns; a nil entry is absent.
	Numbers map[string]*float64
	// Fields holds every other column untouched.
	Fields map[string]Value
	// Imputed lists the columns whose value was synthesized, in fill order.
	Imputed []string
}

// NewSample returns an empty sample ready for population
func NewSample() *Sample {
	return &Sample{
		Numbers: make(map[string]*float64),
		Fields:  make(map[string]Value),
	}
}

// Date returns the sample date and whether it is present
func (s *Sample) Date() (string, bool) {
	if s.DateSample == nil {
		return "", false
	}
	return *s.DateSample, true
}

// Number returns the designated numeric column, nil when absent
func (s *Sample) Number(col string) *float64 {
	return s.Numbers[col]
}

// SetNumber stores a value for a designated numeric column
func (s *Sample) SetNumber(col string, v float64) {
	s.Numbers[col] = &v
}

// Field returns a passthrough column, null when the column is missing
func (s *Sample) Field(col string) Value {
	return s.Fields[col]
}

// MarkImputed records that col was synthesized for this sample
func (s *Sample) MarkImputed(col string) {
	s.Imputed = append(s.Imputed, col)
}

// VesselGroup holds one vessel's descriptive metadata and its cylinder buckets.
// The metadata comes from the first sample seen for the vessel.
type VesselGroup struct {
	VesselName Value
	IMO        Value
	EngineMake Value
	EngineType Value
	Owner      Value
	Cyls       *orderedmap.OrderedMap[string, []*Sample]
}

// NewVesselGroup captures the vessel metadata carried by s
func NewVesselGroup(s *Sample) *VesselGroup {
	return &VesselGroup{
		VesselName: s.Field(ColVesselName),
		IMO:        s.Field(ColIMO),
		EngineMake: s.Field(ColEngineMake),
		EngineType: s.Field(ColEngineType),
		Owner:      s.Field(ColOwner),
		Cyls:       orderedmap.New[string, []*Sample](),
	}
}

// Fleet maps vessel id to its group in first-seen order
type Fleet struct {
	Vessels *orderedmap.OrderedMap[string, *VesselGroup]
}

// NewFleet returns an empty fleet accumulator
func NewFleet() *Fleet {
	return &Fleet{Vessels: orderedmap.New[string, *VesselGroup]()}
}
