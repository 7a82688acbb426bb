package domain

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SeriesPoint is the narrow per-sample record consumed by the front-end
type SeriesPoint struct {
	Date       string   `json:"date"`
	BN         *float64 `json:"BN"`
	Iron       *float64 `json:"Iron"`
	PQ         *float64 `json:"PQ"`
	Cr         *float64 `json:"Cr"`
	Ni         Value    `json:"Ni"`
	V          Value    `json:"V"`
	FeedRate   *float64 `json:"FeedRate"`
	EngineLoad *float64 `json:"EngineLoad"`
	FOSulphur  *float64 `json:"FOSulphur"`
	FOCategory Value    `json:"FOCategory"`
	Catfine    Value    `json:"Catfine"`
	LOinSample Value    `json:"LOinSample"`
	Water      *float64 `json:"Water"`
	CylOil     Value    `json:"CylOil"`
	BNLevel    Value    `json:"BNLevel"`
	Imputed    []string `json:"imputed"`
}

// VesselSeries is one vessel in the output artifact
type VesselSeries struct {
	VesselName Value                                          `json:"VesselName"`
	IMO        Value                                          `json:"IMO"`
	EngineMake Value                                          `json:"EngineMake"`
	EngineType Value                                          `json:"EngineType"`
	Owner      Value                                          `json:"Owner"`
	Cyls       *orderedmap.OrderedMap[string, []SeriesPoint] `json:"cyls"`
}

// MarshalJSON writes the cylinders in first-seen order
func (v *VesselSeries) MarshalJSON() ([]byte, error) {
	cyls, err := marshalOrdered(v.Cyls)
	if err != nil {
		return nil, err
	}
	return marshalRaw(struct {
		VesselName Value           `json:"VesselName"`
		IMO        Value           `json:"IMO"`
		EngineMake Value           `json:"EngineMake"`
		EngineType Value           `json:"EngineType"`
		Owner      Value           `json:"Owner"`
		Cyls       json.RawMessage `json:"cyls"`
	}{v.VesselName, v.IMO, v.EngineMake, v.EngineType, v.Owner, cyls})
}

// Points returns the number of series points across all cylinders
func (v *VesselSeries) Points() int {
	n := 0
	for pair := v.Cyls.Oldest(); pair != nil; pair = pair.Next() {
		n += len(pair.Value)
	}
	return n
}

// Artifact is the complete vessel -> cylinder -> series tree
type Artifact struct {
	Vessels *orderedmap.OrderedMap[string, *VesselSeries]
}

// NewArtifact returns an empty artifact
func NewArtifact() *Artifact {
	return &Artifact{Vessels: orderedmap.New[string, *VesselSeries]()}
}

// TotalPoints returns the number of series points in the artifact
func (a *Artifact) TotalPoints() int {
	n := 0
	for pair := a.Vessels.Oldest(); pair != nil; pair = pair.Next() {
		n += pair.Value.Points()
	}
	return n
}

// MarshalJSON writes the vessel map in first-seen order
func (a *Artifact) MarshalJSON() ([]byte, error) {
	return marshalOrdered(a.Vessels)
}
