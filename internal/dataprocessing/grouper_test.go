package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lemcli/pkg/contracts/domain"
)

// newSample builds a normalized sample for tests. bn may be nil.
func newSample(vessel, cyl, date string, bn *float64) *domain.Sample {
	s := domain.NewSample()
	s.Navitec = domain.StringValue(vessel)
	s.Cyl = domain.StringValue(cyl)
	if date != "" {
		s.DateSample = &date
	}
	for _, col := range domain.NumericColumns {
		s.Numbers[col] = nil
	}
	s.Numbers[domain.ColBN] = bn
	return s
}

func vesselKeys(f *domain.Fleet) []string {
	var out []string
	for p := f.Vessels.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

func cylKeys(g *domain.VesselGroup) []string {
	var out []string
	for p := g.Cyls.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

func TestGroup_FirstSeenOrder(t *testing.T) {
	samples := []*domain.Sample{
		newSample("B", "2", "2024-03-01", nil),
		newSample("A", "1", "2024-01-01", nil),
		newSample("B", "1", "2024-02-01", nil),
		newSample("B", "2", "2024-01-15", nil),
	}

	fleet := Group(samples)

	assert.Equal(t, []string{"B", "A"}, vesselKeys(fleet))

	b, ok := fleet.Vessels.Get("B")
	require.True(t, ok)
	assert.Equal(t, []string{"2", "1"}, cylKeys(b))

	bucket, _ := b.Cyls.Get("2")
	require.Len(t, bucket, 2)
	assert.Same(t, samples[0], bucket[0], "bucket keeps input order")
	assert.Same(t, samples[3], bucket[1])
}

func TestFold_MetadataFromFirstSample(t *testing.T) {
	first := newSample("V1", "1", "2024-01-01", nil)
	first.Fields[domain.ColVesselName] = domain.StringValue("Aurora")
	first.Fields[domain.ColEngineMake] = domain.StringValue("MAN")

	later := newSample("V1", "2", "2024-01-02", nil)
	later.Fields[domain.ColVesselName] = domain.StringValue("Renamed")
	later.Fields[domain.ColOwner] = domain.StringValue("Owner Co")

	var fleet *domain.Fleet
	fleet = Fold(fleet, first)
	fleet = Fold(fleet, later)

	g, ok := fleet.Vessels.Get("V1")
	require.True(t, ok)
	assert.Equal(t, domain.StringValue("Aurora"), g.VesselName)
	assert.Equal(t, domain.StringValue("MAN"), g.EngineMake)
	assert.True(t, g.Owner.IsNull(), "later samples never update metadata")
	assert.Equal(t, 2, g.Cyls.Len())
}

func TestGroup_NumericAndNullKeys(t *testing.T) {
	s1 := domain.NewSample()
	s1.Navitec = domain.NumberValue(1001)
	s1.Cyl = domain.NumberValue(1)

	s2 := domain.NewSample()

	fleet := Group([]*domain.Sample{s1, s2})
	assert.Equal(t, []string{"1001", MissingKey}, vesselKeys(fleet))

	g, ok := fleet.Vessels.Get("None")
	require.True(t, ok, "samples without ids group under None")
	assert.Equal(t, []string{"None"}, cylKeys(g))

	known, _ := fleet.Vessels.Get("1001")
	assert.Equal(t, []string{"1"}, cylKeys(known))
}

func TestGroup_Empty(t *testing.T) {
	fleet := Group(nil)
	require.NotNil(t, fleet)
	assert.Equal(t, 0, fleet.Vessels.Len())
}
