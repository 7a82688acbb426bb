package dataprocessing

import (
	"lemcli/pkg/contracts/domain"
)

// Fold adds one sample to the fleet accumulator and returns it.
// Vessel metadata is captured only when the vessel is first seen; later
// samples of the same vessel never update it.
func Fold(acc *domain.Fleet, s *domain.Sample) *domain.Fleet {
	if acc == nil {
		acc = domain.NewFleet()
	}

	vesselID := groupKey(s.Navitec)
	cylID := groupKey(s.Cyl)

	group, ok := acc.Vessels.Get(vesselID)
	if !ok {
		group = domain.NewVesselGroup(s)
		acc.Vessels.Set(vesselID, group)
	}

	bucket, _ := group.Cyls.Get(cylID)
	group.Cyls.Set(cylID, append(bucket, s))

	return acc
}

// MissingKey is the bucket key of a sample without a vessel or cylinder id.
const MissingKey = "None"

func groupKey(v domain.Value) string {
	if v.IsNull() {
		return MissingKey
	}
	return v.String()
}

// Group partitions samples into vessel -> cylinder buckets in first-seen order.
// Bucket order is input order, not date order.
func Group(samples []*domain.Sample) *domain.Fleet {
	acc := domain.NewFleet()
	for _, s := range samples {
		acc = Fold(acc, s)
	}
	return acc
}
