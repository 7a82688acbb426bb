package dataprocessing

import (
	"lemcli/pkg/contracts/domain"
)

// Project maps a sample to the front-end record. Selection and renaming only.
func Project(s *domain.Sample) domain.SeriesPoint {
	date, _ := s.Date()

	imputed := make([]string, len(s.Imputed))
	copy(imputed, s.Imputed)

	return domain.SeriesPoint{
		Date:       date,
		BN:         s.Number(domain.ColBN),
		Iron:       s.Number(domain.ColIron),
		PQ:         s.Number(domain.ColPQIndex),
		Cr:         s.Number(domain.ColChromium),
		Ni:         s.Field(domain.ColNickel),
		V:          s.Field(domain.ColVanadium),
		FeedRate:   s.Number(domain.ColFeedRate),
		EngineLoad: s.Number(domain.ColEngineLoad),
		FOSulphur:  s.Number(domain.ColFOSulphur),
		FOCategory: s.Field(domain.ColFOCategory),
		Catfine:    s.Field(domain.ColCatfine),
		LOinSample: s.Field(domain.ColLOinSample),
		Water:      s.Number(domain.ColWater),
		CylOil:     s.Field(domain.ColCylinderOil),
		BNLevel:    s.Field(domain.ColBNLevel),
		Imputed:    imputed,
	}
}
