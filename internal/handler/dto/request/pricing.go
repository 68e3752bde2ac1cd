package request

import (
	"stay-pricing/internal/domain/pricing"
)

// RangeQuery is the end-exclusive stay window of a calculation or listing.
type RangeQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

func (q RangeQuery) ToRange() (pricing.Range, error) {
	return pricing.ParseRange(q.StartDate, q.EndDate)
}
