package pricing

import "strings"

// ResolveNight decides the bookability and price of one night.
//
// Precedence, first match wins:
//  1. an availability block marked unavailable
//  2. a dated override (sold_out overrides yield no price)
//  3. an active peak-season rule covering the date
//  4. the base price
func ResolveNight(target Target, date Date, layers Layers) (ResolvedNight, error) {
	base, err := target.basePrice()
	if err != nil {
		return ResolvedNight{}, err
	}

	if available, ok := layers.availability[date]; ok && !available {
		return soldOut(date), nil
	}

	if o, ok := layers.overrides[date]; ok {
		if o.PriceType == PriceTypeSoldOut {
			return soldOut(date), nil
		}
		price := o.Price
		return ResolvedNight{Date: date, Status: o.PriceType, Price: &price}, nil
	}

	if rule, ok := pickRule(layers.rules, date, base); ok {
		price := rule.Apply(base)
		return ResolvedNight{Date: date, Status: PriceTypePeakSeason, Price: &price}, nil
	}

	return ResolvedNight{Date: date, Status: PriceTypeAvailable, Price: &base}, nil
}

func soldOut(date Date) ResolvedNight {
	return ResolvedNight{Date: date, Status: PriceTypeSoldOut}
}

// pickRule returns the covering rule with the highest resulting price.
// Ties go to the most recently created rule, then to the greatest id.
func pickRule(rules []PeakSeasonRule, date Date, base int64) (PeakSeasonRule, bool) {
	var (
		best      PeakSeasonRule
		bestPrice int64
		found     bool
	)
	for _, r := range rules {
		if !r.Covers(date) {
			continue
		}
		price := r.Apply(base)
		if !found || ruleBeats(r, price, best, bestPrice) {
			best, bestPrice, found = r, price, true
		}
	}
	return best, found
}

func ruleBeats(r PeakSeasonRule, price int64, cur PeakSeasonRule, curPrice int64) bool {
	if price != curPrice {
		return price > curPrice
	}
	if !r.CreatedAt.Equal(cur.CreatedAt) {
		return r.CreatedAt.After(cur.CreatedAt)
	}
	return strings.Compare(r.ID.String(), cur.ID.String()) > 0
}
