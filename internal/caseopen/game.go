package caseopen

import (
	"github.com/lowroller/casinocore/internal/domain"
	"github.com/lowroller/casinocore/internal/rng"
)

// Outcome is one opened case.
type Outcome struct {
	CaseName string `json:"case_name"`
	Item     Item   `json:"item_won"`
}

func (Outcome) Game() domain.GameType { return domain.GameCaseOpening }

// Open draws one item from a case: a uniform roll picks the rarity tier via
// the threshold table, then a uniform pick within the stocked tier.
func Open(src rng.Source, caseName string) (Outcome, error) {
	c, ok := catalog[caseName]
	if !ok {
		return Outcome{}, domain.ErrUnknownCase
	}

	tier := resolveTier(c, tierOf(src.Float64()))
	items := itemsOfTier(c, tier)
	item := items[src.Intn(len(items))]

	return Outcome{CaseName: caseName, Item: item}, nil
}

// Payout is amount times the drawn item's multiplier.
func Payout(amount float64, o Outcome) float64 {
	return amount * o.Item.Multiplier
}

// ExpectedReturn computes the theoretical RTP of a case from the tier
// probabilities and the mean multiplier of each tier actually drawable after
// fallback.
func ExpectedReturn(caseName string) (float64, error) {
	c, ok := catalog[caseName]
	if !ok {
		return 0, domain.ErrUnknownCase
	}

	var total float64
	for tier, p := range tierProbabilities() {
		items := itemsOfTier(c, resolveTier(c, tier))
		var mean float64
		for _, it := range items {
			mean += it.Multiplier
		}
		mean /= float64(len(items))
		total += p * mean
	}
	return total, nil
}
