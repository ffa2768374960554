package caseopen

// Rarity tiers, rarest first in the threshold table below.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// rarityThreshold maps a roll ceiling to a tier.
type rarityThreshold struct {
	threshold float64
	rarity    Rarity
}

// rarityThresholds is the ordered draw table: checks run from rarest (lowest
// roll) to most common, and any roll past the last threshold is common.
var rarityThresholds = []rarityThreshold{
	{0.01, RarityLegendary},
	{0.05, RarityEpic},
	{0.15, RarityRare},
	{0.35, RarityUncommon},
}

// tierOf maps a uniform roll in [0,1) to a rarity tier.
func tierOf(roll float64) Rarity {
	for _, rt := range rarityThresholds {
		if roll < rt.threshold {
			return rt.rarity
		}
	}
	return RarityCommon
}

// tierProbabilities returns the draw probability of each tier, derived from
// the threshold table so the two can never drift apart.
func tierProbabilities() map[Rarity]float64 {
	probs := make(map[Rarity]float64, len(rarityThresholds)+1)
	prev := 0.0
	for _, rt := range rarityThresholds {
		probs[rt.rarity] = rt.threshold - prev
		prev = rt.threshold
	}
	probs[RarityCommon] = 1 - prev
	return probs
}

// fallbackOf steps a tier toward common when a case stocks no items of the
// drawn tier.
func fallbackOf(r Rarity) (Rarity, bool) {
	switch r {
	case RarityLegendary:
		return RarityEpic, true
	case RarityEpic:
		return RarityRare, true
	case RarityRare:
		return RarityUncommon, true
	case RarityUncommon:
		return RarityCommon, true
	default:
		return r, false
	}
}
