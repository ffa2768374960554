package plinko

// Board geometry. The ball starts at the center slot and takes one binary
// step per peg row, so with 4 rows every landing slot shares the start
// slot's parity unless a wall clamp absorbs a step.
const (
	Rows      = 4
	Slots     = 9
	StartSlot = 4
)

// Step directions within a ball path.
const (
	StepLeft  = 0
	StepRight = 1
)

// RiskLevel selects which multiplier table governs a drop.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// multiplierTables are golden constants, one row per risk tier, one entry per
// landing slot. Variance grows with risk: bigger edges, thinner middle.
var multiplierTables = map[RiskLevel][Slots]float64{
	RiskLow:    {5.6, 2.1, 1.1, 1.0, 0.5, 1.0, 1.1, 2.1, 5.6},
	RiskMedium: {13, 4, 1.3, 0.7, 0.4, 0.7, 1.3, 4, 13},
	RiskHigh:   {29, 8, 1.5, 0.3, 0.2, 0.3, 1.5, 8, 29},
}

// RiskLevels returns the tiers in ascending variance order.
func RiskLevels() []RiskLevel {
	return []RiskLevel{RiskLow, RiskMedium, RiskHigh}
}

// ValidRisk reports whether s names a known tier.
func ValidRisk(s string) bool {
	_, ok := multiplierTables[RiskLevel(s)]
	return ok
}

// Table returns a copy of the multiplier table for a tier, so callers cannot
// mutate the golden constants.
func Table(risk RiskLevel) ([]float64, bool) {
	t, ok := multiplierTables[risk]
	if !ok {
		return nil, false
	}
	out := make([]float64, Slots)
	copy(out, t[:])
	return out, true
}

// MaxMultiplier returns the largest entry in a tier's table.
func MaxMultiplier(risk RiskLevel) float64 {
	t, ok := multiplierTables[risk]
	if !ok {
		return 0
	}
	max := t[0]
	for _, m := range t[1:] {
		if m > max {
			max = m
		}
	}
	return max
}
