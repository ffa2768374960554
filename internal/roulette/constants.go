package roulette

// WheelSize is the pocket count of a European single-zero wheel (0-36).
const WheelSize = 37

// Color of a pocket.
type Color string

const (
	ColorGreen Color = "green"
	ColorRed   Color = "red"
	ColorBlack Color = "black"
)

// BetType enumerates the supported wagers.
type BetType string

const (
	BetNumber BetType = "number"
	BetRed    BetType = "red"
	BetBlack  BetType = "black"
	BetOdd    BetType = "odd"
	BetEven   BetType = "even"
	BetLow    BetType = "low"  // 1-18
	BetHigh   BetType = "high" // 19-36
	BetDozen  BetType = "dozen"
	BetColumn BetType = "column"
)

// Multipliers maps each bet type to its payout multiplier on a win. The
// payout is amount * multiplier; a losing bet pays 0.
var Multipliers = map[BetType]float64{
	BetNumber: 35,
	BetRed:    1,
	BetBlack:  1,
	BetOdd:    1,
	BetEven:   1,
	BetLow:    1,
	BetHigh:   1,
	BetDozen:  2,
	BetColumn: 2,
}

// redNumbers is the standard wheel color assignment. This is a golden
// constant: it cannot be derived from parity or position arithmetic, and a
// transcription error here silently skews fairness, so it is equality-tested
// against the canonical 18/18 split.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// ColorOf returns the color of a pocket. 0 is green; every other pocket is
// red or black per the enumerated table.
func ColorOf(number int) Color {
	switch {
	case number == 0:
		return ColorGreen
	case redNumbers[number]:
		return ColorRed
	default:
		return ColorBlack
	}
}

// RedNumbers returns a copy of the red pocket set, for table rendering.
func RedNumbers() []int {
	out := make([]int, 0, len(redNumbers))
	for n := 1; n <= 36; n++ {
		if redNumbers[n] {
			out = append(out, n)
		}
	}
	return out
}
