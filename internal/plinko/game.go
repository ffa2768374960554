// Package plinko implements the peg-board drop: uniform binary paths, the
// clamped walk that maps a path to a landing slot, and the per-risk payout
// tables. The same walk resolves generated paths and verifies client-reported
// ones, so animation replay and settlement can never disagree.
package plinko

import (
	"github.com/lowroller/casinocore/internal/domain"
	"github.com/lowroller/casinocore/internal/rng"
)

// Outcome is one ball drop. Path holds the raw steps the renderer replays.
type Outcome struct {
	Path        []int   `json:"ball_path"`
	LandingSlot int     `json:"landing_slot"`
	Multiplier  float64 `json:"multiplier"`
}

func (Outcome) Game() domain.GameType { return domain.GamePlinko }

// Drop generates a path of exactly Rows uniform binary steps and lands it via
// the clamped walk.
func Drop(src rng.Source, risk RiskLevel) (Outcome, error) {
	table, ok := multiplierTables[risk]
	if !ok {
		return Outcome{}, domain.ErrUnknownRisk
	}
	path := make([]int, Rows)
	for i := range path {
		path[i] = src.Intn(2)
	}
	slot, _ := Simulate(path)
	return Outcome{Path: path, LandingSlot: slot, Multiplier: table[slot]}, nil
}

// Simulate replays a path from the fixed start slot, clamping at both walls
// after every step. A step that would leave the board is absorbed at the
// boundary, never reflected or wrapped. The landing slot must always come
// from this walk, not from start + sum(steps): a path that hits a wall early
// has to settle exactly where the animation shows it.
func Simulate(path []int) (slot int, ok bool) {
	if len(path) != Rows {
		return 0, false
	}
	pos := StartSlot
	for _, step := range path {
		switch step {
		case StepLeft:
			pos--
		case StepRight:
			pos++
		default:
			return 0, false
		}
		if pos < 0 {
			pos = 0
		}
		if pos > Slots-1 {
			pos = Slots - 1
		}
	}
	return pos, true
}

// ValidatePath checks a claimed landing slot against the replayed path. Used
// both to self-check generator output and to independently verify a
// client-reported path.
func ValidatePath(path []int, claimedSlot int) bool {
	slot, ok := Simulate(path)
	return ok && slot == claimedSlot
}

// Payout is amount times the tier's multiplier for the landing slot.
func Payout(amount float64, o Outcome) float64 {
	return amount * o.Multiplier
}

// ExpectedReturn computes the theoretical RTP of a tier by enumerating every
// equally-likely path through the same clamped walk used for settlement.
func ExpectedReturn(risk RiskLevel) (float64, error) {
	table, ok := multiplierTables[risk]
	if !ok {
		return 0, domain.ErrUnknownRisk
	}
	paths := 1 << Rows
	var total float64
	for mask := 0; mask < paths; mask++ {
		path := make([]int, Rows)
		for i := range path {
			path[i] = (mask >> i) & 1
		}
		slot, _ := Simulate(path)
		total += table[slot]
	}
	return total / float64(paths), nil
}
