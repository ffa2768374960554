// Package roulette implements the European single-zero wheel: uniform pocket
// draw, the golden color table, and deterministic payout resolution.
package roulette

import (
	"strconv"

	"github.com/lowroller/casinocore/internal/domain"
	"github.com/lowroller/casinocore/internal/rng"
)

// Outcome is one spin of the wheel.
type Outcome struct {
	Number int   `json:"winning_number"`
	Color  Color `json:"color"`
}

func (Outcome) Game() domain.GameType { return domain.GameRoulette }

// Spin draws a uniform pocket in [0, 36].
func Spin(src rng.Source) Outcome {
	n := src.Intn(WheelSize)
	return Outcome{Number: n, Color: ColorOf(n)}
}

// Wins resolves a bet against a spin. Pocket 0 loses every outside bet: the
// zero checks below are deliberate rule overrides, not range arithmetic
// falling out correctly.
func Wins(betType BetType, betValue string, o Outcome) bool {
	n := o.Number
	switch betType {
	case BetNumber:
		pick, err := strconv.Atoi(betValue)
		return err == nil && pick == n
	case BetRed:
		return o.Color == ColorRed
	case BetBlack:
		return o.Color == ColorBlack
	case BetOdd:
		return n != 0 && n%2 == 1
	case BetEven:
		return n != 0 && n%2 == 0
	case BetLow:
		return n != 0 && n >= 1 && n <= 18
	case BetHigh:
		return n != 0 && n >= 19 && n <= 36
	case BetDozen:
		d, err := strconv.Atoi(betValue)
		return err == nil && n != 0 && (n-1)/12+1 == d
	case BetColumn:
		c, err := strconv.Atoi(betValue)
		return err == nil && n != 0 && (n-1)%3+1 == c
	default:
		return false
	}
}

// Payout returns the amount won for a bet against a spin: amount times the
// bet type's multiplier on a win, 0 on a loss.
func Payout(amount float64, p *domain.RouletteParams, o Outcome) float64 {
	bt := BetType(p.BetType)
	if !Wins(bt, p.BetValue, o) {
		return 0
	}
	return amount * Multipliers[bt]
}

// ExpectedReturn is the theoretical RTP of a bet type: win probability times
// payout multiplier over the 37-pocket distribution.
func ExpectedReturn(betType BetType) float64 {
	var winning float64
	switch betType {
	case BetNumber:
		winning = 1
	case BetRed, BetBlack, BetOdd, BetEven, BetLow, BetHigh:
		winning = 18
	case BetDozen, BetColumn:
		winning = 12
	default:
		return 0
	}
	return winning / WheelSize * Multipliers[betType]
}
