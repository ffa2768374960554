// Package bet validates wagers before any randomness is consumed. Global
// shape checks run through go-playground struct validation; the per-game
// discriminant checks dispatch on the bet's game tag. Every rejection
// surfaces as the single coarse domain.ErrInvalidBet - the concrete reason is
// logged, never returned.
package bet

import (
	"context"
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/lowroller/casinocore/internal/caseopen"
	"github.com/lowroller/casinocore/internal/domain"
	"github.com/lowroller/casinocore/internal/logger"
	"github.com/lowroller/casinocore/internal/plinko"
	"github.com/lowroller/casinocore/internal/roulette"
)

// Default wager bounds, overridable via config.
const (
	DefaultMinBet = 1
	DefaultMaxBet = 10000
)

// Validator checks bets against the global and per-game constraints.
type Validator struct {
	validate *validator.Validate
	minBet   float64
	maxBet   float64
}

// NewValidator builds a validator with the given wager bounds. Non-positive
// bounds fall back to the defaults.
func NewValidator(minBet, maxBet float64) *Validator {
	if minBet <= 0 {
		minBet = DefaultMinBet
	}
	if maxBet <= 0 {
		maxBet = DefaultMaxBet
	}
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		minBet:   minBet,
		maxBet:   maxBet,
	}
}

// MinBet returns the configured lower wager bound.
func (v *Validator) MinBet() float64 { return v.minBet }

// MaxBet returns the configured upper wager bound.
func (v *Validator) MaxBet() float64 { return v.maxBet }

// Validate returns nil for a playable bet and domain.ErrInvalidBet otherwise.
func (v *Validator) Validate(ctx context.Context, b *domain.Bet) error {
	if reason := v.check(b); reason != "" {
		logger.FromContext(ctx).Debug("bet rejected", "reason", reason)
		return domain.ErrInvalidBet
	}
	return nil
}

func (v *Validator) check(b *domain.Bet) string {
	if b == nil {
		return "nil bet"
	}
	if err := v.validate.Struct(b); err != nil {
		return err.Error()
	}
	if math.IsNaN(b.Amount) || math.IsInf(b.Amount, 0) {
		return "amount is not finite"
	}
	if b.Amount < v.minBet {
		return "amount below minimum"
	}
	if b.Amount > v.maxBet {
		return "amount above maximum"
	}
	if reason := checkParamsMatchGame(b); reason != "" {
		return reason
	}

	switch b.Game {
	case domain.GameRoulette:
		return checkRoulette(b.Roulette)
	case domain.GamePlinko:
		return checkPlinko(b.Plinko)
	case domain.GameBlackjack:
		// No bet-shape fields beyond the amount.
		return ""
	case domain.GameCaseOpening:
		return checkCase(b.Case)
	default:
		return "unknown game type"
	}
}

// checkParamsMatchGame enforces the tagged-variant shape: the game's own
// params must be present and no other game's params may ride along.
func checkParamsMatchGame(b *domain.Bet) string {
	type slot struct {
		game    domain.GameType
		present bool
	}
	slots := []slot{
		{domain.GameRoulette, b.Roulette != nil},
		{domain.GamePlinko, b.Plinko != nil},
		{domain.GameBlackjack, b.Blackjack != nil},
		{domain.GameCaseOpening, b.Case != nil},
	}
	for _, s := range slots {
		if s.game == b.Game {
			// Blackjack params are optional: the empty struct carries
			// nothing.
			if !s.present && s.game != domain.GameBlackjack {
				return "missing params for " + string(s.game)
			}
		} else if s.present {
			return "params for " + string(s.game) + " on a " + string(b.Game) + " bet"
		}
	}
	return ""
}

func checkRoulette(p *domain.RouletteParams) string {
	bt := roulette.BetType(p.BetType)
	if _, ok := roulette.Multipliers[bt]; !ok {
		return "unknown roulette bet type"
	}
	switch bt {
	case roulette.BetNumber:
		n, err := strconv.Atoi(p.BetValue)
		if err != nil || n < 0 || n > 36 {
			return "number bet value out of range"
		}
	case roulette.BetDozen, roulette.BetColumn:
		n, err := strconv.Atoi(p.BetValue)
		if err != nil || n < 1 || n > 3 {
			return "dozen/column bet value out of range"
		}
	default:
		// Outside bets must restate their own name.
		if p.BetValue != p.BetType {
			return "bet value does not match bet type"
		}
	}
	return ""
}

func checkPlinko(p *domain.PlinkoParams) string {
	// Risk level is required; there is no default tier.
	if !plinko.ValidRisk(p.RiskLevel) {
		return "unknown risk level"
	}
	return ""
}

func checkCase(p *domain.CaseParams) string {
	if !caseopen.HasCase(p.CaseName) {
		return "unknown case"
	}
	return ""
}
