// Package engine is the single entry point for playing a bet: it validates,
// generates the outcome, computes the payout, and hands back a PlayResult.
// It holds no cross-call state; every Play is an independent, synchronous
// computation whose only side effect is consuming randomness and bumping
// counters.
package engine

import (
	"context"
	"fmt"

	"github.com/lowroller/casinocore/internal/bet"
	"github.com/lowroller/casinocore/internal/blackjack"
	"github.com/lowroller/casinocore/internal/caseopen"
	"github.com/lowroller/casinocore/internal/domain"
	"github.com/lowroller/casinocore/internal/logger"
	"github.com/lowroller/casinocore/internal/metrics"
	"github.com/lowroller/casinocore/internal/plinko"
	"github.com/lowroller/casinocore/internal/roulette"
	"github.com/lowroller/casinocore/internal/rng"
)

// Validator is the bet-checking dependency, kept as an interface so tests can
// observe or replace it.
type Validator interface {
	Validate(ctx context.Context, b *domain.Bet) error
}

// Engine orchestrates validate -> generate -> payout.
type Engine struct {
	src       rng.Source
	validator Validator
	sessions  *blackjack.Sessions
}

// Option customizes an Engine.
type Option func(*Engine)

// WithValidator swaps the bet validator.
func WithValidator(v Validator) Option {
	return func(e *Engine) { e.validator = v }
}

// WithSessions swaps the blackjack session store.
func WithSessions(s *blackjack.Sessions) Option {
	return func(e *Engine) { e.sessions = s }
}

// New builds an engine around a randomness source.
func New(src rng.Source, opts ...Option) *Engine {
	e := &Engine{
		src:       src,
		validator: bet.NewValidator(bet.DefaultMinBet, bet.DefaultMaxBet),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sessions == nil {
		e.sessions = blackjack.NewSessions(src, blackjack.DefaultSessionCapacity, blackjack.DefaultSessionTTL)
	}
	return e
}

// Play resolves one bet. Validation failures return domain.ErrInvalidBet
// before any randomness is consumed. A valid bet always resolves: there is no
// "valid bet but system error" branch in this pure-compute core.
func (e *Engine) Play(ctx context.Context, b *domain.Bet) (*domain.PlayResult, error) {
	if err := e.validator.Validate(ctx, b); err != nil {
		game := ""
		if b != nil {
			game = string(b.Game)
		}
		metrics.RecordInvalidBet(game)
		return nil, err
	}

	var (
		outcome   domain.Outcome
		winAmount float64
	)
	switch b.Game {
	case domain.GameRoulette:
		spin := roulette.Spin(e.src)
		outcome = spin
		winAmount = roulette.Payout(b.Amount, b.Roulette, spin)
	case domain.GamePlinko:
		drop, err := plinko.Drop(e.src, plinko.RiskLevel(b.Plinko.RiskLevel))
		if err != nil {
			// Unreachable after validation; kept as a guard for direct misuse.
			return nil, domain.ErrInvalidBet
		}
		outcome = drop
		winAmount = plinko.Payout(b.Amount, drop)
	case domain.GameBlackjack:
		hand, payout := blackjack.Play(e.src, b.UserID, b.Amount)
		outcome = hand
		winAmount = payout
	case domain.GameCaseOpening:
		opened, err := caseopen.Open(e.src, b.Case.CaseName)
		if err != nil {
			return nil, domain.ErrInvalidBet
		}
		outcome = opened
		winAmount = caseopen.Payout(b.Amount, opened)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownGame, b.Game)
	}

	result := &domain.PlayResult{
		UserID:    b.UserID,
		Game:      b.Game,
		BetAmount: b.Amount,
		WinAmount: winAmount,
		Win:       winAmount > 0,
		Outcome:   outcome,
	}

	metrics.RecordPlay(string(b.Game), b.Amount, winAmount, result.Win)
	logger.FromContext(ctx).Debug("play resolved",
		"game", b.Game, "user_id", b.UserID,
		"bet", b.Amount, "win", winAmount)
	return result, nil
}

// Sessions exposes the interactive blackjack store for callers that drive
// hit/stand/double/split themselves.
func (e *Engine) Sessions() *blackjack.Sessions {
	return e.sessions
}
