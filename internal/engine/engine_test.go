package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lowroller/casinocore/internal/blackjack"
	"github.com/lowroller/casinocore/internal/domain"
	"github.com/lowroller/casinocore/internal/plinko"
	"github.com/lowroller/casinocore/internal/rng"
)

// MockValidator
type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) Validate(ctx context.Context, b *domain.Bet) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func validRouletteBet() *domain.Bet {
	return &domain.Bet{
		UserID:   "user-1",
		Amount:   100,
		Game:     domain.GameRoulette,
		Roulette: &domain.RouletteParams{BetType: "number", BetValue: "17"},
	}
}

func TestPlay_InvalidBetConsumesNoRandomness(t *testing.T) {
	src := rng.NewSequence([]int{17}, []float64{0.5})
	e := New(src)

	bad := validRouletteBet()
	bad.Amount = 0

	result, err := e.Play(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrInvalidBet)
	assert.Nil(t, result)
	assert.Zero(t, src.Calls(), "validation rejection must fail fast, before the generator runs")
}

func TestPlay_ValidBetAlwaysResolves(t *testing.T) {
	e := New(rng.NewSeeded(42))

	bets := []*domain.Bet{
		validRouletteBet(),
		{UserID: "u", Amount: 50, Game: domain.GamePlinko, Plinko: &domain.PlinkoParams{RiskLevel: "high"}},
		{UserID: "u", Amount: 50, Game: domain.GameBlackjack},
		{UserID: "u", Amount: 50, Game: domain.GameCaseOpening, Case: &domain.CaseParams{CaseName: "starter_crate"}},
	}

	for _, b := range bets {
		result, err := e.Play(context.Background(), b)
		require.NoError(t, err, "game %s", b.Game)
		require.NotNil(t, result)
		assert.Equal(t, b.Game, result.Game)
		assert.Equal(t, b.UserID, result.UserID)
		assert.Equal(t, b.Amount, result.BetAmount)
		assert.GreaterOrEqual(t, result.WinAmount, 0.0)
		assert.NotNil(t, result.Outcome)
		assert.Equal(t, b.Game, result.Outcome.Game())
		assert.Equal(t, result.WinAmount > 0, result.Win)
	}
}

func TestPlay_RouletteScriptedWin(t *testing.T) {
	// Single Intn draw: the winning pocket.
	src := rng.NewSequence([]int{17}, nil)
	e := New(src)

	result, err := e.Play(context.Background(), validRouletteBet())
	require.NoError(t, err)
	assert.True(t, result.Win)
	assert.Equal(t, float64(3500), result.WinAmount)
}

func TestPlay_PlinkoScriptedDrop(t *testing.T) {
	// Four left steps land slot 0; high risk pays 29x.
	src := rng.NewSequence([]int{0, 0, 0, 0}, nil)
	e := New(src)

	b := &domain.Bet{
		UserID: "u", Amount: 100,
		Game:   domain.GamePlinko,
		Plinko: &domain.PlinkoParams{RiskLevel: "high"},
	}
	result, err := e.Play(context.Background(), b)
	require.NoError(t, err)

	drop, ok := result.Outcome.(plinko.Outcome)
	require.True(t, ok)
	assert.Equal(t, 0, drop.LandingSlot)
	assert.Equal(t, []int{0, 0, 0, 0}, drop.Path)
	assert.Equal(t, float64(2900), result.WinAmount)
}

func TestPlay_CustomValidatorIsConsulted(t *testing.T) {
	v := new(MockValidator)
	v.On("Validate", mock.Anything, mock.Anything).Return(domain.ErrInvalidBet)

	e := New(rng.NewSeeded(1), WithValidator(v))
	_, err := e.Play(context.Background(), validRouletteBet())
	assert.ErrorIs(t, err, domain.ErrInvalidBet)
	v.AssertNumberOfCalls(t, "Validate", 1)
}

func TestSessions_WiredThroughEngine(t *testing.T) {
	sessions := blackjack.NewSessions(rng.NewSeeded(5), 8, time.Minute)
	e := New(rng.NewSeeded(5), WithSessions(sessions))

	assert.Same(t, sessions, e.Sessions())
}

func TestStaticConfig_Idempotent(t *testing.T) {
	assert.Equal(t, GetBoardConfig(), GetBoardConfig())
	assert.Equal(t, BoardConfig{Rows: 4, Slots: 9, StartSlot: 4}, GetBoardConfig())

	first, err := GetMultiplierTable("high")
	require.NoError(t, err)
	second, err := GetMultiplierTable("high")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Caller mutation must not leak into later reads.
	first[0] = -1
	third, _ := GetMultiplierTable("high")
	assert.Equal(t, second[0], third[0])

	_, err = GetMultiplierTable("extreme")
	assert.Error(t, err)

	assert.Equal(t, GetBetTypes(), GetBetTypes())
	assert.Equal(t, GetCases(), GetCases())
	assert.Len(t, GetMultiplierTables(), 3)
}
