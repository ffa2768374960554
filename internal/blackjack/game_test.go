package blackjack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowroller/casinocore/internal/domain"
	"github.com/lowroller/casinocore/internal/rng"
)

// Rank indexes for scripting deals: suit draw first, then rank draw, cards
// dealt player, player, dealer, dealer.
const (
	rA  = 0
	r3  = 2
	r5  = 4
	r6  = 5
	r8  = 7
	r9  = 8
	r10 = 9
	rK  = 12
)

func deal(rankIdx ...int) []int {
	ints := make([]int, 0, len(rankIdx)*2)
	for _, r := range rankIdx {
		ints = append(ints, 0, r)
	}
	return ints
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name  string
		cards []Card
		total int
		soft  bool
	}{
		{"hard twenty", []Card{{SuitSpades, Rank10}, {SuitHearts, RankQueen}}, 20, false},
		{"soft seventeen", []Card{{SuitSpades, RankAce}, {SuitHearts, Rank6}}, 17, true},
		{"ace demoted after hit", []Card{{SuitSpades, RankAce}, {SuitHearts, Rank6}, {SuitClubs, Rank10}}, 17, false},
		{"double aces", []Card{{SuitSpades, RankAce}, {SuitHearts, RankAce}}, 12, true},
		{"natural", []Card{{SuitSpades, RankAce}, {SuitHearts, RankKing}}, 21, true},
		{"bust", []Card{{SuitSpades, Rank10}, {SuitHearts, Rank9}, {SuitClubs, Rank5}}, 24, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, soft := HandValue(tt.cards)
			assert.Equal(t, tt.total, total)
			assert.Equal(t, tt.soft, soft)
		})
	}

	assert.True(t, IsBlackjack([]Card{{SuitSpades, RankAce}, {SuitHearts, RankKing}}))
	assert.False(t, IsBlackjack([]Card{{SuitSpades, Rank10}, {SuitHearts, Rank5}, {SuitClubs, Rank6}}))
}

func TestPlay_PushReturnsWagerExactly(t *testing.T) {
	// Player 10,10 (20) vs dealer 10,K (20).
	src := rng.NewSequence(deal(r10, r10, r10, rK), nil)

	outcome, payout := Play(src, "user-1", 250)

	assert.Equal(t, ResultPush, outcome.Result)
	assert.Equal(t, float64(250), payout)
}

func TestPlay_NaturalBlackjackPaysThreeToTwo(t *testing.T) {
	// Player A,K natural vs dealer 10,9.
	src := rng.NewSequence(deal(rA, rK, r10, r9), nil)

	outcome, payout := Play(src, "user-1", 100)

	assert.Equal(t, ResultBlackjack, outcome.Result)
	assert.Equal(t, float64(250), payout)
}

func TestPlay_DealerDrawsToSeventeen(t *testing.T) {
	// Player 10,8 (18) stands; dealer 10,3 (13) draws a K and busts.
	src := rng.NewSequence(deal(r10, r8, r10, r3, rK), nil)

	outcome, payout := Play(src, "user-1", 100)

	assert.Equal(t, ResultPlayerWin, outcome.Result)
	assert.Equal(t, float64(200), payout)
	assert.Len(t, outcome.DealerHand, 3)
}

func TestPlay_AutoStrategyHitsSoftSeventeen(t *testing.T) {
	// Player A,6 (soft 17) hits a 3 for 20; dealer 10,9 (19).
	src := rng.NewSequence(deal(rA, r6, r10, r9, r3), nil)

	outcome, payout := Play(src, "user-1", 100)

	assert.Equal(t, ResultPlayerWin, outcome.Result)
	assert.Equal(t, float64(200), payout)
	assert.Len(t, outcome.PlayerHand, 3)
}

func TestGame_HitToBustLosesImmediately(t *testing.T) {
	// Player 10,6 (16) hits a K (26); dealer 10,10 never draws.
	src := rng.NewSequence(deal(r10, r6, r10, r10, rK), nil)
	g := NewGame(src, "user-1", 100)

	require.NoError(t, g.Apply(ActionHit, 0))

	assert.Equal(t, StateResolved, g.State())
	assert.Equal(t, ResultBust, g.Outcome().Result)
	assert.Zero(t, g.TotalPayout())
	assert.Len(t, g.Outcome().DealerHand, 2)
}

func TestGame_DoubleTakesOneCardAndDoublesWager(t *testing.T) {
	// Player 5,6 (11) doubles into a K (21); dealer 10,9 (19).
	src := rng.NewSequence(deal(r5, r6, r10, r9, rK), nil)
	g := NewGame(src, "user-1", 100)

	require.NoError(t, g.Apply(ActionDouble, 0))

	assert.Equal(t, StateResolved, g.State())
	assert.Equal(t, float64(200), g.TotalWager())
	assert.Equal(t, ResultPlayerWin, g.Outcome().Result)
	assert.Equal(t, float64(400), g.TotalPayout())
}

func TestGame_SplitPlaysBothHands(t *testing.T) {
	// Player 8,8 splits; both hands draw a 10 (18) and stand; dealer 10,9 (19).
	src := rng.NewSequence(deal(r8, r8, r10, r9, r10, r10), nil)
	g := NewGame(src, "user-1", 100)

	require.NoError(t, g.Apply(ActionSplit, 0))
	require.NoError(t, g.Apply(ActionStand, 0))
	require.NoError(t, g.Apply(ActionStand, 1))

	snap := g.Snapshot()
	assert.Equal(t, StateResolved, snap.State)
	require.Len(t, snap.Hands, 2)
	assert.Equal(t, ResultDealerWin, snap.Hands[0].Result)
	assert.Equal(t, ResultDealerWin, snap.Hands[1].Result)
	assert.Equal(t, float64(200), g.TotalWager())
	assert.Zero(t, g.TotalPayout())
}

func TestGame_SplitRequiresPair(t *testing.T) {
	src := rng.NewSequence(deal(r10, r8, r10, r9), nil)
	g := NewGame(src, "user-1", 100)

	err := g.Apply(ActionSplit, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
}

func TestGame_ResolvedRejectsEveryAction(t *testing.T) {
	// Natural resolves at the deal.
	src := rng.NewSequence(deal(rA, rK, r10, r9), nil)
	g := NewGame(src, "user-1", 100)
	require.Equal(t, StateResolved, g.State())

	for _, action := range []Action{ActionHit, ActionStand, ActionDouble, ActionSplit} {
		err := g.Apply(action, 0)
		assert.ErrorIs(t, err, domain.ErrHandResolved)
		assert.False(t, errors.Is(err, domain.ErrInvalidBet),
			"state errors must stay distinct from bet validation")
	}
}

func TestGame_InvalidActionAndHandIndex(t *testing.T) {
	src := rng.NewSequence(deal(r10, r8, r10, r9), nil)
	g := NewGame(src, "user-1", 100)

	assert.ErrorIs(t, g.Apply(Action("surrender"), 0), domain.ErrInvalidAction)
	assert.ErrorIs(t, g.Apply(ActionHit, 1), domain.ErrInvalidAction)
	assert.ErrorIs(t, g.Apply(ActionHit, -1), domain.ErrInvalidAction)
}

func TestGame_NaturalVersusNaturalIsPush(t *testing.T) {
	src := rng.NewSequence(deal(rA, rK, rA, rK), nil)
	g := NewGame(src, "user-1", 100)

	assert.Equal(t, StateResolved, g.State())
	assert.Equal(t, ResultPush, g.Outcome().Result)
	assert.Equal(t, float64(100), g.TotalPayout())
}
