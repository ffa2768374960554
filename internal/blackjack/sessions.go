package blackjack

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/lowroller/casinocore/internal/domain"
	"github.com/lowroller/casinocore/internal/logger"
	"github.com/lowroller/casinocore/internal/rng"
)

// Session store defaults.
const (
	DefaultSessionCapacity = 4096
	DefaultSessionTTL      = 15 * time.Minute
)

// HandView is a read-only copy of one hand for callers and renderers.
type HandView struct {
	Cards  []Card     `json:"cards"`
	Total  int        `json:"total"`
	Soft   bool       `json:"soft"`
	Wager  float64    `json:"wager"`
	Result HandResult `json:"result,omitempty"`
	Payout float64    `json:"payout"`
}

// Snapshot is the externally visible state of a game. It shares nothing with
// the live game, so callers can hold it across actions.
type Snapshot struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	State       State      `json:"state"`
	Hands       []HandView `json:"hands"`
	Dealer      []Card     `json:"dealer"`
	DealerTotal int        `json:"dealer_total"`
	Payout      float64    `json:"payout"`
}

// Snapshot copies the game's current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := Snapshot{
		ID:     g.ID,
		UserID: g.UserID,
		State:  g.state,
		Dealer: append([]Card(nil), g.dealer...),
	}
	snap.DealerTotal, _ = HandValue(g.dealer)
	for _, h := range g.hands {
		total, soft := HandValue(h.Cards)
		snap.Hands = append(snap.Hands, HandView{
			Cards:  append([]Card(nil), h.Cards...),
			Total:  total,
			Soft:   soft,
			Wager:  h.Wager,
			Result: h.Result,
			Payout: h.Payout,
		})
		snap.Payout += h.Payout
	}
	return snap
}

// Sessions keeps in-progress games keyed by an opaque handle, evicted by
// capacity or TTL. An evicted game simply stops accepting actions; settlement
// of abandoned hands is the orchestration layer's concern.
type Sessions struct {
	src   rng.Source
	games *expirable.LRU[string, *Game]
}

// NewSessions builds a session store. capacity <= 0 and ttl <= 0 fall back
// to the defaults.
func NewSessions(src rng.Source, capacity int, ttl time.Duration) *Sessions {
	if capacity <= 0 {
		capacity = DefaultSessionCapacity
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{
		src:   src,
		games: expirable.NewLRU[string, *Game](capacity, nil, ttl),
	}
}

// Start deals a new game and returns its snapshot. The snapshot ID is the
// handle for subsequent actions.
func (s *Sessions) Start(ctx context.Context, userID string, wager float64) Snapshot {
	g := NewGame(s.src, userID, wager)
	s.games.Add(g.ID, g)

	logger.FromContext(ctx).Debug("blackjack game started",
		"game_id", g.ID, "user_id", userID, "wager", wager)
	return g.Snapshot()
}

// Apply executes an action against a stored game. A resolved game is removed
// from the store after its final snapshot is taken.
func (s *Sessions) Apply(ctx context.Context, gameID string, action Action, handIndex int) (Snapshot, error) {
	g, ok := s.games.Get(gameID)
	if !ok {
		return Snapshot{}, domain.ErrHandNotFound
	}

	if err := g.Apply(action, handIndex); err != nil {
		return Snapshot{}, err
	}

	snap := g.Snapshot()
	if snap.State == StateResolved {
		s.games.Remove(gameID)
		logger.FromContext(ctx).Debug("blackjack game resolved",
			"game_id", gameID, "payout", snap.Payout)
	}
	return snap, nil
}

// Get returns the snapshot of a stored game.
func (s *Sessions) Get(gameID string) (Snapshot, error) {
	g, ok := s.games.Get(gameID)
	if !ok {
		return Snapshot{}, domain.ErrHandNotFound
	}
	return g.Snapshot(), nil
}

// Len reports how many games are live.
func (s *Sessions) Len() int {
	return s.games.Len()
}
