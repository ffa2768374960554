// Package blackjack implements the dealt hand, the player action state
// machine, and standard-rules resolution against a dealer drawing to 17.
package blackjack

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lowroller/casinocore/internal/domain"
	"github.com/lowroller/casinocore/internal/rng"
)

// Hand is one player hand. Splitting adds more of these to the game.
type Hand struct {
	Cards     []Card
	Wager     float64
	Stood     bool
	Doubled   bool
	fromSplit bool
	Result    HandResult
	Payout    float64
}

// done reports whether the hand accepts no further actions: stood, busted,
// or sitting on 21.
func (h *Hand) done() bool {
	if h.Stood {
		return true
	}
	total, _ := HandValue(h.Cards)
	return total >= BlackjackTarget
}

// Game is one blackjack round. All mutation goes through Apply, which holds
// the game's mutex; a resolved game is terminal and rejects every action.
type Game struct {
	ID     string
	UserID string

	mu     sync.Mutex
	src    rng.Source
	state  State
	hands  []*Hand
	dealer []Card
}

// NewGame deals a fresh round: two cards to the player, then two to the
// dealer. A natural two-card 21 resolves the game immediately.
func NewGame(src rng.Source, userID string, wager float64) *Game {
	g := &Game{
		ID:     uuid.NewString(),
		UserID: userID,
		src:    src,
		state:  StatePlayerTurn,
	}
	player := &Hand{Wager: wager}
	player.Cards = append(player.Cards, Deal(src), Deal(src))
	g.hands = []*Hand{player}
	g.dealer = append(g.dealer, Deal(src), Deal(src))

	if IsBlackjack(player.Cards) {
		g.finish()
	}
	return g
}

// Apply executes one player action against the given hand. Actions on a
// resolved game fail with domain.ErrHandResolved; malformed actions (unknown
// name, hand index out of range, illegal double/split) fail with
// domain.ErrInvalidAction. Neither is ever reported as a bet validation
// failure.
func (g *Game) Apply(action Action, handIndex int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateResolved {
		return domain.ErrHandResolved
	}
	if handIndex < 0 || handIndex >= len(g.hands) {
		return fmt.Errorf("%w: hand index %d out of range", domain.ErrInvalidAction, handIndex)
	}
	h := g.hands[handIndex]
	if h.done() {
		return fmt.Errorf("%w: hand %d is already finished", domain.ErrInvalidAction, handIndex)
	}

	switch action {
	case ActionHit:
		h.Cards = append(h.Cards, Deal(g.src))
	case ActionStand:
		h.Stood = true
	case ActionDouble:
		if len(h.Cards) != 2 || h.Doubled {
			return fmt.Errorf("%w: double only on a fresh two-card hand", domain.ErrInvalidAction)
		}
		h.Wager *= 2
		h.Doubled = true
		h.Cards = append(h.Cards, Deal(g.src))
		h.Stood = true
	case ActionSplit:
		if len(h.Cards) != 2 || h.Cards[0].Rank != h.Cards[1].Rank {
			return fmt.Errorf("%w: split requires a two-card pair", domain.ErrInvalidAction)
		}
		if len(g.hands) >= MaxHands {
			return fmt.Errorf("%w: at most %d hands", domain.ErrInvalidAction, MaxHands)
		}
		second := &Hand{
			Cards:     []Card{h.Cards[1], Deal(g.src)},
			Wager:     h.Wager,
			fromSplit: true,
		}
		h.Cards = []Card{h.Cards[0], Deal(g.src)}
		h.fromSplit = true
		g.hands = append(g.hands, second)
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidAction, action)
	}

	g.advance()
	return nil
}

// advance moves to the dealer turn once every hand is finished. The dealer
// turn always runs to resolution in the same call.
func (g *Game) advance() {
	for _, h := range g.hands {
		if !h.done() {
			return
		}
	}
	g.finish()
}

// finish plays out the dealer and settles every hand.
func (g *Game) finish() {
	g.state = StateDealerTurn

	if g.dealerMustDraw() {
		for {
			total, _ := HandValue(g.dealer)
			if total >= DealerStand {
				break
			}
			g.dealer = append(g.dealer, Deal(g.src))
		}
	}

	dealerTotal, _ := HandValue(g.dealer)
	dealerNatural := IsBlackjack(g.dealer)

	for _, h := range g.hands {
		total, _ := HandValue(h.Cards)
		natural := !h.fromSplit && IsBlackjack(h.Cards)
		switch {
		case total > BlackjackTarget:
			h.Result, h.Payout = ResultBust, 0
		case natural && dealerNatural:
			h.Result, h.Payout = ResultPush, h.Wager*PushMultiplier
		case natural:
			h.Result, h.Payout = ResultBlackjack, h.Wager*BlackjackMultiplier
		case dealerNatural:
			h.Result, h.Payout = ResultDealerWin, 0
		case dealerTotal > BlackjackTarget:
			h.Result, h.Payout = ResultPlayerWin, h.Wager*WinMultiplier
		case total > dealerTotal:
			h.Result, h.Payout = ResultPlayerWin, h.Wager*WinMultiplier
		case total == dealerTotal:
			h.Result, h.Payout = ResultPush, h.Wager*PushMultiplier
		default:
			h.Result, h.Payout = ResultDealerWin, 0
		}
	}

	g.state = StateResolved
}

// dealerMustDraw: the dealer only plays out when some hand is still live, so
// an all-bust round or a lone natural skips the draws.
func (g *Game) dealerMustDraw() bool {
	for _, h := range g.hands {
		total, _ := HandValue(h.Cards)
		if total <= BlackjackTarget && !(!h.fromSplit && IsBlackjack(h.Cards)) {
			return true
		}
	}
	return false
}

// State returns the current phase.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// TotalPayout sums the settled payouts across hands. Zero until resolved.
func (g *Game) TotalPayout() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	var total float64
	for _, h := range g.hands {
		total += h.Payout
	}
	return total
}

// TotalWager sums the wagers across hands, including doubles and splits.
func (g *Game) TotalWager() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	var total float64
	for _, h := range g.hands {
		total += h.Wager
	}
	return total
}

// Outcome is the rendering payload for a resolved round. Result reflects the
// primary hand; split details live in the snapshot.
type Outcome struct {
	PlayerHand []Card     `json:"player_hand"`
	DealerHand []Card     `json:"dealer_hand"`
	Result     HandResult `json:"result"`
}

func (Outcome) Game() domain.GameType { return domain.GameBlackjack }

// Outcome snapshots the primary hand's result.
func (g *Game) Outcome() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	player := append([]Card(nil), g.hands[0].Cards...)
	dealer := append([]Card(nil), g.dealer...)
	return Outcome{PlayerHand: player, DealerHand: dealer, Result: g.hands[0].Result}
}

// Play runs a complete one-shot round: the player follows the house strategy
// (hit below hard 17, hit soft 17, stand otherwise), then the dealer plays
// out. Returns the outcome and the gross payout.
func Play(src rng.Source, userID string, wager float64) (Outcome, float64) {
	g := NewGame(src, userID, wager)
	for g.State() == StatePlayerTurn {
		total, soft := HandValue(g.hands[0].Cards)
		if total < DealerStand || (soft && total == DealerStand) {
			_ = g.Apply(ActionHit, 0)
		} else {
			_ = g.Apply(ActionStand, 0)
		}
	}
	return g.Outcome(), g.TotalPayout()
}
