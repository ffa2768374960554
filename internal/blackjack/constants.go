package blackjack

// Hand resolution rules.
const (
	// DealerStand is the total the dealer draws to; the dealer stands on all
	// 17s, soft included.
	DealerStand = 17

	// BlackjackTarget is the bust threshold.
	BlackjackTarget = 21

	// MaxHands caps how many hands a player can split into.
	MaxHands = 4
)

// Payout multipliers applied to the hand's wager. These are gross returns:
// a push hands back exactly the wager, a win hands back the wager plus even
// money, a natural pays 3:2.
const (
	BlackjackMultiplier = 2.5
	WinMultiplier       = 2.0
	PushMultiplier      = 1.0
)

// State is the phase of a blackjack game.
type State string

const (
	StatePlayerTurn State = "player_turn"
	StateDealerTurn State = "dealer_turn"
	StateResolved   State = "resolved"
)

// HandResult classifies a settled hand.
type HandResult string

const (
	ResultPlayerWin HandResult = "player_win"
	ResultDealerWin HandResult = "dealer_win"
	ResultPush      HandResult = "push"
	ResultBlackjack HandResult = "blackjack"
	ResultBust      HandResult = "bust"
)

// Action is a player move against a live hand.
type Action string

const (
	ActionHit    Action = "hit"
	ActionStand  Action = "stand"
	ActionDouble Action = "double"
	ActionSplit  Action = "split"
)
