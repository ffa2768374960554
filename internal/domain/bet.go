package domain

// GameType identifies which game a bet is placed on.
type GameType string

const (
	GameRoulette    GameType = "roulette"
	GameBlackjack   GameType = "blackjack"
	GamePlinko      GameType = "plinko"
	GameCaseOpening GameType = "case_opening"
)

// Bet is a single wager. It is a tagged variant: Game selects which of the
// per-game parameter blocks must be present, and validation rejects any bet
// whose parameters do not match its game tag. A Bet is built per request and
// never mutated after construction.
type Bet struct {
	UserID string   `validate:"required"`
	Amount float64  `validate:"gt=0"`
	Game   GameType `validate:"required,oneof=roulette blackjack plinko case_opening"`

	Roulette  *RouletteParams
	Plinko    *PlinkoParams
	Blackjack *BlackjackParams
	Case      *CaseParams
}

// RouletteParams carries the roulette bet discriminant. BetValue is a string
// on purpose: for number/dozen/column bets it holds the numeric pick, for the
// outside bets it must equal the bet type's canonical name.
type RouletteParams struct {
	BetType  string
	BetValue string
}

// PlinkoParams selects which multiplier table governs the drop. RiskLevel is
// required; there is no default tier.
type PlinkoParams struct {
	RiskLevel string
}

// BlackjackParams is intentionally empty: a blackjack bet carries no shape
// beyond the amount. Actions (hit/stand/double/split) are validated
// per-action against the live hand, not at bet time.
type BlackjackParams struct{}

// CaseParams names the case to open.
type CaseParams struct {
	CaseName string
}
