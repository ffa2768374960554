package domain

// Outcome is the per-game result data handed to the rendering layer. Each
// game package defines its own concrete type carrying whatever the animation
// needs to replay the outcome (raw path, winning number, card sequences).
type Outcome interface {
	Game() GameType
}

// PlayResult is what the engine hands back for a valid bet. The orchestrating
// caller forwards it to the ledger for persistence and to the renderer for
// display; the engine itself retains nothing.
//
// WinAmount is always >= 0. Win reports whether the player got anything back
// at all (a blackjack push counts as Win with WinAmount == BetAmount).
type PlayResult struct {
	UserID    string
	Game      GameType
	BetAmount float64
	WinAmount float64
	Win       bool
	Outcome   Outcome
}
