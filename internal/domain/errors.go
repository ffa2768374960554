package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Bet validation. Deliberately coarse: every validation failure surfaces
	// as this one message, sub-reasons are logged but never returned.
	ErrMsgInvalidBet = "invalid bet"

	// Blackjack action errors (distinct from bet validation)
	ErrMsgInvalidAction = "invalid action"
	ErrMsgHandResolved  = "hand already resolved"
	ErrMsgHandNotFound  = "hand not found"

	// Dispatch errors
	ErrMsgUnknownGame = "unknown game"
	ErrMsgUnknownCase = "unknown case"
	ErrMsgUnknownRisk = "unknown risk level"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional
// context; callers discriminate with errors.Is.
var (
	ErrInvalidBet = errors.New(ErrMsgInvalidBet)

	ErrInvalidAction = errors.New(ErrMsgInvalidAction)
	ErrHandResolved  = errors.New(ErrMsgHandResolved)
	ErrHandNotFound  = errors.New(ErrMsgHandNotFound)

	ErrUnknownGame = errors.New(ErrMsgUnknownGame)
	ErrUnknownCase = errors.New(ErrMsgUnknownCase)
	ErrUnknownRisk = errors.New(ErrMsgUnknownRisk)
)
