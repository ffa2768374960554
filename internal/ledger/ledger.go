// Package ledger defines the commit boundary to the external balance/history
// service. The engine never calls it; the orchestrating caller commits each
// PlayResult after the engine returns. Persistence itself lives outside this
// module.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/lowroller/casinocore/internal/domain"
)

// Entry is one settled play, as handed to the external ledger.
type Entry struct {
	UserID    string
	Game      domain.GameType
	BetAmount float64
	WinAmount float64
	Outcome   domain.Outcome
	PlayedAt  time.Time
}

// Ledger persists play history and adjusts balances. Serializing debits and
// credits per user is the implementation's concern, not the engine's.
type Ledger interface {
	Commit(ctx context.Context, entry Entry) error
}

// Memory is an in-process Ledger for tests and simulation runs.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemory returns an empty in-memory ledger.
func NewMemory() *Memory {
	return &Memory{}
}

// Commit appends the entry.
func (m *Memory) Commit(_ context.Context, entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

// Entries returns a copy of everything committed so far.
func (m *Memory) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...)
}

// Totals reports the wagered and paid-out sums, for RTP reporting.
func (m *Memory) Totals() (wagered, paidOut float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		wagered += e.BetAmount
		paidOut += e.WinAmount
	}
	return wagered, paidOut
}
