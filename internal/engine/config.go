package engine

import (
	"github.com/lowroller/casinocore/internal/caseopen"
	"github.com/lowroller/casinocore/internal/domain"
	"github.com/lowroller/casinocore/internal/plinko"
	"github.com/lowroller/casinocore/internal/roulette"
)

// Static configuration queries: pure compile-time data clients use to render
// boards and tables without playing. Everything returns copies, so results
// are safe to cache and caller mutation cannot leak back.

// BoardConfig is the plinko board geometry.
type BoardConfig struct {
	Rows      int `json:"rows"`
	Slots     int `json:"slots"`
	StartSlot int `json:"start_slot"`
}

// GetBoardConfig returns the plinko board geometry.
func GetBoardConfig() BoardConfig {
	return BoardConfig{
		Rows:      plinko.Rows,
		Slots:     plinko.Slots,
		StartSlot: plinko.StartSlot,
	}
}

// GetMultiplierTable returns the plinko multiplier table for a risk tier.
func GetMultiplierTable(risk string) ([]float64, error) {
	table, ok := plinko.Table(plinko.RiskLevel(risk))
	if !ok {
		return nil, domain.ErrUnknownRisk
	}
	return table, nil
}

// GetMultiplierTables returns every plinko tier's table keyed by tier name.
func GetMultiplierTables() map[string][]float64 {
	out := make(map[string][]float64, len(plinko.RiskLevels()))
	for _, risk := range plinko.RiskLevels() {
		table, _ := plinko.Table(risk)
		out[string(risk)] = table
	}
	return out
}

// BetTypeInfo describes one roulette bet type for table rendering.
type BetTypeInfo struct {
	Type       string  `json:"type"`
	Multiplier float64 `json:"multiplier"`
	Values     string  `json:"values"`
}

// GetBetTypes describes the roulette bet types and their multipliers.
func GetBetTypes() []BetTypeInfo {
	return []BetTypeInfo{
		{Type: string(roulette.BetNumber), Multiplier: 35, Values: "0-36"},
		{Type: string(roulette.BetRed), Multiplier: 1, Values: "red"},
		{Type: string(roulette.BetBlack), Multiplier: 1, Values: "black"},
		{Type: string(roulette.BetOdd), Multiplier: 1, Values: "odd"},
		{Type: string(roulette.BetEven), Multiplier: 1, Values: "even"},
		{Type: string(roulette.BetLow), Multiplier: 1, Values: "1-18"},
		{Type: string(roulette.BetHigh), Multiplier: 1, Values: "19-36"},
		{Type: string(roulette.BetDozen), Multiplier: 2, Values: "1-3"},
		{Type: string(roulette.BetColumn), Multiplier: 2, Values: "1-3"},
	}
}

// GetCases returns the case-opening catalog.
func GetCases() []caseopen.Case {
	return caseopen.Cases()
}
