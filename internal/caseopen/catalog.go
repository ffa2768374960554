// Package caseopen implements case opening: a rarity tier draw over an
// embedded item catalog and a payout from the drawn item's multiplier.
package caseopen

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed catalog.json
var catalogJSON []byte

//go:embed catalog.schema.json
var catalogSchemaJSON []byte

// Item is one drawable catalog entry.
type Item struct {
	Name       string  `json:"name"`
	Rarity     Rarity  `json:"rarity"`
	Multiplier float64 `json:"multiplier"`
}

// Case is a named collection of drawable items.
type Case struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

type catalogFile struct {
	Version string `json:"version"`
	Cases   []Case `json:"cases"`
}

var (
	caseOrder []string
	catalog   = loadCatalog()
)

// loadCatalog validates the embedded catalog against its schema and indexes
// it by case name. Any mismatch is a build defect, so it panics.
func loadCatalog() map[string]Case {
	if err := validateCatalog(catalogJSON, catalogSchemaJSON); err != nil {
		panic(fmt.Sprintf("caseopen: embedded catalog is invalid: %v", err))
	}

	var file catalogFile
	if err := json.Unmarshal(catalogJSON, &file); err != nil {
		panic(fmt.Sprintf("caseopen: failed to parse catalog: %v", err))
	}

	byName := make(map[string]Case, len(file.Cases))
	for _, c := range file.Cases {
		if _, dup := byName[c.Name]; dup {
			panic(fmt.Sprintf("caseopen: duplicate case %q", c.Name))
		}
		byName[c.Name] = c
		caseOrder = append(caseOrder, c.Name)
	}
	return byName
}

// HasCase reports whether the catalog contains a case with this name.
func HasCase(name string) bool {
	_, ok := catalog[name]
	return ok
}

// Cases returns catalog copies in file order, for table rendering.
func Cases() []Case {
	out := make([]Case, 0, len(caseOrder))
	for _, name := range caseOrder {
		c := catalog[name]
		out = append(out, Case{
			Name:  c.Name,
			Items: append([]Item(nil), c.Items...),
		})
	}
	return out
}

// itemsOfTier filters a case's items by rarity.
func itemsOfTier(c Case, tier Rarity) []Item {
	var out []Item
	for _, it := range c.Items {
		if it.Rarity == tier {
			out = append(out, it)
		}
	}
	return out
}

// resolveTier steps the drawn tier toward common until the case stocks it.
// The schema guarantees at least one item per case, and every case carries
// commons, so this always terminates with a stocked tier.
func resolveTier(c Case, tier Rarity) Rarity {
	for {
		if len(itemsOfTier(c, tier)) > 0 {
			return tier
		}
		next, ok := fallbackOf(tier)
		if !ok {
			return tier
		}
		tier = next
	}
}
