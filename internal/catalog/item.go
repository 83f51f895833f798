// Package catalog provides read-only access to the practice item bank.
package catalog

import "github.com/adapticode/adapticode/internal/irt"

// TestCase is a single input/output check for an item. Unordered test
// cases compare outputs as multisets rather than sequences.
type TestCase struct {
	Input     string `json:"input"`
	Output    string `json:"output"`
	Unordered bool   `json:"is_unordered,omitempty"`
}

// Item is a practice problem with its IRT parameters. Items are
// immutable once loaded; answer records snapshot the parameters so
// later catalog edits never rewrite history.
type Item struct {
	ID          string     `json:"name"`
	Topic       string     `json:"topic"`
	Description string     `json:"description"`
	A           float64    `json:"alpha"` // discrimination
	B           float64    `json:"beta"`  // difficulty
	C           float64    `json:"c"`     // guessing floor
	InitCode    string     `json:"init_code,omitempty"`
	Tests       []TestCase `json:"tests"`
	HiddenTests []TestCase `json:"hidden_tests"`
}

// Params returns the item's 3PL parameters.
func (it Item) Params() irt.ItemParams {
	return irt.ItemParams{
		Discrimination: it.A,
		Difficulty:     it.B,
		Guessing:       it.C,
	}
}
