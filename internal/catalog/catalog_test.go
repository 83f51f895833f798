package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adapticode/adapticode/internal/conceptgraph"
)

func sampleItems() []Item {
	return []Item{
		{ID: "fibonacci", Topic: "Recursion Basics", A: 1.0, B: -0.5, C: 0.25},
		{ID: "power-set", Topic: "Backtracking", A: 1.2, B: 0.8, C: 0.25},
		{ID: "factorial", Topic: "Recursion Basics", A: 0.8, B: -1.0, C: 0.2},
	}
}

func TestNew_IndexesByIDAndTopic(t *testing.T) {
	c, err := New(sampleItems())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := c.Item("fibonacci"); !ok {
		t.Error("Item(fibonacci) not found")
	}
	if _, ok := c.Item("missing"); ok {
		t.Error("Item(missing) unexpectedly found")
	}
	if got := len(c.ByTopic("Recursion Basics")); got != 2 {
		t.Errorf("ByTopic(Recursion Basics) = %d items, want 2", got)
	}
	topics := c.Topics()
	if len(topics) != 2 || topics[0] != "Backtracking" {
		t.Errorf("Topics() = %v, want sorted [Backtracking, Recursion Basics]", topics)
	}
}

func TestNew_RejectsDuplicatesAndBadParams(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
	}{
		{"duplicate id", []Item{
			{ID: "x", Topic: "t", A: 1, C: 0.2},
			{ID: "x", Topic: "t", A: 1, C: 0.2},
		}},
		{"zero discrimination", []Item{{ID: "x", Topic: "t", A: 0, C: 0.2}}},
		{"guessing out of range", []Item{{ID: "x", Topic: "t", A: 1, C: 1.0}}},
		{"empty id", []Item{{Topic: "t", A: 1, C: 0.2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.items); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestByTopic_ReturnsCopy(t *testing.T) {
	c, err := New(sampleItems())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := c.ByTopic("Recursion Basics")
	got[0].ID = "mutated"
	if again := c.ByTopic("Recursion Basics"); again[0].ID == "mutated" {
		t.Error("ByTopic exposed internal slice")
	}
}

func TestLoadDir_ParsesBankFiles(t *testing.T) {
	dir := t.TempDir()
	bank := `{
		"topic": "Recursion Basics",
		"questions": [
			{"name": "fibonacci", "description": "Compute fib(n)", "alpha": 1.0, "beta": -0.5,
			 "tests": [{"input": "5", "output": "5"}],
			 "hidden_tests": [{"input": "10", "output": "55"}]},
			{"name": "sum-digits", "description": "Sum the digits", "alpha": 0.9, "beta": -1.2, "c": 0.2,
			 "tests": [], "hidden_tests": []}
		]
	}`
	if err := os.WriteFile(filepath.Join(dir, "recursion.json"), []byte(bank), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("loaded %d items, want 2", c.Len())
	}

	fib, ok := c.Item("fibonacci")
	if !ok {
		t.Fatal("fibonacci not loaded")
	}
	if fib.Topic != "Recursion Basics" {
		t.Errorf("topic = %q, want file-level topic", fib.Topic)
	}
	if fib.C != DefaultGuessing {
		t.Errorf("missing c defaulted to %v, want %v", fib.C, DefaultGuessing)
	}
	if fib.InitCode != "solve()" {
		t.Errorf("missing init_code defaulted to %q, want solve()", fib.InitCode)
	}

	sd, _ := c.Item("sum-digits")
	if sd.C != 0.2 {
		t.Errorf("explicit c = %v, want 0.2", sd.C)
	}
}

func TestLoadDir_ExplicitZeroGuessingKept(t *testing.T) {
	dir := t.TempDir()
	bank := `{
		"topic": "Recursion Basics",
		"questions": [
			{"name": "no-guess", "description": "Free response", "alpha": 1.0, "beta": 0.0, "c": 0,
			 "tests": [], "hidden_tests": []}
		]
	}`
	if err := os.WriteFile(filepath.Join(dir, "recursion.json"), []byte(bank), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	it, _ := c.Item("no-guess")
	if it.C != 0 {
		t.Errorf("explicit c = 0 rewritten to %v", it.C)
	}
}

func TestLoadDir_EmptyDirErrors(t *testing.T) {
	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Error("expected error for empty directory")
	}
}

func TestBuiltin_CoversEveryCurriculumConcept(t *testing.T) {
	c := Builtin()
	for _, concept := range conceptgraph.DefaultCurriculum().Concepts() {
		if len(c.ByTopic(concept)) == 0 {
			t.Errorf("built-in bank has no items for %q", concept)
		}
	}
	for _, topic := range c.Topics() {
		for _, it := range c.ByTopic(topic) {
			if len(it.HiddenTests) == 0 {
				t.Errorf("item %q has no hidden tests", it.ID)
			}
			if it.InitCode == "" {
				t.Errorf("item %q has no init code", it.ID)
			}
		}
	}
}
