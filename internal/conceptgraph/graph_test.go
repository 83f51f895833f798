package conceptgraph

import (
	"slices"
	"testing"
)

func diamondGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := New(
		[]string{"A", "B", "C", "D"},
		map[string][]string{
			"B": {"A"},
			"C": {"A"},
			"D": {"B", "C"},
		},
	)
	if err != nil {
		t.Fatalf("building diamond graph: %v", err)
	}
	return g
}

func TestNew_RejectsCycle(t *testing.T) {
	_, err := New(
		[]string{"A", "B", "C"},
		map[string][]string{
			"A": {"C"},
			"B": {"A"},
			"C": {"B"},
		},
	)
	if err == nil {
		t.Fatal("expected error for cyclic graph")
	}
}

func TestNew_RejectsUnknownPrerequisite(t *testing.T) {
	_, err := New([]string{"A"}, map[string][]string{"A": {"ghost"}})
	if err == nil {
		t.Fatal("expected error for unknown prerequisite")
	}
}

func TestNew_RejectsDuplicateAndEmpty(t *testing.T) {
	if _, err := New([]string{"A", "A"}, nil); err == nil {
		t.Error("expected error for duplicate concept")
	}
	if _, err := New(nil, nil); err == nil {
		t.Error("expected error for empty graph")
	}
}

func TestCanUnlock_AllPrerequisitesMastered(t *testing.T) {
	g := diamondGraph(t)

	tests := []struct {
		name   string
		status map[string]Status
		want   bool
	}{
		{"none mastered", map[string]Status{"A": StatusOpened}, false},
		{"one of two", map[string]Status{"B": StatusMastered, "C": StatusOpened}, false},
		{"all mastered", map[string]Status{"B": StatusMastered, "C": StatusMastered}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.CanUnlock("D", tt.status); got != tt.want {
				t.Errorf("CanUnlock(D) = %v, want %v", got, tt.want)
			}
		})
	}

	// No prerequisites: always unlockable.
	if !g.CanUnlock("A", map[string]Status{}) {
		t.Error("CanUnlock(A) = false, want true for root concept")
	}
}

func TestShouldUnlock_OnlyWhenLocked(t *testing.T) {
	g := diamondGraph(t)
	status := map[string]Status{
		"A": StatusMastered,
		"B": StatusOpened,
	}
	if !g.ShouldUnlock("C", status) {
		t.Error("ShouldUnlock(C) = false, want true (locked, prereq mastered)")
	}
	if g.ShouldUnlock("B", status) {
		t.Error("ShouldUnlock(B) = true, want false (already opened)")
	}
}

func TestNextConceptToLearn_Priority(t *testing.T) {
	g := diamondGraph(t)

	tests := []struct {
		name   string
		status map[string]Status
		want   string
		ok     bool
	}{
		{
			"first opened wins",
			map[string]Status{"A": StatusMastered, "B": StatusOpened, "C": StatusOpened},
			"B", true,
		},
		{
			"unlockable when none opened",
			map[string]Status{"A": StatusMastered, "B": StatusMastered, "C": StatusMastered},
			"D", true,
		},
		{
			"all mastered",
			map[string]Status{"A": StatusMastered, "B": StatusMastered, "C": StatusMastered, "D": StatusMastered},
			"", false,
		},
		{
			"fresh profile picks root",
			map[string]Status{},
			"A", true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.NextConceptToLearn(tt.status)
			if ok != tt.ok || got != tt.want {
				t.Errorf("NextConceptToLearn = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLevel_LongestPathDepth(t *testing.T) {
	g := diamondGraph(t)
	tests := []struct {
		concept string
		want    int
	}{
		{"A", 0},
		{"B", 1},
		{"C", 1},
		{"D", 2},
	}
	for _, tt := range tests {
		if got := g.Level(tt.concept); got != tt.want {
			t.Errorf("Level(%s) = %d, want %d", tt.concept, got, tt.want)
		}
	}
}

func TestDependentsAndAllPrerequisites(t *testing.T) {
	g := diamondGraph(t)

	deps := g.Dependents("A")
	slices.Sort(deps)
	if !slices.Equal(deps, []string{"B", "C"}) {
		t.Errorf("Dependents(A) = %v, want [B C]", deps)
	}

	all := g.AllPrerequisites("D")
	slices.Sort(all)
	if !slices.Equal(all, []string{"A", "B", "C"}) {
		t.Errorf("AllPrerequisites(D) = %v, want [A B C]", all)
	}
}

func TestDefaultCurriculum(t *testing.T) {
	g := DefaultCurriculum()
	concepts := g.Concepts()
	if len(concepts) != 3 {
		t.Fatalf("curriculum has %d concepts, want 3", len(concepts))
	}
	if concepts[0] != ConceptRecursionBasics {
		t.Errorf("first concept = %q, want %q", concepts[0], ConceptRecursionBasics)
	}
	if g.Level(ConceptDynamicProg) != 2 {
		t.Errorf("Level(%s) = %d, want 2", ConceptDynamicProg, g.Level(ConceptDynamicProg))
	}
}

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusLocked, StatusOpened, true},
		{StatusOpened, StatusMastered, true},
		{StatusLocked, StatusMastered, false}, // never skip opened
		{StatusMastered, StatusOpened, false}, // never regress
		{StatusOpened, StatusLocked, false},
		{StatusMastered, StatusLocked, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanAdvanceTo(tt.to); got != tt.want {
			t.Errorf("%s → %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
