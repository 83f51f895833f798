// Package conceptgraph models the static prerequisite DAG between
// curriculum concepts and the mastery state machine over it.
package conceptgraph

import (
	"fmt"
	"slices"
)

// Graph is an immutable prerequisite DAG. The concept slice passed to
// New defines the canonical ordering used for deterministic topic
// selection. Graphs are built once at startup and passed by reference;
// a cycle is a fatal configuration error surfaced at construction.
type Graph struct {
	concepts   []string
	prereqs    map[string][]string
	dependents map[string][]string
	levels     map[string]int
}

// New constructs a Graph from a canonical concept ordering and a
// concept→prerequisites mapping. It verifies that every referenced
// concept exists and that the graph is acyclic (Kahn's algorithm),
// and precomputes reverse edges and longest-path levels.
func New(concepts []string, prereqs map[string][]string) (*Graph, error) {
	if len(concepts) == 0 {
		return nil, fmt.Errorf("concept graph has no concepts")
	}

	known := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		if known[c] {
			return nil, fmt.Errorf("duplicate concept: %q", c)
		}
		known[c] = true
	}

	g := &Graph{
		concepts:   slices.Clone(concepts),
		prereqs:    make(map[string][]string, len(concepts)),
		dependents: make(map[string][]string),
		levels:     make(map[string]int, len(concepts)),
	}

	for _, c := range concepts {
		for _, p := range prereqs[c] {
			if !known[p] {
				return nil, fmt.Errorf("concept %q requires unknown concept %q", c, p)
			}
			g.dependents[p] = append(g.dependents[p], c)
		}
		g.prereqs[c] = slices.Clone(prereqs[c])
	}

	// Kahn's algorithm: cycle detection and longest-path levels in one
	// pass. Level 0 = no prerequisites; used only for display ordering.
	inDegree := make(map[string]int, len(concepts))
	var queue []string
	for _, c := range concepts {
		inDegree[c] = len(g.prereqs[c])
		if inDegree[c] == 0 {
			queue = append(queue, c)
			g.levels[c] = 0
		}
	}

	processed := 0
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		processed++

		for _, dep := range g.dependents[c] {
			if g.levels[c]+1 > g.levels[dep] {
				g.levels[dep] = g.levels[c] + 1
			}
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if processed != len(concepts) {
		return nil, fmt.Errorf("concept graph contains a cycle")
	}

	return g, nil
}

// Concepts returns all concepts in canonical order.
func (g *Graph) Concepts() []string {
	return slices.Clone(g.concepts)
}

// Contains reports whether the concept exists in the graph.
func (g *Graph) Contains(concept string) bool {
	_, ok := g.prereqs[concept]
	return ok
}

// Prerequisites returns the direct prerequisites of a concept.
func (g *Graph) Prerequisites(concept string) []string {
	return slices.Clone(g.prereqs[concept])
}

// Dependents returns the concepts that directly depend on concept.
func (g *Graph) Dependents(concept string) []string {
	return slices.Clone(g.dependents[concept])
}

// AllPrerequisites returns the transitive prerequisite closure of a
// concept, in no particular order.
func (g *Graph) AllPrerequisites(concept string) []string {
	seen := make(map[string]bool)
	stack := []string{concept}
	var out []string
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range g.prereqs[c] {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
				stack = append(stack, p)
			}
		}
	}
	return out
}

// Level returns the longest-path depth of a concept from a root
// (a concept with no prerequisites). Display ordering only.
func (g *Graph) Level(concept string) int {
	return g.levels[concept]
}

// CanUnlock reports whether every direct prerequisite of the concept
// is mastered. Concepts with no prerequisites can always unlock.
func (g *Graph) CanUnlock(concept string, status map[string]Status) bool {
	for _, p := range g.prereqs[concept] {
		if status[p] != StatusMastered {
			return false
		}
	}
	return true
}

// ShouldUnlock reports whether the concept is currently locked and its
// prerequisites are all mastered.
func (g *Graph) ShouldUnlock(concept string, status map[string]Status) bool {
	current, ok := status[concept]
	if ok && current != StatusLocked {
		return false
	}
	return g.CanUnlock(concept, status)
}

// UnlockableConcepts returns, in canonical order, every locked concept
// whose prerequisites are all mastered.
func (g *Graph) UnlockableConcepts(status map[string]Status) []string {
	var out []string
	for _, c := range g.concepts {
		if g.ShouldUnlock(c, status) {
			out = append(out, c)
		}
	}
	return out
}

// AvailableConcepts returns, in canonical order, every concept that is
// opened or mastered.
func (g *Graph) AvailableConcepts(status map[string]Status) []string {
	var out []string
	for _, c := range g.concepts {
		if s := status[c]; s == StatusOpened || s == StatusMastered {
			out = append(out, c)
		}
	}
	return out
}

// NextConceptToLearn returns the concept the learner should focus on:
// the first opened concept in canonical order, else the first concept
// that can unlock right now (prerequisites completed independently of
// any explicit unlock event), else none.
func (g *Graph) NextConceptToLearn(status map[string]Status) (string, bool) {
	for _, c := range g.concepts {
		if status[c] == StatusOpened {
			return c, true
		}
	}
	if unlockable := g.UnlockableConcepts(status); len(unlockable) > 0 {
		return unlockable[0], true
	}
	return "", false
}
