package conceptgraph

// Default curriculum concept names.
const (
	ConceptRecursionBasics = "Recursion Basics"
	ConceptBacktracking    = "Backtracking"
	ConceptDynamicProg     = "Dynamic Programming & Advanced Recursion"
)

// DefaultCurriculum returns the built-in recursion track:
//
//	Recursion Basics → Backtracking → Dynamic Programming & Advanced Recursion
func DefaultCurriculum() *Graph {
	g, err := New(
		[]string{
			ConceptRecursionBasics,
			ConceptBacktracking,
			ConceptDynamicProg,
		},
		map[string][]string{
			ConceptRecursionBasics: nil,
			ConceptBacktracking:    {ConceptRecursionBasics},
			ConceptDynamicProg:     {ConceptBacktracking},
		},
	)
	if err != nil {
		// The built-in curriculum is validated by tests; a failure here
		// is a programming error.
		panic(err)
	}
	return g
}
