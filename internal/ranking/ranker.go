// Package ranking asks an LLM to choose the next question from a small
// pre-filtered candidate list and explain the choice to the learner.
package ranking

import "context"

// Candidate is one question offered to the ranker.
type Candidate struct {
	ID          string
	Difficulty  float64
	Description string
}

// Request carries the learner context the ranker needs.
type Request struct {
	Theta          float64
	Topic          string
	RecentAttempts int
	RecentCorrect  int
	Candidates     []Candidate
}

// Decision is the ranker's pick. SelectedID is whatever identifier the
// ranker produced; callers match it against the candidate list
// themselves and fall back when it matches nothing.
type Decision struct {
	SelectedID  string
	Explanation string
}

// Ranker chooses one candidate and explains why.
type Ranker interface {
	Rank(ctx context.Context, req Request) (*Decision, error)
}
