// Package selection picks the next question: concept targeting, a
// Fisher-information shortlist, recency-based prioritization, and a
// final LLM ranking pass with deterministic fallbacks.
package selection

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/adapticode/adapticode/internal/catalog"
	"github.com/adapticode/adapticode/internal/conceptgraph"
	"github.com/adapticode/adapticode/internal/irt"
	"github.com/adapticode/adapticode/internal/learner"
	"github.com/adapticode/adapticode/internal/ranking"
)

// Selection strategies, recorded alongside each served question.
const (
	StrategyRanked       = "ranked"
	StrategyFallback     = "fallback"
	StrategyFirstAttempt = "first_attempt"
	StrategyMaxInfo      = "max_info"
)

const (
	firstAttemptExplanation = "This is your first question in this topic. It's designed to assess your current understanding."
	fallbackExplanation     = "This question is matched to your current skill level."
)

// Pick is a served question with the learner-facing explanation of why
// it was chosen.
type Pick struct {
	Item        catalog.Item
	Explanation string
	Strategy    string
}

// Policy selects the next question for a learner.
type Policy struct {
	catalog catalog.Provider
	ranker  ranking.Ranker
	cfg     Config
	now     func() time.Time
}

// Option configures a Policy.
type Option func(*Policy)

// WithClock overrides the time source used for recency scoring.
func WithClock(now func() time.Time) Option {
	return func(p *Policy) { p.now = now }
}

// New creates a selection Policy.
func New(cat catalog.Provider, ranker ranking.Ranker, cfg Config, opts ...Option) *Policy {
	p := &Policy{
		catalog: cat,
		ranker:  ranker,
		cfg:     cfg,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NextQuestion picks the next question for the learner, or (nil, nil)
// when no concept has any items to serve. Ranking failures never
// surface: the policy degrades to a deterministic difficulty match.
func (p *Policy) NextQuestion(ctx context.Context, st *learner.State) (*Pick, error) {
	topic, ok := p.targetTopic(st)
	if !ok {
		return nil, nil
	}

	items := p.catalog.ByTopic(topic)
	theta := st.Theta(topic)
	if len(items) == 0 {
		return nil, nil
	}

	shortlist := p.informationShortlist(items, theta)

	// Never serve the topic's last question twice in a row. Answers in
	// other topics in between do not reset this.
	topicHistory := st.Profile().TopicHistory(topic)
	if n := len(topicHistory); n > 0 {
		shortlist = removeItem(shortlist, topicHistory[n-1].ItemID)
	}
	if len(shortlist) == 0 {
		// Filtering left nothing, so allow a repeat rather than stall.
		best := maxInfoItem(items, theta)
		return &Pick{Item: best, Explanation: fallbackExplanation, Strategy: StrategyMaxInfo}, nil
	}

	if len(topicHistory) == 0 {
		best := maxInfoItem(shortlist, theta)
		return &Pick{Item: best, Explanation: firstAttemptExplanation, Strategy: StrategyFirstAttempt}, nil
	}

	candidates := p.prioritize(shortlist, st.Profile().History)
	return p.rank(ctx, st, topic, theta, candidates), nil
}

// targetTopic returns the concept to draw questions from: the next
// concept to learn, else the first mastered concept for review.
func (p *Policy) targetTopic(st *learner.State) (string, bool) {
	if topic, ok := st.NextConcept(); ok {
		return topic, true
	}
	for _, c := range st.Graph().Concepts() {
		if st.Status(c) == conceptgraph.StatusMastered {
			return c, true
		}
	}
	return "", false
}

// informationShortlist keeps the ShortlistSize most informative items
// at the learner's ability, ties broken by ID.
func (p *Policy) informationShortlist(items []catalog.Item, theta float64) []catalog.Item {
	sorted := make([]catalog.Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		ii := irt.Information(theta, sorted[i].Params())
		ij := irt.Information(theta, sorted[j].Params())
		if ii != ij {
			return ii > ij
		}
		return sorted[i].ID < sorted[j].ID
	})
	if len(sorted) > p.cfg.ShortlistSize {
		sorted = sorted[:p.cfg.ShortlistSize]
	}
	return sorted
}

// prioritize orders the shortlist by re-presentation priority and keeps
// the top FinalCandidates.
func (p *Policy) prioritize(shortlist []catalog.Item, history []learner.Outcome) []catalog.Item {
	stats := collectStats(history)
	now := p.now()

	sorted := make([]catalog.Item, len(shortlist))
	copy(sorted, shortlist)
	sort.Slice(sorted, func(i, j int) bool {
		pi := p.priority(sorted[i].ID, stats, now)
		pj := p.priority(sorted[j].ID, stats, now)
		if pi != pj {
			return pi > pj
		}
		return sorted[i].ID < sorted[j].ID
	})
	if len(sorted) > p.cfg.FinalCandidates {
		sorted = sorted[:p.cfg.FinalCandidates]
	}
	return sorted
}

// rank asks the ranking collaborator to choose among the candidates.
// Any failure falls back to the candidate whose difficulty is closest
// to the learner's ability.
func (p *Policy) rank(ctx context.Context, st *learner.State, topic string, theta float64, candidates []catalog.Item) *Pick {
	recent := st.Profile().RecentPerformance(topic, p.cfg.RecentPerformanceWindow)
	correct := 0
	for _, c := range recent {
		if c {
			correct++
		}
	}

	req := ranking.Request{
		Theta:          theta,
		Topic:          topic,
		RecentAttempts: len(recent),
		RecentCorrect:  correct,
	}
	for _, c := range candidates {
		req.Candidates = append(req.Candidates, ranking.Candidate{
			ID:          c.ID,
			Difficulty:  c.B,
			Description: c.Description,
		})
	}

	rankCtx, cancel := context.WithTimeout(ctx, p.cfg.RankTimeout)
	defer cancel()

	dec, err := p.ranker.Rank(rankCtx, req)
	if err != nil {
		best := closestDifficulty(candidates, theta)
		return &Pick{Item: best, Explanation: fallbackExplanation, Strategy: StrategyFallback}
	}

	item := matchCandidate(candidates, dec.SelectedID)
	return &Pick{Item: item, Explanation: dec.Explanation, Strategy: StrategyRanked}
}

// matchCandidate resolves the ranker's ID against the candidate list:
// exact match, then case-insensitive substring in either direction,
// then the first candidate.
func matchCandidate(candidates []catalog.Item, selected string) catalog.Item {
	for _, c := range candidates {
		if c.ID == selected {
			return c
		}
	}

	lower := strings.ToLower(selected)
	for _, c := range candidates {
		id := strings.ToLower(c.ID)
		if strings.Contains(id, lower) || strings.Contains(lower, id) {
			return c
		}
	}

	return candidates[0]
}

// maxInfoItem returns the item with the highest Fisher information at
// the learner's ability, ties broken by ID.
func maxInfoItem(items []catalog.Item, theta float64) catalog.Item {
	best := items[0]
	bestInfo := irt.Information(theta, best.Params())
	for _, it := range items[1:] {
		info := irt.Information(theta, it.Params())
		if info > bestInfo || (info == bestInfo && it.ID < best.ID) {
			best = it
			bestInfo = info
		}
	}
	return best
}

// closestDifficulty returns the candidate whose difficulty is nearest
// the learner's ability.
func closestDifficulty(candidates []catalog.Item, theta float64) catalog.Item {
	best := candidates[0]
	bestDist := math.Abs(best.B - theta)
	for _, c := range candidates[1:] {
		if d := math.Abs(c.B - theta); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

func removeItem(items []catalog.Item, id string) []catalog.Item {
	out := items[:0:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}
