package selection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adapticode/adapticode/internal/catalog"
	"github.com/adapticode/adapticode/internal/conceptgraph"
	"github.com/adapticode/adapticode/internal/irt"
	"github.com/adapticode/adapticode/internal/learner"
	"github.com/adapticode/adapticode/internal/ranking"
)

// stubRanker returns a fixed decision or error and records requests.
type stubRanker struct {
	dec   *ranking.Decision
	err   error
	calls []ranking.Request
}

func (s *stubRanker) Rank(_ context.Context, req ranking.Request) (*ranking.Decision, error) {
	s.calls = append(s.calls, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.dec, nil
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Item{
		{ID: "fibonacci", Topic: conceptgraph.ConceptRecursionBasics, Description: "Compute fib(n)", A: 1.2, B: -0.4, C: 0.25},
		{ID: "factorial", Topic: conceptgraph.ConceptRecursionBasics, Description: "Compute n!", A: 1.0, B: -1.0, C: 0.25},
		{ID: "hanoi", Topic: conceptgraph.ConceptRecursionBasics, Description: "Towers of Hanoi", A: 1.1, B: 0.3, C: 0.25},
		{ID: "sum-digits", Topic: conceptgraph.ConceptRecursionBasics, Description: "Sum digits recursively", A: 0.9, B: -0.7, C: 0.25},
		{ID: "power-set", Topic: conceptgraph.ConceptBacktracking, Description: "Generate the power set", A: 1.3, B: 0.8, C: 0.25},
	})
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	return c
}

func testState(t *testing.T) *learner.State {
	t.Helper()
	g := conceptgraph.DefaultCurriculum()
	est := irt.NewEstimator(irt.DefaultConfig())
	p := learner.NewProfile("test", g, 0)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var tick int
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return learner.NewState(g, est, learner.DefaultConfig(), p, learner.WithClock(clock))
}

func easyParams() irt.ItemParams {
	return irt.ItemParams{Discrimination: 1.0, Difficulty: -1.0, Guessing: 0.25}
}

func TestNextQuestion_FirstAttemptSkipsRanker(t *testing.T) {
	rk := &stubRanker{}
	p := New(testCatalog(t), rk, DefaultConfig())
	st := testState(t)

	pick, err := p.NextQuestion(context.Background(), st)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if pick == nil {
		t.Fatal("expected a pick for fresh learner")
	}
	if pick.Strategy != StrategyFirstAttempt {
		t.Errorf("strategy = %q, want %q", pick.Strategy, StrategyFirstAttempt)
	}
	if pick.Item.Topic != conceptgraph.ConceptRecursionBasics {
		t.Errorf("topic = %q, want root concept", pick.Item.Topic)
	}
	if pick.Explanation != firstAttemptExplanation {
		t.Errorf("explanation = %q, want first-attempt text", pick.Explanation)
	}
	if len(rk.calls) != 0 {
		t.Errorf("ranker called %d times on first attempt, want 0", len(rk.calls))
	}
}

func TestNextQuestion_RankedPathHonorsDecision(t *testing.T) {
	rk := &stubRanker{dec: &ranking.Decision{SelectedID: "hanoi", Explanation: "Step it up a little."}}
	p := New(testCatalog(t), rk, DefaultConfig())
	st := testState(t)

	st.RecordAnswer(learner.Answer{
		ItemID: "factorial", Topic: conceptgraph.ConceptRecursionBasics,
		Params: easyParams(), Correct: true,
	})

	pick, err := p.NextQuestion(context.Background(), st)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if pick.Strategy != StrategyRanked {
		t.Errorf("strategy = %q, want %q", pick.Strategy, StrategyRanked)
	}
	if pick.Item.ID != "hanoi" {
		t.Errorf("item = %q, want hanoi", pick.Item.ID)
	}
	if pick.Explanation != "Step it up a little." {
		t.Errorf("explanation = %q, want ranker text", pick.Explanation)
	}

	if len(rk.calls) != 1 {
		t.Fatalf("ranker calls = %d, want 1", len(rk.calls))
	}
	req := rk.calls[0]
	if req.Topic != conceptgraph.ConceptRecursionBasics {
		t.Errorf("ranker topic = %q", req.Topic)
	}
	if req.RecentAttempts != 1 || req.RecentCorrect != 1 {
		t.Errorf("recent performance = %d/%d, want 1/1", req.RecentCorrect, req.RecentAttempts)
	}
}

func TestNextQuestion_NeverRepeatsLastItem(t *testing.T) {
	rk := &stubRanker{dec: &ranking.Decision{SelectedID: "fibonacci", Explanation: "ok"}}
	p := New(testCatalog(t), rk, DefaultConfig())
	st := testState(t)

	st.RecordAnswer(learner.Answer{
		ItemID: "hanoi", Topic: conceptgraph.ConceptRecursionBasics,
		Params: easyParams(), Correct: false,
	})

	pick, err := p.NextQuestion(context.Background(), st)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if pick.Item.ID == "hanoi" {
		t.Error("served the same question twice in a row")
	}
	for _, c := range rk.calls[0].Candidates {
		if c.ID == "hanoi" {
			t.Error("last-attempted item offered to ranker")
		}
	}
}

func TestNextQuestion_NoRepeatSurvivesOtherTopicAnswers(t *testing.T) {
	rk := &stubRanker{dec: &ranking.Decision{SelectedID: "fibonacci", Explanation: "ok"}}
	p := New(testCatalog(t), rk, DefaultConfig())
	st := testState(t)

	// Two recursion answers, then a backtracking answer in between. The
	// recursion topic's own last item is hanoi, not power-set.
	st.RecordAnswer(learner.Answer{
		ItemID: "factorial", Topic: conceptgraph.ConceptRecursionBasics,
		Params: easyParams(), Correct: true,
	})
	st.RecordAnswer(learner.Answer{
		ItemID: "hanoi", Topic: conceptgraph.ConceptRecursionBasics,
		Params: easyParams(), Correct: false,
	})
	st.RecordAnswer(learner.Answer{
		ItemID: "power-set", Topic: conceptgraph.ConceptBacktracking,
		Params: easyParams(), Correct: true,
	})

	pick, err := p.NextQuestion(context.Background(), st)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if pick.Item.ID == "hanoi" {
		t.Error("served the topic's last question again after an answer in another topic")
	}
	if len(rk.calls) != 1 {
		t.Fatalf("ranker calls = %d, want 1", len(rk.calls))
	}
	for _, c := range rk.calls[0].Candidates {
		if c.ID == "hanoi" {
			t.Error("topic's last-attempted item offered to ranker")
		}
	}
}

func TestNextQuestion_RankerFailureFallsBackToClosestDifficulty(t *testing.T) {
	rk := &stubRanker{err: errors.New("provider down")}
	p := New(testCatalog(t), rk, DefaultConfig())
	st := testState(t)

	st.RecordAnswer(learner.Answer{
		ItemID: "power-set", Topic: conceptgraph.ConceptBacktracking,
		Params: easyParams(), Correct: true,
	})
	st.RecordAnswer(learner.Answer{
		ItemID: "fibonacci", Topic: conceptgraph.ConceptRecursionBasics,
		Params: easyParams(), Correct: true,
	})

	pick, err := p.NextQuestion(context.Background(), st)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if pick.Strategy != StrategyFallback {
		t.Errorf("strategy = %q, want %q", pick.Strategy, StrategyFallback)
	}
	if pick.Explanation != fallbackExplanation {
		t.Errorf("explanation = %q, want fallback text", pick.Explanation)
	}
	// Theta is 0; the remaining candidates after dropping fibonacci are
	// factorial (-1.0), hanoi (0.3), sum-digits (-0.7). Closest is hanoi.
	if pick.Item.ID != "hanoi" {
		t.Errorf("fallback item = %q, want hanoi (closest difficulty)", pick.Item.ID)
	}
}

func TestNextQuestion_SubstringMatchOnRankerID(t *testing.T) {
	rk := &stubRanker{dec: &ranking.Decision{SelectedID: "The Fibonacci question", Explanation: "ok"}}
	p := New(testCatalog(t), rk, DefaultConfig())
	st := testState(t)

	st.RecordAnswer(learner.Answer{
		ItemID: "hanoi", Topic: conceptgraph.ConceptRecursionBasics,
		Params: easyParams(), Correct: true,
	})

	pick, err := p.NextQuestion(context.Background(), st)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if pick.Item.ID != "fibonacci" {
		t.Errorf("item = %q, want fibonacci via substring match", pick.Item.ID)
	}
}

func TestNextQuestion_UnmatchedRankerIDUsesFirstCandidate(t *testing.T) {
	rk := &stubRanker{dec: &ranking.Decision{SelectedID: "no-such-question", Explanation: "ok"}}
	p := New(testCatalog(t), rk, DefaultConfig())
	st := testState(t)

	st.RecordAnswer(learner.Answer{
		ItemID: "hanoi", Topic: conceptgraph.ConceptRecursionBasics,
		Params: easyParams(), Correct: true,
	})

	pick, err := p.NextQuestion(context.Background(), st)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if len(rk.calls) != 1 {
		t.Fatalf("ranker calls = %d, want 1", len(rk.calls))
	}
	if pick.Item.ID != rk.calls[0].Candidates[0].ID {
		t.Errorf("item = %q, want first candidate %q", pick.Item.ID, rk.calls[0].Candidates[0].ID)
	}
}

func TestNextQuestion_ReviewsMasteredTopicWhenDone(t *testing.T) {
	rk := &stubRanker{dec: &ranking.Decision{SelectedID: "fibonacci", Explanation: "ok"}}
	p := New(testCatalog(t), rk, DefaultConfig())
	st := testState(t)

	for _, c := range st.Graph().Concepts() {
		st.Profile().ConceptStatus[c] = conceptgraph.StatusMastered
	}

	pick, err := p.NextQuestion(context.Background(), st)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if pick == nil {
		t.Fatal("expected a review pick")
	}
	if pick.Item.Topic != conceptgraph.ConceptRecursionBasics {
		t.Errorf("review topic = %q, want first mastered concept", pick.Item.Topic)
	}
}

func TestNextQuestion_NoItemsForTopicReturnsNil(t *testing.T) {
	// Catalog with items only for a topic the learner has not reached.
	c, err := catalog.New([]catalog.Item{
		{ID: "knapsack", Topic: conceptgraph.ConceptDynamicProg, A: 1.0, B: 1.0, C: 0.25},
	})
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	p := New(c, &stubRanker{}, DefaultConfig())
	st := testState(t)

	pick, err := p.NextQuestion(context.Background(), st)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if pick != nil {
		t.Errorf("expected nil pick, got %+v", pick)
	}
}

func TestNextQuestion_SingleItemTopicAllowsRepeat(t *testing.T) {
	// One item in the topic and it was just attempted: the no-repeat
	// rule empties the shortlist, so the pick falls back to the most
	// informative item of the full topic set.
	c, err := catalog.New([]catalog.Item{
		{ID: "factorial", Topic: conceptgraph.ConceptRecursionBasics, A: 1.0, B: -1.0, C: 0.25},
	})
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	rk := &stubRanker{}
	p := New(c, rk, DefaultConfig())
	st := testState(t)

	st.RecordAnswer(learner.Answer{
		ItemID: "factorial", Topic: conceptgraph.ConceptRecursionBasics,
		Params: easyParams(), Correct: false,
	})

	pick, err := p.NextQuestion(context.Background(), st)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if pick == nil {
		t.Fatal("expected a pick")
	}
	if pick.Strategy != StrategyMaxInfo {
		t.Errorf("strategy = %q, want %q", pick.Strategy, StrategyMaxInfo)
	}
	if pick.Item.ID != "factorial" {
		t.Errorf("item = %q, want factorial", pick.Item.ID)
	}
	if len(rk.calls) != 0 {
		t.Errorf("ranker called %d times, want 0", len(rk.calls))
	}
}

func TestPriority_UnseenBeatsSeen(t *testing.T) {
	p := New(testCatalog(t), &stubRanker{}, DefaultConfig())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	stats := map[string]itemStats{
		"seen-right": {lastAt: now.Add(-time.Hour), lastCorrect: true},
		"seen-wrong": {lastAt: now.Add(-time.Hour), lastCorrect: false, wrongCount: 1},
	}

	unseen := p.priority("never-seen", stats, now)
	right := p.priority("seen-right", stats, now)
	wrong := p.priority("seen-wrong", stats, now)

	if !(unseen > wrong && wrong > right) {
		t.Errorf("priority order wrong: unseen=%v wrong=%v right=%v", unseen, wrong, right)
	}
	// Same age, one wrong answer: 2.0 recency boost times 1.1 count boost.
	if want := right * 2.0 * 1.1; wrong < want-1e-9 || wrong > want+1e-9 {
		t.Errorf("wrong priority = %v, want %v", wrong, want)
	}
}
