package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	beta := -0.5
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:       1,
			LearnerID:     "local",
			Theta:         map[string]float64{"Recursion Basics": 0.7},
			ConceptStatus: map[string]string{"Recursion Basics": "opened"},
			Outcomes: []OutcomeRecord{
				{QuestionID: "fibonacci", Topic: "Recursion Basics", Correct: true, Beta: &beta},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Theta["Recursion Basics"] != 0.7 {
		t.Errorf("theta = %v, want 0.7", snap.Data.Theta["Recursion Basics"])
	}
	if len(snap.Data.Outcomes) != 1 || snap.Data.Outcomes[0].Beta == nil || *snap.Data.Outcomes[0].Beta != -0.5 {
		t.Errorf("outcomes round-trip failed: %+v", snap.Data.Outcomes)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}

func TestEventRepo_AppendAndTopicAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{QuestionID: "fibonacci", Topic: "Recursion Basics", Correct: true, PassRate: 1.0, ThetaBefore: 0, ThetaAfter: 0},
		{QuestionID: "factorial", Topic: "Recursion Basics", Correct: true, PassRate: 1.0, ThetaBefore: 0, ThetaAfter: 0.4},
		{QuestionID: "hanoi", Topic: "Recursion Basics", Correct: false, PassRate: 0.5, ThetaBefore: 0.4, ThetaAfter: 0.2},
		{QuestionID: "power-set", Topic: "Backtracking", Correct: false, PassRate: 0, ThetaBefore: 0, ThetaAfter: 0},
	}
	for _, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	acc, err := repo.TopicAccuracy(ctx, "Recursion Basics")
	if err != nil {
		t.Fatalf("topic accuracy: %v", err)
	}
	if want := 2.0 / 3.0; acc < want-1e-9 || acc > want+1e-9 {
		t.Errorf("accuracy = %v, want %v", acc, want)
	}

	acc, err = repo.TopicAccuracy(ctx, "unseen-topic")
	if err != nil {
		t.Fatalf("topic accuracy (unseen): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy for unseen topic = %v, want 0", acc)
	}
}

func TestEventRepo_MasterySelectionHint(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendMastery(ctx, MasteryEventData{
		Concept:    "Recursion Basics",
		FromStatus: "opened",
		ToStatus:   "mastered",
		Theta:      1.3,
		Unlocked:   []string{"Backtracking"},
	})
	if err != nil {
		t.Fatalf("append mastery: %v", err)
	}

	err = repo.AppendSelection(ctx, SelectionEventData{
		QuestionID: "fibonacci", Topic: "Recursion Basics",
		Strategy: "first_attempt", Explanation: "first question",
	})
	if err != nil {
		t.Fatalf("append selection: %v", err)
	}

	err = repo.AppendHint(ctx, HintEventData{
		QuestionID: "fibonacci", Topic: "Recursion Basics",
		Level: 1, HintText: "Think about the base case.", Source: "fallback",
	})
	if err != nil {
		t.Fatalf("append hint: %v", err)
	}
}

func TestEventRepo_LLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "question-ranking", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "question-ranking", InputTokens: 120, OutputTokens: 60, Success: false, ErrorMessage: "rate limited"},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "hint", InputTokens: 80, OutputTokens: 40, Success: true},
	}
	for _, r := range reqs {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append llm request: %v", err)
		}
	}

	rows, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("llm usage: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("usage rows = %d, want 2", len(rows))
	}
	// Sorted by model then purpose: hint before question-ranking.
	if rows[0].Purpose != "hint" || rows[0].Requests != 1 {
		t.Errorf("rows[0] = %+v, want hint with 1 request", rows[0])
	}
	ranking := rows[1]
	if ranking.Requests != 2 || ranking.Failures != 1 || ranking.InputTokens != 220 {
		t.Errorf("rows[1] = %+v, want 2 requests 1 failure 220 input tokens", ranking)
	}
}

func TestEventRepo_QueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "anthropic", Model: "claude-haiku", Purpose: "hint",
			InputTokens: 10 * (i + 1), Success: true,
			RequestBody: "prompt", ResponseBody: "completion",
		})
		require.NoError(t, err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Newest first.
	require.Greater(t, events[0].Sequence, events[1].Sequence)
	require.Equal(t, 30, events[0].InputTokens)
	require.Equal(t, "completion", events[0].ResponseBody)

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: events[1].Sequence})
	require.NoError(t, err)
	require.Len(t, after, 1)
}

func TestEventRepo_GetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "question-ranking",
		Success: false, ErrorMessage: "timeout",
	})
	require.NoError(t, err)

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	require.Equal(t, "timeout", e.ErrorMessage)

	missing, err := repo.GetLLMEvent(ctx, events[0].ID+999)
	require.NoError(t, err)
	require.Nil(t, missing)
}
