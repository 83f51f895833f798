package ranking

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/adapticode/adapticode/internal/llm"
)

func rankRequest() Request {
	return Request{
		Theta:          0.3,
		Topic:          "Recursion Basics",
		RecentAttempts: 5,
		RecentCorrect:  3,
		Candidates: []Candidate{
			{ID: "fibonacci", Difficulty: -0.5, Description: "Compute the nth Fibonacci number"},
			{ID: "hanoi", Difficulty: 0.4, Description: "Solve Towers of Hanoi"},
			{ID: "ackermann", Difficulty: 1.8, Description: "Evaluate the Ackermann function"},
		},
	}
}

func TestLLMRanker_ParsesDecision(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"selected_question":"hanoi","explanation":"This one matches your level. It builds on what you just practiced. Give it a try!"}`),
	})
	r := NewLLMRanker(mock, DefaultRankerConfig())

	dec, err := r.Rank(context.Background(), rankRequest())
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if dec.SelectedID != "hanoi" {
		t.Errorf("SelectedID = %q, want hanoi", dec.SelectedID)
	}
	if dec.Explanation == "" {
		t.Error("expected non-empty explanation")
	}
}

func TestLLMRanker_PromptContainsContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"selected_question":"fibonacci","explanation":"ok"}`),
	})
	r := NewLLMRanker(mock, DefaultRankerConfig())

	if _, err := r.Rank(context.Background(), rankRequest()); err != nil {
		t.Fatalf("Rank: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Recursion Basics",
		"intermediate",
		"3 of the last 5",
		"fibonacci",
		"harder than your level", // ackermann at 1.8 vs theta 0.3
		"easier than your level", // fibonacci at -0.5
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "question-ranking" {
		t.Error("expected question-ranking schema on request")
	}
}

func TestLLMRanker_SingleCandidateSkipsLLM(t *testing.T) {
	mock := llm.NewMockProvider()
	r := NewLLMRanker(mock, DefaultRankerConfig())

	req := rankRequest()
	req.Candidates = req.Candidates[:1]
	dec, err := r.Rank(context.Background(), req)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if dec.SelectedID != "fibonacci" {
		t.Errorf("SelectedID = %q, want fibonacci", dec.SelectedID)
	}
	if mock.CallCount() != 0 {
		t.Errorf("LLM called %d times for single candidate, want 0", mock.CallCount())
	}
}

func TestLLMRanker_EmptyCandidatesErrors(t *testing.T) {
	r := NewLLMRanker(llm.NewMockProvider(), DefaultRankerConfig())
	req := rankRequest()
	req.Candidates = nil
	if _, err := r.Rank(context.Background(), req); err == nil {
		t.Error("expected error for empty candidate list")
	}
}

func TestLLMRanker_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	r := NewLLMRanker(mock, DefaultRankerConfig())
	if _, err := r.Rank(context.Background(), rankRequest()); err == nil {
		t.Error("expected provider error to propagate")
	}
}

func TestLLMRanker_EmptySelectionErrors(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"selected_question":"","explanation":"hmm"}`),
	})
	r := NewLLMRanker(mock, DefaultRankerConfig())
	if _, err := r.Rank(context.Background(), rankRequest()); err == nil {
		t.Error("expected error for empty selection")
	}
}

func TestLimitSentences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"One. Two. Three. Four.", "One. Two. Three."},
		{"Just one sentence.", "Just one sentence."},
		{"No terminator at all", "No terminator at all"},
		{"Try it! You can do it. Really? Yes.", "Try it! You can do it. Really?"},
	}
	for _, tt := range tests {
		if got := limitSentences(tt.in, 3); got != tt.want {
			t.Errorf("limitSentences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
