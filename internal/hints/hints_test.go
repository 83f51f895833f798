package hints

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/adapticode/adapticode/internal/llm"
)

func hintRequest(level int) Request {
	return Request{
		QuestionID:  "fibonacci",
		Topic:       "Recursion Basics",
		Description: "Compute the nth Fibonacci number",
		Level:       level,
	}
}

func TestHint_UsesLLMResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint":"What are fib(0) and fib(1)?"}`),
	})
	s := NewService(mock, DefaultConfig())

	h, err := s.Hint(context.Background(), hintRequest(1))
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if h.Source != SourceLLM {
		t.Errorf("source = %q, want %q", h.Source, SourceLLM)
	}
	if h.Text != "What are fib(0) and fib(1)?" {
		t.Errorf("text = %q", h.Text)
	}
	if h.Level != 1 {
		t.Errorf("level = %d, want 1", h.Level)
	}
}

func TestHint_PromptCarriesLevelAndQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint":"ok"}`),
	})
	s := NewService(mock, DefaultConfig())

	if _, err := s.Hint(context.Background(), hintRequest(2)); err != nil {
		t.Fatalf("Hint: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Fibonacci") || !strings.Contains(msg, "2 of 3") {
		t.Errorf("prompt missing question or level:\n%s", msg)
	}
}

func TestHint_FallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	s := NewService(mock, DefaultConfig())

	h, err := s.Hint(context.Background(), hintRequest(2))
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if h.Source != SourceFallback {
		t.Errorf("source = %q, want %q", h.Source, SourceFallback)
	}
	if h.Text == "" {
		t.Error("fallback hint is empty")
	}
}

func TestHint_FallsBackOnEmptyHint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint":""}`),
	})
	s := NewService(mock, DefaultConfig())

	h, err := s.Hint(context.Background(), hintRequest(1))
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if h.Source != SourceFallback {
		t.Errorf("source = %q, want %q", h.Source, SourceFallback)
	}
}

func TestHint_ClampsLevel(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	s := NewService(mock, DefaultConfig())

	h, _ := s.Hint(context.Background(), hintRequest(0))
	if h.Level != 1 {
		t.Errorf("level = %d, want clamped to 1", h.Level)
	}
	h, _ = s.Hint(context.Background(), hintRequest(9))
	if h.Level != MaxLevel {
		t.Errorf("level = %d, want clamped to %d", h.Level, MaxLevel)
	}
}

func TestFallbackHints_DistinctPerLevel(t *testing.T) {
	seen := make(map[string]bool)
	for level := 1; level <= MaxLevel; level++ {
		h := fallbackHint(level)
		if seen[h.Text] {
			t.Errorf("level %d fallback duplicates another level", level)
		}
		seen[h.Text] = true
	}
}
