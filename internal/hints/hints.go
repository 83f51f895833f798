// Package hints produces escalating hints for a question, LLM-backed
// with deterministic fallbacks so the learner always gets something.
package hints

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/adapticode/adapticode/internal/llm"
)

// MaxLevel is the deepest hint escalation level.
const MaxLevel = 3

// Hint sources.
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

// Config holds configuration for the hint service.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   200,
		Temperature: 0.5,
	}
}

// Request identifies the question and how far to escalate.
type Request struct {
	QuestionID  string
	Topic       string
	Description string
	Level       int // 1 is the gentlest, MaxLevel the most revealing
}

// Hint is one hint shown to the learner.
type Hint struct {
	Text   string
	Level  int
	Source string
}

// Service generates hints.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a hint Service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// hintOutput is the raw LLM response.
type hintOutput struct {
	Hint string `json:"hint"`
}

// HintSchema defines the JSON schema for hint responses.
var HintSchema = &llm.Schema{
	Name:        "question-hint",
	Description: "A single hint for a coding question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "The hint text, one or two sentences, no full solution code",
			},
		},
		"required":             []any{"hint"},
		"additionalProperties": false,
	},
}

// Hint returns a hint at the requested level. Levels outside
// [1, MaxLevel] are clamped. LLM failures degrade to a canned
// level-appropriate hint rather than erroring.
func (s *Service) Hint(ctx context.Context, req Request) (*Hint, error) {
	if req.Level < 1 {
		req.Level = 1
	}
	if req.Level > MaxLevel {
		req.Level = MaxLevel
	}

	ctx = llm.WithPurpose(ctx, "hint")

	userMsg, err := buildHintMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build hint prompt: %w", err)
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: hintSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      HintSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return fallbackHint(req.Level), nil
	}

	var raw hintOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil || raw.Hint == "" {
		return fallbackHint(req.Level), nil
	}

	return &Hint{Text: raw.Hint, Level: req.Level, Source: SourceLLM}, nil
}

const hintSystemPrompt = `You are a coding tutor helping a student who is stuck on a recursion exercise. Give exactly one hint.

Instructions:
- Level 1: a gentle nudge toward the key observation. Do not mention specific techniques.
- Level 2: name the approach (e.g. the recurrence or base case) without writing code.
- Level 3: outline the solution structure step by step, still without complete code.
- Never include a full working solution.
- Keep the hint to one or two sentences.`

var hintUserTemplate = template.Must(template.New("hint").Parse(`Topic: {{.Topic}}
Question: {{.Description}}
Hint level requested: {{.Level}} of 3`))

func buildHintMessage(req Request) (string, error) {
	var buf bytes.Buffer
	if err := hintUserTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// fallbackHint returns a canned hint when the LLM is unavailable.
func fallbackHint(level int) *Hint {
	var text string
	switch level {
	case 1:
		text = "Start by identifying the smallest input you can answer directly. That is your base case."
	case 2:
		text = "Express the answer for input n in terms of the answer for a smaller input, then make sure the base case stops the recursion."
	default:
		text = "Write the base case first, then the recursive call on a smaller input, and combine its result into the answer. Trace it by hand on a tiny example."
	}
	return &Hint{Text: text, Level: level, Source: SourceFallback}
}
