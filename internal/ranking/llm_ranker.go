package ranking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/adapticode/adapticode/internal/llm"
)

// RankerConfig holds configuration for the LLM ranker.
type RankerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultRankerConfig returns sensible defaults.
func DefaultRankerConfig() RankerConfig {
	return RankerConfig{
		MaxTokens:   256,
		Temperature: 0.3,
	}
}

// LLMRanker picks the next question via an LLM call.
type LLMRanker struct {
	provider llm.Provider
	cfg      RankerConfig
}

// NewLLMRanker creates an LLM-backed Ranker.
func NewLLMRanker(provider llm.Provider, cfg RankerConfig) *LLMRanker {
	return &LLMRanker{provider: provider, cfg: cfg}
}

// rankingOutput is the raw LLM response.
type rankingOutput struct {
	SelectedQuestion string `json:"selected_question"`
	Explanation      string `json:"explanation"`
}

// Rank asks the LLM to choose among the candidates. With a single
// candidate the call is skipped; there is nothing to rank.
func (r *LLMRanker) Rank(ctx context.Context, req Request) (*Decision, error) {
	if len(req.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates to rank")
	}
	if len(req.Candidates) == 1 {
		only := req.Candidates[0]
		return &Decision{
			SelectedID:  only.ID,
			Explanation: "This question is the best match for your current level in " + req.Topic + ".",
		}, nil
	}

	ctx = llm.WithPurpose(ctx, "question-ranking")

	userMsg, err := buildRankingMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build ranking prompt: %w", err)
	}

	llmReq := llm.Request{
		System: rankingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      RankingSchema,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	}

	resp, err := r.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("LLM ranking failed: %w", err)
	}

	var raw rankingOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse ranking response: %w", err)
	}
	if raw.SelectedQuestion == "" {
		return nil, fmt.Errorf("ranking response has empty selection")
	}

	return &Decision{
		SelectedID:  raw.SelectedQuestion,
		Explanation: limitSentences(raw.Explanation, 3),
	}, nil
}

const rankingSystemPrompt = `You are a coding tutor choosing the next practice question for a student. Pick exactly one question from the candidate list.

Instructions:
- Only use question IDs from the list provided. Do NOT invent IDs.
- Prefer the question whose difficulty best matches the student's level, using their recent performance as a signal.
- Address the explanation directly to the student in an encouraging tone.
- Keep the explanation to at most three sentences.`

var rankingUserTemplate = template.Must(template.New("ranking").Parse(`Topic: {{.Topic}}
Student level: {{.Level}} (ability score {{printf "%.2f" .Theta}})
Recent performance: {{.RecentCorrect}} of the last {{.RecentAttempts}} answers correct

Candidate questions:
{{range .Candidates}}- {{.ID}} ({{.Relative}}): {{.Description}}
{{end}}`))

type rankingPrompt struct {
	Topic          string
	Level          string
	Theta          float64
	RecentAttempts int
	RecentCorrect  int
	Candidates     []promptCandidate
}

type promptCandidate struct {
	ID          string
	Relative    string
	Description string
}

func buildRankingMessage(req Request) (string, error) {
	p := rankingPrompt{
		Topic:          req.Topic,
		Level:          abilityLevel(req.Theta),
		Theta:          req.Theta,
		RecentAttempts: req.RecentAttempts,
		RecentCorrect:  req.RecentCorrect,
	}
	for _, c := range req.Candidates {
		p.Candidates = append(p.Candidates, promptCandidate{
			ID:          c.ID,
			Relative:    relativeDifficulty(c.Difficulty, req.Theta),
			Description: c.Description,
		})
	}

	var buf bytes.Buffer
	if err := rankingUserTemplate.Execute(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// abilityLevel maps theta to a coarse label the LLM can reason about.
func abilityLevel(theta float64) string {
	switch {
	case theta < -0.5:
		return "beginner"
	case theta > 0.5:
		return "advanced"
	default:
		return "intermediate"
	}
}

// relativeDifficulty describes a candidate's difficulty relative to the
// student's ability.
func relativeDifficulty(difficulty, theta float64) string {
	switch {
	case difficulty < theta-0.5:
		return "easier than your level"
	case difficulty > theta+0.5:
		return "harder than your level"
	default:
		return "matched to your level"
	}
}

// limitSentences truncates text to at most n sentences.
func limitSentences(text string, n int) string {
	text = strings.TrimSpace(text)
	count := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			count++
			if count == n {
				return text[:i+1]
			}
		}
	}
	return text
}
