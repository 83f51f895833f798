package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// OutcomeRecord is one persisted attempt inside a snapshot. Item
// parameters are pointers: attempts recorded before the question bank
// carried calibrated parameters have none, and estimation skips them.
type OutcomeRecord struct {
	QuestionID    string    `json:"question_id"`
	Topic         string    `json:"topic"`
	Correct       bool      `json:"correct"`
	AnsweredAt    time.Time `json:"answered_at"`
	TimeTakenSecs float64   `json:"time_taken_secs"`
	PassRate      float64   `json:"pass_rate"`
	ThetaBefore   float64   `json:"theta_before"`
	ThetaAfter    float64   `json:"theta_after"`
	Alpha         *float64  `json:"alpha,omitempty"`
	Beta          *float64  `json:"beta,omitempty"`
	Guessing      *float64  `json:"c,omitempty"`
	Feedback      string    `json:"feedback,omitempty"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version       int                `json:"version"`
	LearnerID     string             `json:"learner_id"`
	Theta         map[string]float64 `json:"theta"`
	ConceptStatus map[string]string  `json:"concept_status"`
	Outcomes      []OutcomeRecord    `json:"outcomes"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AnswerEventData captures one graded attempt.
type AnswerEventData struct {
	QuestionID  string
	Topic       string
	Correct     bool
	PassRate    float64
	TimeSecs    float64
	ThetaBefore float64
	ThetaAfter  float64
}

// MasteryEventData captures one concept status transition.
type MasteryEventData struct {
	Concept    string
	FromStatus string
	ToStatus   string
	Theta      float64
	Unlocked   []string
}

// SelectionEventData captures which question was served and why.
type SelectionEventData struct {
	QuestionID  string
	Topic       string
	Strategy    string // ranked, fallback, first_attempt, max_info
	Explanation string
}

// HintEventData captures one hint shown to the learner.
type HintEventData struct {
	QuestionID string
	Topic      string
	Level      int
	HintText   string
	Source     string // llm or fallback
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is one persisted LLM request event, as read back for
// inspection commands.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageRow is one aggregated line of the LLM usage report.
type LLMUsageRow struct {
	Model        string
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswer records a graded attempt.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendMastery records a concept status transition.
	AppendMastery(ctx context.Context, data MasteryEventData) error

	// AppendSelection records a served question.
	AppendSelection(ctx context.Context, data SelectionEventData) error

	// AppendHint records a hint shown to the learner.
	AppendHint(ctx context.Context, data HintEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// TopicAccuracy returns the overall answer accuracy for a topic.
	TopicAccuracy(ctx context.Context, topic string) (float64, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one LLM request event by ID, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsage aggregates LLM request events by model and purpose.
	LLMUsage(ctx context.Context) ([]LLMUsageRow, error)
}
