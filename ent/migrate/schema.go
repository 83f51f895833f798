// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "pass_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "time_secs", Type: field.TypeFloat64, Default: 0},
		{Name: "theta_before", Type: field.TypeFloat64},
		{Name: "theta_after", Type: field.TypeFloat64},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_topic",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
		},
	}
	// HintEventsColumns holds the columns for the "hint_events" table.
	HintEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "hint_text", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
	}
	// HintEventsTable holds the schema information for the "hint_events" table.
	HintEventsTable = &schema.Table{
		Name:       "hint_events",
		Columns:    HintEventsColumns,
		PrimaryKey: []*schema.Column{HintEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hintevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[1]},
			},
			{
				Name:    "hintevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[2]},
			},
			{
				Name:    "hintevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "concept", Type: field.TypeString},
		{Name: "from_status", Type: field.TypeString},
		{Name: "to_status", Type: field.TypeString},
		{Name: "theta", Type: field.TypeFloat64},
		{Name: "unlocked", Type: field.TypeJSON, Nullable: true},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_concept",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3]},
			},
		},
	}
	// SelectionEventsColumns holds the columns for the "selection_events" table.
	SelectionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "strategy", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Default: ""},
	}
	// SelectionEventsTable holds the schema information for the "selection_events" table.
	SelectionEventsTable = &schema.Table{
		Name:       "selection_events",
		Columns:    SelectionEventsColumns,
		PrimaryKey: []*schema.Column{SelectionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "selectionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SelectionEventsColumns[1]},
			},
			{
				Name:    "selectionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SelectionEventsColumns[2]},
			},
			{
				Name:    "selectionevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{SelectionEventsColumns[3]},
			},
			{
				Name:    "selectionevent_strategy",
				Unique:  false,
				Columns: []*schema.Column{SelectionEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		HintEventsTable,
		LlmRequestEventsTable,
		MasteryEventsTable,
		SelectionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
