// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// HintEvent is the predicate function for hintevent builders.
type HintEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MasteryEvent is the predicate function for masteryevent builders.
type MasteryEvent func(*sql.Selector)

// SelectionEvent is the predicate function for selectionevent builders.
type SelectionEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
