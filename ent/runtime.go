// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adapticode/adapticode/ent/answerevent"
	"github.com/adapticode/adapticode/ent/hintevent"
	"github.com/adapticode/adapticode/ent/llmrequestevent"
	"github.com/adapticode/adapticode/ent/masteryevent"
	"github.com/adapticode/adapticode/ent/schema"
	"github.com/adapticode/adapticode/ent/selectionevent"
	"github.com/adapticode/adapticode/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[0].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[1].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescPassRate is the schema descriptor for pass_rate field.
	answereventDescPassRate := answereventFields[3].Descriptor()
	// answerevent.DefaultPassRate holds the default value on creation for the pass_rate field.
	answerevent.DefaultPassRate = answereventDescPassRate.Default.(float64)
	// answereventDescTimeSecs is the schema descriptor for time_secs field.
	answereventDescTimeSecs := answereventFields[4].Descriptor()
	// answerevent.DefaultTimeSecs holds the default value on creation for the time_secs field.
	answerevent.DefaultTimeSecs = answereventDescTimeSecs.Default.(float64)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescQuestionID is the schema descriptor for question_id field.
	hinteventDescQuestionID := hinteventFields[0].Descriptor()
	// hintevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	hintevent.QuestionIDValidator = hinteventDescQuestionID.Validators[0].(func(string) error)
	// hinteventDescTopic is the schema descriptor for topic field.
	hinteventDescTopic := hinteventFields[1].Descriptor()
	// hintevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	hintevent.TopicValidator = hinteventDescTopic.Validators[0].(func(string) error)
	// hinteventDescHintText is the schema descriptor for hint_text field.
	hinteventDescHintText := hinteventFields[3].Descriptor()
	// hintevent.HintTextValidator is a validator for the "hint_text" field. It is called by the builders before save.
	hintevent.HintTextValidator = hinteventDescHintText.Validators[0].(func(string) error)
	// hinteventDescSource is the schema descriptor for source field.
	hinteventDescSource := hinteventFields[4].Descriptor()
	// hintevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	hintevent.SourceValidator = hinteventDescSource.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescConcept is the schema descriptor for concept field.
	masteryeventDescConcept := masteryeventFields[0].Descriptor()
	// masteryevent.ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	masteryevent.ConceptValidator = masteryeventDescConcept.Validators[0].(func(string) error)
	// masteryeventDescFromStatus is the schema descriptor for from_status field.
	masteryeventDescFromStatus := masteryeventFields[1].Descriptor()
	// masteryevent.FromStatusValidator is a validator for the "from_status" field. It is called by the builders before save.
	masteryevent.FromStatusValidator = masteryeventDescFromStatus.Validators[0].(func(string) error)
	// masteryeventDescToStatus is the schema descriptor for to_status field.
	masteryeventDescToStatus := masteryeventFields[2].Descriptor()
	// masteryevent.ToStatusValidator is a validator for the "to_status" field. It is called by the builders before save.
	masteryevent.ToStatusValidator = masteryeventDescToStatus.Validators[0].(func(string) error)
	selectioneventMixin := schema.SelectionEvent{}.Mixin()
	selectioneventMixinFields0 := selectioneventMixin[0].Fields()
	_ = selectioneventMixinFields0
	selectioneventFields := schema.SelectionEvent{}.Fields()
	_ = selectioneventFields
	// selectioneventDescTimestamp is the schema descriptor for timestamp field.
	selectioneventDescTimestamp := selectioneventMixinFields0[1].Descriptor()
	// selectionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	selectionevent.DefaultTimestamp = selectioneventDescTimestamp.Default.(func() time.Time)
	// selectioneventDescQuestionID is the schema descriptor for question_id field.
	selectioneventDescQuestionID := selectioneventFields[0].Descriptor()
	// selectionevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	selectionevent.QuestionIDValidator = selectioneventDescQuestionID.Validators[0].(func(string) error)
	// selectioneventDescTopic is the schema descriptor for topic field.
	selectioneventDescTopic := selectioneventFields[1].Descriptor()
	// selectionevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	selectionevent.TopicValidator = selectioneventDescTopic.Validators[0].(func(string) error)
	// selectioneventDescStrategy is the schema descriptor for strategy field.
	selectioneventDescStrategy := selectioneventFields[2].Descriptor()
	// selectionevent.StrategyValidator is a validator for the "strategy" field. It is called by the builders before save.
	selectionevent.StrategyValidator = selectioneventDescStrategy.Validators[0].(func(string) error)
	// selectioneventDescExplanation is the schema descriptor for explanation field.
	selectioneventDescExplanation := selectioneventFields[3].Descriptor()
	// selectionevent.DefaultExplanation holds the default value on creation for the explanation field.
	selectionevent.DefaultExplanation = selectioneventDescExplanation.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
