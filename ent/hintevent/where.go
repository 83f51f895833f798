// Code generated by ent, DO NOT EDIT.

package hintevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adapticode/adapticode/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldTimestamp, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldTopic, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldLevel, v))
}

// HintText applies equality check predicate on the "hint_text" field. It's identical to HintTextEQ.
func HintText(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldHintText, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSource, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldTimestamp, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldTopic, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldLevel, v))
}

// HintTextEQ applies the EQ predicate on the "hint_text" field.
func HintTextEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldHintText, v))
}

// HintTextNEQ applies the NEQ predicate on the "hint_text" field.
func HintTextNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldHintText, v))
}

// HintTextIn applies the In predicate on the "hint_text" field.
func HintTextIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldHintText, vs...))
}

// HintTextNotIn applies the NotIn predicate on the "hint_text" field.
func HintTextNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldHintText, vs...))
}

// HintTextGT applies the GT predicate on the "hint_text" field.
func HintTextGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldHintText, v))
}

// HintTextGTE applies the GTE predicate on the "hint_text" field.
func HintTextGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldHintText, v))
}

// HintTextLT applies the LT predicate on the "hint_text" field.
func HintTextLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldHintText, v))
}

// HintTextLTE applies the LTE predicate on the "hint_text" field.
func HintTextLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldHintText, v))
}

// HintTextContains applies the Contains predicate on the "hint_text" field.
func HintTextContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldHintText, v))
}

// HintTextHasPrefix applies the HasPrefix predicate on the "hint_text" field.
func HintTextHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldHintText, v))
}

// HintTextHasSuffix applies the HasSuffix predicate on the "hint_text" field.
func HintTextHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldHintText, v))
}

// HintTextEqualFold applies the EqualFold predicate on the "hint_text" field.
func HintTextEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldHintText, v))
}

// HintTextContainsFold applies the ContainsFold predicate on the "hint_text" field.
func HintTextContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldHintText, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldSource, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HintEvent) predicate.HintEvent {
	return predicate.HintEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HintEvent) predicate.HintEvent {
	return predicate.HintEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HintEvent) predicate.HintEvent {
	return predicate.HintEvent(sql.NotPredicates(p))
}
