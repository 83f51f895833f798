// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adapticode/adapticode/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTopic, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// PassRate applies equality check predicate on the "pass_rate" field. It's identical to PassRateEQ.
func PassRate(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldPassRate, v))
}

// TimeSecs applies equality check predicate on the "time_secs" field. It's identical to TimeSecsEQ.
func TimeSecs(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTimeSecs, v))
}

// ThetaBefore applies equality check predicate on the "theta_before" field. It's identical to ThetaBeforeEQ.
func ThetaBefore(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldThetaBefore, v))
}

// ThetaAfter applies equality check predicate on the "theta_after" field. It's identical to ThetaAfterEQ.
func ThetaAfter(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldThetaAfter, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldTimestamp, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldTopic, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldCorrect, v))
}

// PassRateEQ applies the EQ predicate on the "pass_rate" field.
func PassRateEQ(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldPassRate, v))
}

// PassRateNEQ applies the NEQ predicate on the "pass_rate" field.
func PassRateNEQ(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldPassRate, v))
}

// PassRateIn applies the In predicate on the "pass_rate" field.
func PassRateIn(vs ...float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldPassRate, vs...))
}

// PassRateNotIn applies the NotIn predicate on the "pass_rate" field.
func PassRateNotIn(vs ...float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldPassRate, vs...))
}

// PassRateGT applies the GT predicate on the "pass_rate" field.
func PassRateGT(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldPassRate, v))
}

// PassRateGTE applies the GTE predicate on the "pass_rate" field.
func PassRateGTE(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldPassRate, v))
}

// PassRateLT applies the LT predicate on the "pass_rate" field.
func PassRateLT(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldPassRate, v))
}

// PassRateLTE applies the LTE predicate on the "pass_rate" field.
func PassRateLTE(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldPassRate, v))
}

// TimeSecsEQ applies the EQ predicate on the "time_secs" field.
func TimeSecsEQ(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTimeSecs, v))
}

// TimeSecsNEQ applies the NEQ predicate on the "time_secs" field.
func TimeSecsNEQ(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldTimeSecs, v))
}

// TimeSecsIn applies the In predicate on the "time_secs" field.
func TimeSecsIn(vs ...float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldTimeSecs, vs...))
}

// TimeSecsNotIn applies the NotIn predicate on the "time_secs" field.
func TimeSecsNotIn(vs ...float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldTimeSecs, vs...))
}

// TimeSecsGT applies the GT predicate on the "time_secs" field.
func TimeSecsGT(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldTimeSecs, v))
}

// TimeSecsGTE applies the GTE predicate on the "time_secs" field.
func TimeSecsGTE(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldTimeSecs, v))
}

// TimeSecsLT applies the LT predicate on the "time_secs" field.
func TimeSecsLT(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldTimeSecs, v))
}

// TimeSecsLTE applies the LTE predicate on the "time_secs" field.
func TimeSecsLTE(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldTimeSecs, v))
}

// ThetaBeforeEQ applies the EQ predicate on the "theta_before" field.
func ThetaBeforeEQ(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldThetaBefore, v))
}

// ThetaBeforeNEQ applies the NEQ predicate on the "theta_before" field.
func ThetaBeforeNEQ(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldThetaBefore, v))
}

// ThetaBeforeIn applies the In predicate on the "theta_before" field.
func ThetaBeforeIn(vs ...float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldThetaBefore, vs...))
}

// ThetaBeforeNotIn applies the NotIn predicate on the "theta_before" field.
func ThetaBeforeNotIn(vs ...float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldThetaBefore, vs...))
}

// ThetaBeforeGT applies the GT predicate on the "theta_before" field.
func ThetaBeforeGT(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldThetaBefore, v))
}

// ThetaBeforeGTE applies the GTE predicate on the "theta_before" field.
func ThetaBeforeGTE(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldThetaBefore, v))
}

// ThetaBeforeLT applies the LT predicate on the "theta_before" field.
func ThetaBeforeLT(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldThetaBefore, v))
}

// ThetaBeforeLTE applies the LTE predicate on the "theta_before" field.
func ThetaBeforeLTE(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldThetaBefore, v))
}

// ThetaAfterEQ applies the EQ predicate on the "theta_after" field.
func ThetaAfterEQ(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldThetaAfter, v))
}

// ThetaAfterNEQ applies the NEQ predicate on the "theta_after" field.
func ThetaAfterNEQ(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldThetaAfter, v))
}

// ThetaAfterIn applies the In predicate on the "theta_after" field.
func ThetaAfterIn(vs ...float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldThetaAfter, vs...))
}

// ThetaAfterNotIn applies the NotIn predicate on the "theta_after" field.
func ThetaAfterNotIn(vs ...float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldThetaAfter, vs...))
}

// ThetaAfterGT applies the GT predicate on the "theta_after" field.
func ThetaAfterGT(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldThetaAfter, v))
}

// ThetaAfterGTE applies the GTE predicate on the "theta_after" field.
func ThetaAfterGTE(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldThetaAfter, v))
}

// ThetaAfterLT applies the LT predicate on the "theta_after" field.
func ThetaAfterLT(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldThetaAfter, v))
}

// ThetaAfterLTE applies the LTE predicate on the "theta_after" field.
func ThetaAfterLTE(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldThetaAfter, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnswerEvent) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnswerEvent) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnswerEvent) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.NotPredicates(p))
}
