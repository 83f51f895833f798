// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldPassRate holds the string denoting the pass_rate field in the database.
	FieldPassRate = "pass_rate"
	// FieldTimeSecs holds the string denoting the time_secs field in the database.
	FieldTimeSecs = "time_secs"
	// FieldThetaBefore holds the string denoting the theta_before field in the database.
	FieldThetaBefore = "theta_before"
	// FieldThetaAfter holds the string denoting the theta_after field in the database.
	FieldThetaAfter = "theta_after"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldQuestionID,
	FieldTopic,
	FieldCorrect,
	FieldPassRate,
	FieldTimeSecs,
	FieldThetaBefore,
	FieldThetaAfter,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultPassRate holds the default value on creation for the "pass_rate" field.
	DefaultPassRate float64
	// DefaultTimeSecs holds the default value on creation for the "time_secs" field.
	DefaultTimeSecs float64
)

// OrderOption defines the ordering options for the AnswerEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByPassRate orders the results by the pass_rate field.
func ByPassRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassRate, opts...).ToFunc()
}

// ByTimeSecs orders the results by the time_secs field.
func ByTimeSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSecs, opts...).ToFunc()
}

// ByThetaBefore orders the results by the theta_before field.
func ByThetaBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThetaBefore, opts...).ToFunc()
}

// ByThetaAfter orders the results by the theta_after field.
func ByThetaAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThetaAfter, opts...).ToFunc()
}
