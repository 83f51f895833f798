// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adapticode/adapticode/ent/answerevent"
)

// AnswerEvent is the model entity for the AnswerEvent schema.
type AnswerEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Question the learner attempted
	QuestionID string `json:"question_id,omitempty"`
	// Concept the question belongs to
	Topic string `json:"topic,omitempty"`
	// Whether every hidden test passed
	Correct bool `json:"correct,omitempty"`
	// Fraction of hidden tests passed
	PassRate float64 `json:"pass_rate,omitempty"`
	// Seconds spent on the attempt
	TimeSecs float64 `json:"time_secs,omitempty"`
	// Topic ability estimate before this answer
	ThetaBefore float64 `json:"theta_before,omitempty"`
	// Topic ability estimate after this answer
	ThetaAfter   float64 `json:"theta_after,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnswerEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answerevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case answerevent.FieldPassRate, answerevent.FieldTimeSecs, answerevent.FieldThetaBefore, answerevent.FieldThetaAfter:
			values[i] = new(sql.NullFloat64)
		case answerevent.FieldID, answerevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case answerevent.FieldQuestionID, answerevent.FieldTopic:
			values[i] = new(sql.NullString)
		case answerevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnswerEvent fields.
func (_m *AnswerEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answerevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case answerevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case answerevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case answerevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case answerevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case answerevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case answerevent.FieldPassRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pass_rate", values[i])
			} else if value.Valid {
				_m.PassRate = value.Float64
			}
		case answerevent.FieldTimeSecs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field time_secs", values[i])
			} else if value.Valid {
				_m.TimeSecs = value.Float64
			}
		case answerevent.FieldThetaBefore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field theta_before", values[i])
			} else if value.Valid {
				_m.ThetaBefore = value.Float64
			}
		case answerevent.FieldThetaAfter:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field theta_after", values[i])
			} else if value.Valid {
				_m.ThetaAfter = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnswerEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AnswerEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnswerEvent.
// Note that you need to call AnswerEvent.Unwrap() before calling this method if this AnswerEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnswerEvent) Update() *AnswerEventUpdateOne {
	return NewAnswerEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnswerEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnswerEvent) Unwrap() *AnswerEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnswerEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnswerEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnswerEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("pass_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassRate))
	builder.WriteString(", ")
	builder.WriteString("time_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSecs))
	builder.WriteString(", ")
	builder.WriteString("theta_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThetaBefore))
	builder.WriteString(", ")
	builder.WriteString("theta_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThetaAfter))
	builder.WriteByte(')')
	return builder.String()
}

// AnswerEvents is a parsable slice of AnswerEvent.
type AnswerEvents []*AnswerEvent
