// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adapticode/adapticode/ent/masteryevent"
)

// MasteryEvent is the model entity for the MasteryEvent schema.
type MasteryEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Concept holds the value of the "concept" field.
	Concept string `json:"concept,omitempty"`
	// FromStatus holds the value of the "from_status" field.
	FromStatus string `json:"from_status,omitempty"`
	// ToStatus holds the value of the "to_status" field.
	ToStatus string `json:"to_status,omitempty"`
	// Ability estimate that triggered the transition
	Theta float64 `json:"theta,omitempty"`
	// Dependent concepts opened by this transition
	Unlocked     []string `json:"unlocked,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MasteryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case masteryevent.FieldUnlocked:
			values[i] = new([]byte)
		case masteryevent.FieldTheta:
			values[i] = new(sql.NullFloat64)
		case masteryevent.FieldID, masteryevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case masteryevent.FieldConcept, masteryevent.FieldFromStatus, masteryevent.FieldToStatus:
			values[i] = new(sql.NullString)
		case masteryevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MasteryEvent fields.
func (_m *MasteryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case masteryevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case masteryevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case masteryevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case masteryevent.FieldConcept:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept", values[i])
			} else if value.Valid {
				_m.Concept = value.String
			}
		case masteryevent.FieldFromStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_status", values[i])
			} else if value.Valid {
				_m.FromStatus = value.String
			}
		case masteryevent.FieldToStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_status", values[i])
			} else if value.Valid {
				_m.ToStatus = value.String
			}
		case masteryevent.FieldTheta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field theta", values[i])
			} else if value.Valid {
				_m.Theta = value.Float64
			}
		case masteryevent.FieldUnlocked:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field unlocked", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Unlocked); err != nil {
					return fmt.Errorf("unmarshal field unlocked: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MasteryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *MasteryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MasteryEvent.
// Note that you need to call MasteryEvent.Unwrap() before calling this method if this MasteryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MasteryEvent) Update() *MasteryEventUpdateOne {
	return NewMasteryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MasteryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MasteryEvent) Unwrap() *MasteryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MasteryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MasteryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MasteryEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("concept=")
	builder.WriteString(_m.Concept)
	builder.WriteString(", ")
	builder.WriteString("from_status=")
	builder.WriteString(_m.FromStatus)
	builder.WriteString(", ")
	builder.WriteString("to_status=")
	builder.WriteString(_m.ToStatus)
	builder.WriteString(", ")
	builder.WriteString("theta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Theta))
	builder.WriteString(", ")
	builder.WriteString("unlocked=")
	builder.WriteString(fmt.Sprintf("%v", _m.Unlocked))
	builder.WriteByte(')')
	return builder.String()
}

// MasteryEvents is a parsable slice of MasteryEvent.
type MasteryEvents []*MasteryEvent
