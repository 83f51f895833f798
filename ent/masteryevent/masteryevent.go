// Code generated by ent, DO NOT EDIT.

package masteryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the masteryevent type in the database.
	Label = "mastery_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldConcept holds the string denoting the concept field in the database.
	FieldConcept = "concept"
	// FieldFromStatus holds the string denoting the from_status field in the database.
	FieldFromStatus = "from_status"
	// FieldToStatus holds the string denoting the to_status field in the database.
	FieldToStatus = "to_status"
	// FieldTheta holds the string denoting the theta field in the database.
	FieldTheta = "theta"
	// FieldUnlocked holds the string denoting the unlocked field in the database.
	FieldUnlocked = "unlocked"
	// Table holds the table name of the masteryevent in the database.
	Table = "mastery_events"
)

// Columns holds all SQL columns for masteryevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldConcept,
	FieldFromStatus,
	FieldToStatus,
	FieldTheta,
	FieldUnlocked,
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
	// ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	ConceptValidator func(string) error
	// FromStatusValidator is a validator for the "from_status" field. It is called by the builders before save.
	FromStatusValidator func(string) error
	// ToStatusValidator is a validator for the "to_status" field. It is called by the builders before save.
	ToStatusValidator func(string) error
)

// OrderOption defines the ordering options for the MasteryEvent queries.
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

// ByConcept orders the results by the concept field.
func ByConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcept, opts...).ToFunc()
}

// ByFromStatus orders the results by the from_status field.
func ByFromStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromStatus, opts...).ToFunc()
}

// ByToStatus orders the results by the to_status field.
func ByToStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToStatus, opts...).ToFunc()
}

// ByTheta orders the results by the theta field.
func ByTheta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheta, opts...).ToFunc()
}
