// Code generated by ent, DO NOT EDIT.

package masteryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adapticode/adapticode/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Concept applies equality check predicate on the "concept" field. It's identical to ConceptEQ.
func Concept(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldConcept, v))
}

// FromStatus applies equality check predicate on the "from_status" field. It's identical to FromStatusEQ.
func FromStatus(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldFromStatus, v))
}

// ToStatus applies equality check predicate on the "to_status" field. It's identical to ToStatusEQ.
func ToStatus(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldToStatus, v))
}

// Theta applies equality check predicate on the "theta" field. It's identical to ThetaEQ.
func Theta(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTheta, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ConceptEQ applies the EQ predicate on the "concept" field.
func ConceptEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldConcept, v))
}

// ConceptNEQ applies the NEQ predicate on the "concept" field.
func ConceptNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldConcept, v))
}

// ConceptIn applies the In predicate on the "concept" field.
func ConceptIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldConcept, vs...))
}

// ConceptNotIn applies the NotIn predicate on the "concept" field.
func ConceptNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldConcept, vs...))
}

// ConceptGT applies the GT predicate on the "concept" field.
func ConceptGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldConcept, v))
}

// ConceptGTE applies the GTE predicate on the "concept" field.
func ConceptGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldConcept, v))
}

// ConceptLT applies the LT predicate on the "concept" field.
func ConceptLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldConcept, v))
}

// ConceptLTE applies the LTE predicate on the "concept" field.
func ConceptLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldConcept, v))
}

// ConceptContains applies the Contains predicate on the "concept" field.
func ConceptContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldConcept, v))
}

// ConceptHasPrefix applies the HasPrefix predicate on the "concept" field.
func ConceptHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldConcept, v))
}

// ConceptHasSuffix applies the HasSuffix predicate on the "concept" field.
func ConceptHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldConcept, v))
}

// ConceptEqualFold applies the EqualFold predicate on the "concept" field.
func ConceptEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldConcept, v))
}

// ConceptContainsFold applies the ContainsFold predicate on the "concept" field.
func ConceptContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldConcept, v))
}

// FromStatusEQ applies the EQ predicate on the "from_status" field.
func FromStatusEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldFromStatus, v))
}

// FromStatusNEQ applies the NEQ predicate on the "from_status" field.
func FromStatusNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldFromStatus, v))
}

// FromStatusIn applies the In predicate on the "from_status" field.
func FromStatusIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldFromStatus, vs...))
}

// FromStatusNotIn applies the NotIn predicate on the "from_status" field.
func FromStatusNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldFromStatus, vs...))
}

// FromStatusGT applies the GT predicate on the "from_status" field.
func FromStatusGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldFromStatus, v))
}

// FromStatusGTE applies the GTE predicate on the "from_status" field.
func FromStatusGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldFromStatus, v))
}

// FromStatusLT applies the LT predicate on the "from_status" field.
func FromStatusLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldFromStatus, v))
}

// FromStatusLTE applies the LTE predicate on the "from_status" field.
func FromStatusLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldFromStatus, v))
}

// FromStatusContains applies the Contains predicate on the "from_status" field.
func FromStatusContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldFromStatus, v))
}

// FromStatusHasPrefix applies the HasPrefix predicate on the "from_status" field.
func FromStatusHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldFromStatus, v))
}

// FromStatusHasSuffix applies the HasSuffix predicate on the "from_status" field.
func FromStatusHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldFromStatus, v))
}

// FromStatusEqualFold applies the EqualFold predicate on the "from_status" field.
func FromStatusEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldFromStatus, v))
}

// FromStatusContainsFold applies the ContainsFold predicate on the "from_status" field.
func FromStatusContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldFromStatus, v))
}

// ToStatusEQ applies the EQ predicate on the "to_status" field.
func ToStatusEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldToStatus, v))
}

// ToStatusNEQ applies the NEQ predicate on the "to_status" field.
func ToStatusNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldToStatus, v))
}

// ToStatusIn applies the In predicate on the "to_status" field.
func ToStatusIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldToStatus, vs...))
}

// ToStatusNotIn applies the NotIn predicate on the "to_status" field.
func ToStatusNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldToStatus, vs...))
}

// ToStatusGT applies the GT predicate on the "to_status" field.
func ToStatusGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldToStatus, v))
}

// ToStatusGTE applies the GTE predicate on the "to_status" field.
func ToStatusGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldToStatus, v))
}

// ToStatusLT applies the LT predicate on the "to_status" field.
func ToStatusLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldToStatus, v))
}

// ToStatusLTE applies the LTE predicate on the "to_status" field.
func ToStatusLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldToStatus, v))
}

// ToStatusContains applies the Contains predicate on the "to_status" field.
func ToStatusContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldToStatus, v))
}

// ToStatusHasPrefix applies the HasPrefix predicate on the "to_status" field.
func ToStatusHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldToStatus, v))
}

// ToStatusHasSuffix applies the HasSuffix predicate on the "to_status" field.
func ToStatusHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldToStatus, v))
}

// ToStatusEqualFold applies the EqualFold predicate on the "to_status" field.
func ToStatusEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldToStatus, v))
}

// ToStatusContainsFold applies the ContainsFold predicate on the "to_status" field.
func ToStatusContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldToStatus, v))
}

// ThetaEQ applies the EQ predicate on the "theta" field.
func ThetaEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTheta, v))
}

// ThetaNEQ applies the NEQ predicate on the "theta" field.
func ThetaNEQ(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldTheta, v))
}

// ThetaIn applies the In predicate on the "theta" field.
func ThetaIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldTheta, vs...))
}

// ThetaNotIn applies the NotIn predicate on the "theta" field.
func ThetaNotIn(vs ...float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldTheta, vs...))
}

// ThetaGT applies the GT predicate on the "theta" field.
func ThetaGT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldTheta, v))
}

// ThetaGTE applies the GTE predicate on the "theta" field.
func ThetaGTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldTheta, v))
}

// ThetaLT applies the LT predicate on the "theta" field.
func ThetaLT(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldTheta, v))
}

// ThetaLTE applies the LTE predicate on the "theta" field.
func ThetaLTE(v float64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldTheta, v))
}

// UnlockedIsNil applies the IsNil predicate on the "unlocked" field.
func UnlockedIsNil() predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIsNull(FieldUnlocked))
}

// UnlockedNotNil applies the NotNil predicate on the "unlocked" field.
func UnlockedNotNil() predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotNull(FieldUnlocked))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MasteryEvent) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MasteryEvent) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MasteryEvent) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.NotPredicates(p))
}
