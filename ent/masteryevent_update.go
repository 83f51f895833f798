// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/adapticode/adapticode/ent/masteryevent"
	"github.com/adapticode/adapticode/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConcept sets the "concept" field.
func (_u *MasteryEventUpdate) SetConcept(v string) *MasteryEventUpdate {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableConcept(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetFromStatus sets the "from_status" field.
func (_u *MasteryEventUpdate) SetFromStatus(v string) *MasteryEventUpdate {
	_u.mutation.SetFromStatus(v)
	return _u
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableFromStatus(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetFromStatus(*v)
	}
	return _u
}

// SetToStatus sets the "to_status" field.
func (_u *MasteryEventUpdate) SetToStatus(v string) *MasteryEventUpdate {
	_u.mutation.SetToStatus(v)
	return _u
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableToStatus(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetToStatus(*v)
	}
	return _u
}

// SetTheta sets the "theta" field.
func (_u *MasteryEventUpdate) SetTheta(v float64) *MasteryEventUpdate {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableTheta(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *MasteryEventUpdate) AddTheta(v float64) *MasteryEventUpdate {
	_u.mutation.AddTheta(v)
	return _u
}

// SetUnlocked sets the "unlocked" field.
func (_u *MasteryEventUpdate) SetUnlocked(v []string) *MasteryEventUpdate {
	_u.mutation.SetUnlocked(v)
	return _u
}

// AppendUnlocked appends value to the "unlocked" field.
func (_u *MasteryEventUpdate) AppendUnlocked(v []string) *MasteryEventUpdate {
	_u.mutation.AppendUnlocked(v)
	return _u
}

// ClearUnlocked clears the value of the "unlocked" field.
func (_u *MasteryEventUpdate) ClearUnlocked() *MasteryEventUpdate {
	_u.mutation.ClearUnlocked()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdate) check() error {
	if v, ok := _u.mutation.Concept(); ok {
		if err := masteryevent.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.concept": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromStatus(); ok {
		if err := masteryevent.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToStatus(); ok {
		if err := masteryevent.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_status": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(masteryevent.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromStatus(); ok {
		_spec.SetField(masteryevent.FieldFromStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToStatus(); ok {
		_spec.SetField(masteryevent.FieldToStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(masteryevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(masteryevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unlocked(); ok {
		_spec.SetField(masteryevent.FieldUnlocked, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUnlocked(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, masteryevent.FieldUnlocked, value)
		})
	}
	if _u.mutation.UnlockedCleared() {
		_spec.ClearField(masteryevent.FieldUnlocked, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetConcept sets the "concept" field.
func (_u *MasteryEventUpdateOne) SetConcept(v string) *MasteryEventUpdateOne {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableConcept(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetFromStatus sets the "from_status" field.
func (_u *MasteryEventUpdateOne) SetFromStatus(v string) *MasteryEventUpdateOne {
	_u.mutation.SetFromStatus(v)
	return _u
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableFromStatus(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetFromStatus(*v)
	}
	return _u
}

// SetToStatus sets the "to_status" field.
func (_u *MasteryEventUpdateOne) SetToStatus(v string) *MasteryEventUpdateOne {
	_u.mutation.SetToStatus(v)
	return _u
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableToStatus(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetToStatus(*v)
	}
	return _u
}

// SetTheta sets the "theta" field.
func (_u *MasteryEventUpdateOne) SetTheta(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableTheta(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *MasteryEventUpdateOne) AddTheta(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddTheta(v)
	return _u
}

// SetUnlocked sets the "unlocked" field.
func (_u *MasteryEventUpdateOne) SetUnlocked(v []string) *MasteryEventUpdateOne {
	_u.mutation.SetUnlocked(v)
	return _u
}

// AppendUnlocked appends value to the "unlocked" field.
func (_u *MasteryEventUpdateOne) AppendUnlocked(v []string) *MasteryEventUpdateOne {
	_u.mutation.AppendUnlocked(v)
	return _u
}

// ClearUnlocked clears the value of the "unlocked" field.
func (_u *MasteryEventUpdateOne) ClearUnlocked() *MasteryEventUpdateOne {
	_u.mutation.ClearUnlocked()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryEvent entity.
func (_u *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.Concept(); ok {
		if err := masteryevent.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.concept": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromStatus(); ok {
		if err := masteryevent.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToStatus(); ok {
		if err := masteryevent.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_status": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(masteryevent.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromStatus(); ok {
		_spec.SetField(masteryevent.FieldFromStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToStatus(); ok {
		_spec.SetField(masteryevent.FieldToStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(masteryevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(masteryevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unlocked(); ok {
		_spec.SetField(masteryevent.FieldUnlocked, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUnlocked(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, masteryevent.FieldUnlocked, value)
		})
	}
	if _u.mutation.UnlockedCleared() {
		_spec.ClearField(masteryevent.FieldUnlocked, field.TypeJSON)
	}
	_node = &MasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
