// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adapticode/adapticode/ent/predicate"
	"github.com/adapticode/adapticode/ent/selectionevent"
)

// SelectionEventUpdate is the builder for updating SelectionEvent entities.
type SelectionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SelectionEventMutation
}

// Where appends a list predicates to the SelectionEventUpdate builder.
func (_u *SelectionEventUpdate) Where(ps ...predicate.SelectionEvent) *SelectionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *SelectionEventUpdate) SetQuestionID(v string) *SelectionEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *SelectionEventUpdate) SetNillableQuestionID(v *string) *SelectionEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SelectionEventUpdate) SetTopic(v string) *SelectionEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SelectionEventUpdate) SetNillableTopic(v *string) *SelectionEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *SelectionEventUpdate) SetStrategy(v string) *SelectionEventUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *SelectionEventUpdate) SetNillableStrategy(v *string) *SelectionEventUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *SelectionEventUpdate) SetExplanation(v string) *SelectionEventUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *SelectionEventUpdate) SetNillableExplanation(v *string) *SelectionEventUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// Mutation returns the SelectionEventMutation object of the builder.
func (_u *SelectionEventUpdate) Mutation() *SelectionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SelectionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SelectionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SelectionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SelectionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SelectionEventUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := selectionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "SelectionEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := selectionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SelectionEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := selectionevent.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "SelectionEvent.strategy": %w`, err)}
		}
	}
	return nil
}

func (_u *SelectionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(selectionevent.Table, selectionevent.Columns, sqlgraph.NewFieldSpec(selectionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(selectionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(selectionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(selectionevent.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(selectionevent.FieldExplanation, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{selectionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SelectionEventUpdateOne is the builder for updating a single SelectionEvent entity.
type SelectionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SelectionEventMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *SelectionEventUpdateOne) SetQuestionID(v string) *SelectionEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *SelectionEventUpdateOne) SetNillableQuestionID(v *string) *SelectionEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SelectionEventUpdateOne) SetTopic(v string) *SelectionEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SelectionEventUpdateOne) SetNillableTopic(v *string) *SelectionEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *SelectionEventUpdateOne) SetStrategy(v string) *SelectionEventUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *SelectionEventUpdateOne) SetNillableStrategy(v *string) *SelectionEventUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *SelectionEventUpdateOne) SetExplanation(v string) *SelectionEventUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *SelectionEventUpdateOne) SetNillableExplanation(v *string) *SelectionEventUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// Mutation returns the SelectionEventMutation object of the builder.
func (_u *SelectionEventUpdateOne) Mutation() *SelectionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SelectionEventUpdate builder.
func (_u *SelectionEventUpdateOne) Where(ps ...predicate.SelectionEvent) *SelectionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SelectionEventUpdateOne) Select(field string, fields ...string) *SelectionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SelectionEvent entity.
func (_u *SelectionEventUpdateOne) Save(ctx context.Context) (*SelectionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SelectionEventUpdateOne) SaveX(ctx context.Context) *SelectionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SelectionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SelectionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SelectionEventUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := selectionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "SelectionEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := selectionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SelectionEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := selectionevent.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "SelectionEvent.strategy": %w`, err)}
		}
	}
	return nil
}

func (_u *SelectionEventUpdateOne) sqlSave(ctx context.Context) (_node *SelectionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(selectionevent.Table, selectionevent.Columns, sqlgraph.NewFieldSpec(selectionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SelectionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, selectionevent.FieldID)
		for _, f := range fields {
			if !selectionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != selectionevent.FieldID {
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
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(selectionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(selectionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(selectionevent.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(selectionevent.FieldExplanation, field.TypeString, value)
	}
	_node = &SelectionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{selectionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
