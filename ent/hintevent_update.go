// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adapticode/adapticode/ent/hintevent"
	"github.com/adapticode/adapticode/ent/predicate"
)

// HintEventUpdate is the builder for updating HintEvent entities.
type HintEventUpdate struct {
	config
	hooks    []Hook
	mutation *HintEventMutation
}

// Where appends a list predicates to the HintEventUpdate builder.
func (_u *HintEventUpdate) Where(ps ...predicate.HintEvent) *HintEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *HintEventUpdate) SetQuestionID(v string) *HintEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableQuestionID(v *string) *HintEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *HintEventUpdate) SetTopic(v string) *HintEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableTopic(v *string) *HintEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *HintEventUpdate) SetLevel(v int) *HintEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableLevel(v *int) *HintEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *HintEventUpdate) AddLevel(v int) *HintEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetHintText sets the "hint_text" field.
func (_u *HintEventUpdate) SetHintText(v string) *HintEventUpdate {
	_u.mutation.SetHintText(v)
	return _u
}

// SetNillableHintText sets the "hint_text" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableHintText(v *string) *HintEventUpdate {
	if v != nil {
		_u.SetHintText(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *HintEventUpdate) SetSource(v string) *HintEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *HintEventUpdate) SetNillableSource(v *string) *HintEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the HintEventMutation object of the builder.
func (_u *HintEventUpdate) Mutation() *HintEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HintEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HintEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HintEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HintEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HintEventUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := hintevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "HintEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := hintevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "HintEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HintText(); ok {
		if err := hintevent.HintTextValidator(v); err != nil {
			return &ValidationError{Name: "hint_text", err: fmt.Errorf(`ent: validator failed for field "HintEvent.hint_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := hintevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "HintEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *HintEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hintevent.Table, hintevent.Columns, sqlgraph.NewFieldSpec(hintevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(hintevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(hintevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(hintevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(hintevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintText(); ok {
		_spec.SetField(hintevent.FieldHintText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(hintevent.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hintevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HintEventUpdateOne is the builder for updating a single HintEvent entity.
type HintEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HintEventMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *HintEventUpdateOne) SetQuestionID(v string) *HintEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableQuestionID(v *string) *HintEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *HintEventUpdateOne) SetTopic(v string) *HintEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableTopic(v *string) *HintEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *HintEventUpdateOne) SetLevel(v int) *HintEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableLevel(v *int) *HintEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *HintEventUpdateOne) AddLevel(v int) *HintEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetHintText sets the "hint_text" field.
func (_u *HintEventUpdateOne) SetHintText(v string) *HintEventUpdateOne {
	_u.mutation.SetHintText(v)
	return _u
}

// SetNillableHintText sets the "hint_text" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableHintText(v *string) *HintEventUpdateOne {
	if v != nil {
		_u.SetHintText(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *HintEventUpdateOne) SetSource(v string) *HintEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *HintEventUpdateOne) SetNillableSource(v *string) *HintEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the HintEventMutation object of the builder.
func (_u *HintEventUpdateOne) Mutation() *HintEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the HintEventUpdate builder.
func (_u *HintEventUpdateOne) Where(ps ...predicate.HintEvent) *HintEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HintEventUpdateOne) Select(field string, fields ...string) *HintEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HintEvent entity.
func (_u *HintEventUpdateOne) Save(ctx context.Context) (*HintEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HintEventUpdateOne) SaveX(ctx context.Context) *HintEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HintEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HintEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HintEventUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := hintevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "HintEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := hintevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "HintEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HintText(); ok {
		if err := hintevent.HintTextValidator(v); err != nil {
			return &ValidationError{Name: "hint_text", err: fmt.Errorf(`ent: validator failed for field "HintEvent.hint_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := hintevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "HintEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *HintEventUpdateOne) sqlSave(ctx context.Context) (_node *HintEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hintevent.Table, hintevent.Columns, sqlgraph.NewFieldSpec(hintevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HintEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hintevent.FieldID)
		for _, f := range fields {
			if !hintevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hintevent.FieldID {
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
		_spec.SetField(hintevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(hintevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(hintevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(hintevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintText(); ok {
		_spec.SetField(hintevent.FieldHintText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(hintevent.FieldSource, field.TypeString, value)
	}
	_node = &HintEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hintevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
