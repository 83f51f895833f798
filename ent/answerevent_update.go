// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adapticode/adapticode/ent/answerevent"
	"github.com/adapticode/adapticode/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdate) SetQuestionID(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AnswerEventUpdate) SetTopic(v string) *AnswerEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTopic(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetPassRate sets the "pass_rate" field.
func (_u *AnswerEventUpdate) SetPassRate(v float64) *AnswerEventUpdate {
	_u.mutation.ResetPassRate()
	_u.mutation.SetPassRate(v)
	return _u
}

// SetNillablePassRate sets the "pass_rate" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillablePassRate(v *float64) *AnswerEventUpdate {
	if v != nil {
		_u.SetPassRate(*v)
	}
	return _u
}

// AddPassRate adds value to the "pass_rate" field.
func (_u *AnswerEventUpdate) AddPassRate(v float64) *AnswerEventUpdate {
	_u.mutation.AddPassRate(v)
	return _u
}

// SetTimeSecs sets the "time_secs" field.
func (_u *AnswerEventUpdate) SetTimeSecs(v float64) *AnswerEventUpdate {
	_u.mutation.ResetTimeSecs()
	_u.mutation.SetTimeSecs(v)
	return _u
}

// SetNillableTimeSecs sets the "time_secs" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeSecs(v *float64) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeSecs(*v)
	}
	return _u
}

// AddTimeSecs adds value to the "time_secs" field.
func (_u *AnswerEventUpdate) AddTimeSecs(v float64) *AnswerEventUpdate {
	_u.mutation.AddTimeSecs(v)
	return _u
}

// SetThetaBefore sets the "theta_before" field.
func (_u *AnswerEventUpdate) SetThetaBefore(v float64) *AnswerEventUpdate {
	_u.mutation.ResetThetaBefore()
	_u.mutation.SetThetaBefore(v)
	return _u
}

// SetNillableThetaBefore sets the "theta_before" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableThetaBefore(v *float64) *AnswerEventUpdate {
	if v != nil {
		_u.SetThetaBefore(*v)
	}
	return _u
}

// AddThetaBefore adds value to the "theta_before" field.
func (_u *AnswerEventUpdate) AddThetaBefore(v float64) *AnswerEventUpdate {
	_u.mutation.AddThetaBefore(v)
	return _u
}

// SetThetaAfter sets the "theta_after" field.
func (_u *AnswerEventUpdate) SetThetaAfter(v float64) *AnswerEventUpdate {
	_u.mutation.ResetThetaAfter()
	_u.mutation.SetThetaAfter(v)
	return _u
}

// SetNillableThetaAfter sets the "theta_after" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableThetaAfter(v *float64) *AnswerEventUpdate {
	if v != nil {
		_u.SetThetaAfter(*v)
	}
	return _u
}

// AddThetaAfter adds value to the "theta_after" field.
func (_u *AnswerEventUpdate) AddThetaAfter(v float64) *AnswerEventUpdate {
	_u.mutation.AddThetaAfter(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := answerevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(answerevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PassRate(); ok {
		_spec.SetField(answerevent.FieldPassRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPassRate(); ok {
		_spec.AddField(answerevent.FieldPassRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSecs(); ok {
		_spec.SetField(answerevent.FieldTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSecs(); ok {
		_spec.AddField(answerevent.FieldTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaBefore(); ok {
		_spec.SetField(answerevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaBefore(); ok {
		_spec.AddField(answerevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaAfter(); ok {
		_spec.SetField(answerevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaAfter(); ok {
		_spec.AddField(answerevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdateOne) SetQuestionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AnswerEventUpdateOne) SetTopic(v string) *AnswerEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTopic(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetPassRate sets the "pass_rate" field.
func (_u *AnswerEventUpdateOne) SetPassRate(v float64) *AnswerEventUpdateOne {
	_u.mutation.ResetPassRate()
	_u.mutation.SetPassRate(v)
	return _u
}

// SetNillablePassRate sets the "pass_rate" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillablePassRate(v *float64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetPassRate(*v)
	}
	return _u
}

// AddPassRate adds value to the "pass_rate" field.
func (_u *AnswerEventUpdateOne) AddPassRate(v float64) *AnswerEventUpdateOne {
	_u.mutation.AddPassRate(v)
	return _u
}

// SetTimeSecs sets the "time_secs" field.
func (_u *AnswerEventUpdateOne) SetTimeSecs(v float64) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeSecs()
	_u.mutation.SetTimeSecs(v)
	return _u
}

// SetNillableTimeSecs sets the "time_secs" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeSecs(v *float64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeSecs(*v)
	}
	return _u
}

// AddTimeSecs adds value to the "time_secs" field.
func (_u *AnswerEventUpdateOne) AddTimeSecs(v float64) *AnswerEventUpdateOne {
	_u.mutation.AddTimeSecs(v)
	return _u
}

// SetThetaBefore sets the "theta_before" field.
func (_u *AnswerEventUpdateOne) SetThetaBefore(v float64) *AnswerEventUpdateOne {
	_u.mutation.ResetThetaBefore()
	_u.mutation.SetThetaBefore(v)
	return _u
}

// SetNillableThetaBefore sets the "theta_before" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableThetaBefore(v *float64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetThetaBefore(*v)
	}
	return _u
}

// AddThetaBefore adds value to the "theta_before" field.
func (_u *AnswerEventUpdateOne) AddThetaBefore(v float64) *AnswerEventUpdateOne {
	_u.mutation.AddThetaBefore(v)
	return _u
}

// SetThetaAfter sets the "theta_after" field.
func (_u *AnswerEventUpdateOne) SetThetaAfter(v float64) *AnswerEventUpdateOne {
	_u.mutation.ResetThetaAfter()
	_u.mutation.SetThetaAfter(v)
	return _u
}

// SetNillableThetaAfter sets the "theta_after" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableThetaAfter(v *float64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetThetaAfter(*v)
	}
	return _u
}

// AddThetaAfter adds value to the "theta_after" field.
func (_u *AnswerEventUpdateOne) AddThetaAfter(v float64) *AnswerEventUpdateOne {
	_u.mutation.AddThetaAfter(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := answerevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(answerevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PassRate(); ok {
		_spec.SetField(answerevent.FieldPassRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPassRate(); ok {
		_spec.AddField(answerevent.FieldPassRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSecs(); ok {
		_spec.SetField(answerevent.FieldTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSecs(); ok {
		_spec.AddField(answerevent.FieldTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaBefore(); ok {
		_spec.SetField(answerevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaBefore(); ok {
		_spec.AddField(answerevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaAfter(); ok {
		_spec.SetField(answerevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaAfter(); ok {
		_spec.AddField(answerevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
