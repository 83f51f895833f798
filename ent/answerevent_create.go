// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adapticode/adapticode/ent/answerevent"
)

// AnswerEventCreate is the builder for creating a AnswerEvent entity.
type AnswerEventCreate struct {
	config
	mutation *AnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnswerEventCreate) SetSequence(v int64) *AnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnswerEventCreate) SetTimestamp(v time.Time) *AnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimestamp(v *time.Time) *AnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AnswerEventCreate) SetQuestionID(v string) *AnswerEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *AnswerEventCreate) SetTopic(v string) *AnswerEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AnswerEventCreate) SetCorrect(v bool) *AnswerEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetPassRate sets the "pass_rate" field.
func (_c *AnswerEventCreate) SetPassRate(v float64) *AnswerEventCreate {
	_c.mutation.SetPassRate(v)
	return _c
}

// SetNillablePassRate sets the "pass_rate" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillablePassRate(v *float64) *AnswerEventCreate {
	if v != nil {
		_c.SetPassRate(*v)
	}
	return _c
}

// SetTimeSecs sets the "time_secs" field.
func (_c *AnswerEventCreate) SetTimeSecs(v float64) *AnswerEventCreate {
	_c.mutation.SetTimeSecs(v)
	return _c
}

// SetNillableTimeSecs sets the "time_secs" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimeSecs(v *float64) *AnswerEventCreate {
	if v != nil {
		_c.SetTimeSecs(*v)
	}
	return _c
}

// SetThetaBefore sets the "theta_before" field.
func (_c *AnswerEventCreate) SetThetaBefore(v float64) *AnswerEventCreate {
	_c.mutation.SetThetaBefore(v)
	return _c
}

// SetThetaAfter sets the "theta_after" field.
func (_c *AnswerEventCreate) SetThetaAfter(v float64) *AnswerEventCreate {
	_c.mutation.SetThetaAfter(v)
	return _c
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_c *AnswerEventCreate) Mutation() *AnswerEventMutation {
	return _c.mutation
}

// Save creates the AnswerEvent in the database.
func (_c *AnswerEventCreate) Save(ctx context.Context) (*AnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerEventCreate) SaveX(ctx context.Context) *AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := answerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.PassRate(); !ok {
		v := answerevent.DefaultPassRate
		_c.mutation.SetPassRate(v)
	}
	if _, ok := _c.mutation.TimeSecs(); !ok {
		v := answerevent.DefaultTimeSecs
		_c.mutation.SetTimeSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AnswerEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "AnswerEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := answerevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AnswerEvent.correct"`)}
	}
	if _, ok := _c.mutation.PassRate(); !ok {
		return &ValidationError{Name: "pass_rate", err: errors.New(`ent: missing required field "AnswerEvent.pass_rate"`)}
	}
	if _, ok := _c.mutation.TimeSecs(); !ok {
		return &ValidationError{Name: "time_secs", err: errors.New(`ent: missing required field "AnswerEvent.time_secs"`)}
	}
	if _, ok := _c.mutation.ThetaBefore(); !ok {
		return &ValidationError{Name: "theta_before", err: errors.New(`ent: missing required field "AnswerEvent.theta_before"`)}
	}
	if _, ok := _c.mutation.ThetaAfter(); !ok {
		return &ValidationError{Name: "theta_after", err: errors.New(`ent: missing required field "AnswerEvent.theta_after"`)}
	}
	return nil
}

func (_c *AnswerEventCreate) sqlSave(ctx context.Context) (*AnswerEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnswerEventCreate) createSpec() (*AnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerevent.Table, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(answerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(answerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(answerevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.PassRate(); ok {
		_spec.SetField(answerevent.FieldPassRate, field.TypeFloat64, value)
		_node.PassRate = value
	}
	if value, ok := _c.mutation.TimeSecs(); ok {
		_spec.SetField(answerevent.FieldTimeSecs, field.TypeFloat64, value)
		_node.TimeSecs = value
	}
	if value, ok := _c.mutation.ThetaBefore(); ok {
		_spec.SetField(answerevent.FieldThetaBefore, field.TypeFloat64, value)
		_node.ThetaBefore = value
	}
	if value, ok := _c.mutation.ThetaAfter(); ok {
		_spec.SetField(answerevent.FieldThetaAfter, field.TypeFloat64, value)
		_node.ThetaAfter = value
	}
	return _node, _spec
}

// AnswerEventCreateBulk is the builder for creating many AnswerEvent entities in bulk.
type AnswerEventCreateBulk struct {
	config
	err      error
	builders []*AnswerEventCreate
}

// Save creates the AnswerEvent entities in the database.
func (_c *AnswerEventCreateBulk) Save(ctx context.Context) ([]*AnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) SaveX(ctx context.Context) []*AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
