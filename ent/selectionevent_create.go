// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adapticode/adapticode/ent/selectionevent"
)

// SelectionEventCreate is the builder for creating a SelectionEvent entity.
type SelectionEventCreate struct {
	config
	mutation *SelectionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SelectionEventCreate) SetSequence(v int64) *SelectionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SelectionEventCreate) SetTimestamp(v time.Time) *SelectionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SelectionEventCreate) SetNillableTimestamp(v *time.Time) *SelectionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *SelectionEventCreate) SetQuestionID(v string) *SelectionEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *SelectionEventCreate) SetTopic(v string) *SelectionEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *SelectionEventCreate) SetStrategy(v string) *SelectionEventCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *SelectionEventCreate) SetExplanation(v string) *SelectionEventCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *SelectionEventCreate) SetNillableExplanation(v *string) *SelectionEventCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// Mutation returns the SelectionEventMutation object of the builder.
func (_c *SelectionEventCreate) Mutation() *SelectionEventMutation {
	return _c.mutation
}

// Save creates the SelectionEvent in the database.
func (_c *SelectionEventCreate) Save(ctx context.Context) (*SelectionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SelectionEventCreate) SaveX(ctx context.Context) *SelectionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SelectionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SelectionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SelectionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := selectionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		v := selectionevent.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SelectionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SelectionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SelectionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "SelectionEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := selectionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "SelectionEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "SelectionEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := selectionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SelectionEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "SelectionEvent.strategy"`)}
	}
	if v, ok := _c.mutation.Strategy(); ok {
		if err := selectionevent.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "SelectionEvent.strategy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "SelectionEvent.explanation"`)}
	}
	return nil
}

func (_c *SelectionEventCreate) sqlSave(ctx context.Context) (*SelectionEvent, error) {
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

func (_c *SelectionEventCreate) createSpec() (*SelectionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SelectionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(selectionevent.Table, sqlgraph.NewFieldSpec(selectionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(selectionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(selectionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(selectionevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(selectionevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(selectionevent.FieldStrategy, field.TypeString, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(selectionevent.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	return _node, _spec
}

// SelectionEventCreateBulk is the builder for creating many SelectionEvent entities in bulk.
type SelectionEventCreateBulk struct {
	config
	err      error
	builders []*SelectionEventCreate
}

// Save creates the SelectionEvent entities in the database.
func (_c *SelectionEventCreateBulk) Save(ctx context.Context) ([]*SelectionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SelectionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SelectionEventMutation)
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
func (_c *SelectionEventCreateBulk) SaveX(ctx context.Context) []*SelectionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SelectionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SelectionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
