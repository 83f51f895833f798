// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adapticode/adapticode/ent/masteryevent"
)

// MasteryEventCreate is the builder for creating a MasteryEvent entity.
type MasteryEventCreate struct {
	config
	mutation *MasteryEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *MasteryEventCreate) SetSequence(v int64) *MasteryEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MasteryEventCreate) SetTimestamp(v time.Time) *MasteryEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MasteryEventCreate) SetNillableTimestamp(v *time.Time) *MasteryEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetConcept sets the "concept" field.
func (_c *MasteryEventCreate) SetConcept(v string) *MasteryEventCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetFromStatus sets the "from_status" field.
func (_c *MasteryEventCreate) SetFromStatus(v string) *MasteryEventCreate {
	_c.mutation.SetFromStatus(v)
	return _c
}

// SetToStatus sets the "to_status" field.
func (_c *MasteryEventCreate) SetToStatus(v string) *MasteryEventCreate {
	_c.mutation.SetToStatus(v)
	return _c
}

// SetTheta sets the "theta" field.
func (_c *MasteryEventCreate) SetTheta(v float64) *MasteryEventCreate {
	_c.mutation.SetTheta(v)
	return _c
}

// SetUnlocked sets the "unlocked" field.
func (_c *MasteryEventCreate) SetUnlocked(v []string) *MasteryEventCreate {
	_c.mutation.SetUnlocked(v)
	return _c
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_c *MasteryEventCreate) Mutation() *MasteryEventMutation {
	return _c.mutation
}

// Save creates the MasteryEvent in the database.
func (_c *MasteryEventCreate) Save(ctx context.Context) (*MasteryEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryEventCreate) SaveX(ctx context.Context) *MasteryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := masteryevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MasteryEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MasteryEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Concept(); !ok {
		return &ValidationError{Name: "concept", err: errors.New(`ent: missing required field "MasteryEvent.concept"`)}
	}
	if v, ok := _c.mutation.Concept(); ok {
		if err := masteryevent.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.concept": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromStatus(); !ok {
		return &ValidationError{Name: "from_status", err: errors.New(`ent: missing required field "MasteryEvent.from_status"`)}
	}
	if v, ok := _c.mutation.FromStatus(); ok {
		if err := masteryevent.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToStatus(); !ok {
		return &ValidationError{Name: "to_status", err: errors.New(`ent: missing required field "MasteryEvent.to_status"`)}
	}
	if v, ok := _c.mutation.ToStatus(); ok {
		if err := masteryevent.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Theta(); !ok {
		return &ValidationError{Name: "theta", err: errors.New(`ent: missing required field "MasteryEvent.theta"`)}
	}
	return nil
}

func (_c *MasteryEventCreate) sqlSave(ctx context.Context) (*MasteryEvent, error) {
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

func (_c *MasteryEventCreate) createSpec() (*MasteryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryevent.Table, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(masteryevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(masteryevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(masteryevent.FieldConcept, field.TypeString, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.FromStatus(); ok {
		_spec.SetField(masteryevent.FieldFromStatus, field.TypeString, value)
		_node.FromStatus = value
	}
	if value, ok := _c.mutation.ToStatus(); ok {
		_spec.SetField(masteryevent.FieldToStatus, field.TypeString, value)
		_node.ToStatus = value
	}
	if value, ok := _c.mutation.Theta(); ok {
		_spec.SetField(masteryevent.FieldTheta, field.TypeFloat64, value)
		_node.Theta = value
	}
	if value, ok := _c.mutation.Unlocked(); ok {
		_spec.SetField(masteryevent.FieldUnlocked, field.TypeJSON, value)
		_node.Unlocked = value
	}
	return _node, _spec
}

// MasteryEventCreateBulk is the builder for creating many MasteryEvent entities in bulk.
type MasteryEventCreateBulk struct {
	config
	err      error
	builders []*MasteryEventCreate
}

// Save creates the MasteryEvent entities in the database.
func (_c *MasteryEventCreateBulk) Save(ctx context.Context) ([]*MasteryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryEventMutation)
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
func (_c *MasteryEventCreateBulk) SaveX(ctx context.Context) []*MasteryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
