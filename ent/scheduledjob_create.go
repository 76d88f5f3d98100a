// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadflowhq/leadflow/ent/scheduledjob"
	"github.com/leadflowhq/leadflow/ent/thread"
)

// ScheduledJobCreate is the builder for creating a ScheduledJob entity.
type ScheduledJobCreate struct {
	config
	mutation *ScheduledJobMutation
	hooks    []Hook
}

// SetThreadID sets the "thread_id" field.
func (_c *ScheduledJobCreate) SetThreadID(v string) *ScheduledJobCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetKey sets the "key" field.
func (_c *ScheduledJobCreate) SetKey(v string) *ScheduledJobCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetFireAt sets the "fire_at" field.
func (_c *ScheduledJobCreate) SetFireAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetFireAt(v)
	return _c
}

// SetActionKind sets the "action_kind" field.
func (_c *ScheduledJobCreate) SetActionKind(v string) *ScheduledJobCreate {
	_c.mutation.SetActionKind(v)
	return _c
}

// SetActionPayload sets the "action_payload" field.
func (_c *ScheduledJobCreate) SetActionPayload(v map[string]interface{}) *ScheduledJobCreate {
	_c.mutation.SetActionPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduledJobCreate) SetStatus(v scheduledjob.Status) *ScheduledJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableStatus(v *scheduledjob.Status) *ScheduledJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLeasedUntil sets the "leased_until" field.
func (_c *ScheduledJobCreate) SetLeasedUntil(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetLeasedUntil(v)
	return _c
}

// SetNillableLeasedUntil sets the "leased_until" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableLeasedUntil(v *time.Time) *ScheduledJobCreate {
	if v != nil {
		_c.SetLeasedUntil(*v)
	}
	return _c
}

// SetLeaseOwner sets the "lease_owner" field.
func (_c *ScheduledJobCreate) SetLeaseOwner(v string) *ScheduledJobCreate {
	_c.mutation.SetLeaseOwner(v)
	return _c
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableLeaseOwner(v *string) *ScheduledJobCreate {
	if v != nil {
		_c.SetLeaseOwner(*v)
	}
	return _c
}

// SetFiredAt sets the "fired_at" field.
func (_c *ScheduledJobCreate) SetFiredAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetFiredAt(v)
	return _c
}

// SetNillableFiredAt sets the "fired_at" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableFiredAt(v *time.Time) *ScheduledJobCreate {
	if v != nil {
		_c.SetFiredAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ScheduledJobCreate) SetErrorMessage(v string) *ScheduledJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableErrorMessage(v *string) *ScheduledJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledJobCreate) SetCreatedAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableCreatedAt(v *time.Time) *ScheduledJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScheduledJobCreate) SetUpdatedAt(v time.Time) *ScheduledJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScheduledJobCreate) SetNillableUpdatedAt(v *time.Time) *ScheduledJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledJobCreate) SetID(v string) *ScheduledJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetThread sets the "thread" edge to the Thread entity.
func (_c *ScheduledJobCreate) SetThread(v *Thread) *ScheduledJobCreate {
	return _c.SetThreadID(v.ID)
}

// Mutation returns the ScheduledJobMutation object of the builder.
func (_c *ScheduledJobCreate) Mutation() *ScheduledJobMutation {
	return _c.mutation
}

// Save creates the ScheduledJob in the database.
func (_c *ScheduledJobCreate) Save(ctx context.Context) (*ScheduledJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledJobCreate) SaveX(ctx context.Context) *ScheduledJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := scheduledjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scheduledjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledJobCreate) check() error {
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "ScheduledJob.thread_id"`)}
	}
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "ScheduledJob.key"`)}
	}
	if _, ok := _c.mutation.FireAt(); !ok {
		return &ValidationError{Name: "fire_at", err: errors.New(`ent: missing required field "ScheduledJob.fire_at"`)}
	}
	if _, ok := _c.mutation.ActionKind(); !ok {
		return &ValidationError{Name: "action_kind", err: errors.New(`ent: missing required field "ScheduledJob.action_kind"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScheduledJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scheduledjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ScheduledJob.updated_at"`)}
	}
	if len(_c.mutation.ThreadIDs()) == 0 {
		return &ValidationError{Name: "thread", err: errors.New(`ent: missing required edge "ScheduledJob.thread"`)}
	}
	return nil
}

func (_c *ScheduledJobCreate) sqlSave(ctx context.Context) (*ScheduledJob, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ScheduledJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledJobCreate) createSpec() (*ScheduledJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledjob.Table, sqlgraph.NewFieldSpec(scheduledjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(scheduledjob.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.FireAt(); ok {
		_spec.SetField(scheduledjob.FieldFireAt, field.TypeTime, value)
		_node.FireAt = value
	}
	if value, ok := _c.mutation.ActionKind(); ok {
		_spec.SetField(scheduledjob.FieldActionKind, field.TypeString, value)
		_node.ActionKind = value
	}
	if value, ok := _c.mutation.ActionPayload(); ok {
		_spec.SetField(scheduledjob.FieldActionPayload, field.TypeJSON, value)
		_node.ActionPayload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scheduledjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LeasedUntil(); ok {
		_spec.SetField(scheduledjob.FieldLeasedUntil, field.TypeTime, value)
		_node.LeasedUntil = &value
	}
	if value, ok := _c.mutation.LeaseOwner(); ok {
		_spec.SetField(scheduledjob.FieldLeaseOwner, field.TypeString, value)
		_node.LeaseOwner = &value
	}
	if value, ok := _c.mutation.FiredAt(); ok {
		_spec.SetField(scheduledjob.FieldFiredAt, field.TypeTime, value)
		_node.FiredAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(scheduledjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ThreadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledjob.ThreadTable,
			Columns: []string{scheduledjob.ThreadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ThreadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScheduledJobCreateBulk is the builder for creating many ScheduledJob entities in bulk.
type ScheduledJobCreateBulk struct {
	config
	err      error
	builders []*ScheduledJobCreate
}

// Save creates the ScheduledJob entities in the database.
func (_c *ScheduledJobCreateBulk) Save(ctx context.Context) ([]*ScheduledJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledJobMutation)
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
func (_c *ScheduledJobCreateBulk) SaveX(ctx context.Context) []*ScheduledJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
