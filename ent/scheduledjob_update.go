// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadflowhq/leadflow/ent/predicate"
	"github.com/leadflowhq/leadflow/ent/scheduledjob"
)

// ScheduledJobUpdate is the builder for updating ScheduledJob entities.
type ScheduledJobUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledJobMutation
}

// Where appends a list predicates to the ScheduledJobUpdate builder.
func (_u *ScheduledJobUpdate) Where(ps ...predicate.ScheduledJob) *ScheduledJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *ScheduledJobUpdate) SetKey(v string) *ScheduledJobUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableKey(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetFireAt sets the "fire_at" field.
func (_u *ScheduledJobUpdate) SetFireAt(v time.Time) *ScheduledJobUpdate {
	_u.mutation.SetFireAt(v)
	return _u
}

// SetNillableFireAt sets the "fire_at" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableFireAt(v *time.Time) *ScheduledJobUpdate {
	if v != nil {
		_u.SetFireAt(*v)
	}
	return _u
}

// SetActionKind sets the "action_kind" field.
func (_u *ScheduledJobUpdate) SetActionKind(v string) *ScheduledJobUpdate {
	_u.mutation.SetActionKind(v)
	return _u
}

// SetNillableActionKind sets the "action_kind" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableActionKind(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetActionKind(*v)
	}
	return _u
}

// SetActionPayload sets the "action_payload" field.
func (_u *ScheduledJobUpdate) SetActionPayload(v map[string]interface{}) *ScheduledJobUpdate {
	_u.mutation.SetActionPayload(v)
	return _u
}

// ClearActionPayload clears the value of the "action_payload" field.
func (_u *ScheduledJobUpdate) ClearActionPayload() *ScheduledJobUpdate {
	_u.mutation.ClearActionPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledJobUpdate) SetStatus(v scheduledjob.Status) *ScheduledJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableStatus(v *scheduledjob.Status) *ScheduledJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLeasedUntil sets the "leased_until" field.
func (_u *ScheduledJobUpdate) SetLeasedUntil(v time.Time) *ScheduledJobUpdate {
	_u.mutation.SetLeasedUntil(v)
	return _u
}

// SetNillableLeasedUntil sets the "leased_until" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableLeasedUntil(v *time.Time) *ScheduledJobUpdate {
	if v != nil {
		_u.SetLeasedUntil(*v)
	}
	return _u
}

// ClearLeasedUntil clears the value of the "leased_until" field.
func (_u *ScheduledJobUpdate) ClearLeasedUntil() *ScheduledJobUpdate {
	_u.mutation.ClearLeasedUntil()
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *ScheduledJobUpdate) SetLeaseOwner(v string) *ScheduledJobUpdate {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableLeaseOwner(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *ScheduledJobUpdate) ClearLeaseOwner() *ScheduledJobUpdate {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetFiredAt sets the "fired_at" field.
func (_u *ScheduledJobUpdate) SetFiredAt(v time.Time) *ScheduledJobUpdate {
	_u.mutation.SetFiredAt(v)
	return _u
}

// SetNillableFiredAt sets the "fired_at" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableFiredAt(v *time.Time) *ScheduledJobUpdate {
	if v != nil {
		_u.SetFiredAt(*v)
	}
	return _u
}

// ClearFiredAt clears the value of the "fired_at" field.
func (_u *ScheduledJobUpdate) ClearFiredAt() *ScheduledJobUpdate {
	_u.mutation.ClearFiredAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScheduledJobUpdate) SetErrorMessage(v string) *ScheduledJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScheduledJobUpdate) SetNillableErrorMessage(v *string) *ScheduledJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScheduledJobUpdate) ClearErrorMessage() *ScheduledJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledJobUpdate) SetUpdatedAt(v time.Time) *ScheduledJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScheduledJobMutation object of the builder.
func (_u *ScheduledJobUpdate) Mutation() *ScheduledJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.status": %w`, err)}
		}
	}
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledJob.thread"`)
	}
	return nil
}

func (_u *ScheduledJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledjob.Table, scheduledjob.Columns, sqlgraph.NewFieldSpec(scheduledjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(scheduledjob.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FireAt(); ok {
		_spec.SetField(scheduledjob.FieldFireAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ActionKind(); ok {
		_spec.SetField(scheduledjob.FieldActionKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionPayload(); ok {
		_spec.SetField(scheduledjob.FieldActionPayload, field.TypeJSON, value)
	}
	if _u.mutation.ActionPayloadCleared() {
		_spec.ClearField(scheduledjob.FieldActionPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LeasedUntil(); ok {
		_spec.SetField(scheduledjob.FieldLeasedUntil, field.TypeTime, value)
	}
	if _u.mutation.LeasedUntilCleared() {
		_spec.ClearField(scheduledjob.FieldLeasedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(scheduledjob.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(scheduledjob.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.FiredAt(); ok {
		_spec.SetField(scheduledjob.FieldFiredAt, field.TypeTime, value)
	}
	if _u.mutation.FiredAtCleared() {
		_spec.ClearField(scheduledjob.FieldFiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scheduledjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scheduledjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledJobUpdateOne is the builder for updating a single ScheduledJob entity.
type ScheduledJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledJobMutation
}

// SetKey sets the "key" field.
func (_u *ScheduledJobUpdateOne) SetKey(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableKey(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetFireAt sets the "fire_at" field.
func (_u *ScheduledJobUpdateOne) SetFireAt(v time.Time) *ScheduledJobUpdateOne {
	_u.mutation.SetFireAt(v)
	return _u
}

// SetNillableFireAt sets the "fire_at" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableFireAt(v *time.Time) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetFireAt(*v)
	}
	return _u
}

// SetActionKind sets the "action_kind" field.
func (_u *ScheduledJobUpdateOne) SetActionKind(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetActionKind(v)
	return _u
}

// SetNillableActionKind sets the "action_kind" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableActionKind(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetActionKind(*v)
	}
	return _u
}

// SetActionPayload sets the "action_payload" field.
func (_u *ScheduledJobUpdateOne) SetActionPayload(v map[string]interface{}) *ScheduledJobUpdateOne {
	_u.mutation.SetActionPayload(v)
	return _u
}

// ClearActionPayload clears the value of the "action_payload" field.
func (_u *ScheduledJobUpdateOne) ClearActionPayload() *ScheduledJobUpdateOne {
	_u.mutation.ClearActionPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledJobUpdateOne) SetStatus(v scheduledjob.Status) *ScheduledJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableStatus(v *scheduledjob.Status) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLeasedUntil sets the "leased_until" field.
func (_u *ScheduledJobUpdateOne) SetLeasedUntil(v time.Time) *ScheduledJobUpdateOne {
	_u.mutation.SetLeasedUntil(v)
	return _u
}

// SetNillableLeasedUntil sets the "leased_until" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableLeasedUntil(v *time.Time) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetLeasedUntil(*v)
	}
	return _u
}

// ClearLeasedUntil clears the value of the "leased_until" field.
func (_u *ScheduledJobUpdateOne) ClearLeasedUntil() *ScheduledJobUpdateOne {
	_u.mutation.ClearLeasedUntil()
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *ScheduledJobUpdateOne) SetLeaseOwner(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableLeaseOwner(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *ScheduledJobUpdateOne) ClearLeaseOwner() *ScheduledJobUpdateOne {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetFiredAt sets the "fired_at" field.
func (_u *ScheduledJobUpdateOne) SetFiredAt(v time.Time) *ScheduledJobUpdateOne {
	_u.mutation.SetFiredAt(v)
	return _u
}

// SetNillableFiredAt sets the "fired_at" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableFiredAt(v *time.Time) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetFiredAt(*v)
	}
	return _u
}

// ClearFiredAt clears the value of the "fired_at" field.
func (_u *ScheduledJobUpdateOne) ClearFiredAt() *ScheduledJobUpdateOne {
	_u.mutation.ClearFiredAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScheduledJobUpdateOne) SetErrorMessage(v string) *ScheduledJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScheduledJobUpdateOne) SetNillableErrorMessage(v *string) *ScheduledJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScheduledJobUpdateOne) ClearErrorMessage() *ScheduledJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledJobUpdateOne) SetUpdatedAt(v time.Time) *ScheduledJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScheduledJobMutation object of the builder.
func (_u *ScheduledJobUpdateOne) Mutation() *ScheduledJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduledJobUpdate builder.
func (_u *ScheduledJobUpdateOne) Where(ps ...predicate.ScheduledJob) *ScheduledJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledJobUpdateOne) Select(field string, fields ...string) *ScheduledJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledJob entity.
func (_u *ScheduledJobUpdateOne) Save(ctx context.Context) (*ScheduledJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledJobUpdateOne) SaveX(ctx context.Context) *ScheduledJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledJob.status": %w`, err)}
		}
	}
	if _u.mutation.ThreadCleared() && len(_u.mutation.ThreadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledJob.thread"`)
	}
	return nil
}

func (_u *ScheduledJobUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledjob.Table, scheduledjob.Columns, sqlgraph.NewFieldSpec(scheduledjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledjob.FieldID)
		for _, f := range fields {
			if !scheduledjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledjob.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(scheduledjob.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FireAt(); ok {
		_spec.SetField(scheduledjob.FieldFireAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ActionKind(); ok {
		_spec.SetField(scheduledjob.FieldActionKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionPayload(); ok {
		_spec.SetField(scheduledjob.FieldActionPayload, field.TypeJSON, value)
	}
	if _u.mutation.ActionPayloadCleared() {
		_spec.ClearField(scheduledjob.FieldActionPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LeasedUntil(); ok {
		_spec.SetField(scheduledjob.FieldLeasedUntil, field.TypeTime, value)
	}
	if _u.mutation.LeasedUntilCleared() {
		_spec.ClearField(scheduledjob.FieldLeasedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(scheduledjob.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(scheduledjob.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.FiredAt(); ok {
		_spec.SetField(scheduledjob.FieldFiredAt, field.TypeTime, value)
	}
	if _u.mutation.FiredAtCleared() {
		_spec.ClearField(scheduledjob.FieldFiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scheduledjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scheduledjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ScheduledJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
