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
	"github.com/leadflowhq/leadflow/ent/contact"
	"github.com/leadflowhq/leadflow/ent/predicate"
	"github.com/leadflowhq/leadflow/ent/salesevent"
	"github.com/leadflowhq/leadflow/ent/thread"
)

// ContactUpdate is the builder for updating Contact entities.
type ContactUpdate struct {
	config
	hooks    []Hook
	mutation *ContactMutation
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdate) Where(ps ...predicate.Contact) *ContactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *ContactUpdate) SetEmail(v string) *ContactUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEmail(v *string) *ContactUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ContactUpdate) ClearEmail() *ContactUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetName sets the "name" field.
func (_u *ContactUpdate) SetName(v string) *ContactUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableName(v *string) *ContactUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ContactUpdate) ClearName() *ContactUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetOrderCount sets the "order_count" field.
func (_u *ContactUpdate) SetOrderCount(v int) *ContactUpdate {
	_u.mutation.ResetOrderCount()
	_u.mutation.SetOrderCount(v)
	return _u
}

// SetNillableOrderCount sets the "order_count" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableOrderCount(v *int) *ContactUpdate {
	if v != nil {
		_u.SetOrderCount(*v)
	}
	return _u
}

// AddOrderCount adds value to the "order_count" field.
func (_u *ContactUpdate) AddOrderCount(v int) *ContactUpdate {
	_u.mutation.AddOrderCount(v)
	return _u
}

// SetTotalSpent sets the "total_spent" field.
func (_u *ContactUpdate) SetTotalSpent(v float64) *ContactUpdate {
	_u.mutation.ResetTotalSpent()
	_u.mutation.SetTotalSpent(v)
	return _u
}

// SetNillableTotalSpent sets the "total_spent" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableTotalSpent(v *float64) *ContactUpdate {
	if v != nil {
		_u.SetTotalSpent(*v)
	}
	return _u
}

// AddTotalSpent adds value to the "total_spent" field.
func (_u *ContactUpdate) AddTotalSpent(v float64) *ContactUpdate {
	_u.mutation.AddTotalSpent(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactUpdate) SetUpdatedAt(v time.Time) *ContactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddThreadIDs adds the "threads" edge to the Thread entity by IDs.
func (_u *ContactUpdate) AddThreadIDs(ids ...string) *ContactUpdate {
	_u.mutation.AddThreadIDs(ids...)
	return _u
}

// AddThreads adds the "threads" edges to the Thread entity.
func (_u *ContactUpdate) AddThreads(v ...*Thread) *ContactUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddThreadIDs(ids...)
}

// AddSalesEventIDs adds the "sales_events" edge to the SalesEvent entity by IDs.
func (_u *ContactUpdate) AddSalesEventIDs(ids ...string) *ContactUpdate {
	_u.mutation.AddSalesEventIDs(ids...)
	return _u
}

// AddSalesEvents adds the "sales_events" edges to the SalesEvent entity.
func (_u *ContactUpdate) AddSalesEvents(v ...*SalesEvent) *ContactUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSalesEventIDs(ids...)
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdate) Mutation() *ContactMutation {
	return _u.mutation
}

// ClearThreads clears all "threads" edges to the Thread entity.
func (_u *ContactUpdate) ClearThreads() *ContactUpdate {
	_u.mutation.ClearThreads()
	return _u
}

// RemoveThreadIDs removes the "threads" edge to Thread entities by IDs.
func (_u *ContactUpdate) RemoveThreadIDs(ids ...string) *ContactUpdate {
	_u.mutation.RemoveThreadIDs(ids...)
	return _u
}

// RemoveThreads removes "threads" edges to Thread entities.
func (_u *ContactUpdate) RemoveThreads(v ...*Thread) *ContactUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveThreadIDs(ids...)
}

// ClearSalesEvents clears all "sales_events" edges to the SalesEvent entity.
func (_u *ContactUpdate) ClearSalesEvents() *ContactUpdate {
	_u.mutation.ClearSalesEvents()
	return _u
}

// RemoveSalesEventIDs removes the "sales_events" edge to SalesEvent entities by IDs.
func (_u *ContactUpdate) RemoveSalesEventIDs(ids ...string) *ContactUpdate {
	_u.mutation.RemoveSalesEventIDs(ids...)
	return _u
}

// RemoveSalesEvents removes "sales_events" edges to SalesEvent entities.
func (_u *ContactUpdate) RemoveSalesEvents(v ...*SalesEvent) *ContactUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSalesEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ContactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(contact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contact.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(contact.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.OrderCount(); ok {
		_spec.SetField(contact.FieldOrderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderCount(); ok {
		_spec.AddField(contact.FieldOrderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSpent(); ok {
		_spec.SetField(contact.FieldTotalSpent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalSpent(); ok {
		_spec.AddField(contact.FieldTotalSpent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ThreadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ThreadsTable,
			Columns: []string{contact.ThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thread.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedThreadsIDs(); len(nodes) > 0 && !_u.mutation.ThreadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ThreadsTable,
			Columns: []string{contact.ThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThreadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ThreadsTable,
			Columns: []string{contact.ThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SalesEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.SalesEventsTable,
			Columns: []string{contact.SalesEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(salesevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSalesEventsIDs(); len(nodes) > 0 && !_u.mutation.SalesEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.SalesEventsTable,
			Columns: []string{contact.SalesEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(salesevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SalesEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.SalesEventsTable,
			Columns: []string{contact.SalesEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(salesevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContactUpdateOne is the builder for updating a single Contact entity.
type ContactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContactMutation
}

// SetEmail sets the "email" field.
func (_u *ContactUpdateOne) SetEmail(v string) *ContactUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEmail(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ContactUpdateOne) ClearEmail() *ContactUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetName sets the "name" field.
func (_u *ContactUpdateOne) SetName(v string) *ContactUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableName(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ContactUpdateOne) ClearName() *ContactUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetOrderCount sets the "order_count" field.
func (_u *ContactUpdateOne) SetOrderCount(v int) *ContactUpdateOne {
	_u.mutation.ResetOrderCount()
	_u.mutation.SetOrderCount(v)
	return _u
}

// SetNillableOrderCount sets the "order_count" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableOrderCount(v *int) *ContactUpdateOne {
	if v != nil {
		_u.SetOrderCount(*v)
	}
	return _u
}

// AddOrderCount adds value to the "order_count" field.
func (_u *ContactUpdateOne) AddOrderCount(v int) *ContactUpdateOne {
	_u.mutation.AddOrderCount(v)
	return _u
}

// SetTotalSpent sets the "total_spent" field.
func (_u *ContactUpdateOne) SetTotalSpent(v float64) *ContactUpdateOne {
	_u.mutation.ResetTotalSpent()
	_u.mutation.SetTotalSpent(v)
	return _u
}

// SetNillableTotalSpent sets the "total_spent" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableTotalSpent(v *float64) *ContactUpdateOne {
	if v != nil {
		_u.SetTotalSpent(*v)
	}
	return _u
}

// AddTotalSpent adds value to the "total_spent" field.
func (_u *ContactUpdateOne) AddTotalSpent(v float64) *ContactUpdateOne {
	_u.mutation.AddTotalSpent(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactUpdateOne) SetUpdatedAt(v time.Time) *ContactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddThreadIDs adds the "threads" edge to the Thread entity by IDs.
func (_u *ContactUpdateOne) AddThreadIDs(ids ...string) *ContactUpdateOne {
	_u.mutation.AddThreadIDs(ids...)
	return _u
}

// AddThreads adds the "threads" edges to the Thread entity.
func (_u *ContactUpdateOne) AddThreads(v ...*Thread) *ContactUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddThreadIDs(ids...)
}

// AddSalesEventIDs adds the "sales_events" edge to the SalesEvent entity by IDs.
func (_u *ContactUpdateOne) AddSalesEventIDs(ids ...string) *ContactUpdateOne {
	_u.mutation.AddSalesEventIDs(ids...)
	return _u
}

// AddSalesEvents adds the "sales_events" edges to the SalesEvent entity.
func (_u *ContactUpdateOne) AddSalesEvents(v ...*SalesEvent) *ContactUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSalesEventIDs(ids...)
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdateOne) Mutation() *ContactMutation {
	return _u.mutation
}

// ClearThreads clears all "threads" edges to the Thread entity.
func (_u *ContactUpdateOne) ClearThreads() *ContactUpdateOne {
	_u.mutation.ClearThreads()
	return _u
}

// RemoveThreadIDs removes the "threads" edge to Thread entities by IDs.
func (_u *ContactUpdateOne) RemoveThreadIDs(ids ...string) *ContactUpdateOne {
	_u.mutation.RemoveThreadIDs(ids...)
	return _u
}

// RemoveThreads removes "threads" edges to Thread entities.
func (_u *ContactUpdateOne) RemoveThreads(v ...*Thread) *ContactUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveThreadIDs(ids...)
}

// ClearSalesEvents clears all "sales_events" edges to the SalesEvent entity.
func (_u *ContactUpdateOne) ClearSalesEvents() *ContactUpdateOne {
	_u.mutation.ClearSalesEvents()
	return _u
}

// RemoveSalesEventIDs removes the "sales_events" edge to SalesEvent entities by IDs.
func (_u *ContactUpdateOne) RemoveSalesEventIDs(ids ...string) *ContactUpdateOne {
	_u.mutation.RemoveSalesEventIDs(ids...)
	return _u
}

// RemoveSalesEvents removes "sales_events" edges to SalesEvent entities.
func (_u *ContactUpdateOne) RemoveSalesEvents(v ...*SalesEvent) *ContactUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSalesEventIDs(ids...)
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdateOne) Where(ps ...predicate.Contact) *ContactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContactUpdateOne) Select(field string, fields ...string) *ContactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contact entity.
func (_u *ContactUpdateOne) Save(ctx context.Context) (*Contact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdateOne) SaveX(ctx context.Context) *Contact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ContactUpdateOne) sqlSave(ctx context.Context) (_node *Contact, err error) {
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contact.FieldID)
		for _, f := range fields {
			if !contact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contact.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(contact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contact.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(contact.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.OrderCount(); ok {
		_spec.SetField(contact.FieldOrderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderCount(); ok {
		_spec.AddField(contact.FieldOrderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSpent(); ok {
		_spec.SetField(contact.FieldTotalSpent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalSpent(); ok {
		_spec.AddField(contact.FieldTotalSpent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ThreadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ThreadsTable,
			Columns: []string{contact.ThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thread.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedThreadsIDs(); len(nodes) > 0 && !_u.mutation.ThreadsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ThreadsTable,
			Columns: []string{contact.ThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ThreadsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ThreadsTable,
			Columns: []string{contact.ThreadsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thread.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SalesEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.SalesEventsTable,
			Columns: []string{contact.SalesEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(salesevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSalesEventsIDs(); len(nodes) > 0 && !_u.mutation.SalesEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.SalesEventsTable,
			Columns: []string{contact.SalesEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(salesevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SalesEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.SalesEventsTable,
			Columns: []string{contact.SalesEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(salesevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
