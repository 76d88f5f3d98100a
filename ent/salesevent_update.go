// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadflowhq/leadflow/ent/contact"
	"github.com/leadflowhq/leadflow/ent/predicate"
	"github.com/leadflowhq/leadflow/ent/salesevent"
)

// SalesEventUpdate is the builder for updating SalesEvent entities.
type SalesEventUpdate struct {
	config
	hooks    []Hook
	mutation *SalesEventMutation
}

// Where appends a list predicates to the SalesEventUpdate builder.
func (_u *SalesEventUpdate) Where(ps ...predicate.SalesEvent) *SalesEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *SalesEventUpdate) SetContactID(v string) *SalesEventUpdate {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *SalesEventUpdate) SetNillableContactID(v *string) *SalesEventUpdate {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *SalesEventUpdate) ClearContactID() *SalesEventUpdate {
	_u.mutation.ClearContactID()
	return _u
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *SalesEventUpdate) SetContact(v *Contact) *SalesEventUpdate {
	return _u.SetContactID(v.ID)
}

// Mutation returns the SalesEventMutation object of the builder.
func (_u *SalesEventUpdate) Mutation() *SalesEventMutation {
	return _u.mutation
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *SalesEventUpdate) ClearContact() *SalesEventUpdate {
	_u.mutation.ClearContact()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SalesEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SalesEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SalesEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SalesEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SalesEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(salesevent.Table, salesevent.Columns, sqlgraph.NewFieldSpec(salesevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.BuyerEmailCleared() {
		_spec.ClearField(salesevent.FieldBuyerEmail, field.TypeString)
	}
	if _u.mutation.BuyerPhoneCleared() {
		_spec.ClearField(salesevent.FieldBuyerPhone, field.TypeString)
	}
	if _u.mutation.ProductIDCleared() {
		_spec.ClearField(salesevent.FieldProductID, field.TypeString)
	}
	if _u.mutation.ContactCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   salesevent.ContactTable,
			Columns: []string{salesevent.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   salesevent.ContactTable,
			Columns: []string{salesevent.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{salesevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SalesEventUpdateOne is the builder for updating a single SalesEvent entity.
type SalesEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SalesEventMutation
}

// SetContactID sets the "contact_id" field.
func (_u *SalesEventUpdateOne) SetContactID(v string) *SalesEventUpdateOne {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *SalesEventUpdateOne) SetNillableContactID(v *string) *SalesEventUpdateOne {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *SalesEventUpdateOne) ClearContactID() *SalesEventUpdateOne {
	_u.mutation.ClearContactID()
	return _u
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *SalesEventUpdateOne) SetContact(v *Contact) *SalesEventUpdateOne {
	return _u.SetContactID(v.ID)
}

// Mutation returns the SalesEventMutation object of the builder.
func (_u *SalesEventUpdateOne) Mutation() *SalesEventMutation {
	return _u.mutation
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *SalesEventUpdateOne) ClearContact() *SalesEventUpdateOne {
	_u.mutation.ClearContact()
	return _u
}

// Where appends a list predicates to the SalesEventUpdate builder.
func (_u *SalesEventUpdateOne) Where(ps ...predicate.SalesEvent) *SalesEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SalesEventUpdateOne) Select(field string, fields ...string) *SalesEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SalesEvent entity.
func (_u *SalesEventUpdateOne) Save(ctx context.Context) (*SalesEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SalesEventUpdateOne) SaveX(ctx context.Context) *SalesEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SalesEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SalesEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SalesEventUpdateOne) sqlSave(ctx context.Context) (_node *SalesEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(salesevent.Table, salesevent.Columns, sqlgraph.NewFieldSpec(salesevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SalesEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, salesevent.FieldID)
		for _, f := range fields {
			if !salesevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != salesevent.FieldID {
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
	if _u.mutation.BuyerEmailCleared() {
		_spec.ClearField(salesevent.FieldBuyerEmail, field.TypeString)
	}
	if _u.mutation.BuyerPhoneCleared() {
		_spec.ClearField(salesevent.FieldBuyerPhone, field.TypeString)
	}
	if _u.mutation.ProductIDCleared() {
		_spec.ClearField(salesevent.FieldProductID, field.TypeString)
	}
	if _u.mutation.ContactCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   salesevent.ContactTable,
			Columns: []string{salesevent.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   salesevent.ContactTable,
			Columns: []string{salesevent.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SalesEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{salesevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
