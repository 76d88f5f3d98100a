// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadflowhq/leadflow/ent/contact"
	"github.com/leadflowhq/leadflow/ent/salesevent"
)

// SalesEventCreate is the builder for creating a SalesEvent entity.
type SalesEventCreate struct {
	config
	mutation *SalesEventMutation
	hooks    []Hook
}

// SetSource sets the "source" field.
func (_c *SalesEventCreate) SetSource(v string) *SalesEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetEventKind sets the "event_kind" field.
func (_c *SalesEventCreate) SetEventKind(v string) *SalesEventCreate {
	_c.mutation.SetEventKind(v)
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *SalesEventCreate) SetOrderID(v string) *SalesEventCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetBuyerEmail sets the "buyer_email" field.
func (_c *SalesEventCreate) SetBuyerEmail(v string) *SalesEventCreate {
	_c.mutation.SetBuyerEmail(v)
	return _c
}

// SetNillableBuyerEmail sets the "buyer_email" field if the given value is not nil.
func (_c *SalesEventCreate) SetNillableBuyerEmail(v *string) *SalesEventCreate {
	if v != nil {
		_c.SetBuyerEmail(*v)
	}
	return _c
}

// SetBuyerPhone sets the "buyer_phone" field.
func (_c *SalesEventCreate) SetBuyerPhone(v string) *SalesEventCreate {
	_c.mutation.SetBuyerPhone(v)
	return _c
}

// SetNillableBuyerPhone sets the "buyer_phone" field if the given value is not nil.
func (_c *SalesEventCreate) SetNillableBuyerPhone(v *string) *SalesEventCreate {
	if v != nil {
		_c.SetBuyerPhone(*v)
	}
	return _c
}

// SetValue sets the "value" field.
func (_c *SalesEventCreate) SetValue(v float64) *SalesEventCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *SalesEventCreate) SetNillableValue(v *float64) *SalesEventCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetProductID sets the "product_id" field.
func (_c *SalesEventCreate) SetProductID(v string) *SalesEventCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_c *SalesEventCreate) SetNillableProductID(v *string) *SalesEventCreate {
	if v != nil {
		_c.SetProductID(*v)
	}
	return _c
}

// SetRawPayload sets the "raw_payload" field.
func (_c *SalesEventCreate) SetRawPayload(v string) *SalesEventCreate {
	_c.mutation.SetRawPayload(v)
	return _c
}

// SetContactID sets the "contact_id" field.
func (_c *SalesEventCreate) SetContactID(v string) *SalesEventCreate {
	_c.mutation.SetContactID(v)
	return _c
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_c *SalesEventCreate) SetNillableContactID(v *string) *SalesEventCreate {
	if v != nil {
		_c.SetContactID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SalesEventCreate) SetCreatedAt(v time.Time) *SalesEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SalesEventCreate) SetNillableCreatedAt(v *time.Time) *SalesEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SalesEventCreate) SetID(v string) *SalesEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetContact sets the "contact" edge to the Contact entity.
func (_c *SalesEventCreate) SetContact(v *Contact) *SalesEventCreate {
	return _c.SetContactID(v.ID)
}

// Mutation returns the SalesEventMutation object of the builder.
func (_c *SalesEventCreate) Mutation() *SalesEventMutation {
	return _c.mutation
}

// Save creates the SalesEvent in the database.
func (_c *SalesEventCreate) Save(ctx context.Context) (*SalesEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SalesEventCreate) SaveX(ctx context.Context) *SalesEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SalesEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SalesEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SalesEventCreate) defaults() {
	if _, ok := _c.mutation.Value(); !ok {
		v := salesevent.DefaultValue
		_c.mutation.SetValue(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := salesevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SalesEventCreate) check() error {
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "SalesEvent.source"`)}
	}
	if _, ok := _c.mutation.EventKind(); !ok {
		return &ValidationError{Name: "event_kind", err: errors.New(`ent: missing required field "SalesEvent.event_kind"`)}
	}
	if _, ok := _c.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`ent: missing required field "SalesEvent.order_id"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "SalesEvent.value"`)}
	}
	if _, ok := _c.mutation.RawPayload(); !ok {
		return &ValidationError{Name: "raw_payload", err: errors.New(`ent: missing required field "SalesEvent.raw_payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SalesEvent.created_at"`)}
	}
	return nil
}

func (_c *SalesEventCreate) sqlSave(ctx context.Context) (*SalesEvent, error) {
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
			return nil, fmt.Errorf("unexpected SalesEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SalesEventCreate) createSpec() (*SalesEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SalesEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(salesevent.Table, sqlgraph.NewFieldSpec(salesevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(salesevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.EventKind(); ok {
		_spec.SetField(salesevent.FieldEventKind, field.TypeString, value)
		_node.EventKind = value
	}
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(salesevent.FieldOrderID, field.TypeString, value)
		_node.OrderID = value
	}
	if value, ok := _c.mutation.BuyerEmail(); ok {
		_spec.SetField(salesevent.FieldBuyerEmail, field.TypeString, value)
		_node.BuyerEmail = &value
	}
	if value, ok := _c.mutation.BuyerPhone(); ok {
		_spec.SetField(salesevent.FieldBuyerPhone, field.TypeString, value)
		_node.BuyerPhone = &value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(salesevent.FieldValue, field.TypeFloat64, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.ProductID(); ok {
		_spec.SetField(salesevent.FieldProductID, field.TypeString, value)
		_node.ProductID = &value
	}
	if value, ok := _c.mutation.RawPayload(); ok {
		_spec.SetField(salesevent.FieldRawPayload, field.TypeString, value)
		_node.RawPayload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(salesevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ContactIDs(); len(nodes) > 0 {
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
		_node.ContactID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SalesEventCreateBulk is the builder for creating many SalesEvent entities in bulk.
type SalesEventCreateBulk struct {
	config
	err      error
	builders []*SalesEventCreate
}

// Save creates the SalesEvent entities in the database.
func (_c *SalesEventCreateBulk) Save(ctx context.Context) ([]*SalesEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SalesEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SalesEventMutation)
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
func (_c *SalesEventCreateBulk) SaveX(ctx context.Context) []*SalesEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SalesEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SalesEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
