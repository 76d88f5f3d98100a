// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/leadflowhq/leadflow/ent/contact"
	"github.com/leadflowhq/leadflow/ent/salesevent"
)

// SalesEvent is the model entity for the SalesEvent schema.
type SalesEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Billing platform identifier
	Source string `json:"source,omitempty"`
	// e.g. 'sale.approved', 'cart.abandonment'
	EventKind string `json:"event_kind,omitempty"`
	// OrderID holds the value of the "order_id" field.
	OrderID string `json:"order_id,omitempty"`
	// BuyerEmail holds the value of the "buyer_email" field.
	BuyerEmail *string `json:"buyer_email,omitempty"`
	// BuyerPhone holds the value of the "buyer_phone" field.
	BuyerPhone *string `json:"buyer_phone,omitempty"`
	// Value holds the value of the "value" field.
	Value float64 `json:"value,omitempty"`
	// ProductID holds the value of the "product_id" field.
	ProductID *string `json:"product_id,omitempty"`
	// Webhook body after sensitive-data masking
	RawPayload string `json:"raw_payload,omitempty"`
	// Set when the buyer could be correlated to a contact
	ContactID *string `json:"contact_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SalesEventQuery when eager-loading is set.
	Edges        SalesEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SalesEventEdges holds the relations/edges for other nodes in the graph.
type SalesEventEdges struct {
	// Contact holds the value of the contact edge.
	Contact *Contact `json:"contact,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContactOrErr returns the Contact value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SalesEventEdges) ContactOrErr() (*Contact, error) {
	if e.Contact != nil {
		return e.Contact, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contact.Label}
	}
	return nil, &NotLoadedError{edge: "contact"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SalesEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case salesevent.FieldValue:
			values[i] = new(sql.NullFloat64)
		case salesevent.FieldID, salesevent.FieldSource, salesevent.FieldEventKind, salesevent.FieldOrderID, salesevent.FieldBuyerEmail, salesevent.FieldBuyerPhone, salesevent.FieldProductID, salesevent.FieldRawPayload, salesevent.FieldContactID:
			values[i] = new(sql.NullString)
		case salesevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SalesEvent fields.
func (_m *SalesEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case salesevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case salesevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case salesevent.FieldEventKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_kind", values[i])
			} else if value.Valid {
				_m.EventKind = value.String
			}
		case salesevent.FieldOrderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value.Valid {
				_m.OrderID = value.String
			}
		case salesevent.FieldBuyerEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_email", values[i])
			} else if value.Valid {
				_m.BuyerEmail = new(string)
				*_m.BuyerEmail = value.String
			}
		case salesevent.FieldBuyerPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_phone", values[i])
			} else if value.Valid {
				_m.BuyerPhone = new(string)
				*_m.BuyerPhone = value.String
			}
		case salesevent.FieldValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.Float64
			}
		case salesevent.FieldProductID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_id", values[i])
			} else if value.Valid {
				_m.ProductID = new(string)
				*_m.ProductID = value.String
			}
		case salesevent.FieldRawPayload:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_payload", values[i])
			} else if value.Valid {
				_m.RawPayload = value.String
			}
		case salesevent.FieldContactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_id", values[i])
			} else if value.Valid {
				_m.ContactID = new(string)
				*_m.ContactID = value.String
			}
		case salesevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the SalesEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SalesEvent) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContact queries the "contact" edge of the SalesEvent entity.
func (_m *SalesEvent) QueryContact() *ContactQuery {
	return NewSalesEventClient(_m.config).QueryContact(_m)
}

// Update returns a builder for updating this SalesEvent.
// Note that you need to call SalesEvent.Unwrap() before calling this method if this SalesEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SalesEvent) Update() *SalesEventUpdateOne {
	return NewSalesEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SalesEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SalesEvent) Unwrap() *SalesEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SalesEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SalesEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SalesEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("event_kind=")
	builder.WriteString(_m.EventKind)
	builder.WriteString(", ")
	builder.WriteString("order_id=")
	builder.WriteString(_m.OrderID)
	builder.WriteString(", ")
	if v := _m.BuyerEmail; v != nil {
		builder.WriteString("buyer_email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BuyerPhone; v != nil {
		builder.WriteString("buyer_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	if v := _m.ProductID; v != nil {
		builder.WriteString("product_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("raw_payload=")
	builder.WriteString(_m.RawPayload)
	builder.WriteString(", ")
	if v := _m.ContactID; v != nil {
		builder.WriteString("contact_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SalesEvents is a parsable slice of SalesEvent.
type SalesEvents []*SalesEvent
