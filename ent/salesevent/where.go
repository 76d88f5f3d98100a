// Code generated by ent, DO NOT EDIT.

package salesevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/leadflowhq/leadflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContainsFold(FieldID, id))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldSource, v))
}

// EventKind applies equality check predicate on the "event_kind" field. It's identical to EventKindEQ.
func EventKind(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldEventKind, v))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldOrderID, v))
}

// BuyerEmail applies equality check predicate on the "buyer_email" field. It's identical to BuyerEmailEQ.
func BuyerEmail(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldBuyerEmail, v))
}

// BuyerPhone applies equality check predicate on the "buyer_phone" field. It's identical to BuyerPhoneEQ.
func BuyerPhone(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldBuyerPhone, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldValue, v))
}

// ProductID applies equality check predicate on the "product_id" field. It's identical to ProductIDEQ.
func ProductID(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldProductID, v))
}

// RawPayload applies equality check predicate on the "raw_payload" field. It's identical to RawPayloadEQ.
func RawPayload(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldRawPayload, v))
}

// ContactID applies equality check predicate on the "contact_id" field. It's identical to ContactIDEQ.
func ContactID(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldContactID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContainsFold(FieldSource, v))
}

// EventKindEQ applies the EQ predicate on the "event_kind" field.
func EventKindEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldEventKind, v))
}

// EventKindNEQ applies the NEQ predicate on the "event_kind" field.
func EventKindNEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNEQ(FieldEventKind, v))
}

// EventKindIn applies the In predicate on the "event_kind" field.
func EventKindIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldIn(FieldEventKind, vs...))
}

// EventKindNotIn applies the NotIn predicate on the "event_kind" field.
func EventKindNotIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNotIn(FieldEventKind, vs...))
}

// EventKindGT applies the GT predicate on the "event_kind" field.
func EventKindGT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGT(FieldEventKind, v))
}

// EventKindGTE applies the GTE predicate on the "event_kind" field.
func EventKindGTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGTE(FieldEventKind, v))
}

// EventKindLT applies the LT predicate on the "event_kind" field.
func EventKindLT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLT(FieldEventKind, v))
}

// EventKindLTE applies the LTE predicate on the "event_kind" field.
func EventKindLTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLTE(FieldEventKind, v))
}

// EventKindContains applies the Contains predicate on the "event_kind" field.
func EventKindContains(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContains(FieldEventKind, v))
}

// EventKindHasPrefix applies the HasPrefix predicate on the "event_kind" field.
func EventKindHasPrefix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasPrefix(FieldEventKind, v))
}

// EventKindHasSuffix applies the HasSuffix predicate on the "event_kind" field.
func EventKindHasSuffix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasSuffix(FieldEventKind, v))
}

// EventKindEqualFold applies the EqualFold predicate on the "event_kind" field.
func EventKindEqualFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEqualFold(FieldEventKind, v))
}

// EventKindContainsFold applies the ContainsFold predicate on the "event_kind" field.
func EventKindContainsFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContainsFold(FieldEventKind, v))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDGT applies the GT predicate on the "order_id" field.
func OrderIDGT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGT(FieldOrderID, v))
}

// OrderIDGTE applies the GTE predicate on the "order_id" field.
func OrderIDGTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGTE(FieldOrderID, v))
}

// OrderIDLT applies the LT predicate on the "order_id" field.
func OrderIDLT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLT(FieldOrderID, v))
}

// OrderIDLTE applies the LTE predicate on the "order_id" field.
func OrderIDLTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLTE(FieldOrderID, v))
}

// OrderIDContains applies the Contains predicate on the "order_id" field.
func OrderIDContains(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContains(FieldOrderID, v))
}

// OrderIDHasPrefix applies the HasPrefix predicate on the "order_id" field.
func OrderIDHasPrefix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasPrefix(FieldOrderID, v))
}

// OrderIDHasSuffix applies the HasSuffix predicate on the "order_id" field.
func OrderIDHasSuffix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasSuffix(FieldOrderID, v))
}

// OrderIDEqualFold applies the EqualFold predicate on the "order_id" field.
func OrderIDEqualFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEqualFold(FieldOrderID, v))
}

// OrderIDContainsFold applies the ContainsFold predicate on the "order_id" field.
func OrderIDContainsFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContainsFold(FieldOrderID, v))
}

// BuyerEmailEQ applies the EQ predicate on the "buyer_email" field.
func BuyerEmailEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldBuyerEmail, v))
}

// BuyerEmailNEQ applies the NEQ predicate on the "buyer_email" field.
func BuyerEmailNEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNEQ(FieldBuyerEmail, v))
}

// BuyerEmailIn applies the In predicate on the "buyer_email" field.
func BuyerEmailIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldIn(FieldBuyerEmail, vs...))
}

// BuyerEmailNotIn applies the NotIn predicate on the "buyer_email" field.
func BuyerEmailNotIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNotIn(FieldBuyerEmail, vs...))
}

// BuyerEmailGT applies the GT predicate on the "buyer_email" field.
func BuyerEmailGT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGT(FieldBuyerEmail, v))
}

// BuyerEmailGTE applies the GTE predicate on the "buyer_email" field.
func BuyerEmailGTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGTE(FieldBuyerEmail, v))
}

// BuyerEmailLT applies the LT predicate on the "buyer_email" field.
func BuyerEmailLT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLT(FieldBuyerEmail, v))
}

// BuyerEmailLTE applies the LTE predicate on the "buyer_email" field.
func BuyerEmailLTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLTE(FieldBuyerEmail, v))
}

// BuyerEmailContains applies the Contains predicate on the "buyer_email" field.
func BuyerEmailContains(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContains(FieldBuyerEmail, v))
}

// BuyerEmailHasPrefix applies the HasPrefix predicate on the "buyer_email" field.
func BuyerEmailHasPrefix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasPrefix(FieldBuyerEmail, v))
}

// BuyerEmailHasSuffix applies the HasSuffix predicate on the "buyer_email" field.
func BuyerEmailHasSuffix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasSuffix(FieldBuyerEmail, v))
}

// BuyerEmailIsNil applies the IsNil predicate on the "buyer_email" field.
func BuyerEmailIsNil() predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldIsNull(FieldBuyerEmail))
}

// BuyerEmailNotNil applies the NotNil predicate on the "buyer_email" field.
func BuyerEmailNotNil() predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNotNull(FieldBuyerEmail))
}

// BuyerEmailEqualFold applies the EqualFold predicate on the "buyer_email" field.
func BuyerEmailEqualFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEqualFold(FieldBuyerEmail, v))
}

// BuyerEmailContainsFold applies the ContainsFold predicate on the "buyer_email" field.
func BuyerEmailContainsFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContainsFold(FieldBuyerEmail, v))
}

// BuyerPhoneEQ applies the EQ predicate on the "buyer_phone" field.
func BuyerPhoneEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldBuyerPhone, v))
}

// BuyerPhoneNEQ applies the NEQ predicate on the "buyer_phone" field.
func BuyerPhoneNEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNEQ(FieldBuyerPhone, v))
}

// BuyerPhoneIn applies the In predicate on the "buyer_phone" field.
func BuyerPhoneIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldIn(FieldBuyerPhone, vs...))
}

// BuyerPhoneNotIn applies the NotIn predicate on the "buyer_phone" field.
func BuyerPhoneNotIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNotIn(FieldBuyerPhone, vs...))
}

// BuyerPhoneGT applies the GT predicate on the "buyer_phone" field.
func BuyerPhoneGT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGT(FieldBuyerPhone, v))
}

// BuyerPhoneGTE applies the GTE predicate on the "buyer_phone" field.
func BuyerPhoneGTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGTE(FieldBuyerPhone, v))
}

// BuyerPhoneLT applies the LT predicate on the "buyer_phone" field.
func BuyerPhoneLT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLT(FieldBuyerPhone, v))
}

// BuyerPhoneLTE applies the LTE predicate on the "buyer_phone" field.
func BuyerPhoneLTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLTE(FieldBuyerPhone, v))
}

// BuyerPhoneContains applies the Contains predicate on the "buyer_phone" field.
func BuyerPhoneContains(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContains(FieldBuyerPhone, v))
}

// BuyerPhoneHasPrefix applies the HasPrefix predicate on the "buyer_phone" field.
func BuyerPhoneHasPrefix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasPrefix(FieldBuyerPhone, v))
}

// BuyerPhoneHasSuffix applies the HasSuffix predicate on the "buyer_phone" field.
func BuyerPhoneHasSuffix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasSuffix(FieldBuyerPhone, v))
}

// BuyerPhoneIsNil applies the IsNil predicate on the "buyer_phone" field.
func BuyerPhoneIsNil() predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldIsNull(FieldBuyerPhone))
}

// BuyerPhoneNotNil applies the NotNil predicate on the "buyer_phone" field.
func BuyerPhoneNotNil() predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNotNull(FieldBuyerPhone))
}

// BuyerPhoneEqualFold applies the EqualFold predicate on the "buyer_phone" field.
func BuyerPhoneEqualFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEqualFold(FieldBuyerPhone, v))
}

// BuyerPhoneContainsFold applies the ContainsFold predicate on the "buyer_phone" field.
func BuyerPhoneContainsFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContainsFold(FieldBuyerPhone, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLTE(FieldValue, v))
}

// ProductIDEQ applies the EQ predicate on the "product_id" field.
func ProductIDEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldProductID, v))
}

// ProductIDNEQ applies the NEQ predicate on the "product_id" field.
func ProductIDNEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNEQ(FieldProductID, v))
}

// ProductIDIn applies the In predicate on the "product_id" field.
func ProductIDIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldIn(FieldProductID, vs...))
}

// ProductIDNotIn applies the NotIn predicate on the "product_id" field.
func ProductIDNotIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNotIn(FieldProductID, vs...))
}

// ProductIDGT applies the GT predicate on the "product_id" field.
func ProductIDGT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGT(FieldProductID, v))
}

// ProductIDGTE applies the GTE predicate on the "product_id" field.
func ProductIDGTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGTE(FieldProductID, v))
}

// ProductIDLT applies the LT predicate on the "product_id" field.
func ProductIDLT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLT(FieldProductID, v))
}

// ProductIDLTE applies the LTE predicate on the "product_id" field.
func ProductIDLTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLTE(FieldProductID, v))
}

// ProductIDContains applies the Contains predicate on the "product_id" field.
func ProductIDContains(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContains(FieldProductID, v))
}

// ProductIDHasPrefix applies the HasPrefix predicate on the "product_id" field.
func ProductIDHasPrefix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasPrefix(FieldProductID, v))
}

// ProductIDHasSuffix applies the HasSuffix predicate on the "product_id" field.
func ProductIDHasSuffix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasSuffix(FieldProductID, v))
}

// ProductIDIsNil applies the IsNil predicate on the "product_id" field.
func ProductIDIsNil() predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldIsNull(FieldProductID))
}

// ProductIDNotNil applies the NotNil predicate on the "product_id" field.
func ProductIDNotNil() predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNotNull(FieldProductID))
}

// ProductIDEqualFold applies the EqualFold predicate on the "product_id" field.
func ProductIDEqualFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEqualFold(FieldProductID, v))
}

// ProductIDContainsFold applies the ContainsFold predicate on the "product_id" field.
func ProductIDContainsFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContainsFold(FieldProductID, v))
}

// RawPayloadEQ applies the EQ predicate on the "raw_payload" field.
func RawPayloadEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldRawPayload, v))
}

// RawPayloadNEQ applies the NEQ predicate on the "raw_payload" field.
func RawPayloadNEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNEQ(FieldRawPayload, v))
}

// RawPayloadIn applies the In predicate on the "raw_payload" field.
func RawPayloadIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldIn(FieldRawPayload, vs...))
}

// RawPayloadNotIn applies the NotIn predicate on the "raw_payload" field.
func RawPayloadNotIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNotIn(FieldRawPayload, vs...))
}

// RawPayloadGT applies the GT predicate on the "raw_payload" field.
func RawPayloadGT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGT(FieldRawPayload, v))
}

// RawPayloadGTE applies the GTE predicate on the "raw_payload" field.
func RawPayloadGTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGTE(FieldRawPayload, v))
}

// RawPayloadLT applies the LT predicate on the "raw_payload" field.
func RawPayloadLT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLT(FieldRawPayload, v))
}

// RawPayloadLTE applies the LTE predicate on the "raw_payload" field.
func RawPayloadLTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLTE(FieldRawPayload, v))
}

// RawPayloadContains applies the Contains predicate on the "raw_payload" field.
func RawPayloadContains(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContains(FieldRawPayload, v))
}

// RawPayloadHasPrefix applies the HasPrefix predicate on the "raw_payload" field.
func RawPayloadHasPrefix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasPrefix(FieldRawPayload, v))
}

// RawPayloadHasSuffix applies the HasSuffix predicate on the "raw_payload" field.
func RawPayloadHasSuffix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasSuffix(FieldRawPayload, v))
}

// RawPayloadEqualFold applies the EqualFold predicate on the "raw_payload" field.
func RawPayloadEqualFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEqualFold(FieldRawPayload, v))
}

// RawPayloadContainsFold applies the ContainsFold predicate on the "raw_payload" field.
func RawPayloadContainsFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContainsFold(FieldRawPayload, v))
}

// ContactIDEQ applies the EQ predicate on the "contact_id" field.
func ContactIDEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldContactID, v))
}

// ContactIDNEQ applies the NEQ predicate on the "contact_id" field.
func ContactIDNEQ(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNEQ(FieldContactID, v))
}

// ContactIDIn applies the In predicate on the "contact_id" field.
func ContactIDIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldIn(FieldContactID, vs...))
}

// ContactIDNotIn applies the NotIn predicate on the "contact_id" field.
func ContactIDNotIn(vs ...string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNotIn(FieldContactID, vs...))
}

// ContactIDGT applies the GT predicate on the "contact_id" field.
func ContactIDGT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGT(FieldContactID, v))
}

// ContactIDGTE applies the GTE predicate on the "contact_id" field.
func ContactIDGTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGTE(FieldContactID, v))
}

// ContactIDLT applies the LT predicate on the "contact_id" field.
func ContactIDLT(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLT(FieldContactID, v))
}

// ContactIDLTE applies the LTE predicate on the "contact_id" field.
func ContactIDLTE(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLTE(FieldContactID, v))
}

// ContactIDContains applies the Contains predicate on the "contact_id" field.
func ContactIDContains(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContains(FieldContactID, v))
}

// ContactIDHasPrefix applies the HasPrefix predicate on the "contact_id" field.
func ContactIDHasPrefix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasPrefix(FieldContactID, v))
}

// ContactIDHasSuffix applies the HasSuffix predicate on the "contact_id" field.
func ContactIDHasSuffix(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldHasSuffix(FieldContactID, v))
}

// ContactIDIsNil applies the IsNil predicate on the "contact_id" field.
func ContactIDIsNil() predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldIsNull(FieldContactID))
}

// ContactIDNotNil applies the NotNil predicate on the "contact_id" field.
func ContactIDNotNil() predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNotNull(FieldContactID))
}

// ContactIDEqualFold applies the EqualFold predicate on the "contact_id" field.
func ContactIDEqualFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEqualFold(FieldContactID, v))
}

// ContactIDContainsFold applies the ContainsFold predicate on the "contact_id" field.
func ContactIDContainsFold(v string) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldContainsFold(FieldContactID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SalesEvent {
	return predicate.SalesEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasContact applies the HasEdge predicate on the "contact" edge.
func HasContact() predicate.SalesEvent {
	return predicate.SalesEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContactTable, ContactColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContactWith applies the HasEdge predicate on the "contact" edge with a given conditions (other predicates).
func HasContactWith(preds ...predicate.Contact) predicate.SalesEvent {
	return predicate.SalesEvent(func(s *sql.Selector) {
		step := newContactStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SalesEvent) predicate.SalesEvent {
	return predicate.SalesEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SalesEvent) predicate.SalesEvent {
	return predicate.SalesEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SalesEvent) predicate.SalesEvent {
	return predicate.SalesEvent(sql.NotPredicates(p))
}
