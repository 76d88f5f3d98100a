// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Contact is the predicate function for contact builders.
type Contact func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// InboundEvent is the predicate function for inboundevent builders.
type InboundEvent func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// SalesEvent is the predicate function for salesevent builders.
type SalesEvent func(*sql.Selector)

// ScheduledJob is the predicate function for scheduledjob builders.
type ScheduledJob func(*sql.Selector)

// Thread is the predicate function for thread builders.
type Thread func(*sql.Selector)
