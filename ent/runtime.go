// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/leadflowhq/leadflow/ent/contact"
	"github.com/leadflowhq/leadflow/ent/event"
	"github.com/leadflowhq/leadflow/ent/inboundevent"
	"github.com/leadflowhq/leadflow/ent/message"
	"github.com/leadflowhq/leadflow/ent/salesevent"
	"github.com/leadflowhq/leadflow/ent/scheduledjob"
	"github.com/leadflowhq/leadflow/ent/schema"
	"github.com/leadflowhq/leadflow/ent/thread"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescOrderCount is the schema descriptor for order_count field.
	contactDescOrderCount := contactFields[4].Descriptor()
	// contact.DefaultOrderCount holds the default value on creation for the order_count field.
	contact.DefaultOrderCount = contactDescOrderCount.Default.(int)
	// contactDescTotalSpent is the schema descriptor for total_spent field.
	contactDescTotalSpent := contactFields[5].Descriptor()
	// contact.DefaultTotalSpent holds the default value on creation for the total_spent field.
	contact.DefaultTotalSpent = contactDescTotalSpent.Default.(float64)
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[6].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescUpdatedAt is the schema descriptor for updated_at field.
	contactDescUpdatedAt := contactFields[7].Descriptor()
	// contact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contact.DefaultUpdatedAt = contactDescUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contact.UpdateDefaultUpdatedAt = contactDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	inboundeventFields := schema.InboundEvent{}.Fields()
	_ = inboundeventFields
	// inboundeventDescCreatedAt is the schema descriptor for created_at field.
	inboundeventDescCreatedAt := inboundeventFields[3].Descriptor()
	// inboundevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	inboundevent.DefaultCreatedAt = inboundeventDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescIsHuman is the schema descriptor for is_human field.
	messageDescIsHuman := messageFields[4].Descriptor()
	// message.DefaultIsHuman holds the default value on creation for the is_human field.
	message.DefaultIsHuman = messageDescIsHuman.Default.(bool)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[7].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	saleseventFields := schema.SalesEvent{}.Fields()
	_ = saleseventFields
	// saleseventDescValue is the schema descriptor for value field.
	saleseventDescValue := saleseventFields[6].Descriptor()
	// salesevent.DefaultValue holds the default value on creation for the value field.
	salesevent.DefaultValue = saleseventDescValue.Default.(float64)
	// saleseventDescCreatedAt is the schema descriptor for created_at field.
	saleseventDescCreatedAt := saleseventFields[10].Descriptor()
	// salesevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	salesevent.DefaultCreatedAt = saleseventDescCreatedAt.Default.(func() time.Time)
	scheduledjobFields := schema.ScheduledJob{}.Fields()
	_ = scheduledjobFields
	// scheduledjobDescCreatedAt is the schema descriptor for created_at field.
	scheduledjobDescCreatedAt := scheduledjobFields[11].Descriptor()
	// scheduledjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledjob.DefaultCreatedAt = scheduledjobDescCreatedAt.Default.(func() time.Time)
	// scheduledjobDescUpdatedAt is the schema descriptor for updated_at field.
	scheduledjobDescUpdatedAt := scheduledjobFields[12].Descriptor()
	// scheduledjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scheduledjob.DefaultUpdatedAt = scheduledjobDescUpdatedAt.Default.(func() time.Time)
	// scheduledjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scheduledjob.UpdateDefaultUpdatedAt = scheduledjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	threadFields := schema.Thread{}.Fields()
	_ = threadFields
	// threadDescChannel is the schema descriptor for channel field.
	threadDescChannel := threadFields[2].Descriptor()
	// thread.DefaultChannel holds the default value on creation for the channel field.
	thread.DefaultChannel = threadDescChannel.Default.(string)
	// threadDescLeadStage is the schema descriptor for lead_stage field.
	threadDescLeadStage := threadFields[3].Descriptor()
	// thread.DefaultLeadStage holds the default value on creation for the lead_stage field.
	thread.DefaultLeadStage = threadDescLeadStage.Default.(string)
	// threadDescHumanTakeover is the schema descriptor for human_takeover field.
	threadDescHumanTakeover := threadFields[4].Descriptor()
	// thread.DefaultHumanTakeover holds the default value on creation for the human_takeover field.
	thread.DefaultHumanTakeover = threadDescHumanTakeover.Default.(bool)
	// threadDescCreatedAt is the schema descriptor for created_at field.
	threadDescCreatedAt := threadFields[7].Descriptor()
	// thread.DefaultCreatedAt holds the default value on creation for the created_at field.
	thread.DefaultCreatedAt = threadDescCreatedAt.Default.(func() time.Time)
	// threadDescUpdatedAt is the schema descriptor for updated_at field.
	threadDescUpdatedAt := threadFields[8].Descriptor()
	// thread.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	thread.DefaultUpdatedAt = threadDescUpdatedAt.Default.(func() time.Time)
	// thread.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	thread.UpdateDefaultUpdatedAt = threadDescUpdatedAt.UpdateDefault.(func() time.Time)
}
