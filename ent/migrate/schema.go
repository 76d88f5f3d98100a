// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "contact_id", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "order_count", Type: field.TypeInt, Default: 0},
		{Name: "total_spent", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contact_email",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[2]},
			},
			{
				Name:    "contact_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[6]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_threads_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// InboundEventsColumns holds the columns for the "inbound_events" table.
	InboundEventsColumns = []*schema.Column{
		{Name: "inbound_event_id", Type: field.TypeString, Unique: true},
		{Name: "dedupe_key", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// InboundEventsTable holds the schema information for the "inbound_events" table.
	InboundEventsTable = &schema.Table{
		Name:       "inbound_events",
		Columns:    InboundEventsColumns,
		PrimaryKey: []*schema.Column{InboundEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "inbound_events_threads_inbound_events",
				Columns:    []*schema.Column{InboundEventsColumns[3]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "inboundevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{InboundEventsColumns[2]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "is_human", Type: field.TypeBool, Default: false},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "provider_message_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_threads_messages",
				Columns:    []*schema.Column{MessagesColumns[7]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[7], MessagesColumns[6]},
			},
		},
	}
	// SalesEventsColumns holds the columns for the "sales_events" table.
	SalesEventsColumns = []*schema.Column{
		{Name: "sales_event_id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString},
		{Name: "event_kind", Type: field.TypeString},
		{Name: "order_id", Type: field.TypeString},
		{Name: "buyer_email", Type: field.TypeString, Nullable: true},
		{Name: "buyer_phone", Type: field.TypeString, Nullable: true},
		{Name: "value", Type: field.TypeFloat64, Default: 0},
		{Name: "product_id", Type: field.TypeString, Nullable: true},
		{Name: "raw_payload", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "contact_id", Type: field.TypeString, Nullable: true},
	}
	// SalesEventsTable holds the schema information for the "sales_events" table.
	SalesEventsTable = &schema.Table{
		Name:       "sales_events",
		Columns:    SalesEventsColumns,
		PrimaryKey: []*schema.Column{SalesEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sales_events_contacts_sales_events",
				Columns:    []*schema.Column{SalesEventsColumns[10]},
				RefColumns: []*schema.Column{ContactsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "salesevent_source_event_kind_order_id",
				Unique:  true,
				Columns: []*schema.Column{SalesEventsColumns[1], SalesEventsColumns[2], SalesEventsColumns[3]},
			},
			{
				Name:    "salesevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{SalesEventsColumns[9]},
			},
			{
				Name:    "salesevent_contact_id",
				Unique:  false,
				Columns: []*schema.Column{SalesEventsColumns[10]},
			},
		},
	}
	// ScheduledJobsColumns holds the columns for the "scheduled_jobs" table.
	ScheduledJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "key", Type: field.TypeString},
		{Name: "fire_at", Type: field.TypeTime},
		{Name: "action_kind", Type: field.TypeString},
		{Name: "action_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "fired", "cancelled", "failed"}, Default: "pending"},
		{Name: "leased_until", Type: field.TypeTime, Nullable: true},
		{Name: "lease_owner", Type: field.TypeString, Nullable: true},
		{Name: "fired_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// ScheduledJobsTable holds the schema information for the "scheduled_jobs" table.
	ScheduledJobsTable = &schema.Table{
		Name:       "scheduled_jobs",
		Columns:    ScheduledJobsColumns,
		PrimaryKey: []*schema.Column{ScheduledJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scheduled_jobs_threads_scheduled_jobs",
				Columns:    []*schema.Column{ScheduledJobsColumns[12]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledjob_status_fire_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledJobsColumns[5], ScheduledJobsColumns[2]},
			},
			{
				Name:    "scheduledjob_thread_id_key",
				Unique:  false,
				Columns: []*schema.Column{ScheduledJobsColumns[12], ScheduledJobsColumns[1]},
			},
			{
				Name:    "scheduledjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledJobsColumns[5], ScheduledJobsColumns[10]},
			},
		},
	}
	// ThreadsColumns holds the columns for the "threads" table.
	ThreadsColumns = []*schema.Column{
		{Name: "thread_id", Type: field.TypeString, Unique: true},
		{Name: "channel", Type: field.TypeString, Default: "whatsapp"},
		{Name: "lead_stage", Type: field.TypeString, Default: ""},
		{Name: "human_takeover", Type: field.TypeBool, Default: false},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "contact_id", Type: field.TypeString},
	}
	// ThreadsTable holds the schema information for the "threads" table.
	ThreadsTable = &schema.Table{
		Name:       "threads",
		Columns:    ThreadsColumns,
		PrimaryKey: []*schema.Column{ThreadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "threads_contacts_threads",
				Columns:    []*schema.Column{ThreadsColumns[8]},
				RefColumns: []*schema.Column{ContactsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "thread_contact_id_channel",
				Unique:  true,
				Columns: []*schema.Column{ThreadsColumns[8], ThreadsColumns[1]},
			},
			{
				Name:    "thread_lead_stage",
				Unique:  false,
				Columns: []*schema.Column{ThreadsColumns[2]},
			},
			{
				Name:    "thread_human_takeover",
				Unique:  false,
				Columns: []*schema.Column{ThreadsColumns[3]},
			},
			{
				Name:    "thread_last_message_at",
				Unique:  false,
				Columns: []*schema.Column{ThreadsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContactsTable,
		EventsTable,
		InboundEventsTable,
		MessagesTable,
		SalesEventsTable,
		ScheduledJobsTable,
		ThreadsTable,
	}
)

func init() {
	EventsTable.ForeignKeys[0].RefTable = ThreadsTable
	InboundEventsTable.ForeignKeys[0].RefTable = ThreadsTable
	MessagesTable.ForeignKeys[0].RefTable = ThreadsTable
	SalesEventsTable.ForeignKeys[0].RefTable = ContactsTable
	ScheduledJobsTable.ForeignKeys[0].RefTable = ThreadsTable
	ThreadsTable.ForeignKeys[0].RefTable = ContactsTable
}
