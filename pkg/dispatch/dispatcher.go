// Package dispatch orchestrates the conversation pipeline: inbound
// webhook traffic, billing events, and scheduled follow-ups all converge
// here, serialized per thread by a keyed lock registry.
package dispatch

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/pkg/config"
	"github.com/leadflowhq/leadflow/pkg/detect"
	"github.com/leadflowhq/leadflow/pkg/events"
	"github.com/leadflowhq/leadflow/pkg/funnel"
	"github.com/leadflowhq/leadflow/pkg/llm"
	"github.com/leadflowhq/leadflow/pkg/models"
	"github.com/leadflowhq/leadflow/pkg/respond"
	"github.com/leadflowhq/leadflow/pkg/services"
	"github.com/leadflowhq/leadflow/pkg/slack"
)

// llmTimeout bounds one generative-backend round trip from the
// dispatcher's side, independent of the client's own timeout.
const llmTimeout = 30 * time.Second

// cartRecoveryPrefix is the job-key prefix for recovery follow-ups; any
// inbound activity from the contact cancels the whole family.
const cartRecoveryPrefix = "cart_recovery_"

// EventSink publishes operator-stream events for the dispatcher's own
// mutations. respond.Processor publishes for the mutations it owns.
type EventSink interface {
	respond.EventSink
	PublishTakeoverChanged(ctx context.Context, threadID string, payload events.TakeoverChangedPayload) error
	PublishSaleRecorded(ctx context.Context, threadID string, payload events.SaleRecordedPayload) error
}

// Dispatcher is the pipeline entry point for inbound messages, billing
// events, and scheduled jobs. One instance per process; safe for
// concurrent use.
type Dispatcher struct {
	contacts  *services.ContactService
	threads   *services.ThreadService
	messages  *services.MessageService
	jobs      *services.JobService
	sales     *services.SalesService
	engine    *funnel.Engine
	support   *detect.SupportDetector
	detector  *detect.FunnelDetector
	llmClient llm.Client
	processor *respond.Processor
	sink      EventSink
	notifier  *slack.Service
	cfg       *config.Config
	locks     *threadLocks
	logger    *slog.Logger
}

// NewDispatcher wires the pipeline. sink and notifier may be nil.
func NewDispatcher(
	contacts *services.ContactService,
	threads *services.ThreadService,
	messages *services.MessageService,
	jobs *services.JobService,
	sales *services.SalesService,
	engine *funnel.Engine,
	support *detect.SupportDetector,
	detector *detect.FunnelDetector,
	llmClient llm.Client,
	processor *respond.Processor,
	sink EventSink,
	notifier *slack.Service,
	cfg *config.Config,
) *Dispatcher {
	return &Dispatcher{
		contacts:  contacts,
		threads:   threads,
		messages:  messages,
		jobs:      jobs,
		sales:     sales,
		engine:    engine,
		support:   support,
		detector:  detector,
		llmClient: llmClient,
		processor: processor,
		sink:      sink,
		notifier:  notifier,
		cfg:       cfg,
		locks:     newThreadLocks(),
		logger:    slog.Default().With("component", "dispatch"),
	}
}

// WithThreadLock runs fn while holding the per-thread lock. The scheduler
// and the operator-reply surface use this so their sends never interleave
// with a concurrently processed inbound.
func (d *Dispatcher) WithThreadLock(threadID string, fn func() error) error {
	unlock := d.locks.Lock(threadID)
	defer unlock()
	return fn()
}

// HandleInbound processes one inbound message end to end. Orchestration
// failures after the user message is persisted are recorded as system
// messages and returned; the caller (webhook handler) still answers 200
// for them so the provider does not redeliver.
func (d *Dispatcher) HandleInbound(ctx context.Context, inbound models.InboundMessage) error {
	phone, err := NormalizePhone(inbound.Phone)
	if err != nil {
		return fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
	}

	contact, err := d.contacts.GetOrCreateContact(ctx, phone, inbound.ProfileName)
	if err != nil {
		return err
	}
	thread, err := d.threads.GetOrCreateThread(ctx, contact.ID, inbound.Channel)
	if err != nil {
		return err
	}
	thread.Edges.Contact = contact

	unlock := d.locks.Lock(thread.ID)
	defer unlock()

	// Dedupe before any side effect. Provider redelivery carries the same
	// MessageSid; senders without one fall back to a content key bucketed
	// by minute, which catches the burst-redelivery case.
	if err := d.messages.RecordInbound(ctx, thread.ID, dedupeKey(thread.ID, inbound)); err != nil {
		if errors.Is(err, services.ErrDuplicateInbound) {
			d.logger.Info("Dropping redelivered inbound",
				"thread_id", thread.ID, "message_sid", inbound.MessageSid)
			return nil
		}
		return err
	}

	// The inbound message is always persisted, even when the rest of the
	// pipeline fails: accepted traffic is never silently dropped.
	content := inbound.Body
	if content == "" {
		content = "[media received]"
	}
	userMsg, err := d.messages.CreateMessage(ctx, models.CreateMessageRequest{
		ThreadID:          thread.ID,
		Role:              "user",
		Content:           content,
		ProviderMessageID: inbound.MessageSid,
	})
	if err != nil {
		return err
	}
	d.publishMessage(ctx, userMsg)
	if err := d.threads.TouchLastMessage(ctx, thread.ID, time.Now()); err != nil {
		d.logger.Warn("Failed to touch thread activity", "thread_id", thread.ID, "error", err)
	}

	// The contact is active again; pending recovery follow-ups are stale.
	if _, err := d.jobs.CancelByPrefix(ctx, thread.ID, cartRecoveryPrefix); err != nil {
		d.logger.Warn("Failed to cancel recovery jobs", "thread_id", thread.ID, "error", err)
	}

	if thread.HumanTakeover {
		// Humans own the thread; the bot stays silent.
		return nil
	}

	if d.support.IsSupport(inbound.Body) {
		return d.handoffToHuman(ctx, thread, contact, inbound.Body)
	}

	funnelID, _ := thread.Meta["funnel_id"].(string)
	if funnelID == "" {
		cls := d.detector.Detect(inbound.Body)
		seeded, err := d.threads.SeedClassification(ctx, thread.ID, cls.FunnelID, cls.InitialStage, cls.Source, cls.Tags)
		if err != nil {
			return err
		}
		seeded.Edges.Contact = contact
		thread = seeded
		funnelID = cls.FunnelID
	}

	contactName := displayName(contact)

	if match, ok := d.engine.Match(funnelID, thread.LeadStage, inbound.Body); ok {
		actions := funnel.FromConfig(match.Trigger.Actions)
		return d.processor.ExecuteActions(ctx, thread, contactName, actions, respond.Origin{Trigger: match.Trigger.Name})
	}

	return d.respondGeneratively(ctx, thread, contactName, funnelID, userMsg)
}

// handoffToHuman flips the takeover gate, sends the canned handoff text,
// and notifies operators. From here on HandleInbound step 6 keeps the
// bot out of the thread.
func (d *Dispatcher) handoffToHuman(ctx context.Context, thread *ent.Thread, contact *ent.Contact, lastMessage string) error {
	updated, sysMsg, err := d.threads.SetTakeover(ctx, thread.ID, true, "support-detector")
	if err != nil {
		return err
	}
	updated.Edges.Contact = contact
	d.publishMessage(ctx, sysMsg)
	d.publishTakeover(ctx, thread.ID, true, "support_detected")

	handoff := []*funnel.Action{
		{Kind: funnel.ActionSendText, Template: d.cfg.Funnels.HandoffAsset},
	}
	if err := d.processor.ExecuteActions(ctx, updated, displayName(contact), handoff, respond.Origin{Author: "support-detector"}); err != nil {
		d.logger.Error("Failed to send handoff text", "thread_id", thread.ID, "error", err)
	}

	d.notifier.NotifyTakeover(ctx, slack.TakeoverInput{
		ThreadID:     thread.ID,
		ContactName:  displayName(contact),
		ContactPhone: contact.Phone,
		LastMessage:  lastMessage,
	})
	return nil
}

// respondGeneratively asks the LLM for a reply and executes it. A backend
// failure degrades to the configured canned fallback, which never mutates
// stage.
func (d *Dispatcher) respondGeneratively(ctx context.Context, thread *ent.Thread, contactName, funnelID string, userMsg *ent.Message) error {
	// The inbound turn is already persisted, so the history query sees
	// it; it travels as UserText and is excluded from History so the
	// backend gets it exactly once.
	history, err := d.messages.RecentHistory(ctx, thread.ID, d.cfg.LLM.HistoryWindow+1)
	if err != nil {
		return err
	}

	turns := make([]llm.Turn, 0, len(history))
	for _, msg := range history {
		if msg.ID == userMsg.ID {
			continue
		}
		turns = append(turns, llm.Turn{Role: string(msg.Role), Content: msg.Content})
	}
	if len(turns) > d.cfg.LLM.HistoryWindow {
		turns = turns[len(turns)-d.cfg.LLM.HistoryWindow:]
	}

	llmCtx, cancel := context.WithTimeout(ctx, llmTimeout)
	resp, err := d.llmClient.Respond(llmCtx, &llm.Request{
		ThreadID:    thread.ID,
		FunnelID:    funnelID,
		Stage:       thread.LeadStage,
		ContactName: contactName,
		History:     turns,
		UserText:    userMsg.Content,
	})
	cancel()
	if err != nil {
		if !errors.Is(err, llm.ErrUnavailable) {
			return err
		}
		d.logger.Warn("LLM unavailable, sending fallback", "thread_id", thread.ID, "error", err)
		resp = llm.FallbackResponse(d.cfg.LLM)
	}

	return d.processor.ExecuteLLM(ctx, thread, contactName, resp)
}

// HandleSale processes a verified sale.approved billing event: persist,
// correlate to a contact, advance the conversation to customer, and send
// the post-purchase sequence. Webhook redelivery is a no-op at the
// persistence step.
func (d *Dispatcher) HandleSale(ctx context.Context, evt *models.BillingEvent) error {
	contact := d.correlateBuyer(ctx, evt)

	contactID := ""
	if contact != nil {
		contactID = contact.ID
	}
	_, created, err := d.sales.Record(ctx, d.cfg.Billing.Source, evt, contactID)
	if err != nil {
		return err
	}
	if !created {
		d.logger.Info("Dropping redelivered sale", "order_id", evt.OrderID)
		return nil
	}

	if contact == nil {
		d.logger.Info("Sale has no matching contact", "order_id", evt.OrderID)
		return nil
	}

	if _, err := d.contacts.LearnIdentity(ctx, contact.ID, evt.BuyerEmail, evt.BuyerName); err != nil {
		d.logger.Warn("Failed to learn buyer identity", "contact_id", contact.ID, "error", err)
	}
	if _, err := d.contacts.RecordPurchase(ctx, contact.ID, evt.Value); err != nil {
		d.logger.Warn("Failed to record purchase aggregates", "contact_id", contact.ID, "error", err)
	}

	thread, err := d.threads.GetOrCreateThread(ctx, contact.ID, "whatsapp")
	if err != nil {
		return err
	}
	thread.Edges.Contact = contact

	unlock := d.locks.Lock(thread.ID)
	defer unlock()

	// Stage and cancellation commit before the welcome sends: a send
	// failure must not leave a paying customer parked in the funnel.
	if thread.LeadStage != "customer" {
		from := thread.LeadStage
		updated, sysMsg, err := d.threads.TransitionStage(ctx, models.StageTransition{
			ThreadID:  thread.ID,
			From:      from,
			To:        "customer",
			Trigger:   "purchase_webhook",
			ChangedAt: time.Now(),
		})
		if err != nil {
			return err
		}
		updated.Edges.Contact = contact
		thread = updated
		d.publishMessage(ctx, sysMsg)
		d.publishStageChanged(ctx, thread.ID, from, "customer")
	}
	if _, err := d.jobs.CancelByPrefix(ctx, thread.ID, cartRecoveryPrefix); err != nil {
		d.logger.Warn("Failed to cancel recovery jobs", "thread_id", thread.ID, "error", err)
	}

	welcome := funnel.FromConfig(d.cfg.Funnels.PostPurchase)
	if err := d.processor.ExecuteActions(ctx, thread, displayName(contact), welcome, respond.Origin{Trigger: "purchase_webhook"}); err != nil {
		d.logger.Error("Failed to send post-purchase sequence", "thread_id", thread.ID, "error", err)
	}

	d.publishSale(ctx, thread.ID, evt)
	d.notifier.NotifySale(ctx, slack.SaleInput{
		ThreadID:     thread.ID,
		ContactName:  displayName(contact),
		ContactPhone: contact.Phone,
		OrderID:      evt.OrderID,
		Value:        evt.Value,
	})
	return nil
}

// HandleAbandonment processes a cart.abandonment billing event: persist
// and, when the thread has no recovery follow-up running, start one.
func (d *Dispatcher) HandleAbandonment(ctx context.Context, evt *models.BillingEvent) error {
	contact := d.correlateBuyer(ctx, evt)

	contactID := ""
	if contact != nil {
		contactID = contact.ID
	}
	_, created, err := d.sales.Record(ctx, d.cfg.Billing.Source, evt, contactID)
	if err != nil {
		return err
	}
	if !created || contact == nil {
		return nil
	}

	thread, err := d.threads.GetOrCreateThread(ctx, contact.ID, "whatsapp")
	if err != nil {
		return err
	}

	unlock := d.locks.Lock(thread.ID)
	defer unlock()

	pending, err := d.jobs.HasPendingWithPrefix(ctx, thread.ID, cartRecoveryPrefix)
	if err != nil {
		return err
	}
	if pending {
		// An earlier checkout already armed the timer; don't reset it.
		return nil
	}

	payload, err := funnel.EncodePayload(funnel.FromConfig(d.cfg.Funnels.CartRecovery))
	if err != nil {
		return err
	}
	fireAt := time.Now().Add(d.cfg.Scheduler.CartRecoveryDelay)
	_, err = d.jobs.Schedule(ctx, thread.ID, cartRecoveryPrefix+"abandon", fireAt, funnel.PayloadKindActionList, payload)
	return err
}

// correlateBuyer resolves the billing buyer to a contact by email, then
// phone. Unknown buyers return nil.
func (d *Dispatcher) correlateBuyer(ctx context.Context, evt *models.BillingEvent) *ent.Contact {
	phone := ""
	if evt.BuyerPhone != "" {
		if normalized, err := NormalizePhone(evt.BuyerPhone); err == nil {
			phone = normalized
		}
	}
	contact, err := d.contacts.FindByEmailOrPhone(ctx, evt.BuyerEmail, phone)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			d.logger.Warn("Buyer correlation failed",
				"order_id", evt.OrderID, "error", err)
		}
		return nil
	}
	return contact
}

// --- Event publishing ---

func (d *Dispatcher) publishMessage(ctx context.Context, msg *ent.Message) {
	if d.sink == nil || msg == nil {
		return
	}
	err := d.sink.PublishMessageCreated(ctx, msg.ThreadID, events.MessageCreatedPayload{
		Type:      events.EventTypeMessageCreated,
		ThreadID:  msg.ThreadID,
		MessageID: msg.ID,
		Role:      string(msg.Role),
		Content:   msg.Content,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		d.logger.Warn("Failed to publish message event", "thread_id", msg.ThreadID, "error", err)
	}
}

func (d *Dispatcher) publishStageChanged(ctx context.Context, threadID, from, to string) {
	if d.sink == nil {
		return
	}
	err := d.sink.PublishStageChanged(ctx, threadID, events.StageChangedPayload{
		Type:      events.EventTypeStageChanged,
		ThreadID:  threadID,
		From:      from,
		To:        to,
		Trigger:   "purchase_webhook",
		Author:    "billing",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		d.logger.Warn("Failed to publish stage event", "thread_id", threadID, "error", err)
	}
}

func (d *Dispatcher) publishTakeover(ctx context.Context, threadID string, enabled bool, reason string) {
	if d.sink == nil {
		return
	}
	err := d.sink.PublishTakeoverChanged(ctx, threadID, events.TakeoverChangedPayload{
		Type:      events.EventTypeTakeoverChanged,
		ThreadID:  threadID,
		Enabled:   enabled,
		Reason:    reason,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		d.logger.Warn("Failed to publish takeover event", "thread_id", threadID, "error", err)
	}
}

func (d *Dispatcher) publishSale(ctx context.Context, threadID string, evt *models.BillingEvent) {
	if d.sink == nil {
		return
	}
	err := d.sink.PublishSaleRecorded(ctx, threadID, events.SaleRecordedPayload{
		Type:      events.EventTypeSaleRecorded,
		ThreadID:  threadID,
		OrderID:   evt.OrderID,
		Value:     evt.Value,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		d.logger.Warn("Failed to publish sale event", "thread_id", threadID, "error", err)
	}
}

// --- Helpers ---

// dedupeKey builds the inbound dedupe ledger key. Provider message ids
// are globally unique; the fallback buckets identical content by minute.
func dedupeKey(threadID string, inbound models.InboundMessage) string {
	if inbound.MessageSid != "" {
		return "sid:" + inbound.MessageSid
	}
	sum := sha256.Sum256([]byte(inbound.Body))
	bucket := time.Now().UTC().Truncate(time.Minute).Unix()
	return fmt.Sprintf("%s:%d:%x", threadID, bucket, sum[:8])
}

func displayName(contact *ent.Contact) string {
	if contact == nil || contact.Name == nil {
		return ""
	}
	return *contact.Name
}
