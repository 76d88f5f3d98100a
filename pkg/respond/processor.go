// Package respond executes action lists against a thread: sequencing
// outbound sends, persisting transcript rows, and committing stage
// transitions. Callers hold the per-thread lock; the processor assumes
// exclusive access to the thread for the duration of one action list.
package respond

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/pkg/assets"
	"github.com/leadflowhq/leadflow/pkg/config"
	"github.com/leadflowhq/leadflow/pkg/events"
	"github.com/leadflowhq/leadflow/pkg/funnel"
	"github.com/leadflowhq/leadflow/pkg/llm"
	"github.com/leadflowhq/leadflow/pkg/messenger"
	"github.com/leadflowhq/leadflow/pkg/models"
	"github.com/leadflowhq/leadflow/pkg/services"
)

const (
	// senderTimeout bounds one provider send attempt.
	senderTimeout = 10 * time.Second
	// sendRetryDelay is the fixed backoff before the single retry of a
	// transient send failure.
	sendRetryDelay = 500 * time.Millisecond
)

// EventSink publishes operator-stream events. Implemented by
// events.EventPublisher; nil disables publishing (tests).
type EventSink interface {
	PublishMessageCreated(ctx context.Context, threadID string, payload events.MessageCreatedPayload) error
	PublishStageChanged(ctx context.Context, threadID string, payload events.StageChangedPayload) error
}

// Origin records who produced the action list, for the stage-transition
// system message.
type Origin struct {
	// Trigger is the matched trigger name ("" for LLM/scheduler origins).
	Trigger string
	// Author identifies non-trigger origins: "llm", "scheduler", "operator".
	Author string
}

// Processor executes action lists. Sends happen first, in order; stage
// mutation and job effects are deferred until every send succeeded, so a
// failed list never advances the funnel.
type Processor struct {
	threads  *services.ThreadService
	messages *services.MessageService
	jobs     *services.JobService
	engine   *funnel.Engine
	library  *assets.Library
	sender   messenger.Sender
	sink     EventSink
	cfg      *config.Config
	logger   *slog.Logger
}

// NewProcessor creates a processor over the shared services and sender.
func NewProcessor(
	threads *services.ThreadService,
	messages *services.MessageService,
	jobs *services.JobService,
	engine *funnel.Engine,
	library *assets.Library,
	sender messenger.Sender,
	sink EventSink,
	cfg *config.Config,
) *Processor {
	return &Processor{
		threads:  threads,
		messages: messages,
		jobs:     jobs,
		engine:   engine,
		library:  library,
		sender:   sender,
		sink:     sink,
		cfg:      cfg,
		logger:   slog.Default().With("component", "respond"),
	}
}

// ExecuteActions runs an action list against a thread. Send-type actions
// execute immediately in order; set_stage, schedule, and cancel accumulate
// and apply only after the last send succeeds. On send failure the
// remaining list is aborted, a system message records the partial
// execution, and no deferred effect is applied.
//
// The thread pointer is updated in place when a stage transition commits.
func (p *Processor) ExecuteActions(ctx context.Context, thread *ent.Thread, contactName string, actions []*funnel.Action, origin Origin) error {
	vars := assets.Vars{Name: firstName(contactName)}

	var (
		stageTarget string
		schedules   []*funnel.Action
		cancels     []string
	)

	for _, action := range actions {
		switch action.Kind {
		case funnel.ActionSendAudio:
			if err := p.sendAsset(ctx, thread, action.Asset, vars); err != nil {
				return p.abort(ctx, thread, action.Kind, err)
			}

		case funnel.ActionSendImageSequence:
			for _, id := range action.Assets {
				if err := p.sendAsset(ctx, thread, id, vars); err != nil {
					return p.abort(ctx, thread, action.Kind, err)
				}
			}

		case funnel.ActionSendText:
			if err := p.sendTextAction(ctx, thread, action, vars); err != nil {
				return p.abort(ctx, thread, action.Kind, err)
			}

		case funnel.ActionSetStage:
			stageTarget = action.Stage

		case funnel.ActionSchedule:
			schedules = append(schedules, action)

		case funnel.ActionCancel:
			cancels = append(cancels, action.Prefix)

		default:
			p.logger.Warn("Skipping unknown action kind",
				"thread_id", thread.ID, "kind", action.Kind)
		}
	}

	if err := p.applyDeferred(ctx, thread, stageTarget, schedules, cancels, origin); err != nil {
		return err
	}

	if err := p.threads.TouchLastMessage(ctx, thread.ID, time.Now()); err != nil {
		p.logger.Warn("Failed to touch thread activity", "thread_id", thread.ID, "error", err)
	}
	return nil
}

// ExecuteLLM converts a generative backend response into an action list
// and executes it. A next_stage suggestion commits only when it is a
// legal successor of the thread's current stage; otherwise it is dropped
// with a system message and the reply still goes out.
func (p *Processor) ExecuteLLM(ctx context.Context, thread *ent.Thread, contactName string, resp *llm.Response) error {
	var actions []*funnel.Action
	switch resp.Type {
	case llm.ResponseText:
		actions = append(actions, &funnel.Action{Kind: funnel.ActionSendText, Text: resp.Message})
	case llm.ResponseAudio:
		actions = append(actions, &funnel.Action{Kind: funnel.ActionSendAudio, Asset: resp.AssetID})
	case llm.ResponseTemplate:
		actions = append(actions, &funnel.Action{Kind: funnel.ActionSendText, Template: resp.TemplateCode})
	default:
		return fmt.Errorf("unknown response type %q", resp.Type)
	}

	if resp.NextStage != "" {
		funnelID, _ := thread.Meta["funnel_id"].(string)
		if p.engine.CanTransition(funnelID, thread.LeadStage, resp.NextStage) {
			actions = append(actions, &funnel.Action{Kind: funnel.ActionSetStage, Stage: resp.NextStage})
		} else {
			p.logger.Warn("Rejected illegal stage suggestion",
				"thread_id", thread.ID, "from", thread.LeadStage, "to", resp.NextStage)
			p.appendSystem(ctx, thread.ID,
				fmt.Sprintf("Ignored stage suggestion %q: not a legal successor of %q", resp.NextStage, thread.LeadStage))
		}
	}

	return p.ExecuteActions(ctx, thread, contactName, actions, Origin{Author: "llm"})
}

// --- Send execution ---

// sendAsset resolves an asset id and delivers it: media by public URL,
// text by rendered body.
func (p *Processor) sendAsset(ctx context.Context, thread *ent.Thread, assetID string, vars assets.Vars) error {
	resolved, err := p.library.Resolve(assetID, vars)
	if err != nil {
		return err
	}

	phone := p.threadPhone(ctx, thread)

	switch resolved.Kind {
	case assets.KindAudio:
		providerID, err := p.sendWithRetry(ctx, func(sendCtx context.Context) (string, error) {
			return p.sender.SendMedia(sendCtx, phone, p.publicMediaURL(resolved.Path))
		})
		if err != nil {
			return err
		}
		return p.appendAssistant(ctx, thread.ID, fmt.Sprintf("[Audio sent: %s]", resolved.ID), providerID)

	case assets.KindImage:
		providerID, err := p.sendWithRetry(ctx, func(sendCtx context.Context) (string, error) {
			return p.sender.SendMedia(sendCtx, phone, p.publicMediaURL(resolved.Path))
		})
		if err != nil {
			return err
		}
		return p.appendAssistant(ctx, thread.ID, fmt.Sprintf("[Image sent: %s]", resolved.ID), providerID)

	case assets.KindText:
		providerID, err := p.sendWithRetry(ctx, func(sendCtx context.Context) (string, error) {
			return p.sender.SendText(sendCtx, phone, resolved.Text)
		})
		if err != nil {
			return err
		}
		return p.appendAssistant(ctx, thread.ID, resolved.Text, providerID)

	default:
		return fmt.Errorf("asset %s has unsendable kind %q", resolved.ID, resolved.Kind)
	}
}

// sendTextAction sends a send_text action: a template asset when Template
// is set, the literal Text otherwise.
func (p *Processor) sendTextAction(ctx context.Context, thread *ent.Thread, action *funnel.Action, vars assets.Vars) error {
	if action.Template != "" {
		return p.sendAsset(ctx, thread, action.Template, vars)
	}

	providerID, err := p.sendWithRetry(ctx, func(sendCtx context.Context) (string, error) {
		return p.sender.SendText(sendCtx, p.threadPhone(ctx, thread), action.Text)
	})
	if err != nil {
		return err
	}
	return p.appendAssistant(ctx, thread.ID, action.Text, providerID)
}

// sendWithRetry attempts one send with a single fixed-delay retry on
// transient failures. Permanent failures return immediately.
func (p *Processor) sendWithRetry(ctx context.Context, send func(ctx context.Context) (string, error)) (string, error) {
	var providerID string
	err := retry.Do(
		func() error {
			sendCtx, cancel := context.WithTimeout(ctx, senderTimeout)
			defer cancel()
			id, sendErr := send(sendCtx)
			providerID = id
			return sendErr
		},
		retry.RetryIf(func(err error) bool { return errors.Is(err, messenger.ErrTransient) }),
		retry.Attempts(2),
		retry.Delay(sendRetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(_ uint, err error) {
			p.logger.Warn("Retrying outbound send", "error", err)
		}),
	)
	return providerID, err
}

// --- Deferred effects ---

// applyDeferred commits the accumulated stage transition, cancellations,
// and schedules after all sends completed.
func (p *Processor) applyDeferred(ctx context.Context, thread *ent.Thread, stageTarget string, schedules []*funnel.Action, cancels []string, origin Origin) error {
	if stageTarget != "" && stageTarget != thread.LeadStage {
		from := thread.LeadStage
		updated, msg, err := p.threads.TransitionStage(ctx, models.StageTransition{
			ThreadID:  thread.ID,
			From:      from,
			To:        stageTarget,
			Trigger:   origin.Trigger,
			Author:    origin.Author,
			ChangedAt: time.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to commit stage transition: %w", err)
		}
		*thread = *updated

		p.publishStageChanged(ctx, thread.ID, from, stageTarget, origin)
		p.publishMessage(ctx, msg)
	}

	for _, prefix := range cancels {
		if _, err := p.jobs.CancelByPrefix(ctx, thread.ID, prefix); err != nil {
			return fmt.Errorf("failed to cancel jobs %q: %w", prefix, err)
		}
	}

	for _, sc := range schedules {
		// Schedule actions without an explicit delay or body fall back to
		// the configured cart-recovery sequence.
		delay := p.cfg.Scheduler.CartRecoveryDelay
		if sc.Delay != "" {
			parsed, err := time.ParseDuration(sc.Delay)
			if err != nil {
				return fmt.Errorf("schedule %q has invalid delay %q: %w", sc.Key, sc.Delay, err)
			}
			delay = parsed
		}
		body := sc.Actions
		if len(body) == 0 {
			body = funnel.FromConfig(p.cfg.Funnels.CartRecovery)
		}
		payload, err := funnel.EncodePayload(body)
		if err != nil {
			return fmt.Errorf("schedule %q: %w", sc.Key, err)
		}
		_, err = p.jobs.Schedule(ctx, thread.ID, sc.Key, time.Now().Add(delay), funnel.PayloadKindActionList, payload)
		if err != nil {
			return fmt.Errorf("failed to schedule %q: %w", sc.Key, err)
		}
	}

	return nil
}

// abort records a mid-list send failure: the messages already sent stay in
// the transcript, a system message marks the break, and the caller gets
// the original error. Stage and job effects are not applied.
func (p *Processor) abort(ctx context.Context, thread *ent.Thread, kind string, cause error) error {
	p.logger.Error("Action list aborted",
		"thread_id", thread.ID, "action", kind, "error", cause)
	p.appendSystem(ctx, thread.ID,
		fmt.Sprintf("Automated reply aborted at %s: %v", kind, cause))
	return fmt.Errorf("action %s failed: %w", kind, cause)
}

// --- Transcript + event helpers ---

func (p *Processor) appendAssistant(ctx context.Context, threadID, content, providerID string) error {
	msg, err := p.messages.CreateMessage(ctx, models.CreateMessageRequest{
		ThreadID:          threadID,
		Role:              "assistant",
		Content:           content,
		ProviderMessageID: providerID,
	})
	if err != nil {
		return fmt.Errorf("failed to append assistant message: %w", err)
	}
	p.publishMessage(ctx, msg)
	return nil
}

// appendSystem appends a system message, logging failures rather than
// propagating them: system notes annotate failures and must not mask them.
func (p *Processor) appendSystem(ctx context.Context, threadID, content string) {
	msg, err := p.messages.CreateMessage(ctx, models.CreateMessageRequest{
		ThreadID: threadID,
		Role:     "system",
		Content:  content,
	})
	if err != nil {
		p.logger.Error("Failed to append system message",
			"thread_id", threadID, "error", err)
		return
	}
	p.publishMessage(ctx, msg)
}

func (p *Processor) publishMessage(ctx context.Context, msg *ent.Message) {
	if p.sink == nil || msg == nil {
		return
	}
	err := p.sink.PublishMessageCreated(ctx, msg.ThreadID, events.MessageCreatedPayload{
		Type:      events.EventTypeMessageCreated,
		ThreadID:  msg.ThreadID,
		MessageID: msg.ID,
		Role:      string(msg.Role),
		Content:   msg.Content,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		p.logger.Warn("Failed to publish message event",
			"thread_id", msg.ThreadID, "error", err)
	}
}

func (p *Processor) publishStageChanged(ctx context.Context, threadID, from, to string, origin Origin) {
	if p.sink == nil {
		return
	}
	author := origin.Author
	if author == "" {
		author = "bot"
	}
	err := p.sink.PublishStageChanged(ctx, threadID, events.StageChangedPayload{
		Type:      events.EventTypeStageChanged,
		ThreadID:  threadID,
		From:      from,
		To:        to,
		Trigger:   origin.Trigger,
		Author:    author,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		p.logger.Warn("Failed to publish stage event",
			"thread_id", threadID, "error", err)
	}
}

// threadPhone resolves the contact phone for outbound sends, loading the
// contact edge if the caller didn't.
func (p *Processor) threadPhone(ctx context.Context, thread *ent.Thread) string {
	if thread.Edges.Contact != nil {
		return thread.Edges.Contact.Phone
	}
	contact, err := thread.QueryContact().Only(ctx)
	if err != nil {
		p.logger.Error("Failed to load contact for send", "thread_id", thread.ID, "error", err)
		return ""
	}
	thread.Edges.Contact = contact
	return contact.Phone
}

// publicMediaURL roots an internal asset path at the configured public
// base so the provider can fetch it.
func (p *Processor) publicMediaURL(path string) string {
	base := strings.TrimRight(p.cfg.PublicBaseURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
