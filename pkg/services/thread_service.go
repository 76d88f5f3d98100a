package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/ent/contact"
	"github.com/leadflowhq/leadflow/ent/message"
	"github.com/leadflowhq/leadflow/ent/thread"
	"github.com/leadflowhq/leadflow/pkg/models"
)

// ThreadService manages threads: lifecycle, stage transitions, takeover,
// and meta. lead_stage is the authoritative funnel position; meta.stage_id
// is mirrored on every transition but never read back.
type ThreadService struct {
	client *ent.Client
}

// NewThreadService creates a new ThreadService
func NewThreadService(client *ent.Client) *ThreadService {
	return &ThreadService{client: client}
}

// GetOrCreateThread returns the live thread for (contact, channel),
// creating it on first inbound. The unique index resolves creation races.
func (s *ThreadService) GetOrCreateThread(httpCtx context.Context, contactID, channel string) (*ent.Thread, error) {
	if contactID == "" {
		return nil, NewValidationError("contact_id", "required")
	}
	if channel == "" {
		channel = "whatsapp"
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	existing, err := s.client.Thread.Query().
		Where(thread.ContactIDEQ(contactID), thread.ChannelEQ(channel)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query thread: %w", err)
	}

	created, err := s.client.Thread.Create().
		SetID(uuid.New().String()).
		SetContactID(contactID).
		SetChannel(channel).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.client.Thread.Query().
				Where(thread.ContactIDEQ(contactID), thread.ChannelEQ(channel)).
				Only(ctx)
		}
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}
	return created, nil
}

// GetThread retrieves a thread by ID
func (s *ThreadService) GetThread(ctx context.Context, threadID string) (*ent.Thread, error) {
	t, err := s.client.Thread.Get(ctx, threadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}
	return t, nil
}

// GetThreadWithContact retrieves a thread with its contact edge loaded
func (s *ThreadService) GetThreadWithContact(ctx context.Context, threadID string) (*ent.Thread, error) {
	t, err := s.client.Thread.Query().
		Where(thread.IDEQ(threadID)).
		WithContact().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}
	return t, nil
}

// ListThreads retrieves threads with filtering, newest activity first
func (s *ThreadService) ListThreads(ctx context.Context, filters models.ThreadFilters) (*models.ThreadListResponse, error) {
	query := s.client.Thread.Query()

	if filters.Stage != "" {
		query = query.Where(thread.LeadStageEQ(filters.Stage))
	}
	if filters.Takeover != nil {
		query = query.Where(thread.HumanTakeoverEQ(*filters.Takeover))
	}
	if filters.Search != "" {
		query = query.Where(thread.HasContactWith(contact.Or(
			contact.PhoneContains(filters.Search),
			contact.NameContainsFold(filters.Search),
		)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count threads: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	threads, err := query.
		WithContact().
		Order(ent.Desc(thread.FieldLastMessageAt), ent.Desc(thread.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}

	// FunnelID filter lives in JSON meta; applied after the SQL page when
	// requested. Rare operator path, not worth a JSON predicate.
	if filters.FunnelID != "" {
		filtered := threads[:0]
		for _, t := range threads {
			if fid, _ := t.Meta["funnel_id"].(string); fid == filters.FunnelID {
				filtered = append(filtered, t)
			}
		}
		threads = filtered
	}

	return &models.ThreadListResponse{
		Threads:    threads,
		TotalCount: total,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// TransitionStage durably moves a thread to a new stage and appends the
// system message recording the transition, in one transaction. The
// trigger name (or operator author) is part of the record.
func (s *ThreadService) TransitionStage(httpCtx context.Context, transition models.StageTransition) (*ent.Thread, *ent.Message, error) {
	if transition.ThreadID == "" {
		return nil, nil, NewValidationError("thread_id", "required")
	}
	if transition.To == "" {
		return nil, nil, NewValidationError("to", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Thread.Get(ctx, transition.ThreadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get thread: %w", err)
	}

	meta := cloneMeta(t.Meta)
	meta["stage_id"] = transition.To

	t, err = t.Update().
		SetLeadStage(transition.To).
		SetMeta(meta).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update stage: %w", err)
	}

	msg, err := tx.Message.Create().
		SetID(uuid.New().String()).
		SetThreadID(t.ID).
		SetRole(message.RoleSystem).
		SetContent(stageChangeNote(transition)).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to record stage change: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit stage transition: %w", err)
	}
	return t, msg, nil
}

// SetTakeover toggles the human-takeover gate, recording who flipped it.
// Returns the updated thread and the system message.
func (s *ThreadService) SetTakeover(httpCtx context.Context, threadID string, enabled bool, author string) (*ent.Thread, *ent.Message, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Thread.Get(ctx, threadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get thread: %w", err)
	}

	t, err = t.Update().SetHumanTakeover(enabled).Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update takeover: %w", err)
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	note := fmt.Sprintf("Human takeover %s", state)
	if author != "" {
		note = fmt.Sprintf("%s by %s", note, author)
	}

	msg, err := tx.Message.Create().
		SetID(uuid.New().String()).
		SetThreadID(t.ID).
		SetRole(message.RoleSystem).
		SetContent(note).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to record takeover change: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit takeover change: %w", err)
	}
	return t, msg, nil
}

// SeedClassification records the funnel detector's verdict: funnel_id and
// source are written once to meta, tags merge as a set union, and a
// non-empty initialStage seeds lead_stage when the thread is still on the
// unseeded stage. Funnels whose entry trigger performs the unseeded
// transition pass initialStage "".
func (s *ThreadService) SeedClassification(ctx context.Context, threadID, funnelID, initialStage, source string, tags []string) (*ent.Thread, error) {
	t, err := s.GetThread(ctx, threadID)
	if err != nil {
		return nil, err
	}

	meta := cloneMeta(t.Meta)
	upd := t.Update()
	if _, seeded := meta["funnel_id"]; !seeded {
		meta["funnel_id"] = funnelID
		meta["source"] = source
		if initialStage != "" && t.LeadStage == "" {
			meta["stage_id"] = initialStage
			upd.SetLeadStage(initialStage)
		}
	}
	meta["tags"] = unionTags(meta["tags"], tags)

	updated, err := upd.SetMeta(meta).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed classification: %w", err)
	}
	return updated, nil
}

// PatchMeta merges operator-supplied keys into thread meta. A null value
// deletes the key; "tags" merges as a set union instead of replacing.
func (s *ThreadService) PatchMeta(ctx context.Context, threadID string, patch models.MetaPatchRequest) (*ent.Thread, error) {
	t, err := s.GetThread(ctx, threadID)
	if err != nil {
		return nil, err
	}

	meta := cloneMeta(t.Meta)
	for key, value := range patch {
		switch {
		case value == nil:
			delete(meta, key)
		case key == "tags":
			if tags, ok := toStringSlice(value); ok {
				meta["tags"] = unionTags(meta["tags"], tags)
			}
		default:
			meta[key] = value
		}
	}

	updated, err := t.Update().SetMeta(meta).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to patch meta: %w", err)
	}
	return updated, nil
}

// TouchLastMessage bumps the thread's activity timestamp.
func (s *ThreadService) TouchLastMessage(ctx context.Context, threadID string, at time.Time) error {
	err := s.client.Thread.UpdateOneID(threadID).
		SetLastMessageAt(at).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to touch thread: %w", err)
	}
	return nil
}

// FunnelAnalytics summarizes thread distribution over a funnel's stages.
func (s *ThreadService) FunnelAnalytics(ctx context.Context, funnelID string, stages []string) (*models.FunnelAnalytics, error) {
	analytics := &models.FunnelAnalytics{FunnelID: funnelID, Stages: make([]models.StageCount, 0, len(stages))}

	var counts []struct {
		LeadStage string `json:"lead_stage"`
		Count     int    `json:"count"`
	}
	err := s.client.Thread.Query().
		GroupBy(thread.FieldLeadStage).
		Aggregate(ent.Count()).
		Scan(ctx, &counts)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stages: %w", err)
	}

	byStage := make(map[string]int, len(counts))
	for _, row := range counts {
		byStage[row.LeadStage] = row.Count
		analytics.TotalThreads += row.Count
	}
	for _, stage := range stages {
		analytics.Stages = append(analytics.Stages, models.StageCount{Stage: stage, Count: byStage[stage]})
	}
	analytics.Unseeded = byStage[""]

	takeovers, err := s.client.Thread.Query().
		Where(thread.HumanTakeoverEQ(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count takeovers: %w", err)
	}
	analytics.TakeoverCount = takeovers

	return analytics, nil
}

func cloneMeta(meta map[string]interface{}) map[string]interface{} {
	cloned := make(map[string]interface{}, len(meta)+2)
	for k, v := range meta {
		cloned[k] = v
	}
	return cloned
}

// unionTags merges new tags into an existing meta value (which JSON
// round-trips as []interface{}), preserving first-seen order.
func unionTags(existing interface{}, tags []string) []string {
	merged := make([]string, 0, len(tags))
	seen := make(map[string]bool)

	appendTag := func(tag string) {
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		merged = append(merged, tag)
	}

	if current, ok := toStringSlice(existing); ok {
		for _, tag := range current {
			appendTag(tag)
		}
	}
	for _, tag := range tags {
		appendTag(tag)
	}
	return merged
}

func toStringSlice(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func stageChangeNote(transition models.StageTransition) string {
	from := transition.From
	if from == "" {
		from = "(none)"
	}
	note := fmt.Sprintf("Stage changed: %s -> %s", from, transition.To)
	switch {
	case transition.Trigger != "":
		note = fmt.Sprintf("%s (trigger: %s)", note, transition.Trigger)
	case transition.Author != "":
		note = fmt.Sprintf("%s (by %s)", note, transition.Author)
	}
	return note
}
