package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/ent/scheduledjob"
)

// JobService manages durable scheduled jobs: upsert-by-slot scheduling,
// prefix cancellation, and lease-based claiming for the scheduler loop.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// Schedule creates or reschedules the pending job for (thread, key).
// Scheduling the same slot again replaces fire_at and payload instead of
// stacking a second job; the partial unique index backs this up against
// concurrent schedulers.
func (s *JobService) Schedule(httpCtx context.Context, threadID, key string, fireAt time.Time, actionKind string, payload map[string]interface{}) (*ent.ScheduledJob, error) {
	if threadID == "" {
		return nil, NewValidationError("thread_id", "required")
	}
	if key == "" {
		return nil, NewValidationError("key", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	existing, err := s.client.ScheduledJob.Query().
		Where(
			scheduledjob.ThreadIDEQ(threadID),
			scheduledjob.KeyEQ(key),
			scheduledjob.StatusEQ(scheduledjob.StatusPending),
		).
		Only(ctx)
	if err == nil {
		updated, err := existing.Update().
			SetFireAt(fireAt).
			SetActionKind(actionKind).
			SetActionPayload(payload).
			ClearLeasedUntil().
			ClearLeaseOwner().
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to reschedule job: %w", err)
		}
		return updated, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	created, err := s.client.ScheduledJob.Create().
		SetID(uuid.New().String()).
		SetThreadID(threadID).
		SetKey(key).
		SetFireAt(fireAt).
		SetActionKind(actionKind).
		SetActionPayload(payload).
		SetStatus(scheduledjob.StatusPending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the upsert race; replace the winner's slot.
			return s.Schedule(httpCtx, threadID, key, fireAt, actionKind, payload)
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

// CancelByPrefix cancels all pending jobs of a thread whose key starts
// with prefix. Returns how many were cancelled.
func (s *JobService) CancelByPrefix(httpCtx context.Context, threadID, prefix string) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	count, err := s.client.ScheduledJob.Update().
		Where(
			scheduledjob.ThreadIDEQ(threadID),
			scheduledjob.KeyHasPrefix(prefix),
			scheduledjob.StatusEQ(scheduledjob.StatusPending),
		).
		SetStatus(scheduledjob.StatusCancelled).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel jobs: %w", err)
	}
	return count, nil
}

// HasPendingWithPrefix reports whether the thread has any pending job
// whose key starts with prefix. Used by cart-abandonment intake to avoid
// resetting a recovery timer that is already running.
func (s *JobService) HasPendingWithPrefix(ctx context.Context, threadID, prefix string) (bool, error) {
	exists, err := s.client.ScheduledJob.Query().
		Where(
			scheduledjob.ThreadIDEQ(threadID),
			scheduledjob.KeyHasPrefix(prefix),
			scheduledjob.StatusEQ(scheduledjob.StatusPending),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query pending jobs: %w", err)
	}
	return exists, nil
}

// ClaimDue atomically leases up to batch due jobs for this worker using
// FOR UPDATE SKIP LOCKED. A job is due when pending, fire_at has passed,
// and no unexpired lease is held on it. Leases expire on their own, which
// is how firing survives a worker crash mid-execution.
func (s *JobService) ClaimDue(ctx context.Context, owner string, lease time.Duration, batch int) ([]*ent.ScheduledJob, error) {
	if batch <= 0 {
		batch = 10
	}
	now := time.Now()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	jobs, err := tx.ScheduledJob.Query().
		Where(
			scheduledjob.StatusEQ(scheduledjob.StatusPending),
			scheduledjob.FireAtLTE(now),
			scheduledjob.Or(
				scheduledjob.LeasedUntilIsNil(),
				scheduledjob.LeasedUntilLT(now),
			),
		).
		Order(ent.Asc(scheduledjob.FieldFireAt)).
		Limit(batch).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due jobs: %w", err)
	}
	if len(jobs) == 0 {
		return nil, nil
	}

	leasedUntil := now.Add(lease)
	claimed := make([]*ent.ScheduledJob, 0, len(jobs))
	for _, job := range jobs {
		leased, err := job.Update().
			SetLeasedUntil(leasedUntil).
			SetLeaseOwner(owner).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to lease job %s: %w", job.ID, err)
		}
		claimed = append(claimed, leased)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lease: %w", err)
	}
	return claimed, nil
}

// MarkFired moves a job to its fired terminal state. A job cancelled
// while it was executing (inbound activity during the lease) keeps its
// cancelled status; terminal states never overwrite each other.
func (s *JobService) MarkFired(ctx context.Context, jobID string) error {
	_, err := s.client.ScheduledJob.Update().
		Where(
			scheduledjob.IDEQ(jobID),
			scheduledjob.StatusEQ(scheduledjob.StatusPending),
		).
		SetStatus(scheduledjob.StatusFired).
		SetFiredAt(time.Now()).
		ClearLeasedUntil().
		ClearLeaseOwner().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job fired: %w", err)
	}
	return nil
}

// MarkFailed moves a job to its failed terminal state with the error that
// stopped it.
func (s *JobService) MarkFailed(ctx context.Context, jobID, errorMessage string) error {
	_, err := s.client.ScheduledJob.Update().
		Where(
			scheduledjob.IDEQ(jobID),
			scheduledjob.StatusEQ(scheduledjob.StatusPending),
		).
		SetStatus(scheduledjob.StatusFailed).
		SetErrorMessage(errorMessage).
		ClearLeasedUntil().
		ClearLeaseOwner().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job failed: %w", err)
	}
	return nil
}

// MarkCancelled moves a job to cancelled, used when a claimed job turns
// out to be suppressed (human takeover) at fire time.
func (s *JobService) MarkCancelled(ctx context.Context, jobID string) error {
	_, err := s.client.ScheduledJob.Update().
		Where(
			scheduledjob.IDEQ(jobID),
			scheduledjob.StatusEQ(scheduledjob.StatusPending),
		).
		SetStatus(scheduledjob.StatusCancelled).
		ClearLeasedUntil().
		ClearLeaseOwner().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job cancelled: %w", err)
	}
	return nil
}

// PurgeTerminalBefore deletes terminal jobs older than the cutoff.
func (s *JobService) PurgeTerminalBefore(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.ScheduledJob.Delete().
		Where(
			scheduledjob.StatusIn(
				scheduledjob.StatusFired,
				scheduledjob.StatusCancelled,
				scheduledjob.StatusFailed,
			),
			scheduledjob.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge jobs: %w", err)
	}
	return count, nil
}
