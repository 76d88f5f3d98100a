// Package scheduler fires durable follow-up jobs. It polls the store for
// due jobs, leases them with FOR UPDATE SKIP LOCKED, and replays each
// job's action list through the response processor under the same
// per-thread lock the inbound pipeline uses.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/pkg/config"
	"github.com/leadflowhq/leadflow/pkg/funnel"
	"github.com/leadflowhq/leadflow/pkg/respond"
	"github.com/leadflowhq/leadflow/pkg/services"
)

// ThreadLocker serializes job firing against the inbound pipeline.
// Implemented by dispatch.Dispatcher.
type ThreadLocker interface {
	WithThreadLock(threadID string, fn func() error) error
}

// Scheduler is the follow-up firing loop. One instance per process; the
// lease protocol keeps concurrent replicas from double-firing within a
// lease window.
type Scheduler struct {
	owner     string
	jobs      *services.JobService
	threads   *services.ThreadService
	processor *respond.Processor
	locker    ThreadLocker
	cfg       *config.SchedulerConfig
	logger    *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler creates a scheduler. The owner id tags leases so expired
// ones are attributable in the store.
func NewScheduler(
	jobs *services.JobService,
	threads *services.ThreadService,
	processor *respond.Processor,
	locker ThreadLocker,
	cfg *config.SchedulerConfig,
) *Scheduler {
	return &Scheduler{
		owner:     uuid.New().String(),
		jobs:      jobs,
		threads:   threads,
		processor: processor,
		locker:    locker,
		cfg:       cfg,
		logger:    slog.Default().With("component", "scheduler"),
		stopCh:    make(chan struct{}),
	}
}

// Start begins the tick loop in a goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
	s.logger.Info("Scheduler started",
		"owner", s.owner,
		"tick_interval", s.cfg.TickInterval,
		"job_lease", s.cfg.JobLease)
}

// Stop signals the loop to exit and waits for the in-flight tick to
// finish. Safe to call multiple times.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		default:
			if fired := s.tick(ctx); fired == 0 {
				s.sleep(s.cfg.TickInterval)
			}
			// A full batch means more may already be due; loop straight
			// into the next claim.
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (s *Scheduler) sleep(d time.Duration) {
	select {
	case <-s.stopCh:
	case <-time.After(d):
	}
}

// tick claims one batch of due jobs and fires them. Returns how many
// jobs were processed (including suppressed and failed ones).
func (s *Scheduler) tick(ctx context.Context) int {
	jobs, err := s.jobs.ClaimDue(ctx, s.owner, s.cfg.JobLease, s.cfg.BatchSize)
	if err != nil {
		s.logger.Error("Failed to claim due jobs", "error", err)
		return 0
	}

	for _, job := range jobs {
		s.fire(ctx, job)
	}
	return len(jobs)
}

// fire executes one leased job. Terminal status is always written: fired
// on success, cancelled when the thread is under human takeover, failed
// otherwise.
func (s *Scheduler) fire(ctx context.Context, job *ent.ScheduledJob) {
	log := s.logger.With("job_id", job.ID, "thread_id", job.ThreadID, "key", job.Key)

	thread, err := s.threads.GetThreadWithContact(ctx, job.ThreadID)
	if err != nil {
		s.markFailed(ctx, job.ID, fmt.Sprintf("load thread: %v", err))
		log.Error("Failed to load thread for job", "error", err)
		return
	}

	// A human owns the thread now; the follow-up is suppressed, not
	// deferred.
	if thread.HumanTakeover {
		if err := s.jobs.MarkCancelled(ctx, job.ID); err != nil {
			log.Error("Failed to cancel suppressed job", "error", err)
		}
		log.Info("Job suppressed by human takeover")
		return
	}

	if job.ActionKind != funnel.PayloadKindActionList {
		s.markFailed(ctx, job.ID, fmt.Sprintf("unknown action kind %q", job.ActionKind))
		log.Error("Unknown job action kind", "action_kind", job.ActionKind)
		return
	}

	actions, err := funnel.DecodePayload(job.ActionPayload)
	if err != nil {
		s.markFailed(ctx, job.ID, fmt.Sprintf("decode payload: %v", err))
		log.Error("Failed to decode job payload", "error", err)
		return
	}

	contactName := ""
	if thread.Edges.Contact != nil && thread.Edges.Contact.Name != nil {
		contactName = *thread.Edges.Contact.Name
	}

	err = s.locker.WithThreadLock(thread.ID, func() error {
		return s.processor.ExecuteActions(ctx, thread, contactName, actions, respond.Origin{
			Trigger: job.Key,
			Author:  "scheduler",
		})
	})
	if err != nil {
		s.markFailed(ctx, job.ID, err.Error())
		log.Error("Job execution failed", "error", err)
		return
	}

	if err := s.jobs.MarkFired(ctx, job.ID); err != nil {
		log.Error("Failed to mark job fired", "error", err)
		return
	}
	log.Info("Job fired")
}

func (s *Scheduler) markFailed(ctx context.Context, jobID, reason string) {
	if err := s.jobs.MarkFailed(ctx, jobID, reason); err != nil {
		s.logger.Error("Failed to mark job failed", "job_id", jobID, "error", err)
	}
}
