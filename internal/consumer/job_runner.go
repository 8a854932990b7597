package consumer

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BarkinBalci/donation-session-service/internal/metrics"
)

// Job outcomes reported on the jobs_processed metric
const (
	StatusSucceeded = "succeeded"
	StatusRejected  = "rejected"
	StatusFailed    = "failed"
	StatusMalformed = "malformed"
)

// JobRunner executes parsed jobs one at a time and settles their messages
type JobRunner struct {
	executor JobExecutor
	log      *zap.Logger
}

// NewJobRunner creates a new job runner
func NewJobRunner(executor JobExecutor, log *zap.Logger) *JobRunner {
	return &JobRunner{
		executor: executor,
		log:      log,
	}
}

// Start runs jobs from in until it is closed or ctx is done
func (r *JobRunner) Start(ctx context.Context, in <-chan *Envelope) {
	for {
		select {
		case <-ctx.Done():
			r.log.Info("Job runner shutting down")
			return
		case envelope, ok := <-in:
			if !ok {
				r.log.Info("Job runner input channel closed")
				return
			}
			r.run(ctx, envelope)
		}
	}
}

func (r *JobRunner) run(ctx context.Context, envelope *Envelope) {
	log := r.log.With(
		zap.String("job_id", envelope.Job.JobID),
		zap.String("message_id", envelope.MessageID))

	stats, err := r.executor.Execute(ctx, envelope.Job)
	switch {
	case err == nil:
		metrics.JobsProcessed.WithLabelValues(StatusSucceeded).Inc()
		log.Info("Generation job completed",
			zap.Int("session_count", stats.Sessions),
			zap.Int("row_count", stats.Rows),
			zap.Duration("duration", stats.Duration))
		if err := envelope.Ack(ctx); err != nil {
			log.Error("Failed to acknowledge job", zap.Error(err))
		}

	case errors.Is(err, ErrRejectedJob):
		metrics.JobsProcessed.WithLabelValues(StatusRejected).Inc()
		log.Error("Generation job rejected", zap.Error(err))
		if err := envelope.Ack(ctx); err != nil {
			log.Error("Failed to remove rejected job", zap.Error(err))
		}

	default:
		metrics.JobsProcessed.WithLabelValues(StatusFailed).Inc()
		log.Error("Generation job failed, returning it to the queue", zap.Error(err))
		// ctx may already be canceled on shutdown; the message then reappears
		// after its visibility timeout.
		if err := envelope.Nack(context.WithoutCancel(ctx)); err != nil {
			log.Warn("Failed to release job message", zap.Error(err))
		}
	}
}
