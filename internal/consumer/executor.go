package consumer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"go.uber.org/zap"

	"github.com/BarkinBalci/donation-session-service/internal/config"
	"github.com/BarkinBalci/donation-session-service/internal/dataset"
	"github.com/BarkinBalci/donation-session-service/internal/domain"
	"github.com/BarkinBalci/donation-session-service/internal/pipeline"
	"github.com/BarkinBalci/donation-session-service/internal/repository"
	"github.com/BarkinBalci/donation-session-service/internal/sessions"
)

// ErrRejectedJob marks jobs that can never succeed and must not be redelivered
var ErrRejectedJob = errors.New("rejected generation job")

// GenerationExecutor loads a job's input files and runs the session pipeline into writer
type GenerationExecutor struct {
	writer       repository.SessionRowWriter
	workers      int
	maxBatchSize int
	log          *zap.Logger
}

// NewGenerationExecutor creates an executor bounded by the consumer config
func NewGenerationExecutor(writer repository.SessionRowWriter, cfg config.Consumer, log *zap.Logger) *GenerationExecutor {
	return &GenerationExecutor{
		writer:       writer,
		workers:      cfg.Workers,
		maxBatchSize: cfg.BatchSizeMax,
		log:          log,
	}
}

// Execute runs job to completion
func (e *GenerationExecutor) Execute(ctx context.Context, job *domain.GenerationJob) (pipeline.Stats, error) {
	params := config.Sessions{
		SessionCount:               job.SessionCount,
		MaxPosition:                job.MaxPosition,
		MergePaymentsWithinSeconds: job.MergePaymentsWithinSeconds,
	}
	if err := params.Validate(); err != nil {
		return pipeline.Stats{}, fmt.Errorf("%w: %w", ErrRejectedJob, err)
	}

	campaigns, err := dataset.LoadCampaignsFile(job.CampaignsPath)
	if err != nil {
		return pipeline.Stats{}, classifyLoadError(err)
	}

	payments, err := dataset.LoadPaymentsFile(job.PaymentsPath)
	if err != nil {
		return pipeline.Stats{}, classifyLoadError(err)
	}

	e.log.Info("Starting generation job",
		zap.String("job_id", job.JobID),
		zap.Int("payment_count", len(payments)),
		zap.Int("campaign_count", len(campaigns)),
		zap.Int("session_count", job.SessionCount),
		zap.Int("max_position", job.MaxPosition))

	p := pipeline.New(campaigns, e.writer, pipeline.Config{
		Params: sessions.Params{
			SessionCount: job.SessionCount,
			MaxPosition:  job.MaxPosition,
			Timeout:      time.Duration(job.MergePaymentsWithinSeconds) * time.Second,
		},
		Workers:      e.workers,
		MaxBatchSize: e.maxBatchSize,
	}, e.log.With(zap.String("job_id", job.JobID)))

	return p.Run(ctx, payments)
}

// classifyLoadError marks input contract violations as permanent
func classifyLoadError(err error) error {
	var parseErr *dataset.ParseError
	if errors.As(err, &parseErr) || errors.Is(err, dataset.ErrMissingColumn) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrRejectedJob, err)
	}
	return err
}
