package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
	"github.com/BarkinBalci/donation-session-service/internal/metrics"
	"github.com/BarkinBalci/donation-session-service/internal/repository"
	"github.com/BarkinBalci/donation-session-service/internal/sessions"
)

// Config configures one generation run
type Config struct {
	Params       sessions.Params
	Workers      int
	MaxBatchSize int
	BufferSize   int
}

// Stats summarises a finished run
type Stats struct {
	Sessions int
	Rows     int
	Duration time.Duration
}

// Pipeline orchestrates segmentation, row building and writing for one catalog
type Pipeline struct {
	segment     *SegmentStage
	build       *BuildStage
	batchWriter *BatchWriter
	bufferSize  int
	log         *zap.Logger
}

// New creates a pipeline over a read-only campaign catalog writing to writer
func New(campaigns []domain.Campaign, writer repository.SessionRowWriter, cfg Config, log *zap.Logger) *Pipeline {
	generator := sessions.NewGenerator(campaigns, cfg.Params)

	bufferSize := cfg.BufferSize
	if bufferSize <= 0 {
		bufferSize = 100
	}
	maxBatchSize := cfg.MaxBatchSize
	if maxBatchSize <= 0 {
		maxBatchSize = 1000
	}

	return &Pipeline{
		segment:     NewSegmentStage(generator.Segmenter(), log),
		build:       NewBuildStage(generator.Builder(), cfg.Workers, log),
		batchWriter: NewBatchWriter(writer, BatchWriterConfig{MaxBatchSize: maxBatchSize}, log),
		bufferSize:  bufferSize,
		log:         log,
	}
}

// Run generates and writes the session table for payments
func (p *Pipeline) Run(ctx context.Context, payments []domain.Payment) (Stats, error) {
	start := time.Now()
	sessionChan := make(chan *SessionEnvelope, p.bufferSize)
	rowChan := make(chan *RowEnvelope, p.bufferSize)

	var stats Stats
	g, ctx := errgroup.WithContext(ctx)

	// Stage 1: Segment payments into sessions
	g.Go(func() error {
		stats.Sessions = p.segment.Start(ctx, payments, sessionChan)
		return nil
	})

	// Stage 2: Build labeled rows per session
	g.Go(func() error {
		return p.build.Start(ctx, sessionChan, rowChan)
	})

	// Stage 3: Batch and write rows in session order
	g.Go(func() error {
		written, err := p.batchWriter.Start(ctx, rowChan)
		stats.Rows = written
		return err
	})

	err := g.Wait()
	stats.Duration = time.Since(start)
	metrics.GenerationDuration.Observe(stats.Duration.Seconds())

	if err != nil {
		p.log.Error("Generation run failed",
			zap.Error(err),
			zap.Int("session_count", stats.Sessions),
			zap.Int("row_count", stats.Rows))
		return stats, err
	}

	p.log.Info("Generation run finished",
		zap.Int("payment_count", len(payments)),
		zap.Int("session_count", stats.Sessions),
		zap.Int("row_count", stats.Rows),
		zap.Duration("duration", stats.Duration))

	return stats, nil
}
