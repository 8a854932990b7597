package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
	"github.com/BarkinBalci/donation-session-service/internal/metrics"
	"github.com/BarkinBalci/donation-session-service/internal/repository"
)

// BatchWriterConfig configures the batch writer
type BatchWriterConfig struct {
	MaxBatchSize int
}

// BatchWriter restores session order and writes rows to the sink in batches
type BatchWriter struct {
	writer repository.SessionRowWriter
	config BatchWriterConfig
	log    *zap.Logger
}

// NewBatchWriter creates a new batch writer
func NewBatchWriter(writer repository.SessionRowWriter, config BatchWriterConfig, log *zap.Logger) *BatchWriter {
	return &BatchWriter{
		writer: writer,
		config: config,
		log:    log,
	}
}

// Start drains in, writing rows strictly in session order.
// The first failed insert aborts the run; nothing is retried.
func (w *BatchWriter) Start(ctx context.Context, in <-chan *RowEnvelope) (int, error) {
	pending := make(map[int][]domain.SessionRow)
	next := 0
	written := 0
	batch := make([]domain.SessionRow, 0, w.config.MaxBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := w.writeBatch(ctx, batch)
		written += n
		batch = make([]domain.SessionRow, 0, w.config.MaxBatchSize)
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return written, ctx.Err()

		case env, ok := <-in:
			if !ok {
				if err := ctx.Err(); err != nil {
					return written, err
				}
				if len(pending) > 0 {
					return written, fmt.Errorf("missing rows for session %d, %d sessions left unwritten", next, len(pending))
				}
				if err := flush(); err != nil {
					return written, err
				}
				w.log.Info("Batch writer input channel closed", zap.Int("row_count", written))
				return written, nil
			}

			pending[env.Seq] = env.Rows
			for {
				rows, ready := pending[next]
				if !ready {
					break
				}
				delete(pending, next)
				next++

				batch = append(batch, rows...)
				if len(batch) >= w.config.MaxBatchSize {
					w.log.Debug("Batch size threshold reached", zap.Int("batch_size", len(batch)))
					if err := flush(); err != nil {
						return written, err
					}
				}
			}
		}
	}
}

func (w *BatchWriter) writeBatch(ctx context.Context, rows []domain.SessionRow) (int, error) {
	insertedCount, err := w.writer.InsertBatch(ctx, rows)
	if err != nil {
		w.log.Error("Failed to insert batch",
			zap.Error(err),
			zap.Int("row_count", len(rows)))
		return 0, fmt.Errorf("failed to insert session rows: %w", err)
	}

	if insertedCount != len(rows) {
		w.log.Warn("Partial insert success",
			zap.Int("inserted", insertedCount),
			zap.Int("expected", len(rows)))
		metrics.RowsWritten.Add(float64(insertedCount))
		return insertedCount, fmt.Errorf("partial insert: %d of %d session rows written", insertedCount, len(rows))
	}

	metrics.RowsWritten.Add(float64(insertedCount))
	w.log.Debug("Inserted session rows", zap.Int("count", insertedCount))
	return insertedCount, nil
}
