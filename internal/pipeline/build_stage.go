package pipeline

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BarkinBalci/donation-session-service/internal/metrics"
	"github.com/BarkinBalci/donation-session-service/internal/sessions"
)

// BuildStage turns sessions into labeled rows on a pool of workers
type BuildStage struct {
	builder *sessions.RowBuilder
	workers int
	log     *zap.Logger
}

// NewBuildStage creates a new build stage
func NewBuildStage(builder *sessions.RowBuilder, workers int, log *zap.Logger) *BuildStage {
	if workers < 1 {
		workers = 1
	}
	return &BuildStage{
		builder: builder,
		workers: workers,
		log:     log,
	}
}

// Start consumes sessions until in is closed. Results leave out of order.
func (b *BuildStage) Start(ctx context.Context, in <-chan *SessionEnvelope, out chan<- *RowEnvelope) error {
	defer close(out)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < b.workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case env, ok := <-in:
					if !ok {
						return nil
					}

					rows := b.builder.Build(env.Session)
					if len(rows) == 0 {
						metrics.EmptySessions.Inc()
						b.log.Debug("Session has no active campaigns",
							zap.String("session_id", env.Session.ID),
							zap.Time("session_ts", env.Session.Start))
					}

					select {
					case <-ctx.Done():
						return ctx.Err()
					case out <- &RowEnvelope{Seq: env.Seq, Rows: rows}:
					}
				}
			}
		})
	}

	return g.Wait()
}
