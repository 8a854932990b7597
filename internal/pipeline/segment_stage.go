package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
	"github.com/BarkinBalci/donation-session-service/internal/metrics"
	"github.com/BarkinBalci/donation-session-service/internal/sessions"
)

// SegmentStage feeds indexed payments through the segmenter
type SegmentStage struct {
	segmenter *sessions.Segmenter
	log       *zap.Logger
}

// NewSegmentStage creates a new segment stage
func NewSegmentStage(segmenter *sessions.Segmenter, log *zap.Logger) *SegmentStage {
	return &SegmentStage{
		segmenter: segmenter,
		log:       log,
	}
}

// Start emits sessions in discovery order and returns how many were emitted
func (s *SegmentStage) Start(ctx context.Context, payments []domain.Payment, out chan<- *SessionEnvelope) int {
	defer close(out)

	seq := 0
	for session := range s.segmenter.Sessions(sessions.Index(payments)) {
		select {
		case <-ctx.Done():
			s.log.Info("Segment stage shutting down", zap.Int("session_count", seq))
			return seq
		case out <- &SessionEnvelope{Seq: seq, Session: session}:
			metrics.SessionsGenerated.Inc()
			seq++
		}
	}

	s.log.Info("Segmentation finished", zap.Int("session_count", seq))
	return seq
}
