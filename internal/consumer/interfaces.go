package consumer

import (
	"context"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
	"github.com/BarkinBalci/donation-session-service/internal/pipeline"
)

// MessageParser defines the interface for parsing raw message bytes into jobs
type MessageParser interface {
	Parse(body []byte) (*domain.GenerationJob, error)
}

// JobExecutor runs one generation job to completion
type JobExecutor interface {
	Execute(ctx context.Context, job *domain.GenerationJob) (pipeline.Stats, error)
}
