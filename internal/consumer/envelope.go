package consumer

import (
	"context"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

// Envelope wraps a generation job with acknowledgment callbacks
type Envelope struct {
	Job       *domain.GenerationJob
	MessageID string
	ack       func(context.Context) error
	nack      func(context.Context) error
}

// NewEnvelope creates a new message envelope
func NewEnvelope(job *domain.GenerationJob, messageID string, ack, nack func(context.Context) error) *Envelope {
	return &Envelope{
		Job:       job,
		MessageID: messageID,
		ack:       ack,
		nack:      nack,
	}
}

// Ack removes the job from the queue
func (e *Envelope) Ack(ctx context.Context) error {
	if e.ack != nil {
		return e.ack(ctx)
	}
	return nil
}

// Nack returns the job to the queue for redelivery
func (e *Envelope) Nack(ctx context.Context) error {
	if e.nack != nil {
		return e.nack(ctx)
	}
	return nil
}
