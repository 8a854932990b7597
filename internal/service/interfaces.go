package service

import (
	"context"

	"github.com/BarkinBalci/donation-session-service/internal/dto"
)

// GenerationServicer defines the interface for session generation operations
type GenerationServicer interface {
	SubmitGeneration(ctx context.Context, req *dto.SubmitGenerationRequest) (*dto.SubmitGenerationResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	GetSummary(ctx context.Context, req *dto.GetSummaryRequest) (*dto.GetSummaryResponse, error)
	Ping(ctx context.Context) error
}
