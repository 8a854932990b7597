package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BarkinBalci/donation-session-service/internal/config"
	"github.com/BarkinBalci/donation-session-service/internal/dataset"
	"github.com/BarkinBalci/donation-session-service/internal/domain"
	"github.com/BarkinBalci/donation-session-service/internal/dto"
	"github.com/BarkinBalci/donation-session-service/internal/queue"
	"github.com/BarkinBalci/donation-session-service/internal/repository"
)

var (
	// ErrValidation is returned for requests the caller has to fix
	ErrValidation = errors.New("validation error")

	// ErrSessionNotFound is returned when no rows exist for a session id
	ErrSessionNotFound = errors.New("session not found")
)

var validGroupBy = map[string]bool{"day": true, "position": true}

// GenerationService queues generation jobs and serves generated sessions
type GenerationService struct {
	publisher  queue.JobPublisher
	repository repository.SessionRowRepository
	defaults   config.Sessions
	log        *zap.Logger
	now        func() time.Time
}

// NewGenerationService creates a new generation service
func NewGenerationService(publisher queue.JobPublisher, repo repository.SessionRowRepository, defaults config.Sessions, log *zap.Logger) *GenerationService {
	return &GenerationService{
		publisher:  publisher,
		repository: repo,
		defaults:   defaults,
		log:        log,
		now:        time.Now,
	}
}

// SubmitGeneration validates the request and publishes a generation job
func (s *GenerationService) SubmitGeneration(ctx context.Context, req *dto.SubmitGenerationRequest) (*dto.SubmitGenerationResponse, error) {
	params := s.defaults
	if req.SessionCount != nil {
		params.SessionCount = *req.SessionCount
	}
	if req.MaxPosition != nil {
		params.MaxPosition = *req.MaxPosition
	}
	if req.MergePaymentsWithinSeconds != nil {
		params.MergePaymentsWithinSeconds = *req.MergePaymentsWithinSeconds
	}

	if err := params.Validate(); err != nil {
		s.log.Warn("Rejected generation request", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	job := &domain.GenerationJob{
		JobID:                      uuid.New().String(),
		PaymentsPath:               req.PaymentsPath,
		CampaignsPath:              req.CampaignsPath,
		SessionCount:               params.SessionCount,
		MaxPosition:                params.MaxPosition,
		MergePaymentsWithinSeconds: params.MergePaymentsWithinSeconds,
		RequestedAt:                s.now().UTC(),
	}

	if err := s.publisher.PublishJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to publish generation job to queue: %w", err)
	}

	s.log.Info("Generation job queued",
		zap.String("job_id", job.JobID),
		zap.String("payments_path", job.PaymentsPath),
		zap.String("campaigns_path", job.CampaignsPath))

	return &dto.SubmitGenerationResponse{
		JobID:                      job.JobID,
		Status:                     "accepted",
		SessionCount:               job.SessionCount,
		MaxPosition:                job.MaxPosition,
		MergePaymentsWithinSeconds: job.MergePaymentsWithinSeconds,
	}, nil
}

// GetSession returns every row of one generated session
func (s *GenerationService) GetSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	rows, err := s.repository.GetSessionRows(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session rows from repository: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	response := &dto.SessionResponse{
		SessionID: sessionID,
		UserID:    rows[0].UserID,
		SessionTS: dataset.FormatTimestamp(rows[0].SessionTS),
		Rows:      make([]dto.SessionRowData, 0, len(rows)),
	}
	for _, row := range rows {
		paymentIDs := row.PaymentIDs
		if paymentIDs == nil {
			paymentIDs = []string{}
		}
		response.Rows = append(response.Rows, dto.SessionRowData{
			Position:      row.Position,
			CampaignID:    row.CampaignID,
			DonationCount: row.DonationCount,
			Amount:        row.Amount.String(),
			PaymentIDs:    paymentIDs,
		})
	}

	return response, nil
}

// GetSummary retrieves row and session counts over a session_ts range
func (s *GenerationService) GetSummary(ctx context.Context, req *dto.GetSummaryRequest) (*dto.GetSummaryResponse, error) {
	if req.From > req.To {
		s.log.Warn("Invalid time range for summary",
			zap.Int64("from", req.From),
			zap.Int64("to", req.To))
		return nil, fmt.Errorf("%w: from timestamp must be less than or equal to to timestamp", ErrValidation)
	}

	if req.GroupBy != "" && !validGroupBy[req.GroupBy] {
		s.log.Warn("Invalid group_by value", zap.String("group_by", req.GroupBy))
		return nil, fmt.Errorf("%w: invalid group_by value: %s (supported: day, position)", ErrValidation, req.GroupBy)
	}

	result, err := s.repository.GetSummary(ctx, repository.SummaryQuery{
		From:    time.Unix(req.From, 0).UTC(),
		To:      time.Unix(req.To, 0).UTC(),
		GroupBy: req.GroupBy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get summary from repository: %w", err)
	}

	response := &dto.GetSummaryResponse{
		From:         req.From,
		To:           req.To,
		SessionCount: result.SessionCount,
		UserCount:    result.UserCount,
		RowCount:     result.RowCount,
		DonatedCount: result.DonatedCount,
		GroupBy:      req.GroupBy,
		Groups:       make([]dto.SummaryGroupData, 0, len(result.Groups)),
	}
	for _, group := range result.Groups {
		response.Groups = append(response.Groups, dto.SummaryGroupData{
			GroupValue:   group.GroupValue,
			RowCount:     group.RowCount,
			DonatedCount: group.DonatedCount,
		})
	}

	return response, nil
}

// Ping checks that the session store is reachable
func (s *GenerationService) Ping(ctx context.Context) error {
	return s.repository.Ping(ctx)
}
