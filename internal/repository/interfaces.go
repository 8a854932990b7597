package repository

import (
	"context"
	"time"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

// SummaryQuery represents session summary query parameters
type SummaryQuery struct {
	From    time.Time
	To      time.Time
	GroupBy string
}

// SummaryGroupResult represents aggregated counts for a specific group
type SummaryGroupResult struct {
	GroupValue   string
	RowCount     uint64
	DonatedCount uint64
}

// SummaryResult represents the result of a summary query
type SummaryResult struct {
	SessionCount uint64
	UserCount    uint64
	RowCount     uint64
	DonatedCount uint64
	Groups       []SummaryGroupResult
}

// SessionRowWriter is the sink a generation run writes to
type SessionRowWriter interface {
	// InsertBatch appends rows to the sink and returns how many were written
	InsertBatch(ctx context.Context, rows []domain.SessionRow) (int, error)
}

// SessionRowRepository defines the interface for session table storage operations
type SessionRowRepository interface {
	SessionRowWriter

	// InitSchema initializes the database schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error

	// GetSessionRows returns the rows of one session ordered by position
	GetSessionRows(ctx context.Context, sessionID string) ([]domain.SessionRow, error)

	// GetSummary retrieves aggregated session counts based on the query
	GetSummary(ctx context.Context, query SummaryQuery) (*SummaryResult, error)
}
