package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
	"github.com/BarkinBalci/donation-session-service/internal/repository"
)

const insertSessionRows = `INSERT INTO session_rows (
	session_id, user_id, session_ts, pos, campaign_id, donation_count, amount, payment_ids
)`

// session_ts keeps nanoseconds so a stored row still reproduces its session_id
const createSessionRowsTable = `
CREATE TABLE IF NOT EXISTS session_rows (
	session_id String,
	user_id String,
	session_ts DateTime64(9, 'UTC'),
	pos UInt32,
	campaign_id String,
	donation_count UInt32,
	amount Decimal(18, 4),
	payment_ids Array(String),
	generated_at DateTime64(3) DEFAULT now64(3)
) ENGINE = ReplacingMergeTree(generated_at)
ORDER BY (session_id, pos)
PARTITION BY toYYYYMM(session_ts)
SETTINGS index_granularity = 8192
`

// Repository implements SessionRowRepository for ClickHouse
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema creates the session table.
// Rows are keyed by (session_id, pos); re-running a generation replaces them.
func (r *Repository) InitSchema(ctx context.Context) error {
	if err := r.client.Conn().Exec(ctx, createSessionRowsTable); err != nil {
		return fmt.Errorf("failed to create session_rows table: %w", err)
	}

	r.log.Info("ClickHouse schema initialized successfully")
	return nil
}

// InsertBatch inserts a batch of session rows into ClickHouse
func (r *Repository) InsertBatch(ctx context.Context, rows []domain.SessionRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, insertSessionRows)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare batch: %w", err)
	}

	for _, row := range rows {
		paymentIDs := row.PaymentIDs
		if paymentIDs == nil {
			paymentIDs = []string{}
		}

		err := batch.Append(
			row.SessionID,
			row.UserID,
			row.SessionTS,
			uint32(row.Position),
			row.CampaignID,
			uint32(row.DonationCount),
			row.Amount,
			paymentIDs,
		)
		if err != nil {
			_ = batch.Abort()
			return 0, fmt.Errorf("failed to append session row to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send batch: %w", err)
	}

	return len(rows), nil
}

// GetSessionRows returns one session's rows ordered by position
func (r *Repository) GetSessionRows(ctx context.Context, sessionID string) ([]domain.SessionRow, error) {
	query := `
		SELECT session_id, user_id, session_ts, pos, campaign_id, donation_count, amount, payment_ids
		FROM session_rows FINAL
		WHERE session_id = ?
		ORDER BY pos ASC
	`

	rows, err := r.client.Conn().Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query session rows: %w", err)
	}
	defer r.closeRows(rows)

	var result []domain.SessionRow
	for rows.Next() {
		var (
			row           domain.SessionRow
			sessionTS     time.Time
			pos           uint32
			donationCount uint32
			amount        decimal.Decimal
		)
		if err := rows.Scan(&row.SessionID, &row.UserID, &sessionTS, &pos, &row.CampaignID, &donationCount, &amount, &row.PaymentIDs); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		row.SessionTS = sessionTS.UTC()
		row.Position = int(pos)
		row.DonationCount = int(donationCount)
		row.Amount = amount
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	return result, nil
}

// GetSummary retrieves aggregated session counts from ClickHouse
func (r *Repository) GetSummary(ctx context.Context, query repository.SummaryQuery) (*repository.SummaryResult, error) {
	result := &repository.SummaryResult{
		Groups: []repository.SummaryGroupResult{},
	}

	whereClause := "WHERE session_ts >= ? AND session_ts <= ?"
	args := []interface{}{query.From, query.To}

	overallQuery := fmt.Sprintf(`
		SELECT
			uniqExact(session_id) as session_count,
			uniqExact(user_id) as user_count,
			count() as row_count,
			countIf(donation_count > 0) as donated_count
		FROM session_rows FINAL
		%s
	`, whereClause)

	row := r.client.Conn().QueryRow(ctx, overallQuery, args...)
	if err := row.Scan(&result.SessionCount, &result.UserCount, &result.RowCount, &result.DonatedCount); err != nil {
		return nil, fmt.Errorf("failed to query overall summary: %w", err)
	}

	if query.GroupBy == "" {
		return result, nil
	}

	var selectField, groupByClause, orderBy string
	switch query.GroupBy {
	case "day":
		selectField = "formatDateTime(toStartOfDay(session_ts), '%Y-%m-%d')"
		groupByClause = "GROUP BY toStartOfDay(session_ts)"
		orderBy = "ORDER BY group_value ASC"
	case "position":
		selectField = "toString(pos)"
		groupByClause = "GROUP BY pos"
		orderBy = "ORDER BY pos ASC"
	default:
		return nil, fmt.Errorf("unsupported group_by value: %s (supported: day, position)", query.GroupBy)
	}

	groupedQuery := fmt.Sprintf(`
		SELECT
			%s as group_value,
			count() as row_count,
			countIf(donation_count > 0) as donated_count
		FROM session_rows FINAL
		%s
		%s
		%s
	`, selectField, whereClause, groupByClause, orderBy)

	rows, err := r.client.Conn().Query(ctx, groupedQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query grouped summary: %w", err)
	}
	defer r.closeRows(rows)

	for rows.Next() {
		var group repository.SummaryGroupResult
		if err := rows.Scan(&group.GroupValue, &group.RowCount, &group.DonatedCount); err != nil {
			return nil, fmt.Errorf("failed to scan grouped summary row: %w", err)
		}
		result.Groups = append(result.Groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grouped summary rows: %w", err)
	}

	return result, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}

func (r *Repository) closeRows(rows driver.Rows) {
	if err := rows.Close(); err != nil {
		r.log.Error("Failed to close rows", zap.Error(err))
	}
}
