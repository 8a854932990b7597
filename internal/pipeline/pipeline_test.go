package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
	"github.com/BarkinBalci/donation-session-service/internal/sessions"
)

// MockSessionRowWriter is a mock implementation of repository.SessionRowWriter
type MockSessionRowWriter struct {
	mock.Mock
}

func (m *MockSessionRowWriter) InsertBatch(ctx context.Context, rows []domain.SessionRow) (int, error) {
	args := m.Called(ctx, rows)
	if fn, ok := args.Get(0).(func(context.Context, []domain.SessionRow) int); ok {
		return fn(ctx, rows), args.Error(1)
	}
	return args.Int(0), args.Error(1)
}

var testStart = time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)

func testCatalog() []domain.Campaign {
	var catalog []domain.Campaign
	for i := 0; i < 6; i++ {
		catalog = append(catalog, domain.Campaign{
			ID:          fmt.Sprintf("c%d", i),
			PublishedAt: testStart.Add(time.Duration(i) * time.Hour),
		})
	}
	return catalog
}

func testPayments(users, perUser int) []domain.Payment {
	var payments []domain.Payment
	id := 0
	for u := 0; u < users; u++ {
		for i := 0; i < perUser; i++ {
			id++
			payments = append(payments, domain.Payment{
				ID:         fmt.Sprintf("p%d", id),
				UserID:     fmt.Sprintf("u%02d", u),
				CampaignID: fmt.Sprintf("c%d", (u+i)%6),
				Amount:     decimal.NewFromInt(int64(i + 1)),
				FinishedAt: testStart.Add(24*time.Hour + time.Duration(i)*20*time.Minute),
			})
		}
	}
	return payments
}

func testConfig(workers, batchSize int) Config {
	return Config{
		Params:       sessions.Params{MaxPosition: 2, Timeout: sessions.DefaultTimeout},
		Workers:      workers,
		MaxBatchSize: batchSize,
	}
}

func TestPipeline_Run_MatchesSequentialOrder(t *testing.T) {
	catalog := testCatalog()
	payments := testPayments(12, 3)
	mockWriter := new(MockSessionRowWriter)

	var written []domain.SessionRow
	mockWriter.On("InsertBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			written = append(written, args.Get(1).([]domain.SessionRow)...)
		}).
		Return(func(_ context.Context, rows []domain.SessionRow) int { return len(rows) }, nil)

	p := New(catalog, mockWriter, testConfig(4, 5), zap.NewNop())

	stats, err := p.Run(context.Background(), payments)

	require.NoError(t, err)
	want := sessions.NewGenerator(catalog, testConfig(1, 1).Params).Generate(payments)
	assert.Equal(t, want, written)
	assert.Equal(t, 36, stats.Sessions)
	assert.Equal(t, len(want), stats.Rows)
	mockWriter.AssertExpectations(t)
}

func TestPipeline_Run_BatchesBySize(t *testing.T) {
	mockWriter := new(MockSessionRowWriter)

	var batchSizes []int
	mockWriter.On("InsertBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			batchSizes = append(batchSizes, len(args.Get(1).([]domain.SessionRow)))
		}).
		Return(func(_ context.Context, rows []domain.SessionRow) int { return len(rows) }, nil)

	// Three sessions donating to the newest campaign, three visible rows each
	var payments []domain.Payment
	for _, user := range []string{"u1", "u2", "u3"} {
		payments = append(payments, domain.Payment{
			ID:         "p-" + user,
			UserID:     user,
			CampaignID: "c5",
			Amount:     decimal.NewFromInt(1),
			FinishedAt: testStart.Add(24 * time.Hour),
		})
	}

	p := New(testCatalog(), mockWriter, testConfig(2, 4), zap.NewNop())

	stats, err := p.Run(context.Background(), payments)

	require.NoError(t, err)
	assert.Equal(t, 9, stats.Rows)
	assert.Equal(t, []int{6, 3}, batchSizes)
}

func TestPipeline_Run_InsertFailure(t *testing.T) {
	mockWriter := new(MockSessionRowWriter)
	mockWriter.On("InsertBatch", mock.Anything, mock.Anything).Return(0, errors.New("database connection error"))

	p := New(testCatalog(), mockWriter, testConfig(2, 3), zap.NewNop())

	stats, err := p.Run(context.Background(), testPayments(20, 2))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert session rows")
	assert.Equal(t, 0, stats.Rows)
	mockWriter.AssertNumberOfCalls(t, "InsertBatch", 1)
}

func TestPipeline_Run_PartialInsert(t *testing.T) {
	mockWriter := new(MockSessionRowWriter)
	mockWriter.On("InsertBatch", mock.Anything, mock.Anything).Return(1, nil)

	p := New(testCatalog(), mockWriter, testConfig(1, 3), zap.NewNop())

	_, err := p.Run(context.Background(), testPayments(1, 1))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "partial insert")
}

func TestPipeline_Run_EmptyPaymentLog(t *testing.T) {
	mockWriter := new(MockSessionRowWriter)

	p := New(testCatalog(), mockWriter, testConfig(2, 10), zap.NewNop())

	stats, err := p.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, stats.Sessions)
	assert.Equal(t, 0, stats.Rows)
	mockWriter.AssertNotCalled(t, "InsertBatch")
}

func TestPipeline_Run_NoActiveCampaigns(t *testing.T) {
	mockWriter := new(MockSessionRowWriter)
	future := []domain.Campaign{{ID: "later", PublishedAt: testStart.AddDate(1, 0, 0)}}

	p := New(future, mockWriter, testConfig(2, 10), zap.NewNop())

	stats, err := p.Run(context.Background(), testPayments(3, 2))

	require.NoError(t, err)
	assert.Equal(t, 6, stats.Sessions)
	assert.Equal(t, 0, stats.Rows)
	mockWriter.AssertNotCalled(t, "InsertBatch")
}

func TestPipeline_Run_SessionCountCap(t *testing.T) {
	mockWriter := new(MockSessionRowWriter)
	mockWriter.On("InsertBatch", mock.Anything, mock.Anything).
		Return(func(_ context.Context, rows []domain.SessionRow) int { return len(rows) }, nil)

	cfg := testConfig(3, 100)
	cfg.Params.SessionCount = 5
	p := New(testCatalog(), mockWriter, cfg, zap.NewNop())

	stats, err := p.Run(context.Background(), testPayments(10, 3))

	require.NoError(t, err)
	assert.Equal(t, 5, stats.Sessions)
}

func TestPipeline_Run_CanceledContext(t *testing.T) {
	mockWriter := new(MockSessionRowWriter)
	mockWriter.On("InsertBatch", mock.Anything, mock.Anything).
		Return(func(_ context.Context, rows []domain.SessionRow) int { return len(rows) }, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(testCatalog(), mockWriter, testConfig(2, 10), zap.NewNop())

	_, err := p.Run(ctx, testPayments(50, 2))

	assert.ErrorIs(t, err, context.Canceled)
}
