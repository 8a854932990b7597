package csvfile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BarkinBalci/donation-session-service/internal/dataset"
	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

func testRows() []domain.SessionRow {
	ts := time.Date(2023, 3, 4, 0, 0, 0, 0, time.UTC)
	return []domain.SessionRow{
		{SessionID: "s1", UserID: "u1", SessionTS: ts, Position: 0, CampaignID: "C", Amount: decimal.Zero, PaymentIDs: []string{}},
		{SessionID: "s1", UserID: "u1", SessionTS: ts, Position: 1, CampaignID: "A", DonationCount: 2, Amount: decimal.NewFromInt(15), PaymentIDs: []string{"p1", "p2"}},
	}
}

func TestWriter_InsertBatch(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, zap.NewNop())
	require.NoError(t, err)

	n, err := w.InsertBatch(context.Background(), testRows())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, w.RowCount())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "session_id,user_id,session_ts,pos,campaign_id,donation_count,amount,payment_ids", lines[0])
	assert.Equal(t, "s1,u1,2023-03-04 00:00:00,0,C,0,0,[]", lines[1])
	assert.Equal(t, `s1,u1,2023-03-04 00:00:00,1,A,2,15,"[p1, p2]"`, lines[2])
}

func TestWriteFile_ReadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.csv")

	require.NoError(t, WriteFile(context.Background(), path, testRows(), zap.NewNop()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := dataset.ReadSessionRows(f)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"p1", "p2"}, rows[1].PaymentIDs)
	assert.True(t, decimal.NewFromInt(15).Equal(rows[1].Amount))
	assert.True(t, testRows()[0].SessionTS.Equal(rows[0].SessionTS))
}

func TestCreate_AbortLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sessions.csv")

	w, err := Create(path, zap.NewNop())
	require.NoError(t, err)
	_, err = w.InsertBatch(context.Background(), testRows())
	require.NoError(t, err)

	require.NoError(t, w.Abort())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreate_CloseWithoutCommitDiscards(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sessions.csv")

	w, err := Create(path, zap.NewNop())
	require.NoError(t, err)
	_, err = w.InsertBatch(context.Background(), testRows())
	require.NoError(t, err)

	require.NoError(t, w.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreate_AbortKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sessions.csv")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0o644))

	w, err := Create(path, zap.NewNop())
	require.NoError(t, err)
	_, err = w.InsertBatch(context.Background(), testRows())
	require.NoError(t, err)
	require.NoError(t, w.Abort())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous run\n", string(data))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreate_CommitPublishesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sessions.csv")

	w, err := Create(path, zap.NewNop())
	require.NoError(t, err)
	_, err = w.InsertBatch(context.Background(), testRows())
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "output must not appear before commit")

	require.NoError(t, w.Commit())
	require.NoError(t, w.Abort(), "abort after commit is a no-op")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := dataset.ReadSessionRows(f)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
