package dataset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

func rowsForSessions(n, rowsPerSession int) []domain.SessionRow {
	var rows []domain.SessionRow
	for i := 0; i < n; i++ {
		for pos := 0; pos < rowsPerSession; pos++ {
			rows = append(rows, domain.SessionRow{SessionID: fmt.Sprintf("s%02d", i), Position: pos})
		}
	}
	return rows
}

func sessionIDs(rows []domain.SessionRow) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, row := range rows {
		if !seen[row.SessionID] {
			seen[row.SessionID] = true
			ids = append(ids, row.SessionID)
		}
	}
	return ids
}

func TestSplitBySessions(t *testing.T) {
	rows := rowsForSessions(10, 3)

	split, err := SplitBySessions(rows, Shares{Train: 0.7, Val: 0.2, Test: 0.1})

	require.NoError(t, err)
	assert.Len(t, split.Train, 21)
	assert.Len(t, split.Val, 6)
	assert.Len(t, split.Test, 3)
	assert.Equal(t, []string{"s00", "s01", "s02", "s03", "s04", "s05", "s06"}, sessionIDs(split.Train))
	assert.Equal(t, []string{"s07", "s08"}, sessionIDs(split.Val))
	assert.Equal(t, []string{"s09"}, sessionIDs(split.Test))
}

func TestSplitBySessions_RemainderGoesToTest(t *testing.T) {
	rows := rowsForSessions(7, 1)

	split, err := SplitBySessions(rows, Shares{Train: 0.5, Val: 0.25, Test: 0.25})

	require.NoError(t, err)
	assert.Len(t, split.Train, 3)
	assert.Len(t, split.Val, 1)
	assert.Len(t, split.Test, 3)
}

func TestSplitBySessions_InvalidShares(t *testing.T) {
	tests := []Shares{
		{Train: 0.7, Val: 0.2, Test: 0.2},
		{Train: 0.5, Val: 0.2, Test: 0.2},
		{Train: 1.1, Val: -0.1, Test: 0},
	}

	for _, shares := range tests {
		split, err := SplitBySessions(rowsForSessions(3, 1), shares)
		assert.Nil(t, split)
		assert.ErrorIs(t, err, ErrInvalidShares)
	}
}

func TestSplitBySessions_Empty(t *testing.T) {
	split, err := SplitBySessions(nil, Shares{Train: 0.7, Val: 0.15, Test: 0.15})

	require.NoError(t, err)
	assert.Empty(t, split.Train)
	assert.Empty(t, split.Val)
	assert.Empty(t, split.Test)
}
