package dataset

import (
	"fmt"
	"math"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

// Shares are the fractions of sessions assigned to each split
type Shares struct {
	Train float64
	Val   float64
	Test  float64
}

// Validate checks that shares are non-negative and sum up to 1
func (s Shares) Validate() error {
	if s.Train < 0 || s.Val < 0 || s.Test < 0 {
		return fmt.Errorf("%w: shares must not be negative", ErrInvalidShares)
	}
	if sum := s.Train + s.Val + s.Test; math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("%w: shares must sum up to 1, got %g", ErrInvalidShares, sum)
	}
	return nil
}

// Split holds the rows of each partition
type Split struct {
	Train []domain.SessionRow
	Val   []domain.SessionRow
	Test  []domain.SessionRow
}

// SplitBySessions partitions rows by whole sessions so no session straddles two splits.
// Sessions are taken in order of first appearance; train and val get the
// floor of their share of the session count and test gets the remainder.
func SplitBySessions(rows []domain.SessionRow, shares Shares) (*Split, error) {
	if err := shares.Validate(); err != nil {
		return nil, err
	}

	var order []string
	seen := make(map[string]bool)
	for _, row := range rows {
		if !seen[row.SessionID] {
			seen[row.SessionID] = true
			order = append(order, row.SessionID)
		}
	}

	total := len(order)
	trainCount := int(float64(total) * shares.Train)
	valCount := int(float64(total) * shares.Val)

	assignment := make(map[string]int, total)
	for i, id := range order {
		switch {
		case i < trainCount:
			assignment[id] = 0
		case i < trainCount+valCount:
			assignment[id] = 1
		default:
			assignment[id] = 2
		}
	}

	split := &Split{}
	for _, row := range rows {
		switch assignment[row.SessionID] {
		case 0:
			split.Train = append(split.Train, row)
		case 1:
			split.Val = append(split.Val, row)
		default:
			split.Test = append(split.Test, row)
		}
	}

	return split, nil
}
