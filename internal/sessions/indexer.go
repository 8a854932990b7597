package sessions

import (
	"cmp"
	"slices"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

// Index returns a copy of payments ordered by user and completion time.
// Payments with equal keys keep their input order.
func Index(payments []domain.Payment) []domain.Payment {
	sorted := slices.Clone(payments)
	slices.SortStableFunc(sorted, func(a, b domain.Payment) int {
		if c := cmp.Compare(a.UserID, b.UserID); c != 0 {
			return c
		}
		return a.FinishedAt.Compare(b.FinishedAt)
	})
	return sorted
}
