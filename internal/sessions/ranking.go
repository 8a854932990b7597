package sessions

import (
	"cmp"
	"slices"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

// RankingPolicy orders the campaigns live at a session's timestamp.
// The first campaign returned gets position 0.
type RankingPolicy interface {
	Rank(userID string, campaigns []domain.Campaign) []domain.Campaign
}

// RecencyPolicy puts the most recently published campaigns first.
// Campaigns published at the same instant are ordered by id.
type RecencyPolicy struct{}

// NewRecencyPolicy creates the default ranking policy
func NewRecencyPolicy() *RecencyPolicy {
	return &RecencyPolicy{}
}

// Rank sorts campaigns in place by publish time descending
func (p *RecencyPolicy) Rank(_ string, campaigns []domain.Campaign) []domain.Campaign {
	slices.SortFunc(campaigns, func(a, b domain.Campaign) int {
		if c := b.PublishedAt.Compare(a.PublishedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return campaigns
}
