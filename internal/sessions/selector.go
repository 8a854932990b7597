package sessions

import (
	"time"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

// RankedCampaign is a campaign with its position in the list shown to a user
type RankedCampaign struct {
	Campaign domain.Campaign
	Position int
}

// Selector picks the campaigns visible during a session
type Selector struct {
	catalog     []domain.Campaign
	policy      RankingPolicy
	maxPosition int
}

// NewSelector creates a selector over a read-only campaign catalog
func NewSelector(catalog []domain.Campaign, policy RankingPolicy, maxPosition int) *Selector {
	return &Selector{
		catalog:     catalog,
		policy:      policy,
		maxPosition: maxPosition,
	}
}

// Active returns every campaign live at ts in ranked order
func (s *Selector) Active(userID string, ts time.Time) []RankedCampaign {
	var live []domain.Campaign
	for _, c := range s.catalog {
		if c.ActiveAt(ts) {
			live = append(live, c)
		}
	}
	if len(live) == 0 {
		return nil
	}

	ranked := s.policy.Rank(userID, live)
	result := make([]RankedCampaign, len(ranked))
	for i, c := range ranked {
		result[i] = RankedCampaign{Campaign: c, Position: i}
	}
	return result
}

// Select returns the ranked campaigns at ts cut to the position limit.
// The limit is raised to include the lowest-ranked donated campaign so no
// positive label is ever cut off.
func (s *Selector) Select(userID string, ts time.Time, donated map[string]*domain.AggregatedPayment) []RankedCampaign {
	active := s.Active(userID, ts)

	limit := s.maxPosition
	for _, rc := range active {
		if _, ok := donated[rc.Campaign.ID]; ok && rc.Position > limit {
			limit = rc.Position
		}
	}

	if limit < len(active)-1 {
		active = active[:limit+1]
	}
	return active
}
