package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a single completed donation
type Payment struct {
	ID         string
	UserID     string
	CampaignID string
	Amount     decimal.Decimal
	FinishedAt time.Time
}

// Campaign is a fundraising campaign with its visibility window.
// A nil FinishedAt means the campaign has no known end.
type Campaign struct {
	ID          string
	PublishedAt time.Time
	FinishedAt  *time.Time
}

// ActiveAt reports whether the campaign is live at ts
func (c Campaign) ActiveAt(ts time.Time) bool {
	if c.PublishedAt.After(ts) {
		return false
	}
	return c.FinishedAt == nil || !c.FinishedAt.Before(ts)
}
