package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Session is one user's bounded run of payments treated as a single visit
type Session struct {
	ID       string
	UserID   string
	Start    time.Time
	Payments []Payment
}

// AggregatedPayment collapses a session's payments to one campaign
type AggregatedPayment struct {
	DonationCount int
	Amount        decimal.Decimal
	PaymentIDs    []string
}

// SessionRow is one labeled (session, visible campaign) pair stored in ClickHouse
type SessionRow struct {
	SessionID     string          `ch:"session_id"`
	UserID        string          `ch:"user_id"`
	SessionTS     time.Time       `ch:"session_ts"`
	Position      int             `ch:"pos"`
	CampaignID    string          `ch:"campaign_id"`
	DonationCount int             `ch:"donation_count"`
	Amount        decimal.Decimal `ch:"amount"`
	PaymentIDs    []string        `ch:"payment_ids"`
}

// Donated reports whether the campaign received any payment in the session
func (r SessionRow) Donated() bool {
	return r.DonationCount > 0
}
