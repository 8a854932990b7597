package sessions

import (
	"github.com/shopspring/decimal"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

// RowBuilder turns a session into labeled rows
type RowBuilder struct {
	selector *Selector
}

// NewRowBuilder creates a row builder
func NewRowBuilder(selector *Selector) *RowBuilder {
	return &RowBuilder{selector: selector}
}

// Build emits one row per visible campaign in ascending position order
func (b *RowBuilder) Build(session domain.Session) []domain.SessionRow {
	aggregated := Aggregate(session.Payments)
	visible := b.selector.Select(session.UserID, session.Start, aggregated)
	if len(visible) == 0 {
		return nil
	}

	rows := make([]domain.SessionRow, 0, len(visible))
	for _, rc := range visible {
		row := domain.SessionRow{
			SessionID:  session.ID,
			UserID:     session.UserID,
			SessionTS:  session.Start,
			Position:   rc.Position,
			CampaignID: rc.Campaign.ID,
			Amount:     decimal.Zero,
			PaymentIDs: []string{},
		}

		if agg, ok := aggregated[rc.Campaign.ID]; ok {
			row.DonationCount = agg.DonationCount
			row.Amount = agg.Amount
			row.PaymentIDs = agg.PaymentIDs
		}

		rows = append(rows, row)
	}

	return rows
}
