package sessions

import (
	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

// Aggregate groups a session's payments by campaign
func Aggregate(payments []domain.Payment) map[string]*domain.AggregatedPayment {
	aggregated := make(map[string]*domain.AggregatedPayment)

	for _, p := range payments {
		agg, ok := aggregated[p.CampaignID]
		if !ok {
			agg = &domain.AggregatedPayment{}
			aggregated[p.CampaignID] = agg
		}

		agg.DonationCount++
		agg.Amount = agg.Amount.Add(p.Amount)
		agg.PaymentIDs = append(agg.PaymentIDs, p.ID)
	}

	return aggregated
}
