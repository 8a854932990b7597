package sessions

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

var day0 = time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)

func at(days int, offset time.Duration) time.Time {
	return day0.AddDate(0, 0, days).Add(offset)
}

func payment(id, user, campaign, amount string, ts time.Time) domain.Payment {
	return domain.Payment{
		ID:         id,
		UserID:     user,
		CampaignID: campaign,
		Amount:     decimal.RequireFromString(amount),
		FinishedAt: ts,
	}
}

func campaign(id string, published time.Time, finished *time.Time) domain.Campaign {
	return domain.Campaign{ID: id, PublishedAt: published, FinishedAt: finished}
}

func ptr(t time.Time) *time.Time {
	return &t
}

func collect(s *Segmenter, payments []domain.Payment) []domain.Session {
	var result []domain.Session
	for session := range s.Sessions(payments) {
		result = append(result, session)
	}
	return result
}
