package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

// LoadPayments reads the payments export: id, user_id, campaign_id, amount, finished_at
func LoadPayments(r io.Reader) ([]domain.Payment, error) {
	t, err := newTable(r, "id", "user_id", "campaign_id", "amount", "finished_at")
	if err != nil {
		return nil, err
	}

	var payments []domain.Payment
	for {
		record, err := t.next()
		if errors.Is(err, io.EOF) {
			return payments, nil
		}
		if err != nil {
			return nil, err
		}

		rawAmount := strings.TrimSpace(t.get(record, "amount"))
		amount, err := decimal.NewFromString(rawAmount)
		if err != nil {
			return nil, t.parseError("amount", rawAmount, err)
		}

		rawFinished := t.get(record, "finished_at")
		finishedAt, err := ParseTimestamp(rawFinished)
		if err != nil {
			return nil, t.parseError("finished_at", rawFinished, err)
		}

		payments = append(payments, domain.Payment{
			ID:         strings.TrimSpace(t.get(record, "id")),
			UserID:     strings.TrimSpace(t.get(record, "user_id")),
			CampaignID: strings.TrimSpace(t.get(record, "campaign_id")),
			Amount:     amount,
			FinishedAt: finishedAt,
		})
	}
}

// LoadCampaigns reads the campaigns export: id, published_at, finished_at.
// Other columns are ignored.
func LoadCampaigns(r io.Reader) ([]domain.Campaign, error) {
	t, err := newTable(r, "id", "published_at", "finished_at")
	if err != nil {
		return nil, err
	}

	var campaigns []domain.Campaign
	for {
		record, err := t.next()
		if errors.Is(err, io.EOF) {
			return campaigns, nil
		}
		if err != nil {
			return nil, err
		}

		rawPublished := t.get(record, "published_at")
		publishedAt, err := ParseTimestamp(rawPublished)
		if err != nil {
			return nil, t.parseError("published_at", rawPublished, err)
		}

		rawFinished := t.get(record, "finished_at")
		finishedAt, err := ParseOptionalTimestamp(rawFinished)
		if err != nil {
			return nil, t.parseError("finished_at", rawFinished, err)
		}

		campaigns = append(campaigns, domain.Campaign{
			ID:          strings.TrimSpace(t.get(record, "id")),
			PublishedAt: publishedAt,
			FinishedAt:  finishedAt,
		})
	}
}

// LoadPaymentsFile opens path and reads it with LoadPayments
func LoadPaymentsFile(path string) ([]domain.Payment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open payments file: %w", err)
	}
	defer f.Close()

	payments, err := LoadPayments(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments from %s: %w", path, err)
	}
	return payments, nil
}

// LoadCampaignsFile opens path and reads it with LoadCampaigns
func LoadCampaignsFile(path string) ([]domain.Campaign, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open campaigns file: %w", err)
	}
	defer f.Close()

	campaigns, err := LoadCampaigns(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaigns from %s: %w", path, err)
	}
	return campaigns, nil
}
