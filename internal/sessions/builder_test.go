package sessions

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

func TestRowBuilder_Build_LabelsVisibleCampaigns(t *testing.T) {
	catalog := []domain.Campaign{
		campaign("A", at(0, 0), nil),
		campaign("B", at(1, 0), nil),
		campaign("C", at(2, 0), nil),
	}
	session := domain.Session{
		ID:     "s1",
		UserID: "u1",
		Start:  at(3, 0),
		Payments: []domain.Payment{
			payment("p1", "u1", "B", "4", at(3, 0)),
		},
	}

	rows := NewRowBuilder(NewSelector(catalog, NewRecencyPolicy(), 10)).Build(session)

	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, "s1", row.SessionID)
		assert.Equal(t, "u1", row.UserID)
		assert.Equal(t, at(3, 0), row.SessionTS)
		assert.Equal(t, i, row.Position)
	}
	assert.Equal(t, "B", rows[1].CampaignID)
	assert.Equal(t, 1, rows[1].DonationCount)
	assert.Equal(t, []string{"p1"}, rows[1].PaymentIDs)
	assert.True(t, rows[0].Amount.IsZero())
	assert.Equal(t, []string{}, rows[0].PaymentIDs)
	assert.False(t, rows[2].Donated())
}

func TestRowBuilder_Build_NoActiveCampaigns(t *testing.T) {
	catalog := []domain.Campaign{campaign("A", at(5, 0), nil)}
	session := domain.Session{
		ID:       "s1",
		UserID:   "u1",
		Start:    at(1, 0),
		Payments: []domain.Payment{payment("p1", "u1", "A", "1", at(1, 0))},
	}

	rows := NewRowBuilder(NewSelector(catalog, NewRecencyPolicy(), 10)).Build(session)

	assert.Empty(t, rows)
}

func TestRowBuilder_Build_DonatedCampaignBeyondMaxPosition(t *testing.T) {
	var catalog []domain.Campaign
	for i := 0; i < 15; i++ {
		catalog = append(catalog, campaign(string(rune('a'+i)), at(0, time.Duration(i)*time.Hour), nil))
	}
	// "a" is the oldest campaign and ranks last at position 14.
	session := domain.Session{
		ID:       "s1",
		UserID:   "u1",
		Start:    at(2, 0),
		Payments: []domain.Payment{payment("p1", "u1", "a", "9.99", at(2, 0))},
	}

	rows := NewRowBuilder(NewSelector(catalog, NewRecencyPolicy(), 3)).Build(session)

	require.Len(t, rows, 15)
	last := rows[len(rows)-1]
	assert.Equal(t, "a", last.CampaignID)
	assert.Equal(t, 14, last.Position)
	assert.Equal(t, 1, last.DonationCount)
	assert.True(t, decimal.RequireFromString("9.99").Equal(last.Amount))
}
