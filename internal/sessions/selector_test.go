package sessions

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

func positions(ranked []RankedCampaign) map[string]int {
	result := make(map[string]int, len(ranked))
	for _, rc := range ranked {
		result[rc.Campaign.ID] = rc.Position
	}
	return result
}

func ids(ranked []RankedCampaign) []string {
	result := make([]string, len(ranked))
	for i, rc := range ranked {
		result[i] = rc.Campaign.ID
	}
	return result
}

func TestSelector_Active_FiltersByWindow(t *testing.T) {
	ts := at(5, 0)
	catalog := []domain.Campaign{
		campaign("open", at(1, 0), nil),
		campaign("future", at(6, 0), nil),
		campaign("finished", at(1, 0), ptr(at(4, 0))),
		campaign("ends-now", at(2, 0), ptr(ts)),
		campaign("starts-now", ts, ptr(at(9, 0))),
	}

	active := NewSelector(catalog, NewRecencyPolicy(), 10).Active("u1", ts)

	assert.Equal(t, []string{"starts-now", "ends-now", "open"}, ids(active))
}

func TestSelector_Active_RankedByRecencyWithIDTieBreak(t *testing.T) {
	catalog := []domain.Campaign{
		campaign("b", at(1, 0), nil),
		campaign("old", at(0, 0), nil),
		campaign("a", at(1, 0), nil),
		campaign("new", at(2, 0), nil),
	}

	active := NewSelector(catalog, NewRecencyPolicy(), 10).Active("u1", at(3, 0))

	require.Len(t, active, 4)
	assert.Equal(t, []string{"new", "a", "b", "old"}, ids(active))
	for i, rc := range active {
		assert.Equal(t, i, rc.Position)
	}
}

func TestSelector_Active_NoneLive(t *testing.T) {
	catalog := []domain.Campaign{campaign("future", at(9, 0), nil)}

	assert.Empty(t, NewSelector(catalog, NewRecencyPolicy(), 10).Active("u1", at(1, 0)))
}

func TestSelector_Select_PositionLimit(t *testing.T) {
	var catalog []domain.Campaign
	for i := 0; i < 8; i++ {
		catalog = append(catalog, campaign(string(rune('A'+i)), at(i, 0), nil))
	}
	ts := at(10, 0)
	// Ranked: H(0) G(1) F(2) E(3) D(4) C(5) B(6) A(7)

	tests := []struct {
		name        string
		maxPosition int
		donated     []string
		want        []string
	}{
		{name: "no donations", maxPosition: 2, want: []string{"H", "G", "F"}},
		{name: "donation inside limit", maxPosition: 2, donated: []string{"G"}, want: []string{"H", "G", "F"}},
		{name: "donation beyond limit extends", maxPosition: 2, donated: []string{"C"}, want: []string{"H", "G", "F", "E", "D", "C"}},
		{name: "lowest ranked donation wins", maxPosition: 0, donated: []string{"F", "B"}, want: []string{"H", "G", "F", "E", "D", "C", "B"}},
		{name: "zero max position keeps top", maxPosition: 0, want: []string{"H"}},
		{name: "donation at position zero", maxPosition: 0, donated: []string{"H"}, want: []string{"H"}},
		{name: "limit beyond list", maxPosition: 20, want: []string{"H", "G", "F", "E", "D", "C", "B", "A"}},
		{name: "largest max position keeps all", maxPosition: math.MaxInt, want: []string{"H", "G", "F", "E", "D", "C", "B", "A"}},
		{name: "donation to invisible campaign ignored", maxPosition: 1, donated: []string{"Z"}, want: []string{"H", "G"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			donated := make(map[string]*domain.AggregatedPayment)
			for _, id := range tt.donated {
				donated[id] = &domain.AggregatedPayment{DonationCount: 1}
			}

			selected := NewSelector(catalog, NewRecencyPolicy(), tt.maxPosition).Select("u1", ts, donated)

			assert.Equal(t, tt.want, ids(selected))
		})
	}
}

type reversePolicy struct{}

func (reversePolicy) Rank(_ string, campaigns []domain.Campaign) []domain.Campaign {
	ranked := NewRecencyPolicy().Rank("", campaigns)
	for i, j := 0, len(ranked)-1; i < j; i, j = i+1, j-1 {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	}
	return ranked
}

func TestSelector_CustomPolicy(t *testing.T) {
	catalog := []domain.Campaign{
		campaign("A", at(0, 0), nil),
		campaign("B", at(1, 0), nil),
	}

	active := NewSelector(catalog, reversePolicy{}, 10).Active("u1", at(2, time.Hour))

	assert.Equal(t, map[string]int{"A": 0, "B": 1}, positions(active))
}
