package dataset

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPayments_Success(t *testing.T) {
	input := `id,user_id,campaign_id,amount,finished_at,status
17,u1,c1,10.50,2023-03-04 00:00:00,paid
18,u1,c2,5,2023-03-04T00:05:00Z,paid
`

	payments, err := LoadPayments(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "17", payments[0].ID)
	assert.Equal(t, "u1", payments[0].UserID)
	assert.Equal(t, "c1", payments[0].CampaignID)
	assert.True(t, decimal.RequireFromString("10.5").Equal(payments[0].Amount))
	assert.Equal(t, time.Date(2023, 3, 4, 0, 0, 0, 0, time.UTC), payments[0].FinishedAt)
	assert.Equal(t, time.Date(2023, 3, 4, 0, 5, 0, 0, time.UTC), payments[1].FinishedAt)
}

func TestLoadPayments_ColumnOrderIndependent(t *testing.T) {
	input := "finished_at,amount,campaign_id,user_id,id\n2023-03-04,1,c1,u1,p1\n"

	payments, err := LoadPayments(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "p1", payments[0].ID)
	assert.Equal(t, "c1", payments[0].CampaignID)
}

func TestLoadPayments_MissingColumn(t *testing.T) {
	input := "id,user_id,amount,finished_at\n1,u1,10,2023-03-04\n"

	payments, err := LoadPayments(strings.NewReader(input))

	assert.Nil(t, payments)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "campaign_id")
}

func TestLoadPayments_EmptyInput(t *testing.T) {
	_, err := LoadPayments(strings.NewReader(""))

	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoadPayments_HeaderOnly(t *testing.T) {
	payments, err := LoadPayments(strings.NewReader("id,user_id,campaign_id,amount,finished_at\n"))

	assert.NoError(t, err)
	assert.Empty(t, payments)
}

func TestLoadPayments_InvalidTimestamp(t *testing.T) {
	input := "id,user_id,campaign_id,amount,finished_at\n1,u1,c1,10,2023-03-04\n2,u1,c1,10,yesterday\n"

	_, err := LoadPayments(strings.NewReader(input))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, "finished_at", parseErr.Column)
	assert.Equal(t, "yesterday", parseErr.Value)
}

func TestLoadPayments_InvalidAmount(t *testing.T) {
	input := "id,user_id,campaign_id,amount,finished_at\n1,u1,c1,ten,2023-03-04\n"

	_, err := LoadPayments(strings.NewReader(input))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "amount", parseErr.Column)
}

func TestLoadCampaigns_NullableFinish(t *testing.T) {
	input := `id,charity_id,published_at,finished_at,goal
c1,9,2023-03-01 10:00:00,,1000
c2,9,2023-03-02 10:00:00,2023-03-20 10:00:00,500
c3,9,2023-03-03 10:00:00,NaN,500
`

	campaigns, err := LoadCampaigns(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, campaigns, 3)
	assert.Nil(t, campaigns[0].FinishedAt)
	require.NotNil(t, campaigns[1].FinishedAt)
	assert.Equal(t, time.Date(2023, 3, 20, 10, 0, 0, 0, time.UTC), *campaigns[1].FinishedAt)
	assert.Nil(t, campaigns[2].FinishedAt)
	assert.Equal(t, time.Date(2023, 3, 3, 10, 0, 0, 0, time.UTC), campaigns[2].PublishedAt)
}

func TestLoadCampaigns_MissingPublishedAt(t *testing.T) {
	input := "id,published_at,finished_at\nc1,,\n"

	_, err := LoadCampaigns(strings.NewReader(input))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "published_at", parseErr.Column)
}

func TestLoadPaymentsFile_NotFound(t *testing.T) {
	_, err := LoadPaymentsFile("does-not-exist.csv")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open payments file")
}
