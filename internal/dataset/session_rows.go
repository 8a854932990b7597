package dataset

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

// SessionRowHeader is the column order of the session table
var SessionRowHeader = []string{
	"session_id",
	"user_id",
	"session_ts",
	"pos",
	"campaign_id",
	"donation_count",
	"amount",
	"payment_ids",
}

// EncodeSessionRow renders a row in SessionRowHeader order
func EncodeSessionRow(row domain.SessionRow) []string {
	return []string{
		row.SessionID,
		row.UserID,
		FormatTimestamp(row.SessionTS),
		strconv.Itoa(row.Position),
		row.CampaignID,
		strconv.Itoa(row.DonationCount),
		row.Amount.String(),
		FormatPaymentIDs(row.PaymentIDs),
	}
}

// FormatPaymentIDs renders ids as a bracketed list, e.g. [17, 42]
func FormatPaymentIDs(ids []string) string {
	return "[" + strings.Join(ids, ", ") + "]"
}

// ParsePaymentIDs reverses FormatPaymentIDs. Quoted items are unquoted.
func ParsePaymentIDs(value string) ([]string, error) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "[") || !strings.HasSuffix(value, "]") {
		return nil, fmt.Errorf("payment ids must be a bracketed list")
	}

	inner := strings.TrimSpace(value[1 : len(value)-1])
	ids := []string{}
	if inner == "" {
		return ids, nil
	}
	for _, item := range strings.Split(inner, ",") {
		ids = append(ids, strings.Trim(strings.TrimSpace(item), `'"`))
	}
	return ids, nil
}

// ReadSessionRows reads a session table written with SessionRowHeader
func ReadSessionRows(r io.Reader) ([]domain.SessionRow, error) {
	t, err := newTable(r, SessionRowHeader...)
	if err != nil {
		return nil, err
	}

	var rows []domain.SessionRow
	for {
		record, err := t.next()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}

		row, err := decodeSessionRow(t, record)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

func decodeSessionRow(t *table, record []string) (domain.SessionRow, error) {
	rawTS := t.get(record, "session_ts")
	ts, err := ParseTimestamp(rawTS)
	if err != nil {
		return domain.SessionRow{}, t.parseError("session_ts", rawTS, err)
	}

	rawPos := t.get(record, "pos")
	pos, err := strconv.Atoi(strings.TrimSpace(rawPos))
	if err != nil {
		return domain.SessionRow{}, t.parseError("pos", rawPos, err)
	}

	rawCount := t.get(record, "donation_count")
	count, err := strconv.Atoi(strings.TrimSpace(rawCount))
	if err != nil {
		return domain.SessionRow{}, t.parseError("donation_count", rawCount, err)
	}

	rawAmount := t.get(record, "amount")
	amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
	if err != nil {
		return domain.SessionRow{}, t.parseError("amount", rawAmount, err)
	}

	rawIDs := t.get(record, "payment_ids")
	paymentIDs, err := ParsePaymentIDs(rawIDs)
	if err != nil {
		return domain.SessionRow{}, t.parseError("payment_ids", rawIDs, err)
	}

	return domain.SessionRow{
		SessionID:     t.get(record, "session_id"),
		UserID:        t.get(record, "user_id"),
		SessionTS:     ts,
		Position:      pos,
		CampaignID:    t.get(record, "campaign_id"),
		DonationCount: count,
		Amount:        amount,
		PaymentIDs:    paymentIDs,
	}, nil
}
