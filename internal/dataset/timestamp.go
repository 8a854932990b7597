package dataset

import (
	"fmt"
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses the timestamp formats found in the payment and campaign exports.
// Values without a zone are read as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// ParseOptionalTimestamp is ParseTimestamp for nullable columns
func ParseOptionalTimestamp(value string) (*time.Time, error) {
	if isNull(value) {
		return nil, nil
	}
	ts, err := ParseTimestamp(value)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// FormatTimestamp renders a timestamp the way the session table stores it
func FormatTimestamp(ts time.Time) string {
	return ts.UTC().Format("2006-01-02 15:04:05.999999999")
}

func isNull(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "nan", "nat", "null", "none":
		return true
	}
	return false
}
