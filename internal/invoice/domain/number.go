package domain

import (
	"fmt"
	"time"
)

// YearPrefix derives the two-digit fiscal-year prefix of an invoice number
// from the invoice date (YYYY-MM-DD).
func YearPrefix(date string) (string, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("malformed invoice date %q", date)
	}
	return fmt.Sprintf("%02d", parsed.Year()%100), nil
}

// FormatNumber renders an invoice number as the year prefix followed by the
// sequence zero-padded to four digits, e.g. "250001".
func FormatNumber(prefix string, sequence int64) string {
	return fmt.Sprintf("%s%04d", prefix, sequence)
}
