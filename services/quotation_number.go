package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// GetFiscalYear returns the Indian fiscal year string for a given date.
// Indian fiscal year runs April to March.
// Jan 2026 → "25-26", May 2026 → "26-27"
func GetFiscalYear(t time.Time) string {
	year := t.Year()

	var startYear int
	if t.Month() >= time.April {
		startYear = year
	} else {
		startYear = year - 1
	}

	return fmt.Sprintf("%02d-%02d", startYear%100, (startYear+1)%100)
}

// formatQuotationNumber constructs the quotation number string.
func formatQuotationNumber(fiscalYear string, sequence int) string {
	return fmt.Sprintf("QTN-%s-%03d", fiscalYear, sequence)
}

// GenerateQuotationNumber creates the next quotation number.
// Format: QTN-{fiscal_year}-{sequence}, sequence 3-digit zero-padded and
// counted per fiscal year.
func GenerateQuotationNumber(app core.App, now time.Time) string {
	fiscalYear := GetFiscalYear(now)
	prefix := fmt.Sprintf("QTN-%s-", fiscalYear)

	existing, err := app.FindRecordsByFilter(
		"quotations",
		"quotation_number ~ {:prefix}",
		"", 0, 0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		existing = nil
	}

	return formatQuotationNumber(fiscalYear, len(existing)+1)
}
