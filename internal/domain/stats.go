package domain

import "time"

// DateLayout is the ISO calendar date format used for day ledger names.
const DateLayout = "2006-01-02"

// DayStats is the running total for a single day ledger.
type DayStats struct {
	ItemCount   int
	TotalAmount int
}

// PeriodStats is the aggregate over a trailing window of day ledgers.
// StartDate and EndDate are empty when no dated ledgers exist.
type PeriodStats struct {
	ItemCount   int
	TotalAmount int
	StartDate   string
	EndDate     string
}

// ParseLedgerDate reports whether a table name is a day ledger name, i.e.
// parses as an ISO calendar date. Non-date tables are not ledgers and are
// ignored by aggregation.
func ParseLedgerDate(name string) (time.Time, bool) {
	d, err := time.Parse(DateLayout, name)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
