package domain

import (
	"strconv"
	"time"
)

// LedgerHeader is the header row written as row 0 of every day ledger.
var LedgerHeader = []string{"timestamp", "date", "count", "amount", "detail"}

// Transaction is one confirmed sale: the whole basket at confirmation
// time, collapsed to a single ledger row.
type Transaction struct {
	Timestamp   string // time of day, "15:04:05"
	Date        string // calendar date, "2006-01-02"
	ItemCount   int
	TotalAmount int
	Detail      string
}

// NewTransaction stamps a basket with the given confirmation time.
func NewTransaction(now time.Time, basket Basket) Transaction {
	return Transaction{
		Timestamp:   now.Format("15:04:05"),
		Date:        now.Format(DateLayout),
		ItemCount:   basket.Count(),
		TotalAmount: basket.Total(),
		Detail:      basket.Detail(),
	}
}

// Row returns the transaction as a ledger row in header order.
func (t Transaction) Row() []string {
	return []string{
		t.Timestamp,
		t.Date,
		strconv.Itoa(t.ItemCount),
		strconv.Itoa(t.TotalAmount),
		t.Detail,
	}
}

// ParseTransactionRow reads a ledger row back into a Transaction. Rows with
// a missing or non-numeric count/amount cell return ErrMalformedRow so
// callers can skip them without failing the whole aggregation.
func ParseTransactionRow(row []string) (Transaction, error) {
	if len(row) < 4 {
		return Transaction{}, ErrMalformedRow
	}

	count, err := strconv.Atoi(row[2])
	if err != nil {
		return Transaction{}, ErrMalformedRow
	}

	amount, err := strconv.Atoi(row[3])
	if err != nil {
		return Transaction{}, ErrMalformedRow
	}

	t := Transaction{
		Timestamp:   row[0],
		Date:        row[1],
		ItemCount:   count,
		TotalAmount: amount,
	}
	if len(row) > 4 {
		t.Detail = row[4]
	}
	return t, nil
}
