package usecase

import (
	"context"
	"time"

	"github.com/kiraazuma/jijiken-potato-pos/internal/domain"
)

// LedgerStore defines access to the external tabular sales store. Tables
// are addressed by name; day ledgers use the ISO date as their name.
type LedgerStore interface {
	// EnsureTable creates the table with its header row if it does not
	// exist yet. Existing tables are left untouched.
	EnsureTable(ctx context.Context, name string, header []string) error
	AppendRow(ctx context.Context, table string, row []string) error
	// ReadAllRows returns every row in append order; row 0 is the header.
	ReadAllRows(ctx context.Context, table string) ([][]string, error)
	// DeleteRow removes the row at the given index in ReadAllRows order.
	DeleteRow(ctx context.Context, table string, index int) error
	ListTables(ctx context.Context) ([]string, error)
}

// BasketStore holds session-scoped baskets. An unknown or expired session
// reads back as an empty basket.
type BasketStore interface {
	Append(ctx context.Context, sessionID string, price int) error
	Get(ctx context.Context, sessionID string) (domain.Basket, error)
	Clear(ctx context.Context, sessionID string) error
}

// IDGenerator generates unique session IDs.
type IDGenerator interface {
	Generate() string
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MetricsRecorder records register-level counters. Implementations must
// tolerate being called from any operation path.
type MetricsRecorder interface {
	ItemAdded(price int)
	SaleConfirmed(itemCount, amount int)
	SaleVoided()
	AuthFailure()
	MalformedRowSkipped(table string)
}
