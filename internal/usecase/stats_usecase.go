package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/kiraazuma/jijiken-potato-pos/internal/domain"
)

// StatsUseCase computes running totals over day ledgers. It never mutates
// the store beyond lazily creating today's empty ledger.
type StatsUseCase struct {
	ledger  LedgerStore
	clock   Clock
	metrics MetricsRecorder
	logger  zerolog.Logger
}

// NewStatsUseCase creates a new StatsUseCase. metrics may be nil.
func NewStatsUseCase(ledger LedgerStore, clock Clock, metrics MetricsRecorder, logger zerolog.Logger) *StatsUseCase {
	return &StatsUseCase{
		ledger:  ledger,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

// TodayStats sums item count and amount across today's transaction rows,
// creating the day ledger empty if it does not exist yet.
func (uc *StatsUseCase) TodayStats(ctx context.Context) (domain.DayStats, error) {
	table := uc.clock.Now().Format(domain.DateLayout)

	if err := uc.ledger.EnsureTable(ctx, table, domain.LedgerHeader); err != nil {
		return domain.DayStats{}, err
	}

	rows, err := uc.ledger.ReadAllRows(ctx, table)
	if err != nil {
		return domain.DayStats{}, err
	}

	count, amount := uc.sumRows(table, rows)
	return domain.DayStats{ItemCount: count, TotalAmount: amount}, nil
}

// PeriodStats sums stats across the last n day ledgers. Tables whose name
// does not parse as an ISO date are silently ignored, so the store can
// hold auxiliary tables safely. Returns zero totals and empty dates when
// no dated tables exist.
func (uc *StatsUseCase) PeriodStats(ctx context.Context, days int) (domain.PeriodStats, error) {
	if days < 1 {
		days = 1
	}

	names, err := uc.ledger.ListTables(ctx)
	if err != nil {
		return domain.PeriodStats{}, err
	}

	type datedTable struct {
		date time.Time
		name string
	}

	dated := make([]datedTable, 0, len(names))
	for _, name := range names {
		d, ok := domain.ParseLedgerDate(name)
		if !ok {
			continue
		}
		dated = append(dated, datedTable{date: d, name: name})
	}

	if len(dated) == 0 {
		return domain.PeriodStats{}, nil
	}

	sort.Slice(dated, func(i, j int) bool {
		return dated[i].date.Before(dated[j].date)
	})

	if len(dated) > days {
		dated = dated[len(dated)-days:]
	}

	stats := domain.PeriodStats{
		StartDate: dated[0].date.Format(domain.DateLayout),
		EndDate:   dated[len(dated)-1].date.Format(domain.DateLayout),
	}

	for _, dt := range dated {
		rows, err := uc.ledger.ReadAllRows(ctx, dt.name)
		if err != nil {
			return domain.PeriodStats{}, err
		}

		count, amount := uc.sumRows(dt.name, rows)
		stats.ItemCount += count
		stats.TotalAmount += amount
	}

	return stats, nil
}

// sumRows totals count/amount across transaction rows, skipping the header
// and any row whose count or amount cell is missing or non-numeric. The
// skip policy tolerates partially corrupt or manually edited ledgers.
func (uc *StatsUseCase) sumRows(table string, rows [][]string) (count, amount int) {
	if len(rows) <= 1 {
		return 0, 0
	}

	for i, row := range rows[1:] {
		tx, err := domain.ParseTransactionRow(row)
		if err != nil {
			if errors.Is(err, domain.ErrMalformedRow) {
				uc.logger.Warn().
					Str("table", table).
					Int("row", i+1).
					Msg("skipping malformed ledger row")
				if uc.metrics != nil {
					uc.metrics.MalformedRowSkipped(table)
				}
				continue
			}
			continue
		}

		count += tx.ItemCount
		amount += tx.TotalAmount
	}

	return count, amount
}
