package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kiraazuma/jijiken-potato-pos/internal/domain"
)

// LedgerStore implements usecase.LedgerStore on top of two relations:
// ledger_tables (one row per logical table) and ledger_rows (one row per
// spreadsheet-style cell row, dense row_index per table, header at 0).
//
// All payload columns are TEXT so manually edited ledgers survive reads;
// the aggregation layer parses them tolerantly.
type LedgerStore struct {
	pool *pgxpool.Pool
}

// NewLedgerStore creates a new LedgerStore.
func NewLedgerStore(pool *pgxpool.Pool) *LedgerStore {
	return &LedgerStore{pool: pool}
}

// EnsureTable creates the named table with its header row if it does not
// exist yet. Existing tables are left untouched.
func (s *LedgerStore) EnsureTable(ctx context.Context, name string, header []string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin ensure table: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`INSERT INTO ledger_tables (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
		name,
	)
	if err != nil {
		return fmt.Errorf("insert ledger table: %w", err)
	}

	if tag.RowsAffected() > 0 {
		cells := padRow(header)
		_, err = tx.Exec(ctx,
			`INSERT INTO ledger_rows (table_name, row_index, ts, day, item_count, total_amount, detail)
			 VALUES ($1, 0, $2, $3, $4, $5, $6)`,
			name, cells[0], cells[1], cells[2], cells[3], cells[4],
		)
		if err != nil {
			return fmt.Errorf("insert header row: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// AppendRow appends one row to the named table. Appends on the same table
// are serialized via a row lock on ledger_tables, so row_index stays dense
// and append order matches confirmation order.
func (s *LedgerStore) AppendRow(ctx context.Context, table string, row []string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockTable(ctx, tx, table); err != nil {
		return err
	}

	var next int
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(row_index) + 1, 0) FROM ledger_rows WHERE table_name = $1`,
		table,
	).Scan(&next)
	if err != nil {
		return fmt.Errorf("next row index: %w", err)
	}

	cells := padRow(row)
	_, err = tx.Exec(ctx,
		`INSERT INTO ledger_rows (table_name, row_index, ts, day, item_count, total_amount, detail)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		table, next, cells[0], cells[1], cells[2], cells[3], cells[4],
	)
	if err != nil {
		return fmt.Errorf("insert row: %w", err)
	}

	return tx.Commit(ctx)
}

// ReadAllRows returns every row of the named table in append order, the
// header row first.
func (s *LedgerStore) ReadAllRows(ctx context.Context, table string) ([][]string, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM ledger_tables WHERE name = $1)`,
		table,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check table: %w", err)
	}
	if !exists {
		return nil, domain.ErrTableNotFound
	}

	rows, err := s.pool.Query(ctx,
		`SELECT ts, day, item_count, total_amount, detail
		 FROM ledger_rows WHERE table_name = $1 ORDER BY row_index`,
		table,
	)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		cells := make([]string, 5)
		if err := rows.Scan(&cells[0], &cells[1], &cells[2], &cells[3], &cells[4]); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return out, nil
}

// DeleteRow removes the row at the given index. Remaining higher rows are
// shifted down so indexes stay dense and aligned with ReadAllRows order.
func (s *LedgerStore) DeleteRow(ctx context.Context, table string, index int) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockTable(ctx, tx, table); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM ledger_rows WHERE table_name = $1 AND row_index = $2`,
		table, index,
	)
	if err != nil {
		return fmt.Errorf("delete row: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRowNotFound
	}

	_, err = tx.Exec(ctx,
		`UPDATE ledger_rows SET row_index = row_index - 1
		 WHERE table_name = $1 AND row_index > $2`,
		table, index,
	)
	if err != nil {
		return fmt.Errorf("compact row indexes: %w", err)
	}

	return tx.Commit(ctx)
}

// ListTables returns the names of every table in the store.
func (s *LedgerStore) ListTables(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT name FROM ledger_tables ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tables: %w", err)
	}

	return names, nil
}

func lockTable(ctx context.Context, tx pgx.Tx, table string) error {
	var name string
	err := tx.QueryRow(ctx,
		`SELECT name FROM ledger_tables WHERE name = $1 FOR UPDATE`,
		table,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTableNotFound
		}
		return fmt.Errorf("lock table: %w", err)
	}
	return nil
}

// padRow widens or truncates a row to the five ledger columns.
func padRow(row []string) []string {
	cells := make([]string, 5)
	copy(cells, row)
	return cells
}
