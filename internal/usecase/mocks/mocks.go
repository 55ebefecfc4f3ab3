package mocks

import (
	"context"
	"sync"

	"github.com/kiraazuma/jijiken-potato-pos/internal/domain"
)

// MockLedgerStore is a mock implementation of LedgerStore backed by an
// in-memory table map. Individual methods can be overridden via the Func
// fields.
type MockLedgerStore struct {
	mu     sync.RWMutex
	tables map[string][][]string
	order  []string

	EnsureTableFunc func(ctx context.Context, name string, header []string) error
	AppendRowFunc   func(ctx context.Context, table string, row []string) error
	ReadAllRowsFunc func(ctx context.Context, table string) ([][]string, error)
	DeleteRowFunc   func(ctx context.Context, table string, index int) error
	ListTablesFunc  func(ctx context.Context) ([]string, error)
}

func NewMockLedgerStore() *MockLedgerStore {
	return &MockLedgerStore{
		tables: make(map[string][][]string),
	}
}

// Seed installs a table with the given rows (including the header row).
func (m *MockLedgerStore) Seed(name string, rows [][]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[name]; !ok {
		m.order = append(m.order, name)
	}
	m.tables[name] = rows
}

// RowCount returns the number of rows (header included) in a table, or 0
// if the table does not exist.
func (m *MockLedgerStore) RowCount(name string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables[name])
}

func (m *MockLedgerStore) EnsureTable(ctx context.Context, name string, header []string) error {
	if m.EnsureTableFunc != nil {
		return m.EnsureTableFunc(ctx, name, header)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[name]; ok {
		return nil
	}
	m.tables[name] = [][]string{append([]string(nil), header...)}
	m.order = append(m.order, name)
	return nil
}

func (m *MockLedgerStore) AppendRow(ctx context.Context, table string, row []string) error {
	if m.AppendRowFunc != nil {
		return m.AppendRowFunc(ctx, table, row)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.tables[table]
	if !ok {
		return domain.ErrTableNotFound
	}
	m.tables[table] = append(rows, append([]string(nil), row...))
	return nil
}

func (m *MockLedgerStore) ReadAllRows(ctx context.Context, table string) ([][]string, error) {
	if m.ReadAllRowsFunc != nil {
		return m.ReadAllRowsFunc(ctx, table)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	rows, ok := m.tables[table]
	if !ok {
		return nil, domain.ErrTableNotFound
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (m *MockLedgerStore) DeleteRow(ctx context.Context, table string, index int) error {
	if m.DeleteRowFunc != nil {
		return m.DeleteRowFunc(ctx, table, index)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.tables[table]
	if !ok {
		return domain.ErrTableNotFound
	}
	if index < 0 || index >= len(rows) {
		return domain.ErrRowNotFound
	}
	m.tables[table] = append(rows[:index], rows[index+1:]...)
	return nil
}

func (m *MockLedgerStore) ListTables(ctx context.Context) ([]string, error) {
	if m.ListTablesFunc != nil {
		return m.ListTablesFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.order...), nil
}

// MockBasketStore is a mock implementation of BasketStore.
type MockBasketStore struct {
	mu      sync.RWMutex
	baskets map[string][]int

	AppendFunc func(ctx context.Context, sessionID string, price int) error
	GetFunc    func(ctx context.Context, sessionID string) (domain.Basket, error)
	ClearFunc  func(ctx context.Context, sessionID string) error
}

func NewMockBasketStore() *MockBasketStore {
	return &MockBasketStore{
		baskets: make(map[string][]int),
	}
}

func (m *MockBasketStore) Append(ctx context.Context, sessionID string, price int) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, sessionID, price)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.baskets[sessionID] = append(m.baskets[sessionID], price)
	return nil
}

func (m *MockBasketStore) Get(ctx context.Context, sessionID string) (domain.Basket, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, sessionID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append(domain.Basket(nil), m.baskets[sessionID]...), nil
}

func (m *MockBasketStore) Clear(ctx context.Context, sessionID string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, sessionID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.baskets, sessionID)
	return nil
}
