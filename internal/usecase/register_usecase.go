package usecase

import (
	"context"

	"github.com/kiraazuma/jijiken-potato-pos/internal/domain"
)

// RegisterConfig holds the stall's pricing and discount settings.
type RegisterConfig struct {
	BasePrice        int
	SeminarPrice     int
	MaxItemPrice     int
	DiscountPassword string
}

// RegisterUseCase owns the basket lifecycle and mediates every mutation of
// persisted sales data.
type RegisterUseCase struct {
	ledger  LedgerStore
	baskets BasketStore
	idGen   IDGenerator
	clock   Clock
	cfg     RegisterConfig
	metrics MetricsRecorder
}

// NewRegisterUseCase creates a new RegisterUseCase. metrics may be nil.
func NewRegisterUseCase(ledger LedgerStore, baskets BasketStore, idGen IDGenerator, clock Clock, cfg RegisterConfig, metrics MetricsRecorder) *RegisterUseCase {
	return &RegisterUseCase{
		ledger:  ledger,
		baskets: baskets,
		idGen:   idGen,
		clock:   clock,
		cfg:     cfg,
		metrics: metrics,
	}
}

// NewSession mints a fresh session ID. The basket for a new session is
// empty until the first AddItem.
func (uc *RegisterUseCase) NewSession() string {
	return uc.idGen.Generate()
}

// AddItem appends one item at the given unit price to the session basket.
func (uc *RegisterUseCase) AddItem(ctx context.Context, sessionID string, price int) error {
	if price < 0 || price > uc.cfg.MaxItemPrice {
		return domain.ErrInvalidPrice
	}

	if err := uc.baskets.Append(ctx, sessionID, price); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.ItemAdded(price)
	}
	return nil
}

// AddBaseItem adds one item at the configured base price.
func (uc *RegisterUseCase) AddBaseItem(ctx context.Context, sessionID string) (int, error) {
	return uc.cfg.BasePrice, uc.AddItem(ctx, sessionID, uc.cfg.BasePrice)
}

// AddSeminarItem adds one item at the configured seminar price.
func (uc *RegisterUseCase) AddSeminarItem(ctx context.Context, sessionID string) (int, error) {
	return uc.cfg.SeminarPrice, uc.AddItem(ctx, sessionID, uc.cfg.SeminarPrice)
}

// AuthorizeDiscount checks the special-discount password. An empty input
// is a no-op: not authorized, but not a failure either. There is no
// attempt limiting.
func (uc *RegisterUseCase) AuthorizeDiscount(entered string) (bool, error) {
	if entered == "" {
		return false, nil
	}
	if entered != uc.cfg.DiscountPassword {
		if uc.metrics != nil {
			uc.metrics.AuthFailure()
		}
		return false, domain.ErrAuthorizationMismatch
	}
	return true, nil
}

// AddDiscountItem adds one item at a special-discount price after
// validating the password. Unlike AuthorizeDiscount, an empty password is
// rejected here: the add must be explicitly authorized.
func (uc *RegisterUseCase) AddDiscountItem(ctx context.Context, sessionID, password string, price int) error {
	ok, err := uc.AuthorizeDiscount(password)
	if err != nil {
		return err
	}
	if !ok {
		if uc.metrics != nil {
			uc.metrics.AuthFailure()
		}
		return domain.ErrAuthorizationMismatch
	}

	return uc.AddItem(ctx, sessionID, price)
}

// ResetBasket clears the session basket. Irreversible.
func (uc *RegisterUseCase) ResetBasket(ctx context.Context, sessionID string) error {
	return uc.baskets.Clear(ctx, sessionID)
}

// Basket returns the current session basket.
func (uc *RegisterUseCase) Basket(ctx context.Context, sessionID string) (domain.Basket, error) {
	return uc.baskets.Get(ctx, sessionID)
}

// ConfirmSale collapses the basket into one transaction row, appends it to
// today's day ledger (creating the ledger with its header on first sale of
// the day) and clears the basket. The basket is cleared only after the
// append succeeded, so a store failure leaves it intact.
func (uc *RegisterUseCase) ConfirmSale(ctx context.Context, sessionID string) (*domain.Transaction, error) {
	basket, err := uc.baskets.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if basket.IsEmpty() {
		return nil, domain.ErrEmptyBasket
	}

	tx := domain.NewTransaction(uc.clock.Now(), basket)

	if err := uc.ledger.EnsureTable(ctx, tx.Date, domain.LedgerHeader); err != nil {
		return nil, err
	}
	if err := uc.ledger.AppendRow(ctx, tx.Date, tx.Row()); err != nil {
		return nil, err
	}

	if err := uc.baskets.Clear(ctx, sessionID); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.SaleConfirmed(tx.ItemCount, tx.TotalAmount)
	}
	return &tx, nil
}

// VoidLastSale deletes the most recently confirmed transaction of today's
// day ledger. The deletion is permanent and leaves no audit trail. The
// in-memory basket is untouched.
func (uc *RegisterUseCase) VoidLastSale(ctx context.Context) error {
	table := uc.clock.Now().Format(domain.DateLayout)

	if err := uc.ledger.EnsureTable(ctx, table, domain.LedgerHeader); err != nil {
		return err
	}

	rows, err := uc.ledger.ReadAllRows(ctx, table)
	if err != nil {
		return err
	}
	if len(rows) <= 1 {
		// Header only: nothing confirmed today.
		return domain.ErrEmptyLedger
	}

	if err := uc.ledger.DeleteRow(ctx, table, len(rows)-1); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.SaleVoided()
	}
	return nil
}
