package dto

import (
	"github.com/kiraazuma/jijiken-potato-pos/internal/domain"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SessionResponse is returned when a register session is created.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// BasketResponse is the read-only view of a session basket.
type BasketResponse struct {
	Lines       []string `json:"lines"`
	TotalCount  int      `json:"total_count"`
	TotalAmount int      `json:"total_amount"`
}

// BasketFromDomain converts a basket to its view model.
func BasketFromDomain(b domain.Basket) BasketResponse {
	return BasketResponse{
		Lines:       b.Lines(),
		TotalCount:  b.Count(),
		TotalAmount: b.Total(),
	}
}

// RegisterConfigResponse carries the pricing defaults a register UI needs
// to prefill its buttons and inputs.
type RegisterConfigResponse struct {
	BasePrice        int `json:"base_price"`
	SeminarPrice     int `json:"seminar_price"`
	DefaultSalePrice int `json:"default_sale_price"`
	MaxItemPrice     int `json:"max_item_price"`
}

// AuthorizeDiscountResponse reports whether the discount input unlocks.
type AuthorizeDiscountResponse struct {
	Authorized bool `json:"authorized"`
}

// TransactionResponse is one confirmed sale.
type TransactionResponse struct {
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Amount    int    `json:"amount"`
	Detail    string `json:"detail"`
}

// TransactionFromDomain converts a transaction to its view model.
func TransactionFromDomain(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		Timestamp: t.Timestamp,
		Date:      t.Date,
		Count:     t.ItemCount,
		Amount:    t.TotalAmount,
		Detail:    t.Detail,
	}
}

// TodayStatsResponse is the running total for today.
type TodayStatsResponse struct {
	Count  int `json:"count"`
	Amount int `json:"amount"`
}

// PeriodStatsResponse is the aggregate over a trailing window of days.
// The dates are null when no day ledgers exist yet.
type PeriodStatsResponse struct {
	Count     int     `json:"count"`
	Amount    int     `json:"amount"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// PeriodStatsFromDomain converts period stats to their view model.
func PeriodStatsFromDomain(s domain.PeriodStats) PeriodStatsResponse {
	resp := PeriodStatsResponse{
		Count:  s.ItemCount,
		Amount: s.TotalAmount,
	}
	if s.StartDate != "" {
		resp.StartDate = &s.StartDate
	}
	if s.EndDate != "" {
		resp.EndDate = &s.EndDate
	}
	return resp
}
