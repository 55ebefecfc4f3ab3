package handler

import (
	"context"
	"net/http"
)

// SaleService defines the behavior needed by SaleHandler.
type SaleService interface {
	VoidLastSale(ctx context.Context) error
}

// SaleHandler handles ledger-level sale operations.
type SaleHandler struct {
	register SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(register SaleService) *SaleHandler {
	return &SaleHandler{register: register}
}

// VoidLast deletes the most recently confirmed sale of the day. The
// deletion is permanent; there is no confirmation step or undo log.
func (h *SaleHandler) VoidLast(w http.ResponseWriter, r *http.Request) {
	if err := h.register.VoidLastSale(r.Context()); err != nil {
		writeError(w, mapDomainError(err), "failed to void last sale", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "voided"})
}
