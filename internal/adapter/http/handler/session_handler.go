package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kiraazuma/jijiken-potato-pos/internal/adapter/http/dto"
	"github.com/kiraazuma/jijiken-potato-pos/internal/domain"
)

// RegisterService defines the behavior needed by SessionHandler.
type RegisterService interface {
	NewSession() string
	AddItem(ctx context.Context, sessionID string, price int) error
	AddBaseItem(ctx context.Context, sessionID string) (int, error)
	AddSeminarItem(ctx context.Context, sessionID string) (int, error)
	AuthorizeDiscount(entered string) (bool, error)
	AddDiscountItem(ctx context.Context, sessionID, password string, price int) error
	ResetBasket(ctx context.Context, sessionID string) error
	Basket(ctx context.Context, sessionID string) (domain.Basket, error)
	ConfirmSale(ctx context.Context, sessionID string) (*domain.Transaction, error)
}

// SessionHandler handles register session HTTP requests.
type SessionHandler struct {
	register RegisterService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(register RegisterService) *SessionHandler {
	return &SessionHandler{register: register}
}

// Create mints a new register session.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	id := h.register.NewSession()
	writeJSON(w, http.StatusCreated, dto.SessionResponse{SessionID: id})
}

// Basket returns the current basket view.
func (h *SessionHandler) Basket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	basket, err := h.register.Basket(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to read basket", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BasketFromDomain(basket))
}

// AddItem adds one item at the sale price in the request body.
func (h *SessionHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.register.AddItem(r.Context(), id, req.Price); err != nil {
		writeError(w, mapDomainError(err), "failed to add item", err.Error())
		return
	}

	h.respondWithBasket(w, r, id)
}

// AddBaseItem adds one item at the configured base price.
func (h *SessionHandler) AddBaseItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.register.AddBaseItem(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to add item", err.Error())
		return
	}

	h.respondWithBasket(w, r, id)
}

// AddSeminarItem adds one item at the configured seminar price.
func (h *SessionHandler) AddSeminarItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.register.AddSeminarItem(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to add item", err.Error())
		return
	}

	h.respondWithBasket(w, r, id)
}

// AuthorizeDiscount checks the special-discount password.
func (h *SessionHandler) AuthorizeDiscount(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthorizeDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	ok, err := h.register.AuthorizeDiscount(req.Password)
	if err != nil {
		writeError(w, mapDomainError(err), "authorization failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AuthorizeDiscountResponse{Authorized: ok})
}

// AddDiscountItem adds one item at a password-gated discount price.
func (h *SessionHandler) AddDiscountItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.AddDiscountItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.register.AddDiscountItem(r.Context(), id, req.Password, req.Price); err != nil {
		writeError(w, mapDomainError(err), "failed to add discount item", err.Error())
		return
	}

	h.respondWithBasket(w, r, id)
}

// Reset clears the session basket.
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.register.ResetBasket(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to reset basket", err.Error())
		return
	}

	h.respondWithBasket(w, r, id)
}

// Confirm persists the basket as one transaction row and clears it.
func (h *SessionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tx, err := h.register.ConfirmSale(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to confirm sale", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(tx))
}

func (h *SessionHandler) respondWithBasket(w http.ResponseWriter, r *http.Request, id string) {
	basket, err := h.register.Basket(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to read basket", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.BasketFromDomain(basket))
}
