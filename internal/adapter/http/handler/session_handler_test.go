package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kiraazuma/jijiken-potato-pos/internal/adapter/http/dto"
	"github.com/kiraazuma/jijiken-potato-pos/internal/domain"
)

type registerServiceStub struct {
	newSessionFn      func() string
	addItemFn         func(ctx context.Context, sessionID string, price int) error
	addBaseItemFn     func(ctx context.Context, sessionID string) (int, error)
	addSeminarItemFn  func(ctx context.Context, sessionID string) (int, error)
	authorizeFn       func(entered string) (bool, error)
	addDiscountItemFn func(ctx context.Context, sessionID, password string, price int) error
	resetBasketFn     func(ctx context.Context, sessionID string) error
	basketFn          func(ctx context.Context, sessionID string) (domain.Basket, error)
	confirmSaleFn     func(ctx context.Context, sessionID string) (*domain.Transaction, error)
}

func (s *registerServiceStub) NewSession() string {
	if s.newSessionFn != nil {
		return s.newSessionFn()
	}
	return "session-1"
}

func (s *registerServiceStub) AddItem(ctx context.Context, sessionID string, price int) error {
	if s.addItemFn != nil {
		return s.addItemFn(ctx, sessionID, price)
	}
	return nil
}

func (s *registerServiceStub) AddBaseItem(ctx context.Context, sessionID string) (int, error) {
	if s.addBaseItemFn != nil {
		return s.addBaseItemFn(ctx, sessionID)
	}
	return 300, nil
}

func (s *registerServiceStub) AddSeminarItem(ctx context.Context, sessionID string) (int, error) {
	if s.addSeminarItemFn != nil {
		return s.addSeminarItemFn(ctx, sessionID)
	}
	return 200, nil
}

func (s *registerServiceStub) AuthorizeDiscount(entered string) (bool, error) {
	if s.authorizeFn != nil {
		return s.authorizeFn(entered)
	}
	return false, nil
}

func (s *registerServiceStub) AddDiscountItem(ctx context.Context, sessionID, password string, price int) error {
	if s.addDiscountItemFn != nil {
		return s.addDiscountItemFn(ctx, sessionID, password, price)
	}
	return nil
}

func (s *registerServiceStub) ResetBasket(ctx context.Context, sessionID string) error {
	if s.resetBasketFn != nil {
		return s.resetBasketFn(ctx, sessionID)
	}
	return nil
}

func (s *registerServiceStub) Basket(ctx context.Context, sessionID string) (domain.Basket, error) {
	if s.basketFn != nil {
		return s.basketFn(ctx, sessionID)
	}
	return domain.Basket{}, nil
}

func (s *registerServiceStub) ConfirmSale(ctx context.Context, sessionID string) (*domain.Transaction, error) {
	if s.confirmSaleFn != nil {
		return s.confirmSaleFn(ctx, sessionID)
	}
	return &domain.Transaction{}, nil
}

// newSessionRequest builds a request with the chi URL param populated.
func newSessionRequest(method, target, sessionID string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", sessionID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestSessionHandler_Create(t *testing.T) {
	handler := NewSessionHandler(&registerServiceStub{
		newSessionFn: func() string { return "01HXYZ" },
	})

	req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.SessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.SessionID != "01HXYZ" {
		t.Fatalf("expected session ID 01HXYZ, got %s", resp.SessionID)
	}
}

func TestSessionHandler_AddItem_Success(t *testing.T) {
	var capturedPrice int
	handler := NewSessionHandler(&registerServiceStub{
		addItemFn: func(ctx context.Context, sessionID string, price int) error {
			capturedPrice = price
			return nil
		},
		basketFn: func(ctx context.Context, sessionID string) (domain.Basket, error) {
			return domain.Basket{250}, nil
		},
	})

	body, _ := json.Marshal(dto.AddItemRequest{Price: 250})
	req := newSessionRequest(http.MethodPost, "/sessions/s1/items", "s1", body)
	rec := httptest.NewRecorder()

	handler.AddItem(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if capturedPrice != 250 {
		t.Fatalf("expected price 250 passed through, got %d", capturedPrice)
	}

	var resp dto.BasketResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalCount != 1 || resp.TotalAmount != 250 {
		t.Fatalf("unexpected basket view %+v", resp)
	}
}

func TestSessionHandler_AddItem_InvalidJSON(t *testing.T) {
	handler := NewSessionHandler(&registerServiceStub{
		addItemFn: func(ctx context.Context, sessionID string, price int) error {
			t.Fatal("AddItem should not be called for invalid payload")
			return nil
		},
	})

	req := newSessionRequest(http.MethodPost, "/sessions/s1/items", "s1", []byte("{invalid json"))
	rec := httptest.NewRecorder()

	handler.AddItem(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSessionHandler_AddItem_InvalidPrice(t *testing.T) {
	handler := NewSessionHandler(&registerServiceStub{
		addItemFn: func(ctx context.Context, sessionID string, price int) error {
			return domain.ErrInvalidPrice
		},
	})

	body, _ := json.Marshal(dto.AddItemRequest{Price: -5})
	req := newSessionRequest(http.MethodPost, "/sessions/s1/items", "s1", body)
	rec := httptest.NewRecorder()

	handler.AddItem(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSessionHandler_AuthorizeDiscount(t *testing.T) {
	tests := []struct {
		name           string
		password       string
		authorized     bool
		err            error
		wantStatus     int
		wantAuthorized bool
	}{
		{name: "correct password", password: "secret", authorized: true, wantStatus: http.StatusOK, wantAuthorized: true},
		{name: "empty password", password: "", authorized: false, wantStatus: http.StatusOK, wantAuthorized: false},
		{name: "wrong password", password: "guess", err: domain.ErrAuthorizationMismatch, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSessionHandler(&registerServiceStub{
				authorizeFn: func(entered string) (bool, error) {
					return tt.authorized, tt.err
				},
			})

			body, _ := json.Marshal(dto.AuthorizeDiscountRequest{Password: tt.password})
			req := newSessionRequest(http.MethodPost, "/sessions/s1/discount", "s1", body)
			rec := httptest.NewRecorder()

			handler.AuthorizeDiscount(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}

			if tt.wantStatus == http.StatusOK {
				var resp dto.AuthorizeDiscountResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Authorized != tt.wantAuthorized {
					t.Fatalf("expected authorized=%v, got %v", tt.wantAuthorized, resp.Authorized)
				}
			}
		})
	}
}

func TestSessionHandler_Confirm_Success(t *testing.T) {
	handler := NewSessionHandler(&registerServiceStub{
		confirmSaleFn: func(ctx context.Context, sessionID string) (*domain.Transaction, error) {
			return &domain.Transaction{
				Timestamp:   "13:45:30",
				Date:        "2025-11-21",
				ItemCount:   3,
				TotalAmount: 800,
				Detail:      "200円×1, 300円×2",
			}, nil
		},
	})

	req := newSessionRequest(http.MethodPost, "/sessions/s1/confirm", "s1", nil)
	rec := httptest.NewRecorder()

	handler.Confirm(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 3 || resp.Amount != 800 || resp.Detail != "200円×1, 300円×2" {
		t.Fatalf("unexpected transaction %+v", resp)
	}
}

func TestSessionHandler_Confirm_EmptyBasket(t *testing.T) {
	handler := NewSessionHandler(&registerServiceStub{
		confirmSaleFn: func(ctx context.Context, sessionID string) (*domain.Transaction, error) {
			return nil, domain.ErrEmptyBasket
		},
	})

	req := newSessionRequest(http.MethodPost, "/sessions/s1/confirm", "s1", nil)
	rec := httptest.NewRecorder()

	handler.Confirm(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSessionHandler_Basket(t *testing.T) {
	handler := NewSessionHandler(&registerServiceStub{
		basketFn: func(ctx context.Context, sessionID string) (domain.Basket, error) {
			return domain.Basket{300, 200, 300}, nil
		},
	})

	req := newSessionRequest(http.MethodGet, "/sessions/s1/basket", "s1", nil)
	rec := httptest.NewRecorder()

	handler.Basket(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.BasketResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalCount != 3 || resp.TotalAmount != 800 {
		t.Fatalf("unexpected basket view %+v", resp)
	}
	if len(resp.Lines) != 2 {
		t.Fatalf("expected 2 grouped lines, got %v", resp.Lines)
	}
}
