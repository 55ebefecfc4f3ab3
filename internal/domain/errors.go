package domain

import "errors"

var (
	// Basket errors
	ErrEmptyBasket  = errors.New("basket is empty")
	ErrInvalidPrice = errors.New("price is out of range")

	// Ledger errors
	ErrEmptyLedger   = errors.New("no transactions recorded today")
	ErrTableNotFound = errors.New("ledger table not found")
	ErrRowNotFound   = errors.New("ledger row not found")
	ErrMalformedRow  = errors.New("malformed ledger row")

	// Discount errors
	ErrAuthorizationMismatch = errors.New("discount password does not match")
)
