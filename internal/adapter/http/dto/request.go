package dto

// AddItemRequest adds one item at an arbitrary sale price.
type AddItemRequest struct {
	Price int `json:"price"`
}

// AddDiscountItemRequest adds one item at a special-discount price. The
// password is checked on every call; the server keeps no unlock state.
type AddDiscountItemRequest struct {
	Password string `json:"password"`
	Price    int    `json:"price"`
}

// AuthorizeDiscountRequest checks the special-discount password so the UI
// can unlock the discount price input.
type AuthorizeDiscountRequest struct {
	Password string `json:"password"`
}
