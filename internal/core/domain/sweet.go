package domain

import (
	"errors"
	"time"
)

var ErrSweetNotFound = errors.New("sweet not found")
var ErrSweetExists = errors.New("sweet with this name already exists")
var ErrOutOfStock = errors.New("out of stock")
var ErrForbidden = errors.New("access denied: admins only")
var ErrMissingSweetFields = errors.New("name, category, price, and quantity are required")
var ErrNegativeValues = errors.New("price and quantity cannot be negative")

// Sweet is a purchasable catalog item.
//
// Price and Quantity are never negative: creation and updates validate both,
// and purchase decrements only through a conditional store update.
type Sweet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int64     `json:"quantity"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InStock reports whether at least one unit is available for purchase.
func (s *Sweet) InStock() bool {
	return s.Quantity > 0
}
