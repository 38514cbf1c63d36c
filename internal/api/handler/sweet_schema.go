package handler

import "github.com/sweetshop/sweet-shop-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// createSweetRequest uses pointers for price and quantity so that an explicit
// zero survives the required check; both values are valid at zero.
type createSweetRequest struct {
	Name        string   `json:"name"     validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       *float64 `json:"price"    validate:"required,gte=0"`
	Quantity    *int64   `json:"quantity" validate:"required,gte=0"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}

// updateSweetRequest is a partial patch: nil fields are left untouched.
type updateSweetRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"    validate:"omitempty,gte=0"`
	Quantity    *int64   `json:"quantity" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

type sweetResponse struct {
	Message string        `json:"message"`
	Sweet   *domain.Sweet `json:"sweet"`
}

type purchaseResponse struct {
	Message   string `json:"message"`
	Remaining int64  `json:"remaining"`
}

type restockResponse struct {
	Message     string `json:"message"`
	NewQuantity int64  `json:"newQuantity"`
}
