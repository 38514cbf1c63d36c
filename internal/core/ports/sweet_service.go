package ports

import (
	"context"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

// CreateSweetInput carries all data needed to add a catalog item.
type CreateSweetInput struct {
	Name        string
	Category    string
	Price       float64
	Quantity    int64
	Description string
	Image       string
}

// PurchaseResult is returned after a successful purchase.
type PurchaseResult struct {
	Name      string
	Remaining int64
}

// RestockResult is returned after a successful restock.
type RestockResult struct {
	Name        string
	NewQuantity int64
}

// SweetService defines the catalog use-cases.
type SweetService interface {
	Create(ctx context.Context, input CreateSweetInput) (*domain.Sweet, error)
	List(ctx context.Context) ([]*domain.Sweet, error)
	Search(ctx context.Context, filter SweetFilter) ([]*domain.Sweet, error)
	Purchase(ctx context.Context, id string) (*PurchaseResult, error)
	Restock(ctx context.Context, id string, amount int64) (*RestockResult, error)
	Update(ctx context.Context, id string, patch SweetPatch) (*domain.Sweet, error)
	Remove(ctx context.Context, id string) error
}
