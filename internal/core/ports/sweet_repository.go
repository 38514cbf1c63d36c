package ports

import (
	"context"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

// SweetFilter carries the optional search constraints. Zero values impose no
// constraint; Name and Category match as case-insensitive substrings and the
// price bounds are inclusive.
type SweetFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// SweetPatch holds the fields an admin update may change. Nil pointers leave
// the stored value untouched.
type SweetPatch struct {
	Name        *string
	Category    *string
	Price       *float64
	Quantity    *int64
	Description *string
	Image       *string
}

// SweetRepository defines persistence operations for catalog items.
type SweetRepository interface {
	Create(ctx context.Context, sweet *domain.Sweet) (*domain.Sweet, error)
	FindByID(ctx context.Context, id string) (*domain.Sweet, error)
	List(ctx context.Context) ([]*domain.Sweet, error)
	Search(ctx context.Context, filter SweetFilter) ([]*domain.Sweet, error)
	// DecrementStock atomically decrements quantity by one, but only while
	// quantity is still positive. It returns the updated document,
	// domain.ErrSweetNotFound when id does not exist, or domain.ErrOutOfStock
	// when the item exists with no stock left.
	DecrementStock(ctx context.Context, id string) (*domain.Sweet, error)
	// IncrementStock atomically adds amount to quantity and returns the
	// updated document.
	IncrementStock(ctx context.Context, id string, amount int64) (*domain.Sweet, error)
	Update(ctx context.Context, id string, patch SweetPatch) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
}
