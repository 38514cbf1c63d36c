package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-shop-api/internal/api/metrics"
	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

// SweetService implements the catalog use-cases.
type SweetService struct {
	repo ports.SweetRepository
	log  zerolog.Logger
}

func NewSweetService(repo ports.SweetRepository, log zerolog.Logger) *SweetService {
	return &SweetService{repo: repo, log: log}
}

// Create adds a new catalog item. Name must be unique; price and quantity
// must be non-negative.
func (s *SweetService) Create(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	if input.Name == "" || input.Category == "" {
		return nil, domain.ErrMissingSweetFields
	}
	if input.Price < 0 || input.Quantity < 0 {
		return nil, domain.ErrNegativeValues
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Sweet{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	metrics.SweetsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.log.Info().Str("sweet_id", created.ID).Str("name", created.Name).Msg("sweet created")

	return created, nil
}

// List returns the whole catalog in store order.
func (s *SweetService) List(ctx context.Context) ([]*domain.Sweet, error) {
	return s.repo.List(ctx)
}

// Search returns the catalog items matching all given filters.
func (s *SweetService) Search(ctx context.Context, filter ports.SweetFilter) ([]*domain.Sweet, error) {
	return s.repo.Search(ctx, filter)
}

// Purchase decrements stock by one. The decrement is a single conditional
// store update, so two concurrent purchases of the last unit cannot both
// succeed.
func (s *SweetService) Purchase(ctx context.Context, id string) (*ports.PurchaseResult, error) {
	sweet, err := s.repo.DecrementStock(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOutOfStock):
			metrics.PurchasesTotal.WithLabelValues("out_of_stock").Inc()
		case errors.Is(err, domain.ErrSweetNotFound):
			metrics.PurchasesTotal.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}

	metrics.PurchasesTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("sweet_id", sweet.ID).Int64("remaining", sweet.Quantity).Msg("sweet purchased")

	return &ports.PurchaseResult{Name: sweet.Name, Remaining: sweet.Quantity}, nil
}

// Restock adds amount units of stock. Non-positive amounts are treated as
// zero, matching the permissive admin contract.
func (s *SweetService) Restock(ctx context.Context, id string, amount int64) (*ports.RestockResult, error) {
	if amount < 0 {
		amount = 0
	}

	sweet, err := s.repo.IncrementStock(ctx, id, amount)
	if err != nil {
		return nil, err
	}

	metrics.RestockedUnitsTotal.Add(float64(amount))
	s.log.Info().Str("sweet_id", sweet.ID).Int64("amount", amount).Int64("quantity", sweet.Quantity).Msg("sweet restocked")

	return &ports.RestockResult{Name: sweet.Name, NewQuantity: sweet.Quantity}, nil
}

// Update applies a partial change to a catalog item. The same non-negative
// checks as Create apply to any price or quantity in the patch.
func (s *SweetService) Update(ctx context.Context, id string, patch ports.SweetPatch) (*domain.Sweet, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, domain.ErrMissingSweetFields
	}
	if patch.Category != nil && *patch.Category == "" {
		return nil, domain.ErrMissingSweetFields
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, domain.ErrNegativeValues
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return nil, domain.ErrNegativeValues
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("sweet_id", updated.ID).Msg("sweet updated")

	return updated, nil
}

// Remove deletes a catalog item.
func (s *SweetService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("sweet_id", id).Msg("sweet deleted")

	return nil
}
