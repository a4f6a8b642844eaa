package service

import (
	"context"
	"strings"

	"shakepos/internal/model"
	"shakepos/internal/repository"

	"github.com/shopspring/decimal"
)

// CatalogService answers price and display-name lookups for the fixed menu.
// The catalog is immutable for the process lifetime, so it is loaded once at
// construction; lookups never touch the repository again and never fail.
type CatalogService interface {
	// PriceOf returns the unit price for an item, or zero for unknown
	// identifiers. Unknown items are priced at zero, never rejected.
	PriceOf(id string) decimal.Decimal
	// DisplayName returns the catalog name for known items, and a humanized
	// form of the identifier ("buko_shake" → "Buko shake") otherwise.
	DisplayName(id string) string
	List() []model.CatalogItem
}

type catalogService struct {
	items []model.CatalogItem
	byID  map[string]model.CatalogItem
}

func NewCatalogService(ctx context.Context, repo repository.CatalogRepository) (CatalogService, error) {
	items, err := repo.All(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.CatalogItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return &catalogService{items: items, byID: byID}, nil
}

func (s *catalogService) PriceOf(id string) decimal.Decimal {
	if it, ok := s.byID[id]; ok {
		return it.UnitPrice
	}
	return decimal.Zero
}

func (s *catalogService) DisplayName(id string) string {
	if it, ok := s.byID[id]; ok {
		return it.Name
	}
	return humanize(id)
}

func (s *catalogService) List() []model.CatalogItem {
	out := make([]model.CatalogItem, len(s.items))
	copy(out, s.items)
	return out
}

// humanize turns an item identifier into a display name: underscores become
// spaces and the first letter is upper-cased.
func humanize(id string) string {
	name := strings.ReplaceAll(id, "_", " ")
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
