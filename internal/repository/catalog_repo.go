package repository

import (
	"context"
	"errors"

	"shakepos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrItemNotFound is returned when an identifier is not in the catalog.
// Callers that follow the permissive pricing policy map it to a zero price.
var ErrItemNotFound = errors.New("catalog item not found")

// CatalogRepository defines read access to the fixed item catalog.
// Services depend on this interface, not on a concrete implementation,
// so the register runs identically against the static seed or Postgres.
type CatalogRepository interface {
	All(ctx context.Context) ([]model.CatalogItem, error)
	FindByID(ctx context.Context, id string) (*model.CatalogItem, error)
}

// ─── Static implementation ───────────────────────────────────────────────────

type staticCatalogRepo struct {
	items []model.CatalogItem
	byID  map[string]model.CatalogItem
}

// NewStaticCatalogRepository serves the given items from memory. Used when no
// DATABASE_URL is configured, and by unit tests.
func NewStaticCatalogRepository(items []model.CatalogItem) CatalogRepository {
	byID := make(map[string]model.CatalogItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return &staticCatalogRepo{items: items, byID: byID}
}

func (r *staticCatalogRepo) All(_ context.Context) ([]model.CatalogItem, error) {
	out := make([]model.CatalogItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *staticCatalogRepo) FindByID(_ context.Context, id string) (*model.CatalogItem, error) {
	it, ok := r.byID[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &it, nil
}

// DefaultCatalog builds the stand's fixed menu. Every drink shares the same
// configured price in the observed instance, but each row carries its own —
// price changes are per-item configuration.
func DefaultCatalog(drinkPrice, addOnPrice decimal.Decimal) []model.CatalogItem {
	return []model.CatalogItem{
		{ID: "buko_shake", Name: "Buko shake", UnitPrice: drinkPrice},
		{ID: "mango_shake", Name: "Mango shake", UnitPrice: drinkPrice},
		{ID: "banana_shake", Name: "Banana shake", UnitPrice: drinkPrice},
		{ID: "halo_halo", Name: "Halo-halo", UnitPrice: drinkPrice},
		{ID: model.AddOnID, Name: "Add-On", UnitPrice: addOnPrice},
	}
}

// ─── GORM implementation ─────────────────────────────────────────────────────

type gormCatalogRepo struct{ db *gorm.DB }

// NewGormCatalogRepository reads the catalog from the catalog_items table.
// Seeding and migration happen at startup (infra.NewDatabase).
func NewGormCatalogRepository(db *gorm.DB) CatalogRepository {
	return &gormCatalogRepo{db: db}
}

func (r *gormCatalogRepo) All(ctx context.Context) ([]model.CatalogItem, error) {
	var items []model.CatalogItem
	err := r.db.WithContext(ctx).Order("id").Find(&items).Error
	return items, err
}

func (r *gormCatalogRepo) FindByID(ctx context.Context, id string) (*model.CatalogItem, error) {
	var it model.CatalogItem
	if err := r.db.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &it, nil
}
