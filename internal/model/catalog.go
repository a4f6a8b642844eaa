package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddOnID is the catalog entry used to price add-ons attached to any drink.
const AddOnID = "add_on"

// CatalogItem maps an item identifier to its display name and unit price.
// The set is fixed for the process lifetime; prices are per-item data and
// must never be treated as a shared constant.
type CatalogItem struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"not null" json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}
