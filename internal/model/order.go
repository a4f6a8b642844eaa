package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one priced entry in an order. Immutable once built; a line with
// Quantity==0 and AddOnQty==0 is never created (filtered during order build).
type LineItem struct {
	Time      time.Time       `json:"time"`
	ItemID    string          `json:"item"`
	Quantity  int             `json:"quantity"`
	AddOnQty  int             `json:"add_on_qty"`
	LineTotal decimal.Decimal `json:"total"`
}

// Order is the transient result of building one request's input lines.
// It is discarded after a preview, or folded into the session ledger on commit.
type Order struct {
	Lines      []LineItem
	GrandTotal decimal.Decimal
}

// Empty reports whether no line survived the build (all rows skipped).
func (o Order) Empty() bool { return len(o.Lines) == 0 }

// LedgerSnapshot is a read-only view of a session's committed sales.
type LedgerSnapshot struct {
	Entries    []LineItem      `json:"entries"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// TrendSummary identifies the best-selling catalog item in a session,
// qualified by whether its sales carried add-ons.
type TrendSummary struct {
	ItemID   string `json:"item"`
	HasAddOn bool   `json:"has_add_on"`
	Quantity int    `json:"quantity"`
}
