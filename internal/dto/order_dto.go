package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// OrderRequest is the strongly typed form of the register's parallel input
// arrays. Quantities are clamped (negative or unparsable → 0) ONCE, at the
// boundary that builds this struct; nothing downstream re-coerces.
type OrderRequest struct {
	Items       []string        `json:"items"`
	Quantities  []int           `json:"quantities"`
	AddOnQtys   []int           `json:"add_on_qtys"`
	AmountGiven decimal.Decimal `json:"amount_given" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LineItemResponse struct {
	Time     string          `json:"time"` // HH:MM:SS local
	Item     string          `json:"item"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	AddOnQty int             `json:"add_on_qty"`
	Total    decimal.Decimal `json:"total"`
}

// Commit outcome statuses. Only StatusCommitted mutates the ledger.
const (
	StatusCommitted    = "committed"
	StatusNoItems      = "no_items"
	StatusInsufficient = "insufficient"
)

// OrderResponse is the result of POST /v1/orders. Business validation
// failures (no items, insufficient payment) arrive here as a status and a
// user-facing message, never as an HTTP error.
type OrderResponse struct {
	Status     string             `json:"status"`
	Message    string             `json:"message"`
	Lines      []LineItemResponse `json:"lines,omitempty"`
	GrandTotal decimal.Decimal    `json:"grand_total"`
	Given      decimal.Decimal    `json:"given"`
	Change     *decimal.Decimal   `json:"change,omitempty"`
	Shortfall  *decimal.Decimal   `json:"shortfall,omitempty"`
}

type PreviewResponse struct {
	Status     string             `json:"status"`
	Message    string             `json:"message"`
	Lines      []LineItemResponse `json:"lines,omitempty"`
	GrandTotal decimal.Decimal    `json:"grand_total"`
}

type TrendResponse struct {
	Item     string `json:"item"`
	Name     string `json:"name"`
	HasAddOn bool   `json:"has_add_on"`
	Quantity int    `json:"quantity"`
	Text     string `json:"text"`
}

type LedgerResponse struct {
	Entries    []LineItemResponse `json:"entries"`
	TotalSales decimal.Decimal    `json:"total_sales"`
	Trending   *TrendResponse     `json:"trending,omitempty"`
}

type CatalogItemResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
