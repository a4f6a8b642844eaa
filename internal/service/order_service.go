package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shakepos/internal/dto"
	"shakepos/internal/model"
	"shakepos/internal/repository"

	"github.com/shopspring/decimal"
)

// User-facing business messages. These are results, not errors: the request
// always completes normally and the ledger stays untouched on the first two.
const (
	msgNoItems        = "No items selected."
	msgNoItemsPreview = "No items selected for preview."
)

// OrderService implements the register's order flow: build line items from
// the posted parallel arrays, preview totals without committing, and commit
// a paid order into the session ledger.
type OrderService interface {
	// Build turns an OrderRequest into priced line items and a grand total.
	// Rows where both quantities are zero are skipped; input order is kept.
	Build(req dto.OrderRequest) model.Order
	// Preview computes totals for the entered order without touching the ledger.
	Preview(req dto.OrderRequest) *dto.PreviewResponse
	// Commit validates payment and, only when the order is non-empty and the
	// amount covers the total, appends the lines to the session ledger.
	Commit(ctx context.Context, sessionID string, req dto.OrderRequest) (*dto.OrderResponse, error)
	// Ledger returns the session's sales summary including the trending item.
	Ledger(ctx context.Context, sessionID string) (*dto.LedgerResponse, error)
	// Reset clears the session's ledger. Takes precedence over any order
	// fields posted alongside it.
	Reset(ctx context.Context, sessionID string) error
}

type orderService struct {
	catalog        CatalogService
	store          repository.LedgerStore
	currencyPrefix string
	now            func() time.Time
}

func NewOrderService(catalog CatalogService, store repository.LedgerStore, currencyPrefix string) OrderService {
	return &orderService{
		catalog:        catalog,
		store:          store,
		currencyPrefix: currencyPrefix,
		now:            time.Now,
	}
}

// ─── Build ───────────────────────────────────────────────────────────────────

func (s *orderService) Build(req dto.OrderRequest) model.Order {
	addOnPrice := s.catalog.PriceOf(model.AddOnID)
	stamp := s.now().Truncate(time.Second)

	order := model.Order{GrandTotal: decimal.Zero}
	for i, itemID := range req.Items {
		qty := clampAt(req.Quantities, i)
		addOnQty := clampAt(req.AddOnQtys, i)
		if qty == 0 && addOnQty == 0 {
			continue
		}

		lineTotal := s.catalog.PriceOf(itemID).Mul(decimal.NewFromInt(int64(qty))).
			Add(addOnPrice.Mul(decimal.NewFromInt(int64(addOnQty))))

		order.Lines = append(order.Lines, model.LineItem{
			Time:      stamp,
			ItemID:    itemID,
			Quantity:  qty,
			AddOnQty:  addOnQty,
			LineTotal: lineTotal,
		})
		order.GrandTotal = order.GrandTotal.Add(lineTotal)
	}
	return order
}

// clampAt reads a ragged parallel array: missing indices and negative values
// both read as 0.
func clampAt(vals []int, i int) int {
	if i >= len(vals) || vals[i] < 0 {
		return 0
	}
	return vals[i]
}

// ─── Preview ─────────────────────────────────────────────────────────────────

func (s *orderService) Preview(req dto.OrderRequest) *dto.PreviewResponse {
	order := s.Build(req)
	if order.Empty() {
		return &dto.PreviewResponse{
			Status:     dto.StatusNoItems,
			Message:    msgNoItemsPreview,
			GrandTotal: decimal.Zero,
		}
	}
	return &dto.PreviewResponse{
		Status:     "preview",
		Message:    s.orderText(order) + fmt.Sprintf("\nPreview Total: %s", s.money(order.GrandTotal)),
		Lines:      s.toLineResponses(order.Lines),
		GrandTotal: order.GrandTotal,
	}
}

// ─── Commit ──────────────────────────────────────────────────────────────────

func (s *orderService) Commit(ctx context.Context, sessionID string, req dto.OrderRequest) (*dto.OrderResponse, error) {
	// Build runs exactly once per commit decision.
	order := s.Build(req)
	given := req.AmountGiven
	if given.IsNegative() {
		given = decimal.Zero
	}

	if order.Empty() {
		return &dto.OrderResponse{
			Status:     dto.StatusNoItems,
			Message:    msgNoItems,
			GrandTotal: decimal.Zero,
			Given:      given,
		}, nil
	}

	if given.LessThan(order.GrandTotal) {
		shortfall := order.GrandTotal.Sub(given)
		return &dto.OrderResponse{
			Status:     dto.StatusInsufficient,
			Message:    fmt.Sprintf("Insufficient amount. You need %s more.", s.money(shortfall)),
			Lines:      s.toLineResponses(order.Lines),
			GrandTotal: order.GrandTotal,
			Given:      given,
			Shortfall:  &shortfall,
		}, nil
	}

	if err := s.store.Append(ctx, sessionID, order.Lines); err != nil {
		return nil, err
	}

	change := given.Sub(order.GrandTotal)
	msg := s.orderText(order) +
		fmt.Sprintf("\nOrder Total: %s\nGiven: %s | Change: %s",
			s.money(order.GrandTotal), s.money(given), s.money(change))
	return &dto.OrderResponse{
		Status:     dto.StatusCommitted,
		Message:    msg,
		Lines:      s.toLineResponses(order.Lines),
		GrandTotal: order.GrandTotal,
		Given:      given,
		Change:     &change,
	}, nil
}

// ─── Ledger / Reset ──────────────────────────────────────────────────────────

func (s *orderService) Ledger(ctx context.Context, sessionID string) (*dto.LedgerResponse, error) {
	snap, err := s.store.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	resp := &dto.LedgerResponse{
		Entries:    s.toLineResponses(snap.Entries),
		TotalSales: snap.TotalSales,
	}
	if trend := AnalyzeTrend(snap.Entries); trend != nil {
		resp.Trending = &dto.TrendResponse{
			Item:     trend.ItemID,
			Name:     s.catalog.DisplayName(trend.ItemID),
			HasAddOn: trend.HasAddOn,
			Quantity: trend.Quantity,
			Text:     TrendText(*trend, s.catalog),
		}
	}
	return resp, nil
}

func (s *orderService) Reset(ctx context.Context, sessionID string) error {
	return s.store.Reset(ctx, sessionID)
}

// ─── Formatting helpers ──────────────────────────────────────────────────────

func (s *orderService) money(d decimal.Decimal) string {
	return s.currencyPrefix + d.StringFixed(2)
}

// orderText renders one line per item: "Buko shake x2 + Add-On x1 → P80.00".
func (s *orderService) orderText(order model.Order) string {
	parts := make([]string, 0, len(order.Lines))
	for _, ln := range order.Lines {
		part := fmt.Sprintf("%s x%d", s.catalog.DisplayName(ln.ItemID), ln.Quantity)
		if ln.AddOnQty > 0 {
			part += fmt.Sprintf(" + Add-On x%d", ln.AddOnQty)
		}
		part += " → " + s.money(ln.LineTotal)
		parts = append(parts, part)
	}
	return strings.Join(parts, "\n")
}

func (s *orderService) toLineResponses(lines []model.LineItem) []dto.LineItemResponse {
	out := make([]dto.LineItemResponse, 0, len(lines))
	for _, ln := range lines {
		out = append(out, dto.LineItemResponse{
			Time:     ln.Time.Local().Format("15:04:05"),
			Item:     ln.ItemID,
			Name:     s.catalog.DisplayName(ln.ItemID),
			Quantity: ln.Quantity,
			AddOnQty: ln.AddOnQty,
			Total:    ln.LineTotal,
		})
	}
	return out
}
