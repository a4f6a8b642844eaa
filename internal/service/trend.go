package service

import (
	"fmt"

	"shakepos/internal/model"
)

type trendKey struct {
	itemID   string
	hasAddOn bool
}

// AnalyzeTrend aggregates committed drink quantities per (item, add-on
// presence) key and returns the best seller, or nil for an empty ledger.
//
// Tie-break: when several keys share the maximum quantity, the most recently
// introduced distinct key wins. This is deterministic for identical input and
// is asserted by tests; do not change it without updating them.
func AnalyzeTrend(entries []model.LineItem) *model.TrendSummary {
	if len(entries) == 0 {
		return nil
	}

	counts := make(map[trendKey]int, len(entries))
	keyOrder := make([]trendKey, 0, len(entries))
	for _, e := range entries {
		k := trendKey{itemID: e.ItemID, hasAddOn: e.AddOnQty > 0}
		if _, seen := counts[k]; !seen {
			keyOrder = append(keyOrder, k)
		}
		// Drink quantity only — add-on quantity does not count toward trend.
		counts[k] += e.Quantity
	}

	best := keyOrder[0]
	for _, k := range keyOrder[1:] {
		if counts[k] >= counts[best] {
			best = k
		}
	}
	return &model.TrendSummary{ItemID: best.itemID, HasAddOn: best.hasAddOn, Quantity: counts[best]}
}

// TrendText renders the trending line shown under the sales summary.
func TrendText(t model.TrendSummary, catalog CatalogService) string {
	suffix := "only"
	if t.HasAddOn {
		suffix = "with Add-On"
	}
	return fmt.Sprintf("Most Trending Item: %s %s", catalog.DisplayName(t.ItemID), suffix)
}
