package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"shakepos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLine(item string, qty int, total float64) model.LineItem {
	return model.LineItem{
		Time:      time.Now().Truncate(time.Second),
		ItemID:    item,
		Quantity:  qty,
		LineTotal: decimal.NewFromFloat(total),
	}
}

func TestMemoryStoreEmptySnapshot(t *testing.T) {
	store := NewMemoryLedgerStore()

	snap, err := store.Snapshot(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Empty(t, snap.Entries)
	assert.Equal(t, "0.00", snap.TotalSales.StringFixed(2))
}

func TestMemoryStoreAppendKeepsOrder(t *testing.T) {
	store := NewMemoryLedgerStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", []model.LineItem{
		testLine("buko_shake", 2, 70),
		testLine("halo_halo", 1, 35),
	}))
	require.NoError(t, store.Append(ctx, "s1", []model.LineItem{
		testLine("mango_shake", 1, 45),
	}))

	snap, err := store.Snapshot(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, snap.Entries, 3)
	assert.Equal(t, "buko_shake", snap.Entries[0].ItemID)
	assert.Equal(t, "halo_halo", snap.Entries[1].ItemID)
	assert.Equal(t, "mango_shake", snap.Entries[2].ItemID)
	assert.Equal(t, "150.00", snap.TotalSales.StringFixed(2))
}

func TestMemoryStoreSessionsAreIsolated(t *testing.T) {
	store := NewMemoryLedgerStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", []model.LineItem{testLine("buko_shake", 1, 35)}))

	snap, err := store.Snapshot(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, snap.Entries)
}

func TestMemoryStoreResetIdempotent(t *testing.T) {
	store := NewMemoryLedgerStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", []model.LineItem{testLine("buko_shake", 1, 35)}))
	require.NoError(t, store.Reset(ctx, "s1"))
	require.NoError(t, store.Reset(ctx, "s1"))

	snap, err := store.Snapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, snap.Entries)
	assert.Equal(t, "0.00", snap.TotalSales.StringFixed(2))
}

func TestMemoryStoreSnapshotIsACopy(t *testing.T) {
	store := NewMemoryLedgerStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", []model.LineItem{testLine("buko_shake", 1, 35)}))

	snap, err := store.Snapshot(ctx, "s1")
	require.NoError(t, err)
	snap.Entries[0].ItemID = "tampered"

	fresh, err := store.Snapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "buko_shake", fresh.Entries[0].ItemID)
}

// Two in-flight requests for the same session must not lose updates.
func TestMemoryStoreConcurrentAppends(t *testing.T) {
	store := NewMemoryLedgerStore()
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_ = store.Append(ctx, "s1", []model.LineItem{testLine("buko_shake", 1, 35)})
		}()
	}
	wg.Wait()

	snap, err := store.Snapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, snap.Entries, writers)
	assert.Equal(t, decimal.NewFromInt(35*writers).StringFixed(2), snap.TotalSales.StringFixed(2))
}
