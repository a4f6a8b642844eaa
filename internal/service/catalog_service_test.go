package service

import (
	"testing"

	"shakepos/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestPriceOf(t *testing.T) {
	catalog := testCatalog(t)

	assert.Equal(t, "35.00", catalog.PriceOf("buko_shake").StringFixed(2))
	assert.Equal(t, "10.00", catalog.PriceOf(model.AddOnID).StringFixed(2))
}

func TestPriceOfUnknownItemIsZero(t *testing.T) {
	catalog := testCatalog(t)

	// Permissive policy: unknown identifiers price at zero, never an error.
	assert.Equal(t, "0.00", catalog.PriceOf("durian_shake").StringFixed(2))
	assert.Equal(t, "0.00", catalog.PriceOf("").StringFixed(2))
}

func TestDisplayName(t *testing.T) {
	catalog := testCatalog(t)

	assert.Equal(t, "Buko shake", catalog.DisplayName("buko_shake"))
	assert.Equal(t, "Halo-halo", catalog.DisplayName("halo_halo"))
	// Unknown ids fall back to a humanized identifier
	assert.Equal(t, "Durian shake", catalog.DisplayName("durian_shake"))
}

func TestListCopiesCatalog(t *testing.T) {
	catalog := testCatalog(t)

	items := catalog.List()
	assert.Len(t, items, 5)

	// Mutating the returned slice must not affect later reads.
	items[0].Name = "tampered"
	assert.Equal(t, "Buko shake", catalog.List()[0].Name)
}
