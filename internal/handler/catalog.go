package handler

import (
	"net/http"

	"shakepos/internal/dto"
	"shakepos/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{ catalog service.CatalogService }

func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List returns the fixed menu with per-item unit prices.
// GET /v1/catalog
func (h *CatalogHandler) List(c *gin.Context) {
	items := h.catalog.List()
	resp := make([]dto.CatalogItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.CatalogItemResponse{ID: it.ID, Name: it.Name, UnitPrice: it.UnitPrice})
	}
	c.JSON(http.StatusOK, resp)
}
