package handler

import (
	"net/http"

	"shakepos/internal/apierror"
	"shakepos/internal/dto"
	"shakepos/internal/middleware"
	"shakepos/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler { return &OrdersHandler{svc: svc} }

// Preview computes totals for the entered order without committing anything.
// POST /v1/orders/preview
func (h *OrdersHandler) Preview(c *gin.Context) {
	var req dto.OrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.Preview(req))
}

// Commit processes an order against the session ledger. Business failures
// (no items, insufficient payment) come back as 200 with a status — only
// infrastructure problems produce an error response.
// POST /v1/orders
func (h *OrdersHandler) Commit(c *gin.Context) {
	var req dto.OrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Commit(c.Request.Context(), middleware.GetSessionID(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not record the sale"))
		return
	}
	status := http.StatusOK
	if resp.Status == dto.StatusCommitted {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}
