package handler

import (
	"bytes"
	"net/http"

	"shakepos/internal/apierror"
	"shakepos/internal/infra"
	"shakepos/internal/middleware"
	"shakepos/internal/repository"
	"shakepos/internal/service"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	svc     service.OrderService
	catalog service.CatalogService
	store   repository.LedgerStore
	reports *infra.ReportGenerator
}

func NewLedgerHandler(svc service.OrderService, catalog service.CatalogService, store repository.LedgerStore, reports *infra.ReportGenerator) *LedgerHandler {
	return &LedgerHandler{svc: svc, catalog: catalog, store: store, reports: reports}
}

// Get returns the session's sales summary: every committed entry, the daily
// total and the trending item (absent while the ledger is empty).
// GET /v1/ledger
func (h *LedgerHandler) Get(c *gin.Context) {
	resp, err := h.svc.Ledger(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not read the sales log"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reset clears the session's sales log and daily total. Idempotent.
// DELETE /v1/ledger
func (h *LedgerHandler) Reset(c *gin.Context) {
	if err := h.svc.Reset(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not reset the sales log"))
		return
	}
	c.Status(http.StatusNoContent)
}

// Report renders the session ledger as a receipt-style PDF.
// GET /v1/ledger/report
func (h *LedgerHandler) Report(c *gin.Context) {
	snap, err := h.store.Snapshot(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not read the sales log"))
		return
	}

	trendText := ""
	if trend := service.AnalyzeTrend(snap.Entries); trend != nil {
		trendText = service.TrendText(*trend, h.catalog)
	}

	pdf, err := h.reports.GenerateSalesReport(snap, h.catalog.DisplayName, trendText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not generate the report"))
		return
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not generate the report"))
		return
	}
	c.Header("Content-Disposition", `inline; filename="sales-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
