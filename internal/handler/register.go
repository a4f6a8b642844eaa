package handler

import (
	"net/http"
	"strconv"
	"strings"

	"shakepos/internal/middleware"
	"shakepos/internal/model"
	"shakepos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterHandler serves the single-page register form. It is pure glue:
// it parses the posted arrays, calls the order service, and feeds a fully
// formatted view model into the template. No business logic lives here.
type RegisterHandler struct {
	svc            service.OrderService
	catalog        service.CatalogService
	storeName      string
	currencyPrefix string
}

func NewRegisterHandler(svc service.OrderService, catalog service.CatalogService, storeName, currencyPrefix string) *RegisterHandler {
	return &RegisterHandler{svc: svc, catalog: catalog, storeName: storeName, currencyPrefix: currencyPrefix}
}

// catalogOption is one drink in the form's select box.
type catalogOption struct {
	ID    string
	Label string
}

// ledgerRow is one rendered sales summary entry.
type ledgerRow struct {
	Time  string
	Text  string
	Total string
}

// registerPage is the template view model. Every money value arrives
// pre-formatted; the template only places strings.
type registerPage struct {
	StoreName    string
	Options      []catalogOption
	PreviewLines []string
	MessageLines []string
	HasSales     bool
	Rows         []ledgerRow
	DailyTotal   string
	TrendingText string
}

// Show renders the blank register with the current sales summary.
// GET /
func (h *RegisterHandler) Show(c *gin.Context) {
	h.render(c, nil, nil)
}

// Submit handles all three form buttons. Reset wins over order processing
// when both are posted; preview computes without committing.
// POST /
func (h *RegisterHandler) Submit(c *gin.Context) {
	if _, reset := c.GetPostForm("reset"); reset {
		if err := h.svc.Reset(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
			c.String(http.StatusInternalServerError, "could not reset the sales log")
			return
		}
		h.render(c, nil, nil)
		return
	}

	req := parseOrderForm(c)

	if _, preview := c.GetPostForm("preview"); preview {
		resp := h.svc.Preview(req)
		h.render(c, strings.Split(resp.Message, "\n"), nil)
		return
	}

	resp, err := h.svc.Commit(c.Request.Context(), middleware.GetSessionID(c), req)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not record the sale")
		return
	}
	h.render(c, nil, strings.Split(resp.Message, "\n"))
}

func (h *RegisterHandler) render(c *gin.Context, previewLines, messageLines []string) {
	ledger, err := h.svc.Ledger(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.String(http.StatusInternalServerError, "could not read the sales log")
		return
	}

	page := registerPage{
		StoreName:    h.storeName,
		Options:      h.options(),
		PreviewLines: previewLines,
		MessageLines: messageLines,
		HasSales:     len(ledger.Entries) > 0,
		DailyTotal:   h.money(ledger.TotalSales),
	}
	for _, e := range ledger.Entries {
		text := e.Name + " x" + strconv.Itoa(e.Quantity)
		if e.AddOnQty > 0 {
			text += " + Add-On x" + strconv.Itoa(e.AddOnQty)
		}
		page.Rows = append(page.Rows, ledgerRow{
			Time:  e.Time,
			Text:  text,
			Total: h.money(e.Total),
		})
	}
	if ledger.Trending != nil {
		page.TrendingText = ledger.Trending.Text
	}

	c.HTML(http.StatusOK, "register.html", page)
}

// options lists the drinks (everything except the add-on entry) for the
// form's select box, labeled with their prices.
func (h *RegisterHandler) options() []catalogOption {
	items := h.catalog.List()
	opts := make([]catalogOption, 0, len(items))
	for _, it := range items {
		if it.ID == model.AddOnID {
			continue
		}
		opts = append(opts, catalogOption{
			ID:    it.ID,
			Label: it.Name + " – " + h.money(it.UnitPrice),
		})
	}
	return opts
}

func (h *RegisterHandler) money(d decimal.Decimal) string {
	return h.currencyPrefix + d.StringFixed(2)
}

