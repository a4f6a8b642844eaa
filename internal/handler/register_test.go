package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"shakepos/internal/config"
	"shakepos/internal/dto"
	"shakepos/internal/repository"
	"shakepos/internal/router"
	"shakepos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSession = "7f9f6f66-0d3f-4e59-9f0a-2f6a6c1b2d3e"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:             "test",
		StoreName:       "Test Shake Stand",
		CurrencyPrefix:  "P",
		SessionCookie:   "shakepos_session",
		SessionTTLHours: 1,
	}
	catalogRepo := repository.NewStaticCatalogRepository(repository.DefaultCatalog(
		decimal.NewFromFloat(35.00), decimal.NewFromFloat(10.00)))
	catalogSvc, err := service.NewCatalogService(context.Background(), catalogRepo)
	require.NoError(t, err)
	store := repository.NewMemoryLedgerStore()

	return router.New(cfg, catalogSvc, store, nil, nil, "../../templates/*")
}

func doForm(t *testing.T, r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "shakepos_session", Value: testSession})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: "shakepos_session", Value: testSession})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── HTML page ─────────────────────────────────────────────────────────────────

func TestShowRendersEmptyRegister(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Sales Summary")
	assert.Contains(t, body, "No sales yet.")
	assert.Contains(t, body, `value="buko_shake"`)
	assert.NotContains(t, body, "Most Trending Item")
}

func TestShowIssuesSessionCookie(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "shakepos_session" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "first contact must set the session cookie")
}

func TestSubmitProcessOrder(t *testing.T) {
	r := newTestRouter(t)

	w := doForm(t, r, url.Values{
		"item[]":       {"buko_shake"},
		"quantity[]":   {"2"},
		"add_on_qty[]": {"0"},
		"amount_given": {"100"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Order Total: P70.00")
	assert.Contains(t, body, "Change: P30.00")
	assert.Contains(t, body, "Daily Total: P70.00")
	assert.Contains(t, body, "Most Trending Item: Buko shake only")
}

func TestSubmitInsufficientAmountDoesNotCommit(t *testing.T) {
	r := newTestRouter(t)

	w := doForm(t, r, url.Values{
		"item[]":       {"mango_shake"},
		"quantity[]":   {"1"},
		"add_on_qty[]": {"1"},
		"amount_given": {"40"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Insufficient amount. You need P5.00 more.")
	assert.Contains(t, body, "No sales yet.")
}

func TestSubmitGarbageInputClampsToZero(t *testing.T) {
	r := newTestRouter(t)

	w := doForm(t, r, url.Values{
		"item[]":       {"buko_shake"},
		"quantity[]":   {"banana"},
		"add_on_qty[]": {"-4"},
		"amount_given": {"not-a-number"},
	})

	// Everything clamps to zero → empty order, never an error.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No items selected.")
}

func TestSubmitPreviewDoesNotCommit(t *testing.T) {
	r := newTestRouter(t)

	w := doForm(t, r, url.Values{
		"item[]":       {"halo_halo"},
		"quantity[]":   {"1"},
		"add_on_qty[]": {"0"},
		"amount_given": {"0"},
		"preview":      {"Preview Order"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Preview Total: P35.00")
	assert.Contains(t, body, "No sales yet.")
}

func TestSubmitResetWinsOverOrderFields(t *testing.T) {
	r := newTestRouter(t)

	// Seed one committed sale
	doForm(t, r, url.Values{
		"item[]":       {"buko_shake"},
		"quantity[]":   {"1"},
		"amount_given": {"35"},
	})

	// Reset posted together with a valid order: reset takes precedence.
	w := doForm(t, r, url.Values{
		"item[]":       {"mango_shake"},
		"quantity[]":   {"3"},
		"amount_given": {"200"},
		"reset":        {"Reset Sales"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "No sales yet.")
	assert.NotContains(t, body, "Mango shake x3")
}

// ── JSON API ──────────────────────────────────────────────────────────────────

func TestAPIOrderLifecycle(t *testing.T) {
	r := newTestRouter(t)

	// Commit
	w := doJSON(t, r, http.MethodPost, "/v1/orders",
		`{"items":["buko_shake"],"quantities":[2],"add_on_qtys":[0],"amount_given":70}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var orderResp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orderResp))
	assert.Equal(t, dto.StatusCommitted, orderResp.Status)
	require.NotNil(t, orderResp.Change)
	assert.Equal(t, "0.00", orderResp.Change.StringFixed(2))

	// Ledger
	w = doJSON(t, r, http.MethodGet, "/v1/ledger", "")
	require.Equal(t, http.StatusOK, w.Code)
	var ledger dto.LedgerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ledger))
	require.Len(t, ledger.Entries, 1)
	assert.Equal(t, "70.00", ledger.TotalSales.StringFixed(2))
	require.NotNil(t, ledger.Trending)
	assert.Equal(t, "buko_shake", ledger.Trending.Item)

	// Reset
	w = doJSON(t, r, http.MethodDelete, "/v1/ledger", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/ledger", "")
	ledger = dto.LedgerResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ledger))
	assert.Empty(t, ledger.Entries)
	assert.Nil(t, ledger.Trending)
}

func TestAPIInsufficientPaymentIsNotAnHTTPError(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/orders",
		`{"items":["mango_shake"],"quantities":[1],"add_on_qtys":[1],"amount_given":40}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.StatusInsufficient, resp.Status)
	require.NotNil(t, resp.Shortfall)
	assert.Equal(t, "5.00", resp.Shortfall.StringFixed(2))
}

func TestAPIPreviewNeverMutates(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/orders/preview",
		`{"items":["halo_halo"],"quantities":[2],"add_on_qtys":[0],"amount_given":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/ledger", "")
	var ledger dto.LedgerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ledger))
	assert.Empty(t, ledger.Entries)
}

func TestAPIInvalidJSONRejected(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/orders", `{"items": not-json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPICatalogListing(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/v1/catalog", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []dto.CatalogItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 5)
}

func TestAPIReportPDF(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/v1/orders",
		`{"items":["buko_shake"],"quantities":[1],"add_on_qtys":[0],"amount_given":35}`)

	w := doJSON(t, r, http.MethodGet, "/v1/ledger/report", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"), "response must be a PDF document")
}

func TestHealthWithOptionalBackendsDisabled(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"db":"disabled"`)
	assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
}
