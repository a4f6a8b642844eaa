package router

import (
	"time"

	"shakepos/internal/config"
	"shakepos/internal/handler"
	"shakepos/internal/infra"
	"shakepos/internal/middleware"
	"shakepos/internal/repository"
	"shakepos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis (both optional).
func New(cfg *config.Config, catalogSvc service.CatalogService, store repository.LedgerStore, db *gorm.DB, rdb *redis.Client, templateGlob string) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.LoadHTMLGlob(templateGlob)

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(600, time.Minute))
	r.Use(middleware.Session(cfg.SessionCookie, cfg.SessionTTLHours*3600))

	// ── Services ─────────────────────────────────────────────────────────────
	orderSvc := service.NewOrderService(catalogSvc, store, cfg.CurrencyPrefix)
	reports := &infra.ReportGenerator{StoreName: cfg.StoreName, CurrencyPrefix: cfg.CurrencyPrefix}

	// ── Handlers ─────────────────────────────────────────────────────────────
	registerH := handler.NewRegisterHandler(orderSvc, catalogSvc, cfg.StoreName, cfg.CurrencyPrefix)
	ordersH := handler.NewOrdersHandler(orderSvc)
	ledgerH := handler.NewLedgerHandler(orderSvc, catalogSvc, store, reports)
	catalogH := handler.NewCatalogHandler(catalogSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// The register page itself — form in, rendered page out
	r.GET("/", registerH.Show)
	r.POST("/", registerH.Submit)

	// JSON API for machine clients
	v1 := r.Group("/v1")
	{
		v1.GET("/catalog", catalogH.List)
		v1.POST("/orders", ordersH.Commit)
		v1.POST("/orders/preview", ordersH.Preview)
		v1.GET("/ledger", ledgerH.Get)
		v1.DELETE("/ledger", ledgerH.Reset)
		v1.GET("/ledger/report", ledgerH.Report)
	}

	return r
}
