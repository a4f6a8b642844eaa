package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shakepos/internal/config"
	"shakepos/internal/infra"
	"shakepos/internal/repository"
	"shakepos/internal/router"
	"shakepos/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	drinkPrice, err := decimal.NewFromString(cfg.DrinkPrice)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.DrinkPrice).Msg("invalid DRINK_PRICE")
	}
	addOnPrice, err := decimal.NewFromString(cfg.AddOnPrice)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.AddOnPrice).Msg("invalid ADD_ON_PRICE")
	}
	seed := repository.DefaultCatalog(drinkPrice, addOnPrice)

	// Catalog: Postgres when configured, otherwise the static seed.
	var db *gorm.DB
	var catalogRepo repository.CatalogRepository
	if cfg.DatabaseURL != "" {
		db, err = infra.NewDatabase(cfg.DatabaseURL, seed)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		catalogRepo = repository.NewGormCatalogRepository(db)
		log.Info().Msg("catalog: postgres")
	} else {
		catalogRepo = repository.NewStaticCatalogRepository(seed)
		log.Info().Msg("catalog: static seed")
	}

	catalogSvc, err := service.NewCatalogService(context.Background(), catalogRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	// Session ledgers: Redis when configured (survives restarts within the
	// session TTL), otherwise in-memory.
	var rdb *redis.Client
	var store repository.LedgerStore
	if cfg.RedisURL != "" {
		rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		store = repository.NewRedisLedgerStore(rdb, time.Duration(cfg.SessionTTLHours)*time.Hour)
		log.Info().Msg("ledger store: redis")
	} else {
		store = repository.NewMemoryLedgerStore()
		log.Info().Msg("ledger store: memory")
	}

	r := router.New(cfg, catalogSvc, store, db, rdb, "templates/*")

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("%s register listening on :%d", cfg.StoreName, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
