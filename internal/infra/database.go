package infra

import (
	"fmt"

	"shakepos/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection, migrates the catalog table and
// seeds it with the given items when empty. The catalog is the only table —
// sales state is session-scoped and deliberately not persisted here.
func NewDatabase(dsn string, seed []model.CatalogItem) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)

	if err := db.AutoMigrate(&model.CatalogItem{}); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	// Idempotent seed: only populate a fresh catalog, never overwrite prices
	// an operator has already adjusted.
	var count int64
	if err := db.Model(&model.CatalogItem{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		if err := db.Create(&seed).Error; err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}

	return db, nil
}
