package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models. Existing
// tables only receive schema additions; GORM never drops columns.
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	models := []struct {
		model     interface{}
		tableName string
	}{
		{&domain.Board{}, "boards"},
		{&domain.Column{}, "columns"},
		{&domain.Card{}, "cards"},
	}

	for _, m := range models {
		existed := db.Migrator().HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		log.Info("migrated table",
			zap.String("table", m.tableName),
			zap.Bool("existed", existed),
		)
	}

	return nil
}

// AutoMigrateWithRetry runs AutoMigrate up to maxRetries times with linear
// backoff
func AutoMigrateWithRetry(db *gorm.DB, log *zap.Logger, maxRetries int) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = AutoMigrate(db, log); err == nil {
			return nil
		}
		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			log.Warn("migration attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}
	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
