package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the three tables
// created by hand: the Postgres column types in the model tags (uuid, jsonb)
// don't migrate cleanly on SQLite, so tests declare TEXT columns instead.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	statements := []string{
		`CREATE TABLE boards (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			destroyed BOOLEAN NOT NULL DEFAULT 0,
			destroyed_at DATETIME,
			title TEXT NOT NULL,
			slug TEXT,
			description TEXT,
			owner_id TEXT NOT NULL,
			member_ids TEXT,
			column_order_ids TEXT,
			labels TEXT,
			background_image_url TEXT
		)`,
		`CREATE TABLE columns (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			destroyed BOOLEAN NOT NULL DEFAULT 0,
			destroyed_at DATETIME,
			board_id TEXT NOT NULL,
			title TEXT NOT NULL,
			card_order_ids TEXT
		)`,
		`CREATE TABLE cards (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			destroyed BOOLEAN NOT NULL DEFAULT 0,
			destroyed_at DATETIME,
			board_id TEXT NOT NULL,
			column_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			cover_url TEXT,
			member_ids TEXT,
			comments TEXT,
			checklists TEXT,
			selected_label_ids TEXT
		)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create table: %v", err)
		}
	}

	return db
}
