package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.BasePath != "/api/taskboard" {
		t.Errorf("BasePath = %q, want /api/taskboard", cfg.Server.BasePath)
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Errorf("MaxOpenConns = %d, want 25", cfg.Database.MaxOpenConns)
	}
	if cfg.Cache.BoardDetailTTL != 30*time.Second {
		t.Errorf("BoardDetailTTL = %s, want 30s", cfg.Cache.BoardDetailTTL)
	}
	if cfg.Purge.Schedule != "0 3 * * *" {
		t.Errorf("Purge schedule = %q, want %q", cfg.Purge.Schedule, "0 3 * * *")
	}
	if cfg.Purge.RetentionDays != 30 {
		t.Errorf("RetentionDays = %d, want 30", cfg.Purge.RetentionDays)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
  base_path: /api/boards
  read_timeout: 5s
database:
  host: db.internal
  port: 5433
  max_open_conns: 50
purge:
  schedule: "30 2 * * *"
  retention_days: 7
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %s, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Port != 5433 {
		t.Errorf("Database = %s:%d, want db.internal:5433", cfg.Database.Host, cfg.Database.Port)
	}
	if cfg.Purge.RetentionDays != 7 {
		t.Errorf("RetentionDays = %d, want 7", cfg.Purge.RetentionDays)
	}
	// Values the file omits keep their defaults
	if cfg.Database.MaxIdleConns != 5 {
		t.Errorf("MaxIdleConns = %d, want default 5", cfg.Database.MaxIdleConns)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed yaml should fail")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("DB_HOST", "pg.cluster.local")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com,https://staging.example.com")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("Port = %q, want 7070", cfg.Server.Port)
	}
	if cfg.Database.Host != "pg.cluster.local" || cfg.Database.Port != 6432 {
		t.Errorf("Database = %s:%d, want pg.cluster.local:6432", cfg.Database.Host, cfg.Database.Port)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("JWT secret = %q, want env-secret", cfg.JWT.Secret)
	}
	want := []string{"https://app.example.com", "https://staging.example.com"}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[0] != want[0] || cfg.Server.AllowedOrigins[1] != want[1] {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.Server.AllowedOrigins, want)
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("Log level = %q, want debug", cfg.Logger.Level)
	}
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "taskboard",
		Password: "secret",
		Name:     "taskboard",
		SSLMode:  "disable",
	}
	want := "host=localhost port=5432 user=taskboard password=secret dbname=taskboard sslmode=disable"
	if got := d.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}

func TestLoad_InvalidDBPortEnvIgnored(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Port = %d, want default 5432", cfg.Database.Port)
	}
}
