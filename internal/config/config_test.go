package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, found, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Fatalf("found=true want false for empty dir")
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr=%q want :8080", cfg.HTTPAddr)
	}
	if cfg.DefaultPerPage != 20 || cfg.MaxPerPage != 100 {
		t.Fatalf("per page defaults=%d/%d want 20/100", cfg.DefaultPerPage, cfg.MaxPerPage)
	}
	if cfg.DBConnMaxLifetime != 30*time.Minute {
		t.Fatalf("DBConnMaxLifetime=%s want 30m", cfg.DBConnMaxLifetime)
	}
	if cfg.ImportSkipUnchanged {
		t.Fatalf("ImportSkipUnchanged should default to false")
	}
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DEFAULT_PER_PAGE", "50")
	t.Setenv("IMPORT_SKIP_UNCHANGED", "true")

	cfg, _, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.UsesSQLite() {
		t.Fatalf("DBDriver=%q want sqlite", cfg.DBDriver)
	}
	if cfg.DefaultPerPage != 50 {
		t.Fatalf("DefaultPerPage=%d want 50", cfg.DefaultPerPage)
	}
	if !cfg.ImportSkipUnchanged {
		t.Fatalf("ImportSkipUnchanged=false want true")
	}
}

func TestLoadConfig_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	body := "DATABASE_URL=file:games.db\nJWT_SECRET=s3cret\nMAX_PER_PAGE=40\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(body), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, found, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found {
		t.Fatalf("found=false want true")
	}
	if cfg.DatabaseURL != "file:games.db" || cfg.JWTSecret != "s3cret" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.MaxPerPage != 40 {
		t.Fatalf("MaxPerPage=%d want 40", cfg.MaxPerPage)
	}
}
