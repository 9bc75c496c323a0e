package infra

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "PORT", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER",
		"DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_POOL_SIZE", "JWT_SECRET",
		"TOKEN_TTL_MINUTES", "CORS_ORIGIN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDevelopmentFallbacks(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("AppEnv = %q, want development default", cfg.AppEnv)
	}
	if cfg.JWTSecret == "" || cfg.DatabaseURL == "" {
		t.Fatal("development profile must supply fallbacks")
	}
	if cfg.DBMaxConns != 10 {
		t.Fatalf("DBMaxConns = %d, want default 10", cfg.DBMaxConns)
	}
}

func TestLoadConfigRequiresSecretOutsideDevelopment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://example")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() must fail without JWT_SECRET in production")
	}
}

func TestLoadConfigRequiresDatabaseOutsideDevelopment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "prod-secret")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() must fail without database coordinates in production")
	}
}

func TestLoadConfigAssemblesURLFromParts(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_NAME", "nonprofit")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	for _, part := range []string{"postgres://", "app:s3cret@", "db.internal:5432", "/nonprofit", "sslmode=disable"} {
		if !strings.Contains(cfg.DatabaseURL, part) {
			t.Fatalf("DatabaseURL %q missing %q", cfg.DatabaseURL, part)
		}
	}
}

func TestLoadConfigHonorsPoolSize(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_POOL_SIZE", "25")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.DBMaxConns != 25 {
		t.Fatalf("DBMaxConns = %d, want 25", cfg.DBMaxConns)
	}
}
