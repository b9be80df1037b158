package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adanyl0v/go-tasks/internal/config"
)

func TestEnvReader_Defaults(t *testing.T) {
	t.Setenv("ENV", config.EnvLocal)

	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if cfg.Env != config.EnvLocal {
		t.Errorf("expected env %q, got %q", config.EnvLocal, cfg.Env)
	}
	if cfg.HTTP.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.HTTP.Port)
	}
	if cfg.HTTP.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected default shutdown timeout 5s, got %v", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.Storage.Driver != "file" {
		t.Errorf("expected default driver file, got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.FilePath != "tasks.json" {
		t.Errorf("expected default file path tasks.json, got %q", cfg.Storage.FilePath)
	}
	if cfg.Storage.SaveTimeout != 10*time.Second {
		t.Errorf("expected default save timeout 10s, got %v", cfg.Storage.SaveTimeout)
	}
	if cfg.Auth.AccessTokenTTL != 24*time.Hour {
		t.Errorf("expected default token ttl 24h, got %v", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Auth.PasswordHash != "" {
		t.Errorf("expected auth disabled by default, got %q", cfg.Auth.PasswordHash)
	}
}

func TestEnvReader_Overrides(t *testing.T) {
	t.Setenv("ENV", config.EnvProd)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "bolt")
	t.Setenv("STORAGE_BOLT_PATH", "/var/lib/tasks/tasks.db")
	t.Setenv("STORAGE_SAVE_TIMEOUT", "3s")
	t.Setenv("JWT_ISSUER", "my-issuer")

	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if cfg.Env != config.EnvProd {
		t.Errorf("expected env %q, got %q", config.EnvProd, cfg.Env)
	}
	if cfg.HTTP.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.HTTP.Port)
	}
	if cfg.Storage.Driver != "bolt" {
		t.Errorf("expected driver bolt, got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.BoltPath != "/var/lib/tasks/tasks.db" {
		t.Errorf("unexpected bolt path %q", cfg.Storage.BoltPath)
	}
	if cfg.Storage.SaveTimeout != 3*time.Second {
		t.Errorf("expected save timeout 3s, got %v", cfg.Storage.SaveTimeout)
	}
	if cfg.Auth.JWTIssuer != "my-issuer" {
		t.Errorf("expected issuer my-issuer, got %q", cfg.Auth.JWTIssuer)
	}
}

func TestEnvReader_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.env")
	content := "ENV=dev\nHTTP_PORT=7070\nSTORAGE_DRIVER=memory\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	// Seed the variables so t.Setenv restores them after the file
	// loader overwrites the process environment.
	t.Setenv("ENV", config.EnvLocal)
	t.Setenv("HTTP_PORT", "7071")
	t.Setenv("STORAGE_DRIVER", "bolt")
	t.Setenv("CONFIG_PATH", path)

	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if cfg.Env != config.EnvDev {
		t.Errorf("expected env %q, got %q", config.EnvDev, cfg.Env)
	}
	if cfg.HTTP.Port != "7070" {
		t.Errorf("expected port 7070, got %q", cfg.HTTP.Port)
	}
	if cfg.Storage.Driver != "memory" {
		t.Errorf("expected driver memory, got %q", cfg.Storage.Driver)
	}
}
