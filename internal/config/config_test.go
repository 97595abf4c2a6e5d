package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Errorf("Server.Port = %q, want 5000", cfg.Server.Port)
	}
	if cfg.Storage.Driver != DriverPostgres {
		t.Errorf("Storage.Driver = %q, want %q", cfg.Storage.Driver, DriverPostgres)
	}
	if cfg.Payment.Currency != "usd" {
		t.Errorf("Payment.Currency = %q, want usd", cfg.Payment.Currency)
	}
	if cfg.Payment.Timeout != 10*time.Second {
		t.Errorf("Payment.Timeout = %v, want 10s", cfg.Payment.Timeout)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("Auth.TokenTTL = %v, want 24h", cfg.Auth.TokenTTL)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: "8081"
storage:
  driver: mongo
mongo:
  database: camps_test
payment:
  timeout: 3s
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("MEDCAMP_AUTH_SECRET", "from-env")
	t.Setenv("MEDCAMP_SERVER_PORT", "9090")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want env override 9090", cfg.Server.Port)
	}
	if cfg.Storage.Driver != DriverMongo {
		t.Errorf("Storage.Driver = %q, want mongo", cfg.Storage.Driver)
	}
	if cfg.Mongo.Database != "camps_test" {
		t.Errorf("Mongo.Database = %q, want camps_test", cfg.Mongo.Database)
	}
	if cfg.Payment.Timeout != 3*time.Second {
		t.Errorf("Payment.Timeout = %v, want 3s", cfg.Payment.Timeout)
	}
	if cfg.Auth.Secret != "from-env" {
		t.Errorf("Auth.Secret = %q, want from-env", cfg.Auth.Secret)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "5000" {
		t.Errorf("Server.Port = %q, want 5000", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg.Storage.Driver = "sqlite"

	err = cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"storage.driver", "auth.secret", "payment.secret_key"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %s", err, want)
		}
	}

	cfg.Storage.Driver = DriverPostgres
	cfg.Auth.Secret = "s"
	cfg.Payment.SecretKey = "sk_test"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadExampleConfig(t *testing.T) {
	cfg, err := Load("../../config.example.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("example config should validate: %v", err)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour || cfg.Postgres.MaxConns != 20 {
		t.Errorf("TokenTTL = %v, MaxConns = %d", cfg.Auth.TokenTTL, cfg.Postgres.MaxConns)
	}
}
