package config

import (
	"flag"
	"os"
	"strings"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("CRYPT_SECRET", "")
	t.Setenv("HASH_COST", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "")
	t.Setenv("TOKEN_FILE", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.HashCost != 10 {
		t.Fatalf("HashCost default expected 10, got %d", cfg.HashCost)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8081" {
		t.Fatalf("ServerURL default expected 'http://localhost:8081', got %q", cfg.ServerURL)
	}
	if cfg.TokenFile == "" {
		t.Fatalf("client TokenFile default must be non-empty")
	}
	// секреты не имеют дефолтов — сервер с пустыми секретами не стартует
	if err := cfg.ValidateServer(); err == nil {
		t.Fatalf("ValidateServer must fail when secrets are empty")
	}
}

func TestNewConfig_BaseURLAndHTTPS(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("CRYPT_SECRET", "deep")
	t.Setenv("HASH_COST", "4")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "example.com:443" {
		t.Fatalf("BaseURL expected 'example.com:443', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected from env 'top', got %q", cfg.AuthSecret)
	}
	if cfg.CryptSecret != "deep" {
		t.Fatalf("CryptSecret expected from env 'deep', got %q", cfg.CryptSecret)
	}
	if cfg.HashCost != 4 {
		t.Fatalf("HashCost expected 4, got %d", cfg.HashCost)
	}
	if err := cfg.ValidateServer(); err != nil {
		t.Fatalf("ValidateServer must pass with both secrets set: %v", err)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8081', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:8081") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
}

func TestNewConfig_ValidateServerMissingOne(t *testing.T) {
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("CRYPT_SECRET", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if err := cfg.ValidateServer(); err == nil {
		t.Fatalf("ValidateServer must fail when CRYPT_SECRET is empty")
	}
}
