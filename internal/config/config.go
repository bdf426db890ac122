package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config собирается из .env, переменных окружения и флагов.
type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`  // ключ подписи JWT
	CryptSecret string `env:"CRYPT_SECRET"` // ключ обратимого шифрования секретов
	HashCost    int    `env:"HASH_COST"`    // стоимость bcrypt

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.CryptSecret, "crypt-secret", cfg.CryptSecret, "секрет для шифрования данных хранилища")
	flag.IntVar(&cfg.HashCost, "hash-cost", cfg.HashCost, "стоимость bcrypt для паролей")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the DrivenPass server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.HashCost == 0 {
		cfg.HashCost = 10
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	// Fill client defaults if empty
	home, _ := os.UserHomeDir()
	if cfg.TokenFile == "" {
		cfg.TokenFile = filepath.Join(home, ".dp_token")
	}

	return cfg
}

// ValidateServer проверяет обязательные для сервера секреты.
// Их отсутствие — фатальная ошибка конфигурации: сервер не должен стартовать
// и тем более не должен молча деградировать до plaintext.
func (c *Config) ValidateServer() error {
	if c.AuthSecret == "" {
		return errors.New("config: AUTH_SECRET is required")
	}
	if c.CryptSecret == "" {
		return errors.New("config: CRYPT_SECRET is required")
	}
	return nil
}
