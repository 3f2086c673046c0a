package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const (
	CatalogCSV      = "csv"
	CatalogPostgres = "postgres"
)

type Config struct {
	HTTPPort string         `yaml:"http_port" env:"HTTP_PORT" env-default:":3000" validate:"required"`
	Debug    bool           `yaml:"debug" env:"DEBUG"`
	Exchange ExchangeConfig `yaml:"exchange"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	DB       DBConfig       `yaml:"db"`
}

// ExchangeConfig configures the rate service client.
// Zero throttling values leave the guard disabled
type ExchangeConfig struct {
	BaseURL           string        `yaml:"base_url" env:"ALPHAVANTAGE_BASE_URL" validate:"omitempty,url"`
	APIKey            string        `yaml:"api_key" env:"ALPHAVANTAGE_API_KEY" validate:"required"`
	Timeout           time.Duration `yaml:"timeout" env:"ALPHAVANTAGE_TIMEOUT" validate:"gte=0"`
	RequestsPerSecond float64       `yaml:"requests_per_second" validate:"gte=0"`
	MaxConcurrent     int64         `yaml:"max_concurrent" validate:"gte=0"`
	BreakerErrors     int           `yaml:"breaker_errors" validate:"gte=0"`
	BreakerTimeout    time.Duration `yaml:"breaker_timeout" validate:"gte=0"`
}

type CatalogConfig struct {
	Source       string `yaml:"source" env:"CATALOG_SOURCE" env-default:"csv" validate:"oneof=csv postgres"`
	Path         string `yaml:"path" env:"CATALOG_PATH" env-default:"digital_currency_list.csv"`
	ExpectedSize int    `yaml:"expected_size" env:"CATALOG_EXPECTED_SIZE" validate:"gte=0"`
}

type DBConfig struct {
	Username string `yaml:"username" env:"DB_USERNAME"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     string `yaml:"port" env:"DB_PORT"`
	Name     string `yaml:"name" env:"DB_NAME"`
	Migrate  bool   `yaml:"migrate" env:"DB_MIGRATE"`
}

// ConnString returns postgres connection string
func (c DBConfig) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
	)
}

// LoadConfig reads configuration file at path, overlays
// environment variables and validates the result.
// A missing file is not an error, env alone may configure
func LoadConfig(path string) (Config, error) {
	cfg := Config{}

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("unable to parse configuration file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("unable to read configuration file: %w", err)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Catalog.Source == CatalogCSV && c.Catalog.Path == "" {
		return errors.New("invalid configuration: catalog path is required for csv source")
	}

	if c.Catalog.Source == CatalogPostgres && (c.DB.Host == "" || c.DB.Name == "") {
		return errors.New("invalid configuration: db host and name are required for postgres source")
	}

	return nil
}
