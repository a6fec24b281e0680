package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ShopConfig carries the shop metadata exposed to the feed templates.
type ShopConfig struct {
	Title       string `yaml:"title" validate:"required"`
	Domain      string `yaml:"domain" validate:"required,startswith=https://"`
	Description string `yaml:"description"`
	StoreCode   string `yaml:"store_code"`
	Country     string `yaml:"country" validate:"required"`
	Currency    string `yaml:"currency" validate:"required"`
	Timezone    string `yaml:"timezone"`
}

// SourceConfig selects and configures the upstream catalog platform.
type SourceConfig struct {
	Kind              string  `yaml:"kind" validate:"required,oneof=lightspeed ccvshop"`
	BaseURL           string  `yaml:"base_url" validate:"required,url"`
	APIKey            string  `yaml:"api_key"`
	APISecret         string  `yaml:"api_secret"`
	PageSize          int     `yaml:"page_size" validate:"omitempty,min=1,max=250"`
	RequestsPerSecond float64 `yaml:"requests_per_second" validate:"omitempty,gt=0"`
}

// DeliveryConfig holds the delivery date messages attached to records whose
// stock tracking mode only indicates availability.
type DeliveryConfig struct {
	InStockMessage    string `yaml:"in_stock_message"`
	OutOfStockMessage string `yaml:"out_of_stock_message"`
}

// StorageConfig selects the feed store backend.
type StorageConfig struct {
	Backend string `yaml:"backend" validate:"required,oneof=file gcs postgres"`
	Dir     string `yaml:"dir"`
	Bucket  string `yaml:"bucket"`
}

// RedisConfig configures the optional raw-catalog cache in front of the
// source adapters.
type RedisConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	TTLSeconds int    `yaml:"ttl_seconds" validate:"omitempty,min=1"`
}

type ServerConfig struct {
	Addr         string `yaml:"addr"`
	TemplatesDir string `yaml:"templates_dir"`
}

type AppConfig struct {
	Shop     ShopConfig     `yaml:"shop"`
	Source   SourceConfig   `yaml:"source"`
	Delivery DeliveryConfig `yaml:"delivery"`
	Storage  StorageConfig  `yaml:"storage"`
	Redis    RedisConfig    `yaml:"redis"`
	Postgres PostgresConfig `yaml:"postgres"`
	Server   ServerConfig   `yaml:"server"`
}

func LoadConfig(filename string) (*AppConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	config := &AppConfig{}
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	config.applyDefaults()

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return config, nil
}

// applyDefaults fills optional fields and pulls secrets from the environment
// so API credentials can stay out of the config file.
func (c *AppConfig) applyDefaults() {
	if c.Source.APIKey == "" {
		c.Source.APIKey = getEnv("CATALOG_API_KEY", "")
	}
	if c.Source.APISecret == "" {
		c.Source.APISecret = getEnv("CATALOG_API_SECRET", "")
	}
	if c.Source.PageSize == 0 {
		c.Source.PageSize = 250
	}
	if c.Source.RequestsPerSecond == 0 {
		c.Source.RequestsPerSecond = 2
	}
	if c.Shop.Timezone == "" {
		c.Shop.Timezone = "US/Pacific"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = "file"
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = "."
	}
	if c.Storage.Backend == "postgres" && c.Postgres.Host == "" {
		c.Postgres = *GetPostgresConfig()
	}
	if c.Redis.Host == "" {
		c.Redis.Host = getEnv("REDIS_HOST", "localhost")
	}
	if c.Redis.Port == "" {
		c.Redis.Port = getEnv("REDIS_PORT", "6379")
	}
	if c.Redis.TTLSeconds == 0 {
		c.Redis.TTLSeconds = 30
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.TemplatesDir == "" {
		c.Server.TemplatesDir = "templates"
	}
}
