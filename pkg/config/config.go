package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Logging     struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"logging"`
	Server struct {
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Aggregation struct {
		CacheTTL       time.Duration `yaml:"cache_ttl" default:"5m"`
		FetchTimeout   time.Duration `yaml:"fetch_timeout" default:"5s"`
		MaxConcurrent  int           `yaml:"max_concurrent_fetches" default:"4"`
		PriceMin       int           `yaml:"price_min" default:"500"`
		PriceMax       int           `yaml:"price_max" default:"5000" validate:"gtfield=PriceMin"`
		HistoryMonths  int           `yaml:"history_months" default:"6" validate:"gte=1"`
		UserAgent      string        `yaml:"user_agent" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
	} `yaml:"aggregation"`
	Sources []SourceConfig `yaml:"sources" validate:"required,min=1,dive"`
	Redis   struct {
		Enabled  bool   `yaml:"enabled"`
		Addr     string `yaml:"addr" default:"localhost:6379"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Kafka struct {
		Enabled bool     `yaml:"enabled"`
		Brokers []string `yaml:"brokers"`
		Topic   string   `yaml:"topic" default:"sawit.quotes"`
	} `yaml:"kafka"`
}

// SourceConfig describes one external quote endpoint.
// Type "api" endpoints return the known JSON price list shape;
// "document" endpoints are scanned with the price/region matchers.
// Region pins the region for documents that cover a single province.
type SourceConfig struct {
	Name   string `yaml:"name" validate:"required"`
	Type   string `yaml:"type" validate:"required,oneof=api document"`
	URL    string `yaml:"url" validate:"required,url"`
	Region string `yaml:"region"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("SAWIT_USER_AGENT"); v != "" {
		c.Aggregation.UserAgent = v
	}
	if v := os.Getenv("SAWIT_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SAWIT_CACHE_TTL: %w", err)
		}
		c.Aggregation.CacheTTL = d
	}
	if v := os.Getenv("SAWIT_PRICE_MIN"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SAWIT_PRICE_MIN: %w", err)
		}
		c.Aggregation.PriceMin = n
	}
	if v := os.Getenv("SAWIT_PRICE_MAX"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SAWIT_PRICE_MAX: %w", err)
		}
		c.Aggregation.PriceMax = n
	}
	if v := os.Getenv("SAWIT_REDIS_ADDR"); v != "" {
		c.Redis.Enabled = true
		c.Redis.Addr = v
	}
	if v := os.Getenv("SAWIT_KAFKA_BROKERS"); v != "" {
		c.Kafka.Enabled = true
		c.Kafka.Brokers = strings.Split(v, ",")
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
	}
	return nil
}
