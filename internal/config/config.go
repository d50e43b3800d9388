package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

const envPrefix = "SHOPCART_"

type Config struct {
	DatabaseURL string `yaml:"database_url"`
	LogMode     string `yaml:"log_mode"`
	Owner       string `yaml:"owner"`
	Currency    string `yaml:"currency"`
	ListLimit   int    `yaml:"list_limit"`
}

func Default() Config {
	return Config{
		LogMode:   "development",
		Owner:     "Ewolo",
		Currency:  "USD",
		ListLimit: 10,
	}
}

// Load reads the optional YAML file at path over the defaults, then applies
// SHOPCART_* environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("os.ReadFile: %w", err)
		}

		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("yaml.Unmarshal: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, fmt.Errorf("cfg.applyEnv: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookup("DATABASE_URL"); ok {
		c.DatabaseURL = v
	}
	if v, ok := lookup("LOG_MODE"); ok {
		c.LogMode = v
	}
	if v, ok := lookup("OWNER"); ok {
		c.Owner = v
	}
	if v, ok := lookup("CURRENCY"); ok {
		c.Currency = v
	}
	if v, ok := lookup("LIST_LIMIT"); ok {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sLIST_LIMIT[%s] is not a number: %w", envPrefix, v, err)
		}
		c.ListLimit = limit
	}

	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return "", false
	}

	v = strings.TrimSpace(v)
	return v, v != ""
}

func (c Config) Validate() error {
	var errs []error

	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("database_url is empty"))
	}
	if strings.TrimSpace(c.Owner) == "" {
		errs = append(errs, errors.New("owner is empty"))
	}
	if c.ListLimit <= 0 {
		errs = append(errs, fmt.Errorf("list_limit[%d] must be positive", c.ListLimit))
	}
	if _, err := currency.ParseISO(c.Currency); err != nil {
		errs = append(errs, fmt.Errorf("currency[%s] is not valid: %w", c.Currency, err))
	}

	return errors.Join(errs...)
}

// CurrencyUnit is only meaningful on a validated config.
func (c Config) CurrencyUnit() currency.Unit {
	return currency.MustParseISO(c.Currency)
}
