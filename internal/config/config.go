// Package config loads runtime configuration from viper-managed sources:
// config file, environment, and flags bound by the CLI layer.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config is everything the server needs at startup.
type Config struct {
	// Token is the YNAB personal access token.
	Token string
	// BudgetID is the default budget analyzed when a tool call does not
	// name one.
	BudgetID string
	// BaseURL overrides the YNAB API endpoint; empty means production.
	BaseURL string
	// CacheTTL bounds reuse of fetched API responses; zero disables the
	// in-memory cache.
	CacheTTL time.Duration
}

// Load reads configuration out of viper. The YNAB_API_TOKEN environment
// variable is honored directly so the server works with the conventional
// YNAB tooling setup, not just the YNSIGHT_-prefixed environment.
func Load() (*Config, error) {
	cfg := &Config{
		Token:    viper.GetString("ynab.token"),
		BudgetID: viper.GetString("ynab.budget_id"),
		BaseURL:  viper.GetString("ynab.base_url"),
		CacheTTL: viper.GetDuration("ynab.cache_ttl"),
	}

	if cfg.Token == "" {
		cfg.Token = os.Getenv("YNAB_API_TOKEN")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("YNAB API token is not configured: set ynab.token, YNSIGHT_YNAB_TOKEN, or YNAB_API_TOKEN")
	}

	return cfg, nil
}
