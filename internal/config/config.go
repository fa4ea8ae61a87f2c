package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the runtime configuration of the client service
type Config struct {
	Port            int
	BackendURL      string
	BackendToken    string
	RequestTimeout  time.Duration
	BidPollInterval time.Duration
	ViewTTL         time.Duration
	Location        *time.Location
	FrontendURL     string
	StripeSecretKey string
	StripePriceID   string
	LogLevel        string
}

// Addr is the listen address for Port
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads flags from args, then UCHOOSE_* environment overrides. The bare PORT
// variable is honored when neither --port nor UCHOOSE_PORT is set.
func Load(args []string) (Config, error) {
	fs := pflag.NewFlagSet("uchoose-client", pflag.ContinueOnError)
	fs.Int("port", 8080, "HTTP listen port")
	fs.String("backend-url", "http://localhost:8000/api/", "base URL of the UChoose backend API")
	fs.String("backend-token", "", "bearer token used when a request carries none")
	fs.Duration("request-timeout", 10*time.Second, "timeout of a single backend call")
	fs.Duration("bid-poll-interval", 5*time.Second, "how often an open auction view refreshes its bids")
	fs.Duration("view-ttl", 2*time.Minute, "how long an auction view stays open without being read")
	fs.String("location", "Europe/Madrid", "IANA zone naive backend timestamps are interpreted in")
	fs.String("frontend-url", "http://localhost:5173", "base URL checkout redirects return to")
	fs.String("stripe-secret-key", "", "Stripe secret key; checkout is disabled when empty")
	fs.String("stripe-credit-price-id", "", "Stripe price id of one credit")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}
	v.SetEnvPrefix("UCHOOSE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if !fs.Changed("port") {
		if err := v.BindEnv("port", "UCHOOSE_PORT", "PORT"); err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		Port:            v.GetInt("port"),
		BackendURL:      strings.TrimSpace(v.GetString("backend-url")),
		BackendToken:    v.GetString("backend-token"),
		RequestTimeout:  v.GetDuration("request-timeout"),
		BidPollInterval: v.GetDuration("bid-poll-interval"),
		ViewTTL:         v.GetDuration("view-ttl"),
		FrontendURL:     strings.TrimSpace(v.GetString("frontend-url")),
		StripeSecretKey: v.GetString("stripe-secret-key"),
		StripePriceID:   v.GetString("stripe-credit-price-id"),
		LogLevel:        v.GetString("log-level"),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.BackendURL == "" {
		return Config{}, errors.New("backend url is required")
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid request timeout %s", cfg.RequestTimeout)
	}
	if cfg.BidPollInterval <= 0 {
		return Config{}, fmt.Errorf("invalid bid poll interval %s", cfg.BidPollInterval)
	}
	if cfg.ViewTTL <= 0 {
		return Config{}, fmt.Errorf("invalid view ttl %s", cfg.ViewTTL)
	}

	loc, err := time.LoadLocation(v.GetString("location"))
	if err != nil {
		return Config{}, fmt.Errorf("load location: %w", err)
	}
	cfg.Location = loc

	return cfg, nil
}
