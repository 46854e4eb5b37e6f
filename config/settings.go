package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Settings holds service-level configuration: the HTTP listener and outbound
// call behavior. Per-content keys (API key, playlist ids) go through Resolver
// instead.
type Settings struct {
	// Addr is the HTTP listen address (default ":8080")
	Addr string `json:"addr"`
	// RequestTimeout bounds one inbound request end to end, including all
	// provider pagination it triggers
	RequestTimeout time.Duration `json:"request_timeout"`

	// ProviderRPS throttles YouTube Data API calls (0 = unthrottled)
	ProviderRPS float64 `json:"provider_rps"`
	// DetailWorkers caps concurrent video-detail batch fetches
	DetailWorkers int `json:"detail_workers"`

	// ProjectID overrides the Firebase project for remote configuration
	ProjectID string `json:"project_id"`

	// MaxRetries is the retry budget for the remote configuration fetch
	MaxRetries int `json:"max_retries"`
	// InitialBackoff is the initial backoff for those retries
	InitialBackoff time.Duration `json:"initial_backoff"`
	// MaxBackoff is the maximum backoff for those retries
	MaxBackoff time.Duration `json:"max_backoff"`
}

// DefaultSettings returns settings with safe defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Addr:           ":8080",
		RequestTimeout: 30 * time.Second,
		ProviderRPS:    0,
		DetailWorkers:  4,
		MaxRetries:     2,
		InitialBackoff: 200 * time.Millisecond,
		MaxBackoff:     2 * time.Second,
	}
}

// LoadSettings loads settings from environment variables, config file, and
// applies defaults. Priority: env vars > config file > defaults
func LoadSettings() (*Settings, error) {
	s := DefaultSettings()

	if err := s.loadFromFile(); err != nil {
		// Config file is optional
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	s.loadFromEnv()

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// loadFromFile attempts to load settings from ytcatalog.json in the current
// directory or home config directory.
func (s *Settings) loadFromFile() error {
	paths := []string{
		"ytcatalog.json",
		filepath.Join(os.Getenv("HOME"), ".config", "ytcatalog", "ytcatalog.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, s); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides settings with environment variables.
func (s *Settings) loadFromEnv() {
	if v := os.Getenv("YTCATALOG_ADDR"); v != "" {
		s.Addr = v
	}
	if v := os.Getenv("YTCATALOG_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			s.RequestTimeout = d
		}
	}
	if v := os.Getenv("YTCATALOG_PROVIDER_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.ProviderRPS = f
		}
	}
	if v := os.Getenv("YTCATALOG_DETAIL_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.DetailWorkers = n
		}
	}
	if v := os.Getenv("YTCATALOG_PROJECT_ID"); v != "" {
		s.ProjectID = v
	}
	if v := os.Getenv("YTCATALOG_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.MaxRetries = n
		}
	}
	if v := os.Getenv("YTCATALOG_INITIAL_BACKOFF"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			s.InitialBackoff = d
		}
	}
	if v := os.Getenv("YTCATALOG_MAX_BACKOFF"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			s.MaxBackoff = d
		}
	}
}

// Validate checks that settings values are valid and consistent.
func (s *Settings) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	if s.ProviderRPS < 0 {
		return fmt.Errorf("provider_rps must be non-negative")
	}
	if s.DetailWorkers < 1 {
		return fmt.Errorf("detail_workers must be at least 1")
	}
	if s.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative")
	}
	if s.InitialBackoff <= 0 || s.MaxBackoff < s.InitialBackoff {
		return fmt.Errorf("backoff durations are inconsistent")
	}
	return nil
}
