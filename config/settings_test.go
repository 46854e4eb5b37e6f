package config

import (
	"testing"
	"time"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // keep a developer's real config file out

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if s.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", s.Addr)
	}
	if s.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", s.RequestTimeout)
	}
	if s.DetailWorkers != 4 {
		t.Errorf("DetailWorkers = %d, want 4", s.DetailWorkers)
	}
}

func TestLoadSettings_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("YTCATALOG_ADDR", ":9999")
	t.Setenv("YTCATALOG_REQUEST_TIMEOUT", "5s")
	t.Setenv("YTCATALOG_PROVIDER_RPS", "2.5")
	t.Setenv("YTCATALOG_PROJECT_ID", "my-project")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if s.Addr != ":9999" {
		t.Errorf("Addr = %q, want :9999", s.Addr)
	}
	if s.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", s.RequestTimeout)
	}
	if s.ProviderRPS != 2.5 {
		t.Errorf("ProviderRPS = %f, want 2.5", s.ProviderRPS)
	}
	if s.ProjectID != "my-project" {
		t.Errorf("ProjectID = %q, want my-project", s.ProjectID)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults are valid", func(s *Settings) {}, false},
		{"empty addr", func(s *Settings) { s.Addr = "" }, true},
		{"zero timeout", func(s *Settings) { s.RequestTimeout = 0 }, true},
		{"negative rps", func(s *Settings) { s.ProviderRPS = -1 }, true},
		{"zero workers", func(s *Settings) { s.DetailWorkers = 0 }, true},
		{"max backoff below initial", func(s *Settings) { s.MaxBackoff = s.InitialBackoff / 2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)
			if err := s.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
