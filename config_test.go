package annotator

import (
	"testing"
	"time"
)

func TestLoadConfigMissingKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	if _, err := LoadConfig(""); err == nil {
		t.Error("LoadConfig() should fail when no API key is available")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "env-key")
	}
}

func TestLoadConfigFlagOverridesEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	cfg, err := LoadConfig("flag-key")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.APIKey != "flag-key" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "flag-key")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q, want gemini-2.0-flash", cfg.Model)
	}
	if cfg.Temperature != 0.5 {
		t.Errorf("Temperature = %v, want 0.5", cfg.Temperature)
	}
	if cfg.MaxUploadDim != 1024 {
		t.Errorf("MaxUploadDim = %d, want 1024", cfg.MaxUploadDim)
	}
	if cfg.PollInterval != 10*time.Second {
		t.Errorf("PollInterval = %v, want 10s", cfg.PollInterval)
	}
	if cfg.PollTimeout != 0 {
		t.Errorf("PollTimeout = %v, want 0 (unbounded)", cfg.PollTimeout)
	}
	if cfg.APIKey != "" {
		t.Error("DefaultConfig() must not carry an API key")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.APIKey = "k"
	if err := valid.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty model", func(c *Config) { c.Model = "" }},
		{"temperature too high", func(c *Config) { c.Temperature = 2.5 }},
		{"negative temperature", func(c *Config) { c.Temperature = -0.1 }},
		{"upload quality zero", func(c *Config) { c.UploadQuality = 0 }},
		{"output quality over 100", func(c *Config) { c.OutputQuality = 101 }},
		{"negative upload dim", func(c *Config) { c.MaxUploadDim = -1 }},
		{"zero poll interval", func(c *Config) { c.PollInterval = 0 }},
		{"negative poll timeout", func(c *Config) { c.PollTimeout = -time.Second }},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() should fail", tc.name)
		}
	}
}
