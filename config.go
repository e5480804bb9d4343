package annotator

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// EnvAPIKey is the environment variable holding the Gemini API key.
const EnvAPIKey = "GEMINI_API_KEY"

// Config holds the application configuration. It is an explicit value passed
// into the annotator and the vendor client; nothing is read from process-wide
// state after LoadConfig returns.
type Config struct {
	APIKey      string
	Model       string
	Temperature float64

	// MaxUploadDim caps the long side of images sent to the model, in
	// pixels. UploadQuality is the JPEG quality of the payload and
	// OutputQuality the quality of saved annotated images.
	MaxUploadDim  int
	UploadQuality int
	OutputQuality int

	// PollInterval is the delay between video processing status checks.
	// PollTimeout bounds the whole wait; zero waits without bound.
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// DefaultConfig returns a configuration with default values. The API key is
// left empty and must be resolved through LoadConfig or set by the caller.
func DefaultConfig() *Config {
	return &Config{
		Model:         "gemini-2.0-flash",
		Temperature:   0.5,
		MaxUploadDim:  1024,
		UploadQuality: 85,
		OutputQuality: 90,
		PollInterval:  10 * time.Second,
	}
}

// LoadConfig builds the configuration, resolving the API key from the given
// flag value, the process environment, or a .env file in the working
// directory or its parent. A missing key is fatal before any network call is
// attempted.
func LoadConfig(apiKeyFlag string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.APIKey = resolveAPIKey(apiKeyFlag)
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s not set: export it, add it to a .env file, or pass --api-key", EnvAPIKey)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	// .env in the working directory, then in the parent directory.
	_ = godotenv.Load()
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	_ = godotenv.Load(filepath.Join("..", ".env"))
	return os.Getenv(EnvAPIKey)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2")
	}
	if c.UploadQuality < 1 || c.UploadQuality > 100 {
		return fmt.Errorf("upload quality must be between 1 and 100")
	}
	if c.OutputQuality < 1 || c.OutputQuality > 100 {
		return fmt.Errorf("output quality must be between 1 and 100")
	}
	if c.MaxUploadDim < 0 {
		return fmt.Errorf("max upload dimension must not be negative")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive")
	}
	if c.PollTimeout < 0 {
		return fmt.Errorf("poll timeout must not be negative")
	}
	return nil
}
