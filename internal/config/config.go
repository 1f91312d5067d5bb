// Package config loads the service and CLI settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Renderer names accepted in RENDERER.
const (
	RendererChromedp = "chromedp"
	RendererRod      = "rod"
)

// Config is the process configuration. Every field has a default so an
// empty environment yields a working local setup without a jobs database.
type Config struct {
	Port            string        `validate:"required,numeric"`
	JobsDatabaseURL string        `validate:"omitempty,url"`
	Renderer        string        `validate:"oneof=chromedp rod"`
	ChromePath      string        `validate:"omitempty,filepath"`
	OutputDir       string        `validate:"required"`
	RenderTimeout   time.Duration `validate:"gt=0"`
	RenderAttempts  int           `validate:"min=1,max=10"`
	GalleryWorkers  int           `validate:"min=1,max=32"`
	DefaultTemplate string        `validate:"required"`
	LogLevel        string        `validate:"oneof=debug info warn warning error"`
}

// Default returns the configuration used for unset variables.
func Default() Config {
	return Config{
		Port:            "3000",
		Renderer:        RendererChromedp,
		OutputDir:       "resume-data/generated",
		RenderTimeout:   60 * time.Second,
		RenderAttempts:  3,
		GalleryWorkers:  4,
		DefaultTemplate: "professional",
		LogLevel:        "info",
	}
}

// Load reads a .env file when present and then the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a validated Config from getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := Default()
	var errs []error

	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not a number", key, v))
			return
		}
		*dst = n
	}

	str("PORT", &cfg.Port)
	str("JOBS_DATABASE_URL", &cfg.JobsDatabaseURL)
	str("RENDERER", &cfg.Renderer)
	str("CHROME_PATH", &cfg.ChromePath)
	str("OUTPUT_DIR", &cfg.OutputDir)
	str("DEFAULT_TEMPLATE", &cfg.DefaultTemplate)
	str("LOG_LEVEL", &cfg.LogLevel)
	num("RENDER_ATTEMPTS", &cfg.RenderAttempts)
	num("GALLERY_WORKERS", &cfg.GalleryWorkers)
	if v := strings.TrimSpace(getenv("RENDER_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("RENDER_TIMEOUT: %w", err))
		} else {
			cfg.RenderTimeout = d
		}
	}
	cfg.Renderer = strings.ToLower(cfg.Renderer)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if len(errs) > 0 {
		return nil, fmt.Errorf("config error: %w", errors.Join(errs...))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values with struct tags.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("'%s' failed %q check", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
}
