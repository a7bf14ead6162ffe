package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/midbel/scatter"
	"github.com/midbel/scatter/internal/dataset"
)

var (
	DefaultAddr     = ":8080"
	DefaultLevel    = "info"
	DefaultCacheTTL = 10 * time.Minute
)

type Margin struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

type Cache struct {
	TTL     time.Duration `yaml:"ttl"`
	Cleanup time.Duration `yaml:"cleanup"`
}

type Config struct {
	Data     string        `yaml:"data"`
	Strict   bool          `yaml:"strict"`
	Field    string        `yaml:"field"`
	Addr     string        `yaml:"addr"`
	LogLevel string        `yaml:"log_level"`
	Origins  []string      `yaml:"cors_origins"`
	Duration time.Duration `yaml:"duration"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin Margin  `yaml:"margin"`

	Cache Cache `yaml:"cache"`
}

func Default() Config {
	layout := scatter.DefaultLayout()
	return Config{
		Data:     dataset.DefaultPath,
		Field:    scatter.Poverty.String(),
		Addr:     DefaultAddr,
		LogLevel: DefaultLevel,
		Origins:  []string{"*"},
		Duration: scatter.DefaultDuration,
		Width:    layout.Width,
		Height:   layout.Height,
		Margin: Margin{
			Top:    layout.Top,
			Right:  layout.Right,
			Bottom: layout.Bottom,
			Left:   layout.Left,
		},
		Cache: Cache{
			TTL:     DefaultCacheTTL,
			Cleanup: 2 * DefaultCacheTTL,
		},
	}
}

// Load returns the default configuration updated with the content of
// file. An empty file name gives the default configuration.
func Load(file string) (Config, error) {
	cfg := Default()
	if file == "" {
		return cfg, nil
	}
	r, err := os.Open(file)
	if err != nil {
		return cfg, err
	}
	defer r.Close()

	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", file, err)
	}
	return cfg, nil
}

// Env updates the configuration from the SCATTER_* variables found by
// getenv.
func (c *Config) Env(getenv func(string) string) {
	if v := getenv("SCATTER_DATA"); v != "" {
		c.Data = v
	}
	if v := getenv("SCATTER_ADDR"); v != "" {
		c.Addr = v
	}
	if v := getenv("SCATTER_FIELD"); v != "" {
		c.Field = v
	}
	if v := getenv("SCATTER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("SCATTER_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Strict = b
		}
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.Data == "" {
		errs = append(errs, errors.New("data: location not set"))
	}
	if _, err := c.InitialField(); err != nil {
		errs = append(errs, fmt.Errorf("field: %w", err))
	}
	if err := c.Layout().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Duration < 0 {
		errs = append(errs, fmt.Errorf("duration: %s is negative", c.Duration))
	}
	return errors.Join(errs...)
}

func (c Config) InitialField() (scatter.Field, error) {
	return scatter.ParseHorizontal(c.Field)
}

func (c Config) Layout() scatter.Layout {
	return scatter.Layout{
		Width:  c.Width,
		Height: c.Height,
		Padding: scatter.Padding{
			Top:    c.Margin.Top,
			Right:  c.Margin.Right,
			Bottom: c.Margin.Bottom,
			Left:   c.Margin.Left,
		},
	}
}

func (c Config) Options() dataset.Options {
	return dataset.Options{
		Strict: c.Strict,
	}
}
