package reveal

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk description of a comparison slider: window, asset
// root, autoplay timings and the slide catalog.
type Config struct {
	Window        WindowConfig       `yaml:"window"`
	Assets        string             `yaml:"assets"`
	ScreenshotDir string             `yaml:"screenshot_dir"`
	Autoplay      AutoplayFileConfig `yaml:"autoplay"`
	Slides        []SlideConfig      `yaml:"slides"`
	Descriptions  map[int]string     `yaml:"descriptions"`
}

// WindowConfig configures the Ebitengine window.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	ShowDebug bool   `yaml:"show_debug"`
}

// AutoplayFileConfig is the YAML form of AutoplayConfig (durations in ms).
type AutoplayFileConfig struct {
	Enabled      bool    `yaml:"enabled"`
	IntervalMS   int     `yaml:"interval_ms"`
	Step         float64 `yaml:"step"`
	DwellTicks   int     `yaml:"dwell_ticks"`
	CooldownMS   int     `yaml:"cooldown_ms"`
	StartPercent float64 `yaml:"start_percent"`
}

// SlideConfig is one slide entry in the config file.
type SlideConfig struct {
	Before  string `yaml:"before"`
	After   string `yaml:"after"`
	Caption string `yaml:"caption"`
}

// DefaultConfig returns sane defaults with an empty catalog.
func DefaultConfig() *Config {
	def := DefaultAutoplayConfig()
	return &Config{
		Window: WindowConfig{
			Title:  "Before / After",
			Width:  960,
			Height: 720,
		},
		Assets:        ".",
		ScreenshotDir: "screenshots",
		Autoplay: AutoplayFileConfig{
			Enabled:      true,
			IntervalMS:   int(def.Interval / time.Millisecond),
			Step:         def.Step,
			DwellTicks:   def.DwellTicks,
			CooldownMS:   int(def.Cooldown / time.Millisecond),
			StartPercent: def.StartPercent,
		},
	}
}

// LoadConfig reads and parses a YAML config file over DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses YAML config data over DefaultConfig and validates it.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window width and height must be > 0")
	}
	if len(c.Slides) == 0 {
		return fmt.Errorf("at least one slide is required")
	}
	for i, s := range c.Slides {
		if s.Before == "" || s.After == "" {
			return fmt.Errorf("slides[%d]: before and after are required", i)
		}
	}
	for idx := range c.Descriptions {
		if idx < 0 || idx >= len(c.Slides) {
			return fmt.Errorf("descriptions[%d]: no such slide", idx)
		}
	}
	a := c.Autoplay
	if a.IntervalMS <= 0 {
		return fmt.Errorf("autoplay.interval_ms must be > 0")
	}
	if a.Step <= 0 {
		return fmt.Errorf("autoplay.step must be > 0")
	}
	if a.DwellTicks < 0 {
		return fmt.Errorf("autoplay.dwell_ticks must be >= 0")
	}
	if a.CooldownMS < 0 {
		return fmt.Errorf("autoplay.cooldown_ms must be >= 0")
	}
	if a.StartPercent < 0 || a.StartPercent > 100 {
		return fmt.Errorf("autoplay.start_percent must be within [0, 100]")
	}
	return nil
}

// Catalog builds the immutable slide catalog described by the config.
func (c *Config) Catalog() (*Catalog, error) {
	slides := make([]SlideRecord, len(c.Slides))
	for i, s := range c.Slides {
		slides[i] = SlideRecord{Before: s.Before, After: s.After, Caption: s.Caption}
	}
	return NewCatalog(slides, c.Descriptions)
}

// AutoplayConfig converts the file form into engine settings.
func (c *Config) AutoplayConfig() AutoplayConfig {
	a := c.Autoplay
	return AutoplayConfig{
		Disabled:     !a.Enabled,
		Interval:     time.Duration(a.IntervalMS) * time.Millisecond,
		Step:         a.Step,
		DwellTicks:   a.DwellTicks,
		Cooldown:     time.Duration(a.CooldownMS) * time.Millisecond,
		StartPercent: a.StartPercent,
	}
}

// RunConfig returns the window settings for Run.
func (c *Config) RunConfig() RunConfig {
	return RunConfig{
		Title:     c.Window.Title,
		Width:     c.Window.Width,
		Height:    c.Window.Height,
		ShowDebug: c.Window.ShowDebug,
	}
}
