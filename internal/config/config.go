package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const DefaultConfigPath = "~/.config/walter/config.toml"

type Config struct {
	AppName    string          `toml:"app_name"`
	AppID      string          `toml:"app_id"`
	SocketPath string          `toml:"socket_path"`
	LogFile    string          `toml:"log_file"`
	Window     WindowConfig    `toml:"window"`
	Animation  AnimationConfig `toml:"animation"`
	Search     SearchConfig    `toml:"search"`
	Probe      ProbeConfig     `toml:"probe"`
	Styling    StylingConfig   `toml:"styling"`
}

type WindowConfig struct {
	Width      int  `toml:"width"`
	MinHeight  int  `toml:"min_height"`
	Inset      int  `toml:"inset"` // distance from the right edge when shown
	KeepAbove  bool `toml:"keep_above"`
	StatusIcon bool `toml:"status_icon"`
}

type AnimationConfig struct {
	Duration      int `toml:"duration"`       // ms for a full slide
	FrameInterval int `toml:"frame_interval"` // ms between frames
}

func (a AnimationConfig) DurationValue() time.Duration {
	return time.Duration(a.Duration) * time.Millisecond
}

func (a AnimationConfig) FrameIntervalValue() time.Duration {
	return time.Duration(a.FrameInterval) * time.Millisecond
}

type SearchConfig struct {
	FuzzySearch bool `toml:"fuzzy_search"`
	CacheSize   int  `toml:"cache_size"`
}

type ProbeConfig struct {
	Enabled  bool `toml:"enabled"`
	Interval int  `toml:"interval"` // ms
}

func (p ProbeConfig) IntervalValue() time.Duration {
	return time.Duration(p.Interval) * time.Millisecond
}

type StylingConfig struct {
	BackgroundColor string `toml:"background_color"`
	ForegroundColor string `toml:"foreground_color"`
	AccentColor     string `toml:"accent_color"`
	DangerColor     string `toml:"danger_color"`
	BorderColor     string `toml:"border_color"`
	BorderRadius    int    `toml:"border_radius"`
	FontFamily      string `toml:"font_family"`
	FontSize        int    `toml:"font_size"`
	CustomCSS       string `toml:"custom_css"` // optional stylesheet layered on top
}

var DefaultConfig = Config{
	AppName:    "walter",
	AppID:      "com.github.chess10kp.walter",
	SocketPath: "/tmp/walter_socket",
	LogFile:    "~/.cache/walter/walter.log",
	Window: WindowConfig{
		Width:      400,
		MinHeight:  120,
		Inset:      10,
		KeepAbove:  true,
		StatusIcon: true,
	},
	Animation: AnimationConfig{
		Duration:      250,
		FrameInterval: 16,
	},
	Search: SearchConfig{
		FuzzySearch: true,
		CacheSize:   128,
	},
	Probe: ProbeConfig{
		Enabled:  true,
		Interval: 2000,
	},
	Styling: StylingConfig{
		BackgroundColor: "#1e1e2e",
		ForegroundColor: "#cdd6f4",
		AccentColor:     "#89b4fa",
		DangerColor:     "#f38ba8",
		BorderColor:     "#313244",
		BorderRadius:    8,
		FontFamily:      "-apple-system, Helvetica Neue, sans-serif",
		FontSize:        14,
	},
}

// LoadConfig reads the TOML file at path. A missing file yields a copy of
// DefaultConfig; keys absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	expandedPath := ExpandPath(path)

	if _, err := os.Stat(expandedPath); os.IsNotExist(err) {
		cfg := DefaultConfig
		cfg.expand()
		return &cfg, nil
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", expandedPath, err)
	}
	cfg.expand()

	return &cfg, nil
}

func LoadAndValidateConfig(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) expand() {
	c.SocketPath = ExpandPath(c.SocketPath)
	c.LogFile = ExpandPath(c.LogFile)
}

// ExpandPath replaces a leading ~ with the current user's home directory.
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		usr, err := user.Current()
		if err == nil {
			return filepath.Join(usr.HomeDir, path[1:])
		}
	}
	return path
}

func SaveConfig(cfg *Config, path string) error {
	expandedPath := ExpandPath(path)

	dir := filepath.Dir(expandedPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(expandedPath, data, 0644)
}

func (c *Config) Validate() error {
	if c.SocketPath == "" {
		return fmt.Errorf("socket_path must not be empty")
	}
	if err := c.validateWindow(); err != nil {
		return err
	}
	if err := c.validateAnimation(); err != nil {
		return err
	}
	if err := c.validateSearch(); err != nil {
		return err
	}
	if err := c.validateProbe(); err != nil {
		return err
	}
	if err := c.validateStyling(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateWindow() error {
	w := c.Window
	if w.Width < 100 || w.Width > 2000 {
		return fmt.Errorf("invalid window width: %d (must be 100-2000)", w.Width)
	}
	if w.MinHeight < 50 || w.MinHeight > 2000 {
		return fmt.Errorf("invalid window min_height: %d (must be 50-2000)", w.MinHeight)
	}
	if w.Inset < 0 || w.Inset > 200 {
		return fmt.Errorf("invalid window inset: %d (must be 0-200px)", w.Inset)
	}
	return nil
}

func (c *Config) validateAnimation() error {
	a := c.Animation
	if a.Duration < 0 || a.Duration > 2000 {
		return fmt.Errorf("invalid animation duration: %d (must be 0-2000ms)", a.Duration)
	}
	if a.FrameInterval < 1 || a.FrameInterval > 100 {
		return fmt.Errorf("invalid animation frame_interval: %d (must be 1-100ms)", a.FrameInterval)
	}
	return nil
}

func (c *Config) validateSearch() error {
	if c.Search.CacheSize < 1 || c.Search.CacheSize > 10000 {
		return fmt.Errorf("invalid search cache_size: %d (must be 1-10000)", c.Search.CacheSize)
	}
	return nil
}

func (c *Config) validateProbe() error {
	if c.Probe.Interval < 250 || c.Probe.Interval > 60000 {
		return fmt.Errorf("invalid probe interval: %d (must be 250-60000ms)", c.Probe.Interval)
	}
	return nil
}

func (c *Config) validateStyling() error {
	s := c.Styling
	if s.FontSize < 6 || s.FontSize > 72 {
		return fmt.Errorf("invalid styling font_size: %d (must be 6-72)", s.FontSize)
	}
	if s.BorderRadius < 0 || s.BorderRadius > 50 {
		return fmt.Errorf("invalid styling border_radius: %d (must be 0-50)", s.BorderRadius)
	}
	return nil
}

func ValidateConfig(path string) error {
	_, err := LoadAndValidateConfig(path)
	return err
}
