package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Window.Width != DefaultConfig.Window.Width {
		t.Errorf("Expected default width %d, got %d", DefaultConfig.Window.Width, cfg.Window.Width)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "socket_path = \"/tmp/other_socket\"\n\n[animation]\nduration = 400\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.SocketPath != "/tmp/other_socket" {
		t.Errorf("Expected socket path override, got %s", cfg.SocketPath)
	}
	if cfg.Animation.Duration != 400 {
		t.Errorf("Expected duration 400, got %d", cfg.Animation.Duration)
	}
	if cfg.Animation.FrameInterval != DefaultConfig.Animation.FrameInterval {
		t.Errorf("Expected default frame interval, got %d", cfg.Animation.FrameInterval)
	}
	if cfg.Probe.Interval != 2000 {
		t.Errorf("Expected default probe interval 2000, got %d", cfg.Probe.Interval)
	}
}

func TestLoadConfig_InvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[window\nwidth ="), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected parse error")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig
	cfg.Window.Inset = 24

	if err := SaveConfig(&cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Window.Inset != 24 {
		t.Errorf("Expected inset 24, got %d", loaded.Window.Inset)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"narrow window", func(c *Config) { c.Window.Width = 10 }, "window width"},
		{"negative inset", func(c *Config) { c.Window.Inset = -1 }, "inset"},
		{"zero frame interval", func(c *Config) { c.Animation.FrameInterval = 0 }, "frame_interval"},
		{"long animation", func(c *Config) { c.Animation.Duration = 5000 }, "animation duration"},
		{"empty cache", func(c *Config) { c.Search.CacheSize = 0 }, "cache_size"},
		{"fast probe", func(c *Config) { c.Probe.Interval = 10 }, "probe interval"},
		{"no socket", func(c *Config) { c.SocketPath = "" }, "socket_path"},
		{"tiny font", func(c *Config) { c.Styling.FontSize = 2 }, "font_size"},
		{"huge radius", func(c *Config) { c.Styling.BorderRadius = 99 }, "border_radius"},
	}

	for _, tc := range testCases {
		cfg := DefaultConfig
		tc.mutate(&cfg)
		err := cfg.Validate()
		if tc.wantErr == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("%s: expected error containing %q, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestDurations(t *testing.T) {
	a := AnimationConfig{Duration: 250, FrameInterval: 16}
	if a.DurationValue() != 250*time.Millisecond {
		t.Errorf("Unexpected duration %v", a.DurationValue())
	}
	if a.FrameIntervalValue() != 16*time.Millisecond {
		t.Errorf("Unexpected frame interval %v", a.FrameIntervalValue())
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[window]\ninset = 10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg *Config) {
			select {
			case changes <- cfg:
			default:
			}
		})
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("[window]\ninset = 32\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// A single write can surface as several events (truncate, then data), so
	// wait for the reload that carries the new value.
	timeout := time.After(3 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case cfg := <-changes:
			reloaded = cfg.Window.Inset == 32
		case <-timeout:
			t.Fatal("Timed out waiting for config reload")
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch returned error: %v", err)
	}
}
