package main

import (
	"fmt"
	"os"

	"github.com/chess10kp/walter/internal/config"
)

func main() {
	configPath := config.DefaultConfigPath
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	fmt.Printf("Validating config: %s\n", configPath)

	cfg, err := config.LoadAndValidateConfig(configPath)
	if err != nil {
		fmt.Printf("❌ Config validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Config is valid!")
	fmt.Printf("   socket:    %s\n", cfg.SocketPath)
	fmt.Printf("   panel:     %dpx wide, %dpx inset\n", cfg.Window.Width, cfg.Window.Inset)
	fmt.Printf("   animation: %s at %s per frame\n", cfg.Animation.DurationValue(), cfg.Animation.FrameIntervalValue())
	if cfg.Probe.Enabled {
		fmt.Printf("   probe:     every %s\n", cfg.Probe.IntervalValue())
	} else {
		fmt.Println("   probe:     disabled")
	}
}
