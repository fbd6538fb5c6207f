package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chess10kp/walter/internal/config"
	"github.com/chess10kp/walter/internal/core"
)

const pidFile = "/tmp/walter.pid"

func init() {
	// GTK and the window server both require the main OS thread.
	runtime.LockOSThread()
}

func ensureSingleInstance() error {
	if data, err := os.ReadFile(pidFile); err == nil {
		if pid, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil && pid != os.Getpid() {
			process, err := os.FindProcess(pid)
			if err == nil {
				// Replace a running instance
				if err := process.Signal(syscall.Signal(0)); err == nil {
					process.Kill()
					process.Wait()
				}
			}
		}
	}
	currentPid := os.Getpid()
	return os.WriteFile(pidFile, []byte(strconv.Itoa(currentPid)), 0644)
}

func cleanup() {
	os.Remove(pidFile)
}

func setupLogging(path string) *os.File {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil
	}
	log.SetOutput(logFile)
	return logFile
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		foreground bool
	)

	cmd := &cobra.Command{
		Use:           "walter",
		Short:         "Menu bar launcher panel toggled with a global hotkey",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, foreground)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "path to the TOML config file")
	cmd.Flags().BoolVar(&foreground, "foreground", false, "log to stderr instead of the log file")
	return cmd
}

func run(configPath string, foreground bool) error {
	cfg, err := config.LoadAndValidateConfig(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		defaults := config.DefaultConfig
		cfg = &defaults
	}

	if !foreground {
		if logFile := setupLogging(config.ExpandPath(cfg.LogFile)); logFile != nil {
			defer logFile.Close()
		}
	}

	if err := ensureSingleInstance(); err != nil {
		return fmt.Errorf("failed to ensure single instance: %w", err)
	}
	defer cleanup()

	app, err := core.NewApp(cfg, configPath)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return app.Run()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
