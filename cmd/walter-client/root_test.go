package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chess10kp/walter/internal/ipc"
)

func TestRootHasSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"toggle", "show", "hide", "cancel", "next", "run", "query", "probe"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == nil || cmd.Name() != name {
			t.Errorf("Expected subcommand %q, got %v (err %v)", name, cmd, err)
		}
	}
}

func TestResolveSocketPath(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(configPath, []byte(`socket_path = "/tmp/from-config.sock"`), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		env  string
		want string
	}{
		{"flag wins", []string{"toggle", "--socket", "/tmp/flag.sock", "--config", configPath}, "/tmp/env.sock", "/tmp/flag.sock"},
		{"env over config", []string{"toggle", "--config", configPath}, "/tmp/env.sock", "/tmp/env.sock"},
		{"config fallback", []string{"toggle", "--config", configPath}, "", "/tmp/from-config.sock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(socketEnv, tt.env)

			root := newRootCmd()
			cmd, rest, err := root.Find(tt.args)
			if err != nil {
				t.Fatalf("Find failed: %v", err)
			}
			if err := cmd.ParseFlags(rest); err != nil {
				t.Fatalf("ParseFlags failed: %v", err)
			}

			got, err := resolveSocketPath(cmd)
			if err != nil {
				t.Fatalf("resolveSocketPath failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

type queryHandler struct {
	got chan string
}

func (h *queryHandler) ToggleActivity()      {}
func (h *queryHandler) Show()                {}
func (h *queryHandler) Hide()                {}
func (h *queryHandler) Cancel()              {}
func (h *queryHandler) Next()                {}
func (h *queryHandler) SubmitOrRun()         {}
func (h *queryHandler) SetQuery(text string) { h.got <- text }

func TestQueryCommandSends(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "walter.sock")
	handler := &queryHandler{got: make(chan string, 1)}
	server := ipc.NewServer(socketPath, handler, nil)
	if err := server.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer server.Stop()

	root := newRootCmd()
	root.SetArgs([]string{"query", "open mail", "--socket", socketPath})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	select {
	case got := <-handler.got:
		if got != "open mail" {
			t.Errorf("Expected query %q, got %q", "open mail", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Query not delivered")
	}
}

func TestSendWithoutServerMentionsWalter(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"toggle", "--socket", filepath.Join(t.TempDir(), "none.sock")})
	root.SilenceErrors = true
	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "Is walter running?") {
		t.Errorf("Expected connection error, got %v", err)
	}
}
