package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chess10kp/walter/internal/config"
	"github.com/chess10kp/walter/internal/ipc"
)

const socketEnv = "WALTER_SOCKET"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "walter-client",
		Short:         "Control a running walter panel",
		Long:          "Sends commands to walter over its Unix socket, e.g. from a window manager keybinding.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("socket", "", "socket path (default: $"+socketEnv+" or the config's socket_path)")
	root.PersistentFlags().String("config", config.DefaultConfigPath, "config file used to find the socket path")

	simple := []struct {
		kind  string
		short string
	}{
		{ipc.CmdToggle, "Show the panel, or hide it when it is active"},
		{ipc.CmdShow, "Show the panel"},
		{ipc.CmdHide, "Hide the panel"},
		{ipc.CmdCancel, "Hide the panel and clear the query"},
		{ipc.CmdNext, "Highlight the next action"},
		{ipc.CmdRun, "Submit the query or run the highlighted action"},
	}
	for _, s := range simple {
		root.AddCommand(newSendCmd(s.kind, s.short))
	}
	root.AddCommand(newQueryCmd())
	root.AddCommand(newProbeCmd())

	return root
}

func newSendCmd(kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   kind,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd, ipc.Command{Kind: kind})
		},
	}
}

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <text>",
		Short: "Replace the query text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd, ipc.Command{Kind: ipc.CmdQuery, Arg: args[0]})
		},
	}
}

func send(cmd *cobra.Command, c ipc.Command) error {
	socketPath, err := resolveSocketPath(cmd)
	if err != nil {
		return err
	}
	if err := ipc.Send(socketPath, c); err != nil {
		return fmt.Errorf("%w\nIs walter running?", err)
	}
	return nil
}

// resolveSocketPath prefers --socket, then $WALTER_SOCKET, then the config.
func resolveSocketPath(cmd *cobra.Command) (string, error) {
	if socketPath, _ := cmd.Flags().GetString("socket"); socketPath != "" {
		return config.ExpandPath(socketPath), nil
	}
	if socketPath := os.Getenv(socketEnv); socketPath != "" {
		return config.ExpandPath(socketPath), nil
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to read socket path from config: %w", err)
	}
	return cfg.SocketPath, nil
}
