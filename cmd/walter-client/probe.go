package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chess10kp/walter/internal/platform"
	"github.com/chess10kp/walter/internal/probe"
)

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Print one accessibility report of the frontmost application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inspector, err := platform.NewInspector()
			if err != nil {
				return err
			}
			if !inspector.IsTrusted() {
				return fmt.Errorf("%w\nGrant access at: %s", platform.ErrNotTrusted, platform.AccessibilitySettingsURI)
			}

			app, err := inspector.FrontmostApp()
			if err != nil {
				return err
			}

			report := probe.NewService(inspector, nil, nil, 0).Collect(app)
			out, err := yaml.Marshal(report)
			if err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
