package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stefanpenner/eternalquest/pkg/config"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the resolved configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if a.jsonOut {
					return a.outputJSON(a.cfg)
				}
				data, err := a.cfg.Marshal()
				if err != nil {
					return fmt.Errorf("failed to marshal config: %w", err)
				}
				fmt.Fprintln(a.out, "# Resolved configuration (defaults + config.yaml + QUEST_* env)")
				fmt.Fprint(a.out, string(data))
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Show configuration, save file and log paths",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(a.out, "Config:    %s\n", a.cfg.Path())
				fmt.Fprintf(a.out, "Save file: %s\n", a.cfg.SavePath())
				fmt.Fprintf(a.out, "Log:       %s\n", a.cfg.LogPath())
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write a default config.yaml into the data directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path := a.cfg.Path()
				if err := config.WriteDefault(path); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Created %s\n", path)
				return nil
			},
		},
	)
	return cmd
}
