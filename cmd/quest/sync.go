package main

import (
	"github.com/spf13/cobra"

	gsync "github.com/stefanpenner/eternalquest/pkg/sync"
)

func (a *app) initCmd() *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Make the data directory a git repository for backups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gsync.InitRepo(cmd.Context(), a.cfg.DataDir, remote, a.out)
		},
	}
	cmd.Flags().StringVar(&remote, "remote", "", "git remote URL to push backups to")
	return cmd
}

func (a *app) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Commit the data directory and pull/push its remote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadManager()
			if err != nil {
				return err
			}
			return gsync.SyncRepo(cmd.Context(), a.cfg.DataDir, m.Summary(), a.out)
		},
	}
}
