package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/stefanpenner/eternalquest/pkg/config"
	"github.com/stefanpenner/eternalquest/pkg/tui"
)

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(a.cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// The terminal belongs to the TUI; log to a file instead.
	logFile, err := os.OpenFile(a.cfg.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer logFile.Close()
	a.logger = config.NewLogger(a.cfg.LogLevel, logFile)

	m, err := a.loadManager()
	if err != nil {
		return err
	}

	model := tui.NewModel(m, tui.Options{
		SavePath: a.cfg.SavePath(),
		Autosave: a.cfg.Autosave,
		Logger:   a.logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	cleanup, err := tui.StartWatcher(a.cfg.SavePath(), p)
	if err != nil {
		fmt.Fprintf(a.errOut, "Warning: file watcher failed: %v\n", err)
	} else {
		defer cleanup()
	}

	a.logger.Info("tui started", "save_file", a.cfg.SavePath())
	_, err = p.Run()
	return err
}
