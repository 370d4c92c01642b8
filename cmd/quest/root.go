package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stefanpenner/eternalquest/pkg/config"
	"github.com/stefanpenner/eternalquest/pkg/quest"
)

// app carries what every command needs once flags and config are resolved.
type app struct {
	dir     string
	file    string
	jsonOut bool

	out    io.Writer
	errOut io.Writer

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "quest",
		Short: "Eternal Quest - track goals, earn points, level up",
		Long: `Eternal Quest tracks simple, eternal and checklist goals.

Recording an event earns points; points also count as experience, and every
level needs 100 more XP than the one before. Run without a command to open
the interactive menu.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE:              a.runTUI,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.dir, "dir", "", "data directory (default $QUEST_DATA_DIR or the platform data dir)")
	flags.StringVar(&a.file, "file", "", "save file, relative to the data directory unless absolute")
	flags.BoolVar(&a.jsonOut, "json", false, "print JSON instead of text")

	root.AddCommand(
		a.listCmd(),
		a.addCmd(),
		a.recordCmd(),
		a.statusCmd(),
		a.configCmd(),
		a.initCmd(),
		a.syncCmd(),
	)
	return root
}

// setup loads config and builds the CLI logger before any command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.dir)
	if err != nil {
		return err
	}
	if a.file != "" {
		cfg.SaveFile = a.file
	}
	a.cfg = cfg
	a.logger = config.NewLogger(cfg.LogLevel, a.errOut)
	return nil
}

// loadManager returns a manager holding the save file's contents, or an
// empty one when there is no save file yet.
func (a *app) loadManager() (*quest.Manager, error) {
	m := quest.NewManager(quest.WithLogger(a.logger))
	path := a.cfg.SavePath()
	ok, err := m.Load(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		a.logger.Debug("no save file yet", "path", path)
	}
	return m, nil
}

func (a *app) saveManager(m *quest.Manager) error {
	path := a.cfg.SavePath()
	if err := m.Save(path); err != nil {
		return fmt.Errorf("saving goals: %w", err)
	}
	return nil
}

func (a *app) outputJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
