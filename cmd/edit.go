package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/chronon/internal/config"
	"github.com/papapumpkin/chronon/internal/scene"
	"github.com/papapumpkin/chronon/internal/telemetry"
	"github.com/papapumpkin/chronon/internal/tui"
	"github.com/papapumpkin/chronon/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit [scene]",
	Short: "Open a scene in the interactive editor",
	Long: `Open a TOML scene in the terminal editor. Without an argument the
configured scene is used, or the built-in demo scene when that file does not
exist. The scene file is watched and reloaded when it changes on disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().String("journal", "", "append edit events to this JSONL file")
	editCmd.Flags().Bool("no-watch", false, "do not reload the scene when the file changes")
	editCmd.Flags().Float64("track-height", 0, "rows per track (default from config)")
	rootCmd.AddCommand(editCmd)
}

// runEdit loads the scene and runs the TUI until the user quits.
func runEdit(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyEditFlags(cmd, &cfg)

	sc, path, err := resolveScene(cfg, args)
	if err != nil {
		return err
	}
	if errs := scene.Validate(sc); len(errs) > 0 {
		printer.ValidateResult(sc, errs)
		return fmt.Errorf("validation failed with %d error(s)", len(errs))
	}

	if !isStderrTTY() {
		return fmt.Errorf("chronon edit requires a TTY (terminal)")
	}

	opts := tui.Options{
		ScenePath:   path,
		Gutter:      cfg.GutterWidth,
		TrackHeight: cfg.TrackHeight,
		DoubleClick: cfg.DoubleClick(),
	}

	if cfg.JournalPath != "" {
		em, err := telemetry.NewEmitter(cfg.JournalPath)
		if err != nil {
			return err
		}
		defer em.Close()
		opts.Journal = em
		if cfg.Verbose {
			printer.JournalStarted(cfg.JournalPath, em.Session())
		}
	}

	if cfg.Watch && path != "" {
		w, err := scene.NewWatcher(path)
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()
		opts.Watcher = w
	}

	return tui.Run(sc, opts)
}

// applyEditFlags overrides config values with explicitly set edit flags.
func applyEditFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("journal") {
		cfg.JournalPath, _ = cmd.Flags().GetString("journal")
	}
	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		cfg.Watch = false
	}
	if h, _ := cmd.Flags().GetFloat64("track-height"); h > 0 {
		cfg.TrackHeight = h
	}
}

// resolveScene loads the scene named by args or the config. It returns the
// demo scene, with an empty path, when no argument is given and the
// configured file does not exist.
func resolveScene(cfg config.Config, args []string) (*scene.Scene, string, error) {
	path := cfg.Scene
	explicit := len(args) > 0
	if explicit {
		path = args[0]
	}
	sc, err := scene.Load(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		sc, path = scene.Default(), ""
	default:
		return nil, "", fmt.Errorf("failed to load scene: %w", err)
	}
	if cfg.HasRange() {
		sc.Meta.StartTime, sc.Meta.EndTime = cfg.StartTime, cfg.EndTime
	}
	return sc, path, nil
}
