package cmd

import (
	"fmt"
	"math"
	"slices"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/chronon/internal/editor"
	"github.com/papapumpkin/chronon/internal/scene"
	"github.com/papapumpkin/chronon/internal/surface"
	"github.com/papapumpkin/chronon/internal/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <scene>",
	Short: "Render a scene to stdout without the interactive editor",
	Long: `Render a scene the way the editor draws it and print it to stdout.

Clips named with --select are selected before rendering, and --move-track /
--move-time then move the selection the way a drag would. With --toml the
resulting scene is printed as TOML instead of being drawn.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Int("width", 100, "total output width in columns")
	inspectCmd.Flags().Int("height", 0, "body height in rows (default: fit all tracks)")
	inspectCmd.Flags().Float64("from", 0, "visible range start")
	inspectCmd.Flags().Float64("to", 0, "visible range end")
	inspectCmd.Flags().StringSlice("select", nil, "labels of clips to select")
	inspectCmd.Flags().Int("move-track", 0, "move the selection by this many tracks")
	inspectCmd.Flags().Float64("move-time", 0, "shift the selection by this much time")
	inspectCmd.Flags().Bool("toml", false, "print the resulting scene as TOML")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := scene.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}
	if cmd.Flags().Changed("from") || cmd.Flags().Changed("to") {
		from, _ := cmd.Flags().GetFloat64("from")
		to, _ := cmd.Flags().GetFloat64("to")
		sc.Meta.StartTime, sc.Meta.EndTime = from, to
	} else if cfg.HasRange() {
		sc.Meta.StartTime, sc.Meta.EndTime = cfg.StartTime, cfg.EndTime
	}

	ed, err := editor.New(surface.NewNode(), sc, editor.WithTrackHeight(cfg.TrackHeight))
	if err != nil {
		return err
	}
	defer ed.Dispose()

	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	gutter := cfg.GutterWidth
	if width <= gutter {
		return fmt.Errorf("--width must exceed the gutter width (%d)", gutter)
	}
	if height <= 0 {
		height = int(math.Ceil(float64(len(sc.Tracks)) * cfg.TrackHeight))
	}
	ed.Layout(float64(width-gutter), float64(height))

	labels, _ := cmd.Flags().GetStringSlice("select")
	if err := selectLabels(ed, labels); err != nil {
		return err
	}
	dTrack, _ := cmd.Flags().GetInt("move-track")
	dt, _ := cmd.Flags().GetFloat64("move-time")
	if dTrack != 0 || dt != 0 {
		if res := ed.Move(dTrack, dt); res.Err != nil {
			return fmt.Errorf("move: %w", res.Err)
		}
	}

	out := cmd.OutOrStdout()
	if asTOML, _ := cmd.Flags().GetBool("toml"); asTOML {
		data, err := scene.Encode(scene.Snapshot(sc.Meta.Name, ed.Timeline()))
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	fmt.Fprintln(out, tui.RenderTimeline(ed.Timeline(), gutter, width-gutter, height))
	return nil
}

// selectLabels selects every item whose label is in labels. It fails on a
// label no item carries.
func selectLabels(ed *editor.Editor, labels []string) error {
	found := make(map[string]bool, len(labels))
	for _, item := range ed.Items() {
		label := item.Base().Node().Label
		if slices.Contains(labels, label) {
			ed.Selection().Select(item)
			found[label] = true
		}
	}
	for _, label := range labels {
		if !found[label] {
			return fmt.Errorf("no clip labeled %q", label)
		}
	}
	return nil
}
