package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/chronon/internal/scene"
	"github.com/papapumpkin/chronon/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scene>",
	Short: "Check a scene file for structural problems",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	printer := ui.NewWriter(cmd.ErrOrStderr())

	sc, err := scene.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}
	errs := scene.Validate(sc)
	printer.ValidateResult(sc, errs)
	if len(errs) > 0 {
		return fmt.Errorf("validation failed with %d error(s)", len(errs))
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		printer.SceneSummary(sc)
	}
	return nil
}
