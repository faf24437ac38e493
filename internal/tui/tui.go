package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/chronon/internal/scene"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program for model.
// The program uses the alternate screen buffer and reports mouse motion
// while a button is held, which drag gestures rely on.
func NewProgram(model AppModel, opts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	allOpts = append(allOpts, opts...)
	return tea.NewProgram(model, allOpts...)
}

// Run builds the editor for sc and runs the TUI, blocking until it exits.
func Run(sc *scene.Scene, opts Options) error {
	model, err := NewAppModel(sc, opts)
	if err != nil {
		return err
	}
	final, err := NewProgram(model).Run()
	if m, ok := final.(AppModel); ok && m.editor != nil {
		m.editor.Dispose()
	}
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
// Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
