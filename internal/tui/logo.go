package tui

import "github.com/charmbracelet/lipgloss"

// Logo style definitions for the TUI status bar logo.
var (
	styleLogoTick = lipgloss.NewStyle().Background(colorSurface).Foreground(colorMutedLight)
	styleLogoCore = lipgloss.NewStyle().Background(colorSurface).Foreground(colorPrimary).Bold(true)
)

// Logo returns a styled single-line chronon logo for the TUI status bar.
// Background is inherited from the parent status bar container.
func Logo() string {
	return styleLogoTick.Render("├┼┤") +
		styleLogoTick.Render(" ") +
		styleLogoCore.Render("CHRONON")
}

// LogoPlain returns the unstyled logo text for plain contexts.
func LogoPlain() string {
	return "├┼┤ CHRONON"
}
