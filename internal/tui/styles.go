package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary       = lipgloss.Color("#00BFFF") // Cyan: primary accent
	colorAccent        = lipgloss.Color("#FFD700") // Gold: selection
	colorDanger        = lipgloss.Color("#FF5252") // Red: errors
	colorMuted         = lipgloss.Color("#636363") // Gray: de-emphasized
	colorMutedLight    = lipgloss.Color("#8C8C8C") // Lighter gray: normal text
	colorWhite         = lipgloss.Color("#EEEEEE") // Off-white: primary text
	colorBlack         = lipgloss.Color("#111111") // Text on bright fills
	colorSurface       = lipgloss.Color("#1E1E2E") // Dark surface: status bar bg
	colorSurfaceBright = lipgloss.Color("#2A2A3C") // Lighter surface: odd lanes
	colorSurfaceDim    = lipgloss.Color("#181825") // Darkest surface: footer bg
	colorBlue          = lipgloss.Color("#5B8DEF") // Blue: items
)

// Status bar styles: visually dominant with solid background.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Background(colorSurface).
				Foreground(colorWhite)

	styleStatusDrag = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorAccent).
			Bold(true)
)

// Timeline cell styles.
var (
	styleLaneEven = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleLaneOdd = lipgloss.NewStyle().
			Background(colorSurfaceBright).
			Foreground(colorMuted)

	styleItem = lipgloss.NewStyle().
			Background(colorBlue).
			Foreground(colorWhite)

	styleItemSelected = lipgloss.NewStyle().
				Background(colorAccent).
				Foreground(colorBlack).
				Bold(true)

	styleGhost = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleRuler = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleGutter = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)
)

// Message line styles.
var (
	styleMessage = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleMessageError = lipgloss.NewStyle().
				Foreground(colorDanger).
				Bold(true)
)

// Footer styles: top border, clear key/desc contrast.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
