package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Footer renders context-sensitive keybinding hints.
type Footer struct {
	Width    int
	Bindings []key.Binding
}

// View renders the footer as a single line of keybinding hints.
// In compact mode (narrow terminals), shows only key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < CompactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		var part string
		if compact {
			part = styleFooterKey.Render(help.Key)
		} else {
			part = styleFooterKey.Render(help.Key) + styleFooterSep.Render(":") + styleFooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := styleFooterSep.Render("  ")
	if compact {
		sep = styleFooterSep.Render(" ")
	}
	line := truncateToWidth(strings.Join(parts, sep), f.Width)
	return styleFooter.Width(f.Width).Render(line)
}

// BrowseFooterBindings returns footer bindings when nothing is selected.
func BrowseFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.PanLeft, km.ZoomIn, km.ZoomOut, km.Reset, km.Next, km.SelectAll, km.Reload, km.Quit}
}

// SelectionFooterBindings returns footer bindings while items are selected.
func SelectionFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.MoveUp, km.MoveDown, km.NudgeLeft, km.NudgeRight, km.Delete, km.BlurAll, km.Next, km.Quit}
}
