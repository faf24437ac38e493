package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/chronon/internal/scene"
	"github.com/papapumpkin/chronon/internal/timeline"
)

// Default scene at 80x24 with the default gutter: the body is 68 columns over
// [0, 200), so one column is 1/0.34 time units. Track i starts on row 2+2i.
const (
	testWidth  = 80
	testHeight = 24
	testScale  = 0.34
)

func newTestModel(t *testing.T, opts Options) AppModel {
	t.Helper()
	return newTestModelFor(t, scene.Default(), opts)
}

func newTestModelFor(t *testing.T, sc *scene.Scene, opts Options) AppModel {
	t.Helper()
	m, err := NewAppModel(sc, opts)
	if err != nil {
		t.Fatalf("NewAppModel: %v", err)
	}
	m = send(m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	t.Cleanup(func() { m.Editor().Dispose() })
	return m
}

func send(m AppModel, msgs ...tea.Msg) AppModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(AppModel)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func itemLabeled(m AppModel, label string) timeline.TrackItemView {
	for _, it := range m.Editor().Items() {
		if it.Base().Node().Label == label {
			return it
		}
	}
	return nil
}

func selectedLabels(m AppModel) []string {
	var out []string
	for it := range m.Editor().Selection().Iterate() {
		out = append(out, it.Base().Node().Label)
	}
	return out
}
