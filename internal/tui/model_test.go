package tui

import (
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/chronon/internal/scene"
)

func TestNewAppModel_Defaults(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, Options{})
	if m.opts.Gutter != DefaultGutter {
		t.Errorf("gutter = %d, want %d", m.opts.Gutter, DefaultGutter)
	}
	if m.doubleClick != DefaultDoubleClick {
		t.Errorf("double click = %v, want %v", m.doubleClick, DefaultDoubleClick)
	}
	node := m.Editor().Timeline().Node()
	if node.Left != DefaultGutter || node.Top != timelineTop {
		t.Errorf("timeline placed at (%v, %v)", node.Left, node.Top)
	}
	if w, h := m.Editor().Timeline().Size(); w != testWidth-DefaultGutter || h != testHeight-chromeRows {
		t.Errorf("timeline size = %vx%v", w, h)
	}
}

func TestNewAppModel_InvalidScene(t *testing.T) {
	t.Parallel()
	_, err := NewAppModel(&scene.Scene{Meta: scene.Meta{StartTime: 5, EndTime: 5}}, Options{})
	if err == nil {
		t.Fatal("expected an error for an empty time range")
	}
}

func TestUpdate_ViewKeys(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		keys       []tea.Msg
		start, end float64
	}{
		{"zoom in", []tea.Msg{runes("+")}, 20, 180},
		{"zoom out", []tea.Msg{runes("-")}, -25, 225},
		{"pan right", []tea.Msg{runes("l")}, 20, 220},
		{"pan left", []tea.Msg{tea.KeyMsg{Type: tea.KeyLeft}}, -20, 180},
		{"reset", []tea.Msg{runes("l"), runes("+"), runes("0")}, 0, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := send(newTestModel(t, Options{}), tt.keys...)
			start, end := m.Editor().Timeline().TimeRange()
			if math.Abs(start-tt.start) > 1e-9 || math.Abs(end-tt.end) > 1e-9 {
				t.Errorf("range = [%v, %v), want [%v, %v)", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestUpdate_SelectionKeys(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		keys []tea.Msg
		want []string
	}{
		{"next selects first", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}}, []string{"music"}},
		{"next advances", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}}, []string{"intro"}},
		{"prev wraps", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyShiftTab}}, []string{"main"}},
		{"select all", []tea.Msg{tea.KeyMsg{Type: tea.KeyCtrlA}}, []string{"music", "intro", "main"}},
		{"escape blurs", []tea.Msg{tea.KeyMsg{Type: tea.KeyCtrlA}, tea.KeyMsg{Type: tea.KeyEscape}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := send(newTestModel(t, Options{}), tt.keys...)
			if got := selectedLabels(m); !slices.Equal(got, tt.want) {
				t.Errorf("selection = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdate_MoveKeys(t *testing.T) {
	t.Parallel()
	tab := tea.KeyMsg{Type: tea.KeyTab}
	m := send(newTestModel(t, Options{}), tab, tab) // intro
	intro := itemLabeled(m, "intro")
	tv := m.Editor().Timeline()

	m = send(m, runes("J"))
	if intro.Base().Track() != tv.TrackView(1) {
		t.Fatal("J should move intro to the audio lane")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyShiftUp})
	if intro.Base().Track() != tv.TrackView(0) {
		t.Fatal("shift+up should move intro back to the video lane")
	}

	m = send(m, runes("L"))
	if got, want := intro.StartTime(), 50+1/testScale; math.Abs(got-want) > 1e-9 {
		t.Errorf("after nudge start = %v, want %v", got, want)
	}
	m = send(m, runes("H"))
	if got := intro.StartTime(); math.Abs(got-50) > 1e-9 {
		t.Errorf("after nudge back start = %v, want 50", got)
	}
	if !m.Editor().Selection().IsSelected(intro) {
		t.Error("moved item should stay selected")
	}
}

func TestUpdate_DeleteSelected(t *testing.T) {
	t.Parallel()
	m := send(newTestModel(t, Options{}), tea.KeyMsg{Type: tea.KeyTab}, runes("x"))
	if got := len(m.Editor().Items()); got != 2 {
		t.Errorf("items after delete = %d, want 2", got)
	}
	if itemLabeled(m, "music") != nil {
		t.Error("music should be gone")
	}
	if m.Message != "deleted 1 item(s)" || m.MsgErr {
		t.Errorf("message = %q (err %v)", m.Message, m.MsgErr)
	}
}

func TestUpdate_Quit(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, Options{})
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func writeScene(t *testing.T, path, name string) {
	t.Helper()
	sc := scene.Default()
	sc.Meta.Name = name
	data, err := scene.Encode(sc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestUpdate_Reload(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "scene.toml")
	writeScene(t, path, "first")
	sc, err := scene.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m := newTestModelFor(t, sc, Options{ScenePath: path})
	old := m.Editor()

	writeScene(t, path, "second")
	m = send(m, MsgReload{})
	if m.Editor() == old {
		t.Fatal("reload should build a new editor")
	}
	t.Cleanup(m.Editor().Dispose)
	if got := m.Editor().Scene().Meta.Name; got != "second" {
		t.Errorf("scene name = %q, want second", got)
	}
	if old.Timeline().Node().Parent() != nil {
		t.Error("old timeline should be detached")
	}
	if w, _ := m.Editor().Timeline().Size(); w != testWidth-DefaultGutter {
		t.Errorf("new timeline not laid out: width %v", w)
	}
	if m.MsgErr || !strings.Contains(m.Message, "reloaded") {
		t.Errorf("message = %q", m.Message)
	}

	if err := os.WriteFile(path, []byte("[scene]\nstart_time = 9\nend_time = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	current := m.Editor()
	m = send(m, MsgSceneChanged{Change: scene.Change{File: path}})
	if m.Editor() != current {
		t.Error("a failed reload must keep the current editor")
	}
	if !m.MsgErr || !strings.Contains(m.Message, "reload failed") {
		t.Errorf("message = %q", m.Message)
	}
}

func TestUpdate_SceneRemoved(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, Options{ScenePath: "gone.toml"})
	old := m.Editor()
	m = send(m, MsgSceneChanged{Change: scene.Change{File: "gone.toml", Removed: true}})
	if m.Editor() != old {
		t.Error("removal should not rebuild the editor")
	}
	if !m.MsgErr || !strings.Contains(m.Message, "removed") {
		t.Errorf("message = %q", m.Message)
	}
}

func TestUpdate_ReloadWithoutPath(t *testing.T) {
	t.Parallel()
	m := send(newTestModel(t, Options{}), runes("r"))
	if !m.MsgErr || m.Message != "no scene file to reload" {
		t.Errorf("message = %q", m.Message)
	}
}

func TestUpdate_Status(t *testing.T) {
	t.Parallel()
	m := send(newTestModel(t, Options{}), MsgStatus{Text: "hello"})
	if m.Message != "hello" || m.MsgErr {
		t.Errorf("message = %q err %v", m.Message, m.MsgErr)
	}
}

func TestView_FullScreen(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, Options{})
	view := m.View()
	for _, want := range []string{"CHRONON", "demo", "video", "audio", "titles", "intro", "music", "main"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if got := strings.Count(view, "\n") + 1; got != testHeight {
		t.Errorf("view has %d lines, want %d", got, testHeight)
	}
}

func TestView_FooterFollowsSelection(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, Options{})
	if strings.Contains(m.View(), "delete") {
		t.Error("browse footer should not offer delete")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "delete") {
		t.Error("selection footer should offer delete")
	}
}

func TestView_BeforeFirstSize(t *testing.T) {
	t.Parallel()
	m, err := NewAppModel(scene.Default(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer m.Editor().Dispose()
	if got := m.View(); got != "initializing..." {
		t.Errorf("View() = %q", got)
	}
}
