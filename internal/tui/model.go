package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/chronon/internal/drag"
	"github.com/papapumpkin/chronon/internal/editor"
	"github.com/papapumpkin/chronon/internal/scene"
	"github.com/papapumpkin/chronon/internal/surface"
	"github.com/papapumpkin/chronon/internal/telemetry"
)

// Editing step sizes.
const (
	panStep  = 0.1 // fraction of the visible span
	zoomStep = 0.8 // factor per zoom-in
)

// DefaultGutter is the width of the lane-name column.
const DefaultGutter = 12

// Options configures an AppModel.
type Options struct {
	// ScenePath is where the scene is reloaded from; empty disables reload.
	ScenePath   string
	Gutter      int
	TrackHeight float64
	DoubleClick time.Duration
	Journal     *telemetry.Emitter
	// Watcher, when set, triggers a reload whenever the scene file changes.
	Watcher *scene.Watcher
}

// AppModel is the root bubbletea model for the editor.
type AppModel struct {
	Keys    KeyMap
	Width   int
	Height  int
	Message string
	MsgErr  bool

	opts        Options
	root        *surface.Node
	editor      *editor.Editor
	pointer     pointerState
	doubleClick time.Duration
	now         func() time.Time
}

// NewAppModel builds the editor for sc and wraps it in a model.
func NewAppModel(sc *scene.Scene, opts Options) (AppModel, error) {
	if opts.Gutter <= 0 {
		opts.Gutter = DefaultGutter
	}
	if opts.TrackHeight <= 0 {
		opts.TrackHeight = 2
	}
	m := AppModel{
		Keys:        DefaultKeyMap(),
		opts:        opts,
		root:        surface.NewNode("screen"),
		doubleClick: opts.DoubleClick,
		now:         time.Now,
	}
	if m.doubleClick <= 0 {
		m.doubleClick = DefaultDoubleClick
	}
	if err := m.load(sc); err != nil {
		return AppModel{}, err
	}
	return m, nil
}

// Editor returns the current editing session.
func (m AppModel) Editor() *editor.Editor { return m.editor }

// load replaces the editing session with one built from sc.
func (m *AppModel) load(sc *scene.Scene) error {
	var opts []editor.Option
	opts = append(opts, editor.WithTrackHeight(m.opts.TrackHeight))
	if m.opts.Journal != nil {
		opts = append(opts, editor.WithJournal(m.opts.Journal))
	}
	e, err := editor.New(m.root, sc, opts...)
	if err != nil {
		return err
	}
	if m.editor != nil {
		m.editor.Dispose()
	}
	m.editor = e
	m.pointer = pointerState{}
	m.layout()
	return nil
}

// bodyHeight is the number of rows available to tracks.
func (m AppModel) bodyHeight() int {
	return max(m.Height-chromeRows, 0)
}

// bodyWidth is the number of columns available to tracks.
func (m AppModel) bodyWidth() int {
	return max(m.Width-m.opts.Gutter, 0)
}

// layout positions the timeline so surface coordinates are terminal cells.
func (m *AppModel) layout() {
	node := m.editor.Timeline().Node()
	node.Left = float64(m.opts.Gutter)
	node.Top = timelineTop
	m.editor.Layout(float64(m.bodyWidth()), float64(m.bodyHeight()))
}

// Init starts watching the scene file when a watcher is configured.
func (m AppModel) Init() tea.Cmd {
	return waitForChange(m.opts.Watcher)
}

// waitForChange blocks on the watcher and reports the next change.
func waitForChange(w *scene.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ch, ok := <-w.Changes
		if !ok {
			return nil
		}
		return MsgSceneChanged{Change: ch}
	}
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.layout()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case MsgReload:
		m.reload()

	case MsgSceneChanged:
		if msg.Change.Removed {
			m.setMessage(true, "scene file removed: %s", msg.Change.File)
		} else {
			m.reload()
		}
		return m, waitForChange(m.opts.Watcher)

	case MsgStatus:
		m.Message, m.MsgErr = msg.Text, msg.Err
	}
	return m, nil
}

func (m *AppModel) setMessage(isErr bool, format string, args ...any) {
	m.Message = fmt.Sprintf(format, args...)
	m.MsgErr = isErr
}

// reload re-reads the scene from disk. On failure the current session stays.
func (m *AppModel) reload() {
	if m.opts.ScenePath == "" {
		m.setMessage(true, "no scene file to reload")
		return
	}
	sc, err := scene.Load(m.opts.ScenePath)
	if err == nil {
		err = m.load(sc)
	}
	if err != nil {
		m.setMessage(true, "reload failed: %v", err)
		return
	}
	m.setMessage(false, "reloaded %s", m.opts.ScenePath)
}

// cellTime is the time spanned by one column.
func (m AppModel) cellTime() float64 {
	if s := m.editor.Timeline().Delegate().Scale(); s > 0 {
		return 1 / s
	}
	return 0
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.editor
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.PanLeft):
		e.Pan(-panStep)
	case key.Matches(msg, m.Keys.PanRight):
		e.Pan(panStep)
	case key.Matches(msg, m.Keys.ZoomIn):
		e.Zoom(zoomStep)
	case key.Matches(msg, m.Keys.ZoomOut):
		e.Zoom(1 / zoomStep)
	case key.Matches(msg, m.Keys.Reset):
		e.Reset()
	case key.Matches(msg, m.Keys.Next):
		e.Cycle(1)
	case key.Matches(msg, m.Keys.Prev):
		e.Cycle(-1)
	case key.Matches(msg, m.Keys.MoveUp):
		m.reportDrop(e.Move(-1, 0))
	case key.Matches(msg, m.Keys.MoveDown):
		m.reportDrop(e.Move(1, 0))
	case key.Matches(msg, m.Keys.NudgeLeft):
		m.reportDrop(e.Move(0, -m.cellTime()))
	case key.Matches(msg, m.Keys.NudgeRight):
		m.reportDrop(e.Move(0, m.cellTime()))
	case key.Matches(msg, m.Keys.BlurAll):
		e.Selection().BlurAll()
	case key.Matches(msg, m.Keys.SelectAll):
		e.SelectAll()
	case key.Matches(msg, m.Keys.Delete):
		n, err := e.RemoveSelected()
		if err != nil {
			m.setMessage(true, "delete: %v", err)
		} else if n > 0 {
			m.setMessage(false, "deleted %d item(s)", n)
		}
	case key.Matches(msg, m.Keys.Reload):
		m.reload()
	}
	return m, nil
}

func (m *AppModel) reportDrop(res drag.DropResult) {
	if res.Err != nil {
		m.setMessage(true, "move: %v", res.Err)
	}
}

// View renders the full TUI.
func (m AppModel) View() string {
	if m.Width == 0 {
		return "initializing..."
	}
	if m.Width < MinWidth || m.Height < MinHeight {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum: %dx%d", m.Width, m.Height, MinWidth, MinHeight)
	}

	sections := []string{
		m.buildStatusBar().View(),
		RenderTimeline(m.editor.Timeline(), m.opts.Gutter, m.bodyWidth(), m.bodyHeight()),
		m.renderMessage(),
		m.buildFooter().View(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m AppModel) buildStatusBar() StatusBar {
	tv := m.editor.Timeline()
	sb := StatusBar{Width: m.Width, Name: m.editor.Scene().Meta.Name}
	sb.Start, sb.End = tv.TimeRange()
	sb.Selected = m.editor.Selection().Len()
	sb.Items = len(m.editor.Items())
	sb.Tracks = tv.Len()
	sb.DragTrack, sb.DragTime, sb.Dragging = m.editor.Drag().Offsets()
	return sb
}

func (m AppModel) renderMessage() string {
	text := TruncateWithEllipsis(m.Message, m.Width)
	if m.MsgErr {
		return styleMessageError.Render(padRight(text, m.Width))
	}
	return styleMessage.Render(padRight(text, m.Width))
}

func (m AppModel) buildFooter() Footer {
	bindings := BrowseFooterBindings(m.Keys)
	if m.editor.Selection().Len() > 0 {
		bindings = SelectionFooterBindings(m.Keys)
	}
	return Footer{Width: m.Width, Bindings: bindings}
}
