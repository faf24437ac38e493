package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/chronon/internal/surface"
)

// DefaultDoubleClick is the longest gap between two presses on the same node
// that still counts as a double click.
const DefaultDoubleClick = 400 * time.Millisecond

// pointerState turns the terminal's press/motion/release stream into
// gestures. A drag starts on the first motion with the button held.
type pointerState struct {
	pressed  bool
	dragging bool
	pressAt  *surface.Pointer
	source   *surface.Node

	lastPress     time.Time
	lastPressNode *surface.Node
}

func pointerFrom(msg tea.MouseMsg) *surface.Pointer {
	return &surface.Pointer{
		X:     float64(msg.X),
		Y:     float64(msg.Y),
		Shift: msg.Shift,
		Alt:   msg.Alt,
		Ctrl:  msg.Ctrl,
		Raw:   msg,
	}
}

// handleMouse dispatches gestures for msg into the editor's surface.
func (m *AppModel) handleMouse(msg tea.MouseMsg) {
	if m.editor == nil {
		return
	}
	root := m.editor.Timeline().Node()
	p := pointerFrom(msg)
	ps := &m.pointer

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if msg.Action != tea.MouseActionPress {
			return
		}
		step := panStep
		if msg.Button == tea.MouseButtonWheelUp {
			step = -panStep
		}
		if msg.Ctrl {
			if step < 0 {
				m.editor.Zoom(zoomStep)
			} else {
				m.editor.Zoom(1 / zoomStep)
			}
			return
		}
		m.editor.Pan(step)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		target := root.HitTest(p.X, p.Y)
		now := m.now()
		ps.pressed, ps.dragging = true, false
		ps.pressAt, ps.source = p, target
		if target == nil {
			ps.lastPressNode = nil
			return
		}
		if target == ps.lastPressNode && now.Sub(ps.lastPress) <= m.doubleClick {
			surface.Dispatch(surface.DoubleClick, target, p)
			ps.lastPressNode = nil
			return
		}
		surface.Dispatch(surface.Press, target, p)
		ps.lastPress, ps.lastPressNode = now, target

	case msg.Action == tea.MouseActionMotion && ps.pressed:
		if !ps.dragging {
			ps.dragging = true
			ps.lastPressNode = nil
			if ps.source != nil {
				surface.Dispatch(surface.DragStart, ps.source, ps.pressAt)
			}
		}
		if target := root.HitTest(p.X, p.Y); target != nil {
			surface.Dispatch(surface.DragOver, target, p)
		}

	case msg.Action == tea.MouseActionRelease && ps.pressed:
		if ps.dragging {
			if target := root.HitTest(p.X, p.Y); target != nil {
				surface.Dispatch(surface.Drop, target, p)
			}
			if ps.source != nil {
				surface.Dispatch(surface.DragEnd, ps.source, p)
			}
		}
		ps.pressed, ps.dragging = false, false
		ps.pressAt, ps.source = nil, nil
	}
}
