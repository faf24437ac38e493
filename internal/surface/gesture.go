package surface

// Gesture identifies one kind of pointer interaction.
type Gesture int

// Gestures in the order a press-and-drag produces them.
const (
	Press Gesture = iota
	DoubleClick
	DragStart
	DragOver
	DragEnd
	Drop
)

// Gestures lists every gesture, for wiring loops.
var Gestures = []Gesture{Press, DoubleClick, DragStart, DragOver, DragEnd, Drop}

// String returns the lower-case gesture name.
func (g Gesture) String() string {
	switch g {
	case Press:
		return "press"
	case DoubleClick:
		return "dblclick"
	case DragStart:
		return "dragstart"
	case DragOver:
		return "dragover"
	case DragEnd:
		return "dragend"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

// Pointer is the platform-level event behind a gesture. X and Y are absolute
// surface coordinates; Raw carries the host's own message, if any.
type Pointer struct {
	X, Y  float64
	Shift bool
	Alt   bool
	Ctrl  bool
	Raw   any

	defaultPrevented bool
	stopped          bool
}

// PreventDefault suppresses the host's default handling of the gesture.
func (p *Pointer) PreventDefault() { p.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (p *Pointer) DefaultPrevented() bool { return p.defaultPrevented }

// StopPropagation stops the gesture from bubbling to further ancestors.
func (p *Pointer) StopPropagation() { p.stopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (p *Pointer) PropagationStopped() bool { return p.stopped }

// OffsetX is the pointer's horizontal offset relative to n's left edge.
func (p *Pointer) OffsetX(n *Node) float64 {
	x, _ := n.AbsPosition()
	return p.X - x
}

// OffsetY is the pointer's vertical offset relative to n's top edge.
func (p *Pointer) OffsetY(n *Node) float64 {
	_, y := n.AbsPosition()
	return p.Y - y
}
