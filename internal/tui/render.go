package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/chronon/internal/drag"
	"github.com/papapumpkin/chronon/internal/selection"
	"github.com/papapumpkin/chronon/internal/surface"
	"github.com/papapumpkin/chronon/internal/timeline"
)

// rulerTickEvery is the column spacing of ruler ticks.
const rulerTickEvery = 10

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellLaneEven
	cellLaneOdd
	cellItem
	cellSelected
	cellGhost
)

var cellStyles = map[cellKind]lipgloss.Style{
	cellBlank:    lipgloss.NewStyle(),
	cellLaneEven: styleLaneEven,
	cellLaneOdd:  styleLaneOdd,
	cellItem:     styleItem,
	cellSelected: styleItemSelected,
	cellGhost:    styleGhost,
}

// canvas is a grid of styled cells covering a rectangle of the surface.
type canvas struct {
	originX, originY float64
	w, h             int
	runes            [][]rune
	kinds            [][]cellKind
}

func newCanvas(originX, originY float64, w, h int) *canvas {
	c := &canvas{originX: originX, originY: originY, w: max(w, 0), h: max(h, 0)}
	c.runes = make([][]rune, c.h)
	c.kinds = make([][]cellKind, c.h)
	for y := range c.h {
		c.runes[y] = []rune(strings.Repeat(" ", c.w))
		c.kinds[y] = make([]cellKind, c.w)
	}
	return c
}

// cellRect converts a node's absolute bounds into clipped canvas cells.
// A node narrower than one cell still covers one.
func (c *canvas) cellRect(n *surface.Node) (x0, y0, x1, y1 int, ok bool) {
	ax, ay := n.AbsPosition()
	fx0 := ax - c.originX
	fy0 := ay - c.originY
	if math.IsNaN(fx0) || math.IsInf(fx0, 0) || math.IsNaN(n.Width) || math.IsInf(n.Width, 0) {
		return 0, 0, 0, 0, false
	}
	x0 = int(math.Floor(fx0))
	y0 = int(math.Floor(fy0))
	x1 = max(int(math.Floor(fx0+n.Width)), x0+1)
	y1 = max(int(math.Floor(fy0+n.Height)), y0+1)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.w), min(y1, c.h)
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}

func (c *canvas) fill(x0, y0, x1, y1 int, r rune, k cellKind) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.runes[y][x] = r
			c.kinds[y][x] = k
		}
	}
}

func (c *canvas) text(x, y, maxX int, s string) {
	if y < 0 || y >= c.h {
		return
	}
	for _, r := range s {
		if x >= maxX || x >= c.w {
			return
		}
		if x >= 0 {
			c.runes[y][x] = r
		}
		x++
	}
}

// String renders the canvas, styling each run of equal cells once.
func (c *canvas) String() string {
	lines := make([]string, c.h)
	for y := range c.h {
		var b strings.Builder
		start := 0
		for x := 1; x <= c.w; x++ {
			if x == c.w || c.kinds[y][x] != c.kinds[y][start] {
				b.WriteString(cellStyles[c.kinds[y][start]].Render(string(c.runes[y][start:x])))
				start = x
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// renderTracks draws the timeline body: lane backgrounds, items and ghosts.
// The canvas covers width by height cells starting at the timeline's node.
func renderTracks(tv *timeline.TimelineView, width, height int) string {
	ox, oy := tv.Node().AbsPosition()
	c := newCanvas(ox, oy, width, height)
	th := tv.TrackHeight()

	for i, track := range tv.TrackViews() {
		y0 := int(math.Floor(float64(i) * th))
		y1 := min(int(math.Floor(float64(i+1)*th)), c.h)
		if track == nil || y0 >= c.h {
			continue
		}
		kind, r := cellLaneEven, '·'
		if i%2 == 1 {
			kind, r = cellLaneOdd, ' '
		}
		c.fill(0, y0, c.w, y1, r, kind)
	}

	tv.Node().Walk(func(n *surface.Node) bool {
		if !n.HasClass(timeline.ClassTrackItem) {
			return true
		}
		x0, y0, x1, y1, ok := c.cellRect(n)
		if !ok {
			return false
		}
		switch {
		case n.HasClass(drag.ClassGhost):
			c.fill(x0, y0, x1, y1, '░', cellGhost)
		case n.HasClass(selection.ClassSelected):
			c.fill(x0, y0, x1, y1, ' ', cellSelected)
		default:
			c.fill(x0, y0, x1, y1, ' ', cellItem)
		}
		if n.Label != "" && x1-x0 > 2 && !n.HasClass(drag.ClassGhost) {
			c.text(x0+1, y0, x1-1, TruncateWithEllipsis(n.Label, x1-x0-2))
		}
		return false
	})
	return c.String()
}

// renderGutter draws the lane names, one per track slot.
func renderGutter(tv *timeline.TimelineView, gutter, height int) string {
	lines := make([]string, height)
	th := tv.TrackHeight()
	for y := range lines {
		lines[y] = strings.Repeat(" ", gutter)
	}
	for i, track := range tv.TrackViews() {
		y := int(math.Floor(float64(i) * th))
		if track == nil || y >= height {
			continue
		}
		name := TruncateWithEllipsis(track.Base().Node().Label, gutter-1)
		lines[y] = styleGutter.Render(padRight(name, gutter))
	}
	return strings.Join(lines, "\n")
}

// renderRuler draws time ticks across width columns, offset by gutter.
func renderRuler(d *timeline.Delegate, gutter, width int) string {
	row := []rune(strings.Repeat(" ", gutter+width))
	start, end := d.Range()
	for col := 0; col < width; col += rulerTickEvery {
		x := gutter + col
		row[x] = '|'
		label := []rune(formatTime(d.PositionToTime(float64(col)), end-start))
		if x+1+len(label) > len(row) {
			continue
		}
		copy(row[x+1:], label)
	}
	return styleRuler.Render(string(row))
}

// RenderTimeline renders the ruler, lane names and tracks of tv for a body of
// width columns (excluding the gutter) and height rows.
func RenderTimeline(tv *timeline.TimelineView, gutter, width, height int) string {
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		renderGutter(tv, gutter, height),
		renderTracks(tv, width, height),
	)
	return renderRuler(tv.Delegate(), gutter, width) + "\n" + body
}
