package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders the persistent top bar with the scene name, visible range,
// selection count and, during a drag, the drag offsets.
type StatusBar struct {
	Name      string
	Start     float64
	End       float64
	Selected  int
	Items     int
	Tracks    int
	Dragging  bool
	DragTrack int
	DragTime  float64
	Width     int
}

// View renders the status bar as a single line.
// Adapts to narrow terminals by truncating the name and dropping low-priority
// segments (tracks → range → selection) to guarantee single-line rendering.
func (s StatusBar) View() string {
	compact := s.Width < CompactWidth

	// The outer styleStatusBar applies Padding(0,1), consuming 2 columns.
	const barPadding = 2
	innerWidth := max(s.Width-barPadding, 0)

	rightSegments := s.buildRightSegments(compact)
	right := joinSegments(rightSegments)

	barBg := lipgloss.NewStyle().Background(colorSurface)
	logo := Logo() + barBg.Render("  ")
	logoWidth := lipgloss.Width(logo)
	rightWidth := lipgloss.Width(right)

	const minGap = 1
	availableForName := innerWidth - logoWidth - rightWidth - minGap
	name := styleStatusValue.Render(TruncateWithEllipsis(s.Name, max(availableForName, 0)))

	left := logo + name
	leftWidth := lipgloss.Width(left)
	if leftWidth+rightWidth+minGap > innerWidth {
		rightSegments = dropSegments(rightSegments, innerWidth-leftWidth-minGap)
		right = joinSegments(rightSegments)
		rightWidth = lipgloss.Width(right)
	}

	gap := max(innerWidth-leftWidth-rightWidth, 1)
	line := left + barBg.Render(strings.Repeat(" ", gap)) + right

	// Safety clamp: if the assembled line still exceeds inner width, hard-truncate.
	if lipgloss.Width(line) > innerWidth {
		line = truncateToWidth(line, innerWidth)
	}
	return styleStatusBar.Width(s.Width).Render(line)
}

// statusSegment represents a styled segment of the status bar with a drop priority.
// Lower priority values are dropped first when the terminal is too narrow.
type statusSegment struct {
	text     string
	priority int
}

// buildRightSegments assembles the right-side segments in display order.
func (s StatusBar) buildRightSegments(compact bool) []statusSegment {
	barBg := lipgloss.NewStyle().Background(colorSurface)
	sp := barBg.Render("  ")
	var segments []statusSegment

	if s.Dragging {
		segments = append(segments, statusSegment{
			text:     styleStatusDrag.Render(fmt.Sprintf("drag %+d tracks %+g", s.DragTrack, s.DragTime)) + sp,
			priority: 4,
		})
	}

	sel := fmt.Sprintf("%d/%d", s.Selected, s.Items)
	if !compact {
		sel = fmt.Sprintf("%d of %d selected", s.Selected, s.Items)
	}
	segments = append(segments, statusSegment{
		text:     styleStatusLabel.Render("sel ") + styleStatusValue.Render(sel) + sp,
		priority: 3,
	})

	segments = append(segments, statusSegment{
		text:     styleStatusLabel.Render("range ") + styleStatusValue.Render(formatRange(s.Start, s.End)) + sp,
		priority: 2,
	})

	if !compact {
		segments = append(segments, statusSegment{
			text:     styleStatusLabel.Render("tracks ") + styleStatusValue.Render(fmt.Sprint(s.Tracks)),
			priority: 1,
		})
	}
	return segments
}

// formatRange renders a half-open time range compactly.
func formatRange(start, end float64) string {
	return fmt.Sprintf("[%s, %s)", formatTime(start, end-start), formatTime(end, end-start))
}

// formatTime picks a precision suited to the visible span.
func formatTime(t, span float64) string {
	switch {
	case span >= 20:
		return fmt.Sprintf("%.0f", t)
	case span >= 2:
		return fmt.Sprintf("%.1f", t)
	default:
		return fmt.Sprintf("%.2f", t)
	}
}

// joinSegments concatenates segment text with a trailing styled space.
// The trailing space carries the bar background to prevent gaps.
func joinSegments(segments []statusSegment) string {
	barBg := lipgloss.NewStyle().Background(colorSurface)
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.text)
	}
	b.WriteString(barBg.Render(" "))
	return b.String()
}

// dropSegments removes lowest-priority segments until the combined width fits within maxWidth.
func dropSegments(segments []statusSegment, maxWidth int) []statusSegment {
	result := make([]statusSegment, len(segments))
	copy(result, segments)

	for totalWidth(result) > maxWidth && len(result) > 0 {
		minIdx := 0
		minPri := result[0].priority
		for i, seg := range result {
			if seg.priority < minPri {
				minPri = seg.priority
				minIdx = i
			}
		}
		result = append(result[:minIdx], result[minIdx+1:]...)
	}
	return result
}

// totalWidth computes the rendered width of all segments plus trailing space.
func totalWidth(segments []statusSegment) int {
	w := 1 // trailing space from joinSegments
	for _, seg := range segments {
		w += lipgloss.Width(seg.text)
	}
	return w
}
