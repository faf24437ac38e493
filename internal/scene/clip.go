package scene

import (
	"fmt"

	"github.com/papapumpkin/chronon/internal/timeline"
)

// Clip is a labelled track item.
type Clip struct {
	*timeline.ItemBase
	start, end float64
}

// NewClip returns a detached clip spanning [start, end).
func NewClip(label string, start, end float64) *Clip {
	c := &Clip{start: start, end: end}
	c.ItemBase = timeline.NewItemBase(c)
	c.Node().Label = label
	return c
}

// Label returns the clip's label.
func (c *Clip) Label() string { return c.Node().Label }

// StartTime implements timeline.TrackItemView.
func (c *Clip) StartTime() float64 { return c.start }

// EndTime implements timeline.TrackItemView.
func (c *Clip) EndTime() float64 { return c.end }

// SetValue implements timeline.TrackItemView.
func (c *Clip) SetValue(start, end float64) {
	c.start, c.end = start, end
}

// String renders the clip as "label [start, end)".
func (c *Clip) String() string {
	return fmt.Sprintf("%s [%g, %g)", c.Label(), c.start, c.end)
}

// Lane is a named track of clips.
type Lane struct {
	*timeline.TrackBase
}

// NewLane returns a detached lane.
func NewLane(name string) *Lane {
	l := &Lane{}
	l.TrackBase = timeline.NewTrackBase(l)
	l.Node().Label = name
	return l
}

// Name returns the lane's name.
func (l *Lane) Name() string { return l.Node().Label }

// InsertTrackItemView implements timeline.TrackView.
func (l *Lane) InsertTrackItemView(item timeline.TrackItemView) error {
	return l.DoInsertTrackItemView(item)
}

// RemoveTrackItemView implements timeline.TrackView.
func (l *Lane) RemoveTrackItemView(item timeline.TrackItemView) error {
	return l.DoRemoveTrackItemView(item)
}
