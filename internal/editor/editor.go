// Package editor assembles a timeline from a scene with the selection, drag
// and journal contributions attached, and offers the editing operations the
// front ends bind to keys.
package editor

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/papapumpkin/chronon/internal/drag"
	"github.com/papapumpkin/chronon/internal/scene"
	"github.com/papapumpkin/chronon/internal/selection"
	"github.com/papapumpkin/chronon/internal/surface"
	"github.com/papapumpkin/chronon/internal/telemetry"
	"github.com/papapumpkin/chronon/internal/timeline"
)

// MinSpan is the narrowest time range Zoom will produce.
const MinSpan = 1.0

// Option configures an Editor.
type Option func(*options)

type options struct {
	trackHeight float64
	journal     *telemetry.Emitter
}

// WithTrackHeight sets the height of each lane.
func WithTrackHeight(h float64) Option {
	return func(o *options) { o.trackHeight = h }
}

// WithJournal records the session to em.
func WithJournal(em *telemetry.Emitter) Option {
	return func(o *options) { o.journal = em }
}

// Editor is one editing session over a scene.
type Editor struct {
	scene     *scene.Scene
	timeline  *timeline.TimelineView
	selection *selection.Controller
	drag      *drag.Controller
	recorder  *telemetry.Recorder
}

// New builds an editor for sc under parent. Selection is registered before
// drag, and drag before the journal, because each looks up the one before.
func New(parent *surface.Node, sc *scene.Scene, opts ...Option) (*Editor, error) {
	o := options{trackHeight: timeline.DefaultTrackHeight}
	for _, opt := range opts {
		opt(&o)
	}

	tv := timeline.New(parent, timeline.WithTrackHeight(o.trackHeight))
	e := &Editor{scene: sc, timeline: tv}

	e.selection = selection.New(tv)
	if err := tv.AddContribution(e.selection); err != nil {
		tv.Dispose()
		return nil, fmt.Errorf("editor: %w", err)
	}
	dc, err := drag.New(tv)
	if err != nil {
		tv.Dispose()
		return nil, fmt.Errorf("editor: %w", err)
	}
	e.drag = dc
	if err := tv.AddContribution(dc); err != nil {
		tv.Dispose()
		return nil, fmt.Errorf("editor: %w", err)
	}
	if o.journal != nil {
		e.recorder = telemetry.NewRecorder(tv, o.journal)
		if err := tv.AddContribution(e.recorder); err != nil {
			tv.Dispose()
			return nil, fmt.Errorf("editor: %w", err)
		}
	}

	if err := scene.Build(sc, tv); err != nil {
		tv.Dispose()
		return nil, fmt.Errorf("editor: %w", err)
	}
	return e, nil
}

// Scene returns the scene the editor was built from.
func (e *Editor) Scene() *scene.Scene { return e.scene }

// Timeline returns the timeline view.
func (e *Editor) Timeline() *timeline.TimelineView { return e.timeline }

// Selection returns the selection controller.
func (e *Editor) Selection() *selection.Controller { return e.selection }

// Drag returns the drag controller.
func (e *Editor) Drag() *drag.Controller { return e.drag }

// Recorder returns the journal recorder, or nil when none is attached.
func (e *Editor) Recorder() *telemetry.Recorder { return e.recorder }

// Layout sizes the timeline.
func (e *Editor) Layout(width, height float64) { e.timeline.Layout(width, height) }

// Pan shifts the visible range by frac of its span. Positive pans later.
func (e *Editor) Pan(frac float64) {
	start, end := e.timeline.TimeRange()
	d := (end - start) * frac
	e.timeline.SetTimeRange(start+d, end+d)
}

// Zoom scales the visible span by factor around its center. Factors below 1
// zoom in. The span never drops below MinSpan.
func (e *Editor) Zoom(factor float64) {
	if factor <= 0 || math.IsNaN(factor) {
		return
	}
	start, end := e.timeline.TimeRange()
	center := (start + end) / 2
	half := max((end-start)*factor, MinSpan) / 2
	e.timeline.SetTimeRange(center-half, center+half)
}

// Reset restores the scene's original time range.
func (e *Editor) Reset() {
	e.timeline.SetTimeRange(e.scene.Meta.StartTime, e.scene.Meta.EndTime)
}

// Items returns every item on the timeline ordered by start time, then track.
func (e *Editor) Items() []timeline.TrackItemView {
	type entry struct {
		item  timeline.TrackItemView
		track int
	}
	var all []entry
	for i, track := range e.timeline.TrackViews() {
		if track == nil {
			continue
		}
		for _, item := range track.Base().TrackItemViews() {
			all = append(all, entry{item, i})
		}
	}
	slices.SortStableFunc(all, func(a, b entry) int {
		if c := cmp.Compare(a.item.StartTime(), b.item.StartTime()); c != 0 {
			return c
		}
		return cmp.Compare(a.track, b.track)
	})
	out := make([]timeline.TrackItemView, len(all))
	for i, en := range all {
		out[i] = en.item
	}
	return out
}

// FocusItem makes item the only selection and pans so it is in view.
func (e *Editor) FocusItem(item timeline.TrackItemView) {
	e.selection.BlurAll()
	e.selection.Select(item)
	start, end := e.timeline.TimeRange()
	if item.StartTime() >= start && item.EndTime() <= end {
		return
	}
	span := end - start
	mid := (item.StartTime() + item.EndTime()) / 2
	e.timeline.SetTimeRange(mid-span/2, mid+span/2)
}

// Cycle focuses the item delta places after the current selection in time
// order, wrapping around. With nothing selected it focuses the first item.
func (e *Editor) Cycle(delta int) timeline.TrackItemView {
	items := e.Items()
	if len(items) == 0 {
		return nil
	}
	next := 0
	if cur := e.selection.Selection(); cur != nil {
		if i := slices.Index(items, cur); i >= 0 {
			next = ((i+delta)%len(items) + len(items)) % len(items)
		}
	}
	e.FocusItem(items[next])
	return items[next]
}

// SelectAll selects every item.
func (e *Editor) SelectAll() {
	for _, item := range e.Items() {
		e.selection.Select(item)
	}
}

// RemoveSelected removes every selected item from its track and returns how
// many were removed.
func (e *Editor) RemoveSelected() (int, error) {
	var errs []error
	n := 0
	for item := range e.selection.Iterate() {
		track := item.Base().Track()
		if track == nil {
			e.selection.Blur(item)
			continue
		}
		if err := track.RemoveTrackItemView(item); err != nil {
			errs = append(errs, err)
			continue
		}
		item.Base().Dispose()
		n++
	}
	return n, errors.Join(errs...)
}

// Move shifts the selection by dTrack tracks and dt time units through the
// drag controller, so keyboard moves follow the same rules as pointer drags.
func (e *Editor) Move(dTrack int, dt float64) drag.DropResult {
	if e.selection.Len() == 0 {
		return drag.DropResult{}
	}
	e.drag.Begin(0, 0)
	e.drag.Over(dTrack, dt)
	return e.drag.Drop()
}

// Dispose tears down the timeline and every contribution.
func (e *Editor) Dispose() {
	e.timeline.Dispose()
}
