// Package drag moves the selected track items across tracks and time. While a
// drag is in progress it renders ghost nodes at the would-be destinations; on
// drop it commits the move.
package drag

import (
	"errors"
	"fmt"

	"github.com/papapumpkin/chronon/internal/event"
	"github.com/papapumpkin/chronon/internal/lifecycle"
	"github.com/papapumpkin/chronon/internal/selection"
	"github.com/papapumpkin/chronon/internal/surface"
	"github.com/papapumpkin/chronon/internal/timeline"
)

// ClassGhost marks a ghost preview node.
const ClassGhost = "ghost"

// DropResult describes one committed drop.
type DropResult struct {
	TrackOffset int
	TimeOffset  float64
	// Moved lists the items re-inserted at their destination.
	Moved []timeline.TrackItemView
	// Err joins every removal or insertion failure. The commit never stops
	// part way.
	Err error
}

// session is the state of one drag, from start to drop or end.
type session struct {
	startTrack int
	startTime  float64
	overTrack  int
	overTime   float64
	// targets[i] is the selection on track slot i when the drag started.
	targets [][]timeline.TrackItemView
	ghosts  []*surface.Node
}

func (s *session) offsets() (int, float64) {
	return s.overTrack - s.startTrack, s.overTime - s.startTime
}

// Controller is the drag contribution.
type Controller struct {
	timeline  *timeline.TimelineView
	selection *selection.Controller

	session     *session
	disposables *lifecycle.Store
	onDidDrop   event.Emitter[DropResult]
	disposed    bool
}

// New attaches a drag controller to tv. The selection controller must already
// be registered.
func New(tv *timeline.TimelineView) (*Controller, error) {
	sel, err := selection.Get(tv)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSelectionMissing, err)
	}
	c := &Controller{
		timeline:    tv,
		selection:   sel,
		disposables: lifecycle.NewStore(),
	}
	c.disposables.Add(tv.On(surface.DragStart, func(e timeline.TimelineEvent) {
		c.Begin(tv.IndexOf(e.Track), e.Time)
	}))
	c.disposables.Add(tv.On(surface.DragOver, func(e timeline.TimelineEvent) {
		c.Over(tv.IndexOf(e.Track), e.Time)
	}))
	c.disposables.Add(tv.On(surface.Drop, func(timeline.TimelineEvent) {
		c.Drop()
	}))
	c.disposables.Add(tv.On(surface.DragEnd, func(timeline.TimelineEvent) {
		c.Cancel()
	}))
	return c, nil
}

// Get returns the drag controller registered on tv.
func Get(tv *timeline.TimelineView) (*Controller, error) {
	return timeline.Lookup[*Controller](tv, timeline.DragID)
}

// ID implements timeline.Contribution.
func (c *Controller) ID() timeline.ContributionID { return timeline.DragID }

// Active reports whether a drag is in progress.
func (c *Controller) Active() bool { return c.session != nil }

// Offsets returns the current track and time offsets, and false when no drag
// is in progress.
func (c *Controller) Offsets() (trackOffset int, timeOffset float64, ok bool) {
	if c.session == nil {
		return 0, 0, false
	}
	trackOffset, timeOffset = c.session.offsets()
	return trackOffset, timeOffset, true
}

// Ghosts returns the ghost nodes currently rendered.
func (c *Controller) Ghosts() []*surface.Node {
	if c.session == nil {
		return nil
	}
	out := make([]*surface.Node, len(c.session.ghosts))
	copy(out, c.session.ghosts)
	return out
}

// OnDidDrop subscribes to committed drops.
func (c *Controller) OnDidDrop(fn func(DropResult)) lifecycle.Disposable {
	return c.onDidDrop.Subscribe(fn)
}

// Begin opens a drag from track slot trackIndex at time t and snapshots the
// selection of every slot. Any session already open is discarded.
func (c *Controller) Begin(trackIndex int, t float64) {
	if c.disposed {
		return
	}
	c.Cancel()
	slots := c.timeline.TrackViews()
	targets := make([][]timeline.TrackItemView, len(slots))
	for i, track := range slots {
		for item := range c.selection.IterateOnTrackView(track) {
			targets[i] = append(targets[i], item)
		}
	}
	c.session = &session{
		startTrack: trackIndex,
		startTime:  t,
		overTrack:  trackIndex,
		overTime:   t,
		targets:    targets,
	}
}

// Over moves the drag to track slot trackIndex at time t and re-renders the
// ghosts. It is ignored when no drag is in progress.
func (c *Controller) Over(trackIndex int, t float64) {
	if c.session == nil {
		return
	}
	c.session.overTrack = trackIndex
	c.session.overTime = t
	c.renderGhosts()
}

// sourceFor returns the snapshot that lands on destination slot i.
func (s *session) sourceFor(i, trackOffset int) []timeline.TrackItemView {
	src := i - trackOffset
	if src < 0 || src >= len(s.targets) {
		return nil
	}
	return s.targets[src]
}

func (c *Controller) renderGhosts() {
	s := c.session
	c.clearGhosts()
	trackOffset, timeOffset := s.offsets()
	for i, track := range c.timeline.TrackViews() {
		if track == nil {
			continue
		}
		tb := track.Base()
		d := tb.Delegate()
		if d == nil {
			continue
		}
		for _, item := range s.sourceFor(i, trackOffset) {
			left := d.TimeToPosition(item.StartTime() + timeOffset)
			right := d.TimeToPosition(item.EndTime() + timeOffset)
			ghost := surface.NewNode(timeline.ClassTrackItem, ClassGhost)
			ghost.Inert = true
			ghost.Label = item.Base().Node().Label
			ghost.SetBounds(left, 0, right-left, tb.Node().Height)
			tb.Node().Append(ghost)
			s.ghosts = append(s.ghosts, ghost)
		}
	}
}

func (c *Controller) clearGhosts() {
	if c.session == nil {
		return
	}
	for _, g := range c.session.ghosts {
		g.Remove()
	}
	c.session.ghosts = nil
}

// Drop commits the drag. Each selected item moves from slot s to slot
// s+trackOffset and by timeOffset in time. Items whose destination slot has no
// track stay where they are. Every removal happens before any insertion so an
// item never shares a track with itself.
func (c *Controller) Drop() DropResult {
	if c.session == nil {
		return DropResult{Err: ErrNoSession}
	}
	s := c.session
	trackOffset, timeOffset := s.offsets()
	res := DropResult{TrackOffset: trackOffset, TimeOffset: timeOffset}

	var errs []error
	removed := make(map[timeline.TrackItemView]bool)
	for i, items := range s.targets {
		src := c.timeline.TrackView(i)
		dst := c.timeline.TrackView(i + trackOffset)
		if src == nil || dst == nil {
			continue
		}
		for _, item := range items {
			if err := src.RemoveTrackItemView(item); err != nil {
				errs = append(errs, fmt.Errorf("drop: track %d: %w", i, err))
				continue
			}
			removed[item] = true
		}
	}
	for i, track := range c.timeline.TrackViews() {
		if track == nil {
			continue
		}
		for _, item := range s.sourceFor(i, trackOffset) {
			if !removed[item] {
				continue
			}
			item.SetValue(item.StartTime()+timeOffset, item.EndTime()+timeOffset)
			if err := track.InsertTrackItemView(item); err != nil {
				errs = append(errs, fmt.Errorf("drop: track %d: %w", i, err))
				continue
			}
			res.Moved = append(res.Moved, item)
		}
	}
	// Removal blurred the moved items; they stay selected across the move.
	for _, item := range res.Moved {
		c.selection.Select(item)
	}
	res.Err = errors.Join(errs...)

	c.clearGhosts()
	c.session = nil
	c.onDidDrop.Fire(res)
	return res
}

// Cancel closes the drag without committing and clears the ghosts.
func (c *Controller) Cancel() {
	c.clearGhosts()
	c.session = nil
}

// Dispose clears the ghosts, discards any session and unsubscribes. Track
// membership is left untouched. Safe to call more than once.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.Cancel()
	c.disposables.Dispose()
	c.onDidDrop.Dispose()
}
