// Package timeline is the editor core: the coordinate delegate, the
// timeline → track → track-item view hierarchy with gesture re-emission, and
// the contribution registry that optional behaviors attach to.
package timeline

import (
	"fmt"

	"github.com/papapumpkin/chronon/internal/event"
	"github.com/papapumpkin/chronon/internal/lifecycle"
	"github.com/papapumpkin/chronon/internal/surface"
)

// Node classes created by the timeline.
const (
	ClassTimeline        = "timeline"
	ClassTracksContainer = "tracks"
	ClassTrackContainer  = "track-container"
)

// DefaultTrackHeight is the height of one track slot in surface units.
const DefaultTrackHeight = 2

// Option configures a TimelineView.
type Option func(*TimelineView)

// WithTrackHeight sets the height of each track slot.
func WithTrackHeight(h float64) Option {
	return func(tv *TimelineView) {
		if h > 0 {
			tv.trackHeight = h
		}
	}
}

// TimelineView is the root of the hierarchy. It owns the shared Delegate and
// the contribution registry, and re-emits every track and item gesture so
// contributions have one place to subscribe.
//
// Track slots are sparse: removing a track leaves a nil hole so the indices of
// the remaining tracks never shift.
type TimelineView struct {
	node       *surface.Node
	tracksNode *surface.Node
	containers map[TrackView]*surface.Node

	delegate           *Delegate
	startTime, endTime float64
	width, height      float64
	trackHeight        float64

	tracks           []TrackView
	trackDisposables map[TrackView]*lifecycle.Store

	contributions     map[ContributionID]Contribution
	contributionOrder []ContributionID

	emitters                 map[surface.Gesture]*event.Emitter[TimelineEvent]
	onDidInsertTrackView     event.Emitter[TrackSlot]
	onDidRemoveTrackView     event.Emitter[TrackSlot]
	onDidInsertTrackItemView event.Emitter[TrackItemChange]
	onDidRemoveTrackItemView event.Emitter[TrackItemChange]

	disposed bool
}

// New creates a timeline and attaches its root node to parent.
func New(parent *surface.Node, opts ...Option) *TimelineView {
	tv := &TimelineView{
		node:             surface.NewNode(ClassTimeline),
		tracksNode:       surface.NewNode(ClassTracksContainer),
		containers:       make(map[TrackView]*surface.Node),
		delegate:         NewDelegate(),
		trackHeight:      DefaultTrackHeight,
		trackDisposables: make(map[TrackView]*lifecycle.Store),
		contributions:    make(map[ContributionID]Contribution),
		emitters:         make(map[surface.Gesture]*event.Emitter[TimelineEvent]),
	}
	for _, opt := range opts {
		opt(tv)
	}
	for _, g := range surface.Gestures {
		tv.emitters[g] = &event.Emitter[TimelineEvent]{}
	}
	tv.node.Append(tv.tracksNode)
	if parent != nil {
		parent.Append(tv.node)
	}
	return tv
}

// Node returns the timeline's root node.
func (tv *TimelineView) Node() *surface.Node { return tv.node }

// Delegate returns the shared coordinate delegate.
func (tv *TimelineView) Delegate() *Delegate { return tv.delegate }

// TrackHeight returns the height of one track slot.
func (tv *TimelineView) TrackHeight() float64 { return tv.trackHeight }

// Size returns the last layout width and height.
func (tv *TimelineView) Size() (width, height float64) { return tv.width, tv.height }

// TimeRange returns the visible time range.
func (tv *TimelineView) TimeRange() (start, end float64) { return tv.startTime, tv.endTime }

// update pushes width and range into the delegate, scale first, then
// re-lays out every track.
func (tv *TimelineView) update() {
	scale := tv.width / (tv.endTime - tv.startTime)
	tv.delegate.SetScale(scale)
	tv.delegate.SetTimeRange(tv.startTime, tv.endTime)
	for _, track := range tv.tracks {
		if track != nil {
			track.Base().Update()
		}
	}
}

// Layout resizes the timeline and re-lays out everything.
func (tv *TimelineView) Layout(width, height float64) {
	tv.width, tv.height = width, height
	tv.node.Width, tv.node.Height = width, height
	tv.tracksNode.Width, tv.tracksNode.Height = width, height
	for track, container := range tv.containers {
		container.Width = width
		track.Base().node.Width = width
	}
	tv.update()
}

// SetTimeRange changes the visible range and re-lays out everything.
func (tv *TimelineView) SetTimeRange(start, end float64) {
	tv.startTime, tv.endTime = start, end
	tv.update()
}

// Len returns the number of track slots, including holes.
func (tv *TimelineView) Len() int { return len(tv.tracks) }

// TrackViews returns a copy of the track slots; removed slots are nil.
func (tv *TimelineView) TrackViews() []TrackView {
	out := make([]TrackView, len(tv.tracks))
	copy(out, tv.tracks)
	return out
}

// TrackView returns the track at index, or nil for a hole or out of range.
func (tv *TimelineView) TrackView(index int) TrackView {
	if index < 0 || index >= len(tv.tracks) {
		return nil
	}
	return tv.tracks[index]
}

// IndexOf returns the slot holding track, or -1.
func (tv *TimelineView) IndexOf(track TrackView) int {
	if track == nil {
		return -1
	}
	for i, t := range tv.tracks {
		if t == track {
			return i
		}
	}
	return -1
}

// TrackContainer returns the container node created for track, or nil.
func (tv *TimelineView) TrackContainer(track TrackView) *surface.Node {
	return tv.containers[track]
}

// InsertTrackView places track in slot index. The slot must be empty; slots
// beyond the current length are created as holes.
func (tv *TimelineView) InsertTrackView(track TrackView, index int) error {
	if index < 0 {
		return fmt.Errorf("insert track %d: %w", index, ErrTrackIndexRange)
	}
	if index < len(tv.tracks) && tv.tracks[index] != nil {
		return fmt.Errorf("insert track %d: %w", index, ErrTrackSlotOccupied)
	}
	tb := track.Base()
	if tb.timeline != nil {
		return fmt.Errorf("insert track %d: %w", index, ErrTrackAttached)
	}
	for len(tv.tracks) <= index {
		tv.tracks = append(tv.tracks, nil)
	}
	tv.tracks[index] = track
	tb.timeline = tv
	tb.SetDelegate(tv.delegate)

	container := surface.NewNode(ClassTrackContainer)
	container.SetBounds(0, float64(index)*tv.trackHeight, tv.width, tv.trackHeight)
	tb.node.SetBounds(0, 0, tv.width, tv.trackHeight)
	container.Append(tb.node)
	tv.tracksNode.Append(container)
	tv.containers[track] = container

	store := lifecycle.NewStore()
	store.Add(tb.OnDidInsertTrackItemView(func(item TrackItemView) {
		tv.onDidInsertTrackItemView.Fire(TrackItemChange{Track: track, Item: item})
	}))
	store.Add(tb.OnDidRemoveTrackItemView(func(item TrackItemView) {
		tv.onDidRemoveTrackItemView.Fire(TrackItemChange{Track: track, Item: item})
	}))
	for _, g := range surface.Gestures {
		em := tv.emitters[g]
		store.Add(tb.On(g, func(e TrackEvent) {
			em.Fire(TimelineEvent{
				Pointer: e.Pointer,
				Time:    e.Time,
				Target:  tv,
				Track:   e.Target,
				Item:    e.Item,
			})
		}))
	}
	tv.trackDisposables[track] = store

	tb.Update()
	tv.onDidInsertTrackView.Fire(TrackSlot{Track: track, Index: index})
	return nil
}

// RemoveTrackView empties slot index, leaving a hole. The track keeps its
// items; the caller decides whether to dispose it.
func (tv *TimelineView) RemoveTrackView(index int) error {
	track := tv.TrackView(index)
	if track == nil {
		return fmt.Errorf("remove track %d: %w", index, ErrTrackNotFound)
	}
	tv.tracks[index] = nil
	if container, ok := tv.containers[track]; ok {
		container.Remove()
		_ = container.RemoveChild(track.Base().node)
		delete(tv.containers, track)
	}
	track.Base().timeline = nil
	tv.onDidRemoveTrackView.Fire(TrackSlot{Track: track, Index: index})
	if store, ok := tv.trackDisposables[track]; ok {
		store.Dispose()
		delete(tv.trackDisposables, track)
	}
	return nil
}

// On subscribes to gesture g raised anywhere in the timeline.
func (tv *TimelineView) On(g surface.Gesture, fn func(TimelineEvent)) lifecycle.Disposable {
	em, ok := tv.emitters[g]
	if !ok {
		return lifecycle.None
	}
	return em.Subscribe(fn)
}

// OnDidInsertTrackView subscribes to track insertion.
func (tv *TimelineView) OnDidInsertTrackView(fn func(TrackSlot)) lifecycle.Disposable {
	return tv.onDidInsertTrackView.Subscribe(fn)
}

// OnDidRemoveTrackView subscribes to track removal.
func (tv *TimelineView) OnDidRemoveTrackView(fn func(TrackSlot)) lifecycle.Disposable {
	return tv.onDidRemoveTrackView.Subscribe(fn)
}

// OnDidInsertTrackItemView subscribes to item insertion on any track.
func (tv *TimelineView) OnDidInsertTrackItemView(fn func(TrackItemChange)) lifecycle.Disposable {
	return tv.onDidInsertTrackItemView.Subscribe(fn)
}

// OnDidRemoveTrackItemView subscribes to item removal from any track.
func (tv *TimelineView) OnDidRemoveTrackItemView(fn func(TrackItemChange)) lifecycle.Disposable {
	return tv.onDidRemoveTrackItemView.Subscribe(fn)
}

// Dispatch hit-tests the absolute point and delivers gesture g to the node
// found there. It reports whether any node under the timeline was hit.
func (tv *TimelineView) Dispatch(g surface.Gesture, p *surface.Pointer) bool {
	target := tv.node.HitTest(p.X, p.Y)
	if target == nil {
		return false
	}
	surface.Dispatch(g, target, p)
	return true
}

// Dispose tears down contributions (most recent first), then tracks and their
// items, then detaches the root node. Safe to call more than once.
func (tv *TimelineView) Dispose() {
	if tv.disposed {
		return
	}
	tv.disposed = true
	for i := len(tv.contributionOrder) - 1; i >= 0; i-- {
		tv.contributions[tv.contributionOrder[i]].Dispose()
	}
	tv.contributions = make(map[ContributionID]Contribution)
	tv.contributionOrder = nil

	for _, store := range tv.trackDisposables {
		store.Dispose()
	}
	tv.trackDisposables = make(map[TrackView]*lifecycle.Store)
	for _, track := range tv.tracks {
		if track != nil {
			track.Base().timeline = nil
			track.Base().Dispose()
		}
	}
	tv.tracks = nil
	tv.containers = make(map[TrackView]*surface.Node)

	for _, em := range tv.emitters {
		em.Dispose()
	}
	tv.onDidInsertTrackView.Dispose()
	tv.onDidRemoveTrackView.Dispose()
	tv.onDidInsertTrackItemView.Dispose()
	tv.onDidRemoveTrackItemView.Dispose()
	tv.node.Remove()
}
