package timeline

import (
	"fmt"
	"math"

	"github.com/papapumpkin/chronon/internal/event"
	"github.com/papapumpkin/chronon/internal/lifecycle"
	"github.com/papapumpkin/chronon/internal/surface"
)

// ClassTrack is the node class every track carries.
const ClassTrack = "track"

// TrackView is an ordered container of track items. Concrete variants embed
// *TrackBase and implement insert/remove by calling DoInsertTrackItemView and
// DoRemoveTrackItemView; when to call them is the variant's policy.
type TrackView interface {
	Base() *TrackBase
	InsertTrackItemView(item TrackItemView) error
	RemoveTrackItemView(item TrackItemView) error
}

// TrackBase carries the behavior shared by every track.
type TrackBase struct {
	owner    TrackView
	node     *surface.Node
	delegate *Delegate
	timeline *TimelineView

	// items is in z-order, not time order; items may overlap.
	items           []TrackItemView
	itemDisposables map[TrackItemView]*lifecycle.Store

	emitters    map[surface.Gesture]*event.Emitter[TrackEvent]
	onDidInsert event.Emitter[TrackItemView]
	onDidRemove event.Emitter[TrackItemView]

	disposables *lifecycle.Store
}

// NewTrackBase builds the base for owner, the concrete track embedding it.
func NewTrackBase(owner TrackView) *TrackBase {
	t := &TrackBase{
		owner:           owner,
		node:            surface.NewNode(ClassTrack),
		itemDisposables: make(map[TrackItemView]*lifecycle.Store),
		emitters:        make(map[surface.Gesture]*event.Emitter[TrackEvent]),
		disposables:     lifecycle.NewStore(),
	}
	for _, g := range surface.Gestures {
		t.emitters[g] = &event.Emitter[TrackEvent]{}
	}
	// Track-level listeners so a drag can land on empty track space.
	t.listen(surface.DragOver, true, true)
	t.listen(surface.Drop, false, true)
	return t
}

func (t *TrackBase) listen(g surface.Gesture, preventDefault, stopPropagation bool) {
	em := t.emitters[g]
	t.disposables.Add(t.node.Listen(g, func(p *surface.Pointer) {
		tm := math.NaN()
		if t.delegate != nil {
			tm = t.delegate.PositionToTime(p.OffsetX(t.node))
		}
		if preventDefault {
			p.PreventDefault()
		}
		if stopPropagation {
			p.StopPropagation()
		}
		em.Fire(TrackEvent{Pointer: p, Time: tm, Target: t.owner})
	}))
}

// Base returns t, satisfying TrackView for embedding types.
func (t *TrackBase) Base() *TrackBase { return t }

// Node returns the track's visual node.
func (t *TrackBase) Node() *surface.Node { return t.node }

// Delegate returns the delegate assigned by the timeline, or nil.
func (t *TrackBase) Delegate() *Delegate { return t.delegate }

// SetDelegate assigns the delegate to the track and every current item.
func (t *TrackBase) SetDelegate(d *Delegate) {
	t.delegate = d
	for _, item := range t.items {
		item.Base().SetDelegate(d)
	}
}

// Timeline returns the timeline the track is inserted in, or nil.
func (t *TrackBase) Timeline() *TimelineView { return t.timeline }

// TrackItemViews returns a copy of the items in z-order.
func (t *TrackBase) TrackItemViews() []TrackItemView {
	out := make([]TrackItemView, len(t.items))
	copy(out, t.items)
	return out
}

// Len returns the number of items on the track.
func (t *TrackBase) Len() int { return len(t.items) }

// HasTrackItemView reports whether item is a member of this track.
func (t *TrackBase) HasTrackItemView(item TrackItemView) bool {
	return t.indexOf(item) != -1
}

func (t *TrackBase) indexOf(item TrackItemView) int {
	for i, it := range t.items {
		if it == item {
			return i
		}
	}
	return -1
}

// On subscribes to gesture g raised on this track or re-emitted from its items.
func (t *TrackBase) On(g surface.Gesture, fn func(TrackEvent)) lifecycle.Disposable {
	em, ok := t.emitters[g]
	if !ok {
		return lifecycle.None
	}
	return em.Subscribe(fn)
}

// OnDidInsertTrackItemView subscribes to item insertion.
func (t *TrackBase) OnDidInsertTrackItemView(fn func(TrackItemView)) lifecycle.Disposable {
	return t.onDidInsert.Subscribe(fn)
}

// OnDidRemoveTrackItemView subscribes to item removal.
func (t *TrackBase) OnDidRemoveTrackItemView(fn func(TrackItemView)) lifecycle.Disposable {
	return t.onDidRemove.Subscribe(fn)
}

// DoInsertTrackItemView is the shared insert operation. It assigns the track's
// delegate, appends item on top of the z-order, re-emits its gestures tagged
// with item, lays it out, and notifies observers.
func (t *TrackBase) DoInsertTrackItemView(item TrackItemView) error {
	ib := item.Base()
	if ib.track != nil {
		return fmt.Errorf("insert track item: %w", ErrItemOwned)
	}
	ib.SetDelegate(t.delegate)
	ib.track = t.owner
	t.items = append(t.items, item)
	ib.node.Top = 0
	ib.node.Height = t.node.Height
	t.node.Append(ib.node)

	store := lifecycle.NewStore()
	for _, g := range surface.Gestures {
		em := t.emitters[g]
		store.Add(ib.On(g, func(e ItemEvent) {
			em.Fire(TrackEvent{Pointer: e.Pointer, Time: e.Time, Target: t.owner, Item: e.Target})
		}))
	}
	t.itemDisposables[item] = store

	ib.Update()
	t.onDidInsert.Fire(item)
	return nil
}

// DoRemoveTrackItemView is the shared remove operation. It fails with
// ErrItemNotFound when item is not a member.
func (t *TrackBase) DoRemoveTrackItemView(item TrackItemView) error {
	idx := t.indexOf(item)
	if idx == -1 {
		return fmt.Errorf("remove track item: %w", ErrItemNotFound)
	}
	t.items = append(t.items[:idx:idx], t.items[idx+1:]...)
	ib := item.Base()
	_ = t.node.RemoveChild(ib.node)
	if store, ok := t.itemDisposables[item]; ok {
		store.Dispose()
		delete(t.itemDisposables, item)
	}
	ib.track = nil
	t.onDidRemove.Fire(item)
	return nil
}

// Update re-lays out every item.
func (t *TrackBase) Update() {
	for _, item := range t.items {
		n := item.Base().node
		n.Top = 0
		n.Height = t.node.Height
		item.Base().Update()
	}
}

// Dispose releases all wiring and disposes the items.
func (t *TrackBase) Dispose() {
	for _, store := range t.itemDisposables {
		store.Dispose()
	}
	t.itemDisposables = make(map[TrackItemView]*lifecycle.Store)
	for _, item := range t.items {
		item.Base().track = nil
		item.Base().Dispose()
	}
	t.items = nil
	t.disposables.Dispose()
	for _, em := range t.emitters {
		em.Dispose()
	}
	t.onDidInsert.Dispose()
	t.onDidRemove.Dispose()
	t.node.Remove()
}
