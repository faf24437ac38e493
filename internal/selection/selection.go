// Package selection tracks which track items are selected across every track
// of a timeline. The controller is a timeline contribution; register it before
// anything that looks it up.
package selection

import (
	"iter"

	"github.com/papapumpkin/chronon/internal/event"
	"github.com/papapumpkin/chronon/internal/lifecycle"
	"github.com/papapumpkin/chronon/internal/surface"
	"github.com/papapumpkin/chronon/internal/timeline"
)

// ClassSelected marks a selected item's node.
const ClassSelected = "selected"

// Option configures a Controller.
type Option func(*Controller)

// WithoutDefaultPress disables the single-select-on-press policy so the caller
// can install its own (for example additive selection).
func WithoutDefaultPress() Option {
	return func(c *Controller) { c.defaultPress = false }
}

// Controller owns the selection set. An item is in the set iff its node
// carries ClassSelected, and the set never holds an item that has left its
// track.
type Controller struct {
	timeline *timeline.TimelineView

	// selects keeps insertion order so iteration is stable.
	selects []timeline.TrackItemView
	members map[timeline.TrackItemView]bool

	defaultPress bool
	disposables  *lifecycle.Store
	itemSubs     map[timeline.TrackItemView]*lifecycle.Store

	onDidSelect event.Emitter[timeline.TrackItemView]
	onDidBlur   event.Emitter[timeline.TrackItemView]
}

// New attaches a controller to tv, subscribing to every item already present
// and to every item inserted later.
func New(tv *timeline.TimelineView, opts ...Option) *Controller {
	c := &Controller{
		timeline:     tv,
		members:      make(map[timeline.TrackItemView]bool),
		defaultPress: true,
		disposables:  lifecycle.NewStore(),
		itemSubs:     make(map[timeline.TrackItemView]*lifecycle.Store),
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, track := range tv.TrackViews() {
		if track == nil {
			continue
		}
		for _, item := range track.Base().TrackItemViews() {
			c.listenItem(item)
		}
	}

	c.disposables.Add(tv.OnDidInsertTrackItemView(func(ch timeline.TrackItemChange) {
		c.listenItem(ch.Item)
	}))
	c.disposables.Add(tv.OnDidRemoveTrackItemView(func(ch timeline.TrackItemChange) {
		c.Blur(ch.Item)
		c.unlistenItem(ch.Item)
	}))
	// Whole tracks entering or leaving carry their items with them.
	c.disposables.Add(tv.OnDidInsertTrackView(func(s timeline.TrackSlot) {
		for _, item := range s.Track.Base().TrackItemViews() {
			c.listenItem(item)
		}
	}))
	c.disposables.Add(tv.OnDidRemoveTrackView(func(s timeline.TrackSlot) {
		for _, item := range s.Track.Base().TrackItemViews() {
			c.Blur(item)
			c.unlistenItem(item)
		}
	}))
	return c
}

// Get returns the controller registered on tv.
func Get(tv *timeline.TimelineView) (*Controller, error) {
	return timeline.Lookup[*Controller](tv, timeline.SelectionID)
}

// ID implements timeline.Contribution.
func (c *Controller) ID() timeline.ContributionID { return timeline.SelectionID }

func (c *Controller) listenItem(item timeline.TrackItemView) {
	if _, ok := c.itemSubs[item]; ok {
		return
	}
	store := lifecycle.NewStore()
	if c.defaultPress {
		store.Add(item.Base().On(surface.Press, func(timeline.ItemEvent) {
			c.BlurAll()
			c.Select(item)
		}))
	}
	c.itemSubs[item] = store
}

func (c *Controller) unlistenItem(item timeline.TrackItemView) {
	if store, ok := c.itemSubs[item]; ok {
		store.Dispose()
		delete(c.itemSubs, item)
	}
}

// Select adds item to the set. It is a no-op if item is already selected.
func (c *Controller) Select(item timeline.TrackItemView) {
	if c.members[item] {
		return
	}
	c.members[item] = true
	c.selects = append(c.selects, item)
	item.Base().Node().AddClass(ClassSelected)
	c.onDidSelect.Fire(item)
}

// Blur removes item from the set. It is a no-op if item is not selected.
func (c *Controller) Blur(item timeline.TrackItemView) {
	if !c.members[item] {
		return
	}
	delete(c.members, item)
	for i, s := range c.selects {
		if s == item {
			c.selects = append(c.selects[:i:i], c.selects[i+1:]...)
			break
		}
	}
	item.Base().Node().RemoveClass(ClassSelected)
	c.onDidBlur.Fire(item)
}

// BlurAll blurs every selected item.
func (c *Controller) BlurAll() {
	for _, item := range c.Selects() {
		c.Blur(item)
	}
}

// IsSelected reports whether item is in the set.
func (c *Controller) IsSelected(item timeline.TrackItemView) bool {
	return c.members[item]
}

// Len returns the number of selected items.
func (c *Controller) Len() int { return len(c.selects) }

// Selects returns a copy of the selected items.
func (c *Controller) Selects() []timeline.TrackItemView {
	out := make([]timeline.TrackItemView, len(c.selects))
	copy(out, c.selects)
	return out
}

// Selection returns the earliest selected item still selected, or nil.
func (c *Controller) Selection() timeline.TrackItemView {
	if len(c.selects) == 0 {
		return nil
	}
	return c.selects[0]
}

// Iterate yields every selected item. The sequence is lazy and may be ranged
// over more than once.
func (c *Controller) Iterate() iter.Seq[timeline.TrackItemView] {
	return func(yield func(timeline.TrackItemView) bool) {
		for _, item := range c.Selects() {
			if !yield(item) {
				return
			}
		}
	}
}

// IterateOnTrackView yields the selected items that are members of track.
func (c *Controller) IterateOnTrackView(track timeline.TrackView) iter.Seq[timeline.TrackItemView] {
	return func(yield func(timeline.TrackItemView) bool) {
		if track == nil {
			return
		}
		for item := range c.Iterate() {
			if !track.Base().HasTrackItemView(item) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// OnDidSelect subscribes to selections.
func (c *Controller) OnDidSelect(fn func(timeline.TrackItemView)) lifecycle.Disposable {
	return c.onDidSelect.Subscribe(fn)
}

// OnDidBlur subscribes to blurs.
func (c *Controller) OnDidBlur(fn func(timeline.TrackItemView)) lifecycle.Disposable {
	return c.onDidBlur.Subscribe(fn)
}

// Dispose releases every subscription. Selected items keep their marking.
func (c *Controller) Dispose() {
	c.disposables.Dispose()
	for item := range c.itemSubs {
		c.unlistenItem(item)
	}
	c.onDidSelect.Dispose()
	c.onDidBlur.Dispose()
}
