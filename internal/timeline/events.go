package timeline

import "github.com/papapumpkin/chronon/internal/surface"

// ItemEvent is a gesture raised by a track item. Time is the pointer's time,
// derived from its offset within the item plus the item's start position.
type ItemEvent struct {
	Pointer *surface.Pointer
	Time    float64
	Target  TrackItemView
}

// TrackEvent is a gesture raised by a track, either re-emitted from one of its
// items (Item set) or raised on empty track space (Item nil).
type TrackEvent struct {
	Pointer *surface.Pointer
	Time    float64
	Target  TrackView
	Item    TrackItemView
}

// TimelineEvent is a gesture re-emitted by the timeline with the originating
// track and, when applicable, item.
type TimelineEvent struct {
	Pointer *surface.Pointer
	Time    float64
	Target  *TimelineView
	Track   TrackView
	Item    TrackItemView
}

// TrackSlot pairs a track with the slot it occupies.
type TrackSlot struct {
	Track TrackView
	Index int
}

// TrackItemChange pairs an item with the track it entered or left.
type TrackItemChange struct {
	Track TrackView
	Item  TrackItemView
}
