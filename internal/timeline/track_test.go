package timeline

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/papapumpkin/chronon/internal/surface"
)

func TestTrack_InsertAssignsDelegateAndLayout(t *testing.T) {
	t.Parallel()
	tv, tracks := newTestTimeline(1)
	item := newTestItem(50, 80)

	if err := tracks[0].InsertTrackItemView(item); err != nil {
		t.Fatalf("InsertTrackItemView: %v", err)
	}
	if item.Delegate() != tv.Delegate() {
		t.Error("item delegate should be the timeline's delegate")
	}
	if item.Track() != TrackView(tracks[0]) {
		t.Error("item should record its owning track")
	}
	if item.StartPos() != 125 || item.EndPos() != 200 {
		t.Errorf("positions = (%v, %v), want (125, 200)", item.StartPos(), item.EndPos())
	}
	n := item.Node()
	if n.Left != 125 || n.Width != 75 || n.Height != 2 {
		t.Errorf("node bounds = left %v width %v height %v", n.Left, n.Width, n.Height)
	}
	if n.Parent() != tracks[0].Node() {
		t.Error("item node should be a child of the track node")
	}
}

func TestTrack_RoundTripInsertRemove(t *testing.T) {
	t.Parallel()
	_, tracks := newTestTimeline(1)
	track := tracks[0]
	a, b := newTestItem(0, 10), newTestItem(20, 30)
	for _, it := range []*testItem{a, b} {
		if err := track.InsertTrackItemView(it); err != nil {
			t.Fatal(err)
		}
	}
	before := track.TrackItemViews()

	var inserted, removed int
	track.OnDidInsertTrackItemView(func(TrackItemView) { inserted++ })
	track.OnDidRemoveTrackItemView(func(TrackItemView) { removed++ })

	c := newTestItem(5, 25)
	if err := track.InsertTrackItemView(c); err != nil {
		t.Fatal(err)
	}
	if !track.HasTrackItemView(c) {
		t.Fatal("expected c to be a member after insert")
	}
	if err := track.RemoveTrackItemView(c); err != nil {
		t.Fatal(err)
	}

	if got := track.TrackItemViews(); !slices.Equal(before, got) {
		t.Errorf("items changed after round trip: got %v, want %v", got, before)
	}
	if inserted != 1 || removed != 1 {
		t.Errorf("notifications: inserted=%d removed=%d, want 1 and 1", inserted, removed)
	}
	if c.Track() != nil || c.Node().Parent() != nil {
		t.Error("removed item should be detached")
	}
}

func TestTrack_RemoveNotMember(t *testing.T) {
	t.Parallel()
	_, tracks := newTestTimeline(1)
	err := tracks[0].RemoveTrackItemView(newTestItem(0, 1))
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("err = %v, want ErrItemNotFound", err)
	}
}

func TestTrack_InsertOwnedElsewhere(t *testing.T) {
	t.Parallel()
	_, tracks := newTestTimeline(2)
	item := newTestItem(0, 1)
	if err := tracks[0].InsertTrackItemView(item); err != nil {
		t.Fatal(err)
	}
	err := tracks[1].InsertTrackItemView(item)
	if !errors.Is(err, ErrItemOwned) {
		t.Errorf("err = %v, want ErrItemOwned", err)
	}
	if tracks[1].Len() != 0 {
		t.Error("failed insert must not add the item")
	}
}

func TestTrack_ItemOrderIsZOrder(t *testing.T) {
	t.Parallel()
	_, tracks := newTestTimeline(1)
	late, early := newTestItem(100, 150), newTestItem(10, 20)
	_ = tracks[0].InsertTrackItemView(late)
	_ = tracks[0].InsertTrackItemView(early)
	got := tracks[0].TrackItemViews()
	if got[0] != TrackItemView(late) || got[1] != TrackItemView(early) {
		t.Error("items should keep insertion order, not time order")
	}
}

func TestTrack_UpdateIsExplicit(t *testing.T) {
	t.Parallel()
	_, tracks := newTestTimeline(1)
	item := newTestItem(0, 10)
	_ = tracks[0].InsertTrackItemView(item)

	item.SetValue(100, 110)
	if item.StartPos() != 0 {
		t.Fatalf("StartPos changed without Update: %v", item.StartPos())
	}
	item.Update()
	if item.StartPos() != 250 {
		t.Errorf("StartPos after Update = %v, want 250", item.StartPos())
	}
}

func TestItem_GestureTimeUsesItemOffset(t *testing.T) {
	t.Parallel()
	tv, tracks := newTestTimeline(2)
	item := newTestItem(50, 80)
	_ = tracks[1].InsertTrackItemView(item)

	var itemEvt ItemEvent
	var trackEvt TrackEvent
	var tlEvt TimelineEvent
	item.On(surface.Press, func(e ItemEvent) { itemEvt = e })
	tracks[1].On(surface.Press, func(e TrackEvent) { trackEvt = e })
	tv.On(surface.Press, func(e TimelineEvent) { tlEvt = e })

	// 10 units into the item, which starts at 125: position 135 → time 54.
	p := &surface.Pointer{X: 135, Y: 2.5}
	if !tv.Dispatch(surface.Press, p) {
		t.Fatal("expected the pointer to hit the timeline")
	}
	if math.Abs(itemEvt.Time-54) > 1e-9 || itemEvt.Target != TrackItemView(item) {
		t.Errorf("item event = %+v", itemEvt)
	}
	if trackEvt.Item != TrackItemView(item) || trackEvt.Target != TrackView(tracks[1]) {
		t.Errorf("track event not tagged with item: %+v", trackEvt)
	}
	if tlEvt.Track != TrackView(tracks[1]) || tlEvt.Item != TrackItemView(item) || tlEvt.Target != tv {
		t.Errorf("timeline event not tagged: %+v", tlEvt)
	}
	if tlEvt.Pointer != p {
		t.Error("timeline event should carry the originating pointer")
	}
}

func TestItem_DragOverStopsAtItem(t *testing.T) {
	t.Parallel()
	tv, tracks := newTestTimeline(1)
	item := newTestItem(50, 80)
	_ = tracks[0].InsertTrackItemView(item)

	var events []TimelineEvent
	tv.On(surface.DragOver, func(e TimelineEvent) { events = append(events, e) })
	tv.On(surface.Drop, func(e TimelineEvent) { events = append(events, e) })

	over := &surface.Pointer{X: 130, Y: 1}
	tv.Dispatch(surface.DragOver, over)
	tv.Dispatch(surface.Drop, &surface.Pointer{X: 130, Y: 1})

	if len(events) != 2 {
		t.Fatalf("got %d timeline events, want 2 (no double handling)", len(events))
	}
	for _, e := range events {
		if e.Item != TrackItemView(item) {
			t.Errorf("event should come from the item, got item %v", e.Item)
		}
	}
	if !over.DefaultPrevented() {
		t.Error("dragover should prevent the default drag behavior")
	}
}

func TestTrack_DragOverOnEmptySpaceUsesRawOffset(t *testing.T) {
	t.Parallel()
	tv, tracks := newTestTimeline(2)
	var got TimelineEvent
	tv.On(surface.DragOver, func(e TimelineEvent) { got = e })

	tv.Dispatch(surface.DragOver, &surface.Pointer{X: 250, Y: 3})
	if got.Track != TrackView(tracks[1]) || got.Item != nil {
		t.Fatalf("event = %+v, want track 1 with no item", got)
	}
	if got.Time != 100 {
		t.Errorf("time = %v, want 100", got.Time)
	}
}

func TestTrack_PressOnEmptySpaceIsNotEmitted(t *testing.T) {
	t.Parallel()
	tv, _ := newTestTimeline(1)
	calls := 0
	tv.On(surface.Press, func(TimelineEvent) { calls++ })
	tv.Dispatch(surface.Press, &surface.Pointer{X: 10, Y: 1})
	if calls != 0 {
		t.Errorf("press on empty track emitted %d events", calls)
	}
}

func TestTrack_RemovedItemStopsEmitting(t *testing.T) {
	t.Parallel()
	_, tracks := newTestTimeline(1)
	item := newTestItem(0, 100)
	_ = tracks[0].InsertTrackItemView(item)
	calls := 0
	tracks[0].On(surface.DoubleClick, func(TrackEvent) { calls++ })
	_ = tracks[0].RemoveTrackItemView(item)

	surface.Dispatch(surface.DoubleClick, item.Node(), &surface.Pointer{})
	if calls != 0 {
		t.Errorf("track re-emitted %d events from a removed item", calls)
	}
}
