package drag

import (
	"testing"

	"github.com/papapumpkin/chronon/internal/selection"
	"github.com/papapumpkin/chronon/internal/surface"
	"github.com/papapumpkin/chronon/internal/timeline"
)

type testItem struct {
	*timeline.ItemBase
	start, end float64
}

func newTestItem(start, end float64) *testItem {
	it := &testItem{start: start, end: end}
	it.ItemBase = timeline.NewItemBase(it)
	return it
}

func (it *testItem) StartTime() float64 { return it.start }
func (it *testItem) EndTime() float64 { return it.end }
func (it *testItem) SetValue(start, end float64) {
	it.start, it.end = start, end
}

type testTrack struct {
	*timeline.TrackBase
}

func newTestTrack() *testTrack {
	tr := &testTrack{}
	tr.TrackBase = timeline.NewTrackBase(tr)
	return tr
}

func (tr *testTrack) InsertTrackItemView(item timeline.TrackItemView) error {
	return tr.DoInsertTrackItemView(item)
}

func (tr *testTrack) RemoveTrackItemView(item timeline.TrackItemView) error {
	return tr.DoRemoveTrackItemView(item)
}

// fixture builds a 500-wide timeline over [0, 200) with n tracks of height 2,
// so one time unit is 2.5 surface units, and registers selection then drag.
func fixture(t *testing.T, n int) (*timeline.TimelineView, []*testTrack, *selection.Controller, *Controller) {
	t.Helper()
	tv := timeline.New(surface.NewNode("host"), timeline.WithTrackHeight(2))
	tv.SetTimeRange(0, 200)
	tv.Layout(500, float64(n)*2)
	tracks := make([]*testTrack, n)
	for i := range tracks {
		tracks[i] = newTestTrack()
		if err := tv.InsertTrackView(tracks[i], i); err != nil {
			t.Fatal(err)
		}
	}
	sel := selection.New(tv)
	if err := tv.AddContribution(sel); err != nil {
		t.Fatal(err)
	}
	c, err := New(tv)
	if err != nil {
		t.Fatal(err)
	}
	if err := tv.AddContribution(c); err != nil {
		t.Fatal(err)
	}
	return tv, tracks, sel, c
}

func insert(t *testing.T, track *testTrack, start, end float64) *testItem {
	t.Helper()
	it := newTestItem(start, end)
	if err := track.InsertTrackItemView(it); err != nil {
		t.Fatal(err)
	}
	return it
}

func ghostsUnder(track *testTrack) []*surface.Node {
	var out []*surface.Node
	for _, n := range track.Node().Children() {
		if n.HasClass(ClassGhost) {
			out = append(out, n)
		}
	}
	return out
}
