package selection

import (
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

// fixture builds a 500-wide timeline over [0, 200) with n tracks and a
// registered selection controller.
func fixture(n int, opts ...Option) (*timeline.TimelineView, []*testTrack, *Controller) {
	tv := timeline.New(surface.NewNode("host"), timeline.WithTrackHeight(2))
	tv.SetTimeRange(0, 200)
	tv.Layout(500, float64(n)*2)
	tracks := make([]*testTrack, n)
	for i := range tracks {
		tracks[i] = newTestTrack()
		if err := tv.InsertTrackView(tracks[i], i); err != nil {
			panic(err)
		}
	}
	c := New(tv, opts...)
	if err := tv.AddContribution(c); err != nil {
		panic(err)
	}
	return tv, tracks, c
}

func press(tv *timeline.TimelineView, item timeline.TrackItemView) {
	x, y := item.Base().Node().AbsPosition()
	tv.Dispatch(surface.Press, &surface.Pointer{X: x + 1, Y: y})
}
