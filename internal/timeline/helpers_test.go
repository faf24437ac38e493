package timeline

import "github.com/papapumpkin/chronon/internal/surface"

type testItem struct {
	*ItemBase
	start, end float64
}

func newTestItem(start, end float64) *testItem {
	it := &testItem{start: start, end: end}
	it.ItemBase = NewItemBase(it)
	return it
}

func (it *testItem) StartTime() float64 { return it.start }
func (it *testItem) EndTime() float64 { return it.end }
func (it *testItem) SetValue(start, end float64) {
	it.start, it.end = start, end
}

type testTrack struct {
	*TrackBase
}

func newTestTrack() *testTrack {
	tr := &testTrack{}
	tr.TrackBase = NewTrackBase(tr)
	return tr
}

func (tr *testTrack) InsertTrackItemView(item TrackItemView) error {
	return tr.DoInsertTrackItemView(item)
}

func (tr *testTrack) RemoveTrackItemView(item TrackItemView) error {
	return tr.DoRemoveTrackItemView(item)
}

// newTestTimeline returns a 500-wide timeline over [0, 200) with n tracks.
func newTestTimeline(n int) (*TimelineView, []*testTrack) {
	host := surface.NewNode("host")
	tv := New(host, WithTrackHeight(2))
	tv.SetTimeRange(0, 200)
	tv.Layout(500, float64(n)*2)
	tracks := make([]*testTrack, n)
	for i := range tracks {
		tracks[i] = newTestTrack()
		if err := tv.InsertTrackView(tracks[i], i); err != nil {
			panic(err)
		}
	}
	return tv, tracks
}
