package telemetry

import "github.com/papapumpkin/chronon/internal/timeline"

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
