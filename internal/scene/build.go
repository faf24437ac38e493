package scene

import (
	"errors"
	"fmt"

	"github.com/papapumpkin/chronon/internal/timeline"
)

// Build sets tv's time range from sc and inserts one Lane per track, at the
// track's index, with its clips in order. It validates sc first and inserts
// nothing when it is invalid.
func Build(sc *Scene, tv *timeline.TimelineView) error {
	if errs := Validate(sc); len(errs) > 0 {
		return errors.Join(errs...)
	}
	tv.SetTimeRange(sc.Meta.StartTime, sc.Meta.EndTime)
	for ti, tr := range sc.Tracks {
		lane := NewLane(tr.Name)
		if err := tv.InsertTrackView(lane, ti); err != nil {
			return fmt.Errorf("building track %d: %w", ti, err)
		}
		for _, it := range tr.Items {
			if err := lane.InsertTrackItemView(NewClip(it.Label, it.Start, it.End)); err != nil {
				return fmt.Errorf("building track %d: %w", ti, err)
			}
		}
	}
	return nil
}

// Snapshot describes the current contents of tv as a scene, so the editor can
// report what is on screen. Holes become unnamed empty tracks.
func Snapshot(name string, tv *timeline.TimelineView) *Scene {
	start, end := tv.TimeRange()
	sc := &Scene{Meta: Meta{Name: name, StartTime: start, EndTime: end}}
	for _, track := range tv.TrackViews() {
		var tr Track
		if track != nil {
			tr.Name = track.Base().Node().Label
			for _, item := range track.Base().TrackItemViews() {
				tr.Items = append(tr.Items, Item{
					Label: item.Base().Node().Label,
					Start: item.StartTime(),
					End:   item.EndTime(),
				})
			}
		}
		sc.Tracks = append(sc.Tracks, tr)
	}
	return sc
}
