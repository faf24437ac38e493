package telemetry

import (
	"errors"
	"math"

	"github.com/papapumpkin/chronon/internal/drag"
	"github.com/papapumpkin/chronon/internal/lifecycle"
	"github.com/papapumpkin/chronon/internal/selection"
	"github.com/papapumpkin/chronon/internal/timeline"
)

// TrackData is the payload of track events.
type TrackData struct {
	Index int    `json:"index"`
	Label string `json:"label,omitempty"`
}

// ItemData is the payload of item and selection events.
type ItemData struct {
	Track int     `json:"track"`
	Label string  `json:"label,omitempty"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// DropData is the payload of drop events.
type DropData struct {
	TrackOffset int     `json:"track_offset"`
	TimeOffset  float64 `json:"time_offset"`
	Moved       int     `json:"moved"`
	Error       string  `json:"error,omitempty"`
}

// Recorder is the journal contribution. It mirrors timeline notifications,
// and selection and drag activity when those controllers are registered, into
// an Emitter.
type Recorder struct {
	timeline    *timeline.TimelineView
	em          *Emitter
	disposables *lifecycle.Store
	err         error
	disposed    bool
}

// NewRecorder subscribes to tv and writes a session start event. Register it
// after selection and drag so their activity is captured.
func NewRecorder(tv *timeline.TimelineView, em *Emitter) *Recorder {
	r := &Recorder{
		timeline:    tv,
		em:          em,
		disposables: lifecycle.NewStore(),
	}
	start, end := tv.TimeRange()
	r.emit(KindSessionStart, map[string]float64{"start": start, "end": end})

	r.disposables.Add(tv.OnDidInsertTrackView(func(s timeline.TrackSlot) {
		r.emit(KindTrackInsert, TrackData{Index: s.Index, Label: s.Track.Base().Node().Label})
	}))
	r.disposables.Add(tv.OnDidRemoveTrackView(func(s timeline.TrackSlot) {
		r.emit(KindTrackRemove, TrackData{Index: s.Index, Label: s.Track.Base().Node().Label})
	}))
	r.disposables.Add(tv.OnDidInsertTrackItemView(func(ch timeline.TrackItemChange) {
		r.emit(KindItemInsert, r.itemData(ch.Track, ch.Item))
	}))
	r.disposables.Add(tv.OnDidRemoveTrackItemView(func(ch timeline.TrackItemChange) {
		r.emit(KindItemRemove, r.itemData(ch.Track, ch.Item))
	}))

	if sel, err := selection.Get(tv); err == nil {
		r.disposables.Add(sel.OnDidSelect(func(item timeline.TrackItemView) {
			r.emit(KindSelect, r.itemData(item.Base().Track(), item))
		}))
		r.disposables.Add(sel.OnDidBlur(func(item timeline.TrackItemView) {
			r.emit(KindBlur, r.itemData(item.Base().Track(), item))
		}))
	}
	if dc, err := drag.Get(tv); err == nil {
		r.disposables.Add(dc.OnDidDrop(func(res drag.DropResult) {
			d := DropData{TrackOffset: res.TrackOffset, TimeOffset: res.TimeOffset, Moved: len(res.Moved)}
			if res.Err != nil {
				d.Error = res.Err.Error()
			}
			r.emit(KindDrop, d)
		}))
	}
	return r
}

// ID implements timeline.Contribution.
func (r *Recorder) ID() timeline.ContributionID { return timeline.JournalID }

// Err returns every emit failure seen so far.
func (r *Recorder) Err() error { return r.err }

func (r *Recorder) itemData(track timeline.TrackView, item timeline.TrackItemView) ItemData {
	d := ItemData{
		Track: r.timeline.IndexOf(track),
		Label: item.Base().Node().Label,
		Start: item.StartTime(),
		End:   item.EndTime(),
	}
	// JSON has no NaN.
	if math.IsNaN(d.Start) || math.IsNaN(d.End) {
		d.Start, d.End = 0, 0
	}
	return d
}

func (r *Recorder) emit(kind string, data any) {
	if err := r.em.Emit(Event{Kind: kind, Data: data}); err != nil {
		r.err = errors.Join(r.err, err)
	}
}

// Dispose writes a session end event and unsubscribes. The Emitter stays open;
// its owner closes it.
func (r *Recorder) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.disposables.Dispose()
	r.emit(KindSessionEnd, nil)
}
