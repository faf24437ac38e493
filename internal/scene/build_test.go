package scene

import (
	"errors"
	"testing"

	"github.com/papapumpkin/chronon/internal/surface"
	"github.com/papapumpkin/chronon/internal/timeline"
)

func TestBuild(t *testing.T) {
	t.Parallel()
	sc, err := Parse([]byte(sampleTOML))
	if err != nil {
		t.Fatal(err)
	}
	tv := timeline.New(surface.NewNode("host"))
	tv.Layout(200, 4)
	if err := Build(sc, tv); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if start, end := tv.TimeRange(); start != 0 || end != 100 {
		t.Errorf("range = [%v, %v), want [0, 100)", start, end)
	}
	if tv.Len() != 2 {
		t.Fatalf("tracks = %d, want 2", tv.Len())
	}
	video, ok := tv.TrackView(0).(*Lane)
	if !ok {
		t.Fatalf("track 0 is %T, want *Lane", tv.TrackView(0))
	}
	if video.Name() != "video" || video.Len() != 2 {
		t.Errorf("video lane = %q with %d items", video.Name(), video.Len())
	}
	b, ok := video.TrackItemViews()[1].(*Clip)
	if !ok {
		t.Fatalf("item is %T, want *Clip", video.TrackItemViews()[1])
	}
	if b.Label() != "b" || b.StartPos() != 60 || b.EndPos() != 100 {
		t.Errorf("clip %s at %v..%v, want b at 60..100", b, b.StartPos(), b.EndPos())
	}
}

func TestBuild_RejectsInvalid(t *testing.T) {
	t.Parallel()
	tv := timeline.New(nil)
	sc := &Scene{Meta: Meta{StartTime: 5, EndTime: 1}, Tracks: []Track{{Name: "t"}}}
	err := Build(sc, tv)
	if !errors.Is(err, ErrEmptyRange) {
		t.Errorf("err = %v, want ErrEmptyRange", err)
	}
	if tv.Len() != 0 {
		t.Errorf("invalid scene inserted %d tracks", tv.Len())
	}
}

func TestBuild_OccupiedSlot(t *testing.T) {
	t.Parallel()
	tv := timeline.New(nil)
	if err := tv.InsertTrackView(NewLane("existing"), 0); err != nil {
		t.Fatal(err)
	}
	err := Build(Default(), tv)
	if !errors.Is(err, timeline.ErrTrackSlotOccupied) {
		t.Errorf("err = %v, want ErrTrackSlotOccupied", err)
	}
}

func TestSnapshot(t *testing.T) {
	t.Parallel()
	tv := timeline.New(nil)
	if err := Build(Default(), tv); err != nil {
		t.Fatal(err)
	}
	if err := tv.RemoveTrackView(1); err != nil {
		t.Fatal(err)
	}
	sc := Snapshot("now", tv)
	if sc.Meta.Name != "now" || sc.Meta.EndTime != 200 {
		t.Errorf("meta = %+v", sc.Meta)
	}
	if len(sc.Tracks) != 3 {
		t.Fatalf("tracks = %d, want 3", len(sc.Tracks))
	}
	if sc.Tracks[1].Name != "" || len(sc.Tracks[1].Items) != 0 {
		t.Errorf("hole rendered as %+v", sc.Tracks[1])
	}
	if got := sc.Tracks[0].Items[0]; got != (Item{Label: "intro", Start: 50, End: 80}) {
		t.Errorf("first item = %+v", got)
	}
}

func TestClip_SetValue(t *testing.T) {
	t.Parallel()
	c := NewClip("x", 1, 2)
	c.SetValue(3, 4)
	if c.StartTime() != 3 || c.EndTime() != 4 {
		t.Errorf("SetValue: [%v, %v)", c.StartTime(), c.EndTime())
	}
	if c.String() != "x [3, 4)" {
		t.Errorf("String() = %q", c.String())
	}
}
