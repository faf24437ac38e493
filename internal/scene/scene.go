// Package scene provides the concrete track and item variants the editor
// shows, and loads them from TOML scene files.
package scene

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Scene is the on-disk description of a timeline.
type Scene struct {
	Meta   Meta    `toml:"scene"`
	Tracks []Track `toml:"tracks"`

	// Path is the file the scene was loaded from, if any.
	Path string `toml:"-"`
}

// Meta holds the scene header.
type Meta struct {
	Name      string  `toml:"name"`
	StartTime float64 `toml:"start_time"`
	EndTime   float64 `toml:"end_time"`
}

// Track is one lane of the scene.
type Track struct {
	Name  string `toml:"name"`
	Items []Item `toml:"items"`
}

// Item is one clip on a lane.
type Item struct {
	Label string  `toml:"label"`
	Start float64 `toml:"start"`
	End   float64 `toml:"end"`
}

// Default returns the built-in demo scene.
func Default() *Scene {
	return &Scene{
		Meta: Meta{Name: "demo", StartTime: 0, EndTime: 200},
		Tracks: []Track{
			{Name: "video", Items: []Item{
				{Label: "intro", Start: 50, End: 80},
				{Label: "main", Start: 100, End: 150},
			}},
			{Name: "audio", Items: []Item{
				{Label: "music", Start: 20, End: 120},
			}},
			{Name: "titles"},
		},
	}
}

// Load reads a scene from the TOML file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sc.Path = path
	return sc, nil
}

// Parse decodes a scene from TOML.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	if err := toml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return &sc, nil
}

// Validate checks sc for structural problems. It returns every problem found,
// each a *ValidationError.
func Validate(sc *Scene) []error {
	var errs []error
	add := func(track, item int, err error) {
		errs = append(errs, &ValidationError{SourceFile: sc.Path, Track: track, Item: item, Err: err})
	}
	if !(sc.Meta.EndTime > sc.Meta.StartTime) {
		add(-1, -1, fmt.Errorf("%w: [%v, %v)", ErrEmptyRange, sc.Meta.StartTime, sc.Meta.EndTime))
	}
	if len(sc.Tracks) == 0 {
		add(-1, -1, ErrNoTracks)
	}
	for ti, tr := range sc.Tracks {
		for ii, it := range tr.Items {
			if !(it.End > it.Start) {
				add(ti, ii, fmt.Errorf("%w: %q [%v, %v)", ErrEmptyInterval, it.Label, it.Start, it.End))
			}
		}
	}
	return errs
}

// Items returns the number of items across all tracks.
func (sc *Scene) Items() int {
	n := 0
	for _, tr := range sc.Tracks {
		n += len(tr.Items)
	}
	return n
}

// Encode renders sc as TOML.
func Encode(sc *Scene) ([]byte, error) {
	data, err := toml.Marshal(sc)
	if err != nil {
		return nil, fmt.Errorf("marshaling scene: %w", err)
	}
	return data, nil
}
