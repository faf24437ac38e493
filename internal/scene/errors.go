package scene

import (
	"errors"
	"fmt"
)

// Sentinel errors for scene validation.
var (
	// ErrEmptyRange indicates the scene's end time is not after its start time.
	ErrEmptyRange = errors.New("scene time range is empty")
	// ErrEmptyInterval indicates an item's end is not after its start.
	ErrEmptyInterval = errors.New("item interval is empty")
	// ErrNoTracks indicates a scene declares no tracks.
	ErrNoTracks = errors.New("scene has no tracks")
)

// ValidationError records a validation problem with its location in the scene.
// Track and Item are -1 when not applicable.
type ValidationError struct {
	SourceFile string
	Track      int
	Item       int
	Err        error
}

// Error returns a human-readable string including the location.
func (e *ValidationError) Error() string {
	loc := e.SourceFile
	if loc == "" {
		loc = "scene"
	}
	switch {
	case e.Item >= 0:
		return fmt.Sprintf("%s: track %d item %d: %v", loc, e.Track, e.Item, e.Err)
	case e.Track >= 0:
		return fmt.Sprintf("%s: track %d: %v", loc, e.Track, e.Err)
	default:
		return loc + ": " + e.Err.Error()
	}
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
