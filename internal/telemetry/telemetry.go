// Package telemetry records an edit journal as a JSONL event stream. Every
// track and item insertion, selection change and drop is written as one
// structured JSON event, so an editing session can be audited or replayed.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event kinds identify the type of telemetry event.
const (
	KindSessionStart = "session_start"
	KindSessionEnd   = "session_end"
	KindTrackInsert  = "track_insert"
	KindTrackRemove  = "track_remove"
	KindItemInsert   = "item_insert"
	KindItemRemove   = "item_remove"
	KindSelect       = "select"
	KindBlur         = "blur"
	KindDrop         = "drop"
)

// Event represents a single telemetry record. Each event carries a timestamp,
// a kind tag and the session it belongs to, along with arbitrary structured
// data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	Session   string    `json:"session,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes telemetry events to a JSONL file. It is safe for concurrent
// use by multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file    *os.File
	enc     *json.Encoder
	session string
	now     func() time.Time
	mu      sync.Mutex
}

// NewEmitter creates a new Emitter that writes JSONL events to the file at
// path. The file is created if it does not exist, or appended to if it does.
// Each emitter stamps its events with a fresh session ID.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file:    f,
		enc:     json.NewEncoder(f),
		session: uuid.NewString(),
		now:     time.Now,
	}, nil
}

// Session returns the session ID stamped on every event, or "" for a nil
// Emitter.
func (e *Emitter) Session() string {
	if e == nil {
		return ""
	}
	return e.session
}

// Emit writes a single event to the JSONL file. A zero timestamp is filled in
// and the session is always the emitter's. Calling Emit on a nil Emitter is a
// no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if evt.Timestamp.IsZero() {
		evt.Timestamp = e.now().UTC()
	}
	evt.Session = e.session
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}
