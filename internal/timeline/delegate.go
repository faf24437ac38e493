package timeline

import (
	"github.com/papapumpkin/chronon/internal/event"
	"github.com/papapumpkin/chronon/internal/lifecycle"
)

// Delegate maps between time and horizontal position for one timeline. The
// timeline is its only writer; tracks and items share it by reference.
//
// Until a valid range and width are supplied the scale is zero, and
// PositionToTime yields NaN or ±Inf rather than failing.
type Delegate struct {
	start, end float64
	scale      float64 // positions per unit time

	onUpdate event.Emitter[struct{}]
}

// NewDelegate returns a delegate with an empty range and zero scale.
func NewDelegate() *Delegate {
	return &Delegate{}
}

// SetTimeRange stores the visible [start, end) interval and notifies observers.
func (d *Delegate) SetTimeRange(start, end float64) {
	d.start, d.end = start, end
	d.onUpdate.Fire(struct{}{})
}

// SetScale stores positions-per-unit-time and notifies observers.
func (d *Delegate) SetScale(scale float64) {
	d.scale = scale
	d.onUpdate.Fire(struct{}{})
}

// Range returns the visible time interval.
func (d *Delegate) Range() (start, end float64) {
	return d.start, d.end
}

// Scale returns positions per unit time.
func (d *Delegate) Scale() float64 {
	return d.scale
}

// TimeToPosition converts a time to an offset from the range start.
func (d *Delegate) TimeToPosition(t float64) float64 {
	return d.scale * (t - d.start)
}

// PositionToTime converts an offset from the range start back to a time.
func (d *Delegate) PositionToTime(p float64) float64 {
	return p/d.scale + d.start
}

// OnUpdate subscribes to mapping changes. Observers may see several
// notifications for one logical change and must re-layout idempotently.
func (d *Delegate) OnUpdate(fn func(struct{})) lifecycle.Disposable {
	return d.onUpdate.Subscribe(fn)
}
