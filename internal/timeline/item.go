package timeline

import (
	"math"

	"github.com/papapumpkin/chronon/internal/event"
	"github.com/papapumpkin/chronon/internal/lifecycle"
	"github.com/papapumpkin/chronon/internal/surface"
)

// ClassTrackItem is the node class every track item carries.
const ClassTrackItem = "track-item"

// TrackItemView is a single time interval placed on a track. Concrete variants
// embed *ItemBase and supply the interval.
type TrackItemView interface {
	Base() *ItemBase
	StartTime() float64
	EndTime() float64
	// SetValue commits a new interval. Callers follow up with Base().Update().
	SetValue(start, end float64)
}

// ItemBase carries the behavior shared by every track item: its node, the
// delegate assigned by the owning track, derived positions, and one emitter
// per gesture.
type ItemBase struct {
	owner    TrackItemView
	node     *surface.Node
	delegate *Delegate
	track    TrackView

	startPos, endPos float64

	emitters    map[surface.Gesture]*event.Emitter[ItemEvent]
	disposables *lifecycle.Store
}

// NewItemBase builds the base for owner, which is the concrete item embedding
// it. Typical use:
//
//	c := &Clip{start: s, end: e}
//	c.ItemBase = timeline.NewItemBase(c)
func NewItemBase(owner TrackItemView) *ItemBase {
	b := &ItemBase{
		owner:       owner,
		node:        surface.NewNode(ClassTrackItem),
		emitters:    make(map[surface.Gesture]*event.Emitter[ItemEvent]),
		disposables: lifecycle.NewStore(),
	}
	for _, g := range surface.Gestures {
		b.emitters[g] = &event.Emitter[ItemEvent]{}
	}
	b.listen(surface.Press, false, false)
	b.listen(surface.DoubleClick, false, false)
	b.listen(surface.DragStart, false, false)
	b.listen(surface.DragEnd, false, false)
	// The enclosing track has its own dragover/drop listener; stop here so a
	// pointer over an item is not handled twice.
	b.listen(surface.DragOver, true, true)
	b.listen(surface.Drop, false, true)
	return b
}

func (b *ItemBase) listen(g surface.Gesture, preventDefault, stopPropagation bool) {
	em := b.emitters[g]
	b.disposables.Add(b.node.Listen(g, func(p *surface.Pointer) {
		t := math.NaN()
		if b.delegate != nil {
			t = b.delegate.PositionToTime(p.OffsetX(b.node) + b.startPos)
		}
		if preventDefault {
			p.PreventDefault()
		}
		if stopPropagation {
			p.StopPropagation()
		}
		em.Fire(ItemEvent{Pointer: p, Time: t, Target: b.owner})
	}))
}

// Base returns b, satisfying TrackItemView for embedding types.
func (b *ItemBase) Base() *ItemBase { return b }

// Node returns the item's visual node.
func (b *ItemBase) Node() *surface.Node { return b.node }

// Delegate returns the delegate assigned by the owning track, or nil.
func (b *ItemBase) Delegate() *Delegate { return b.delegate }

// SetDelegate assigns the coordinate delegate. Call Update afterwards.
func (b *ItemBase) SetDelegate(d *Delegate) { b.delegate = d }

// Track returns the owning track, or nil when the item is detached.
func (b *ItemBase) Track() TrackView { return b.track }

// StartPos is the item's left offset as of the last Update.
func (b *ItemBase) StartPos() float64 { return b.startPos }

// EndPos is the item's right offset as of the last Update.
func (b *ItemBase) EndPos() float64 { return b.endPos }

// On subscribes to gesture g raised on this item.
func (b *ItemBase) On(g surface.Gesture, fn func(ItemEvent)) lifecycle.Disposable {
	em, ok := b.emitters[g]
	if !ok {
		return lifecycle.None
	}
	return em.Subscribe(fn)
}

// Update recomputes positions from the delegate and the current interval. It
// must be called after any interval or delegate change; nothing calls it
// implicitly. Without a delegate it does nothing.
func (b *ItemBase) Update() {
	if b.delegate == nil {
		return
	}
	b.startPos = b.delegate.TimeToPosition(b.owner.StartTime())
	b.endPos = b.delegate.TimeToPosition(b.owner.EndTime())
	b.node.Left = b.startPos
	b.node.Width = b.endPos - b.startPos
}

// Dispose releases listeners and detaches the node.
func (b *ItemBase) Dispose() {
	b.disposables.Dispose()
	for _, em := range b.emitters {
		em.Dispose()
	}
	b.node.Remove()
}
