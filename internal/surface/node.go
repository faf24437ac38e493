// Package surface is a headless visual tree: positioned nodes with classes,
// z-ordered children, hit testing, and bubbling gesture dispatch. Hosts render
// it however they like; the timeline core only ever talks to nodes.
package surface

import (
	"errors"
	"sort"

	"github.com/papapumpkin/chronon/internal/lifecycle"
)

// ErrNotChild is returned when removing a node that is not a child.
var ErrNotChild = errors.New("surface: node is not a child")

// Node is one visual element. Bounds are relative to the parent. Children are
// kept in z-order: later children paint over, and are hit before, earlier ones.
type Node struct {
	Left, Top     float64
	Width, Height float64

	// Inert nodes are painted but never hit.
	Inert bool
	// Label is optional text the host may paint inside the node.
	Label string

	classes   map[string]bool
	parent    *Node
	children  []*Node
	listeners map[Gesture][]*nodeListener
}

type nodeListener struct {
	fn func(*Pointer)
}

// NewNode returns a detached node carrying the given classes.
func NewNode(classes ...string) *Node {
	n := &Node{classes: make(map[string]bool)}
	for _, c := range classes {
		n.classes[c] = true
	}
	return n
}

// AddClass marks n with class c.
func (n *Node) AddClass(c string) { n.classes[c] = true }

// RemoveClass clears class c from n.
func (n *Node) RemoveClass(c string) { delete(n.classes, c) }

// HasClass reports whether n carries class c.
func (n *Node) HasClass(c string) bool { return n.classes[c] }

// Classes returns n's classes sorted by name.
func (n *Node) Classes() []string {
	out := make([]string, 0, len(n.classes))
	for c := range n.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SetBounds sets all four bounds at once.
func (n *Node) SetBounds(left, top, width, height float64) {
	n.Left, n.Top, n.Width, n.Height = left, top, width, height
}

// Parent returns n's parent or nil when detached.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of n's children in z-order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Append attaches child as n's top-most child, detaching it from any previous
// parent first.
func (n *Node) Append(child *Node) {
	if child.parent != nil {
		_ = child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from n.
func (n *Node) RemoveChild(child *Node) error {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			child.parent = nil
			return nil
		}
	}
	return ErrNotChild
}

// Remove detaches n from its parent. It is a no-op on a detached node.
func (n *Node) Remove() {
	if n.parent != nil {
		_ = n.parent.RemoveChild(n)
	}
}

// AbsPosition returns n's top-left corner in surface coordinates.
func (n *Node) AbsPosition() (x, y float64) {
	for cur := n; cur != nil; cur = cur.parent {
		x += cur.Left
		y += cur.Top
	}
	return x, y
}

// Contains reports whether the absolute point lies inside n's bounds.
// Right and bottom edges are exclusive.
func (n *Node) Contains(x, y float64) bool {
	ax, ay := n.AbsPosition()
	return x >= ax && x < ax+n.Width && y >= ay && y < ay+n.Height
}

// Listen registers fn for gesture g on n.
func (n *Node) Listen(g Gesture, fn func(*Pointer)) lifecycle.Disposable {
	if n.listeners == nil {
		n.listeners = make(map[Gesture][]*nodeListener)
	}
	l := &nodeListener{fn: fn}
	n.listeners[g] = append(n.listeners[g], l)
	return lifecycle.Func(func() {
		ls := n.listeners[g]
		kept := make([]*nodeListener, 0, len(ls))
		for _, x := range ls {
			if x != l {
				kept = append(kept, x)
			}
		}
		n.listeners[g] = kept
	})
}

// ListenerCount reports how many listeners n holds for g.
func (n *Node) ListenerCount(g Gesture) int {
	return len(n.listeners[g])
}

// HitTest returns the deepest non-inert node under the absolute point, testing
// later children first. It returns nil when the point is outside n.
func (n *Node) HitTest(x, y float64) *Node {
	if n.Inert || !n.Contains(x, y) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].HitTest(x, y); hit != nil {
			return hit
		}
	}
	return n
}

// Dispatch delivers gesture g to target's listeners and then to each ancestor
// in turn, stopping once a listener calls p.StopPropagation.
func Dispatch(g Gesture, target *Node, p *Pointer) {
	for cur := target; cur != nil; cur = cur.parent {
		for _, l := range append([]*nodeListener(nil), cur.listeners[g]...) {
			l.fn(p)
		}
		if p.stopped {
			return
		}
	}
}

// Walk visits n and its descendants depth-first in paint order. Returning
// false from fn skips that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}
