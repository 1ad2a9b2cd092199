package cc

import "sync/atomic"

// Weak is a weak handle: it owns one unit of an object's weak count,
// additional to the implicit weak held collectively by all strong handles.
// Dereference is illegal on a Weak; Upgrade yields a Strong iff the object
// is still alive.
type Weak struct {
	node    Node
	dropped atomic.Bool
}

// Upgrade yields a Strong handle if the object is still alive (strong > 0),
// otherwise nil. On success this is Increment(S): the strong count is
// incremented and the color forced to Black, exactly as Clone does.
func (w *Weak) Upgrade() *Strong {
	if _, ok := w.node.Header().tryRescue(); !ok {
		return nil
	}
	return &Strong{node: w.node}
}

// Drop releases this handle's weak unit. If that was the last weak
// reference, the payload must already have been dropped (strong == 0 is
// asserted), and the backing storage is released.
func (w *Weak) Drop() {
	if !w.dropped.CompareAndSwap(false, true) {
		panic(fatalf("Weak handle dropped twice"))
	}
	h := w.node.Header()
	if h.decWeak() == 0 {
		if h.Strong() != 0 {
			panic(fatalf("weak count reached zero while strong handles remain"))
		}
		freeStorage(w.node, false)
	}
}
