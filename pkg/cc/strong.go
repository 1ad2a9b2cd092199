package cc

import "sync/atomic"

// Strong is a strong handle: it owns one unit of an object's strong count.
// A Strong is created by New or Clone and must eventually be released with
// Drop; Go has no affine types, so Drop guards against being called twice
// on the same handle rather than silently double-decrementing.
type Strong struct {
	node    Node
	dropped atomic.Bool
}

// New allocates a fresh object: header counts (1, 1), color Black,
// unbuffered, registered with collector. payload must not have been used
// with any other collector.
func New(payload Node, collector *Collector) *Strong {
	payload.Header().init(collector)
	if collector != nil {
		collector.tracker.recordAlloc()
	}
	return &Strong{node: payload}
}

// Target returns the underlying Node without any liveness check. It exists
// for Trace implementations, which must be able to walk the graph even
// while an object's strong count is transiently zero or mid-trial-deletion
// (the collector never calls Deref); ordinary callers should use Deref.
func (s *Strong) Target() Node {
	return s.node
}

// Deref returns the payload Node, or panics if the strong count has already
// reached zero (the payload has been dropped and the collector never
// deref's a dying object).
func (s *Strong) Deref() Node {
	if s.node.Header().Strong() == 0 {
		panic(fatalf("deref of a Strong handle whose payload has been dropped"))
	}
	return s.node
}

// Clone performs Increment(S): inc_strong, then unconditionally forces the
// color back to Black. The color reset is mandatory — a handle cloned into
// an object mid-collection must be rescued from any provisional Gray/White
// marking.
func (s *Strong) Clone() *Strong {
	s.node.Header().rescue()
	return &Strong{node: s.node}
}

// Downgrade creates a Weak handle sharing the same object.
func (s *Strong) Downgrade() *Weak {
	s.node.Header().incWeak()
	return &Weak{node: s.node}
}

// Drop performs Decrement(S): decrements strong, and on reaching zero
// releases the payload (walking strong children), otherwise marks the
// object a possible root. It then offers the collector a chance to run a
// collect_cycles pass, subject to the collector's WithWatermark setting
// (the default runs one pass per drop: simplest and correct, at the cost
// of throughput).
func (s *Strong) Drop() {
	if !s.dropped.CompareAndSwap(false, true) {
		panic(fatalf("Strong handle dropped twice"))
	}
	h := s.node.Header()

	// Defensive: should not occur in a well-formed program, but matches
	// the paper's Decrement(S) step 1.
	if h.Strong() == 0 {
		return
	}

	if h.decStrong() == 0 {
		release(s.node)
	} else {
		possibleRoot(s.node)
	}

	if c := h.Collector(); c != nil && !c.isClosed() {
		c.maybeCollectCycles()
	}
}
