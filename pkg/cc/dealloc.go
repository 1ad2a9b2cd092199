package cc

// This file implements the algorithm's non-handle-facing operations: the
// trial-deletion helpers invoked by Collector.CollectCycles (mark_gray,
// scan, scan_black, collect_white), the two places an object's strong count
// actually reaches zero (release, decrement), possible_root, and the
// deallocator.

// release implements "release" (strong reached zero): walk strong children
// decrementing each transitively, set color Black, and — if not buffered —
// hand off to the deallocator. The payload is considered dropped here.
func release(n Node) {
	n.Trace(func(child Node) {
		decrement(child)
	})
	h := n.Header()
	h.setColor(Black)
	if !h.Buffered() {
		deallocate(n, false)
	}
}

// decrement is the plain Decrement(S) procedure used while walking a
// released object's children: it is identical to what Strong.Drop does,
// minus the handle bookkeeping (there is no separate Strong for a traced
// child) and minus the per-drop CollectCycles trigger (release itself runs
// inside a collection-adjacent call; re-entering would violate the no
// re-entrant collect_cycles rule).
func decrement(n Node) {
	h := n.Header()
	if h.decStrong() == 0 {
		release(n)
	} else {
		possibleRoot(n)
	}
}

// possibleRoot implements "possible_root": strong remained nonzero after a
// decrement, so the object becomes a candidate cycle root. If the header's
// collector has been torn down, nothing will ever run a pass over it, so it
// is freed immediately instead of buffered.
func possibleRoot(n Node) {
	h := n.Header()
	if h.Color() == Purple {
		return
	}
	h.setColor(Purple)
	if h.Buffered() {
		return
	}
	h.setBuffered(true)
	c := h.Collector()
	if c == nil || c.isClosed() {
		h.setBuffered(false)
		release(n)
		return
	}
	c.addRoot(n)
}

// markGray implements "mark_gray": the trial-deletion step. Trace children,
// transiently decrementing each one's strong count to subtract the internal
// edge; any count surviving that subtraction proves an external root.
func markGray(n Node) {
	h := n.Header()
	if h.Color() == Gray {
		return
	}
	h.setColor(Gray)
	n.Trace(func(child Node) {
		child.Header().decStrong()
		markGray(child)
	})
}

// scan implements "scan": restore externally-reachable subgraphs to Black
// via scan_black, or mark unreachable ones White pending collect_white.
func scan(n Node) {
	h := n.Header()
	if h.Color() != Gray {
		return
	}
	if h.Strong() > 0 {
		scanBlack(n)
		return
	}
	h.setColor(White)
	n.Trace(func(child Node) {
		scan(child)
	})
}

// scanBlack implements "scan_black": undo the trial deletion, restoring
// strong counts subtracted by markGray, recursing into any descendant not
// already Black.
func scanBlack(n Node) {
	h := n.Header()
	h.setColor(Black)
	n.Trace(func(child Node) {
		ch := child.Header()
		ch.incStrong()
		if ch.Color() != Black {
			scanBlack(child)
		}
	})
}

// collectWhite implements "collect_white": free confirmed-garbage,
// unbuffered White objects, recursing into their children before freeing
// the parent. White-and-buffered objects are left alone here — they will
// be processed when their own roots-buffer entry is drained.
func collectWhite(n Node) {
	h := n.Header()
	if h.Color() != White || h.Buffered() {
		return
	}
	h.setColor(Black)
	n.Trace(func(child Node) {
		collectWhite(child)
	})
	deallocate(n, true)
}

// deallocate implements the Deallocator: remove the implicit weak unit now
// that the payload has been dropped, and release the backing storage once
// no weak handle (explicit or implicit) remains.
//
// Precondition: the payload has already been dropped (strong == 0) and the
// header is not buffered.
func deallocate(n Node, viaCycle bool) {
	h := n.Header()
	if h.decWeak() == 0 {
		freeStorage(n, viaCycle)
	}
}

// freeStorage is the point at which an object's backing storage is
// considered actually released: any Finalizer is invoked and the owning
// collector's ledger is updated. Go's own garbage collector reclaims the
// memory once nothing (not even the roots buffer, which holds no owning
// reference) points at the object any longer.
func freeStorage(n Node, viaCycle bool) {
	if f, ok := n.(Finalizer); ok {
		f.Finalize()
	}
	if c := n.Header().Collector(); c != nil {
		c.tracker.recordFree()
		if viaCycle {
			c.tracker.recordCycleFrees(1)
		}
	}
}
