package cc

import "sync"

// Header is the per-object bookkeeping block every managed object carries:
// strong/weak counts, the buffered flag, the cycle color, and a link back to
// the owning Collector. Exactly one exists per managed object, embedded via
// Base in the payload's own struct.
//
// Fields are guarded by a single mutex rather than left bare. The
// synchronous Collector never contends on it (mutator and collector share
// one goroutine), but the lock serializes every read and write of the
// header, as the concurrent variant needs, so a concurrent collector can
// reuse this type unchanged.
type Header struct {
	mu        sync.Mutex
	strong    uint64
	weak      uint64
	buffered  bool
	color     Color
	collector *Collector
}

// init sets the initial state of a freshly allocated header: counts (1, 1),
// color Black, unbuffered, linked to collector.
func (h *Header) init(collector *Collector) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.strong = 1
	h.weak = 1
	h.buffered = false
	h.color = Black
	h.collector = collector
}

// Strong returns the current strong count.
func (h *Header) Strong() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.strong
}

// Weak returns the current weak count, including the implicit weak held
// collectively by all strong handles.
func (h *Header) Weak() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.weak
}

// Buffered reports whether this header currently appears in the collector's
// roots buffer.
func (h *Header) Buffered() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buffered
}

// Color returns the current cycle color.
func (h *Header) Color() Color {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.color
}

// Collector returns the owning collector, or nil if this header was never
// registered with one.
func (h *Header) Collector() *Collector {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.collector
}

func (h *Header) incStrong() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.strong == ^uint64(0) {
		panic(fatalf("strong count overflow"))
	}
	h.strong++
	return h.strong
}

func (h *Header) decStrong() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.strong == 0 {
		panic(fatalf("strong count underflow"))
	}
	h.strong--
	return h.strong
}

func (h *Header) incWeak() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.weak == ^uint64(0) {
		panic(fatalf("weak count overflow"))
	}
	h.weak++
	return h.weak
}

// decWeak decrements the weak count.
func (h *Header) decWeak() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.weak == 0 {
		panic(fatalf("weak count underflow"))
	}
	h.weak--
	return h.weak
}

func (h *Header) setColor(c Color) {
	h.mu.Lock()
	h.color = c
	h.mu.Unlock()
}

func (h *Header) setBuffered(b bool) {
	h.mu.Lock()
	h.buffered = b
	h.mu.Unlock()
}

// rescue implements Increment(S) from the paper: increment strong and force
// the color back to Black unconditionally. Used by Strong.Clone.
func (h *Header) rescue() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.strong == ^uint64(0) {
		panic(fatalf("strong count overflow"))
	}
	h.strong++
	h.color = Black
	return h.strong
}

// tryRescue is rescue guarded by strong > 0, used by Weak.Upgrade: it must
// check and increment atomically so a concurrent collector pass could never
// observe strong == 0 disappear out from under the check.
func (h *Header) tryRescue() (uint64, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.strong == 0 {
		return 0, false
	}
	h.strong++
	h.color = Black
	return h.strong, true
}
