package cc

import (
	"log/slog"
	"sync"
)

// Collector owns the roots buffer for one graph of managed objects and
// implements the three trial-deletion passes. A Collector is safe to use
// from one goroutine at a time — CollectCycles is not reentrant and is not
// meant to run concurrently with itself.
type Collector struct {
	mu        sync.Mutex
	roots     []Node
	closed    bool
	logger    *slog.Logger
	tracker   allocTracker
	watermark uint64
	sinceRun  uint64
}

// Option configures a Collector at construction time.
type Option func(*Collector)

// WithLogger attaches a logger that records the start and end of each
// CollectCycles pass, with the roots-buffer size, at Debug level. Nil (the
// default) disables it.
func WithLogger(l *slog.Logger) Option {
	return func(c *Collector) { c.logger = l }
}

// WithWatermark batches Strong.Drop's automatic CollectCycles trigger: a
// pass only runs once at least n drops have occurred since the last one,
// instead of after every single drop. The default (0 or 1) runs a pass on
// every drop, matching the per-drop trigger's simplest-and-correct
// behavior at the cost of throughput. CollectCycles called directly always
// runs immediately regardless of watermark.
func WithWatermark(n uint64) Option {
	return func(c *Collector) { c.watermark = n }
}

// NewCollector returns a fresh collector with an empty roots buffer.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close marks the collector torn down: any object that subsequently calls
// possible_root against it is freed immediately instead of buffered, since
// nothing will ever run a collection pass over it again. Close does not
// itself free anything already buffered.
func (c *Collector) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *Collector) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Collector) addRoot(n Node) {
	c.mu.Lock()
	c.roots = append(c.roots, n)
	c.mu.Unlock()
}

// Roots returns the number of headers currently buffered as candidate
// cycle roots. Intended for tests and diagnostics.
func (c *Collector) Roots() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.roots)
}

// Stats returns a snapshot of the collector's allocation/free/cycle
// counters.
func (c *Collector) Stats() Stats {
	return c.tracker.snapshot()
}

func (c *Collector) log(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

// maybeCollectCycles is Strong.Drop's automatic trigger: it honors
// WithWatermark by only running a pass once sinceRun reaches watermark,
// resetting the counter each time it does.
func (c *Collector) maybeCollectCycles() {
	c.mu.Lock()
	c.sinceRun++
	due := c.sinceRun >= c.watermark
	if due {
		c.sinceRun = 0
	}
	c.mu.Unlock()

	if due {
		c.CollectCycles()
	}
}

// CollectCycles is the published entry point: it runs mark_roots,
// scan_roots, collect_roots in order. It is idempotent when the roots
// buffer is empty, and must not be re-entered from within a Trace
// callback.
func (c *Collector) CollectCycles() {
	c.tracker.recordCycleRun()
	c.log("collect_cycles: start", "roots", c.Roots())
	c.markRoots()
	c.scanRoots()
	c.collectRoots()
	c.log("collect_cycles: done", "roots", c.Roots())
}

// markRoots drains the roots buffer. Purple roots are marked gray and
// retained (insertion order preserved); everything else is unbuffered and,
// if it turns out to already be a freeable zero-strong Black header, freed
// directly.
func (c *Collector) markRoots() {
	c.mu.Lock()
	drained := c.roots
	c.roots = nil
	c.mu.Unlock()

	retained := make([]Node, 0, len(drained))
	for _, s := range drained {
		h := s.Header()
		if h.Color() == Purple {
			markGray(s)
			retained = append(retained, s)
			continue
		}
		h.setBuffered(false)
		if h.Color() == Black && h.Strong() == 0 {
			deallocate(s, false)
		}
	}

	c.mu.Lock()
	c.roots = append(c.roots, retained...)
	c.mu.Unlock()
}

// scanRoots invokes scan on every retained root without mutating the
// buffer.
func (c *Collector) scanRoots() {
	c.mu.Lock()
	roots := append([]Node(nil), c.roots...)
	c.mu.Unlock()

	for _, s := range roots {
		scan(s)
	}
}

// collectRoots drains the buffer, unbuffering and collect_white-ing each
// entry.
func (c *Collector) collectRoots() {
	c.mu.Lock()
	drained := c.roots
	c.roots = nil
	c.mu.Unlock()

	for _, s := range drained {
		s.Header().setBuffered(false)
		collectWhite(s)
	}
}
