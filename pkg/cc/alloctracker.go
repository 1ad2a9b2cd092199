package cc

import "sync"

// allocTracker is the collector's bookkeeping ledger: a plain set of
// mutex-guarded counters, just enough to assert from a test that every
// allocation is eventually matched by exactly one deallocation and that
// cycle collection accounts for its share of frees, without reimplementing
// that bookkeeping by hand in each test.
type allocTracker struct {
	mu          sync.Mutex
	allocations uint64
	frees       uint64
	cyclesRun   uint64
	cycleFrees  uint64
}

func (t *allocTracker) recordAlloc() {
	t.mu.Lock()
	t.allocations++
	t.mu.Unlock()
}

func (t *allocTracker) recordFree() {
	t.mu.Lock()
	t.frees++
	t.mu.Unlock()
}

func (t *allocTracker) recordCycleRun() {
	t.mu.Lock()
	t.cyclesRun++
	t.mu.Unlock()
}

func (t *allocTracker) recordCycleFrees(n uint64) {
	t.mu.Lock()
	t.cycleFrees += n
	t.mu.Unlock()
}

// Stats is a point-in-time snapshot of a Collector's bookkeeping counters.
type Stats struct {
	// Allocations is the number of objects ever registered with the collector.
	Allocations uint64
	// Frees is the number of objects whose backing storage has been released,
	// by any path (plain refcounting or cycle collection).
	Frees uint64
	// CyclesRun is the number of times CollectCycles has executed.
	CyclesRun uint64
	// CycleFrees is the subset of Frees released specifically via
	// collect_white (i.e. genuine cycle collection, not plain refcounting).
	CycleFrees uint64
}

func (t *allocTracker) snapshot() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Stats{
		Allocations: t.allocations,
		Frees:       t.frees,
		CyclesRun:   t.cyclesRun,
		CycleFrees:  t.cycleFrees,
	}
}
