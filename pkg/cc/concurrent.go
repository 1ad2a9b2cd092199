package cc

import "sync"

// ConcurrentCollector sketches the scan-black-style concurrent variant: the
// synchronous Collector is the authoritative implementation and the
// one this package actually exercises. ConcurrentCollector shares the same
// Header contract, but release and possible_root are deliberately left
// unimplemented — a full concurrent cycle-collection pass needs a lock-free
// or finely-locked roots buffer this sketch does not attempt.
type ConcurrentCollector struct {
	mu          sync.Mutex
	cycleBuffer []Node
}

// NewConcurrentCollector returns an empty concurrent collector.
func NewConcurrentCollector() *ConcurrentCollector {
	return &ConcurrentCollector{}
}

// Increment embodies "every increment rescues": unlike the synchronous
// Clone, it eagerly recolors the whole reachable subgraph Black via
// scan_black rather than relying on a later collection pass to do it.
func (cc *ConcurrentCollector) Increment(n Node) {
	n.Header().incStrong()
	concurrentScanBlack(n)
}

// Decrement schedules a release once strong reaches zero.
func (cc *ConcurrentCollector) Decrement(n Node) {
	if n.Header().decStrong() == 0 {
		cc.release(n)
	}
}

func (cc *ConcurrentCollector) release(n Node) {
	panic(fatalf("concurrent release is not implemented; use the synchronous Collector"))
}

func (cc *ConcurrentCollector) possibleRoot(n Node) {
	panic(fatalf("concurrent possible_root is not implemented; use the synchronous Collector"))
}

func concurrentScanBlack(n Node) {
	n.Header().setColor(Black)
	n.Trace(func(child Node) {
		if child.Header().Color() != Black {
			concurrentScanBlack(child)
		}
	})
}
