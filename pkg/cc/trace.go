package cc

// Node is implemented by every payload type that participates in a
// Collector's graph. Header gives the collector access to the object's
// bookkeeping block; Trace enumerates its strong outgoing edges.
type Node interface {
	Header() *Header
	Trace(visit func(Node))
}

// Traceable is the payload-facing half of Node: the operation a payload
// type must implement. It is declared separately from Node so payload
// authors can read a single-method contract; Base supplies Header().
//
// A Trace implementation must be a finite, non-reentrant walk invoking
// visit exactly once per strong outgoing edge. Weak edges must never be
// traced. Under-reporting an edge is unsound: it leaks the cycle silently.
// Trace must be pure and idempotent; the collector may call it more than
// once per object per collection, and it must not clone or drop any
// managed handle (that would recursively mutate the roots buffer) nor call
// CollectCycles.
type Traceable interface {
	Trace(visit func(Node))
}

// Finalizer is optionally implemented by a payload to observe the moment
// its backing storage is actually released (both strong and weak counts
// have reached zero). It is not part of the Bacon/Rajan algorithm itself;
// it exists so callers (and tests) can observe deallocation without
// needing a real allocator underneath Go's own garbage collector.
type Finalizer interface {
	Finalize()
}

// Base is embedded by payload types to obtain header storage. A payload
// still implements Trace itself; Base only supplies the Header() accessor
// Node requires.
type Base struct {
	hdr Header
}

// Header returns the object's bookkeeping header.
func (b *Base) Header() *Header {
	return &b.hdr
}
