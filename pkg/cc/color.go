package cc

// Color labels an object's cycle-collection state.
type Color uint8

const (
	// Black means in use (live), or presumed free.
	Black Color = iota
	// Gray means a possible member of an unreachable cycle, mid-traversal.
	Gray
	// White means confirmed member of a garbage cycle, scheduled for collection.
	White
	// Purple means candidate root: a decrement left a nonzero strong count.
	Purple
	// Green means a known-acyclic type the collector may shortcut.
	// Reserved; not exercised by the synchronous algorithm.
	Green
	// Red means a candidate cycle undergoing Sigma-computation (concurrent variant).
	Red
	// Orange means a candidate cycle awaiting an epoch boundary (concurrent variant).
	Orange
)

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case Gray:
		return "Gray"
	case White:
		return "White"
	case Purple:
		return "Purple"
	case Green:
		return "Green"
	case Red:
		return "Red"
	case Orange:
		return "Orange"
	default:
		return "Color(?)"
	}
}
