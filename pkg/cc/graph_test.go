package cc

// graphNode is the fixture payload type shared across the scenario tests:
// an object with a name, an arbitrary number of strong outgoing edges, and
// an optional flag flipped when its storage is actually released.
type graphNode struct {
	Base
	name     string
	children []*Strong
	freed    *bool
}

func newGraphNode(c *Collector, name string, freed *bool) *Strong {
	return New(&graphNode{name: name, freed: freed}, c)
}

func (n *graphNode) Trace(visit func(Node)) {
	for _, ch := range n.children {
		visit(ch.Target())
	}
}

func (n *graphNode) Finalize() {
	if n.freed != nil {
		*n.freed = true
	}
}

func (n *graphNode) Link(to *Strong) {
	n.children = append(n.children, to)
}

func asGraphNode(n Node) *graphNode {
	return n.(*graphNode)
}
