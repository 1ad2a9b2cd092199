package cc

// FindCycles walks the strong-edge graph reachable from roots using
// Tarjan's strongly-connected-components algorithm and returns every
// nontrivial component (size > 1, or a single node with a self-loop).
//
// It does not read or write any Header field — it exists purely so a test
// can assert a fixture actually contains the cycle shape it claims, both
// before and after a Collector.CollectCycles pass, independent of (and
// unaffected by) the collector's own markGray/scan/collectWhite traversal.
func FindCycles(roots []Node) [][]Node {
	t := &tarjanState{
		index:   make(map[Node]int),
		lowlink: make(map[Node]int),
		onStack: make(map[Node]bool),
	}
	var sccs [][]Node
	for _, r := range roots {
		if _, seen := t.index[r]; !seen {
			t.strongconnect(r, &sccs)
		}
	}
	return sccs
}

type tarjanState struct {
	index, lowlink map[Node]int
	onStack        map[Node]bool
	stack          []Node
	counter        int
}

func (t *tarjanState) strongconnect(v Node, sccs *[][]Node) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	selfLoop := false
	v.Trace(func(w Node) {
		if w == v {
			selfLoop = true
		}
		if _, seen := t.index[w]; !seen {
			t.strongconnect(w, sccs)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	})

	if t.lowlink[v] != t.index[v] {
		return
	}

	var scc []Node
	for {
		n := len(t.stack) - 1
		w := t.stack[n]
		t.stack = t.stack[:n]
		t.onStack[w] = false
		scc = append(scc, w)
		if w == v {
			break
		}
	}
	if len(scc) > 1 || (len(scc) == 1 && selfLoop) {
		*sccs = append(*sccs, scc)
	}
}
