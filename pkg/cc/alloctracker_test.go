package cc

import "testing"

func TestAllocTracker_CountsAllocsAndFrees(t *testing.T) {
	c := NewCollector()
	a := newGraphNode(c, "a", nil)
	b := newGraphNode(c, "b", nil)

	a.Drop()
	b.Drop()

	stats := c.Stats()
	if stats.Allocations != 2 {
		t.Errorf("allocations = %d, want 2", stats.Allocations)
	}
	if stats.Frees != 2 {
		t.Errorf("frees = %d, want 2", stats.Frees)
	}
}

func TestAllocTracker_CyclesRunIncrementsPerDropAndExplicitCall(t *testing.T) {
	c := NewCollector()
	a := newGraphNode(c, "a", nil)

	before := c.Stats().CyclesRun
	a.Drop() // triggers one CollectCycles internally
	afterDrop := c.Stats().CyclesRun
	if afterDrop != before+1 {
		t.Errorf("CyclesRun after drop = %d, want %d", afterDrop, before+1)
	}

	c.CollectCycles()
	afterExplicit := c.Stats().CyclesRun
	if afterExplicit != afterDrop+1 {
		t.Errorf("CyclesRun after explicit call = %d, want %d", afterExplicit, afterDrop+1)
	}
}
