package cc

import "testing"

func TestStrong_DoubleDropPanics(t *testing.T) {
	c := NewCollector()
	s := newGraphNode(c, "x", nil)
	s.Drop()

	defer func() {
		if recover() == nil {
			t.Error("expected panic dropping a Strong handle twice")
		}
	}()
	s.Drop()
}

func TestWeak_DoubleDropPanics(t *testing.T) {
	c := NewCollector()
	s := newGraphNode(c, "x", nil)
	w := s.Downgrade()
	w.Drop()

	defer func() {
		if recover() == nil {
			t.Error("expected panic dropping a Weak handle twice")
		}
	}()
	w.Drop()
}

func TestStrong_DerefAfterDropPanics(t *testing.T) {
	c := NewCollector()
	s := newGraphNode(c, "x", nil)
	s.Drop()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on Deref after Drop")
		}
	}()
	s.Deref()
}

func TestStrong_CloneIncrementsAndRescues(t *testing.T) {
	c := NewCollector()
	a := newGraphNode(c, "a", nil)
	h := a.Target().Header()
	h.setColor(Purple)

	b := a.Clone()
	if got := h.Strong(); got != 2 {
		t.Errorf("strong = %d, want 2", got)
	}
	if h.Color() != Black {
		t.Errorf("color after clone = %v, want Black", h.Color())
	}

	b.Drop()
	a.Drop()
}

func TestWeak_UpgradeFailsAfterAllStrongDropped(t *testing.T) {
	c := NewCollector()
	freed := false
	s := newGraphNode(c, "x", &freed)
	w := s.Downgrade()

	s.Drop()
	if freed {
		t.Fatal("payload should not be freed yet: w still holds a weak unit")
	}

	if up := w.Upgrade(); up != nil {
		t.Error("upgrade should yield nothing once strong has reached zero")
	}

	w.Drop()
	if !freed {
		t.Fatal("object should have been freed once the last weak handle dropped")
	}
}

func TestWeak_SurvivesStrongScenario(t *testing.T) {
	// allocate x, downgrade to y, drop x, y.upgrade() yields nothing, drop
	// y. Header is freed only after y is dropped.
	c := NewCollector()
	freed := false
	x := newGraphNode(c, "x", &freed)
	y := x.Downgrade()

	x.Drop()
	if freed {
		t.Fatal("payload should not be freed yet: y still holds a weak unit")
	}

	if up := y.Upgrade(); up != nil {
		t.Error("upgrade should fail once strong has reached zero")
	}

	y.Drop()
	if !freed {
		t.Fatal("payload should be freed only after the last weak handle drops")
	}
}

func TestWeak_UpgradeSucceedsWhileStrongAlive(t *testing.T) {
	c := NewCollector()
	s := newGraphNode(c, "x", nil)
	w := s.Downgrade()

	up := w.Upgrade()
	if up == nil {
		t.Fatal("upgrade should succeed while a strong handle is alive")
	}
	if got := s.Target().Header().Strong(); got != 2 {
		t.Errorf("strong after upgrade = %d, want 2", got)
	}

	up.Drop()
	s.Drop()
	w.Drop()
}
