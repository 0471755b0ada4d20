package domain

import "testing"

func TestBlockSwitchOrientationTwiceIsIdentity(t *testing.T) {
	b, err := NewBlock("A", 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	origW, origH := b.W, b.H
	b.SwitchOrientation()
	b.SwitchOrientation()
	if b.W != origW || b.H != origH {
		t.Fatalf("got w=%v h=%v, want w=%v h=%v", b.W, b.H, origW, origH)
	}
}

func TestNewBlockRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := NewBlock("A", 0, 1); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, err := NewBlock("A", 1, -1); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestBlockBackupRestoreRoundTrip(t *testing.T) {
	b, _ := NewBlock("A", 2, 3)
	b.BB.UR.X = 5
	b.BackupBB()
	b.BB.UR.X = 99
	b.RestoreBB()
	if b.BB.UR.X != 5 {
		t.Fatalf("got %v, want 5", b.BB.UR.X)
	}
}

func TestArenaDuplicateRejected(t *testing.T) {
	a := NewArena()
	b1, _ := NewBlock("A", 1, 1)
	b2, _ := NewBlock("A", 2, 2)
	if err := a.Add(b1); err != nil {
		t.Fatal(err)
	}
	if err := a.Add(b2); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestArenaIterationOrderIsInsertionOrder(t *testing.T) {
	a := NewArena()
	ids := []string{"C", "A", "B"}
	for _, id := range ids {
		b, _ := NewBlock(id, 1, 1)
		if err := a.Add(b); err != nil {
			t.Fatal(err)
		}
	}
	for i, b := range a.Blocks() {
		if b.ID != ids[i] {
			t.Fatalf("position %d: got %q, want %q", i, b.ID, ids[i])
		}
	}
}

func TestNewAlignmentReqClampsNegativeRange(t *testing.T) {
	a, _ := NewBlock("A", 1, 1)
	b, _ := NewBlock("B", 1, 1)
	req, clamped := NewAlignmentReq(a, b, AxisConstraint{Kind: AlignRange, Value: -5}, AxisConstraint{})
	if !clamped {
		t.Fatal("expected clamp flag set")
	}
	if req.X.Value != 0 {
		t.Fatalf("got %v, want 0", req.X.Value)
	}
}

func TestAlignmentReqPartner(t *testing.T) {
	a, _ := NewBlock("A", 1, 1)
	b, _ := NewBlock("B", 1, 1)
	c, _ := NewBlock("C", 1, 1)
	req, _ := NewAlignmentReq(a, b, AxisConstraint{}, AxisConstraint{})
	p, err := req.Partner(a)
	if err != nil || p != b {
		t.Fatalf("got %v, %v; want b, nil", p, err)
	}
	if _, err := req.Partner(c); err == nil {
		t.Fatal("expected error for non-member block")
	}
}

func TestNetLayerBoundaries(t *testing.T) {
	a, _ := NewBlock("A", 1, 1)
	b, _ := NewBlock("B", 1, 1)
	a.Layer, b.Layer = 2, 0
	n := &Net{ID: "n0", Blocks: []*Block{a, b}}
	n.SetLayerBoundaries(3)
	if n.LayerBottom != 0 || n.LayerTop != 2 {
		t.Fatalf("got bottom=%d top=%d, want 0,2", n.LayerBottom, n.LayerTop)
	}
}
