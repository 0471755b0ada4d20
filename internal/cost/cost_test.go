package cost

import (
	"testing"

	"github.com/cocosip/corblivar3d/internal/cbl"
	"github.com/cocosip/corblivar3d/internal/core"
	"github.com/cocosip/corblivar3d/internal/domain"
)

func mustBlock(t *testing.T, arena *domain.Arena, id string, w, h float64) *domain.Block {
	t.Helper()
	b, err := domain.NewBlock(id, w, h)
	if err != nil {
		t.Fatal(err)
	}
	if err := arena.Add(b); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestAreaOutlineTermFitsWithinOutline(t *testing.T) {
	arena := domain.NewArena()
	a := mustBlock(t, arena, "A", 2, 3)
	b := mustBlock(t, arena, "B", 4, 1)

	c := core.New(arena, 1, nil)
	c.Dies[0].CBL.Push(cbl.Tuple{Block: a, Dir: domain.Horizontal, T: 0})
	c.Dies[0].CBL.Push(cbl.Tuple{Block: b, Dir: domain.Horizontal, T: 0})
	c.GenerateLayout()

	ev := NewEvaluator(Weights{Area: 1}, Outline{X: 10, Y: 10}, 1, nil, nil)
	bd := ev.Evaluate(c, false, 0)
	if !bd.Fits {
		t.Fatal("expected layout to fit a generous outline")
	}
	if bd.AreaOutline < 0 {
		t.Fatalf("area/outline term should be non-negative, got %v", bd.AreaOutline)
	}
}

func TestAreaOutlineTermDetectsOverflow(t *testing.T) {
	arena := domain.NewArena()
	a := mustBlock(t, arena, "A", 20, 20)

	c := core.New(arena, 1, nil)
	c.Dies[0].CBL.Push(cbl.Tuple{Block: a, Dir: domain.Horizontal, T: 0})
	c.GenerateLayout()

	ev := NewEvaluator(Weights{Area: 1}, Outline{X: 10, Y: 10}, 1, nil, nil)
	bd := ev.Evaluate(c, false, 0)
	if bd.Fits {
		t.Fatal("expected an oversized block to not fit")
	}
}

func TestWirelengthAccumulatesAcrossLayers(t *testing.T) {
	arena := domain.NewArena()
	a := mustBlock(t, arena, "A", 1, 1)
	b := mustBlock(t, arena, "B", 1, 1)

	c := core.New(arena, 2, nil)
	c.Dies[0].CBL.Push(cbl.Tuple{Block: a, Dir: domain.Horizontal, T: 0})
	c.Dies[1].CBL.Push(cbl.Tuple{Block: b, Dir: domain.Horizontal, T: 0})
	c.GenerateLayout()

	net := &domain.Net{ID: "N1", Blocks: []*domain.Block{a, b}, Type: domain.InterLayer}

	ev := NewEvaluator(Weights{WL: 1, TSVs: 1}, Outline{X: 10, Y: 10}, 2, []*domain.Net{net}, nil)
	bd := ev.Evaluate(c, true, 1)
	if bd.TSVCount == 0 {
		t.Fatal("expected a net spanning two layers to contribute at least one TSV")
	}
}

func TestAlignmentTermPenalizesOffsetDeviation(t *testing.T) {
	arena := domain.NewArena()
	a := mustBlock(t, arena, "A", 2, 2)
	b := mustBlock(t, arena, "B", 2, 2)
	req, _ := domain.NewAlignmentReq(a, b,
		domain.AxisConstraint{Kind: domain.AlignOffset, Value: 100},
		domain.AxisConstraint{Kind: domain.AlignUndef},
	)

	c := core.New(arena, 1, []*domain.AlignmentReq{req})
	c.Dies[0].CBL.Push(cbl.Tuple{Block: a, Dir: domain.Horizontal, T: 0})
	c.Dies[0].CBL.Push(cbl.Tuple{Block: b, Dir: domain.Horizontal, T: 0})
	c.GenerateLayout()

	ev := NewEvaluator(Weights{Align: 1}, Outline{X: 1000, Y: 1000}, 1, nil, nil)
	bd := ev.Evaluate(c, true, 1)
	if bd.Align <= 0 {
		t.Fatalf("expected a positive alignment penalty, got %v", bd.Align)
	}
}
