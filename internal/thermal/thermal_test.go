package thermal

import (
	"testing"

	"github.com/cocosip/corblivar3d/internal/domain"
	"github.com/cocosip/corblivar3d/internal/geom"
)

func TestTileBoundsTilesTheOutline(t *testing.T) {
	g := NewGrid(10, 10, 1, 5, 5, 1.0)
	r := g.TileBounds(0, 0)
	if r.Width() != 2 || r.Height() != 2 {
		t.Fatalf("tile size = %vx%v, want 2x2", r.Width(), r.Height())
	}
	last := g.TileBounds(4, 4)
	if last.UR.X != 10 || last.UR.Y != 10 {
		t.Fatalf("last tile UR = %+v, want (10,10)", last.UR)
	}
}

func TestAccumulateBlockRaisesMaxTemperature(t *testing.T) {
	g := NewGrid(10, 10, 1, 5, 5, 1.0)
	if g.MaxTemperature() != 0 {
		t.Fatal("expected zero temperature before any power is accumulated")
	}

	b := &domain.Block{ID: "A", W: 2, H: 2, Layer: 0, BB: geom.Rect{LL: geom.Point{X: 0, Y: 0}, UR: geom.Point{X: 2, Y: 2}}}
	g.AccumulateBlock(b, 5.0)

	if g.MaxTemperature() <= 0 {
		t.Fatal("expected positive temperature after accumulating power")
	}
}

func TestResetClearsAccumulatedPower(t *testing.T) {
	g := NewGrid(10, 10, 1, 5, 5, 1.0)
	b := &domain.Block{ID: "A", W: 2, H: 2, Layer: 0, BB: geom.Rect{LL: geom.Point{X: 0, Y: 0}, UR: geom.Point{X: 2, Y: 2}}}
	g.AccumulateBlock(b, 5.0)
	g.Reset()
	if g.MaxTemperature() != 0 {
		t.Fatal("expected zero temperature after Reset")
	}
}

func TestEmptySecondLayerDoesNotReduceMaxTemperature(t *testing.T) {
	single := NewGrid(10, 10, 2, 5, 5, 1.0)
	b := &domain.Block{ID: "A", W: 2, H: 2, Layer: 0, BB: geom.Rect{LL: geom.Point{X: 0, Y: 0}, UR: geom.Point{X: 2, Y: 2}}}
	single.AccumulateBlock(b, 5.0)
	withNeighbor := single.MaxTemperature()

	isolated := NewGrid(10, 10, 1, 5, 5, 1.0)
	isolated.AccumulateBlock(b, 5.0)
	isolatedMax := isolated.MaxTemperature()

	if withNeighbor < isolatedMax {
		t.Fatalf("expected a second (empty) layer to not reduce max temperature: %v vs %v", withNeighbor, isolatedMax)
	}
}
