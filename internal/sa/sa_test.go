package sa

import (
	"errors"
	"io"
	"testing"

	"github.com/cocosip/corblivar3d/internal/config"
	"github.com/cocosip/corblivar3d/internal/core"
	"github.com/cocosip/corblivar3d/internal/corberr"
	"github.com/cocosip/corblivar3d/internal/cost"
	"github.com/cocosip/corblivar3d/internal/domain"
	"github.com/cocosip/corblivar3d/internal/logx"
	"github.com/cocosip/corblivar3d/internal/rng"
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

func testConfig() config.Config {
	return config.Config{
		Layers:                 1,
		OutlineX:               100,
		OutlineY:               100,
		LoopFactor:             0.5,
		LoopLimit:              8,
		TempInitFactor:         0.9,
		TempPhaseTrans12Factor: 0.9,
		TempPhaseTrans23Factor: 0.1,
		TempFactorPhase1:       0.9,
		TempFactorPhase2:       0.95,
		TempFactorPhase3:       0.5,
		CostAreaOutline:        1.0,
		CostWL:                 1.0,
		CostTSVs:               1.0,
		CostTemp:               1.0,
		CostAlign:              1.0,
		Seed:                   7,
	}
}

func newDriver(t *testing.T, arena *domain.Arena, cfg config.Config, seed uint64) *Driver {
	t.Helper()
	c := core.New(arena, cfg.Layers, nil)
	r := rng.New(seed)
	c.InitRandom(r)
	eval := cost.NewEvaluator(
		cost.Weights{Area: cfg.CostAreaOutline, WL: cfg.CostWL, TSVs: cfg.CostTSVs, Temp: cfg.CostTemp, Align: cfg.CostAlign},
		cost.Outline{X: cfg.OutlineX, Y: cfg.OutlineY},
		cfg.Layers, nil, nil,
	)
	return New(cfg, c, eval, r, logx.New(io.Discard, logx.Quiet))
}

// A handful of small blocks totaling well under the outline area should
// always find a fitting layout within a modest loop budget (spec.md §8
// scenario 5).
func TestRunFindsFeasibleSolutionForRoomyOutline(t *testing.T) {
	arena := domain.NewArena()
	mustBlock(t, arena, "A", 10, 10)
	mustBlock(t, arena, "B", 8, 6)
	mustBlock(t, arena, "C", 5, 5)

	cfg := testConfig()
	d := newDriver(t, arena, cfg, 1)

	result, err := d.Run()
	if err != nil {
		t.Fatalf("expected a feasible run, got error: %v", err)
	}
	if !result.Valid {
		t.Fatal("expected Valid=true for a roomy outline")
	}
	if result.BestCost.MaxDieOccupation > 1.0 {
		t.Fatalf("max_die_occupation = %v, want <= 1.0", result.BestCost.MaxDieOccupation)
	}
}

// Run never returns a non-ErrInfeasible error for a well-formed
// configuration, and an INFEASIBLE outcome (if it occurs) is reported
// through Result, not a generic error.
func TestRunInfeasibleIsReportedNotFatal(t *testing.T) {
	arena := domain.NewArena()
	// A block far larger than the outline can never fit; with a tiny
	// loop budget the run should report INFEASIBLE rather than panic
	// or return an unrelated error.
	mustBlock(t, arena, "Huge", 500, 500)

	cfg := testConfig()
	cfg.LoopLimit = 1
	d := newDriver(t, arena, cfg, 2)

	result, err := d.Run()
	if err != nil && !errors.Is(err, corberr.ErrInfeasible) {
		t.Fatalf("expected nil or ErrInfeasible, got %v", err)
	}
	if err != nil && result.Valid {
		t.Fatal("ErrInfeasible must pair with Result.Valid=false")
	}
}

// For a fixed seed, two independent runs over the same inputs produce
// identical final cost and step count (spec.md §8, "Deterministic
// seeding").
func TestRunIsDeterministicForFixedSeed(t *testing.T) {
	build := func() (*domain.Arena, config.Config) {
		arena := domain.NewArena()
		mustBlock(t, arena, "A", 10, 10)
		mustBlock(t, arena, "B", 8, 6)
		mustBlock(t, arena, "C", 5, 5)
		mustBlock(t, arena, "D", 4, 4)
		return arena, testConfig()
	}

	arena1, cfg1 := build()
	d1 := newDriver(t, arena1, cfg1, 99)
	result1, err1 := d1.Run()

	arena2, cfg2 := build()
	d2 := newDriver(t, arena2, cfg2, 99)
	result2, err2 := d2.Run()

	if (err1 == nil) != (err2 == nil) {
		t.Fatalf("mismatched errors: %v vs %v", err1, err2)
	}
	if result1.Valid != result2.Valid {
		t.Fatalf("mismatched validity: %v vs %v", result1.Valid, result2.Valid)
	}
	if result1.BestCost.Total != result2.BestCost.Total {
		t.Fatalf("mismatched best cost: %v vs %v", result1.BestCost.Total, result2.BestCost.Total)
	}
	if result1.Steps != result2.Steps {
		t.Fatalf("mismatched step counts: %v vs %v", result1.Steps, result2.Steps)
	}
}

func TestSamplingRestoresPreSamplingCBL(t *testing.T) {
	arena := domain.NewArena()
	mustBlock(t, arena, "A", 10, 10)
	mustBlock(t, arena, "B", 8, 6)

	cfg := testConfig()
	d := newDriver(t, arena, cfg, 3)

	before := make([]string, len(d.core.Dies))
	for i, die := range d.core.Dies {
		before[i] = die.CBL.String()
	}

	d.sample()

	for i, die := range d.core.Dies {
		if die.CBL.String() != before[i] {
			t.Fatalf("die %d CBL changed across sampling: before=%q after=%q", i, before[i], die.CBL.String())
		}
	}
}
