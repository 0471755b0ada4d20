// Package core owns the ordered set of dies and the alignment
// requirements, and drives both the six mutation operators and the
// multi-die layout orchestration (spec.md §4.3–§4.6).
package core

import (
	"github.com/cocosip/corblivar3d/internal/cbl"
	"github.com/cocosip/corblivar3d/internal/die"
	"github.com/cocosip/corblivar3d/internal/domain"
	"github.com/cocosip/corblivar3d/internal/rng"
)

// OpKind identifies one of the six mutation operators.
type OpKind int

const (
	OpSwapWithin OpKind = iota
	OpSwapAcross
	OpMoveTuple
	OpSwitchDir
	OpSwitchJuncts
	OpSwitchOrient
)

// Name returns the operator's registry name, matching the table in
// spec.md §4.3.
func (k OpKind) Name() string {
	switch k {
	case OpSwapWithin:
		return "SWAP_WITHIN"
	case OpSwapAcross:
		return "SWAP_ACROSS"
	case OpMoveTuple:
		return "MOVE_TUPLE"
	case OpSwitchDir:
		return "SWITCH_DIR"
	case OpSwitchJuncts:
		return "SWITCH_JUNCTS"
	case OpSwitchOrient:
		return "SWITCH_ORIENT"
	default:
		return "UNKNOWN"
	}
}

// lastOp remembers the most recently applied operator and its arguments,
// following original_source's last_op/last_op_die1/last_op_die2/
// last_op_tuple1/last_op_tuple2 memorization scheme, so the SA driver can
// revert in O(1) by calling the operator's inverse instead of
// snapshotting the whole CBL before every mutation.
type lastOp struct {
	kind  OpKind
	d1    int
	d2    int
	i     int
	j     int
	oldT  int
	valid bool
}

// Core is the top-level mutable state a single floorplanning run
// operates on: the dies, and the alignment requirements between their
// blocks.
type Core struct {
	Arena  *domain.Arena
	Dies   []*die.Die
	Aligns []*domain.AlignmentReq
	last   lastOp
}

// New returns a Core with one Die per layer, numbered 0..layers-1.
func New(arena *domain.Arena, layers int, aligns []*domain.AlignmentReq) *Core {
	dies := make([]*die.Die, layers)
	for i := range dies {
		dies[i] = die.New(i)
	}
	return &Core{Arena: arena, Dies: dies, Aligns: aligns}
}

// InitRandom assigns every block in the arena to a random die's CBL, in
// a random order, with a random direction and T=0, giving the annealer a
// starting point. Mirrors original_source's initCorblivar for the random
// die and direction draw only; unlike initCorblivar it always starts
// T at 0 rather than also drawing a random initial T-junction count.
func (c *Core) InitRandom(r *rng.RNG) {
	for _, d := range c.Dies {
		d.CBL.Clear()
	}
	blocks := c.Arena.Blocks()
	order := r.Perm(len(blocks))
	for _, idx := range order {
		b := blocks[idx]
		d := c.Dies[r.IntN(len(c.Dies))]
		dir := domain.Horizontal
		if r.Bool() {
			dir = domain.Vertical
		}
		d.CBL.Push(cbl.Tuple{Block: b, Dir: dir, T: 0})
	}
}

// BackupAll snapshots every die's live CBL and every block's bb and
// dimensions into the backup slot.
func (c *Core) BackupAll() {
	for _, d := range c.Dies {
		d.BackupCBL()
	}
	for _, b := range c.Arena.Blocks() {
		b.BackupBB()
	}
}

// RestoreAll restores every die's CBL and every block's bb and
// dimensions from the backup slot.
func (c *Core) RestoreAll() {
	for _, d := range c.Dies {
		d.RestoreCBL()
	}
	for _, b := range c.Arena.Blocks() {
		b.RestoreBB()
	}
}

// StoreBestAll snapshots every die's live CBL and every block's bb and
// dimensions into the best slot.
func (c *Core) StoreBestAll() {
	for _, d := range c.Dies {
		d.StoreBestCBL()
	}
	for _, b := range c.Arena.Blocks() {
		b.StoreBestBB()
	}
}

// ApplyBestAll restores every die's CBL and every block's bb and
// dimensions from the best slot, reporting false (and applying nothing) if any die never had
// a best stored.
func (c *Core) ApplyBestAll() bool {
	for _, d := range c.Dies {
		if !d.HasBest() {
			return false
		}
	}
	for _, d := range c.Dies {
		d.ApplyBestCBL()
	}
	for _, b := range c.Arena.Blocks() {
		b.ApplyBestBB()
	}
	return true
}
