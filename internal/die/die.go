// Package die implements one die's Corner-Block-List decoder: the
// frontier-stack scan that turns a CBL into block coordinates
// (spec.md §4.2).
package die

import (
	"github.com/cocosip/corblivar3d/internal/cbl"
	"github.com/cocosip/corblivar3d/internal/domain"
	"github.com/cocosip/corblivar3d/internal/geom"
)

// Die owns one die's CBL, its decode progress cursor, its two frontier
// stacks, and its backup/best CBL snapshots. Grounded on
// original_source's CorblivarDie.
type Die struct {
	ID  int
	CBL *cbl.CBL

	// pi is the index of the next tuple to decode.
	pi int

	// Hi, Vi are the horizontal/vertical frontier stacks, top = last
	// element.
	Hi, Vi []*domain.Block

	Backup *cbl.CBL
	Best   *cbl.CBL

	Stalled bool
	Done    bool

	bestStored bool
}

// New returns an empty die with identifier id.
func New(id int) *Die {
	return &Die{
		ID:     id,
		CBL:    cbl.New(),
		Backup: cbl.New(),
		Best:   cbl.New(),
	}
}

// Reset prepares the die for a fresh generate-layout pass: progress
// cursor to 0, frontier stacks cleared, Stalled cleared, Done set
// immediately if the CBL is empty (spec.md §3: Hi/Vi empty iff no tuple
// has been decoded yet).
func (d *Die) Reset() {
	d.pi = 0
	d.Hi = d.Hi[:0]
	d.Vi = d.Vi[:0]
	d.Stalled = false
	d.Done = d.CBL.Len() == 0
}

// CurrentTuple returns the tuple the cursor currently points at. Callers
// must check !Done first.
func (d *Die) CurrentTuple() cbl.Tuple {
	return d.CBL.At(d.pi)
}

// CurrentBlock returns the block the cursor currently points at.
func (d *Die) CurrentBlock() *domain.Block {
	return d.CBL.Block(d.pi)
}

// Advance moves the progress cursor to the next tuple, marking the die
// Done once the cursor passes the last tuple.
func (d *Die) Advance() {
	d.pi++
	if d.pi >= d.CBL.Len() {
		d.Done = true
	}
}

// popFrontier pops up to min(t+1, len(stack)) blocks off the top of
// stack, returning them top-first, and reports the stack's length
// *before* any popping (used by PlaceCurrent to decide the secondary-axis
// zero-fallback, per spec.md §4.2 step 5).
func popFrontier(stack []*domain.Block, t int) (r []*domain.Block, newStack []*domain.Block, origLen int) {
	origLen = len(stack)
	k := t + 1
	if k > origLen {
		k = origLen
	}
	r = make([]*domain.Block, k)
	for i := 0; i < k; i++ {
		r[i] = stack[origLen-1-i]
	}
	return r, stack[:origLen-k], origLen
}

// PlaceCurrent decodes the tuple at the current cursor, writing the
// referenced block's layer and bounding box, and pushes the block onto
// both frontier stacks. It does not advance the cursor; call Advance
// separately. Returns the placed block.
func (d *Die) PlaceCurrent() *domain.Block {
	tup := d.CurrentTuple()
	b := tup.Block
	b.Layer = d.ID

	var r []*domain.Block
	var origLen int
	var llX, llY float64

	if tup.Dir == domain.Horizontal {
		r, d.Hi, origLen = popFrontier(d.Hi, tup.T)

		llX = 0
		for _, rb := range r {
			if rb.BB.UR.X > llX {
				llX = rb.BB.UR.X
			}
		}

		if len(r) == 0 || origLen == 0 {
			llY = 0
		} else {
			llY = r[0].BB.LL.Y
			for _, rb := range r[1:] {
				if rb.BB.LL.Y < llY {
					llY = rb.BB.LL.Y
				}
			}
		}
	} else {
		r, d.Vi, origLen = popFrontier(d.Vi, tup.T)

		llY = 0
		for _, rb := range r {
			if rb.BB.UR.Y > llY {
				llY = rb.BB.UR.Y
			}
		}

		if len(r) == 0 || origLen == 0 {
			llX = 0
		} else {
			llX = r[0].BB.LL.X
			for _, rb := range r[1:] {
				if rb.BB.LL.X < llX {
					llX = rb.BB.LL.X
				}
			}
		}
	}

	b.BB = geom.Rect{
		LL: geom.Point{X: llX, Y: llY},
		UR: geom.Point{X: llX + b.W, Y: llY + b.H},
	}

	d.Hi = append(d.Hi, b)
	d.Vi = append(d.Vi, b)

	return b
}

// Blocks returns the bounding boxes of every block referenced by this
// die's CBL, in tuple order. Used by the cost evaluator to compute the
// die's blocks-bounding outline.
func (d *Die) Blocks() []geom.Rect {
	out := make([]geom.Rect, d.CBL.Len())
	for i := 0; i < d.CBL.Len(); i++ {
		out[i] = d.CBL.Block(i).BB
	}
	return out
}

// BackupCBL copies the live CBL into the backup slot.
func (d *Die) BackupCBL() { d.Backup.CopyFrom(d.CBL) }

// RestoreCBL copies the backup CBL back into the live slot.
func (d *Die) RestoreCBL() { d.CBL.CopyFrom(d.Backup) }

// StoreBestCBL copies the live CBL into the best slot.
func (d *Die) StoreBestCBL() {
	d.Best.CopyFrom(d.CBL)
	d.bestStored = true
}

// HasBest reports whether StoreBestCBL has ever been called for this die.
func (d *Die) HasBest() bool { return d.bestStored }

// ApplyBestCBL copies the best CBL back into the live slot, reporting
// false if nothing was ever stored there.
func (d *Die) ApplyBestCBL() bool {
	if !d.bestStored {
		return false
	}
	d.CBL.CopyFrom(d.Best)
	return true
}
