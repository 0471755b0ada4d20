// Package cbl implements the Corner-Block-List: a compact, tuple-sequence
// encoding of a one-die floorplan (spec.md §4.1).
package cbl

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/cocosip/corblivar3d/internal/domain"
)

// Tuple is one (block, direction, T-junction count) entry of a CBL.
type Tuple struct {
	Block *domain.Block
	Dir   domain.Direction
	T     int
}

// CBL is the ordered sequence of tuples for one die. It is implemented as
// three parallel sequences (S, L, T) rather than a single slice of Tuple
// so that operators touching only one field (SWITCH_DIR,
// SWITCH_JUNCTS) can do so without reconstructing whole tuples —
// the same layout as original_source's CornerBlockList.hpp.
type CBL struct {
	s []*domain.Block
	l []domain.Direction
	t []int
}

// New returns an empty CBL.
func New() *CBL {
	return &CBL{}
}

// Len returns the number of tuples. The three backing sequences are kept
// in lock-step on every mutating path, so their lengths never diverge.
func (c *CBL) Len() int { return len(c.s) }

// Cap returns the backing-slice capacity (S's, representative of all
// three since Reserve grows them together).
func (c *CBL) Cap() int { return cap(c.s) }

// IsEmpty reports whether the CBL has no tuples.
func (c *CBL) IsEmpty() bool { return len(c.s) == 0 }

// Clear empties the CBL.
func (c *CBL) Clear() {
	c.s = c.s[:0]
	c.l = c.l[:0]
	c.t = c.t[:0]
}

// Reserve grows the backing capacity to at least n tuples.
func (c *CBL) Reserve(n int) {
	if cap(c.s) >= n {
		return
	}
	grow := func(s []*domain.Block) []*domain.Block {
		ns := make([]*domain.Block, len(s), n)
		copy(ns, s)
		return ns
	}
	c.s = grow(c.s)
	nl := make([]domain.Direction, len(c.l), n)
	copy(nl, c.l)
	c.l = nl
	nt := make([]int, len(c.t), n)
	copy(nt, c.t)
	c.t = nt
}

// Push appends a tuple to the end.
func (c *CBL) Push(tup Tuple) {
	c.s = append(c.s, tup.Block)
	c.l = append(c.l, tup.Dir)
	c.t = append(c.t, tup.T)
}

// At returns the tuple at index i for reading.
func (c *CBL) At(i int) Tuple {
	return Tuple{Block: c.s[i], Dir: c.l[i], T: c.t[i]}
}

// Block returns the block referenced at index i.
func (c *CBL) Block(i int) *domain.Block { return c.s[i] }

// Dir returns the direction at index i.
func (c *CBL) Dir(i int) domain.Direction { return c.l[i] }

// Junctions returns the T-junction count at index i.
func (c *CBL) Junctions(i int) int { return c.t[i] }

// SetBlock overwrites the block reference at index i, returning the
// previous value — used by cross-die operators (SWAP_ACROSS, MOVE_TUPLE)
// that move a single block reference between two CBLs.
func (c *CBL) SetBlock(i int, b *domain.Block) *domain.Block {
	old := c.s[i]
	c.s[i] = b
	return old
}

// SwapS swaps the block references at i and j, leaving L and T in place —
// this is what the SWAP_WITHIN and SWAP_ACROSS operators use; only the
// block identity moves, its direction/T-junction slot stays put.
func (c *CBL) SwapS(i, j int) {
	c.s[i], c.s[j] = c.s[j], c.s[i]
}

// SetDir overwrites the direction at index i, returning the previous
// value so the caller can implement an inverse.
func (c *CBL) SetDir(i int, d domain.Direction) domain.Direction {
	old := c.l[i]
	c.l[i] = d
	return old
}

// SetJunctions overwrites the T-junction count at index i, returning the
// previous value so the caller can implement an inverse.
func (c *CBL) SetJunctions(i, t int) int {
	old := c.t[i]
	c.t[i] = t
	return old
}

// InsertAt inserts tup at position i, shifting later tuples right.
func (c *CBL) InsertAt(i int, tup Tuple) {
	c.s = slices.Insert(c.s, i, tup.Block)
	c.l = slices.Insert(c.l, i, tup.Dir)
	c.t = slices.Insert(c.t, i, tup.T)
}

// RemoveAt removes and returns the tuple at position i, shifting later
// tuples left.
func (c *CBL) RemoveAt(i int) Tuple {
	tup := c.At(i)
	c.s = slices.Delete(c.s, i, i+1)
	c.l = slices.Delete(c.l, i, i+1)
	c.t = slices.Delete(c.t, i, i+1)
	return tup
}

// CopyFrom replaces this CBL's contents with a deep-enough copy of src's
// (the slices are copied; the *domain.Block pointers are shared, since
// blocks live in the arena and are never owned by a CBL). Used by
// backup/restore and store-best/apply-best.
func (c *CBL) CopyFrom(src *CBL) {
	c.s = append(c.s[:0], src.s...)
	c.l = append(c.l[:0], src.l...)
	c.t = append(c.t[:0], src.t...)
}

// TupleString formats one tuple as "( id dir T w h )", with w/h reflecting
// the block's *current* dimensions (so orientation switches are visible),
// per spec.md §4.1's pretty-printing rule.
func (c *CBL) TupleString(i int) string {
	b := c.s[i]
	return fmt.Sprintf("( %s %s %d %g %g )", b.ID, c.l[i], c.t[i], b.W, b.H)
}

// String renders the whole CBL as a semicolon-separated tuple list.
func (c *CBL) String() string {
	var sb strings.Builder
	for i := 0; i < c.Len(); i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(c.TupleString(i))
	}
	return sb.String()
}
