// Package domain holds the floorplanner's process-wide entities: blocks,
// nets, alignment requirements, and the direction enum used by the CBL.
package domain

import (
	"fmt"

	"github.com/cocosip/corblivar3d/internal/geom"
)

// Direction is the two-valued orientation a CBL tuple places a block in.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "V"
	}
	return "H"
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Block is an immutable-identifier hardware block with mutable placement
// state. Every tuple in every CBL references a Block by pointer; the
// Block itself never points back at a tuple (see DESIGN.md, "Cross-
// references between CBL tuples and blocks").
type Block struct {
	ID string

	// W, H are the block's current dimensions; they start out equal to
	// the dimensions it was loaded with, are swapped in place by
	// SWITCH_ORIENT, and are restored by RestoreBB/ApplyBestBB.
	W, H float64

	// BB is rewritten from scratch on every decode.
	BB geom.Rect

	// Layer is the 0-based die index the block was last placed on.
	Layer int

	// bbBackup / bbBest are shadow bounding boxes written only by the
	// snapshot mechanism (internal/core backup/restore, store/apply
	// best) and never by the decoder directly. wBackup/hBackup and
	// wBest/hBest hold the dimensions alongside them, so a restore also
	// undoes any SWITCH_ORIENT applied since the snapshot.
	bbBackup         geom.Rect
	bbBest           geom.Rect
	wBackup, hBackup float64
	wBest, hBest     float64
}

// NewBlock constructs a block with positive dimensions w, h.
func NewBlock(id string, w, h float64) (*Block, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("block %q: dimensions must be positive, got w=%v h=%v", id, w, h)
	}
	return &Block{ID: id, W: w, H: h, wBackup: w, hBackup: h, wBest: w, hBest: h}, nil
}

// SwitchOrientation swaps W and H. Applying it twice restores the
// original (w, h), per spec.md §8.
func (b *Block) SwitchOrientation() {
	b.W, b.H = b.H, b.W
}

// BackupBB snapshots the current bounding box and dimensions into the
// backup slot.
func (b *Block) BackupBB() { b.bbBackup, b.wBackup, b.hBackup = b.BB, b.W, b.H }

// RestoreBB restores the bounding box and dimensions from the backup slot.
func (b *Block) RestoreBB() { b.BB, b.W, b.H = b.bbBackup, b.wBackup, b.hBackup }

// StoreBestBB snapshots the current bounding box and dimensions into the
// best slot.
func (b *Block) StoreBestBB() { b.bbBest, b.wBest, b.hBest = b.BB, b.W, b.H }

// ApplyBestBB restores the bounding box and dimensions from the best slot.
func (b *Block) ApplyBestBB() { b.BB, b.W, b.H = b.bbBest, b.wBest, b.hBest }

// Arena is the process-wide, read-only-after-load mapping from block
// identifier to block. Every other structure (CBL tuples, nets,
// alignment requirements) references blocks through this arena.
type Arena struct {
	order  []string
	blocks map[string]*Block
}

// NewArena constructs an empty arena.
func NewArena() *Arena {
	return &Arena{blocks: make(map[string]*Block)}
}

// Add registers a block, erroring on duplicate identifiers.
func (a *Arena) Add(b *Block) error {
	if _, exists := a.blocks[b.ID]; exists {
		return fmt.Errorf("block %q: duplicate identifier", b.ID)
	}
	a.blocks[b.ID] = b
	a.order = append(a.order, b.ID)
	return nil
}

// Get looks up a block by identifier.
func (a *Arena) Get(id string) (*Block, bool) {
	b, ok := a.blocks[id]
	return b, ok
}

// Blocks returns all blocks in insertion order (deterministic iteration,
// required for reproducible SA runs under a fixed seed).
func (a *Arena) Blocks() []*Block {
	out := make([]*Block, len(a.order))
	for i, id := range a.order {
		out[i] = a.blocks[id]
	}
	return out
}

// Len returns the number of blocks in the arena.
func (a *Arena) Len() int { return len(a.order) }
