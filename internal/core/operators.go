package core

import "github.com/cocosip/corblivar3d/internal/rng"

// SwapWithin swaps the block references at i, j on die d. Its own
// inverse, called with (d, j, i).
func (c *Core) SwapWithin(d, i, j int) bool {
	if d < 0 || d >= len(c.Dies) {
		return false
	}
	cb := c.Dies[d].CBL
	if cb.Len() < 2 || i == j || i < 0 || j < 0 || i >= cb.Len() || j >= cb.Len() {
		return false
	}
	cb.SwapS(i, j)
	c.last = lastOp{kind: OpSwapWithin, d1: d, i: i, j: j, valid: true}
	return true
}

// SwapAcross swaps the block at position i on die d1 with the block at
// position j on die d2. Requires d1 != d2. Inverse: SwapAcross(d2, d1, j, i).
func (c *Core) SwapAcross(d1, d2, i, j int) bool {
	if d1 == d2 || !c.validDie(d1) || !c.validDie(d2) {
		return false
	}
	cb1, cb2 := c.Dies[d1].CBL, c.Dies[d2].CBL
	if i < 0 || i >= cb1.Len() || j < 0 || j >= cb2.Len() {
		return false
	}
	a := cb1.Block(i)
	b := cb2.Block(j)
	cb1.SetBlock(i, b)
	cb2.SetBlock(j, a)
	c.last = lastOp{kind: OpSwapAcross, d1: d1, d2: d2, i: i, j: j, valid: true}
	return true
}

// MoveTuple removes the tuple at position i of die d1 and inserts it at
// position j of die d2. Requires d1 != d2. Inverse: MoveTuple(d2, d1, j, i).
func (c *Core) MoveTuple(d1, d2, i, j int) bool {
	if d1 == d2 || !c.validDie(d1) || !c.validDie(d2) {
		return false
	}
	cb1, cb2 := c.Dies[d1].CBL, c.Dies[d2].CBL
	if i < 0 || i >= cb1.Len() || j < 0 || j > cb2.Len() {
		return false
	}
	tup := cb1.RemoveAt(i)
	cb2.InsertAt(j, tup)
	c.last = lastOp{kind: OpMoveTuple, d1: d1, d2: d2, i: i, j: j, valid: true}
	return true
}

// SwitchDir toggles the direction at position i on die d. Its own inverse.
func (c *Core) SwitchDir(d, i int) bool {
	if !c.validDie(d) {
		return false
	}
	cb := c.Dies[d].CBL
	if i < 0 || i >= cb.Len() {
		return false
	}
	cb.SetDir(i, cb.Dir(i).Toggle())
	c.last = lastOp{kind: OpSwitchDir, d1: d, i: i, valid: true}
	return true
}

// SwitchJuncts sets the T-junction count at position i on die d to tNew,
// remembering the old value so the inverse can restore it exactly.
func (c *Core) SwitchJuncts(d, i, tNew int) bool {
	if !c.validDie(d) || tNew < 0 {
		return false
	}
	cb := c.Dies[d].CBL
	if i < 0 || i >= cb.Len() {
		return false
	}
	old := cb.SetJunctions(i, tNew)
	c.last = lastOp{kind: OpSwitchJuncts, d1: d, i: i, oldT: old, valid: true}
	return true
}

// SwitchOrient swaps w/h of the block referenced at position i on die d.
// Its own inverse (applying it twice restores the original dimensions).
func (c *Core) SwitchOrient(d, i int) bool {
	if !c.validDie(d) {
		return false
	}
	cb := c.Dies[d].CBL
	if i < 0 || i >= cb.Len() {
		return false
	}
	cb.Block(i).SwitchOrientation()
	c.last = lastOp{kind: OpSwitchOrient, d1: d, i: i, valid: true}
	return true
}

func (c *Core) validDie(d int) bool {
	return d >= 0 && d < len(c.Dies) && c.Dies[d].CBL != nil
}

// ApplyInverse undoes the most recently applied operator by invoking its
// documented inverse (spec.md §4.3's table), rather than a full CBL
// snapshot restore. Returns false if no operator has been applied yet.
func (c *Core) ApplyInverse() bool {
	op := c.last
	if !op.valid {
		return false
	}
	switch op.kind {
	case OpSwapWithin:
		return c.SwapWithin(op.d1, op.j, op.i)
	case OpSwapAcross:
		return c.SwapAcross(op.d2, op.d1, op.j, op.i)
	case OpMoveTuple:
		return c.MoveTuple(op.d2, op.d1, op.j, op.i)
	case OpSwitchDir:
		return c.SwitchDir(op.d1, op.i)
	case OpSwitchJuncts:
		return c.SwitchJuncts(op.d1, op.i, op.oldT)
	case OpSwitchOrient:
		return c.SwitchOrient(op.d1, op.i)
	default:
		return false
	}
}

// ApplyRandom uniformly picks one of the six operators and instantiates
// it with random arguments drawn from the current CBL sizes. It reports
// the operator's name and whether it actually mutated state; a false
// result is a no-op (precondition failure) the caller should retry
// without counting, per spec.md §4.3.
func (c *Core) ApplyRandom(r *rng.RNG) (name string, ok bool) {
	switch OpKind(r.IntN(6)) {
	case OpSwapWithin:
		name = OpSwapWithin.Name()
		d := r.IntN(len(c.Dies))
		n := c.Dies[d].CBL.Len()
		if n < 2 {
			return name, false
		}
		i, j := r.IntN(n), r.IntN(n)
		if i == j {
			return name, false
		}
		return name, c.SwapWithin(d, i, j)

	case OpSwapAcross:
		name = OpSwapAcross.Name()
		if len(c.Dies) < 2 {
			return name, false
		}
		d1, d2 := r.IntN(len(c.Dies)), r.IntN(len(c.Dies))
		if d1 == d2 {
			return name, false
		}
		n1, n2 := c.Dies[d1].CBL.Len(), c.Dies[d2].CBL.Len()
		if n1 == 0 || n2 == 0 {
			return name, false
		}
		return name, c.SwapAcross(d1, d2, r.IntN(n1), r.IntN(n2))

	case OpMoveTuple:
		name = OpMoveTuple.Name()
		if len(c.Dies) < 2 {
			return name, false
		}
		d1, d2 := r.IntN(len(c.Dies)), r.IntN(len(c.Dies))
		if d1 == d2 {
			return name, false
		}
		n1 := c.Dies[d1].CBL.Len()
		if n1 == 0 {
			return name, false
		}
		i := r.IntN(n1)
		j := r.IntN(c.Dies[d2].CBL.Len() + 1)
		return name, c.MoveTuple(d1, d2, i, j)

	case OpSwitchDir:
		name = OpSwitchDir.Name()
		d := r.IntN(len(c.Dies))
		n := c.Dies[d].CBL.Len()
		if n == 0 {
			return name, false
		}
		return name, c.SwitchDir(d, r.IntN(n))

	case OpSwitchJuncts:
		name = OpSwitchJuncts.Name()
		d := r.IntN(len(c.Dies))
		n := c.Dies[d].CBL.Len()
		if n == 0 {
			return name, false
		}
		i := r.IntN(n)
		old := c.Dies[d].CBL.Junctions(i)
		var tNew int
		switch {
		case old == 0:
			tNew = 1
		case r.Bool():
			tNew = old + 1
		default:
			tNew = old - 1
			if tNew < 0 {
				tNew = 0
			}
		}
		return name, c.SwitchJuncts(d, i, tNew)

	default:
		name = OpSwitchOrient.Name()
		d := r.IntN(len(c.Dies))
		n := c.Dies[d].CBL.Len()
		if n == 0 {
			return name, false
		}
		return name, c.SwitchOrient(d, r.IntN(n))
	}
}
