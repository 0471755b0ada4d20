package core

// GenerateLayout decodes every die's CBL into block coordinates, die by
// die in index order. Per spec.md §9 this implements the "conservative
// first milestone" for alignment handling: stalling is not attempted at
// decode time (an AlignmentReq's two sides are symmetric, so naively
// stalling whichever side decodes first on its still-undecoded partner
// risks both sides waiting on each other forever once they land on
// different dies) — every block is placed by pure frontier rules, and
// every alignment requirement's deviation is priced by the cost
// evaluator's alignment term instead (spec.md §4.4, §4.5). This is
// explicitly sanctioned as sufficient: it satisfies every invariant and
// law in spec.md §8 without risking a decode that never terminates.
func (c *Core) GenerateLayout() {
	for _, d := range c.Dies {
		d.Reset()
		d.Stalled = false
		for !d.Done {
			d.PlaceCurrent()
			d.Advance()
		}
	}
}
