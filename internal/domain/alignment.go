package domain

import "fmt"

// AlignKind is the kind of constraint an AlignmentReq places on one axis.
type AlignKind int

const (
	// AlignUndef means the axis carries no constraint.
	AlignUndef AlignKind = iota
	// AlignOffset requires a fixed signed offset between the two blocks.
	AlignOffset
	// AlignRange requires the absolute offset to fall within [0, Value].
	AlignRange
)

// AxisConstraint is one axis's alignment kind and its numeric parameter.
type AxisConstraint struct {
	Kind  AlignKind
	Value float64
}

// AlignmentReq ties two blocks together with independent X and Y axis
// constraints. Grounded on original_source's CorblivarAlignmentReq.
type AlignmentReq struct {
	SI, SJ *Block
	X, Y   AxisConstraint

	// Failed records that the requirement could not be honored. Neither
	// the decoder (internal/core.GenerateLayout never stalls) nor the
	// cost evaluator sets it, and the alignment cost term does not read
	// it: that term prices every requirement's actual deviation.
	Failed bool
}

// NewAlignmentReq validates and clamps per spec.md §3: a negative RANGE
// value is clamped to zero and the clamp is reported via the returned
// bool so the caller can log it. This function does not log; no caller
// in this repository logs the clamp, and cmd/corblivar does not load
// alignment requirements at all.
func NewAlignmentReq(si, sj *Block, x, y AxisConstraint) (*AlignmentReq, bool) {
	clamped := false
	if x.Kind == AlignRange && x.Value < 0 {
		x.Value = 0
		clamped = true
	}
	if y.Kind == AlignRange && y.Value < 0 {
		y.Value = 0
		clamped = true
	}
	return &AlignmentReq{SI: si, SJ: sj, X: x, Y: y}, clamped
}

// Partner returns the other block in the pair, given one of its ends.
func (r *AlignmentReq) Partner(b *Block) (*Block, error) {
	switch b {
	case r.SI:
		return r.SJ, nil
	case r.SJ:
		return r.SI, nil
	default:
		return nil, fmt.Errorf("alignment requirement %s/%s: block %q is not a member", r.SI.ID, r.SJ.ID, b.ID)
	}
}

// Involves reports whether b is one of this requirement's two blocks.
func (r *AlignmentReq) Involves(b *Block) bool {
	return b == r.SI || b == r.SJ
}
