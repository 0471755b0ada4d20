// Package cost implements the weighted, two-phase floorplan cost
// function (spec.md §4.4): an area/outline term present in both phases,
// and wirelength/TSV/thermal/alignment terms that switch in once the
// search has found its first feasible (fitting) layout.
package cost

import (
	"math"

	"github.com/cocosip/corblivar3d/internal/core"
	"github.com/cocosip/corblivar3d/internal/domain"
	"github.com/cocosip/corblivar3d/internal/geom"
	"github.com/cocosip/corblivar3d/internal/thermal"
)

// Weights holds the five configured cost-term weights (spec.md §6:
// cost_area_outline, cost_WL, cost_TSVs, cost_temp, cost_align).
type Weights struct {
	Area  float64
	WL    float64
	TSVs  float64
	Temp  float64
	Align float64
}

// Outline is the fixed die outline (Cx, Cy) every die's blocks-bounding
// box is measured against.
type Outline struct {
	X, Y float64
}

// Breakdown is the per-term result of one evaluation, reported by
// internal/ioformat's results writer and used internally to decide
// accept/reject and best-tracking.
type Breakdown struct {
	Total       float64
	AreaOutline float64
	WL          float64
	TSVs        float64
	Thermal     float64
	Align       float64

	Fits              bool
	MaxDieOccupation  float64
	TSVCount          int
}

// maxima are the per-term normalization maxima latched at the first
// phase-two evaluation (spec.md §4.4, "Normalization"; §9, "Maxima
// captured at initial sampling").
type maxima struct {
	wl, tsvs, temp, align float64
	latched               bool
}

// Evaluator holds configuration and the latched normalization maxima
// across a run; it is NOT safe for concurrent use (the SA driver is
// single-threaded, spec.md §5).
type Evaluator struct {
	Weights Weights
	Outline Outline
	Layers  int
	Nets    []*domain.Net

	grid *thermal.Grid
	max  maxima
}

// NewEvaluator constructs an Evaluator. grid may be nil to disable the
// thermal term (it then contributes zero in phase two).
func NewEvaluator(w Weights, outline Outline, layers int, nets []*domain.Net, grid *thermal.Grid) *Evaluator {
	return &Evaluator{Weights: w, Outline: outline, Layers: layers, Nets: nets, grid: grid}
}

// Evaluate computes the cost of the layout currently decoded into c's
// dies. phaseTwo selects the richer cost function; r is the running
// feasibility ratio the SA driver pins for the duration of one inner
// step (spec.md §9).
func (e *Evaluator) Evaluate(c *core.Core, phaseTwo bool, r float64) Breakdown {
	areaOutline, fits, maxOcc := e.areaOutlineTerm(c, r)

	bd := Breakdown{
		AreaOutline:      areaOutline,
		Fits:             fits,
		MaxDieOccupation: maxOcc,
	}

	if !phaseTwo {
		if e.Weights.Area == 0 {
			bd.Total = areaOutline
		} else {
			bd.Total = areaOutline / e.Weights.Area
		}
		return bd
	}

	wl, tsvCount := e.wirelengthAndTSVs()
	var temp float64
	if e.grid != nil {
		temp = e.thermalTerm(c)
	}
	align := e.alignmentTerm(c)

	if !e.max.latched {
		e.max.wl, e.max.tsvs, e.max.temp, e.max.align = wl, float64(tsvCount), temp, align
		e.max.latched = true
	}

	bd.WL = normalize(wl, e.max.wl)
	bd.TSVs = normalize(float64(tsvCount), e.max.tsvs)
	bd.Thermal = normalize(temp, e.max.temp)
	bd.Align = normalize(align, e.max.align)
	bd.TSVCount = tsvCount

	bd.Total = e.Weights.WL*bd.WL + e.Weights.TSVs*bd.TSVs + e.Weights.Temp*bd.Thermal +
		e.Weights.Align*bd.Align + areaOutline
	return bd
}

func normalize(v, max float64) float64 {
	if max == 0 {
		return v
	}
	return v / max
}

// areaOutlineTerm implements spec.md §4.4's area & outline term,
// present in both phases.
func (e *Evaluator) areaOutlineTerm(c *core.Core, r float64) (term float64, fits bool, maxOcc float64) {
	fits = true
	targetAR := 1.0
	if e.Outline.Y != 0 {
		targetAR = e.Outline.X / e.Outline.Y
	}

	var costOutline, costArea float64
	for _, d := range c.Dies {
		ox, oy := dieOutlineExtent(d)
		ax := ox / e.Outline.X
		ay := oy / e.Outline.Y
		if ax > 1 || ay > 1 {
			fits = false
		}

		occ := (ox * oy) / (e.Outline.X * e.Outline.Y)
		if occ > maxOcc {
			maxOcc = occ
		}
		if occ > costArea {
			costArea = occ
		}

		ar := targetAR
		if oy != 0 {
			ar = ox / oy
		}
		d2 := ar - targetAR
		d2 *= d2
		if d2 > costOutline {
			costOutline = d2
		}
	}

	term = 0.5 * e.Weights.Area * ((1-r)*costOutline + (1+r)*costArea)
	return term, fits, maxOcc
}

// thermalPowerDensity is the uniform per-area power assumed for every
// block: spec.md §4.4 only requires a "non-negative scalar ... bounded,
// non-decreasing in overlap" and leaves true per-block power out of
// scope (no input format carries it), so every block contributes power
// proportional to its own footprint.
const thermalPowerDensity = 1.0

// thermalTerm repopulates the thermal grid from the layout currently
// decoded into c's dies and returns the resulting peak spread
// temperature. The grid is reset every evaluation rather than
// accumulated across evaluations, since block coordinates are rewritten
// from scratch by every decode (spec.md §3).
func (e *Evaluator) thermalTerm(c *core.Core) float64 {
	e.grid.Reset()
	for _, b := range c.Arena.Blocks() {
		e.grid.AccumulateBlock(b, thermalPowerDensity)
	}
	return e.grid.MaxTemperature()
}

// dieOutlineExtent returns the (Ox, Oy) blocks-bounding outline for a
// die: the maximum upper-right corner over all blocks currently placed
// on it.
func dieOutlineExtent(d interface{ Blocks() []geom.Rect }) (float64, float64) {
	var ox, oy float64
	for _, bb := range d.Blocks() {
		if bb.UR.X > ox {
			ox = bb.UR.X
		}
		if bb.UR.Y > oy {
			oy = bb.UR.Y
		}
	}
	return ox, oy
}

// wirelengthAndTSVs implements spec.md §4.4's wirelength & TSV term
// (phase two only): per net, walk layer-by-layer collecting bounding
// boxes, accumulating HPWL and TSV spans.
func (e *Evaluator) wirelengthAndTSVs() (hpwl float64, tsvs int) {
	for _, net := range e.Nets {
		net.SetLayerBoundaries(e.Layers - 1)
		perLayer := make(map[int][]geom.Rect)
		for _, b := range net.Blocks {
			perLayer[b.Layer] = append(perLayer[b.Layer], b.BB)
		}

		for i := net.LayerBottom; i <= net.LayerTop; i++ {
			boxes, ok := perLayer[i]
			if !ok {
				continue
			}
			ii := nextPopulatedLayer(perLayer, i+1, net.LayerTop)
			if ii == -1 {
				continue
			}
			boxes = append(append([]geom.Rect{}, boxes...), perLayer[ii]...)
			tsvs += ii - i
			bb := geom.BoundingBox(boxes)
			hpwl += bb.Width() + bb.Height()
		}
	}
	return hpwl, tsvs
}

func nextPopulatedLayer(perLayer map[int][]geom.Rect, from, to int) int {
	for i := from; i <= to; i++ {
		if len(perLayer[i]) > 0 {
			return i
		}
	}
	return -1
}

// alignmentTerm implements spec.md §4.4's alignment term (phase two
// only): squared deviation for OFFSET, squared distance-from-interval
// for RANGE.
func (e *Evaluator) alignmentTerm(c *core.Core) float64 {
	var total float64
	for _, req := range c.Aligns {
		total += axisPenalty(req.X, req.SI.BB.LL.X, req.SJ.BB.LL.X)
		total += axisPenalty(req.Y, req.SI.BB.LL.Y, req.SJ.BB.LL.Y)
	}
	return total
}

func axisPenalty(axis domain.AxisConstraint, ci, cj float64) float64 {
	offset := cj - ci
	switch axis.Kind {
	case domain.AlignOffset:
		d := offset - axis.Value
		return d * d
	case domain.AlignRange:
		abs := math.Abs(offset)
		if abs <= axis.Value {
			return 0
		}
		d := abs - axis.Value
		return d * d
	default:
		return 0
	}
}
