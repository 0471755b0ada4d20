package ioformat

import (
	"fmt"
	"io"
)

// ThermalMapWriter is the subset of *thermal.Grid this file needs; kept
// as a narrow interface so ioformat does not import internal/thermal's
// full API surface just to format one field.
type ThermalMapWriter interface {
	Dims() (cols, rows, layers int)
	TilePower(layer, col, row int) float64
}

// WriteThermalMaps emits the power/thermal map files an external
// analyzer (e.g. a HotSpot-style tool) would consume, one block of
// `col row power` records per layer. No external process is invoked;
// this is a stub per spec.md's Non-goals around true thermal
// simulation (SPEC_FULL.md §6.5).
func WriteThermalMaps(w io.Writer, g ThermalMapWriter) error {
	cols, rows, layers := g.Dims()
	for l := 0; l < layers; l++ {
		fmt.Fprintf(w, "layer %d\n", l)
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				fmt.Fprintf(w, "%d %d %g\n", col, row, g.TilePower(l, col, row))
			}
		}
	}
	return nil
}
