package ioformat

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/cocosip/corblivar3d/internal/die"
)

// WriteSolution serializes every die's CBL, framed by a `data_start`
// marker and per-die `CBL [ <id> ]` headers, tuples printed as
// `( id dir T w h )` — the canonical solution-file format spec.md §6
// describes.
func WriteSolution(w io.Writer, runID uuid.UUID, dies []*die.Die) error {
	if _, err := fmt.Fprintf(w, "# run_id %s\n", runID); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "data_start"); err != nil {
		return err
	}
	for _, d := range dies {
		if _, err := fmt.Fprintf(w, "CBL [ %d ]\n", d.ID); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, d.CBL.String()); err != nil {
			return err
		}
	}
	return nil
}
