package ioformat

import (
	"fmt"
	"io"

	"github.com/cocosip/corblivar3d/internal/die"
)

// WritePlot writes one coordinate record per placed block on d:
// `<id> <llx> <lly> <urx> <ury>`, suitable input for a plotting tool —
// mirrors original_source's IO::writeFloorplanGP.
func WritePlot(w io.Writer, d *die.Die) error {
	for i := 0; i < d.CBL.Len(); i++ {
		b := d.CBL.Block(i)
		if _, err := fmt.Fprintf(w, "%s %g %g %g %g\n", b.ID, b.BB.LL.X, b.BB.LL.Y, b.BB.UR.X, b.BB.UR.Y); err != nil {
			return err
		}
	}
	return nil
}
