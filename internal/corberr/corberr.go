// Package corberr defines the sentinel error kinds shared across the
// floorplanner, in the same flat errors.New + fmt.Errorf("...: %w", ...)
// style the teacher's codec package used for its own sentinel errors.
package corberr

import "errors"

var (
	// ErrConfigInvalid marks a rejected configuration value (missing key,
	// malformed number, non-positive layer count, outline, or loop limit).
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrInputMalformed marks a blocks/nets input file that could not be
	// parsed into the data model.
	ErrInputMalformed = errors.New("malformed input")

	// ErrInfeasible marks a run that never produced a layout fitting the
	// outline, after the full annealing schedule completed.
	ErrInfeasible = errors.New("no feasible layout found")

	// ErrIO marks a failure reading or writing a file.
	ErrIO = errors.New("i/o failure")
)
