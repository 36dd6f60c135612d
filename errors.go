package csg

import (
	"errors"
	"fmt"
)

// ErrDegenerate is matched by every DegenerateError through errors.Is.
var ErrDegenerate = errors.New("degenerate geometry")

// DegenerateError reports a shape whose extent is non-positive, most often
// caused by inconsistent part parameters. It is returned before the shape
// reaches a geometry kernel.
type DegenerateError struct {
	Op     string // operation or part that produced the shape
	Reason string
}

// Degeneratef returns a DegenerateError for op with a formatted reason.
func Degeneratef(op, format string, args ...interface{}) error {
	return &DegenerateError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

func (e *DegenerateError) Error() string {
	return "degenerate " + e.Op + ": " + e.Reason
}

// Is reports whether target is ErrDegenerate.
func (e *DegenerateError) Is(target error) bool {
	return target == ErrDegenerate
}
