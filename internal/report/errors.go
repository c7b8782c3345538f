package report

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned when the structure has zero sections.
// No artifact is produced.
var ErrEmptyDocument = errors.New("report: document structure has no sections")

// AssemblyError wraps a failure to build or write the artifact. The
// underlying cause is preserved for errors.Is/As.
type AssemblyError struct {
	Path string
	Err  error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("report: assemble %s: %v", e.Path, e.Err)
}

func (e *AssemblyError) Unwrap() error {
	return e.Err
}
