package mapping

import (
	"errors"
	"fmt"

	"namelist-generator/internal/diagnostic"
)

// ErrStructural is matched by every *StructuralError.
var ErrStructural = errors.New("structural template error")

// StructuralError reports a template that cannot be compiled.
type StructuralError struct {
	Template    string
	Diagnostics *diagnostic.Diagnostics
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("template %q: %v", e.Template, e.Diagnostics.Error())
}

func (e *StructuralError) Unwrap() error {
	return ErrStructural
}

// Codes returns the diagnostic codes carried by the error.
func (e *StructuralError) Codes() []string {
	return e.Diagnostics.Codes()
}

// DocumentError reports document data inconsistent with itself, such as a
// reference to an undeclared species. It aborts rendering.
type DocumentError struct {
	Target string
	Msg    string
}

func (e *DocumentError) Error() string {
	if e.Target == "" {
		return e.Msg
	}

	return e.Target + ": " + e.Msg
}

// NewDocumentError formats a *DocumentError.
func NewDocumentError(format string, args ...any) *DocumentError {
	return &DocumentError{Msg: fmt.Sprintf(format, args...)}
}
