package form

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-yamlform/pkg/schema"
)

// ErrLocked is returned by Load while an export is in flight; the schema
// cannot be swapped out from under a running export.
var ErrLocked = errors.New("form: model is locked during export")

// TypeMismatchError reports a Set whose value does not classify to the
// field's frozen kind. The assignment was rejected and the prior value
// retained.
type TypeMismatchError struct {
	Path Path
	Want schema.Kind
	Got  schema.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("form: %s: cannot assign %s value to %s field", e.Path, e.Got, e.Want)
}

// PathError reports a Get or Set addressed at a position the schema does
// not have.
type PathError struct {
	Path Path
}

func (e *PathError) Error() string {
	return fmt.Sprintf("form: no field at %q", e.Path.String())
}
