package nominal

import (
	"errors"
	"fmt"

	"github.com/getmockd/nominal/pkg/uuid32"
)

var (
	// ErrTagMismatch is returned by FromTagged when the embedded tag differs
	// from the kind's tag.
	ErrTagMismatch = errors.New("tag mismatch")

	// ErrAlreadyBound is returned when a marker type is bound to a second tag.
	ErrAlreadyBound = errors.New("marker already bound")

	// ErrFormat and ErrInvalidCharacter are the codec errors surfaced by UUID kinds.
	ErrFormat           = uuid32.ErrFormat
	ErrInvalidCharacter = uuid32.ErrInvalidCharacter
)

// TagMismatchError reports tagged text whose tag is not the expected one.
type TagMismatchError struct {
	Input    string
	Expected string
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("expected tag %q in %q", e.Expected, e.Input)
}

// Is reports whether target is ErrTagMismatch.
func (e *TagMismatchError) Is(target error) bool { return target == ErrTagMismatch }
