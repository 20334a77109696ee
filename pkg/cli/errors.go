package cli

import (
	"errors"
	"fmt"
)

// ErrNoInput is returned when a command received no arguments and stdin was empty.
var ErrNoInput = errors.New("no input: pass values as arguments or on stdin")

// InvalidInputsError reports how many inputs a batch command rejected.
type InvalidInputsError struct {
	Invalid int
	Total   int
}

func (e *InvalidInputsError) Error() string {
	return fmt.Sprintf("%d of %d inputs invalid", e.Invalid, e.Total)
}
