package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record does not exist or is not owned by the
// requesting user. Ownership misses are deliberately indistinguishable from
// missing rows so handlers cannot leak other users' data.
var ErrNotFound = errors.New("record not found")

// ValidationError marks caller-fixable input problems: missing required
// fields or out-of-domain values. Controllers map it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
