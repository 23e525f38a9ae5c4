package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownField = errors.New("unknown booking field")

	ErrInvalidFieldValue = errors.New("invalid value type for booking field")

	ErrUnknownService = errors.New("service is not in the catalog")

	ErrUnknownTimeSlot = errors.New("time is not a bookable slot")

	ErrDateNotSelectable = errors.New("date is in the past or on a weekend")

	ErrAlreadySubmitted = errors.New("booking request already submitted")
)

// PreconditionError is returned when a submit is attempted before every
// required field is filled in. The session state is left unchanged.
type PreconditionError struct {
	Missing []string
}

func (e *PreconditionError) Error() string {
	if len(e.Missing) == 0 {
		return "booking request is incomplete"
	}
	return fmt.Sprintf("booking request is incomplete: missing %s", strings.Join(e.Missing, ", "))
}
