package datehelper

import (
	"errors"
	"fmt"
)

// ErrInvalidWeekday is matched by every *InvalidWeekdayError via errors.Is.
var ErrInvalidWeekday = errors.New("invalid day of week")

// InvalidWeekdayError is returned when a weekday code is outside [0,6] or a
// name does not match one of the seven weekdays. Value holds the offending
// input as given: a Weekday or a string.
type InvalidWeekdayError struct {
	Value any
}

func (e *InvalidWeekdayError) Error() string {
	switch v := e.Value.(type) {
	case string:
		return fmt.Sprintf("%s %q", ErrInvalidWeekday, v)
	case Weekday:
		return fmt.Sprintf("%s %d", ErrInvalidWeekday, int(v))
	default:
		return fmt.Sprintf("%s %v", ErrInvalidWeekday, v)
	}
}

func (e *InvalidWeekdayError) Is(target error) bool {
	return target == ErrInvalidWeekday
}
