package datehelper

import "time"

//go:generate mockgen -destination=../../mocks/mock_clock.go -package=mocks -mock_names=Clock=MockClock . Clock

// Clock supplies the current instant for calls that leave the date unset.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
