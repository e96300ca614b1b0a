package datehelper

import "time"

// Helper carries the clock and default pattern used when a call leaves the
// date or the pattern unset. A Helper is immutable and safe for concurrent use.
type Helper struct {
	clock   Clock
	pattern string
}

type Option func(*Helper)

// WithClock sets the source of "now". A nil clock is ignored.
func WithClock(clock Clock) Option {
	return func(h *Helper) {
		if clock != nil {
			h.clock = clock
		}
	}
}

// WithPattern sets the pattern FormatDate uses when called with "".
// An empty pattern is ignored.
func WithPattern(pattern string) Option {
	return func(h *Helper) {
		if pattern != "" {
			h.pattern = pattern
		}
	}
}

func New(opts ...Option) *Helper {
	h := &Helper{
		clock:   SystemClock{},
		pattern: DefaultPattern,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// resolve returns date, or the current instant when date is the zero time.
func (h *Helper) resolve(date time.Time) time.Time {
	if date.IsZero() {
		return h.clock.Now()
	}
	return date
}

var std = New()

// FormatDate renders date with pattern, or with DefaultPattern when pattern is "".
func FormatDate(date time.Time, pattern string) string {
	return std.FormatDate(date, pattern)
}

// NextWeekday returns the next weekday after date. A zero date means now.
func NextWeekday(weekday Weekday, date time.Time) (time.Time, error) {
	return std.NextWeekday(weekday, date)
}

// NextWeekdayByName is NextWeekday with a case-insensitive weekday name.
func NextWeekdayByName(name string, date time.Time) (time.Time, error) {
	return std.NextWeekdayByName(name, date)
}

func NextSunday(date time.Time) time.Time    { return std.NextSunday(date) }
func NextMonday(date time.Time) time.Time    { return std.NextMonday(date) }
func NextTuesday(date time.Time) time.Time   { return std.NextTuesday(date) }
func NextWednesday(date time.Time) time.Time { return std.NextWednesday(date) }
func NextThursday(date time.Time) time.Time  { return std.NextThursday(date) }
func NextFriday(date time.Time) time.Time    { return std.NextFriday(date) }
func NextSaturday(date time.Time) time.Time  { return std.NextSaturday(date) }
