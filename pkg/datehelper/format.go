package datehelper

import (
	"time"

	"github.com/nleeper/goment"
)

// DefaultPattern renders dates as 23/11/2020.
const DefaultPattern = "DD/MM/YYYY"

// goment fills its token tables on first use without locking, so load them
// once here before any caller can reach moment concurrently.
func init() {
	_, _ = goment.New()
}

// FormatDate renders date with a moment-style token pattern (DD, MM, YYYY,
// dddd, HH:mm ...). An empty pattern means the helper's default pattern.
// Text that is not a token is copied through as-is.
func (h *Helper) FormatDate(date time.Time, pattern string) string {
	if pattern == "" {
		pattern = h.pattern
	}
	return moment(date).Format(pattern)
}

// moment wraps date for the goment calls.
func moment(date time.Time) *goment.Goment {
	// goment only returns an error for unparseable string input
	m, _ := goment.New(date)
	return m
}
