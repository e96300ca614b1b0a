package datehelper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_FormatDate(t *testing.T) {
	sunday := NextSunday(fromDate)

	tests := []struct {
		name    string
		date    time.Time
		pattern string
		want    string
	}{
		{name: "Should use DD/MM/YYYY by default", date: sunday, pattern: "", want: "17/05/2020"},
		{name: "Should use given pattern", date: sunday, pattern: "YYYY.MM.DD", want: "2020.05.17"},
		{name: "Should zero pad day and month", date: time.Date(2020, 1, 3, 0, 0, 0, 0, time.Local), pattern: "", want: "03/01/2020"},
		{name: "Should render time tokens", date: sunday, pattern: "YYYY-MM-DD HH:mm", want: "2020-05-17 10:30"},
		{name: "Should copy text without tokens", date: sunday, pattern: "/-/", want: "/-/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.date, tt.pattern))
		})
	}
}

func Test_FormatDate_Stable(t *testing.T) {
	for _, pattern := range []string{"", "YYYY.MM.DD", "DD-MM-YYYY HH:mm:ss"} {
		assert.Equal(t, FormatDate(fromDate, pattern), FormatDate(fromDate, pattern))
	}
}

func Test_Helper_FormatDate_WithPattern(t *testing.T) {
	_, h, ctrl := newHelperTestMock(t, WithPattern("YYYY-MM-DD"))
	defer ctrl.Finish()

	assert.Equal(t, "2020-05-14", h.FormatDate(fromDate, ""))
	assert.Equal(t, "14/05/2020", h.FormatDate(fromDate, DefaultPattern))
}

func Test_New_IgnoresEmptyOptions(t *testing.T) {
	h := New(WithPattern(""), WithClock(nil))

	assert.Equal(t, DefaultPattern, h.pattern)
	assert.IsType(t, SystemClock{}, h.clock)
	assert.Equal(t, "14/05/2020", h.FormatDate(fromDate, ""))
}
