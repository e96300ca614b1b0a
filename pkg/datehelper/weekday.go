package datehelper

import (
	"strconv"
	"strings"
)

// Weekday is a day of the week, Sunday = 0 ... Saturday = 6.
// The zero value is Sunday.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// weekdays maps the canonical uppercase names to their codes
var weekdays = map[string]Weekday{
	"SUNDAY":    Sunday,
	"MONDAY":    Monday,
	"TUESDAY":   Tuesday,
	"WEDNESDAY": Wednesday,
	"THURSDAY":  Thursday,
	"FRIDAY":    Friday,
	"SATURDAY":  Saturday,
}

// weekdayNames maps weekday codes to their English names
var weekdayNames = map[Weekday]string{
	Sunday:    "Sunday",
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

// Weekdays returns the canonical name table (SUNDAY: 0 ... SATURDAY: 6).
// The result is a copy; the package table never changes.
func Weekdays() map[string]Weekday {
	out := make(map[string]Weekday, len(weekdays))
	for name, day := range weekdays {
		out[name] = day
	}
	return out
}

// ParseWeekday resolves one of the seven weekday names, ignoring case.
func ParseWeekday(name string) (Weekday, error) {
	day, ok := weekdays[strings.ToUpper(name)]
	if !ok {
		return 0, &InvalidWeekdayError{Value: name}
	}
	return day, nil
}

// Valid reports whether d is one of the seven weekday codes.
func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

func (d Weekday) String() string {
	if name, ok := weekdayNames[d]; ok {
		return name
	}
	return "Weekday(" + strconv.Itoa(int(d)) + ")"
}
