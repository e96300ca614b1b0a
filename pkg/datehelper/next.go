package datehelper

import "time"

// NextWeekday returns the first date strictly after date that falls on
// weekday, keeping date's time of day and location. When date already falls
// on weekday the result is one week later, never date itself.
// A zero date is replaced by the helper clock's current instant.
func (h *Helper) NextWeekday(weekday Weekday, date time.Time) (time.Time, error) {
	if !weekday.Valid() {
		return time.Time{}, &InvalidWeekdayError{Value: weekday}
	}

	m := moment(h.resolve(date))

	days := (int(weekday) + (7 - m.Day())) % 7
	if days == 0 {
		days = 7
	}

	return m.Add(days, "days").ToTime(), nil
}

// NextWeekdayByName resolves name with ParseWeekday and calls NextWeekday.
func (h *Helper) NextWeekdayByName(name string, date time.Time) (time.Time, error) {
	weekday, err := ParseWeekday(name)
	if err != nil {
		return time.Time{}, err
	}
	return h.NextWeekday(weekday, date)
}

// next is for the fixed weekday wrappers, whose codes are always valid.
func (h *Helper) next(weekday Weekday, date time.Time) time.Time {
	t, _ := h.NextWeekday(weekday, date)
	return t
}

func (h *Helper) NextSunday(date time.Time) time.Time    { return h.next(Sunday, date) }
func (h *Helper) NextMonday(date time.Time) time.Time    { return h.next(Monday, date) }
func (h *Helper) NextTuesday(date time.Time) time.Time   { return h.next(Tuesday, date) }
func (h *Helper) NextWednesday(date time.Time) time.Time { return h.next(Wednesday, date) }
func (h *Helper) NextThursday(date time.Time) time.Time  { return h.next(Thursday, date) }
func (h *Helper) NextFriday(date time.Time) time.Time    { return h.next(Friday, date) }
func (h *Helper) NextSaturday(date time.Time) time.Time  { return h.next(Saturday, date) }
