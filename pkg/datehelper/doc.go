// Package datehelper finds the next occurrence of a day of the week relative
// to a reference date and formats dates with moment-style token patterns
// such as "DD/MM/YYYY".
//
//	sunday := datehelper.NextSunday(time.Time{}) // next Sunday from now
//
//	d := time.Date(2020, 7, 5, 0, 0, 0, 0, time.Local)
//	friday, err := datehelper.NextWeekdayByName("friday", d)
//	s := datehelper.FormatDate(friday, "") // "10/07/2020"
//
// Date arithmetic and rendering are delegated to github.com/nleeper/goment.
package datehelper
