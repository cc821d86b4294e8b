package calendar

import "time"

// Calendar dates are carried as midnight UTC so that day arithmetic never
// crosses a DST transition of the program location.

func civilDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dateIn returns the calendar day t falls on in loc.
func dateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return civilDate(y, m, d)
}

// dateOf keeps the wall-clock day of t regardless of its location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return civilDate(y, m, d)
}

func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// nextFriday returns t when it is a Friday, otherwise the following Friday.
func nextFriday(t time.Time) time.Time {
	offset := (int(time.Friday) - int(t.Weekday()) + 7) % 7
	return addDays(t, offset)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
