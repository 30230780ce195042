package utils

import "time"

// Вся арифметика дат в сервисе привязана к календарю UTC.

// StartOfDayUTC возвращает полночь UTC запрошенной даты.
func StartOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDayUTC возвращает последнюю секунду суток, 23:59:59 UTC.
func EndOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
}

// AnchorWallClock привязывает время суток к конкретной дате в UTC.
func AnchorWallClock(date time.Time, wallClock time.Time) time.Time {
	date = date.UTC()
	return time.Date(date.Year(), date.Month(), date.Day(),
		wallClock.Hour(), wallClock.Minute(), wallClock.Second(), 0, time.UTC)
}
