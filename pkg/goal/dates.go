package goal

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// WeekInfo identifies a Monday-based week. StartDate is the Monday, EndDate
// the Sunday, both UTC midnight. Computed on demand, never persisted.
type WeekInfo struct {
	WeekNumber int
	Year       int
	StartDate  time.Time
	EndDate    time.Time
}

// Key returns the stable identifier for the week: the Monday's ISO date.
func (w WeekInfo) Key() string {
	return DayKey(w.StartDate)
}

// WeekOf computes the WeekInfo containing the given date.
func WeekOf(d time.Time) WeekInfo {
	d = Midnight(d)
	offset := (int(d.Weekday()) + 6) % 7 // days since Monday
	monday := d.AddDate(0, 0, -offset)
	year, week := monday.ISOWeek()
	return WeekInfo{
		WeekNumber: week,
		Year:       year,
		StartDate:  monday,
		EndDate:    monday.AddDate(0, 0, 6),
	}
}

// DayKey formats a date as YYYY-MM-DD.
func DayKey(d time.Time) string {
	return d.Format(dayLayout)
}

// WeekKey returns the week key (Monday's ISO date) for the week containing d.
func WeekKey(d time.Time) string {
	return WeekOf(d).Key()
}

// MonthKey formats a year/month as YYYY-MM.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ParseDay parses a YYYY-MM-DD key into a UTC midnight time.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(dayLayout, s)
}

// Midnight truncates a time to UTC midnight of its calendar date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// MonthBounds returns the first and last day of a calendar month.
func MonthBounds(year int, month time.Month) (first, last time.Time) {
	first = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// overlaps reports whether the inclusive intervals [aStart,aEnd] and
// [bStart,bEnd] share at least one day.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}
