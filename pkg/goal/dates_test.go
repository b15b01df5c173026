package goal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekOf(t *testing.T) {
	// 2024-01-10 is a Wednesday; its week runs Mon 2024-01-08 to Sun 2024-01-14.
	w := WeekOf(date(2024, time.January, 10))
	assert.Equal(t, date(2024, time.January, 8), w.StartDate)
	assert.Equal(t, date(2024, time.January, 14), w.EndDate)
	assert.Equal(t, "2024-01-08", w.Key())
	assert.Equal(t, 2, w.WeekNumber)
	assert.Equal(t, 2024, w.Year)
}

func TestWeekOfMonday(t *testing.T) {
	w := WeekOf(date(2024, time.January, 8))
	assert.Equal(t, date(2024, time.January, 8), w.StartDate)
}

func TestWeekOfSunday(t *testing.T) {
	// Sunday belongs to the week starting the previous Monday.
	w := WeekOf(date(2024, time.January, 14))
	assert.Equal(t, date(2024, time.January, 8), w.StartDate)
}

func TestWeekOfYearBoundary(t *testing.T) {
	// 2024-01-01 is a Monday in ISO week 1 of 2024.
	w := WeekOf(date(2024, time.January, 1))
	assert.Equal(t, "2024-01-01", w.Key())

	// 2023-01-01 is a Sunday; its Monday is 2022-12-26, ISO week 52 of 2022.
	w = WeekOf(date(2023, time.January, 1))
	assert.Equal(t, "2022-12-26", w.Key())
	assert.Equal(t, 2022, w.Year)
	assert.Equal(t, 52, w.WeekNumber)
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-01", MonthKey(2024, time.January))
	assert.Equal(t, "2024-12", MonthKey(2024, time.December))
}

func TestDayKeyRoundTrip(t *testing.T) {
	d, err := ParseDay("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", DayKey(d))
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2024, time.February)
	assert.Equal(t, date(2024, time.February, 1), first)
	assert.Equal(t, date(2024, time.February, 29), last)
}
