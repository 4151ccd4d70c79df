package holiday

import (
	"sort"
	"time"
)

// Holiday is one public holiday resolved for a concrete year.
type Holiday struct {
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
	Name  string     `json:"name"`
}

// fixedHolidays fall on the same date every year.
var fixedHolidays = []Holiday{
	{time.January, 1, "Neujahr"},
	{time.January, 6, "Heilige Drei Könige"},
	{time.May, 1, "Erster Mai"},
	{time.August, 15, "Mariä Himmelfahrt"},
	{time.November, 1, "Allerheiligen"},
	{time.December, 24, "Heiliger Abend"},
	{time.December, 25, "Christtag"},
	{time.December, 26, "Stefanitag"},
}

// easterOffsets are the movable holidays as day offsets from Easter Sunday.
var easterOffsets = []struct {
	Days int
	Name string
}{
	{0, "Ostersonntag"},
	{1, "Ostermontag"},
	{39, "Christi Himmelfahrt"},
	{49, "Pfingstsonntag"},
	{50, "Pfingstmontag"},
	{60, "Fronleichnam"},
}

// Easter returns the Gregorian Easter Sunday for the given year using the
// Meeus/Jones/Butcher algorithm.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Calculator answers holiday lookups. It is stateless; the movable dates
// are an O(1) derivation per queried year.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Lookup returns the holiday name for the given date, if any. An invalid
// Gregorian date (e.g. Feb 30) is simply not a holiday.
func (c *Calculator) Lookup(year int, month time.Month, day int) (string, bool) {
	if !validDate(year, month, day) {
		return "", false
	}
	for _, h := range fixedHolidays {
		if h.Month == month && h.Day == day {
			return h.Name, true
		}
	}
	easter := Easter(year)
	for _, off := range easterOffsets {
		// AddDate normalizes month/day, so offsets crossing a month
		// boundary (e.g. +60) resolve correctly.
		d := easter.AddDate(0, 0, off.Days)
		if d.Month() == month && d.Day() == day {
			return off.Name, true
		}
	}
	return "", false
}

// IsHoliday is a convenience wrapper over Lookup for a point in time.
func (c *Calculator) IsHoliday(t time.Time) (string, bool) {
	return c.Lookup(t.Year(), t.Month(), t.Day())
}

// ForYear returns every holiday of the given year, sorted by date.
func (c *Calculator) ForYear(year int) []Holiday {
	holidays := make([]Holiday, 0, len(fixedHolidays)+len(easterOffsets))
	holidays = append(holidays, fixedHolidays...)

	easter := Easter(year)
	for _, off := range easterOffsets {
		d := easter.AddDate(0, 0, off.Days)
		holidays = append(holidays, Holiday{Month: d.Month(), Day: d.Day(), Name: off.Name})
	}

	sort.Slice(holidays, func(i, j int) bool {
		if holidays[i].Month != holidays[j].Month {
			return holidays[i].Month < holidays[j].Month
		}
		return holidays[i].Day < holidays[j].Day
	})
	return holidays
}

func validDate(year int, month time.Month, day int) bool {
	if month < time.January || month > time.December || day < 1 {
		return false
	}
	// Day 0 of the next month is the last day of this month.
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return day <= lastDay
}
