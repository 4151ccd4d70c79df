package engine

import (
	"time"

	"oh-server/models/schedule"
)

// ResolvedSeasonWindow is a section's recurring month-day window resolved
// to absolute dates around a concrete "today".
type ResolvedSeasonWindow struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls strictly inside the window.
func (w ResolvedSeasonWindow) Contains(t time.Time) bool {
	return w.From.Before(t) && w.To.After(t)
}

// ResolveWindow anchors a section's valid-from/valid-to month-days to the
// year of "today". Windows that wrap the year boundary (e.g. Oct -> Apr)
// shift the start back or the end forward by one year depending on where
// today sits relative to the wrap.
func ResolveWindow(section schedule.SeasonSection, today time.Time) ResolvedSeasonWindow {
	fromYear := today.Year()
	toYear := today.Year()

	fromMonth := int(section.ValidFrom.Month)
	toMonth := int(section.ValidTo.Month)
	nowMonth := int(today.Month())

	switch {
	case fromMonth > nowMonth && toMonth > nowMonth && fromMonth > toMonth:
		// Wrapping window that started last year.
		fromYear--
	case fromMonth > nowMonth && toMonth <= nowMonth && fromMonth > toMonth:
		// Wrapping window that ends next year.
		toYear++
	case fromMonth <= nowMonth && toMonth < nowMonth && fromMonth > toMonth:
		// Already inside a wrapping window; the end is next year.
		toYear++
	}

	loc := today.Location()
	return ResolvedSeasonWindow{
		From: time.Date(fromYear, section.ValidFrom.Month, section.ValidFrom.Day, 0, 0, 0, 0, loc),
		To:   time.Date(toYear, section.ValidTo.Month, section.ValidTo.Day, 0, 0, 0, 0, loc),
	}
}

// ActiveSections filters the sections whose resolved window contains
// "today", preserving declaration order. Overlapping sections are allowed;
// downstream the later section wins per weekday.
func ActiveSections(sections []schedule.SeasonSection, today time.Time) []schedule.SeasonSection {
	var active []schedule.SeasonSection
	for _, section := range sections {
		if ResolveWindow(section, today).Contains(today) {
			active = append(active, section)
		}
	}
	return active
}
