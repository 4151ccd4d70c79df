package engine

import "oh-server/models/schedule"

// OpensToday is set when the venue is currently open.
type OpensToday struct {
	Day       schedule.Weekday   `json:"day"`
	CloseTime schedule.TimeOfDay `json:"closeTime"`
}

// OpensNext is the best next-opening candidate found in the 0..6 day
// forward search. Slot is the concrete interval the venue opens with;
// Hours is the full day spec it was taken from.
type OpensNext struct {
	DaysAhead       int                 `json:"daysAhead"`
	Day             schedule.Weekday    `json:"day"`
	Hours           *schedule.HoursSpec `json:"hours"`
	Slot            schedule.Slot       `json:"slot"`
	OpensLaterToday bool                `json:"opensLaterToday"`
}

// EvaluationResult is the engine output handed to the external renderer.
// A query with no active section yields the zero result (IsOpen false,
// nil OpensToday/OpensNext, empty OpeningHours); that is data, not an
// error.
type EvaluationResult struct {
	IsOpen              bool                                            `json:"isOpen"`
	OpensToday          *OpensToday                                     `json:"opensToday,omitempty"`
	OpensNext           *OpensNext                                      `json:"opensNext,omitempty"`
	OpeningHours        map[schedule.Weekday]*schedule.HoursSpec        `json:"openingHours"`
	OpeningHoursGrouped map[string]map[schedule.Weekday][]schedule.Slot `json:"openingHoursGrouped,omitempty"`
}

// HasData reports whether any active section contributed hours.
func (r *EvaluationResult) HasData() bool {
	return len(r.OpeningHours) > 0
}
