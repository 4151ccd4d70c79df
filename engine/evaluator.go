package engine

import (
	"time"

	"oh-server/models/schedule"
)

// HolidayLookup answers whether a concrete date is a public holiday.
type HolidayLookup interface {
	Lookup(year int, month time.Month, day int) (string, bool)
}

// Evaluate computes the venue's open/closed state at "now", the next
// opening moment within the coming week, and the flattened (and
// optionally grouped) weekly hours view. It is a pure function of its
// inputs and keeps no state between calls.
func Evaluate(cfg *schedule.ScheduleConfig, now time.Time, holidays HolidayLookup) *EvaluationResult {
	result := &EvaluationResult{
		OpeningHours: make(map[schedule.Weekday]*schedule.HoursSpec),
	}
	if cfg == nil {
		return result
	}
	if cfg.GroupedDays {
		result.OpeningHoursGrouped = make(map[string]map[schedule.Weekday][]schedule.Slot)
	}

	todayIdx := schedule.WeekdayOf(now).Index()
	nowTime := schedule.TimeOfDayFrom(now)
	todayIsHoliday := false
	if holidays != nil {
		_, todayIsHoliday = holidays.Lookup(now.Year(), now.Month(), now.Day())
	}

	var best *OpensNext

	for _, section := range ActiveSections(cfg.Sections, now) {
		for _, day := range schedule.Weekdays() {
			hours, ok := section.Times[day]
			if !ok || hours == nil {
				continue
			}

			// Signed day offset wrapped into 0..6, so "next occurrence"
			// always looks forward; 0 means today.
			diffInDays := day.Index() - todayIdx
			if diffInDays < 0 {
				diffInDays += 7
			}

			// Holidays suppress the currently-open check for today; the
			// day still participates in the next-opening search.
			consumedAsOpen := false
			if diffInDays == 0 && !todayIsHoliday {
				if opens, ok := currentState(hours, now, nowTime); ok {
					result.IsOpen = true
					result.OpensToday = opens
					consumedAsOpen = true
				}
			}

			if cfg.GroupedDays && hours.Group != "" {
				group := result.OpeningHoursGrouped[hours.Group]
				if group == nil {
					group = make(map[schedule.Weekday][]schedule.Slot)
					result.OpeningHoursGrouped[hours.Group] = group
				}
				group[day] = hours.SlotList()
			}
			result.OpeningHours[day] = hours

			if consumedAsOpen {
				continue
			}
			if candidate := nextCandidate(day, hours, diffInDays, nowTime); candidate != nil {
				best = betterCandidate(best, candidate)
			}
		}
	}

	result.OpensNext = best
	return result
}

// currentState decides whether "now" falls inside today's hours. The
// multi-slot form uses half-open [open, close) windows per slot; the
// single form is inclusive on both ends.
func currentState(hours *schedule.HoursSpec, now time.Time, nowTime schedule.TimeOfDay) (*OpensToday, bool) {
	day := schedule.WeekdayOf(now)
	if hours.Multi() {
		for _, slot := range hours.Slots {
			if !slot.Open.After(nowTime) && nowTime.Before(slot.Close) {
				return &OpensToday{Day: day, CloseTime: slot.Close}, true
			}
		}
		return nil, false
	}
	openAt := hours.Open.At(now)
	closeAt := hours.Close.At(now)
	if !now.Before(openAt) && !now.After(closeAt) {
		return &OpensToday{Day: day, CloseTime: *hours.Close}, true
	}
	return nil, false
}

// nextCandidate builds the day's next-opening candidate, or nil when the
// day has nothing ahead: for today that means every slot has already
// opened (an elapsed slot cannot reopen later today). Future days prefer
// the slot whose window contains the current time-of-day projected onto
// that day, falling back to the earliest slot.
func nextCandidate(day schedule.Weekday, hours *schedule.HoursSpec, diffInDays int, nowTime schedule.TimeOfDay) *OpensNext {
	slots := hours.SlotList()
	if len(slots) == 0 {
		return nil
	}
	if diffInDays == 0 {
		for _, slot := range slots {
			if slot.Open.After(nowTime) {
				return &OpensNext{
					DaysAhead:       0,
					Day:             day,
					Hours:           hours,
					Slot:            slot,
					OpensLaterToday: true,
				}
			}
		}
		return nil
	}
	chosen := slots[0]
	for _, slot := range slots {
		if !slot.Open.After(nowTime) && nowTime.Before(slot.Close) {
			chosen = slot
			break
		}
	}
	return &OpensNext{
		DaysAhead: diffInDays,
		Day:       day,
		Hours:     hours,
		Slot:      chosen,
	}
}

// betterCandidate folds a new candidate into the running best one: a
// strictly smaller day offset wins, and among today-remaining candidates
// the earlier open time wins. Equal offsets on future days keep the
// first candidate seen.
func betterCandidate(best, candidate *OpensNext) *OpensNext {
	if best == nil {
		return candidate
	}
	if candidate.DaysAhead < best.DaysAhead {
		return candidate
	}
	if candidate.DaysAhead == 0 && best.DaysAhead == 0 && candidate.Slot.Open.Before(best.Slot.Open) {
		return candidate
	}
	return best
}
