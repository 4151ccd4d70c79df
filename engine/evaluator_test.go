package engine

import (
	"encoding/json"
	"testing"
	"time"

	"oh-server/holiday"
	"oh-server/models/schedule"
)

func timeOfDay(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
	}
	return tod
}

func singleHours(t *testing.T, open, close string) *schedule.HoursSpec {
	t.Helper()
	o := timeOfDay(t, open)
	c := timeOfDay(t, close)
	return &schedule.HoursSpec{Open: &o, Close: &c}
}

func fullYearSection(t *testing.T, times map[schedule.Weekday]*schedule.HoursSpec) schedule.SeasonSection {
	t.Helper()
	return schedule.SeasonSection{
		Name:      "default",
		ValidFrom: mustMonthDay(t, "01-01"),
		ValidTo:   mustMonthDay(t, "12-31"),
		Times:     times,
	}
}

func allWeek(t *testing.T, open, close string) map[schedule.Weekday]*schedule.HoursSpec {
	t.Helper()
	times := make(map[schedule.Weekday]*schedule.HoursSpec)
	for _, day := range schedule.Weekdays() {
		times[day] = singleHours(t, open, close)
	}
	return times
}

func TestEvaluate_CurrentlyOpenSingleSlot(t *testing.T) {
	cfg := &schedule.ScheduleConfig{
		Sections: []schedule.SeasonSection{fullYearSection(t, allWeek(t, "09:00", "17:00"))},
	}
	// Monday 10:00
	now := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

	result := Evaluate(cfg, now, holiday.NewCalculator())

	if !result.IsOpen {
		t.Fatal("expected venue to be open")
	}
	if result.OpensToday == nil {
		t.Fatal("expected opensToday to be set when open")
	}
	if result.OpensToday.Day != schedule.Monday {
		t.Errorf("opensToday.Day = %s, want Monday", result.OpensToday.Day)
	}
	if got := result.OpensToday.CloseTime.String(); got != "17:00" {
		t.Errorf("opensToday.CloseTime = %s, want 17:00", got)
	}
	// The open day must not be its own next-opening candidate.
	if result.OpensNext == nil {
		t.Fatal("expected opensNext from the other weekdays")
	}
	if result.OpensNext.DaysAhead != 1 || result.OpensNext.Day != schedule.Tuesday {
		t.Errorf("opensNext = %d days ahead on %s, want 1 on Tuesday",
			result.OpensNext.DaysAhead, result.OpensNext.Day)
	}
}

func TestEvaluate_MultiSlotGapOpensLaterToday(t *testing.T) {
	times := map[schedule.Weekday]*schedule.HoursSpec{
		schedule.Tuesday: {
			Slots: []schedule.Slot{
				{Open: timeOfDay(t, "09:00"), Close: timeOfDay(t, "12:00")},
				{Open: timeOfDay(t, "14:00"), Close: timeOfDay(t, "18:00")},
			},
		},
	}
	cfg := &schedule.ScheduleConfig{Sections: []schedule.SeasonSection{fullYearSection(t, times)}}
	// Tuesday 13:00, between the two slots
	now := time.Date(2024, 6, 11, 13, 0, 0, 0, time.UTC)

	result := Evaluate(cfg, now, holiday.NewCalculator())

	if result.IsOpen {
		t.Fatal("expected venue to be closed between slots")
	}
	if result.OpensNext == nil {
		t.Fatal("expected a next-opening candidate")
	}
	if result.OpensNext.DaysAhead != 0 {
		t.Errorf("opensNext.DaysAhead = %d, want 0", result.OpensNext.DaysAhead)
	}
	if !result.OpensNext.OpensLaterToday {
		t.Error("expected opensLaterToday for the afternoon slot")
	}
	if got := result.OpensNext.Slot.Open.String(); got != "14:00" {
		t.Errorf("opensNext.Slot.Open = %s, want 14:00", got)
	}
}

func TestEvaluate_MultiSlotCurrentlyInside(t *testing.T) {
	times := map[schedule.Weekday]*schedule.HoursSpec{
		schedule.Tuesday: {
			Slots: []schedule.Slot{
				{Open: timeOfDay(t, "09:00"), Close: timeOfDay(t, "12:00")},
				{Open: timeOfDay(t, "14:00"), Close: timeOfDay(t, "18:00")},
			},
		},
	}
	cfg := &schedule.ScheduleConfig{Sections: []schedule.SeasonSection{fullYearSection(t, times)}}
	// Tuesday 15:30, inside the afternoon slot
	now := time.Date(2024, 6, 11, 15, 30, 0, 0, time.UTC)

	result := Evaluate(cfg, now, holiday.NewCalculator())

	if !result.IsOpen {
		t.Fatal("expected venue to be open inside the afternoon slot")
	}
	if got := result.OpensToday.CloseTime.String(); got != "18:00" {
		t.Errorf("opensToday.CloseTime = %s, want 18:00", got)
	}
}

func TestEvaluate_HolidaySuppressesOpen(t *testing.T) {
	cfg := &schedule.ScheduleConfig{
		Sections: []schedule.SeasonSection{fullYearSection(t, allWeek(t, "09:00", "17:00"))},
	}
	// Christmas 2024 falls on a Wednesday.
	now := time.Date(2024, 12, 25, 12, 0, 0, 0, time.UTC)

	result := Evaluate(cfg, now, holiday.NewCalculator())

	if result.IsOpen {
		t.Fatal("expected venue to be closed on Christmas")
	}
	if result.OpensToday != nil {
		t.Error("expected no opensToday on a holiday")
	}
	// The next-opening search does not skip holiday dates; Thursday is
	// the candidate even though Dec 26 is a holiday too.
	if result.OpensNext == nil || result.OpensNext.DaysAhead != 1 {
		t.Fatalf("expected next opening 1 day ahead, got %+v", result.OpensNext)
	}
}

func TestEvaluate_ElapsedDayYieldsNoTodayCandidate(t *testing.T) {
	times := map[schedule.Weekday]*schedule.HoursSpec{
		schedule.Friday: singleHours(t, "09:00", "17:00"),
	}
	cfg := &schedule.ScheduleConfig{Sections: []schedule.SeasonSection{fullYearSection(t, times)}}
	// Friday 18:00, after closing
	now := time.Date(2024, 6, 14, 18, 0, 0, 0, time.UTC)

	result := Evaluate(cfg, now, holiday.NewCalculator())

	if result.IsOpen {
		t.Fatal("expected venue to be closed after hours")
	}
	if result.OpensNext != nil {
		t.Errorf("expected no next-opening candidate, got %+v", result.OpensNext)
	}
}

func TestEvaluate_NextOpeningWrapsForward(t *testing.T) {
	times := map[schedule.Weekday]*schedule.HoursSpec{
		schedule.Monday: singleHours(t, "09:00", "17:00"),
	}
	cfg := &schedule.ScheduleConfig{Sections: []schedule.SeasonSection{fullYearSection(t, times)}}
	// Friday: Monday is 3 days ahead, not 4 days back.
	now := time.Date(2024, 6, 14, 10, 0, 0, 0, time.UTC)

	result := Evaluate(cfg, now, holiday.NewCalculator())

	if result.OpensNext == nil {
		t.Fatal("expected a next-opening candidate")
	}
	if result.OpensNext.DaysAhead != 3 || result.OpensNext.Day != schedule.Monday {
		t.Errorf("opensNext = %d days ahead on %s, want 3 on Monday",
			result.OpensNext.DaysAhead, result.OpensNext.Day)
	}
	if result.OpensNext.OpensLaterToday {
		t.Error("opensLaterToday must be false for a future day")
	}
	if result.OpensNext.DaysAhead < 0 || result.OpensNext.DaysAhead > 6 {
		t.Errorf("daysAhead %d out of range [0,6]", result.OpensNext.DaysAhead)
	}
}

func TestEvaluate_FutureMultiSlotUsesProjectedTime(t *testing.T) {
	times := map[schedule.Weekday]*schedule.HoursSpec{
		schedule.Monday: {
			Slots: []schedule.Slot{
				{Open: timeOfDay(t, "09:00"), Close: timeOfDay(t, "12:00")},
				{Open: timeOfDay(t, "14:00"), Close: timeOfDay(t, "18:00")},
			},
		},
	}
	cfg := &schedule.ScheduleConfig{Sections: []schedule.SeasonSection{fullYearSection(t, times)}}
	// Friday 15:00: projected onto Monday it falls inside the afternoon slot.
	now := time.Date(2024, 6, 14, 15, 0, 0, 0, time.UTC)

	result := Evaluate(cfg, now, holiday.NewCalculator())

	if result.OpensNext == nil {
		t.Fatal("expected a next-opening candidate")
	}
	if result.OpensNext.DaysAhead != 3 || result.OpensNext.Day != schedule.Monday {
		t.Fatalf("opensNext = %d days ahead on %s, want 3 on Monday",
			result.OpensNext.DaysAhead, result.OpensNext.Day)
	}
	if got := result.OpensNext.Slot.Open.String(); got != "14:00" {
		t.Errorf("opensNext.Slot.Open = %s, want the 14:00 slot containing the projected time", got)
	}
}

func TestEvaluate_FutureMultiSlotFallsBackToEarliestSlot(t *testing.T) {
	times := map[schedule.Weekday]*schedule.HoursSpec{
		schedule.Monday: {
			Slots: []schedule.Slot{
				{Open: timeOfDay(t, "09:00"), Close: timeOfDay(t, "12:00")},
				{Open: timeOfDay(t, "14:00"), Close: timeOfDay(t, "18:00")},
			},
		},
	}
	cfg := &schedule.ScheduleConfig{Sections: []schedule.SeasonSection{fullYearSection(t, times)}}
	// Friday 13:00: projected onto Monday it sits in the midday gap.
	now := time.Date(2024, 6, 14, 13, 0, 0, 0, time.UTC)

	result := Evaluate(cfg, now, holiday.NewCalculator())

	if result.OpensNext == nil {
		t.Fatal("expected a next-opening candidate")
	}
	if got := result.OpensNext.Slot.Open.String(); got != "09:00" {
		t.Errorf("opensNext.Slot.Open = %s, want the earliest slot 09:00", got)
	}
}

func TestEvaluate_Grouping(t *testing.T) {
	times := map[schedule.Weekday]*schedule.HoursSpec{
		schedule.Monday:    {Open: ptr(timeOfDay(t, "09:00")), Close: ptr(timeOfDay(t, "17:00")), Group: "weekday"},
		schedule.Tuesday:   {Open: ptr(timeOfDay(t, "09:00")), Close: ptr(timeOfDay(t, "17:00")), Group: "weekday"},
		schedule.Wednesday: singleHours(t, "09:00", "12:00"),
	}
	cfg := &schedule.ScheduleConfig{
		Sections:    []schedule.SeasonSection{fullYearSection(t, times)},
		GroupedDays: true,
	}
	now := time.Date(2024, 6, 11, 13, 0, 0, 0, time.UTC)

	result := Evaluate(cfg, now, holiday.NewCalculator())

	group, ok := result.OpeningHoursGrouped["weekday"]
	if !ok {
		t.Fatal("expected weekday group")
	}
	if len(group) != 2 {
		t.Fatalf("expected 2 days in weekday group, got %d", len(group))
	}
	for _, day := range []schedule.Weekday{schedule.Monday, schedule.Tuesday} {
		slots, ok := group[day]
		if !ok || len(slots) != 1 {
			t.Errorf("expected a single slot for %s in weekday group", day)
		}
	}
	// Ungrouped days never appear in any group.
	for label, days := range result.OpeningHoursGrouped {
		if _, ok := days[schedule.Wednesday]; ok {
			t.Errorf("Wednesday must not appear in group %q", label)
		}
	}
	// The flattened view always carries every configured day.
	if len(result.OpeningHours) != 3 {
		t.Errorf("expected 3 days in openingHours, got %d", len(result.OpeningHours))
	}
}

func TestEvaluate_GroupingDisabled(t *testing.T) {
	times := map[schedule.Weekday]*schedule.HoursSpec{
		schedule.Monday: {Open: ptr(timeOfDay(t, "09:00")), Close: ptr(timeOfDay(t, "17:00")), Group: "weekday"},
	}
	cfg := &schedule.ScheduleConfig{Sections: []schedule.SeasonSection{fullYearSection(t, times)}}
	now := time.Date(2024, 6, 11, 13, 0, 0, 0, time.UTC)

	result := Evaluate(cfg, now, holiday.NewCalculator())

	if result.OpeningHoursGrouped != nil {
		t.Errorf("expected no grouped view when groupedDays is off, got %v", result.OpeningHoursGrouped)
	}
}

func TestEvaluate_LaterSectionWinsPerWeekday(t *testing.T) {
	base := fullYearSection(t, allWeek(t, "09:00", "17:00"))
	override := schedule.SeasonSection{
		Name:      "override",
		ValidFrom: mustMonthDay(t, "01-01"),
		ValidTo:   mustMonthDay(t, "12-31"),
		Times: map[schedule.Weekday]*schedule.HoursSpec{
			schedule.Monday: singleHours(t, "12:00", "20:00"),
		},
	}
	cfg := &schedule.ScheduleConfig{Sections: []schedule.SeasonSection{base, override}}
	now := time.Date(2024, 6, 11, 13, 0, 0, 0, time.UTC)

	result := Evaluate(cfg, now, holiday.NewCalculator())

	monday := result.OpeningHours[schedule.Monday]
	if monday == nil || monday.Open.String() != "12:00" {
		t.Errorf("expected the later section to win for Monday, got %+v", monday)
	}
}

func TestEvaluate_NoActiveSectionsYieldsEmptyResult(t *testing.T) {
	times := map[schedule.Weekday]*schedule.HoursSpec{
		schedule.Monday: singleHours(t, "09:00", "17:00"),
	}
	summerOnly := schedule.SeasonSection{
		Name:      "summer",
		ValidFrom: mustMonthDay(t, "04-01"),
		ValidTo:   mustMonthDay(t, "10-01"),
		Times:     times,
	}
	cfg := &schedule.ScheduleConfig{Sections: []schedule.SeasonSection{summerOnly}}
	now := time.Date(2024, 12, 15, 12, 0, 0, 0, time.UTC)

	result := Evaluate(cfg, now, holiday.NewCalculator())

	if result.IsOpen || result.OpensToday != nil || result.OpensNext != nil {
		t.Errorf("expected the empty no-data result, got %+v", result)
	}
	if result.HasData() {
		t.Error("expected HasData() to be false")
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	cfg := &schedule.ScheduleConfig{
		Sections:    []schedule.SeasonSection{fullYearSection(t, allWeek(t, "09:00", "17:00"))},
		GroupedDays: true,
	}
	now := time.Date(2024, 6, 11, 13, 0, 0, 0, time.UTC)
	calc := holiday.NewCalculator()

	first, err := json.Marshal(Evaluate(cfg, now, calc))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(Evaluate(cfg, now, calc))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("evaluation is not idempotent:\n%s\n%s", first, second)
	}
}

func ptr(t schedule.TimeOfDay) *schedule.TimeOfDay {
	return &t
}
