package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a day of the week with a Monday-start index, matching the
// weekday names used in schedule configs ("Monday".."Sunday").
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Weekdays returns all weekdays in Monday..Sunday order. Evaluation always
// iterates days in this order so results are deterministic.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseWeekday parses a weekday name as it appears in schedule configs.
func ParseWeekday(name string) (Weekday, error) {
	for i, n := range weekdayNames {
		if strings.EqualFold(name, n) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

// WeekdayOf returns the Weekday for the given point in time.
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday is Sunday-start; shift to Monday-start.
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// Index returns the Monday-based index (Monday=0 .. Sunday=6).
func (d Weekday) Index() int {
	return int(d)
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// MarshalText makes Weekday usable as a JSON map key.
func (d Weekday) MarshalText() ([]byte, error) {
	if d < Monday || d > Sunday {
		return nil, fmt.Errorf("invalid weekday %d", int(d))
	}
	return []byte(weekdayNames[d]), nil
}

func (d *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
