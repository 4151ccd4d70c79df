package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthDay is a recurring calendar date without a year ("MM-DD" on the
// wire), used for the valid-from/valid-to bounds of a season section.
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay parses "MM-DD".
func ParseMonthDay(s string) (MonthDay, error) {
	mm, dd, ok := strings.Cut(s, "-")
	if !ok {
		return MonthDay{}, fmt.Errorf("invalid month-day %q: expected MM-DD", s)
	}
	month, err := strconv.Atoi(mm)
	if err != nil {
		return MonthDay{}, fmt.Errorf("invalid month-day %q: %v", s, err)
	}
	day, err := strconv.Atoi(dd)
	if err != nil {
		return MonthDay{}, fmt.Errorf("invalid month-day %q: %v", s, err)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return MonthDay{}, fmt.Errorf("invalid month-day %q: out of range", s)
	}
	return MonthDay{Month: time.Month(month), Day: day}, nil
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

func (md MonthDay) MarshalText() ([]byte, error) {
	return []byte(md.String()), nil
}

func (md *MonthDay) UnmarshalText(text []byte) error {
	parsed, err := ParseMonthDay(string(text))
	if err != nil {
		return err
	}
	*md = parsed
	return nil
}
