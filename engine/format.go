package engine

import (
	"strconv"

	"oh-server/models/schedule"
)

// FormatTime renders an "HH:MM" time for display. With simple set, only
// the hour is returned without a leading zero ("09:30" -> "9"), matching
// the simplified display mode.
func FormatTime(in string, simple bool) (string, error) {
	if !simple {
		return in, nil
	}
	t, err := schedule.ParseTimeOfDay(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(t.Hour), nil
}
