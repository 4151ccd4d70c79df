package schedule

import "fmt"

// ValidationError reports a configuration problem found at schedule-load
// time. Malformed schedules are rejected up front instead of producing
// wrong answers at query time.
type ValidationError struct {
	Section string
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("invalid schedule config: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid schedule config: section %q: %s: %s", e.Section, e.Field, e.Reason)
}

// Validate checks the structural invariants the decoders cannot express:
// every section has hours, and every HoursSpec uses exactly one of the
// single open/close form or the slots form.
func (c *ScheduleConfig) Validate() error {
	for _, section := range c.Sections {
		if len(section.Times) == 0 {
			return &ValidationError{Section: section.Name, Field: "times", Reason: "no weekday hours defined"}
		}
		for day, hours := range section.Times {
			field := fmt.Sprintf("times.%s", day)
			if hours == nil {
				return &ValidationError{Section: section.Name, Field: field, Reason: "hours must not be empty"}
			}
			if err := validateHours(hours); err != nil {
				return &ValidationError{Section: section.Name, Field: field, Reason: err.Error()}
			}
		}
	}
	return nil
}

func validateHours(h *HoursSpec) error {
	single := h.Open != nil || h.Close != nil
	if single && h.Multi() {
		return fmt.Errorf("open/close and slots are mutually exclusive")
	}
	if h.Multi() {
		return nil
	}
	if h.Open == nil || h.Close == nil {
		return fmt.Errorf("both open and close are required")
	}
	return nil
}
