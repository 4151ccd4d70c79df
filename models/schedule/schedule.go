package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Slot is a single open/close interval within one day.
type Slot struct {
	Open  TimeOfDay `json:"open"`
	Close TimeOfDay `json:"close"`
}

// HoursSpec describes one day's opening hours: either a single open/close
// pair or an ordered list of slots (split hours), with an optional group
// label used for the grouped output view.
type HoursSpec struct {
	Open  *TimeOfDay `json:"open,omitempty"`
	Close *TimeOfDay `json:"close,omitempty"`
	Slots []Slot     `json:"slots,omitempty"`
	Group string     `json:"group,omitempty"`
}

// Multi reports whether the spec uses the multi-slot form.
func (h *HoursSpec) Multi() bool {
	return len(h.Slots) > 0
}

// SlotList normalizes both forms into an ordered slot list. Slots keep
// their declaration order; overlapping slots are not merged.
func (h *HoursSpec) SlotList() []Slot {
	if h.Multi() {
		return h.Slots
	}
	if h.Open != nil && h.Close != nil {
		return []Slot{{Open: *h.Open, Close: *h.Close}}
	}
	return nil
}

// SeasonSection is one named seasonal rule-set: a recurring annual
// validity window plus per-weekday hours.
type SeasonSection struct {
	Name      string                 `json:"-"`
	ValidFrom MonthDay               `json:"valid-from"`
	ValidTo   MonthDay               `json:"valid-to"`
	Times     map[Weekday]*HoursSpec `json:"times"`
}

// Templates names the host templates used by the external renderer.
type Templates struct {
	Default  string `json:"default,omitempty" yaml:"default"`
	Overview string `json:"overview,omitempty" yaml:"overview"`
}

// ScheduleConfig is the full opening-hours configuration for one venue.
// Sections keep their declaration order from the config file; when two
// active sections define the same weekday, the later one wins.
type ScheduleConfig struct {
	Sections           []SeasonSection
	GroupedDays        bool
	ShortenGroupedDays bool
	SimpleTime         bool
	AdditionalMessage  string
	Templates          Templates
}

// scheduleConfigJSON mirrors the wire shape of ScheduleConfig minus the
// ordered "opening-hours" object, which needs manual decoding.
type scheduleConfigJSON struct {
	OpeningHours       json.RawMessage `json:"opening-hours,omitempty"`
	GroupedDays        bool            `json:"groupedDays"`
	ShortenGroupedDays bool            `json:"shortenGroupedDays"`
	SimpleTime         bool            `json:"simpleTime"`
	AdditionalMessage  string          `json:"additionalMessage,omitempty"`
	Templates          Templates       `json:"templates,omitempty"`
}

// UnmarshalJSON decodes the config while preserving the declaration order
// of the "opening-hours" object keys. encoding/json maps would lose that
// order, and section order decides which section wins on overlap.
func (c *ScheduleConfig) UnmarshalJSON(data []byte) error {
	var aux scheduleConfigJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	sections, err := decodeSectionsJSON(aux.OpeningHours)
	if err != nil {
		return err
	}
	c.Sections = sections
	c.GroupedDays = aux.GroupedDays
	c.ShortenGroupedDays = aux.ShortenGroupedDays
	c.SimpleTime = aux.SimpleTime
	c.AdditionalMessage = aux.AdditionalMessage
	c.Templates = aux.Templates
	return nil
}

// MarshalJSON writes the config back in its wire shape, emitting the
// sections as an object in declaration order.
func (c ScheduleConfig) MarshalJSON() ([]byte, error) {
	openingHours, err := encodeSectionsJSON(c.Sections)
	if err != nil {
		return nil, err
	}
	aux := scheduleConfigJSON{
		OpeningHours:       openingHours,
		GroupedDays:        c.GroupedDays,
		ShortenGroupedDays: c.ShortenGroupedDays,
		SimpleTime:         c.SimpleTime,
		AdditionalMessage:  c.AdditionalMessage,
		Templates:          c.Templates,
	}
	return json.Marshal(aux)
}

func decodeSectionsJSON(raw json.RawMessage) ([]SeasonSection, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to decode opening-hours: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("opening-hours must be an object, got %v", tok)
	}
	var sections []SeasonSection
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to decode opening-hours: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected opening-hours key %v", keyTok)
		}
		var section SeasonSection
		if err := dec.Decode(&section); err != nil {
			return nil, fmt.Errorf("failed to decode section %q: %w", name, err)
		}
		section.Name = name
		sections = append(sections, section)
	}
	return sections, nil
}

func encodeSectionsJSON(sections []SeasonSection) (json.RawMessage, error) {
	if len(sections) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, section := range sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(section.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		body, err := json.Marshal(section)
		if err != nil {
			return nil, fmt.Errorf("failed to encode section %q: %w", section.Name, err)
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
