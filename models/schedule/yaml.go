package schedule

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML decoding mirrors the JSON wire shape: the same "opening-hours"
// object (in declaration order) and "MM-DD"/"HH:MM" scalars are
// accepted here.

func (c *ScheduleConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("schedule config must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		var err error
		switch key {
		case "opening-hours":
			err = c.decodeSectionsYAML(val)
		case "groupedDays":
			err = val.Decode(&c.GroupedDays)
		case "shortenGroupedDays":
			err = val.Decode(&c.ShortenGroupedDays)
		case "simpleTime":
			err = val.Decode(&c.SimpleTime)
		case "additionalMessage":
			err = val.Decode(&c.AdditionalMessage)
		case "templates":
			err = val.Decode(&c.Templates)
		}
		if err != nil {
			return fmt.Errorf("failed to decode %q: %w", key, err)
		}
	}
	return nil
}

func (c *ScheduleConfig) decodeSectionsYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("opening-hours must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var section SeasonSection
		if err := node.Content[i+1].Decode(&section); err != nil {
			return fmt.Errorf("section %q: %w", name, err)
		}
		section.Name = name
		c.Sections = append(c.Sections, section)
	}
	return nil
}

func (s *SeasonSection) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("section must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		switch key {
		case "valid-from":
			parsed, err := ParseMonthDay(val.Value)
			if err != nil {
				return err
			}
			s.ValidFrom = parsed
		case "valid-to":
			parsed, err := ParseMonthDay(val.Value)
			if err != nil {
				return err
			}
			s.ValidTo = parsed
		case "times":
			if err := s.decodeTimesYAML(val); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *SeasonSection) decodeTimesYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("times must be a mapping")
	}
	s.Times = make(map[Weekday]*HoursSpec, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		day, err := ParseWeekday(node.Content[i].Value)
		if err != nil {
			return err
		}
		var hours HoursSpec
		if err := node.Content[i+1].Decode(&hours); err != nil {
			return fmt.Errorf("hours for %s: %w", day, err)
		}
		s.Times[day] = &hours
	}
	return nil
}

func (h *HoursSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("hours must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		switch key {
		case "open":
			parsed, err := ParseTimeOfDay(val.Value)
			if err != nil {
				return err
			}
			h.Open = &parsed
		case "close":
			parsed, err := ParseTimeOfDay(val.Value)
			if err != nil {
				return err
			}
			h.Close = &parsed
		case "slots":
			if err := val.Decode(&h.Slots); err != nil {
				return err
			}
		case "group":
			h.Group = val.Value
		}
	}
	return nil
}

func (sl *Slot) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("slot must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		switch key {
		case "open":
			parsed, err := ParseTimeOfDay(val.Value)
			if err != nil {
				return err
			}
			sl.Open = parsed
		case "close":
			parsed, err := ParseTimeOfDay(val.Value)
			if err != nil {
				return err
			}
			sl.Close = parsed
		}
	}
	return nil
}
