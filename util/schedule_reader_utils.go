package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"

	"oh-server/engine"
	"oh-server/models/schedule"
)

// ReadScheduleConfigFromJSON loads a ScheduleConfig from JSON on disk.
func ReadScheduleConfigFromJSON(filePath string) (*schedule.ScheduleConfig, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var cfg schedule.ScheduleConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ScheduleConfig: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ReadScheduleConfigFromYAML loads a ScheduleConfig from YAML on disk.
func ReadScheduleConfigFromYAML(filePath string) (*schedule.ScheduleConfig, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var cfg schedule.ScheduleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ScheduleConfig YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// PrintEvaluationResultPartially prints key fields of an EvaluationResult.
func PrintEvaluationResultPartially(result *engine.EvaluationResult) {
	fmt.Printf("Is open: %v\n", result.IsOpen)
	if result.OpensToday != nil {
		fmt.Printf("Open today until: %s\n", result.OpensToday.CloseTime)
	}
	if result.OpensNext != nil {
		fmt.Printf("Opens next: %s in %d day(s) at %s (later today: %v)\n",
			result.OpensNext.Day, result.OpensNext.DaysAhead,
			result.OpensNext.Slot.Open, result.OpensNext.OpensLaterToday)
	}
	fmt.Printf("Configured days: %d\n", len(result.OpeningHours))
}
