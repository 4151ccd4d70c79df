package services

import (
	"errors"
	"time"

	"oh-server/dao/redis"
	"oh-server/engine"
	"oh-server/holiday"
	"oh-server/models/schedule"
)

// ErrScheduleNotFound is returned when a venue has no stored schedule.
var ErrScheduleNotFound = errors.New("schedule not found")

// ScheduleService wraps schedule persistence and the evaluation engine.
// The clock is injected so evaluations stay deterministic under test.
type ScheduleService struct {
	scheduleDao *redis.RedisScheduleDAO
	holidays    *holiday.Calculator
	clock       func() time.Time
}

// NewScheduleService constructs a new ScheduleService with its dependencies.
func NewScheduleService(
	scheduleDao *redis.RedisScheduleDAO,
	holidays *holiday.Calculator) *ScheduleService {

	return &ScheduleService{
		scheduleDao: scheduleDao,
		holidays:    holidays,
		clock:       time.Now,
	}
}

// SetClock overrides the time source (tests).
func (ss *ScheduleService) SetClock(clock func() time.Time) {
	ss.clock = clock
}

// Now returns the service's current time.
func (ss *ScheduleService) Now() time.Time {
	return ss.clock()
}

// SaveSchedule validates and stores a venue's schedule config.
func (ss *ScheduleService) SaveSchedule(venueID string, cfg *schedule.ScheduleConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return ss.scheduleDao.UpsertSchedule(venueID, cfg)
}

// GetSchedule returns the stored schedule, or ErrScheduleNotFound.
func (ss *ScheduleService) GetSchedule(venueID string) (*schedule.ScheduleConfig, error) {
	cfg, err := ss.scheduleDao.GetSchedule(venueID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrScheduleNotFound
	}
	return cfg, nil
}

// DeleteSchedule removes a venue's schedule and cached status.
func (ss *ScheduleService) DeleteSchedule(venueID string) error {
	return ss.scheduleDao.DeleteSchedule(venueID)
}

// EvaluateVenue computes the venue's opening status at the given instant.
func (ss *ScheduleService) EvaluateVenue(venueID string, at time.Time) (*engine.EvaluationResult, *schedule.ScheduleConfig, error) {
	cfg, err := ss.GetSchedule(venueID)
	if err != nil {
		return nil, nil, err
	}
	return engine.Evaluate(cfg, at, ss.holidays), cfg, nil
}

// EvaluateVenueNow computes the venue's opening status right now.
func (ss *ScheduleService) EvaluateVenueNow(venueID string) (*engine.EvaluationResult, *schedule.ScheduleConfig, error) {
	return ss.EvaluateVenue(venueID, ss.clock())
}

// HolidaysForYear lists the public holidays of a year.
func (ss *ScheduleService) HolidaysForYear(year int) []holiday.Holiday {
	return ss.holidays.ForYear(year)
}
