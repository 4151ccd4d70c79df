package services

import (
	"encoding/json"
	"log"
	"time"

	"oh-server/dao/redis"
)

// StatusRefresherService periodically re-evaluates every stored venue and
// caches its current status JSON in Redis.
type StatusRefresherService struct {
	scheduleDao     *redis.RedisScheduleDAO
	scheduleService *ScheduleService
}

// NewStatusRefresherService constructs a new refresher with dependencies.
func NewStatusRefresherService(
	scheduleDao *redis.RedisScheduleDAO,
	scheduleService *ScheduleService,
) *StatusRefresherService {
	return &StatusRefresherService{
		scheduleDao:     scheduleDao,
		scheduleService: scheduleService,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (sr *StatusRefresherService) StartPeriodicJob(interval time.Duration) {
	go sr.startPeriodicJob(interval)
}

func (sr *StatusRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[StatusRefresherService] Running periodic status refresher job.")
		if err := sr.RefreshStatuses(); err != nil {
			log.Printf("[StatusRefresherService] RefreshStatuses returned error: %v", err)
		} else {
			log.Println("[StatusRefresherService] RefreshStatuses completed successfully.")
		}
	}
}

// RefreshStatuses evaluates every stored venue and caches the result.
func (sr *StatusRefresherService) RefreshStatuses() error {
	ids, err := sr.scheduleDao.ListVenueIDs()
	if err != nil {
		log.Printf("[StatusRefresherService] Error listing venue IDs: %v", err)
		return err
	}
	log.Printf("[StatusRefresherService] Refreshing status for %d venues", len(ids))

	for _, venueID := range ids {
		result, _, err := sr.scheduleService.EvaluateVenueNow(venueID)
		if err != nil {
			log.Printf("[StatusRefresherService] Evaluation failed for %s: %v", venueID, err)
			continue
		}
		data, err := json.Marshal(result)
		if err != nil {
			log.Printf("[StatusRefresherService] Failed to marshal status for %s: %v", venueID, err)
			continue
		}
		if err := sr.scheduleDao.SetStatus(venueID, string(data)); err != nil {
			log.Printf("[StatusRefresherService] SetStatus failed for %s: %v", venueID, err)
		} else {
			log.Printf("[StatusRefresherService] Status cached for venue_id=%s (open=%v)", venueID, result.IsOpen)
		}
	}
	return nil
}
