package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"oh-server/dao/redis"
	"oh-server/db"
	"oh-server/engine"
	"oh-server/holiday"
)

func TestRefreshStatuses(t *testing.T) {
	dao := redis.NewRedisScheduleDAO(db.NewMockRedisClient(context.Background()))
	service := NewScheduleService(dao, holiday.NewCalculator())
	service.SetClock(func() time.Time {
		return time.Date(2024, 6, 11, 13, 0, 0, 0, time.UTC)
	})
	refresher := NewStatusRefresherService(dao, service)

	assert.NoError(t, service.SaveSchedule("venue-1", weekConfig()))
	assert.NoError(t, service.SaveSchedule("venue-2", weekConfig()))

	assert.NoError(t, refresher.RefreshStatuses())

	for _, venueID := range []string{"venue-1", "venue-2"} {
		statusJSON, err := dao.GetStatus(venueID)
		assert.NoError(t, err)
		assert.NotEmpty(t, statusJSON, "expected a cached status for %s", venueID)

		var result engine.EvaluationResult
		assert.NoError(t, json.Unmarshal([]byte(statusJSON), &result))
		assert.True(t, result.IsOpen)
	}
}

func TestRefreshStatuses_NoVenues(t *testing.T) {
	dao := redis.NewRedisScheduleDAO(db.NewMockRedisClient(context.Background()))
	service := NewScheduleService(dao, holiday.NewCalculator())
	refresher := NewStatusRefresherService(dao, service)

	assert.NoError(t, refresher.RefreshStatuses())
}
