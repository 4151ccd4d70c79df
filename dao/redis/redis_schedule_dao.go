package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"oh-server/db"
	"oh-server/models/schedule"
)

const SCHEDULE_CONFIG_KEY_FORMAT = "schedule_config_v1:%s"

// VENUE_STATUS_KEY_FORMAT is used to cache evaluated status per venue.
const VENUE_STATUS_KEY_FORMAT = "venue_status_v1:%s"

// RedisScheduleDAO handles schedule config persistence using Redis.
type RedisScheduleDAO struct {
	client db.RedisClient
}

// NewRedisScheduleDAO initializes a RedisScheduleDAO with the Redis client.
func NewRedisScheduleDAO(client db.RedisClient) *RedisScheduleDAO {
	return &RedisScheduleDAO{client: client}
}

// UpsertSchedule stores the venue's schedule config as JSON.
func (dao *RedisScheduleDAO) UpsertSchedule(venueID string, cfg *schedule.ScheduleConfig) error {
	key := fmt.Sprintf(SCHEDULE_CONFIG_KEY_FORMAT, venueID)
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule config for venue %s: %w", venueID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set schedule config in redis: %w", err)
	}
	return nil
}

// GetSchedule retrieves the stored schedule config for a venue. A missing
// schedule is a cache miss, not an error: it returns (nil, nil).
func (dao *RedisScheduleDAO) GetSchedule(venueID string) (*schedule.ScheduleConfig, error) {
	key := fmt.Sprintf(SCHEDULE_CONFIG_KEY_FORMAT, venueID)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule config from redis: %w", err)
	}
	var cfg schedule.ScheduleConfig
	if err := json.Unmarshal([]byte(str), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schedule config JSON: %w", err)
	}
	return &cfg, nil
}

// DeleteSchedule removes a venue's schedule config and its cached status.
func (dao *RedisScheduleDAO) DeleteSchedule(venueID string) error {
	key := fmt.Sprintf(SCHEDULE_CONFIG_KEY_FORMAT, venueID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete schedule config key %s: %w", key, err)
	}
	if err := dao.DeleteStatus(venueID); err != nil {
		return err
	}
	log.Printf("[RedisScheduleDAO] Deleted schedule config for %s", venueID)
	return nil
}

// ListVenueIDs returns all venue IDs with a stored schedule config.
func (dao *RedisScheduleDAO) ListVenueIDs() ([]string, error) {
	pattern := fmt.Sprintf(SCHEDULE_CONFIG_KEY_FORMAT, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule config keys: %w", err)
	}
	prefix := fmt.Sprintf(SCHEDULE_CONFIG_KEY_FORMAT, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// SetStatus caches the evaluated status JSON for a venue.
func (dao *RedisScheduleDAO) SetStatus(venueID string, statusJSON string) error {
	key := fmt.Sprintf(VENUE_STATUS_KEY_FORMAT, venueID)
	if err := dao.client.Set(key, statusJSON); err != nil {
		return fmt.Errorf("failed to set venue status in redis: %w", err)
	}
	return nil
}

// GetStatus retrieves the cached status JSON for a venue, "" on miss.
func (dao *RedisScheduleDAO) GetStatus(venueID string) (string, error) {
	key := fmt.Sprintf(VENUE_STATUS_KEY_FORMAT, venueID)
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get venue status from redis: %w", err)
	}
	return str, nil
}

func (dao *RedisScheduleDAO) DeleteStatus(venueID string) error {
	key := fmt.Sprintf(VENUE_STATUS_KEY_FORMAT, venueID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete venue status key %s: %w", key, err)
	}
	return nil
}
