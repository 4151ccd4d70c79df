package db_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"oh-server/db"
)

// Test the Set and Get methods for MockRedisClient
func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient(context.Background())},
		// Replace with a real Redis client configuration for integration testing
		// {"StoreRedisClient", db.NewStoreRedisClient(context.Background(), realRedisClient)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key := "test-key"
			value := "test-value"

			// Act
			err := test.client.Set(key, value)
			if err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			retrieved, err := test.client.Get(key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}

			// Assert
			if retrieved != value {
				t.Errorf("Expected %s, got %s", value, retrieved)
			}
		})
	}
}

// Test that Get on a missing key returns ErrKeyNotFound
func TestRedisClient_GetMissingKey(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	_, err := client.Get("no-such-key")

	if !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
}

// Test Keys prefix matching ("prefix:*")
func TestRedisClient_KeysPrefixMatching(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	seed := map[string]string{
		"schedule_config_v1:venue-1": "a",
		"schedule_config_v1:venue-2": "b",
		"venue_status_v1:venue-1":    "c",
	}
	for k, v := range seed {
		if err := client.Set(k, v); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	// Act
	keys, err := client.Keys("schedule_config_v1:*")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	sort.Strings(keys)

	// Assert
	expected := []string{"schedule_config_v1:venue-1", "schedule_config_v1:venue-2"}
	if len(keys) != len(expected) {
		t.Fatalf("Expected %d keys, got %d: %v", len(expected), len(keys), keys)
	}
	for i, key := range expected {
		if keys[i] != key {
			t.Errorf("Expected key %s, got %s", key, keys[i])
		}
	}
}

// Test that Del removes a key
func TestRedisClient_Del(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	if err := client.Set("doomed", "value"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Act
	if err := client.Del("doomed"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}

	// Assert
	if _, err := client.Get("doomed"); !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound after Del, got %v", err)
	}
}

// Test Ping
func TestRedisClient_Ping(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	if err := client.Ping(); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
