package db

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when a key does not exist, so callers
// can tell a cache miss apart from a real Redis failure.
var ErrKeyNotFound = errors.New("key not found")

// RedisClientInterface defines the methods available in the RedisClient
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
