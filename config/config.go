package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Server config
const SERVER_ADDRESS = ":8080"

// Status refresher config
const STATUS_REFRESHER_SCHEDULE_MINUTES = 15

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const SAMPLE_SCHEDULE_RESOURCE = "sample_schedule.json"
const SAMPLE_SCHEDULE_YAML_RESOURCE = "sample_schedule.yml"

// Demo venue seeded at startup from the sample schedule resource.
const DEMO_VENUE_ID = "demo-venue"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
