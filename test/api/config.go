/*
Copyright 2025 the test-api Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultBaseURL = "http://localhost:8000"

type TestConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration

	// Credentials of the seeded test account used for automatic sign-in.
	TestUserEmail     string
	TestUserPassword  string
	TestUserFirstName string
	TestUserLastName  string

	// An email that is guaranteed to already be registered, for conflict tests.
	ExistingUserEmail string

	// Seeded entity identifiers in the environment under test.
	TestLocationID    string
	TestDishID        string
	TestReservationID string
	TestTableNumber   string

	SkipIntegration bool
	DebugLogging    bool
	LogRequests     bool
	LogResponses    bool
}

// LoadTestConfig loads configuration from environment variables and an
// optional .env file. Every field has a working default so the harness runs
// against a local service with zero setup.
func LoadTestConfig() *TestConfig {
	loadEnvFile()

	return &TestConfig{
		BaseURL:        resolveBaseURL(),
		RequestTimeout: getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		MaxRetries:     getIntWithDefault("MAX_RETRIES", 3),
		RetryBackoff:   getDurationWithDefault("RETRY_BACKOFF", time.Second),

		TestUserEmail:     getStringWithDefault("TEST_USER_EMAIL", "jhon_smith@example.com"),
		TestUserPassword:  getStringWithDefault("TEST_USER_PASSWORD", "Y2kjqKHX"),
		TestUserFirstName: getStringWithDefault("TEST_USER_FIRST_NAME", "John"),
		TestUserLastName:  getStringWithDefault("TEST_USER_LAST_NAME", "Smith"),

		ExistingUserEmail: getStringWithDefault("EXISTING_USER_EMAIL", "existing@example.com"),

		TestLocationID:    getStringWithDefault("TEST_LOCATION_ID", "672846d5c951184d705b65d7"),
		TestDishID:        getStringWithDefault("TEST_DISH_ID", "322846d5c951184d705b65d2"),
		TestReservationID: getStringWithDefault("TEST_RESERVATION_ID", "672846d5c951184d705b65d8"),
		TestTableNumber:   getStringWithDefault("TEST_TABLE_NUMBER", "1"),

		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", true),
		DebugLogging:    getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}
}

// resolveBaseURL prefers API_BASE_URL, falls back to the legacy BASE_URL
// variable, then to localhost.
func resolveBaseURL() string {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		return v
	}

	if v := os.Getenv("BASE_URL"); v != "" {
		return v
	}

	return defaultBaseURL
}

func getStringWithDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from an environment variable or
// returns the default. Bare integers are treated as seconds.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getIntWithDefault gets a non-negative integer from an environment variable
// or returns the default. Negative values would wrap when converted to the
// unsigned retry cap, so they fall back to the default too.
func getIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil || intValue < 0 {
		return defaultValue
	}

	return intValue
}

func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		".env",
		"../.env",            // from test/api
		"../../.env",         // from test/api/suites
		"../../../test/.env", // from test/contracts/consumer/*
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
