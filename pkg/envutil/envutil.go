// Package envutil provides typed accessors for environment variables with
// defaults, used for CLI configuration fallback.
package envutil

import (
	"os"
	"strconv"
	"strings"

	"github.com/githubnext/agentlint/pkg/logger"
)

var log = logger.New("envutil:envutil")

// GetString returns the value of the environment variable, or defaultValue
// when unset or empty.
func GetString(name, defaultValue string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return defaultValue
}

// GetBool returns the boolean value of the environment variable, or
// defaultValue when unset, empty, or unparseable. Accepts the forms
// strconv.ParseBool accepts ("1", "true", "false", ...).
func GetBool(name string, defaultValue bool) bool {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		log.Printf("Ignoring unparseable boolean in %s: %q", name, value)
		return defaultValue
	}
	return parsed
}

// GetInt returns the integer value of the environment variable clamped to
// [minValue, maxValue], or defaultValue when unset or unparseable.
func GetInt(name string, defaultValue, minValue, maxValue int) int {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Printf("Ignoring unparseable integer in %s: %q", name, value)
		return defaultValue
	}
	if parsed < minValue {
		return minValue
	}
	if parsed > maxValue {
		return maxValue
	}
	return parsed
}

// GetList splits a comma-separated environment variable into trimmed,
// non-empty elements. Returns nil when unset or empty.
func GetList(name string) []string {
	value := os.Getenv(name)
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
