// Package environment provides support for env vars: loading .env files and
// filling configuration structs from namespaced environment variables.
package environment

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load loads environment variables from a .env file. A missing file is not an
// error for callers that treat .env as optional; they can ignore the result.
func Load() error {
	return godotenv.Load()
}

// LoadPath loads environment variables from the given path, falling back to
// the default .env lookup when the path is empty.
func LoadPath(p string) error {
	if p != "" {
		return godotenv.Load(p)
	}
	return godotenv.Load()
}

// GetEnvOrDefault retrieves an environment variable value, returning fallback
// if the variable is not set.
func GetEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvKeyPrefix constructs a namespaced environment variable key by joining
// a prefix with the key name. An empty prefix returns the key unchanged.
func GetEnvKeyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", prefix, key)
}

// GetPrefixEnvOrDefault retrieves a namespaced environment variable value,
// returning fallback if the variable is not set.
func GetPrefixEnvOrDefault(prefix, key, fallback string) string {
	return GetEnvOrDefault(GetEnvKeyPrefix(prefix, key), fallback)
}
