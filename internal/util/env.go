package util

import (
	"os"
	"strings"
)

// Getenv returns the trimmed value of an environment variable, or defaultValue when it is unset or blank
func Getenv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok {
		if val = strings.TrimSpace(val); val != "" {
			return val
		}
	}

	return defaultValue
}

// SetEnv sets an environment variable and returns a func that restores its previous state
func SetEnv(key, val string) func() {
	orig, found := os.LookupEnv(key)
	_ = os.Setenv(key, val)

	return func() {
		if found {
			_ = os.Setenv(key, orig)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}
