package utils

import (
	"os"
	"strconv"
)

// Env returns the value of key, or def when the variable is unset or
// empty. Empty and unset are deliberately not distinguished: setting
// a knob to "" means "use the default".
func Env(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

// EnvInt returns key parsed as a positive integer, or def when the
// variable is unset, unparseable or not positive.
func EnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
