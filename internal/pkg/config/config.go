package config

import (
	"io"
	"time"
)

// Config defines the configuration lookups the service needs.
//
// Missing keys yield the zero value of the requested type; callers that need a
// non-zero default apply it themselves.
type Config interface {
	io.Closer

	// GetString returns the value for key as a string.
	GetString(key string) string

	// GetBool returns the value for key as a bool.
	GetBool(key string) bool

	// GetInt returns the value for key as an int.
	GetInt(key string) int

	// GetFloat64 returns the value for key as a float64.
	GetFloat64(key string) float64

	// GetSecond returns the integer value for key as a number of seconds.
	GetSecond(key string) time.Duration

	// GetArray returns the value for key as a list. The value is stored as
	// <element1>,<element2>,... or as a native list; blank elements are dropped.
	GetArray(key string) []string
}
