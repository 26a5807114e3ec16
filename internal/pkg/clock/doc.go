// Package clock provides a tiny time abstraction.
//
// Code that needs "today" (for example the date-of-birth rule) asks a Clocker
// instead of calling time.Now() directly, so tests can pin the date with
// NewFixed.
package clock
