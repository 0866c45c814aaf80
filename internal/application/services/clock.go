package services

import "time"

// Clock supplies the current instant. Services take it as a dependency so
// tests can pin time instead of reading the ambient system clock.
type Clock func() time.Time

// SystemClock is the production Clock, always UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}
