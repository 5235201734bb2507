// Package adapters provides concrete implementations of application adapters.
package adapters

import "time"

// RealClock reads the wall clock in UTC.
type RealClock struct{}

// NewRealClock creates a new real clock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current UTC time.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}
