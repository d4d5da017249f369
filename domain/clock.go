package domain

import "time"

// Clock supplies the current instant for expiration checks. Injected so
// tests can pin the date instead of racing the wall clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
