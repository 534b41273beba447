// internal/util/clock.go
// Abstraksi waktu supaya expiry token bisa dites

package util

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock selalu mengembalikan T; dipakai di test.
type FixedClock struct{ T time.Time }

func (c *FixedClock) Now() time.Time { return c.T }

// Advance memajukan waktu FixedClock.
func (c *FixedClock) Advance(d time.Duration) { c.T = c.T.Add(d) }
