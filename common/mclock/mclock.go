// Package mclock is a wrapper for a monotonic clock source.
package mclock

import (
	"time"

	"github.com/aristanetworks/goarista/monotime"
)

type AbsTime time.Duration

func Now() AbsTime {
	return AbsTime(monotime.Now())
}

// Since returns the time elapsed since t.
func Since(t AbsTime) time.Duration {
	return time.Duration(Now() - t)
}
