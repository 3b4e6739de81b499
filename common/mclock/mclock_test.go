package mclock

import (
	"testing"
	"time"
)

func TestSinceIsMonotonic(t *testing.T) {
	start := Now()
	time.Sleep(2 * time.Millisecond)
	if d := Since(start); d < time.Millisecond {
		t.Fatalf("elapsed %v, want at least 1ms", d)
	}
	if Now() < start {
		t.Fatal("clock went backwards")
	}
}
