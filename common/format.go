package common

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// PrettyDuration is a pretty printed version of a time.Duration value that
// cuts the unnecessary precision off from the formatted textual representation.
type PrettyDuration time.Duration

var prettyDurationRe = regexp.MustCompile(`\.[0-9]+`)

func (d PrettyDuration) String() string {
	label := fmt.Sprintf("%v", time.Duration(d))
	if match := prettyDurationRe.FindString(label); len(match) > 4 {
		label = strings.Replace(label, match, match[:4], 1)
	}
	return label
}

// PrettyThroughput is a byte rate per second printed with a binary unit.
type PrettyThroughput float64

// Throughput returns the rate at which n bytes were processed in d.
func Throughput(n int64, d time.Duration) PrettyThroughput {
	if d <= 0 {
		return 0
	}
	return PrettyThroughput(float64(n) / d.Seconds())
}

func (t PrettyThroughput) String() string {
	switch {
	case t >= 1<<30:
		return fmt.Sprintf("%.2f GiB/s", float64(t)/(1<<30))
	case t >= 1<<20:
		return fmt.Sprintf("%.2f MiB/s", float64(t)/(1<<20))
	case t >= 1<<10:
		return fmt.Sprintf("%.2f KiB/s", float64(t)/(1<<10))
	default:
		return fmt.Sprintf("%.2f B/s", float64(t))
	}
}
