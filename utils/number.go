package utils

import (
	"time"
)

// TickDuration is the fixed simulation step for the given number of ticks per second.
func TickDuration(tps int) time.Duration {
	return time.Second / time.Duration(tps)
}
