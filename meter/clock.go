package meter

import "time"

// Timestamps are monotonic nanoseconds since the package epoch, so
// subtraction is immune to wall-clock adjustments. Zero means unset; now
// adds one so the very first reading can never collide with it.
var epoch = time.Now()

func now() int64 {
	return int64(time.Since(epoch)) + 1
}
