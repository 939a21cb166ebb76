package domain

import "math"

// NeverRefresh is a refresh window meaning cached entries are never
// revalidated against the backing store.
const NeverRefresh uint64 = math.MaxUint64

// Fresh reports whether an entry stamped at the given clock reading is still
// fresh at now, under the given refresh window in clock ticks. A window of
// zero means entries are revalidated on every read. The clock is monotonic,
// so now is never behind stamp.
func Fresh(now, stamp, window uint64) bool {
	if window == NeverRefresh {
		return true
	}
	return now-stamp < window
}
