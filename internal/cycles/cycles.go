// Package cycles partitions a calendar day into fixed 90-minute cycles.
//
// Cycles are numbered 0-F (hexadecimal):
//   - Cycle 0: 00:00 - 01:30
//   - Cycle 1: 01:30 - 03:00
//   - ...
//   - Cycle F: 22:30 - 00:00
//
// Waking cycles are 6-E (09:00 - 22:30). All functions are pure and classify
// using the wall-clock carried by the time.Time value itself; callers that
// need a specific timezone convert with In() before calling.
package cycles

import (
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/nanokata/internal/constants"
)

const (
	// TotalCycles is the number of cycles per day (0x10)
	TotalCycles = 16

	// CycleMinutes is the length of one cycle
	CycleMinutes = 90

	// WakingStart is the first waking cycle (09:00)
	WakingStart = 0x6

	// WakingEnd is the last waking cycle (21:00 - 22:30), inclusive
	WakingEnd = 0xe
)

// IndexOf returns the cycle index (0-15) for a given instant, based on its
// local hour and minute. The clamp guards against non-standard clock values;
// with a 90-minute slice the 24h partition is exact.
func IndexOf(t time.Time) int {
	minutes := t.Hour()*60 + t.Minute()
	idx := minutes / CycleMinutes
	if idx > TotalCycles-1 {
		idx = TotalCycles - 1
	}
	return idx
}

// Label converts a cycle index to its uppercase hexadecimal representation.
func Label(cycle int) string {
	return strings.ToUpper(strconv.FormatInt(int64(cycle), 16))
}

// IsWaking reports whether a cycle index is within waking hours (6-E).
func IsWaking(cycle int) bool {
	return cycle >= WakingStart && cycle <= WakingEnd
}

// WakingCount returns the number of waking cycles (6-E inclusive).
func WakingCount() int {
	return WakingEnd - WakingStart + 1
}

// StartOfDay returns midnight (00:00:00.000) of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day (23:59:59.999)
// in t's location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// DayKey formats an instant as YYYY-MM-DD in its own location, for day-based
// grouping.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}
