// Package metrics derives cycle coverage, daily density, and streaks from
// check-in records. All computation here is pure: the same inputs always
// produce the same outputs, and nothing is cached or mutated.
package metrics

import (
	"math"
	"time"

	"github.com/julianstephens/nanokata/internal/constants"
	"github.com/julianstephens/nanokata/internal/cycles"
	"github.com/julianstephens/nanokata/internal/models"
)

// CycleState describes one cycle's standing on a given day
type CycleState string

const (
	CycleFuture  CycleState = "future"
	CyclePast    CycleState = "past"
	CycleChecked CycleState = "checked"
)

// CycleMetadata is the per-cycle shape consumed by presentation. It is
// recomputed on every read and never stored.
type CycleMetadata struct {
	Index    int
	Label    string
	State    CycleState
	IsWaking bool
	// EarliestCheckInTime is the HH:MM display time of the first check-in in
	// this cycle; empty when the cycle has none.
	EarliestCheckInTime string
}

// DayDensity is the coverage summary for one calendar day.
type DayDensity struct {
	Date             string  `json:"date"` // YYYY-MM-DD
	Density          float64 `json:"density"`
	CheckInCount     int     `json:"check_in_count"`
	WakingCycleCount int     `json:"waking_cycle_count"`
}

// Classify builds metadata for all 16 cycles of ref's day. A cycle with at
// least one check-in is "checked"; otherwise it is "future" when strictly
// after ref's own cycle and "past" when not. Check-ins are classified in loc,
// which is the single timezone policy for the whole computation.
func Classify(checkIns []models.CheckIn, ref time.Time, loc *time.Location) []CycleMetadata {
	current := cycles.IndexOf(ref.In(loc))

	earliest := make(map[int]time.Time)
	for _, ci := range checkIns {
		local := ci.CheckedAt.In(loc)
		cycle := cycles.IndexOf(local)
		if existing, ok := earliest[cycle]; !ok || local.Before(existing) {
			earliest[cycle] = local
		}
	}

	out := make([]CycleMetadata, 0, cycles.TotalCycles)
	for i := 0; i < cycles.TotalCycles; i++ {
		meta := CycleMetadata{
			Index:    i,
			Label:    cycles.Label(i),
			IsWaking: cycles.IsWaking(i),
		}
		if first, ok := earliest[i]; ok {
			meta.State = CycleChecked
			meta.EarliestCheckInTime = first.Format(constants.TimeFormat)
		} else if i > current {
			meta.State = CycleFuture
		} else {
			meta.State = CyclePast
		}
		out = append(out, meta)
	}

	return out
}

// ComputeDensity returns the coverage ratio for one day's check-ins: distinct
// waking cycles with at least one check-in over the waking cycle count,
// rounded to 2 decimal places. Non-waking check-ins do not count. The caller
// is responsible for restricting checkIns to a single day.
func ComputeDensity(checkIns []models.CheckIn, day time.Time, loc *time.Location) DayDensity {
	covered := make(map[int]struct{})
	for _, ci := range checkIns {
		cycle := cycles.IndexOf(ci.CheckedAt.In(loc))
		if cycles.IsWaking(cycle) {
			covered[cycle] = struct{}{}
		}
	}

	wakingCount := cycles.WakingCount()
	density := float64(len(covered)) / float64(wakingCount)

	return DayDensity{
		Date:             cycles.DayKey(day.In(loc)),
		Density:          math.Round(density*100) / 100,
		CheckInCount:     len(covered),
		WakingCycleCount: wakingCount,
	}
}
