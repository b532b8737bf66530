package metrics

import (
	"time"

	"github.com/julianstephens/nanokata/internal/cycles"
	"github.com/julianstephens/nanokata/internal/models"
)

// MaxStreakDays bounds the backward scan so pathological data can never make
// the streak computation unbounded. Streaks longer than this are capped, not
// extended.
const MaxStreakDays = 365

// FetchDayFunc loads the check-ins whose checked_at falls inside the given
// day's [start, end] boundaries.
type FetchDayFunc func(start, end time.Time) ([]models.CheckIn, error)

// CurrentStreak counts consecutive fully-covered days, walking backward from
// end (inclusive). A day counts when its density reaches 1.0; the scan stops
// at the first day that falls short. The scan is inherently sequential: each
// day is evaluated in order and the first gap terminates it.
func CurrentStreak(end time.Time, loc *time.Location, fetch FetchDayFunc) (int, error) {
	streak := 0
	day := cycles.StartOfDay(end.In(loc))

	for streak < MaxStreakDays {
		checkIns, err := fetch(day, cycles.EndOfDay(day))
		if err != nil {
			return 0, err
		}

		density := ComputeDensity(checkIns, day, loc)
		if density.Density < 1.0 {
			break
		}

		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak, nil
}

// StreakFromHistory computes the same streak from a pre-loaded full history
// instead of per-day fetches. The two strategies must agree.
func StreakFromHistory(history []models.CheckIn, end time.Time, loc *time.Location) int {
	byDay := make(map[string][]models.CheckIn)
	for _, ci := range history {
		key := cycles.DayKey(ci.CheckedAt.In(loc))
		byDay[key] = append(byDay[key], ci)
	}

	streak := 0
	day := cycles.StartOfDay(end.In(loc))

	for streak < MaxStreakDays {
		checkIns := byDay[cycles.DayKey(day)]
		density := ComputeDensity(checkIns, day, loc)
		if density.Density < 1.0 {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak
}
