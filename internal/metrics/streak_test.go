package metrics

import (
	"testing"
	"time"

	"github.com/julianstephens/nanokata/internal/cycles"
	"github.com/julianstephens/nanokata/internal/models"
)

// fullDay returns one check-in in each of the given waking cycles for a date.
func dayCheckIns(date time.Time, wakingCycles ...int) []models.CheckIn {
	var out []models.CheckIn
	for _, c := range wakingCycles {
		minutes := c * cycles.CycleMinutes
		out = append(out, models.CheckIn{
			CheckedAt: time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location()),
			Now:       "work",
			Focus:     models.FocusRhyt,
			Soul:      "fine",
			Prep:      "more",
		})
	}
	return out
}

func allWaking() []int {
	var out []int
	for i := cycles.WakingStart; i <= cycles.WakingEnd; i++ {
		out = append(out, i)
	}
	return out
}

func fetchFromMap(t *testing.T, byDay map[string][]models.CheckIn) FetchDayFunc {
	t.Helper()
	return func(start, end time.Time) ([]models.CheckIn, error) {
		return byDay[cycles.DayKey(start)], nil
	}
}

func TestCurrentStreak_ThreeFullDaysThenGap(t *testing.T) {
	end := time.Date(2025, 11, 18, 20, 0, 0, 0, time.UTC)

	byDay := make(map[string][]models.CheckIn)
	for i := 0; i < 3; i++ {
		day := end.AddDate(0, 0, -i)
		byDay[cycles.DayKey(day)] = dayCheckIns(day, allWaking()...)
	}
	// Fourth (older) day covers only 8 of 9 waking cycles.
	older := end.AddDate(0, 0, -3)
	byDay[cycles.DayKey(older)] = dayCheckIns(older, allWaking()[:8]...)

	streak, err := CurrentStreak(end, time.UTC, fetchFromMap(t, byDay))
	if err != nil {
		t.Fatalf("CurrentStreak failed: %v", err)
	}
	if streak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", streak)
	}
}

func TestCurrentStreak_ZeroWhenTodayIncomplete(t *testing.T) {
	end := time.Date(2025, 11, 18, 20, 0, 0, 0, time.UTC)
	byDay := map[string][]models.CheckIn{
		cycles.DayKey(end): dayCheckIns(end, 6, 7),
	}

	streak, err := CurrentStreak(end, time.UTC, fetchFromMap(t, byDay))
	if err != nil {
		t.Fatalf("CurrentStreak failed: %v", err)
	}
	if streak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", streak)
	}
}

func TestCurrentStreak_CapsAt365(t *testing.T) {
	end := time.Date(2025, 11, 18, 20, 0, 0, 0, time.UTC)

	// 400 consecutive fully-covered days; the fetch never reports a gap.
	fetch := func(start, end time.Time) ([]models.CheckIn, error) {
		return dayCheckIns(start, allWaking()...), nil
	}

	streak, err := CurrentStreak(end, time.UTC, fetch)
	if err != nil {
		t.Fatalf("CurrentStreak failed: %v", err)
	}
	if streak != MaxStreakDays {
		t.Errorf("CurrentStreak = %d, want cap %d", streak, MaxStreakDays)
	}
}

func TestStreakFromHistory_MatchesPerDayFetch(t *testing.T) {
	end := time.Date(2025, 11, 18, 20, 0, 0, 0, time.UTC)

	var history []models.CheckIn
	byDay := make(map[string][]models.CheckIn)
	for i := 0; i < 5; i++ {
		day := end.AddDate(0, 0, -i)
		covered := allWaking()
		if i == 4 {
			covered = covered[:5] // break the streak on the oldest day
		}
		cis := dayCheckIns(day, covered...)
		history = append(history, cis...)
		byDay[cycles.DayKey(day)] = cis
	}

	fromFetch, err := CurrentStreak(end, time.UTC, fetchFromMap(t, byDay))
	if err != nil {
		t.Fatalf("CurrentStreak failed: %v", err)
	}
	fromHistory := StreakFromHistory(history, end, time.UTC)

	if fromFetch != fromHistory {
		t.Errorf("strategies disagree: per-day fetch = %d, history = %d", fromFetch, fromHistory)
	}
	if fromHistory != 4 {
		t.Errorf("StreakFromHistory = %d, want 4", fromHistory)
	}
}

func TestStreakFromHistory_CapsAt365(t *testing.T) {
	end := time.Date(2025, 11, 18, 20, 0, 0, 0, time.UTC)

	var history []models.CheckIn
	for i := 0; i < 400; i++ {
		day := end.AddDate(0, 0, -i)
		history = append(history, dayCheckIns(day, allWaking()...)...)
	}

	if got := StreakFromHistory(history, end, time.UTC); got != MaxStreakDays {
		t.Errorf("StreakFromHistory = %d, want cap %d", got, MaxStreakDays)
	}
}
