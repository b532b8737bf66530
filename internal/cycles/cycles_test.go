package cycles

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 11, 18, hour, min, 0, 0, time.UTC)
}

func TestIndexOf_Boundaries(t *testing.T) {
	midnight := time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC)
	if got := IndexOf(midnight); got != 0 {
		t.Errorf("IndexOf(00:00:00.000) = %d, want 0", got)
	}

	lastInstant := time.Date(2025, 11, 18, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if got := IndexOf(lastInstant); got != 15 {
		t.Errorf("IndexOf(23:59:59.999) = %d, want 15", got)
	}
}

func TestIndexOf_FullPartition(t *testing.T) {
	// Every minute of cycle i's [i*90, (i+1)*90) window must map to i.
	for i := 0; i < TotalCycles; i++ {
		for _, offset := range []int{0, 1, 45, 89} {
			minutes := i*CycleMinutes + offset
			tm := at(minutes/60, minutes%60)
			if got := IndexOf(tm); got != i {
				t.Errorf("IndexOf(%02d:%02d) = %d, want %d", minutes/60, minutes%60, got, i)
			}
		}
	}
}

func TestIndexOf_Monotonic(t *testing.T) {
	prev := -1
	for minutes := 0; minutes < 24*60; minutes++ {
		got := IndexOf(at(minutes/60, minutes%60))
		if got < prev {
			t.Fatalf("IndexOf not monotonic at minute %d: %d < %d", minutes, got, prev)
		}
		prev = got
	}
}

func TestIsWaking(t *testing.T) {
	want := map[int]bool{6: true, 7: true, 8: true, 9: true, 10: true, 11: true, 12: true, 13: true, 14: true}
	for i := 0; i < TotalCycles; i++ {
		if got := IsWaking(i); got != want[i] {
			t.Errorf("IsWaking(%d) = %v, want %v", i, got, want[i])
		}
	}
}

func TestWakingCount(t *testing.T) {
	if got := WakingCount(); got != 9 {
		t.Errorf("WakingCount() = %d, want 9", got)
	}
}

func TestLabel(t *testing.T) {
	cases := []struct {
		cycle int
		want  string
	}{
		{0, "0"},
		{9, "9"},
		{10, "A"},
		{15, "F"},
	}
	for _, tc := range cases {
		if got := Label(tc.cycle); got != tc.want {
			t.Errorf("Label(%d) = %q, want %q", tc.cycle, got, tc.want)
		}
	}
}

func TestDayBoundaries(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	ref := time.Date(2025, 11, 18, 14, 30, 12, 345, loc)

	start := StartOfDay(ref)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("StartOfDay = %v, want midnight", start)
	}
	if start.Location() != loc {
		t.Errorf("StartOfDay changed location to %v", start.Location())
	}

	end := EndOfDay(ref)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("EndOfDay = %v, want 23:59:59", end)
	}
	if end.Nanosecond() != int(999*time.Millisecond) {
		t.Errorf("EndOfDay nanoseconds = %d, want 999ms", end.Nanosecond())
	}

	if got := DayKey(ref); got != "2025-11-18" {
		t.Errorf("DayKey = %q, want 2025-11-18", got)
	}
}
