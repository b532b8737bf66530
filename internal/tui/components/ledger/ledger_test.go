package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/nanokata/internal/models"
)

func TestEmptyLedgerShowsHint(t *testing.T) {
	m := New(time.UTC, 80, 20)

	out := m.View()
	if !strings.Contains(out, "No check-ins yet today") {
		t.Errorf("expected empty-state hint, got:\n%s", out)
	}
}

func TestViewShowsCheckInRow(t *testing.T) {
	m := New(time.UTC, 80, 20)
	m.SetCheckIns([]models.CheckIn{
		{
			ID:        1,
			CheckedAt: time.Date(2024, 3, 1, 9, 10, 0, 0, time.UTC),
			Now:       "deep work",
			Focus:     models.FocusRhyt,
			Soul:      "calm",
			Prep:      "review notes",
		},
	})

	out := m.View()
	for _, want := range []string{"deep work", "rhyt", "calm", "review notes"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in ledger view, got:\n%s", want, out)
		}
	}
	// 09:10 UTC falls in cycle 6.
	if !strings.Contains(out, "6") {
		t.Errorf("expected cycle label in ledger view, got:\n%s", out)
	}
}

func TestTimesRenderInConfiguredTimezone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	m := New(ny, 80, 20)
	m.SetCheckIns([]models.CheckIn{
		{ID: 1, CheckedAt: time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC), Now: "lunch", Focus: models.FocusOther},
	})

	// 14:00 UTC is 09:00 in New York.
	if out := m.View(); !strings.Contains(out, "09:00") {
		t.Errorf("expected local time 09:00 in view, got:\n%s", out)
	}
}
