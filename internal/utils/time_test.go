package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	t.Run("empty returns local", func(t *testing.T) {
		loc, err := LoadLocation("")
		if err != nil {
			t.Fatalf("LoadLocation failed: %v", err)
		}
		if loc != time.Local {
			t.Errorf("LoadLocation(\"\") = %v, want Local", loc)
		}
	})

	t.Run("IANA name", func(t *testing.T) {
		loc, err := LoadLocation("Europe/Berlin")
		if err != nil {
			t.Fatalf("LoadLocation failed: %v", err)
		}
		if loc.String() != "Europe/Berlin" {
			t.Errorf("LoadLocation = %v, want Europe/Berlin", loc)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		if _, err := LoadLocation("Not/AZone"); err == nil {
			t.Error("expected error for invalid timezone")
		}
	})
}

func TestParseDateInLocation(t *testing.T) {
	loc, err := LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	day, err := ParseDateInLocation("2025-11-18", loc)
	if err != nil {
		t.Fatalf("ParseDateInLocation failed: %v", err)
	}
	if day.Hour() != 0 || day.Minute() != 0 || day.Location() != loc {
		t.Errorf("ParseDateInLocation = %v, want midnight in %v", day, loc)
	}

	if _, err := ParseDateInLocation("18/11/2025", loc); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"ISO with Z", "2025-11-18T09:10:00Z", false},
		{"ISO with millis", "2025-11-18T09:10:00.123Z", false},
		{"ISO with offset", "2025-11-18T09:10:00+02:00", false},
		{"legacy sqlite format", "2025-11-18 09:10:00", true},
		{"garbage", "not-a-timestamp", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTimestamp(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseTimestamp(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestFormatTimestamp_RoundTrip(t *testing.T) {
	loc, err := LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	original := time.Date(2025, 11, 18, 18, 10, 5, int(120*time.Millisecond), loc)
	formatted := FormatTimestamp(original)

	parsed, err := ParseTimestamp(formatted)
	if err != nil {
		t.Fatalf("round-trip parse failed: %v", err)
	}
	if !parsed.Equal(original) {
		t.Errorf("round-trip changed instant: %v -> %v", original, parsed)
	}
	// Stored values always carry the UTC designator.
	if formatted[len(formatted)-1] != 'Z' {
		t.Errorf("FormatTimestamp %q is not UTC-normalized", formatted)
	}
}

func TestValidateTimezone(t *testing.T) {
	if !ValidateTimezone("Local") || !ValidateTimezone("") || !ValidateTimezone("UTC") {
		t.Error("expected Local/empty/UTC to validate")
	}
	if ValidateTimezone("Mars/Olympus") {
		t.Error("expected invalid timezone to fail validation")
	}
}
