package calendar

import (
	"testing"
	"time"
)

func TestParseMoment(t *testing.T) {
	now := time.Date(2025, time.June, 11, 14, 30, 5, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"empty", "", now, false},
		{"today", "today", now, false},
		{"tomorrow", "tomorrow", now.AddDate(0, 0, 1), false},
		{"yesterday", "yesterday", now.AddDate(0, 0, -1), false},
		{"plus days", "+3d", now.AddDate(0, 0, 3), false},
		{"bare days", "3d", now.AddDate(0, 0, 3), false},
		{"minus weeks", "-2w", now.AddDate(0, 0, -14), false},
		{"iso date keeps clock", "2025-12-24", time.Date(2025, time.December, 24, 14, 30, 5, 0, time.UTC), false},
		{"rfc3339", "2025-10-31T07:00:00Z", time.Date(2025, time.October, 31, 7, 0, 0, 0, time.UTC), false},
		{"bad unit", "5m", time.Time{}, true},
		{"bad date", "2025-13-45", time.Time{}, true},
		{"words", "next friday", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoment(tt.input, now)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseMoment(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoment(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseMoment(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMoment_RFC3339ConvertsZone(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, time.June, 11, 9, 0, 0, 0, loc)

	got, err := ParseMoment("2025-06-12T02:00:00Z", now)
	if err != nil {
		t.Fatal(err)
	}
	if got.Location() != loc || got.Day() != 11 || got.Hour() != 21 {
		t.Errorf("ParseMoment converted to %v, want 2025-06-11 21:00 UTC-5", got)
	}
}
