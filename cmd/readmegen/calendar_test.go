package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gorewood/readmegen/internal/output"
)

func TestCalendar_Human(t *testing.T) {
	setupWorkdir(t)

	stdout, _, err := execute(t, "calendar", "--year", "2025")
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}

	for _, want := range []string{
		"Seasons 2025",
		"Easter: 2025-04-20",
		"holiday",
		"2025-12-01",
		"autumn",
		"2025-10-15",
		"bunny",
		"2025-04-03",
		"2025-04-09",
		"🐰",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestCalendar_DefaultsToCurrentYear(t *testing.T) {
	setupWorkdir(t)
	pinClock(t, wednesdayMorning)

	stdout, _, err := execute(t, "calendar", "--json")
	if err != nil {
		t.Fatalf("calendar failed: %v", err)
	}

	var result struct {
		Year    int              `json:"year"`
		Easter  string           `json:"easter"`
		Windows []calendarWindow `json:"windows"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if result.Year != 2025 || result.Easter != "2025-04-20" {
		t.Errorf("year = %d, easter = %q", result.Year, result.Easter)
	}
	if len(result.Windows) != 3 {
		t.Fatalf("got %d windows, want 3", len(result.Windows))
	}
	bunny := result.Windows[2]
	if bunny.Start != "2025-04-03" || bunny.End != "2025-04-09" {
		t.Errorf("bunny window = %+v", bunny)
	}
	if len(result.Windows[0].Options) != 10 {
		t.Errorf("holiday options = %d, want 10", len(result.Windows[0].Options))
	}
}

func TestCalendar_YearOutOfRange(t *testing.T) {
	setupWorkdir(t)

	_, _, err := execute(t, "calendar", "--year", "1200")
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}
