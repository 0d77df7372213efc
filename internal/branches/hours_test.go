package branches

import (
	"testing"
	"time"
)

func clock(hour, minute int) time.Time {
	return time.Date(2026, time.March, 9, hour, minute, 0, 0, time.UTC)
}

func TestIsOpenWithinWindow(t *testing.T) {
	t.Parallel()

	branch := Branch{
		IsActive:     true,
		OpeningHours: OpeningHours{Open: "07:00", Close: "22:00"},
	}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "before opening", now: clock(6, 59), want: false},
		{name: "at opening", now: clock(7, 0), want: true},
		{name: "mid day", now: clock(12, 30), want: true},
		{name: "minute before close", now: clock(21, 59), want: true},
		{name: "at close is exclusive", now: clock(22, 0), want: false},
		{name: "after close", now: clock(23, 15), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsOpen(branch, tc.now); got != tc.want {
				t.Fatalf("IsOpen at %s: expected %v, got %v", tc.now.Format("15:04"), tc.want, got)
			}
		})
	}
}

func TestIsOpenInactiveBranch(t *testing.T) {
	t.Parallel()

	branch := Branch{
		IsActive:     false,
		OpeningHours: OpeningHours{Open: "00:00", Close: "23:59"},
	}
	if IsOpen(branch, clock(12, 0)) {
		t.Fatal("expected inactive branch to be closed")
	}
}

func TestIsOpenOvernightWindowEvaluatesClosed(t *testing.T) {
	t.Parallel()

	branch := Branch{
		IsActive:     true,
		OpeningHours: OpeningHours{Open: "22:00", Close: "02:00"},
	}
	for _, now := range []time.Time{clock(23, 0), clock(1, 0), clock(12, 0)} {
		if IsOpen(branch, now) {
			t.Fatalf("expected overnight window to evaluate closed at %s", now.Format("15:04"))
		}
	}
}

func TestIsOpenMalformedHours(t *testing.T) {
	t.Parallel()

	branch := Branch{
		IsActive:     true,
		OpeningHours: OpeningHours{Open: "7am", Close: "22:00"},
	}
	if IsOpen(branch, clock(12, 0)) {
		t.Fatal("expected malformed hours to evaluate closed")
	}
}

func TestNewDirectoryRejectsDuplicates(t *testing.T) {
	t.Parallel()

	entries := Seed()
	entries = append(entries, entries[0])
	if _, err := NewDirectory(entries); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestNewDirectorySeedIsValid(t *testing.T) {
	t.Parallel()

	dir, err := NewDirectory(Seed())
	if err != nil {
		t.Fatalf("seed directory: %v", err)
	}
	if len(dir.Active()) != 4 {
		t.Fatalf("expected 4 active branches, got %d", len(dir.Active()))
	}
	if dir.FindByID("br-go-vap") == nil {
		t.Fatal("expected inactive branch to remain findable")
	}
	if dir.FindByID("br-missing") != nil {
		t.Fatal("expected nil for unknown id")
	}
}
