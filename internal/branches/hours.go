package branches

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// IsOpen reports whether the branch accepts orders at the given wall-clock
// time. Inactive branches are never open. The window is [Open, Close) in
// minutes of day; overnight windows (Close before Open) are not supported
// and evaluate as closed.
func IsOpen(b Branch, now time.Time) bool {
	if !b.IsActive {
		return false
	}

	open, err := parseClock(b.OpeningHours.Open)
	if err != nil {
		return false
	}
	closing, err := parseClock(b.OpeningHours.Close)
	if err != nil {
		return false
	}

	minutes := now.Hour()*60 + now.Minute()
	return minutes >= open && minutes < closing
}

func parseClock(value string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hours in %q", value)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q", value)
	}
	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("clock value %q out of range", value)
	}
	return hours*60 + mins, nil
}
