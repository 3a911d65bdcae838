package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Settings holds the process-wide planning preferences. Changing settings
// affects future planning runs only; existing sessions stay where they are.
type Settings struct {
	DailyCapacityMin int
	BlockedWeekdays  map[time.Weekday]bool
}

// DefaultSettings returns the planning defaults for a new database.
func DefaultSettings() Settings {
	return Settings{
		DailyCapacityMin: 90,
		BlockedWeekdays:  map[time.Weekday]bool{time.Sunday: true},
	}
}

// Validate checks settings invariants.
func (s *Settings) Validate() error {
	if s.DailyCapacityMin <= 0 {
		return fmt.Errorf("daily capacity must be positive, got %d", s.DailyCapacityMin)
	}
	if len(s.BlockedWeekdays) >= 7 {
		return fmt.Errorf("cannot block all seven weekdays")
	}
	return nil
}

// BlockedWeekdaysString encodes the blocked set as a sorted comma-separated
// list of weekday numbers (0=Sunday) for storage.
func (s *Settings) BlockedWeekdaysString() string {
	var days []int
	for d, blocked := range s.BlockedWeekdays {
		if blocked {
			days = append(days, int(d))
		}
	}
	sort.Ints(days)
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return strings.Join(parts, ",")
}

// ParseBlockedWeekdays decodes a comma-separated weekday-number list.
// Unknown tokens are rejected.
func ParseBlockedWeekdays(encoded string) (map[time.Weekday]bool, error) {
	blocked := make(map[time.Weekday]bool)
	if encoded == "" {
		return blocked, nil
	}
	for _, part := range strings.Split(encoded, ",") {
		var n int
		if _, err := fmt.Sscanf(strings.TrimSpace(part), "%d", &n); err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid weekday %q in blocked list", part)
		}
		blocked[time.Weekday(n)] = true
	}
	return blocked, nil
}

// weekdayNames maps accepted CLI spellings to weekdays.
var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekdayName resolves a weekday name like "sun" or "Saturday".
func ParseWeekdayName(name string) (time.Weekday, error) {
	if d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}
