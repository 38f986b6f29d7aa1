package timeslot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
)

// ParseWeekday accepts English names, three-letter abbreviations or a digit 0-6 (0 = Monday).
func ParseWeekday(input string) (int, error) {
	value := strings.ToLower(strings.TrimSpace(input))
	if day, ok := domain.WeekdayNumbers[value]; ok {
		return day, nil
	}

	day, err := strconv.Atoi(value)
	if err != nil || day < domain.Monday || day > domain.Sunday {
		return 0, fmt.Errorf("%w: unknown weekday %q", domain.ErrInvalidInput, input)
	}
	return day, nil
}

// WeekdayName returns the English name of a slot weekday.
func WeekdayName(weekday int) string {
	if name, ok := domain.WeekdayNames[weekday]; ok {
		return name
	}
	return "Unknown"
}

// WeekdayOf returns the slot weekday of t as seen in loc.
func WeekdayOf(t time.Time, loc *time.Location) int {
	return slotWeekday(t.In(loc).Weekday())
}

// ParseClock parses a 24-hour "HH:MM" (or bare "HH") time of day.
func ParseClock(input string) (hour, minute int, err error) {
	value := strings.TrimSpace(input)
	if !strings.Contains(value, ":") {
		value += ":00"
	}

	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: time must be HH:MM (24-hour), got %q", domain.ErrInvalidInput, input)
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// FormatSlot renders a slot for display, e.g. "Monday 14:00 (America/New_York)".
func FormatSlot(weekday, hour, minute int, timezone string) string {
	return fmt.Sprintf("%s %02d:%02d (%s)", WeekdayName(weekday), hour, minute, timezone)
}
