// Package timeslot turns recurring weekly slots into absolute instants.
//
// All functions are pure and safe for concurrent use. Zone offsets are
// resolved per occurrence, so a slot keeps its wall-clock time across DST
// changes. Local times that fall in a DST gap are moved forward to the end
// of the gap; ambiguous local times resolve to the earlier instant.
package timeslot

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zone data must not depend on the host

	"github.com/diegoclair/slack-shift-bot/internal/domain"
)

// maxZoneOffset bounds the distance between a wall-clock reading and UTC.
const maxZoneOffset = 15 * time.Hour

// LoadLocation resolves an IANA zone name.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, name)
	}
	return loc, nil
}

// ValidateTimezone returns nil when name is a known IANA zone.
func ValidateTimezone(name string) error {
	_, err := LoadLocation(name)
	return err
}

// ValidateSlot checks weekday, hour and minute ranges.
func ValidateSlot(weekday, hour, minute int) error {
	if weekday < domain.Monday || weekday > domain.Sunday {
		return fmt.Errorf("%w: weekday %d out of range 0-6", domain.ErrInvalidInput, weekday)
	}
	if hour < 0 || hour > 23 {
		return fmt.Errorf("%w: hour %d out of range 0-23", domain.ErrInvalidInput, hour)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("%w: minute %d out of range 0-59", domain.ErrInvalidInput, minute)
	}
	return nil
}

// NextOccurrence returns the first instant strictly after ref whose local time
// in timezone is weekday at hour:minute. The result is in UTC.
func NextOccurrence(weekday, hour, minute int, timezone string, ref time.Time) (time.Time, error) {
	if err := ValidateSlot(weekday, hour, minute); err != nil {
		return time.Time{}, err
	}
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}

	local := ref.In(loc)
	daysAhead := (weekday - slotWeekday(local.Weekday()) + 7) % 7
	year, month, day := local.Date()

	// two weeks always suffice: the second candidate is at least six days past ref
	for week := 0; week < 3; week++ {
		at := resolveLocal(year, month, day+daysAhead+7*week, hour, minute, loc)
		if at.After(ref) {
			return at.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("no occurrence found for weekday %d %02d:%02d in %s", weekday, hour, minute, timezone)
}

// OnDate resolves hour:minute on the calendar date of date (year, month and
// day only) in timezone, with the same gap and ambiguity rules.
func OnDate(date time.Time, hour, minute int, timezone string) (time.Time, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: time %02d:%02d", domain.ErrInvalidInput, hour, minute)
	}
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}
	return resolveLocal(date.Year(), date.Month(), date.Day(), hour, minute, loc).UTC(), nil
}

// FormatOffset renders the zone's UTC offset at the given instant, e.g. "UTC-5" or "UTC+5:30".
func FormatOffset(timezone string, at time.Time) (string, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return "", err
	}

	_, offset := at.In(loc).Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if minutes == 0 {
		return fmt.Sprintf("UTC%s%d", sign, hours), nil
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, hours, minutes), nil
}

func resolveLocal(year int, month time.Month, day, hour, minute int, loc *time.Location) time.Time {
	wall := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)

	var earliest, match time.Time
	found := false
	for _, offset := range offsetsAround(wall, loc) {
		candidate := wall.Add(-time.Duration(offset) * time.Second)
		if earliest.IsZero() || candidate.Before(earliest) {
			earliest = candidate
		}
		if !sameWallClock(candidate.In(loc), wall) {
			continue
		}
		if !found || candidate.Before(match) {
			match = candidate
			found = true
		}
	}
	if found {
		return match
	}

	// The wall clock was skipped. The earliest candidate still sits in the
	// period before the jump, which ends at the first valid instant.
	_, end := earliest.In(loc).ZoneBounds()
	if end.IsZero() {
		return earliest
	}
	return end
}

// offsetsAround lists every UTC offset loc uses within maxZoneOffset of wall.
func offsetsAround(wall time.Time, loc *time.Location) []int {
	until := wall.Add(maxZoneOffset)

	var offsets []int
	for at := wall.Add(-maxZoneOffset); ; {
		local := at.In(loc)
		_, offset := local.Zone()
		if !containsOffset(offsets, offset) {
			offsets = append(offsets, offset)
		}

		_, end := local.ZoneBounds()
		if end.IsZero() || !end.Before(until) {
			break
		}
		at = end
	}
	return offsets
}

func containsOffset(offsets []int, offset int) bool {
	for _, o := range offsets {
		if o == offset {
			return true
		}
	}
	return false
}

func sameWallClock(local, wall time.Time) bool {
	ly, lm, ld := local.Date()
	wy, wm, wd := wall.Date()
	return ly == wy && lm == wm && ld == wd &&
		local.Hour() == wall.Hour() && local.Minute() == wall.Minute()
}

// slotWeekday converts Go's Sunday-first weekday to the Monday-first numbering.
func slotWeekday(w time.Weekday) int {
	return (int(w) + 6) % 7
}
