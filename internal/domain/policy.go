package domain

import "time"

// Policy holds the thresholds the shift ledger enforces.
type Policy struct {
	MaxHours7D       float64
	HeavyLockWindow  time.Duration
	MinDurationHours float64
	MaxDurationHours float64
	FairnessWindow   time.Duration
	DefaultTimezone  string
	ListLimit        int
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{
		MaxHours7D:       DefaultMaxHours7D,
		HeavyLockWindow:  DefaultHeavyLockWindow,
		MinDurationHours: DefaultMinDurationHours,
		MaxDurationHours: DefaultMaxDurationHours,
		FairnessWindow:   DefaultFairnessWindow,
		DefaultTimezone:  DefaultTimezone,
		ListLimit:        DefaultListLimit,
	}
}

// ValidDuration reports whether hours is within the configured bounds (inclusive).
func (p Policy) ValidDuration(hours float64) bool {
	return hours >= p.MinDurationHours && hours <= p.MaxDurationHours
}

// IsHeavy reports whether a trailing total puts a moderator over the cap.
func (p Policy) IsHeavy(totalHours float64) bool {
	return totalHours >= p.MaxHours7D
}

// WithinLockWindow reports whether a heavy moderator may still claim a shift
// starting at start. The boundary is inclusive.
func (p Policy) WithinLockWindow(start, now time.Time) bool {
	return start.Sub(now) <= p.HeavyLockWindow
}
