package domain

import "time"

// Weekday constants used by recurring slots. The week starts on Monday.
const (
	Monday    = 0
	Tuesday   = 1
	Wednesday = 2
	Thursday  = 3
	Friday    = 4
	Saturday  = 5
	Sunday    = 6
)

// WeekdayNames maps slot weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// WeekdayNumbers maps lowercase names and abbreviations to weekday numbers
var WeekdayNumbers = map[string]int{
	"monday":    Monday,
	"mon":       Monday,
	"tuesday":   Tuesday,
	"tue":       Tuesday,
	"wednesday": Wednesday,
	"wed":       Wednesday,
	"thursday":  Thursday,
	"thu":       Thursday,
	"friday":    Friday,
	"fri":       Friday,
	"saturday":  Saturday,
	"sat":       Saturday,
	"sunday":    Sunday,
	"sun":       Sunday,
}

// Defaults for the fairness and duration policy
const (
	DefaultMaxHours7D       = 3.0
	DefaultHeavyLockWindow  = 60 * time.Minute
	DefaultMinDurationHours = 0.25
	DefaultMaxDurationHours = 24.0
	DefaultFairnessWindow   = 7 * 24 * time.Hour
	DefaultTimezone         = "UTC"
	DefaultListLimit        = 25
)

// DefaultShiftDescription is used when an ad-hoc shift is posted without one
const DefaultShiftDescription = "Upcoming shift"

// DefaultShiftDurationHours is used when a slot shift is dropped without a duration
const DefaultShiftDurationHours = 1.0
