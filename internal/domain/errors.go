package domain

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrStartInPast     = errors.New("start time must be in the future")
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrNoChanges       = errors.New("no changes provided")
)

// Conflict errors
var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrDuplicateReference = errors.New("duplicate shift reference")
	ErrAlreadyClaimed     = errors.New("shift already claimed")
	ErrAlreadyCancelled   = errors.New("shift already cancelled")
	ErrNotEditable        = errors.New("shift is not editable")
	ErrOwnShift           = errors.New("cannot claim own shift")
)

var (
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrFairnessBlocked = errors.New("fairness cap reached")
)

// ClaimConflictError is returned when another moderator already holds the shift.
type ClaimConflictError struct {
	ClaimedBy string
}

func (e *ClaimConflictError) Error() string {
	return fmt.Sprintf("shift already claimed by %s", e.ClaimedBy)
}

func (e *ClaimConflictError) Is(target error) bool {
	return target == ErrAlreadyClaimed
}

// FairnessBlockedError carries the claimant's trailing total so callers can show it.
type FairnessBlockedError struct {
	TotalHours float64
	LockWindow time.Duration
}

func (e *FairnessBlockedError) Error() string {
	return fmt.Sprintf("fairness cap reached: %.2fh claimed in window, only shifts starting within %s can be claimed",
		e.TotalHours, e.LockWindow)
}

func (e *FairnessBlockedError) Is(target error) bool {
	return target == ErrFairnessBlocked
}

// DurationError reports a duration outside the configured bounds.
type DurationError struct {
	Hours    float64
	MinHours float64
	MaxHours float64
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("invalid duration: %.2fh is outside %.2f-%.2fh", e.Hours, e.MinHours, e.MaxHours)
}

func (e *DurationError) Is(target error) bool {
	return target == ErrInvalidDuration
}

// IsExpected reports whether err is a domain outcome rather than a storage fault.
func IsExpected(err error) bool {
	for _, target := range []error{
		ErrInvalidInput, ErrInvalidDuration, ErrStartInPast, ErrInvalidTimezone, ErrNoChanges,
		ErrAlreadyExists, ErrDuplicateReference, ErrAlreadyClaimed, ErrAlreadyCancelled,
		ErrNotEditable, ErrOwnShift, ErrForbidden, ErrNotFound, ErrFairnessBlocked,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
