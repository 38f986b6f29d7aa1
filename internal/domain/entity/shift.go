package entity

import "time"

type ShiftState string

const (
	ShiftStateOpen      ShiftState = "open"
	ShiftStateClaimed   ShiftState = "claimed"
	ShiftStateCancelled ShiftState = "cancelled"
)

// Shift is a single concrete coverage instance.
type Shift struct {
	ID            int64
	Reference     string
	ChannelID     string
	Description   string
	CreatedBy     string
	CreatedAt     time.Time
	StartAt       time.Time
	DurationHours float64
	OriginOwnerID string // empty for ad-hoc shifts
	ClaimedBy     string // empty while open
	ClaimedAt     *time.Time
	Cancelled     bool
}

func (s *Shift) State() ShiftState {
	switch {
	case s.Cancelled:
		return ShiftStateCancelled
	case s.ClaimedBy != "":
		return ShiftStateClaimed
	default:
		return ShiftStateOpen
	}
}

func (s *Shift) IsOpen() bool {
	return s.State() == ShiftStateOpen
}

// EndAt returns the instant the shift ends.
func (s *Shift) EndAt() time.Time {
	return s.StartAt.Add(time.Duration(s.DurationHours * float64(time.Hour)))
}

// ShiftPatch lists the fields an edit may change. Nil fields are left as is.
type ShiftPatch struct {
	Description   *string
	StartAt       *time.Time
	DurationHours *float64
}

func (p ShiftPatch) IsEmpty() bool {
	return p.Description == nil && p.StartAt == nil && p.DurationHours == nil
}

// ShiftStats summarizes a moderator's claimed coverage.
type ShiftStats struct {
	ClaimedCount int
	TotalHours   float64
	WindowHours  float64
}

// CancelResult describes what a cancel call did.
type CancelResult struct {
	Shift            *Shift
	WasClaimed       bool
	PreviousClaimer  string
	AlreadyCancelled bool
}
