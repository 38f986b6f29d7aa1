package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
)

type ScheduleService interface {
	AddSlot(ctx context.Context, ownerID string, weekday, hour, minute int, timezone string) (*entity.RecurringSlot, error)
	RemoveSlot(ctx context.Context, ownerID string, weekday, hour, minute int) (int64, error)
	ListSlots(ctx context.Context, ownerID string) ([]*entity.RecurringSlot, error)
	ClearSlots(ctx context.Context, ownerID string) (int64, error)
	HasAnySlot(ctx context.Context, ownerID string) (bool, error)
	GetSlot(ctx context.Context, ownerID string, weekday, hour, minute int) (*entity.RecurringSlot, error)
}

type ShiftLedger interface {
	PostShift(ctx context.Context, input PostShiftInput) (*entity.Shift, error)
	PostFromSlot(ctx context.Context, input PostFromSlotInput) (*entity.Shift, error)
	ClaimShift(ctx context.Context, reference, claimant string, now time.Time) (*entity.Shift, error)
	UpdateShift(ctx context.Context, input UpdateShiftInput) (*entity.Shift, error)
	CancelShift(ctx context.Context, reference, actor string, isAdmin bool) (*entity.CancelResult, error)
	GetShift(ctx context.Context, reference string) (*entity.Shift, error)
	ShiftStats(ctx context.Context, userID string) (*entity.ShiftStats, error)
	ListEditable(ctx context.Context, actor string, isAdmin bool) ([]*entity.Shift, error)
	ListCancellable(ctx context.Context, actor string, isAdmin bool) ([]*entity.Shift, error)
}

// PostShiftInput describes an ad-hoc shift.
type PostShiftInput struct {
	Reference     string
	ChannelID     string
	Description   string
	CreatedBy     string
	StartAt       time.Time
	DurationHours float64
}

// PostFromSlotInput describes a shift materialized from an owner's recurring slot.
// A zero Date means the next occurrence of the slot and a nil DurationHours
// means the default duration.
type PostFromSlotInput struct {
	Reference     string
	ChannelID     string
	Description   string
	CreatedBy     string
	OwnerID       string
	Weekday       int
	Hour          int
	Minute        int
	DurationHours *float64
	Date          time.Time
}

// UpdateShiftInput describes an edit. Nil fields are left unchanged.
type UpdateShiftInput struct {
	Reference     string
	Actor         string
	IsAdmin       bool
	Description   *string
	StartAt       *time.Time
	DurationHours *float64
}
