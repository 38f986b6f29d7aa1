package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Slot() SlotRepo
	Shift() ShiftRepo
}

// SlotRepo defines the contract for the recurring slot repository.
// Create returns domain.ErrAlreadyExists when the owner already has the same slot.
type SlotRepo interface {
	Create(ctx context.Context, slot *entity.RecurringSlot) error
	Get(ctx context.Context, ownerID string, weekday, hour, minute int) (*entity.RecurringSlot, error)
	Delete(ctx context.Context, ownerID string, weekday, hour, minute int) (int64, error)
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.RecurringSlot, error)
	ExistsForOwner(ctx context.Context, ownerID string) (bool, error)
}

// ShiftRepo defines the contract for the shift repository.
//
// Claim, Update and Cancel are conditional writes: they report whether a row
// was changed, and never change a row that is not in the required state.
type ShiftRepo interface {
	Create(ctx context.Context, shift *entity.Shift) error
	GetByReference(ctx context.Context, reference string) (*entity.Shift, error)
	Claim(ctx context.Context, reference, claimant string, at time.Time, startsBy *time.Time) (bool, error)
	Update(ctx context.Context, reference string, patch entity.ShiftPatch) (bool, error)
	Cancel(ctx context.Context, reference string) (bool, error)
	SumClaimedHours(ctx context.Context, userID string, from, to time.Time) (float64, error)
	Stats(ctx context.Context, userID string) (count int, hours float64, err error)
	ListOpen(ctx context.Context, createdBy string, limit int) ([]*entity.Shift, error)
	ListActive(ctx context.Context, userID string, limit int) ([]*entity.Shift, error)
}
