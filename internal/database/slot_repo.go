package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
)

const slotColumns = `id, owner_id, weekday, hour, minute, timezone, created_at`

type slotRepo struct {
	db dbConn
}

func newSlotRepo(db dbConn) contract.SlotRepo {
	return &slotRepo{db: db}
}

func (r *slotRepo) Create(ctx context.Context, slot *entity.RecurringSlot) error {
	query := `
		INSERT INTO recurring_slots (owner_id, weekday, hour, minute, timezone, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query,
		slot.OwnerID,
		slot.Weekday,
		slot.Hour,
		slot.Minute,
		slot.Timezone,
		toMillis(slot.CreatedAt),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s already has slot %d %02d:%02d", domain.ErrAlreadyExists,
			slot.OwnerID, slot.Weekday, slot.Hour, slot.Minute)
	}
	if err != nil {
		return fmt.Errorf("failed to create slot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	slot.ID = id
	return nil
}

func (r *slotRepo) Get(ctx context.Context, ownerID string, weekday, hour, minute int) (*entity.RecurringSlot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM recurring_slots
		WHERE owner_id = ? AND weekday = ? AND hour = ? AND minute = ?
	`

	slot, err := scanSlot(r.db.QueryRowContext(ctx, query, ownerID, weekday, hour, minute))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}

	return slot, nil
}

func (r *slotRepo) Delete(ctx context.Context, ownerID string, weekday, hour, minute int) (int64, error) {
	query := `DELETE FROM recurring_slots WHERE owner_id = ? AND weekday = ? AND hour = ? AND minute = ?`

	result, err := r.db.ExecContext(ctx, query, ownerID, weekday, hour, minute)
	if err != nil {
		return 0, fmt.Errorf("failed to delete slot: %w", err)
	}

	return rowsAffected(result)
}

func (r *slotRepo) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	query := `DELETE FROM recurring_slots WHERE owner_id = ?`

	result, err := r.db.ExecContext(ctx, query, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear slots: %w", err)
	}

	return rowsAffected(result)
}

func (r *slotRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.RecurringSlot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM recurring_slots
		WHERE owner_id = ?
		ORDER BY weekday ASC, hour ASC, minute ASC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get slots: %w", err)
	}
	defer rows.Close()

	var slots []*entity.RecurringSlot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate slots: %w", err)
	}

	return slots, nil
}

func (r *slotRepo) ExistsForOwner(ctx context.Context, ownerID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM recurring_slots WHERE owner_id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slots: %w", err)
	}

	return exists, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSlot(row scanner) (*entity.RecurringSlot, error) {
	slot := &entity.RecurringSlot{}
	var createdAt int64

	err := row.Scan(
		&slot.ID,
		&slot.OwnerID,
		&slot.Weekday,
		&slot.Hour,
		&slot.Minute,
		&slot.Timezone,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = fromMillis(createdAt)
	return slot, nil
}

func rowsAffected(result sql.Result) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
