package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
)

const shiftColumns = `id, reference, channel_id, description, created_by, created_at, start_at,
	duration_hours, origin_owner_id, claimed_by, claimed_at, cancelled`

type shiftRepo struct {
	db dbConn
}

func newShiftRepo(db dbConn) contract.ShiftRepo {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(ctx context.Context, shift *entity.Shift) error {
	query := `
		INSERT INTO shifts (reference, channel_id, description, created_by, created_at,
			start_at, duration_hours, origin_owner_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	if shift.CreatedAt.IsZero() {
		shift.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query,
		shift.Reference,
		shift.ChannelID,
		shift.Description,
		shift.CreatedBy,
		toMillis(shift.CreatedAt),
		toMillis(shift.StartAt),
		shift.DurationHours,
		nullString(shift.OriginOwnerID),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateReference, shift.Reference)
	}
	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	shift.ID = id
	return nil
}

func (r *shiftRepo) GetByReference(ctx context.Context, reference string) (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE reference = ?`

	shift, err := scanShift(r.db.QueryRowContext(ctx, query, reference))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	return shift, nil
}

// Claim sets the claimer only while the shift is still open and, when
// startsBy is set, only while it starts no later than startsBy. The affected
// row count is the only success signal.
func (r *shiftRepo) Claim(ctx context.Context, reference, claimant string, at time.Time, startsBy *time.Time) (bool, error) {
	query := `
		UPDATE shifts SET
			claimed_by = ?,
			claimed_at = ?
		WHERE reference = ? AND claimed_by IS NULL AND cancelled = 0
	`
	args := []any{claimant, toMillis(at), reference}
	if startsBy != nil {
		query += ` AND start_at <= ?`
		args = append(args, toMillis(*startsBy))
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to claim shift: %w", err)
	}

	n, err := rowsAffected(result)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *shiftRepo) Update(ctx context.Context, reference string, patch entity.ShiftPatch) (bool, error) {
	var sets []string
	var args []any

	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.StartAt != nil {
		sets = append(sets, "start_at = ?")
		args = append(args, toMillis(*patch.StartAt))
	}
	if patch.DurationHours != nil {
		sets = append(sets, "duration_hours = ?")
		args = append(args, *patch.DurationHours)
	}
	if len(sets) == 0 {
		return false, nil
	}

	query := `UPDATE shifts SET ` + strings.Join(sets, ", ") + `
		WHERE reference = ? AND claimed_by IS NULL AND cancelled = 0`
	args = append(args, reference)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update shift: %w", err)
	}

	n, err := rowsAffected(result)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *shiftRepo) Cancel(ctx context.Context, reference string) (bool, error) {
	query := `UPDATE shifts SET cancelled = 1 WHERE reference = ? AND cancelled = 0`

	result, err := r.db.ExecContext(ctx, query, reference)
	if err != nil {
		return false, fmt.Errorf("failed to cancel shift: %w", err)
	}

	n, err := rowsAffected(result)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *shiftRepo) SumClaimedHours(ctx context.Context, userID string, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(duration_hours), 0.0)
		FROM shifts
		WHERE claimed_by = ?
		  AND cancelled = 0
		  AND claimed_at >= ?
		  AND claimed_at <= ?
	`

	var total float64
	err := r.db.QueryRowContext(ctx, query, userID, toMillis(from), toMillis(to)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum claimed hours: %w", err)
	}

	return total, nil
}

func (r *shiftRepo) Stats(ctx context.Context, userID string) (int, float64, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(duration_hours), 0.0)
		FROM shifts
		WHERE claimed_by = ? AND cancelled = 0
	`

	var count int
	var hours float64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count, &hours); err != nil {
		return 0, 0, fmt.Errorf("failed to get shift stats: %w", err)
	}

	return count, hours, nil
}

// ListOpen returns open shifts, newest first. An empty createdBy lists every creator.
func (r *shiftRepo) ListOpen(ctx context.Context, createdBy string, limit int) ([]*entity.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE cancelled = 0 AND claimed_by IS NULL
		  AND (? = '' OR created_by = ?)
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	return r.list(ctx, query, createdBy, createdBy, limit)
}

// ListActive returns shifts that are not cancelled and were created or claimed
// by userID, newest first. An empty userID lists every active shift.
func (r *shiftRepo) ListActive(ctx context.Context, userID string, limit int) ([]*entity.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE cancelled = 0
		  AND (? = '' OR created_by = ? OR claimed_by = ?)
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	return r.list(ctx, query, userID, userID, userID, limit)
}

func (r *shiftRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Shift, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}
	defer rows.Close()

	var shifts []*entity.Shift
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, shift)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}

func scanShift(row scanner) (*entity.Shift, error) {
	shift := &entity.Shift{}
	var (
		createdAt, startAt int64
		originOwner        sql.NullString
		claimedBy          sql.NullString
		claimedAt          sql.NullInt64
	)

	err := row.Scan(
		&shift.ID,
		&shift.Reference,
		&shift.ChannelID,
		&shift.Description,
		&shift.CreatedBy,
		&createdAt,
		&startAt,
		&shift.DurationHours,
		&originOwner,
		&claimedBy,
		&claimedAt,
		&shift.Cancelled,
	)
	if err != nil {
		return nil, err
	}

	shift.CreatedAt = fromMillis(createdAt)
	shift.StartAt = fromMillis(startAt)
	shift.OriginOwnerID = originOwner.String
	shift.ClaimedBy = claimedBy.String
	if claimedAt.Valid {
		at := fromMillis(claimedAt.Int64)
		shift.ClaimedAt = &at
	}

	return shift, nil
}
