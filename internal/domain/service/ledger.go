package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/diegoclair/slack-shift-bot/internal/timeslot"
	"github.com/rs/zerolog"
)

type shiftLedger struct {
	dm       contract.DataManager
	schedule contract.ScheduleService
	policy   domain.Policy
	now      func() time.Time
	log      zerolog.Logger
}

func newLedger(dm contract.DataManager, schedule contract.ScheduleService, policy domain.Policy, log zerolog.Logger) *shiftLedger {
	return &shiftLedger{
		dm:       dm,
		schedule: schedule,
		policy:   policy,
		now:      time.Now,
		log:      log.With().Str("component", "ledger").Logger(),
	}
}

func (l *shiftLedger) PostShift(ctx context.Context, input contract.PostShiftInput) (*entity.Shift, error) {
	if err := l.validateNewShift(input.Reference, input.StartAt, input.DurationHours); err != nil {
		return nil, err
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = domain.DefaultShiftDescription
	}

	shift := &entity.Shift{
		Reference:     input.Reference,
		ChannelID:     input.ChannelID,
		Description:   description,
		CreatedBy:     input.CreatedBy,
		CreatedAt:     l.now().UTC(),
		StartAt:       input.StartAt.UTC(),
		DurationHours: input.DurationHours,
	}
	if err := l.dm.Shift().Create(ctx, shift); err != nil {
		return nil, err
	}

	l.log.Info().
		Str("reference", shift.Reference).
		Str("created_by", shift.CreatedBy).
		Time("start_at", shift.StartAt).
		Float64("hours", shift.DurationHours).
		Msg("shift posted")

	return shift, nil
}

func (l *shiftLedger) PostFromSlot(ctx context.Context, input contract.PostFromSlotInput) (*entity.Shift, error) {
	hours := domain.DefaultShiftDurationHours
	if input.DurationHours != nil {
		hours = *input.DurationHours
	}

	slot, err := l.schedule.GetSlot(ctx, input.OwnerID, input.Weekday, input.Hour, input.Minute)
	if err != nil {
		return nil, err
	}

	now := l.now().UTC()
	var start time.Time
	if input.Date.IsZero() {
		start, err = timeslot.NextOccurrence(slot.Weekday, slot.Hour, slot.Minute, slot.Timezone, now)
		if err != nil {
			return nil, err
		}
	} else {
		day := time.Date(input.Date.Year(), input.Date.Month(), input.Date.Day(), 0, 0, 0, 0, time.UTC)
		if timeslot.WeekdayOf(day, time.UTC) != slot.Weekday {
			return nil, fmt.Errorf("%w: %s is a %s, slot is on %s", domain.ErrInvalidInput,
				day.Format(time.DateOnly), timeslot.WeekdayName(timeslot.WeekdayOf(day, time.UTC)),
				timeslot.WeekdayName(slot.Weekday))
		}
		start, err = timeslot.OnDate(day, slot.Hour, slot.Minute, slot.Timezone)
		if err != nil {
			return nil, err
		}
	}

	if err := l.validateNewShift(input.Reference, start, hours); err != nil {
		return nil, err
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = fmt.Sprintf("Scheduled shift for <@%s>: %s at %02d:%02d (%s)",
			slot.OwnerID, timeslot.WeekdayName(slot.Weekday), slot.Hour, slot.Minute, slot.Timezone)
	}

	shift := &entity.Shift{
		Reference:     input.Reference,
		ChannelID:     input.ChannelID,
		Description:   description,
		CreatedBy:     input.CreatedBy,
		CreatedAt:     now,
		StartAt:       start,
		DurationHours: hours,
		OriginOwnerID: slot.OwnerID,
	}
	if err := l.dm.Shift().Create(ctx, shift); err != nil {
		return nil, err
	}

	l.log.Info().
		Str("reference", shift.Reference).
		Str("owner", slot.OwnerID).
		Time("start_at", shift.StartAt).
		Float64("hours", shift.DurationHours).
		Msg("slot shift posted")

	return shift, nil
}

func (l *shiftLedger) validateNewShift(reference string, start time.Time, hours float64) error {
	if strings.TrimSpace(reference) == "" {
		return fmt.Errorf("%w: shift reference is required", domain.ErrInvalidInput)
	}
	if !l.policy.ValidDuration(hours) {
		return l.durationError(hours)
	}
	if !start.After(l.now()) {
		return domain.ErrStartInPast
	}
	return nil
}

// ClaimShift assigns an open shift to claimant. The fairness total is read
// once at now; the transition itself is a single conditional write, so of
// any number of concurrent callers exactly one wins. For a heavy claimant the
// write also requires the start to still be inside the lock window.
func (l *shiftLedger) ClaimShift(ctx context.Context, reference, claimant string, now time.Time) (*entity.Shift, error) {
	now = now.UTC()

	shift, err := l.dm.Shift().GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if err := claimBlocker(shift, claimant); err != nil {
		return nil, err
	}

	total, err := l.dm.Shift().SumClaimedHours(ctx, claimant, now.Add(-l.policy.FairnessWindow), now)
	if err != nil {
		return nil, err
	}
	heavy := l.policy.IsHeavy(total)
	if heavy && !l.policy.WithinLockWindow(shift.StartAt, now) {
		return nil, l.fairnessBlocked(reference, claimant, total)
	}

	var startsBy *time.Time
	if heavy {
		limit := now.Add(l.policy.HeavyLockWindow)
		startsBy = &limit
	}

	claimed, err := l.dm.Shift().Claim(ctx, reference, claimant, now, startsBy)
	if err != nil {
		return nil, err
	}
	if !claimed {
		// lost a race or an edit moved the start: report whatever state won
		current, err := l.dm.Shift().GetByReference(ctx, reference)
		if err != nil {
			return nil, err
		}
		if err := claimBlocker(current, claimant); err != nil {
			return nil, err
		}
		if heavy && !l.policy.WithinLockWindow(current.StartAt, now) {
			return nil, l.fairnessBlocked(reference, claimant, total)
		}
		return nil, domain.ErrAlreadyClaimed
	}

	shift.ClaimedBy = claimant
	shift.ClaimedAt = &now

	l.log.Info().
		Str("reference", reference).
		Str("claimant", claimant).
		Float64("hours", shift.DurationHours).
		Float64("window_hours_before", total).
		Msg("shift claimed")

	return shift, nil
}

func claimBlocker(shift *entity.Shift, claimant string) error {
	switch {
	case shift == nil:
		return domain.ErrNotFound
	case shift.Cancelled:
		return domain.ErrAlreadyCancelled
	case shift.ClaimedBy != "":
		return &domain.ClaimConflictError{ClaimedBy: shift.ClaimedBy}
	case shift.CreatedBy == claimant:
		return domain.ErrOwnShift
	}
	return nil
}

func (l *shiftLedger) UpdateShift(ctx context.Context, input contract.UpdateShiftInput) (*entity.Shift, error) {
	var updated *entity.Shift

	err := l.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		shift, err := dm.Shift().GetByReference(ctx, input.Reference)
		if err != nil {
			return err
		}
		if shift == nil {
			return domain.ErrNotFound
		}
		if shift.CreatedBy != input.Actor && !input.IsAdmin {
			return domain.ErrForbidden
		}
		if !shift.IsOpen() {
			return domain.ErrNotEditable
		}

		patch := entity.ShiftPatch{
			Description:   input.Description,
			StartAt:       input.StartAt,
			DurationHours: input.DurationHours,
		}
		if patch.IsEmpty() {
			return domain.ErrNoChanges
		}
		if patch.Description != nil {
			description := strings.TrimSpace(*patch.Description)
			if description == "" {
				return fmt.Errorf("%w: description cannot be empty", domain.ErrInvalidInput)
			}
			patch.Description = &description
		}
		if patch.StartAt != nil {
			start := patch.StartAt.UTC()
			if !start.After(l.now()) {
				return domain.ErrStartInPast
			}
			patch.StartAt = &start
		}
		if patch.DurationHours != nil && !l.policy.ValidDuration(*patch.DurationHours) {
			return l.durationError(*patch.DurationHours)
		}

		ok, err := dm.Shift().Update(ctx, input.Reference, patch)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotEditable
		}

		updated, err = dm.Shift().GetByReference(ctx, input.Reference)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.log.Info().
		Str("reference", input.Reference).
		Str("actor", input.Actor).
		Bool("admin", input.IsAdmin).
		Msg("shift edited")

	return updated, nil
}

func (l *shiftLedger) CancelShift(ctx context.Context, reference, actor string, isAdmin bool) (*entity.CancelResult, error) {
	shift, err := l.dm.Shift().GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrNotFound
	}

	allowed := isAdmin || shift.CreatedBy == actor || (shift.ClaimedBy != "" && shift.ClaimedBy == actor)
	if !allowed {
		return nil, domain.ErrForbidden
	}

	result := &entity.CancelResult{
		Shift:           shift,
		WasClaimed:      shift.ClaimedBy != "",
		PreviousClaimer: shift.ClaimedBy,
	}
	if shift.Cancelled {
		result.AlreadyCancelled = true
		return result, nil
	}

	changed, err := l.dm.Shift().Cancel(ctx, reference)
	if err != nil {
		return nil, err
	}
	if !changed {
		// a concurrent cancel got there first
		result.AlreadyCancelled = true
	}
	shift.Cancelled = true

	l.log.Info().
		Str("reference", reference).
		Str("actor", actor).
		Bool("admin", isAdmin).
		Str("previous_claimer", result.PreviousClaimer).
		Msg("shift cancelled")

	return result, nil
}

func (l *shiftLedger) GetShift(ctx context.Context, reference string) (*entity.Shift, error) {
	shift, err := l.dm.Shift().GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrNotFound
	}
	return shift, nil
}

func (l *shiftLedger) ShiftStats(ctx context.Context, userID string) (*entity.ShiftStats, error) {
	count, hours, err := l.dm.Shift().Stats(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := l.now().UTC()
	window, err := l.dm.Shift().SumClaimedHours(ctx, userID, now.Add(-l.policy.FairnessWindow), now)
	if err != nil {
		return nil, err
	}

	return &entity.ShiftStats{
		ClaimedCount: count,
		TotalHours:   hours,
		WindowHours:  window,
	}, nil
}

func (l *shiftLedger) ListEditable(ctx context.Context, actor string, isAdmin bool) ([]*entity.Shift, error) {
	if actor == "" && !isAdmin {
		return nil, nil
	}
	return l.dm.Shift().ListOpen(ctx, scopeFor(actor, isAdmin), l.policy.ListLimit)
}

func (l *shiftLedger) ListCancellable(ctx context.Context, actor string, isAdmin bool) ([]*entity.Shift, error) {
	if actor == "" && !isAdmin {
		return nil, nil
	}
	return l.dm.Shift().ListActive(ctx, scopeFor(actor, isAdmin), l.policy.ListLimit)
}

// scopeFor maps an actor to the repository filter; admins see everything.
func scopeFor(actor string, isAdmin bool) string {
	if isAdmin {
		return ""
	}
	return actor
}

func (l *shiftLedger) fairnessBlocked(reference, claimant string, total float64) error {
	l.log.Debug().
		Str("reference", reference).
		Str("claimant", claimant).
		Float64("total_hours", total).
		Msg("claim blocked by fairness cap")
	return &domain.FairnessBlockedError{TotalHours: total, LockWindow: l.policy.HeavyLockWindow}
}

func (l *shiftLedger) durationError(hours float64) error {
	return &domain.DurationError{Hours: hours, MinHours: l.policy.MinDurationHours, MaxHours: l.policy.MaxDurationHours}
}
