package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/diegoclair/slack-shift-bot/internal/timeslot"
	"github.com/rs/zerolog"
)

type scheduleService struct {
	dm              contract.DataManager
	defaultTimezone string
	log             zerolog.Logger
}

func newSchedule(dm contract.DataManager, defaultTimezone string, log zerolog.Logger) *scheduleService {
	return &scheduleService{
		dm:              dm,
		defaultTimezone: defaultTimezone,
		log:             log.With().Str("component", "schedule").Logger(),
	}
}

func (s *scheduleService) AddSlot(ctx context.Context, ownerID string, weekday, hour, minute int, timezone string) (*entity.RecurringSlot, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrInvalidInput)
	}
	if err := timeslot.ValidateSlot(weekday, hour, minute); err != nil {
		return nil, err
	}

	timezone = strings.TrimSpace(timezone)
	if timezone == "" {
		timezone = s.defaultTimezone
	}
	if err := timeslot.ValidateTimezone(timezone); err != nil {
		return nil, err
	}

	// duplicates are rejected by the unique constraint, not by a pre-read
	slot := &entity.RecurringSlot{
		OwnerID:  ownerID,
		Weekday:  weekday,
		Hour:     hour,
		Minute:   minute,
		Timezone: timezone,
	}
	if err := s.dm.Slot().Create(ctx, slot); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("owner", ownerID).
		Str("slot", timeslot.FormatSlot(weekday, hour, minute, timezone)).
		Msg("slot added")

	return slot, nil
}

func (s *scheduleService) RemoveSlot(ctx context.Context, ownerID string, weekday, hour, minute int) (int64, error) {
	if err := timeslot.ValidateSlot(weekday, hour, minute); err != nil {
		return 0, err
	}

	removed, err := s.dm.Slot().Delete(ctx, ownerID, weekday, hour, minute)
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		s.log.Info().
			Str("owner", ownerID).
			Int("weekday", weekday).
			Int("hour", hour).
			Int("minute", minute).
			Msg("slot removed")
	}
	return removed, nil
}

func (s *scheduleService) ListSlots(ctx context.Context, ownerID string) ([]*entity.RecurringSlot, error) {
	return s.dm.Slot().ListByOwner(ctx, ownerID)
}

func (s *scheduleService) ClearSlots(ctx context.Context, ownerID string) (int64, error) {
	removed, err := s.dm.Slot().DeleteByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	s.log.Info().Str("owner", ownerID).Int64("removed", removed).Msg("slots cleared")
	return removed, nil
}

func (s *scheduleService) HasAnySlot(ctx context.Context, ownerID string) (bool, error) {
	return s.dm.Slot().ExistsForOwner(ctx, ownerID)
}

func (s *scheduleService) GetSlot(ctx context.Context, ownerID string, weekday, hour, minute int) (*entity.RecurringSlot, error) {
	slot, err := s.dm.Slot().Get(ctx, ownerID, weekday, hour, minute)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, fmt.Errorf("%w: %s has no slot on %s at %02d:%02d", domain.ErrNotFound, ownerID,
			timeslot.WeekdayName(weekday), hour, minute)
	}
	return slot, nil
}
