package service

import (
	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/rs/zerolog"
)

type Instance struct {
	Schedule contract.ScheduleService
	Ledger   contract.ShiftLedger
}

func NewInstance(dm contract.DataManager, policy domain.Policy, log zerolog.Logger) *Instance {
	schedule := newSchedule(dm, policy.DefaultTimezone, log)

	return &Instance{
		Schedule: schedule,
		Ledger:   newLedger(dm, schedule, policy, log),
	}
}
