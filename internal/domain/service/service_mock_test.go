package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fixedNow is the clock every ledger test runs at
var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type allMocks struct {
	mockDataManager     *mocks.MockDataManager
	mockSlotRepo        *mocks.MockSlotRepo
	mockShiftRepo       *mocks.MockShiftRepo
	mockScheduleService *mocks.MockScheduleService
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	slotRepo := mocks.NewMockSlotRepo(ctrl)
	dm.EXPECT().Slot().Return(slotRepo).AnyTimes()

	shiftRepo := mocks.NewMockShiftRepo(ctrl)
	dm.EXPECT().Shift().Return(shiftRepo).AnyTimes()

	// transactions run inline against the same mocks
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:     dm,
		mockSlotRepo:        slotRepo,
		mockShiftRepo:       shiftRepo,
		mockScheduleService: mocks.NewMockScheduleService(ctrl),
	}

	// validate service creation
	instance := NewInstance(dm, domain.DefaultPolicy(), zerolog.Nop())
	require.NotNil(t, instance.Schedule)
	require.NotNil(t, instance.Ledger)

	return
}

func newTestLedger(m allMocks) *shiftLedger {
	ledger := newLedger(m.mockDataManager, m.mockScheduleService, domain.DefaultPolicy(), zerolog.Nop())
	ledger.now = func() time.Time { return fixedNow }
	return ledger
}
