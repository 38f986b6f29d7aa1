package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/slack-shift-bot/internal/database"
	"github.com/diegoclair/slack-shift-bot/internal/domain"
	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
	"github.com/diegoclair/slack-shift-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntegrationLedger(t *testing.T) (*shiftLedger, *scheduleService) {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	dm := database.NewInstance(db)
	schedule := newSchedule(dm, domain.DefaultTimezone, zerolog.Nop())
	ledger := newLedger(dm, schedule, domain.DefaultPolicy(), zerolog.Nop())
	ledger.now = func() time.Time { return fixedNow }

	return ledger, schedule
}

func postTestShift(t *testing.T, ledger *shiftLedger, reference string, startIn time.Duration, hours float64) *entity.Shift {
	t.Helper()

	shift, err := ledger.PostShift(context.Background(), contract.PostShiftInput{
		Reference:     reference,
		ChannelID:     "C1",
		CreatedBy:     "CREATOR",
		StartAt:       fixedNow.Add(startIn),
		DurationHours: hours,
	})
	require.NoError(t, err)
	return shift
}

func TestLedger_FairnessScenario(t *testing.T) {
	ledger, _ := newIntegrationLedger(t)
	ctx := context.Background()

	postTestShift(t, ledger, "first", 5*time.Hour, 2.0)
	postTestShift(t, ledger, "second", 10*time.Hour, 3.0)
	postTestShift(t, ledger, "far", 3*time.Hour, 1.0)
	postTestShift(t, ledger, "soon", 45*time.Minute, 1.0)

	_, err := ledger.ClaimShift(ctx, "first", "U", fixedNow)
	require.NoError(t, err)

	// 2.0h in the window: not heavy, start time does not matter
	claimed, err := ledger.ClaimShift(ctx, "second", "U", fixedNow.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 3.0, claimed.DurationHours)

	now := fixedNow.Add(2 * time.Minute)
	_, err = ledger.ClaimShift(ctx, "far", "U", now)
	var blocked *domain.FairnessBlockedError
	require.True(t, errors.As(err, &blocked), "got %v", err)
	assert.InDelta(t, 5.0, blocked.TotalHours, 1e-9)

	far, err := ledger.GetShift(ctx, "far")
	require.NoError(t, err)
	assert.True(t, far.IsOpen(), "blocked claim must not change the shift")

	_, err = ledger.ClaimShift(ctx, "soon", "U", now)
	require.NoError(t, err)

	stats, err := ledger.ShiftStats(ctx, "U")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ClaimedCount)
	assert.InDelta(t, 6.0, stats.TotalHours, 1e-9)
}

func TestLedger_FairnessWindowExpires(t *testing.T) {
	ledger, _ := newIntegrationLedger(t)
	ctx := context.Background()

	postTestShift(t, ledger, "old", time.Hour, 4.0)
	postTestShift(t, ledger, "later", 20*24*time.Hour, 1.0)

	_, err := ledger.ClaimShift(ctx, "old", "U", fixedNow)
	require.NoError(t, err)

	_, err = ledger.ClaimShift(ctx, "later", "U", fixedNow.Add(7*24*time.Hour))
	assert.ErrorIs(t, err, domain.ErrFairnessBlocked, "claim exactly 7 days later is still inside the window")

	_, err = ledger.ClaimShift(ctx, "later", "U", fixedNow.Add(7*24*time.Hour+time.Millisecond))
	require.NoError(t, err)
}

func TestLedger_ConcurrentClaims(t *testing.T) {
	ledger, _ := newIntegrationLedger(t)
	ctx := context.Background()

	postTestShift(t, ledger, "contested", 2*time.Hour, 1.0)

	const claimants = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []string
		losers  int
	)
	for i := 0; i < claimants; i++ {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			_, err := ledger.ClaimShift(ctx, "contested", user, fixedNow)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners = append(winners, user)
			case errors.Is(err, domain.ErrAlreadyClaimed):
				losers++
			default:
				t.Errorf("unexpected error for %s: %v", user, err)
			}
		}(fmt.Sprintf("U%02d", i))
	}
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, claimants-1, losers)

	shift, err := ledger.GetShift(ctx, "contested")
	require.NoError(t, err)
	assert.Equal(t, winners[0], shift.ClaimedBy)
}

func TestLedger_StateMachine(t *testing.T) {
	ledger, _ := newIntegrationLedger(t)
	ctx := context.Background()
	desc := "changed"

	postTestShift(t, ledger, "s1", 2*time.Hour, 1.0)

	updated, err := ledger.UpdateShift(ctx, contract.UpdateShiftInput{Reference: "s1", Actor: "CREATOR", Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, updated.Description)
	assert.True(t, updated.IsOpen())

	_, err = ledger.ClaimShift(ctx, "s1", "U2", fixedNow)
	require.NoError(t, err)

	// claimed never goes back to open
	_, err = ledger.UpdateShift(ctx, contract.UpdateShiftInput{Reference: "s1", Actor: "CREATOR", Description: &desc})
	assert.ErrorIs(t, err, domain.ErrNotEditable)
	_, err = ledger.ClaimShift(ctx, "s1", "U3", fixedNow)
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)

	result, err := ledger.CancelShift(ctx, "s1", "U2", false)
	require.NoError(t, err)
	assert.True(t, result.WasClaimed)
	assert.Equal(t, "U2", result.PreviousClaimer)
	assert.False(t, result.AlreadyCancelled)

	// cancelled is terminal
	_, err = ledger.ClaimShift(ctx, "s1", "U3", fixedNow)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
	_, err = ledger.UpdateShift(ctx, contract.UpdateShiftInput{Reference: "s1", Actor: "CREATOR", IsAdmin: true, Description: &desc})
	assert.ErrorIs(t, err, domain.ErrNotEditable)

	again, err := ledger.CancelShift(ctx, "s1", "CREATOR", false)
	require.NoError(t, err)
	assert.True(t, again.AlreadyCancelled)

	shift, err := ledger.GetShift(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftStateCancelled, shift.State())
	assert.Equal(t, "U2", shift.ClaimedBy)

	// cancelled claims no longer count toward the window
	stats, err := ledger.ShiftStats(ctx, "U2")
	require.NoError(t, err)
	assert.Zero(t, stats.ClaimedCount)
	assert.Zero(t, stats.WindowHours)
}

func TestLedger_PostFromSlotAgainstStore(t *testing.T) {
	ledger, schedule := newIntegrationLedger(t)
	ctx := context.Background()

	_, err := schedule.AddSlot(ctx, "OWNER", domain.Monday, 14, 0, "America/New_York")
	require.NoError(t, err)
	_, err = schedule.AddSlot(ctx, "OWNER", domain.Monday, 14, 0, "UTC")
	require.ErrorIs(t, err, domain.ErrAlreadyExists)

	shift, err := ledger.PostFromSlot(ctx, contract.PostFromSlotInput{
		Reference: "slot-1",
		ChannelID: "C1",
		CreatedBy: "OWNER",
		OwnerID:   "OWNER",
		Weekday:   domain.Monday,
		Hour:      14,
	})
	require.NoError(t, err)
	assert.True(t, shift.StartAt.Equal(time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, "OWNER", shift.OriginOwnerID)

	_, err = ledger.PostFromSlot(ctx, contract.PostFromSlotInput{
		Reference: "slot-1",
		OwnerID:   "OWNER",
		Weekday:   domain.Monday,
		Hour:      14,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateReference)

	zero := 0.0
	_, err = ledger.PostFromSlot(ctx, contract.PostFromSlotInput{
		Reference:     "slot-zero",
		OwnerID:       "OWNER",
		Weekday:       domain.Monday,
		Hour:          14,
		DurationHours: &zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	removed, err := schedule.RemoveSlot(ctx, "OWNER", domain.Monday, 14, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = schedule.RemoveSlot(ctx, "OWNER", domain.Monday, 14, 0)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
