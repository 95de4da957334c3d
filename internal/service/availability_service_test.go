package service

import (
	"context"
	"testing"
	"time"

	"skillswap-be/internal/apperr"
	"skillswap-be/internal/dto"
	"skillswap-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCreateSlotValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		start string
		end   string
		kind  apperr.Kind
	}{
		{"end before start", "2026-01-14T20:00", "2026-01-14T19:00", apperr.KindValidation},
		{"zero length", "2026-01-14T19:00", "2026-01-14T19:00", apperr.KindValidation},
		{"starts in the past", "2025-12-01T19:00", "2025-12-01T20:00", apperr.KindPastTime},
		{"garbage start", "not-a-time", "2026-01-14T20:00", apperr.KindValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.availability.CreateSlot(ctx, f.provider.UserId, &dto.CreateAvailabilityRequest{
				StartTime: tc.start,
				EndTime:   tc.end,
			})
			require.True(t, apperr.IsKind(err, tc.kind), "got %v", err)
		})
	}
}

func TestCreateSlotOverlap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")

	_, err := f.availability.CreateSlot(ctx, f.provider.UserId, &dto.CreateAvailabilityRequest{
		StartTime: "2026-01-14T19:30",
		EndTime:   "2026-01-14T20:30",
	})
	require.True(t, apperr.IsKind(err, apperr.KindConflict))

	// Half-open windows: back to back is not an overlap.
	_, err = f.availability.CreateSlot(ctx, f.provider.UserId, &dto.CreateAvailabilityRequest{
		StartTime: "2026-01-14T20:00",
		EndTime:   "2026-01-14T21:00",
	})
	require.NoError(t, err)

	// Another user may occupy the same window.
	other := f.newUser("other-provider@example.com")
	_, err = f.availability.CreateSlot(ctx, other.UserId, &dto.CreateAvailabilityRequest{
		StartTime: "2026-01-14T19:00",
		EndTime:   "2026-01-14T20:00",
	})
	require.NoError(t, err)
}

func TestCreateSlotOverlapIgnoresInactive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slotId := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")
	require.NoError(t, f.availability.SoftDeleteSlot(ctx, f.provider.UserId, slotId))

	_, err := f.availability.CreateSlot(ctx, f.provider.UserId, &dto.CreateAvailabilityRequest{
		StartTime: "2026-01-14T19:00",
		EndTime:   "2026-01-14T20:00",
	})
	require.NoError(t, err)
}

func TestListActiveSlots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	later := f.newSlot("2026-01-15T19:00", "2026-01-15T20:00")
	earlier := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")
	require.NoError(t, f.availability.SoftDeleteSlot(ctx, f.provider.UserId, later))

	slots, err := f.availability.ListActiveSlots(ctx, f.provider.UserId)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	require.Equal(t, earlier, slots[0].Id)
}

func TestSoftDeleteSlotGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slotId := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")

	// Not the owner's slot from the stranger's point of view.
	other := f.newUser("other@example.com")
	err := f.availability.SoftDeleteSlot(ctx, other.UserId, slotId)
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))

	err = f.availability.SoftDeleteSlot(ctx, f.provider.UserId, uuid.New())
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))

	require.NoError(t, f.availability.SoftDeleteSlot(ctx, f.provider.UserId, slotId))

	err = f.availability.SoftDeleteSlot(ctx, f.provider.UserId, slotId)
	require.True(t, apperr.IsKind(err, apperr.KindInvalidState))
}

func TestSoftDeleteReservedSlotResetsProposal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slotId := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")
	id := f.newAcceptedRequest()

	_, err := f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{
		Id: id, Action: "propose", SlotId: &slotId,
	})
	require.NoError(t, err)

	require.NoError(t, f.availability.SoftDeleteSlot(ctx, f.provider.UserId, slotId))

	slot := f.slot(slotId)
	require.False(t, slot.IsActive)
	require.Nil(t, slot.ReservedRequestId)

	// The request must not keep pointing at a dead slot.
	stored := f.request(id)
	require.Equal(t, entity.ScheduleStatusNone, stored.ScheduleStatus)
	require.Nil(t, stored.ScheduledStart)
	require.Nil(t, stored.ScheduledEnd)

	notifs := f.notifications(f.requester.UserId)
	require.Equal(t, entity.NotificationScheduleReleased, lastNotificationType(notifs))
}

func TestSoftDeleteConsumedSlotKeepsConfirmedSchedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slotId := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")
	id := f.newAcceptedRequest()

	_, err := f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{
		Id: id, Action: "propose", SlotId: &slotId,
	})
	require.NoError(t, err)
	_, err = f.sessions.Schedule(ctx, f.provider, &dto.ScheduleSessionRequest{Id: id, Action: "confirm"})
	require.NoError(t, err)

	// The slot was consumed by the confirmation, so there is nothing to delete.
	err = f.availability.SoftDeleteSlot(ctx, f.provider.UserId, slotId)
	require.True(t, apperr.IsKind(err, apperr.KindInvalidState))

	stored := f.request(id)
	require.Equal(t, entity.ScheduleStatusConfirmed, stored.ScheduleStatus)
	require.NotNil(t, stored.ScheduledStart)
}

func TestSlotTimesNormalizedToUTC(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.availability.CreateSlot(ctx, f.provider.UserId, &dto.CreateAvailabilityRequest{
		StartTime: "2026-01-14T19:00:00+02:00",
		EndTime:   "2026-01-14T20:00:00+02:00",
		Timezone:  "Europe/Athens",
	})
	require.NoError(t, err)

	slot := f.slot(res.Id)
	require.True(t, slot.StartTime.Equal(time.Date(2026, 1, 14, 17, 0, 0, 0, time.UTC)))
	require.Equal(t, "Europe/Athens", slot.Timezone)
}
