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

func TestCreateSessionRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.sessions.Create(ctx, f.requester, &dto.CreateSessionRequestRequest{
		SkillId: f.skill.Id,
		Message: "hello",
	})
	require.NoError(t, err)
	require.Equal(t, "pending", res.Status)
	require.Equal(t, "none", res.ScheduleStatus)

	stored := f.request(res.Id)
	require.Equal(t, f.requester.UserId, stored.RequesterId)
	require.Equal(t, f.provider.UserId, stored.ProviderId)
	require.Nil(t, stored.RespondedAt)

	notifs := f.notifications(f.provider.UserId)
	require.Len(t, notifs, 1)
	require.Equal(t, entity.NotificationSessionRequested, notifs[0].Type)
	require.Equal(t, res.Id, *notifs[0].SessionRequestId)
}

func TestCreateSessionRequestRejectsOwnSkill(t *testing.T) {
	f := newFixture(t)

	_, err := f.sessions.Create(context.Background(), f.provider, &dto.CreateSessionRequestRequest{
		SkillId: f.skill.Id,
	})
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCreateSessionRequestUnknownSkill(t *testing.T) {
	f := newFixture(t)

	_, err := f.sessions.Create(context.Background(), f.requester, &dto.CreateSessionRequestRequest{
		SkillId: uuid.New(),
	})
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCreateSessionRequestDuplicateOpenRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.newPendingRequest()

	_, err := f.sessions.Create(ctx, f.requester, &dto.CreateSessionRequestRequest{SkillId: f.skill.Id})
	require.True(t, apperr.IsKind(err, apperr.KindConflict))

	// A declined request no longer blocks a new one.
	_, err = f.sessions.Respond(ctx, f.provider, &dto.RespondSessionRequest{Id: id, Action: "decline"})
	require.NoError(t, err)

	_, err = f.sessions.Create(ctx, f.requester, &dto.CreateSessionRequestRequest{SkillId: f.skill.Id})
	require.NoError(t, err)
}

func TestRespondAccept(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newPendingRequest()

	res, err := f.sessions.Respond(ctx, f.provider, &dto.RespondSessionRequest{Id: id, Action: "accept"})
	require.NoError(t, err)
	require.Equal(t, "accepted", res.Status)

	stored := f.request(id)
	require.Equal(t, entity.RequestStatusAccepted, stored.Status)
	require.NotNil(t, stored.RespondedAt)
	require.True(t, stored.RespondedAt.Equal(f.clk.Now()))

	notifs := f.notifications(f.requester.UserId)
	require.Equal(t, entity.NotificationSessionAccepted, lastNotificationType(notifs))
}

func TestRespondAuthorizationAndState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newPendingRequest()

	// Requester cannot accept, provider cannot cancel.
	_, err := f.sessions.Respond(ctx, f.requester, &dto.RespondSessionRequest{Id: id, Action: "accept"})
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))
	_, err = f.sessions.Respond(ctx, f.provider, &dto.RespondSessionRequest{Id: id, Action: "cancel"})
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))

	// Complete needs an accepted request.
	_, err = f.sessions.Respond(ctx, f.provider, &dto.RespondSessionRequest{Id: id, Action: "complete"})
	require.True(t, apperr.IsKind(err, apperr.KindInvalidState))

	_, err = f.sessions.Respond(ctx, f.provider, &dto.RespondSessionRequest{Id: id, Action: "accept"})
	require.NoError(t, err)

	// Accept is not repeatable.
	_, err = f.sessions.Respond(ctx, f.provider, &dto.RespondSessionRequest{Id: id, Action: "accept"})
	require.True(t, apperr.IsKind(err, apperr.KindInvalidState))
}

func TestRespondAdminOverride(t *testing.T) {
	f := newFixture(t)
	id := f.newPendingRequest()

	admin := Actor{UserId: uuid.New(), Role: entity.UserRoleAdmin}
	_, err := f.sessions.Respond(context.Background(), admin, &dto.RespondSessionRequest{Id: id, Action: "accept"})
	require.NoError(t, err)
	require.Equal(t, entity.RequestStatusAccepted, f.request(id).Status)
}

func TestCancelAcceptedReleasesSlotAndSchedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slotId := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")
	id := f.newAcceptedRequest()

	_, err := f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{
		Id: id, Action: "propose", SlotId: &slotId,
	})
	require.NoError(t, err)

	f.clk.Advance(time.Hour)
	_, err = f.sessions.Respond(ctx, f.requester, &dto.RespondSessionRequest{Id: id, Action: "cancel"})
	require.NoError(t, err)

	stored := f.request(id)
	require.Equal(t, entity.RequestStatusCancelled, stored.Status)
	require.NotNil(t, stored.RespondedAt)
	require.True(t, stored.RespondedAt.Equal(f.clk.Now()))
	require.Equal(t, entity.ScheduleStatusNone, stored.ScheduleStatus)
	require.Nil(t, stored.ScheduledStart)
	require.Nil(t, stored.ScheduledEnd)

	slot := f.slot(slotId)
	require.Nil(t, slot.ReservedRequestId)
	require.True(t, slot.IsActive)
}

func TestCompleteByEitherParticipant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newAcceptedRequest()

	outsider := f.newUser("outsider@example.com")
	_, err := f.sessions.Respond(ctx, outsider, &dto.RespondSessionRequest{Id: id, Action: "complete"})
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))

	f.clk.Advance(time.Hour)
	_, err = f.sessions.Respond(ctx, f.requester, &dto.RespondSessionRequest{Id: id, Action: "complete"})
	require.NoError(t, err)

	stored := f.request(id)
	require.Equal(t, entity.RequestStatusCompleted, stored.Status)
	require.NotNil(t, stored.RespondedAt)
	require.True(t, stored.RespondedAt.Equal(f.clk.Now()))

	notifs := f.notifications(f.provider.UserId)
	require.Equal(t, entity.NotificationSessionCompleted, lastNotificationType(notifs))
}

func TestScheduleSlotProposeAndConfirm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slotId := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")
	id := f.newAcceptedRequest()

	res, err := f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{
		Id: id, Action: "propose", SlotId: &slotId,
	})
	require.NoError(t, err)
	require.Equal(t, "proposed", res.ScheduleStatus)

	stored := f.request(id)
	require.NotNil(t, stored.ScheduledStart)
	require.True(t, stored.ScheduledStart.Equal(time.Date(2026, 1, 14, 19, 0, 0, 0, time.UTC)))
	require.True(t, stored.ScheduledEnd.Equal(time.Date(2026, 1, 14, 20, 0, 0, 0, time.UTC)))

	slot := f.slot(slotId)
	require.NotNil(t, slot.ReservedRequestId)
	require.Equal(t, id, *slot.ReservedRequestId)

	notifs := f.notifications(f.provider.UserId)
	require.Equal(t, entity.NotificationScheduleProposed, lastNotificationType(notifs))

	f.clk.Advance(time.Hour)
	res, err = f.sessions.Schedule(ctx, f.provider, &dto.ScheduleSessionRequest{Id: id, Action: "confirm"})
	require.NoError(t, err)
	require.Equal(t, "confirmed", res.ScheduleStatus)

	// Every transition re-stamps the response time.
	stored = f.request(id)
	require.NotNil(t, stored.RespondedAt)
	require.True(t, stored.RespondedAt.Equal(f.clk.Now()))

	// Confirming consumes the slot but keeps the reservation as history.
	slot = f.slot(slotId)
	require.False(t, slot.IsActive)
	require.Equal(t, id, *slot.ReservedRequestId)

	notifs = f.notifications(f.requester.UserId)
	require.Equal(t, entity.NotificationScheduleConfirmed, lastNotificationType(notifs))

	// Confirm is not repeatable.
	_, err = f.sessions.Schedule(ctx, f.provider, &dto.ScheduleSessionRequest{Id: id, Action: "confirm"})
	require.True(t, apperr.IsKind(err, apperr.KindInvalidState))

	// Neither is proposing over a confirmed schedule.
	_, err = f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{Id: id, Action: "propose", SlotId: &slotId})
	require.True(t, apperr.IsKind(err, apperr.KindInvalidState))
}

func TestScheduleProposeGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slotId := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")
	id := f.newPendingRequest()

	// Only from accepted.
	_, err := f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{Id: id, Action: "propose", SlotId: &slotId})
	require.True(t, apperr.IsKind(err, apperr.KindInvalidState))

	_, err = f.sessions.Respond(ctx, f.provider, &dto.RespondSessionRequest{Id: id, Action: "accept"})
	require.NoError(t, err)

	// Only the requester proposes.
	_, err = f.sessions.Schedule(ctx, f.provider, &dto.ScheduleSessionRequest{Id: id, Action: "propose", SlotId: &slotId})
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))

	// Outsiders are rejected before any state check.
	outsider := f.newUser("stranger@example.com")
	_, err = f.sessions.Schedule(ctx, outsider, &dto.ScheduleSessionRequest{Id: id, Action: "propose", SlotId: &slotId})
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))

	missing := uuid.New()
	_, err = f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{Id: id, Action: "propose", SlotId: &missing})
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestScheduleSlotContention(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slotId := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")

	r1 := f.newAcceptedRequest()

	requester2 := f.newUser("requester2@example.com")
	res, err := f.sessions.Create(ctx, requester2, &dto.CreateSessionRequestRequest{SkillId: f.skill.Id})
	require.NoError(t, err)
	r2 := res.Id
	_, err = f.sessions.Respond(ctx, f.provider, &dto.RespondSessionRequest{Id: r2, Action: "accept"})
	require.NoError(t, err)

	_, err = f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{Id: r1, Action: "propose", SlotId: &slotId})
	require.NoError(t, err)

	// Second requester loses the race for the same slot.
	_, err = f.sessions.Schedule(ctx, requester2, &dto.ScheduleSessionRequest{Id: r2, Action: "propose", SlotId: &slotId})
	require.True(t, apperr.IsKind(err, apperr.KindConflict))
	require.Equal(t, entity.ScheduleStatusNone, f.request(r2).ScheduleStatus)

	// Re-proposing the held slot by its own holder is idempotent.
	_, err = f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{Id: r1, Action: "propose", SlotId: &slotId})
	require.NoError(t, err)

	// Clearing releases the hold for the next proposer.
	_, err = f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{Id: r1, Action: "clear"})
	require.NoError(t, err)
	require.Nil(t, f.slot(slotId).ReservedRequestId)

	_, err = f.sessions.Schedule(ctx, requester2, &dto.ScheduleSessionRequest{Id: r2, Action: "propose", SlotId: &slotId})
	require.NoError(t, err)
	require.Equal(t, r2, *f.slot(slotId).ReservedRequestId)
}

func TestScheduleReproposeMovesHold(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")
	second := f.newSlot("2026-01-15T19:00", "2026-01-15T20:00")
	id := f.newAcceptedRequest()

	_, err := f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{Id: id, Action: "propose", SlotId: &first})
	require.NoError(t, err)

	_, err = f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{Id: id, Action: "propose", SlotId: &second})
	require.NoError(t, err)

	require.Nil(t, f.slot(first).ReservedRequestId)
	require.Equal(t, id, *f.slot(second).ReservedRequestId)

	stored := f.request(id)
	require.True(t, stored.ScheduledStart.Equal(time.Date(2026, 1, 15, 19, 0, 0, 0, time.UTC)))
}

func TestScheduleFreeFormPropose(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newAcceptedRequest()

	_, err := f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{
		Id: id, Action: "propose",
		ScheduledStart: "2026-02-01T10:00",
		ScheduledEnd:   "2026-02-01T09:00",
	})
	require.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{
		Id: id, Action: "propose",
		ScheduledStart: "2025-02-01T10:00",
		ScheduledEnd:   "2025-02-01T11:00",
	})
	require.True(t, apperr.IsKind(err, apperr.KindPastTime))

	_, err = f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{
		Id: id, Action: "propose",
		ScheduledStart: "2026-02-01T10:00",
		ScheduledEnd:   "2026-02-01T11:00",
		Timezone:       "Europe/Berlin",
	})
	require.NoError(t, err)

	stored := f.request(id)
	require.Equal(t, entity.ScheduleStatusProposed, stored.ScheduleStatus)
	require.Equal(t, "Europe/Berlin", *stored.Timezone)

	// No slot involved: confirm flips the sub-state and touches nothing else.
	_, err = f.sessions.Schedule(ctx, f.provider, &dto.ScheduleSessionRequest{Id: id, Action: "confirm"})
	require.NoError(t, err)
	require.Equal(t, entity.ScheduleStatusConfirmed, f.request(id).ScheduleStatus)
}

func TestScheduleFreeFormProposeAfterSlotReleasesHold(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slotId := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")
	id := f.newAcceptedRequest()

	_, err := f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{Id: id, Action: "propose", SlotId: &slotId})
	require.NoError(t, err)

	_, err = f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{
		Id: id, Action: "propose",
		ScheduledStart: "2026-02-01T10:00",
		ScheduledEnd:   "2026-02-01T11:00",
	})
	require.NoError(t, err)

	require.Nil(t, f.slot(slotId).ReservedRequestId)
}

func TestScheduleConfirmGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newAcceptedRequest()

	// Nothing proposed yet.
	_, err := f.sessions.Schedule(ctx, f.provider, &dto.ScheduleSessionRequest{Id: id, Action: "confirm"})
	require.True(t, apperr.IsKind(err, apperr.KindInvalidState))

	_, err = f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{
		Id: id, Action: "propose",
		ScheduledStart: "2026-02-01T10:00",
		ScheduledEnd:   "2026-02-01T11:00",
	})
	require.NoError(t, err)

	// Only the provider confirms.
	_, err = f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{Id: id, Action: "confirm"})
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))
}

func TestScheduleConfirmRejectsDriftedSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slotId := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")
	id := f.newAcceptedRequest()

	_, err := f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{Id: id, Action: "propose", SlotId: &slotId})
	require.NoError(t, err)

	// The slot row shifts underneath the proposal.
	slot := f.slot(slotId)
	slot.StartTime = slot.StartTime.Add(30 * time.Minute)
	slot.EndTime = slot.EndTime.Add(30 * time.Minute)
	uow := f.factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.AvailabilityRepository().Update(ctx, slot))

	_, err = f.sessions.Schedule(ctx, f.provider, &dto.ScheduleSessionRequest{Id: id, Action: "confirm"})
	require.True(t, apperr.IsKind(err, apperr.KindConflict))
	require.Equal(t, entity.ScheduleStatusProposed, f.request(id).ScheduleStatus)
}

func TestScheduleProposePastSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slotId := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")
	id := f.newAcceptedRequest()

	f.clk.Advance(30 * 24 * time.Hour)

	_, err := f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{Id: id, Action: "propose", SlotId: &slotId})
	require.True(t, apperr.IsKind(err, apperr.KindPastTime))
}

func TestScheduleClear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slotId := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")
	id := f.newAcceptedRequest()

	_, err := f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{Id: id, Action: "propose", SlotId: &slotId})
	require.NoError(t, err)

	// Either side may clear; here the provider backs out of the proposal.
	f.clk.Advance(time.Hour)
	_, err = f.sessions.Schedule(ctx, f.provider, &dto.ScheduleSessionRequest{Id: id, Action: "clear"})
	require.NoError(t, err)

	stored := f.request(id)
	require.Equal(t, entity.ScheduleStatusNone, stored.ScheduleStatus)
	require.Nil(t, stored.ScheduledStart)
	require.Nil(t, stored.Timezone)
	require.NotNil(t, stored.RespondedAt)
	require.True(t, stored.RespondedAt.Equal(f.clk.Now()))
	require.Nil(t, f.slot(slotId).ReservedRequestId)

	notifs := f.notifications(f.requester.UserId)
	require.Equal(t, entity.NotificationScheduleCleared, lastNotificationType(notifs))

	// Clearing an empty schedule is allowed and stays empty.
	_, err = f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{Id: id, Action: "clear"})
	require.NoError(t, err)
}

func TestShowAndListMine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newAcceptedRequest()

	res, err := f.sessions.Show(ctx, f.requester, id)
	require.NoError(t, err)
	require.Equal(t, "Guitar lessons", res.SkillTitle)

	outsider := f.newUser("nosy@example.com")
	_, err = f.sessions.Show(ctx, outsider, id)
	require.True(t, apperr.IsKind(err, apperr.KindAuthorization))

	made, err := f.sessions.ListMine(ctx, f.requester.UserId)
	require.NoError(t, err)
	require.Len(t, made.Made, 1)
	require.Empty(t, made.Received)

	received, err := f.sessions.ListMine(ctx, f.provider.UserId)
	require.NoError(t, err)
	require.Len(t, received.Received, 1)
	require.Empty(t, received.Made)
}

func TestListAvailableForRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	free := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")
	taken := f.newSlot("2026-01-15T19:00", "2026-01-15T20:00")

	r1 := f.newAcceptedRequest()

	requester2 := f.newUser("requester2@example.com")
	res, err := f.sessions.Create(ctx, requester2, &dto.CreateSessionRequestRequest{SkillId: f.skill.Id})
	require.NoError(t, err)
	r2 := res.Id
	_, err = f.sessions.Respond(ctx, f.provider, &dto.RespondSessionRequest{Id: r2, Action: "accept"})
	require.NoError(t, err)

	_, err = f.sessions.Schedule(ctx, requester2, &dto.ScheduleSessionRequest{Id: r2, Action: "propose", SlotId: &taken})
	require.NoError(t, err)

	// r1 sees only the free slot, r2 sees both (its own hold included).
	slots, err := f.sessions.ListAvailableForRequest(ctx, f.requester, r1)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	require.Equal(t, free, slots[0].Id)

	slots, err = f.sessions.ListAvailableForRequest(ctx, requester2, r2)
	require.NoError(t, err)
	require.Len(t, slots, 2)
}
