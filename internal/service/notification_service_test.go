package service

import (
	"context"
	"testing"
	"time"

	"skillswap-be/internal/apperr"
	"skillswap-be/internal/dto"

	"github.com/stretchr/testify/require"
)

func TestNotificationListAndUnreadCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	notifications := NewNotificationService(f.factory)

	// A full accept + propose round leaves the provider with two notifications.
	slotId := f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")
	id := f.newAcceptedRequest()
	f.clk.Advance(time.Minute)
	_, err := f.sessions.Schedule(ctx, f.requester, &dto.ScheduleSessionRequest{Id: id, Action: "propose", SlotId: &slotId})
	require.NoError(t, err)

	list, err := notifications.List(ctx, f.provider.UserId, &dto.ListNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Newest first.
	require.Equal(t, "schedule_proposed", list[0].Type)
	require.Equal(t, "session_requested", list[1].Type)
	require.NotEmpty(t, list[0].Metadata)

	count, err := notifications.UnreadCount(ctx, f.provider.UserId)
	require.NoError(t, err)
	require.Equal(t, int64(2), count.Count)

	require.NoError(t, notifications.MarkRead(ctx, f.provider.UserId, list[0].Id))

	count, err = notifications.UnreadCount(ctx, f.provider.UserId)
	require.NoError(t, err)
	require.Equal(t, int64(1), count.Count)

	unread, err := notifications.List(ctx, f.provider.UserId, &dto.ListNotificationsRequest{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, unread, 1)
	require.Equal(t, "session_requested", unread[0].Type)
}

func TestNotificationMarkReadOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	notifications := NewNotificationService(f.factory)

	f.newPendingRequest()
	list, err := notifications.List(ctx, f.provider.UserId, &dto.ListNotificationsRequest{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	// The requester cannot read someone else's mailbox entry.
	err = notifications.MarkRead(ctx, f.requester.UserId, list[0].Id)
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestNotificationMarkAllRead(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	notifications := NewNotificationService(f.factory)

	id := f.newAcceptedRequest()
	_, err := f.sessions.Respond(ctx, f.requester, &dto.RespondSessionRequest{Id: id, Action: "complete"})
	require.NoError(t, err)

	count, err := notifications.UnreadCount(ctx, f.provider.UserId)
	require.NoError(t, err)
	require.Equal(t, int64(2), count.Count)

	require.NoError(t, notifications.MarkAllRead(ctx, f.provider.UserId))

	count, err = notifications.UnreadCount(ctx, f.provider.UserId)
	require.NoError(t, err)
	require.Zero(t, count.Count)

	// The requester's own accept notification is untouched.
	count, err = notifications.UnreadCount(ctx, f.requester.UserId)
	require.NoError(t, err)
	require.Equal(t, int64(1), count.Count)
}
