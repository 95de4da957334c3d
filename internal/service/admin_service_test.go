package service

import (
	"context"
	"path/filepath"
	"testing"

	"skillswap-be/internal/apperr"
	"skillswap-be/internal/dto"
	"skillswap-be/internal/entity"
	"skillswap-be/internal/pkg/logger"
	"skillswap-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newAdminService(t *testing.T, f *fixture) IAdminService {
	t.Helper()
	log := logger.NewZapLogger(filepath.Join(t.TempDir(), "app.log"), true)
	return NewAdminService(f.factory, log)
}

func TestAdminReport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := newAdminService(t, f)

	f.newSlot("2026-01-14T19:00", "2026-01-14T20:00")
	id := f.newAcceptedRequest()
	_, err := f.sessions.Respond(ctx, f.provider, &dto.RespondSessionRequest{Id: id, Action: "complete"})
	require.NoError(t, err)
	_, err = f.reviews.Submit(ctx, f.requester, &dto.SubmitReviewRequest{SessionRequestId: id, Rating: 5})
	require.NoError(t, err)

	report, err := admin.Report(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), report.Users)
	require.Equal(t, int64(1), report.Skills)
	require.Equal(t, int64(1), report.SessionRequests)
	require.Equal(t, int64(1), report.CompletedSessions)
	require.Equal(t, int64(1), report.ActiveSlots)
	require.Equal(t, int64(1), report.Reviews)
}

func TestAdminUserManagement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := newAdminService(t, f)

	users, err := admin.ListUsers(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, users, 2)

	require.NoError(t, admin.SetUserRole(ctx, f.provider.UserId, "admin"))
	require.NoError(t, admin.SetUserActive(ctx, f.requester.UserId, false))

	uow := f.factory.NewUnitOfWork(ctx)
	promoted, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: f.provider.UserId})
	require.NoError(t, err)
	require.Equal(t, entity.UserRoleAdmin, promoted.Role)

	deactivated, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: f.requester.UserId})
	require.NoError(t, err)
	require.False(t, deactivated.IsActive)

	err = admin.SetUserRole(ctx, uuid.New(), "admin")
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
