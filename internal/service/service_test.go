package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"skillswap-be/internal/dto"
	"skillswap-be/internal/entity"
	"skillswap-be/internal/model"
	"skillswap-be/internal/pkg/clock"
	"skillswap-be/internal/repository/specification"
	"skillswap-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	// A named shared in-memory database so every pooled connection sees the
	// same schema.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	return unitofwork.NewRepositoryFactory(db)
}

// fixture wires the services against one in-memory store with a pinned clock.
type fixture struct {
	t       *testing.T
	factory unitofwork.RepositoryFactory
	clk     *clock.Fixed

	sessions     ISessionService
	availability IAvailabilityService
	reviews      IReviewService

	provider  Actor
	requester Actor
	skill     *entity.Skill
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	factory := newTestDB(t)
	clk := &clock.Fixed{Instant: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}

	f := &fixture{
		t:            t,
		factory:      factory,
		clk:          clk,
		sessions:     NewSessionService(factory, nil, clk, nil),
		availability: NewAvailabilityService(factory, nil, clk),
		reviews:      NewReviewService(factory, clk),
	}

	f.provider = f.newUser("provider@example.com")
	f.requester = f.newUser("requester@example.com")
	f.skill = f.newSkill(f.provider.UserId, "Guitar lessons")
	return f
}

func (f *fixture) newUser(email string) Actor {
	f.t.Helper()
	user := &entity.User{
		Id:        uuid.New(),
		Name:      strings.Split(email, "@")[0],
		Email:     email,
		Role:      entity.UserRoleStudent,
		IsActive:  true,
		CreatedAt: f.clk.Now(),
	}
	uow := f.factory.NewUnitOfWork(context.Background())
	require.NoError(f.t, uow.UserRepository().Create(context.Background(), user))
	return Actor{UserId: user.Id, Role: user.Role}
}

func (f *fixture) newSkill(ownerId uuid.UUID, title string) *entity.Skill {
	f.t.Helper()
	skill := &entity.Skill{
		Id:         uuid.New(),
		UserId:     ownerId,
		Type:       entity.SkillTypeOffer,
		Title:      title,
		Visibility: entity.SkillVisibilityPublic,
		CreatedAt:  f.clk.Now(),
	}
	uow := f.factory.NewUnitOfWork(context.Background())
	require.NoError(f.t, uow.SkillRepository().Create(context.Background(), skill))
	return skill
}

func (f *fixture) newSlot(start, end string) uuid.UUID {
	f.t.Helper()
	res, err := f.availability.CreateSlot(context.Background(), f.provider.UserId, &dto.CreateAvailabilityRequest{
		StartTime: start,
		EndTime:   end,
		Timezone:  "UTC",
	})
	require.NoError(f.t, err)
	return res.Id
}

// newAcceptedRequest runs create + accept and returns the request id.
func (f *fixture) newAcceptedRequest() uuid.UUID {
	f.t.Helper()
	id := f.newPendingRequest()
	_, err := f.sessions.Respond(context.Background(), f.provider, &dto.RespondSessionRequest{Id: id, Action: "accept"})
	require.NoError(f.t, err)
	f.clk.Advance(time.Minute)
	return id
}

func (f *fixture) newPendingRequest() uuid.UUID {
	f.t.Helper()
	res, err := f.sessions.Create(context.Background(), f.requester, &dto.CreateSessionRequestRequest{
		SkillId: f.skill.Id,
		Message: "looking forward to it",
	})
	require.NoError(f.t, err)
	// Distinct timestamps keep created_at ordering deterministic.
	f.clk.Advance(time.Minute)
	return res.Id
}

func (f *fixture) request(id uuid.UUID) *entity.SessionRequest {
	f.t.Helper()
	uow := f.factory.NewUnitOfWork(context.Background())
	request, err := uow.SessionRequestRepository().FindOne(context.Background(), specification.ByID{ID: id})
	require.NoError(f.t, err)
	require.NotNil(f.t, request)
	return request
}

func (f *fixture) slot(id uuid.UUID) *entity.AvailabilitySlot {
	f.t.Helper()
	uow := f.factory.NewUnitOfWork(context.Background())
	slot, err := uow.AvailabilityRepository().FindOne(context.Background(), specification.ByID{ID: id})
	require.NoError(f.t, err)
	require.NotNil(f.t, slot)
	return slot
}

func (f *fixture) notifications(userId uuid.UUID) []*entity.Notification {
	f.t.Helper()
	uow := f.factory.NewUnitOfWork(context.Background())
	notifications, err := uow.NotificationRepository().FindAll(context.Background(),
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	require.NoError(f.t, err)
	return notifications
}

func lastNotificationType(notifications []*entity.Notification) entity.NotificationType {
	if len(notifications) == 0 {
		return ""
	}
	return notifications[len(notifications)-1].Type
}
