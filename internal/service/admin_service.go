package service

import (
	"context"

	"skillswap-be/internal/apperr"
	"skillswap-be/internal/dto"
	"skillswap-be/internal/entity"
	"skillswap-be/internal/pkg/logger"
	"skillswap-be/internal/repository/specification"
	"skillswap-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAdminService interface {
	Report(ctx context.Context) (*dto.AdminReportResponse, error)
	ListUsers(ctx context.Context, page, limit int) ([]*dto.UserResponse, error)
	SetUserRole(ctx context.Context, userId uuid.UUID, role string) error
	SetUserActive(ctx context.Context, userId uuid.UUID, active bool) error
	GetLogs(level string, limit, offset int) ([]logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *adminService) Report(ctx context.Context) (*dto.AdminReportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	skills, err := uow.SkillRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := uow.SessionRequestRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := uow.SessionRequestRepository().Count(ctx,
		specification.StatusIn{Statuses: []string{string(entity.RequestStatusCompleted)}},
	)
	if err != nil {
		return nil, err
	}
	activeSlots, err := uow.AvailabilityRepository().Count(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	reviews, err := uow.ReviewRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminReportResponse{
		Users:             users,
		Skills:            skills,
		SessionRequests:   requests,
		ActiveSlots:       activeSlots,
		CompletedSessions: completed,
		Reviews:           reviews,
	}, nil
}

func (s *adminService) ListUsers(ctx context.Context, page, limit int) ([]*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := 0
	if page > 1 {
		offset = (page - 1) * limit
	}

	users, err := uow.UserRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		res = append(res, toUserResponse(user))
	}
	return res, nil
}

func (s *adminService) SetUserRole(ctx context.Context, userId uuid.UUID, role string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("user not found")
	}

	user.Role = entity.UserRole(role)
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("AdminService", "user role updated", map[string]interface{}{
		"user_id": userId.String(),
		"role":    role,
	})
	return nil
}

func (s *adminService) SetUserActive(ctx context.Context, userId uuid.UUID, active bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("user not found")
	}

	user.IsActive = active
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("AdminService", "user active flag updated", map[string]interface{}{
		"user_id": userId.String(),
		"active":  active,
	})
	return nil
}

func (s *adminService) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.logger.GetLogs(level, limit, offset)
}
