package service

import (
	"context"

	"skillswap-be/internal/apperr"
	"skillswap-be/internal/dto"
	"skillswap-be/internal/repository/specification"
	"skillswap-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	notificationDefaultLimit = 20
	notificationMaxLimit     = 100
)

type INotificationService interface {
	List(ctx context.Context, userId uuid.UUID, req *dto.ListNotificationsRequest) ([]*dto.NotificationResponse, error)
	UnreadCount(ctx context.Context, userId uuid.UUID) (*dto.UnreadCountResponse, error)
	MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userId uuid.UUID) error
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
	}
}

func (s *notificationService) List(ctx context.Context, userId uuid.UUID, req *dto.ListNotificationsRequest) ([]*dto.NotificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	limit := req.Limit
	if limit <= 0 {
		limit = notificationDefaultLimit
	}
	if limit > notificationMaxLimit {
		limit = notificationMaxLimit
	}

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	}
	if req.UnreadOnly {
		specs = append(specs, specification.Filter("is_read", false))
	}

	notifications, err := uow.NotificationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		res = append(res, &dto.NotificationResponse{
			Id:               n.Id,
			Type:             string(n.Type),
			Title:            n.Title,
			Body:             n.Body,
			SessionRequestId: n.SessionRequestId,
			SkillId:          n.SkillId,
			Metadata:         n.Metadata,
			IsRead:           n.IsRead,
			CreatedAt:        n.CreatedAt,
		})
	}
	return res, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userId uuid.UUID) (*dto.UnreadCountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.NotificationRepository().Count(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Filter("is_read", false),
	)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Ownership check before the flip; the row is only mutable by its target.
	notif, err := uow.NotificationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if notif == nil {
		return apperr.NotFound("notification not found")
	}

	if err := uow.NotificationRepository().MarkRead(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperr.NotFound("notification not found")
		}
		return err
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkAllRead(ctx, userId)
}
