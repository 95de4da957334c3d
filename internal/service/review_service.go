package service

import (
	"context"

	"skillswap-be/internal/apperr"
	"skillswap-be/internal/dto"
	"skillswap-be/internal/entity"
	"skillswap-be/internal/pkg/clock"
	"skillswap-be/internal/repository/specification"
	"skillswap-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IReviewService interface {
	Submit(ctx context.Context, actor Actor, req *dto.SubmitReviewRequest) (*dto.ReviewResponse, error)
	ListForSession(ctx context.Context, actor Actor, sessionRequestId uuid.UUID) ([]*dto.ReviewResponse, error)
	ListForUser(ctx context.Context, userId uuid.UUID) ([]*dto.ReviewResponse, error)
}

type reviewService struct {
	uowFactory unitofwork.RepositoryFactory
	clock      clock.Clock
}

func NewReviewService(uowFactory unitofwork.RepositoryFactory, clk clock.Clock) IReviewService {
	return &reviewService{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Submit upserts the actor's review of a completed session. Resubmitting
// updates the existing row in place instead of failing on the unique pair.
func (s *reviewService) Submit(ctx context.Context, actor Actor, req *dto.SubmitReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.SessionRequestRepository().FindOne(ctx, specification.ByID{ID: req.SessionRequestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperr.NotFound("session request not found")
	}
	if !request.IsParticipant(actor.UserId) && !actor.IsAdmin() {
		return nil, apperr.Authorization("only a participant can review this session")
	}
	if request.Status != entity.RequestStatusCompleted {
		return nil, apperr.InvalidState("reviews are only allowed after the session is completed")
	}

	existing, err := uow.ReviewRepository().FindOne(ctx,
		specification.Filter("session_request_id", req.SessionRequestId),
		specification.Filter("from_user_id", actor.UserId),
	)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var review *entity.Review
	if existing != nil {
		existing.Rating = req.Rating
		existing.Comment = req.Comment
		existing.UpdatedAt = &now
		if err := uow.ReviewRepository().Update(ctx, existing); err != nil {
			return nil, err
		}
		review = existing
	} else {
		review = &entity.Review{
			Id:               uuid.New(),
			SessionRequestId: request.Id,
			FromUserId:       actor.UserId,
			ToUserId:         request.OtherParticipant(actor.UserId),
			Rating:           req.Rating,
			Comment:          req.Comment,
			CreatedAt:        now,
		}
		if err := uow.ReviewRepository().Create(ctx, review); err != nil {
			return nil, err
		}
	}

	return toReviewResponse(review), nil
}

func (s *reviewService) ListForSession(ctx context.Context, actor Actor, sessionRequestId uuid.UUID) ([]*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.SessionRequestRepository().FindOne(ctx, specification.ByID{ID: sessionRequestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperr.NotFound("session request not found")
	}
	if !request.IsParticipant(actor.UserId) && !actor.IsAdmin() {
		return nil, apperr.Authorization("not a participant of this request")
	}

	reviews, err := uow.ReviewRepository().FindAll(ctx,
		specification.Filter("session_request_id", sessionRequestId),
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	return toReviewResponses(reviews), nil
}

func (s *reviewService) ListForUser(ctx context.Context, userId uuid.UUID) ([]*dto.ReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reviews, err := uow.ReviewRepository().FindAll(ctx,
		specification.Filter("to_user_id", userId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toReviewResponses(reviews), nil
}

func toReviewResponse(r *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		Id:               r.Id,
		SessionRequestId: r.SessionRequestId,
		FromUserId:       r.FromUserId,
		ToUserId:         r.ToUserId,
		Rating:           r.Rating,
		Comment:          r.Comment,
		CreatedAt:        r.CreatedAt,
	}
}

func toReviewResponses(reviews []*entity.Review) []*dto.ReviewResponse {
	res := make([]*dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		res = append(res, toReviewResponse(r))
	}
	return res
}
