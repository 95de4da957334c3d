package service

import (
	"context"
	"fmt"

	"skillswap-be/internal/apperr"
	"skillswap-be/internal/dto"
	"skillswap-be/internal/entity"
	"skillswap-be/internal/pkg/clock"
	"skillswap-be/internal/repository/specification"
	"skillswap-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAvailabilityService interface {
	CreateSlot(ctx context.Context, userId uuid.UUID, req *dto.CreateAvailabilityRequest) (*dto.CreateAvailabilityResponse, error)
	ListActiveSlots(ctx context.Context, ownerId uuid.UUID) ([]*dto.AvailabilitySlotResponse, error)
	SoftDeleteSlot(ctx context.Context, userId uuid.UUID, slotId uuid.UUID) error
}

type availabilityService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	clock            clock.Clock
	session          *sessionService
}

func NewAvailabilityService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	clk clock.Clock,
) IAvailabilityService {
	return &availabilityService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		clock:            clk,
		session:          &sessionService{uowFactory: uowFactory, publisherService: publisherService, clock: clk},
	}
}

func (s *availabilityService) CreateSlot(ctx context.Context, userId uuid.UUID, req *dto.CreateAvailabilityRequest) (*dto.CreateAvailabilityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	start, err := parseScheduleTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseScheduleTime(req.EndTime)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, apperr.Validation("end_time must be after start_time")
	}
	if start.Before(s.clock.Now()) {
		return nil, apperr.PastTime("start_time is in the past")
	}

	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}

	// The overlap check and the insert share one transaction so two competing
	// creates cannot both pass the check.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Half-open intervals: a slot ending exactly when another begins is fine.
	overlapping, err := uow.AvailabilityRepository().Count(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ActiveOnly{},
		specification.OverlapsWindow{Start: start, End: end},
	)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, apperr.Conflict("slot overlaps an existing active slot")
	}

	slot := entity.AvailabilitySlot{
		Id:        uuid.New(),
		UserId:    userId,
		StartTime: start,
		EndTime:   end,
		Timezone:  tz,
		IsActive:  true,
		CreatedAt: s.clock.Now(),
	}

	if err := uow.AvailabilityRepository().Create(ctx, &slot); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateAvailabilityResponse{Id: slot.Id}, nil
}

func (s *availabilityService) ListActiveSlots(ctx context.Context, ownerId uuid.UUID) ([]*dto.AvailabilitySlotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slots, err := uow.AvailabilityRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: ownerId},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "start_time"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.AvailabilitySlotResponse, 0, len(slots))
	for _, slot := range slots {
		res = append(res, &dto.AvailabilitySlotResponse{
			Id:                slot.Id,
			UserId:            slot.UserId,
			StartTime:         slot.StartTime,
			EndTime:           slot.EndTime,
			Timezone:          slot.Timezone,
			IsActive:          slot.IsActive,
			ReservedRequestId: slot.ReservedRequestId,
		})
	}
	return res, nil
}

// SoftDeleteSlot deactivates a slot. If a request still holds the slot, the
// hold is released and that request's proposed schedule is reset so it never
// points at a dead slot; the requester is told their proposal no longer stands.
func (s *availabilityService) SoftDeleteSlot(ctx context.Context, userId uuid.UUID, slotId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slot, err := uow.AvailabilityRepository().FindOne(ctx,
		specification.ByID{ID: slotId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if slot == nil {
		return apperr.NotFound("availability slot not found")
	}
	if !slot.IsActive {
		return apperr.InvalidState("slot is already inactive")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	var notif *entity.Notification

	if slot.ReservedRequestId != nil {
		request, err := uow.SessionRequestRepository().FindOne(ctx, specification.ByID{ID: *slot.ReservedRequestId})
		if err != nil {
			return err
		}
		if err := uow.AvailabilityRepository().ReleaseByRequest(ctx, *slot.ReservedRequestId); err != nil {
			return err
		}
		if request != nil && request.ScheduleStatus == entity.ScheduleStatusProposed {
			skill, err := uow.SkillRepository().FindOne(ctx, specification.ByID{ID: request.SkillId})
			if err != nil {
				return err
			}
			clearSchedule(request)
			if err := uow.SessionRequestRepository().Update(ctx, request); err != nil {
				return err
			}
			notif, err = s.session.notify(ctx, uow, request.RequesterId, entity.NotificationScheduleReleased,
				"Proposed slot withdrawn",
				fmt.Sprintf("The slot you proposed for %q was removed by the provider", skillTitle(skill)),
				request, skill)
			if err != nil {
				return err
			}
		}
	}

	if err := uow.AvailabilityRepository().Deactivate(ctx, slot.Id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.session.publishNotification(ctx, notif)
	return nil
}
