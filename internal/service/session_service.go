package service

import (
	"context"
	"encoding/json"
	"fmt"

	"skillswap-be/internal/apperr"
	"skillswap-be/internal/dto"
	"skillswap-be/internal/entity"
	"skillswap-be/internal/pkg/clock"
	"skillswap-be/internal/pkg/logger"
	"skillswap-be/internal/repository/specification"
	"skillswap-be/internal/repository/unitofwork"
	"skillswap-be/pkg/events"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ISessionService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateSessionRequestRequest) (*dto.CreateSessionRequestResponse, error)
	Respond(ctx context.Context, actor Actor, req *dto.RespondSessionRequest) (*dto.RespondSessionResponse, error)
	Schedule(ctx context.Context, actor Actor, req *dto.ScheduleSessionRequest) (*dto.ScheduleSessionResponse, error)
	Show(ctx context.Context, actor Actor, id uuid.UUID) (*dto.SessionRequestResponse, error)
	ListMine(ctx context.Context, userId uuid.UUID) (*dto.MySessionsResponse, error)
	ListAvailableForRequest(ctx context.Context, actor Actor, requestId uuid.UUID) ([]*dto.RequestSlotResponse, error)
}

type sessionService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	clock            clock.Clock
	logger           logger.ILogger
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	clk clock.Clock,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		clock:            clk,
		logger:           log,
	}
}

func (s *sessionService) Create(ctx context.Context, actor Actor, req *dto.CreateSessionRequestRequest) (*dto.CreateSessionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	skill, err := uow.SkillRepository().FindOne(ctx, specification.ByID{ID: req.SkillId})
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, apperr.NotFound("skill not found")
	}
	if skill.Visibility == entity.SkillVisibilityPrivate && skill.UserId != actor.UserId && !actor.IsAdmin() {
		return nil, apperr.NotFound("skill not found")
	}
	if skill.UserId == actor.UserId {
		return nil, apperr.Validation("cannot request a session on your own skill")
	}

	// One open request per (requester, skill) pair.
	open, err := uow.SessionRequestRepository().Count(ctx,
		specification.ByRequester{UserID: actor.UserId},
		specification.BySkill{SkillID: req.SkillId},
		specification.StatusIn{Statuses: []string{
			string(entity.RequestStatusPending),
			string(entity.RequestStatusAccepted),
		}},
	)
	if err != nil {
		return nil, err
	}
	if open > 0 {
		return nil, apperr.Conflict("an active request for this skill already exists")
	}

	request := entity.SessionRequest{
		Id:             uuid.New(),
		RequesterId:    actor.UserId,
		ProviderId:     skill.UserId,
		SkillId:        skill.Id,
		Message:        req.Message,
		Status:         entity.RequestStatusPending,
		ScheduleStatus: entity.ScheduleStatusNone,
		CreatedAt:      s.clock.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SessionRequestRepository().Create(ctx, &request); err != nil {
		return nil, err
	}

	notif, err := s.notify(ctx, uow, request.ProviderId, entity.NotificationSessionRequested,
		"New session request",
		fmt.Sprintf("You received a session request for %q", skill.Title),
		&request, skill)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishNotification(ctx, notif)

	return &dto.CreateSessionRequestResponse{
		Id:             request.Id,
		Status:         string(request.Status),
		ScheduleStatus: string(request.ScheduleStatus),
		CreatedAt:      request.CreatedAt,
	}, nil
}

func (s *sessionService) Respond(ctx context.Context, actor Actor, req *dto.RespondSessionRequest) (*dto.RespondSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.SessionRequestRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperr.NotFound("session request not found")
	}

	skill, err := uow.SkillRepository().FindOne(ctx, specification.ByID{ID: request.SkillId})
	if err != nil {
		return nil, err
	}

	var notif *entity.Notification

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	switch req.Action {
	case "accept", "decline":
		if request.ProviderId != actor.UserId && !actor.IsAdmin() {
			return nil, apperr.Authorization("only the provider can respond to this request")
		}
		if request.Status != entity.RequestStatusPending {
			return nil, apperr.InvalidState(fmt.Sprintf("cannot %s a request in status %s", req.Action, request.Status))
		}
		now := s.clock.Now()
		request.RespondedAt = &now
		if req.Action == "accept" {
			request.Status = entity.RequestStatusAccepted
			notif, err = s.notify(ctx, uow, request.RequesterId, entity.NotificationSessionAccepted,
				"Session request accepted",
				fmt.Sprintf("Your session request for %q was accepted", skillTitle(skill)),
				request, skill)
		} else {
			request.Status = entity.RequestStatusDeclined
			notif, err = s.notify(ctx, uow, request.RequesterId, entity.NotificationSessionDeclined,
				"Session request declined",
				fmt.Sprintf("Your session request for %q was declined", skillTitle(skill)),
				request, skill)
		}
		if err != nil {
			return nil, err
		}

	case "cancel":
		if request.RequesterId != actor.UserId && !actor.IsAdmin() {
			return nil, apperr.Authorization("only the requester can cancel this request")
		}
		if request.Status != entity.RequestStatusPending && request.Status != entity.RequestStatusAccepted {
			return nil, apperr.InvalidState(fmt.Sprintf("cannot cancel a request in status %s", request.Status))
		}
		// Leaving accepted without completing: give any held slot back.
		if request.Status == entity.RequestStatusAccepted {
			if err := uow.AvailabilityRepository().ReleaseByRequest(ctx, request.Id); err != nil {
				return nil, err
			}
			clearSchedule(request)
		}
		now := s.clock.Now()
		request.RespondedAt = &now
		request.Status = entity.RequestStatusCancelled
		notif, err = s.notify(ctx, uow, request.ProviderId, entity.NotificationSessionCancelled,
			"Session request cancelled",
			fmt.Sprintf("The session request for %q was cancelled", skillTitle(skill)),
			request, skill)
		if err != nil {
			return nil, err
		}

	case "complete":
		if !request.IsParticipant(actor.UserId) && !actor.IsAdmin() {
			return nil, apperr.Authorization("only a participant can complete this request")
		}
		if request.Status != entity.RequestStatusAccepted {
			return nil, apperr.InvalidState(fmt.Sprintf("cannot complete a request in status %s", request.Status))
		}
		now := s.clock.Now()
		request.RespondedAt = &now
		request.Status = entity.RequestStatusCompleted
		notif, err = s.notify(ctx, uow, request.OtherParticipant(actor.UserId), entity.NotificationSessionCompleted,
			"Session completed",
			fmt.Sprintf("The session for %q was marked as completed", skillTitle(skill)),
			request, skill)
		if err != nil {
			return nil, err
		}

	default:
		return nil, apperr.Validation("unknown action: " + req.Action)
	}

	if err := uow.SessionRequestRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishNotification(ctx, notif)

	return &dto.RespondSessionResponse{
		Id:     request.Id,
		Status: string(request.Status),
	}, nil
}

func (s *sessionService) Schedule(ctx context.Context, actor Actor, req *dto.ScheduleSessionRequest) (*dto.ScheduleSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.SessionRequestRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperr.NotFound("session request not found")
	}
	if !request.IsParticipant(actor.UserId) && !actor.IsAdmin() {
		return nil, apperr.Authorization("not a participant of this request")
	}

	skill, err := uow.SkillRepository().FindOne(ctx, specification.ByID{ID: request.SkillId})
	if err != nil {
		return nil, err
	}

	var notif *entity.Notification

	switch req.Action {
	case "propose":
		notif, err = s.propose(ctx, uow, actor, request, skill, req)
	case "confirm":
		notif, err = s.confirm(ctx, uow, actor, request, skill)
	case "clear":
		notif, err = s.clear(ctx, uow, actor, request, skill)
	default:
		return nil, apperr.Validation("unknown action: " + req.Action)
	}
	if err != nil {
		return nil, err
	}

	if err := uow.SessionRequestRepository().Update(ctx, request); err != nil {
		uow.Rollback()
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishNotification(ctx, notif)

	return &dto.ScheduleSessionResponse{
		Id:             request.Id,
		ScheduleStatus: string(request.ScheduleStatus),
	}, nil
}

// propose validates either scheduling mode, opens the transaction and places
// the hold. The caller persists the request mutation and commits.
func (s *sessionService) propose(ctx context.Context, uow unitofwork.UnitOfWork, actor Actor, request *entity.SessionRequest, skill *entity.Skill, req *dto.ScheduleSessionRequest) (*entity.Notification, error) {
	if request.RequesterId != actor.UserId && !actor.IsAdmin() {
		return nil, apperr.Authorization("only the requester can propose a schedule")
	}
	if request.Status != entity.RequestStatusAccepted {
		return nil, apperr.InvalidState(fmt.Sprintf("cannot schedule a request in status %s", request.Status))
	}
	if request.ScheduleStatus == entity.ScheduleStatusConfirmed {
		return nil, apperr.InvalidState("schedule already confirmed, clear it first")
	}

	now := s.clock.Now()

	if req.SlotId != nil {
		slot, err := uow.AvailabilityRepository().FindOne(ctx, specification.ByID{ID: *req.SlotId})
		if err != nil {
			return nil, err
		}
		if slot == nil {
			return nil, apperr.NotFound("availability slot not found")
		}
		if slot.UserId != request.ProviderId {
			return nil, apperr.Validation("slot does not belong to the provider")
		}
		if !slot.IsActive {
			return nil, apperr.InvalidState("slot is no longer available")
		}
		if slot.StartTime.Before(now) {
			return nil, apperr.PastTime("slot start time is in the past")
		}

		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}

		// Drop any hold from an earlier proposal before taking the new one.
		if err := uow.AvailabilityRepository().ReleaseByRequest(ctx, request.Id); err != nil {
			uow.Rollback()
			return nil, err
		}

		ok, err := uow.AvailabilityRepository().Reserve(ctx, slot.Id, request.Id, now)
		if err != nil {
			uow.Rollback()
			return nil, err
		}
		if !ok {
			uow.Rollback()
			return nil, apperr.Conflict("slot is already reserved by another request")
		}

		start, end, tz := slot.StartTime, slot.EndTime, slot.Timezone
		request.ScheduledStart = &start
		request.ScheduledEnd = &end
		request.Timezone = &tz
	} else {
		if req.ScheduledStart == "" || req.ScheduledEnd == "" {
			return nil, apperr.Validation("either slot_id or scheduled_start and scheduled_end are required")
		}
		start, err := parseScheduleTime(req.ScheduledStart)
		if err != nil {
			return nil, err
		}
		end, err := parseScheduleTime(req.ScheduledEnd)
		if err != nil {
			return nil, err
		}
		if !end.After(start) {
			return nil, apperr.Validation("scheduled_end must be after scheduled_start")
		}
		if start.Before(now) {
			return nil, apperr.PastTime("scheduled_start is in the past")
		}
		tz := req.Timezone
		if tz == "" {
			tz = "UTC"
		}

		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}

		// A free-form proposal holds no slot.
		if err := uow.AvailabilityRepository().ReleaseByRequest(ctx, request.Id); err != nil {
			uow.Rollback()
			return nil, err
		}

		request.ScheduledStart = &start
		request.ScheduledEnd = &end
		request.Timezone = &tz
	}

	request.ScheduleStatus = entity.ScheduleStatusProposed
	request.RespondedAt = &now

	notif, err := s.notify(ctx, uow, request.OtherParticipant(actor.UserId), entity.NotificationScheduleProposed,
		"Schedule proposed",
		fmt.Sprintf("A time was proposed for the session on %q", skillTitle(skill)),
		request, skill)
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	return notif, nil
}

func (s *sessionService) confirm(ctx context.Context, uow unitofwork.UnitOfWork, actor Actor, request *entity.SessionRequest, skill *entity.Skill) (*entity.Notification, error) {
	if request.ProviderId != actor.UserId && !actor.IsAdmin() {
		return nil, apperr.Authorization("only the provider can confirm a schedule")
	}
	if request.ScheduleStatus != entity.ScheduleStatusProposed {
		return nil, apperr.InvalidState(fmt.Sprintf("cannot confirm a schedule in state %s", request.ScheduleStatus))
	}
	if request.ScheduledStart == nil || request.ScheduledEnd == nil {
		return nil, apperr.InvalidState("no proposed times to confirm")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	slot, err := uow.AvailabilityRepository().FindOne(ctx, specification.ReservedByRequest{RequestID: request.Id})
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if slot != nil {
		// The slot row may have drifted since the proposal. Reject instead of
		// silently re-syncing the request times.
		if !slot.StartTime.Equal(*request.ScheduledStart) || !slot.EndTime.Equal(*request.ScheduledEnd) {
			uow.Rollback()
			return nil, apperr.Conflict("slot times changed since the proposal")
		}
		if err := uow.AvailabilityRepository().Deactivate(ctx, slot.Id); err != nil {
			uow.Rollback()
			return nil, err
		}
	}

	now := s.clock.Now()
	request.ScheduleStatus = entity.ScheduleStatusConfirmed
	request.RespondedAt = &now

	notif, err := s.notify(ctx, uow, request.RequesterId, entity.NotificationScheduleConfirmed,
		"Schedule confirmed",
		fmt.Sprintf("The session time for %q was confirmed", skillTitle(skill)),
		request, skill)
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	return notif, nil
}

func (s *sessionService) clear(ctx context.Context, uow unitofwork.UnitOfWork, actor Actor, request *entity.SessionRequest, skill *entity.Skill) (*entity.Notification, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	if err := uow.AvailabilityRepository().ReleaseByRequest(ctx, request.Id); err != nil {
		uow.Rollback()
		return nil, err
	}

	clearSchedule(request)
	now := s.clock.Now()
	request.RespondedAt = &now

	notif, err := s.notify(ctx, uow, request.OtherParticipant(actor.UserId), entity.NotificationScheduleCleared,
		"Schedule cleared",
		fmt.Sprintf("The proposed time for the session on %q was cleared", skillTitle(skill)),
		request, skill)
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	return notif, nil
}

func (s *sessionService) Show(ctx context.Context, actor Actor, id uuid.UUID) (*dto.SessionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.SessionRequestRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperr.NotFound("session request not found")
	}
	if !request.IsParticipant(actor.UserId) && !actor.IsAdmin() {
		return nil, apperr.Authorization("not a participant of this request")
	}

	skill, err := uow.SkillRepository().FindOne(ctx, specification.ByID{ID: request.SkillId})
	if err != nil {
		return nil, err
	}

	return toSessionResponse(request, skillTitle(skill)), nil
}

func (s *sessionService) ListMine(ctx context.Context, userId uuid.UUID) (*dto.MySessionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.SessionRequestRepository().FindAll(ctx,
		specification.ByParticipant{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	titles, err := s.skillTitles(ctx, uow, requests)
	if err != nil {
		return nil, err
	}

	res := &dto.MySessionsResponse{
		Made:     make([]*dto.SessionRequestResponse, 0),
		Received: make([]*dto.SessionRequestResponse, 0),
	}
	for _, r := range requests {
		item := toSessionResponse(r, titles[r.SkillId])
		if r.RequesterId == userId {
			res.Made = append(res.Made, item)
		} else {
			res.Received = append(res.Received, item)
		}
	}
	return res, nil
}

func (s *sessionService) ListAvailableForRequest(ctx context.Context, actor Actor, requestId uuid.UUID) ([]*dto.RequestSlotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.SessionRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperr.NotFound("session request not found")
	}
	if !request.IsParticipant(actor.UserId) && !actor.IsAdmin() {
		return nil, apperr.Authorization("not a participant of this request")
	}

	slots, err := uow.AvailabilityRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: request.ProviderId},
		specification.ActiveOnly{},
		specification.FreeOrReservedBy{RequestID: request.Id},
		specification.OrderBy{Field: "start_time"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RequestSlotResponse, 0, len(slots))
	for _, slot := range slots {
		res = append(res, &dto.RequestSlotResponse{
			Id:                slot.Id,
			StartTime:         slot.StartTime,
			EndTime:           slot.EndTime,
			Timezone:          slot.Timezone,
			ReservedRequestId: slot.ReservedRequestId,
		})
	}
	return res, nil
}

// notify writes the notification row inside the caller's transaction so it
// commits or rolls back with the transition that triggered it.
func (s *sessionService) notify(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, notifType entity.NotificationType, title, body string, request *entity.SessionRequest, skill *entity.Skill) (*entity.Notification, error) {
	notif := &entity.Notification{
		Id:        uuid.New(),
		UserId:    userId,
		Type:      notifType,
		Title:     title,
		Body:      body,
		CreatedAt: s.clock.Now(),
	}
	meta := map[string]interface{}{}
	if request != nil {
		notif.SessionRequestId = &request.Id
		meta["session_request_id"] = request.Id.String()
		meta["status"] = string(request.Status)
		meta["schedule_status"] = string(request.ScheduleStatus)
	}
	if skill != nil {
		notif.SkillId = &skill.Id
		meta["skill_id"] = skill.Id.String()
		meta["skill_title"] = skill.Title
	}
	metaJSON, _ := json.Marshal(meta)
	notif.Metadata = datatypes.JSON(metaJSON)

	if err := uow.NotificationRepository().Create(ctx, notif); err != nil {
		return nil, err
	}
	return notif, nil
}

// publishNotification mirrors a committed notification onto the event bus for
// real-time delivery. Failures are logged, never surfaced: the row is durable.
func (s *sessionService) publishNotification(ctx context.Context, notif *entity.Notification) {
	if notif == nil || s.publisherService == nil {
		return
	}
	event := events.NewEvent(string(notif.Type), map[string]interface{}{
		"notification_id": notif.Id.String(),
		"user_id":         notif.UserId.String(),
		"title":           notif.Title,
		"body":            notif.Body,
		"metadata":        notif.Metadata,
	}, notif.CreatedAt)

	if err := s.publisherService.Publish(ctx, event); err != nil && s.logger != nil {
		s.logger.Warn("SessionService", "failed to publish notification event", map[string]interface{}{
			"error": err.Error(),
			"type":  string(notif.Type),
		})
	}
}

func clearSchedule(request *entity.SessionRequest) {
	request.ScheduleStatus = entity.ScheduleStatusNone
	request.ScheduledStart = nil
	request.ScheduledEnd = nil
	request.Timezone = nil
}

func skillTitle(skill *entity.Skill) string {
	if skill == nil {
		return "a skill"
	}
	return skill.Title
}

func toSessionResponse(r *entity.SessionRequest, skillTitle string) *dto.SessionRequestResponse {
	return &dto.SessionRequestResponse{
		Id:             r.Id,
		SkillId:        r.SkillId,
		SkillTitle:     skillTitle,
		RequesterId:    r.RequesterId,
		ProviderId:     r.ProviderId,
		Message:        r.Message,
		Status:         string(r.Status),
		ScheduleStatus: string(r.ScheduleStatus),
		ScheduledStart: r.ScheduledStart,
		ScheduledEnd:   r.ScheduledEnd,
		Timezone:       r.Timezone,
		CreatedAt:      r.CreatedAt,
		RespondedAt:    r.RespondedAt,
	}
}

func (s *sessionService) skillTitles(ctx context.Context, uow unitofwork.UnitOfWork, requests []*entity.SessionRequest) (map[uuid.UUID]string, error) {
	titles := make(map[uuid.UUID]string)
	if len(requests) == 0 {
		return titles, nil
	}
	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0, len(requests))
	for _, r := range requests {
		if !seen[r.SkillId] {
			seen[r.SkillId] = true
			ids = append(ids, r.SkillId)
		}
	}
	skills, err := uow.SkillRepository().FindAll(ctx, specification.IDIn{IDs: ids})
	if err != nil {
		return nil, err
	}
	for _, skill := range skills {
		titles[skill.Id] = skill.Title
	}
	return titles, nil
}
