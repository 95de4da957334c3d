package mapper

import (
	"skillswap-be/internal/entity"
	"skillswap-be/internal/model"
)

type SessionRequestMapper struct{}

func NewSessionRequestMapper() *SessionRequestMapper {
	return &SessionRequestMapper{}
}

func (m *SessionRequestMapper) ToEntity(r *model.SessionRequest) *entity.SessionRequest {
	if r == nil {
		return nil
	}
	return &entity.SessionRequest{
		Id:             r.Id,
		RequesterId:    r.RequesterId,
		ProviderId:     r.ProviderId,
		SkillId:        r.SkillId,
		Message:        r.Message,
		Status:         entity.RequestStatus(r.Status),
		ScheduleStatus: entity.ScheduleStatus(r.ScheduleStatus),
		ScheduledStart: r.ScheduledStart,
		ScheduledEnd:   r.ScheduledEnd,
		Timezone:       r.Timezone,
		CreatedAt:      r.CreatedAt,
		RespondedAt:    r.RespondedAt,
	}
}

func (m *SessionRequestMapper) ToModel(r *entity.SessionRequest) *model.SessionRequest {
	if r == nil {
		return nil
	}
	return &model.SessionRequest{
		Id:             r.Id,
		RequesterId:    r.RequesterId,
		ProviderId:     r.ProviderId,
		SkillId:        r.SkillId,
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

func (m *SessionRequestMapper) ToEntities(requests []*model.SessionRequest) []*entity.SessionRequest {
	entities := make([]*entity.SessionRequest, len(requests))
	for i, r := range requests {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
