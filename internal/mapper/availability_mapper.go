package mapper

import (
	"skillswap-be/internal/entity"
	"skillswap-be/internal/model"
)

type AvailabilityMapper struct{}

func NewAvailabilityMapper() *AvailabilityMapper {
	return &AvailabilityMapper{}
}

func (m *AvailabilityMapper) ToEntity(s *model.AvailabilitySlot) *entity.AvailabilitySlot {
	if s == nil {
		return nil
	}
	return &entity.AvailabilitySlot{
		Id:                s.Id,
		UserId:            s.UserId,
		StartTime:         s.StartTime,
		EndTime:           s.EndTime,
		Timezone:          s.Timezone,
		IsActive:          s.IsActive,
		ReservedRequestId: s.ReservedRequestId,
		ReservedAt:        s.ReservedAt,
		CreatedAt:         s.CreatedAt,
	}
}

func (m *AvailabilityMapper) ToModel(s *entity.AvailabilitySlot) *model.AvailabilitySlot {
	if s == nil {
		return nil
	}
	return &model.AvailabilitySlot{
		Id:                s.Id,
		UserId:            s.UserId,
		StartTime:         s.StartTime,
		EndTime:           s.EndTime,
		Timezone:          s.Timezone,
		IsActive:          s.IsActive,
		ReservedRequestId: s.ReservedRequestId,
		ReservedAt:        s.ReservedAt,
		CreatedAt:         s.CreatedAt,
	}
}

func (m *AvailabilityMapper) ToEntities(slots []*model.AvailabilitySlot) []*entity.AvailabilitySlot {
	entities := make([]*entity.AvailabilitySlot, len(slots))
	for i, s := range slots {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
