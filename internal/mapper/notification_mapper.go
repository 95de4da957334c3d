package mapper

import (
	"skillswap-be/internal/entity"
	"skillswap-be/internal/model"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}
	return &entity.Notification{
		Id:               n.Id,
		UserId:           n.UserId,
		Type:             entity.NotificationType(n.Type),
		Title:            n.Title,
		Body:             n.Body,
		SessionRequestId: n.SessionRequestId,
		SkillId:          n.SkillId,
		Metadata:         n.Metadata,
		IsRead:           n.IsRead,
		ReadAt:           n.ReadAt,
		CreatedAt:        n.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(n *entity.Notification) *model.Notification {
	if n == nil {
		return nil
	}
	return &model.Notification{
		Id:               n.Id,
		UserId:           n.UserId,
		Type:             string(n.Type),
		Title:            n.Title,
		Body:             n.Body,
		SessionRequestId: n.SessionRequestId,
		SkillId:          n.SkillId,
		Metadata:         n.Metadata,
		IsRead:           n.IsRead,
		ReadAt:           n.ReadAt,
		CreatedAt:        n.CreatedAt,
	}
}

func (m *NotificationMapper) ToEntities(notifications []*model.Notification) []*entity.Notification {
	entities := make([]*entity.Notification, len(notifications))
	for i, n := range notifications {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
