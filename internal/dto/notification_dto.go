package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ListNotificationsRequest struct {
	Limit      int
	UnreadOnly bool
}

type NotificationResponse struct {
	Id               uuid.UUID      `json:"id"`
	Type             string         `json:"type"`
	Title            string         `json:"title"`
	Body             string         `json:"body"`
	SessionRequestId *uuid.UUID     `json:"session_request_id"`
	SkillId          *uuid.UUID     `json:"skill_id"`
	Metadata         datatypes.JSON `json:"metadata"`
	IsRead           bool           `json:"is_read"`
	CreatedAt        time.Time      `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
