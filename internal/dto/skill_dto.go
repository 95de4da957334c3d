package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSkillRequest struct {
	Type        string `json:"type" validate:"required,oneof=offer seek"`
	Title       string `json:"title" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
	Tags        string `json:"tags" validate:"max=255"`
	Visibility  string `json:"visibility" validate:"omitempty,oneof=public private"`
}

type UpdateSkillRequest struct {
	Id          uuid.UUID
	Title       *string `json:"title" validate:"omitempty,max=120"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Tags        *string `json:"tags" validate:"omitempty,max=255"`
	Visibility  *string `json:"visibility" validate:"omitempty,oneof=public private"`
}

type ListSkillsRequest struct {
	Type   string `validate:"omitempty,oneof=offer seek"`
	Query  string
	UserId *uuid.UUID
	Page   int
	Limit  int
}

type SkillResponse struct {
	Id          uuid.UUID `json:"id"`
	UserId      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        string    `json:"tags"`
	Visibility  string    `json:"visibility"`
	CreatedAt   time.Time `json:"created_at"`
}
