package entity

import (
	"time"

	"github.com/google/uuid"
)

type SkillType string

const (
	SkillTypeOffer SkillType = "offer"
	SkillTypeSeek  SkillType = "seek"
)

type SkillVisibility string

const (
	SkillVisibilityPublic  SkillVisibility = "public"
	SkillVisibilityPrivate SkillVisibility = "private"
)

type Skill struct {
	Id     uuid.UUID
	UserId uuid.UUID

	Type        SkillType
	Title       string
	Description string
	Tags        string
	Visibility  SkillVisibility

	CreatedAt time.Time
}
