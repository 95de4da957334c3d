package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionRequest struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequesterId uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderId  uuid.UUID `gorm:"type:uuid;not null;index"`
	SkillId     uuid.UUID `gorm:"type:uuid;not null;index"`

	Message string `gorm:"type:varchar(500)"`

	// pending | accepted | declined | cancelled | completed
	Status string `gorm:"type:varchar(20);not null;default:'pending';index"`

	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	Timezone       *string `gorm:"type:varchar(64)"`

	// none | proposed | confirmed
	ScheduleStatus string `gorm:"type:varchar(20);not null;default:'none'"`

	CreatedAt   time.Time `gorm:"not null;index"`
	RespondedAt *time.Time

	Requester *User  `gorm:"foreignKey:RequesterId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Provider  *User  `gorm:"foreignKey:ProviderId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Skill     *Skill `gorm:"foreignKey:SkillId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (SessionRequest) TableName() string {
	return "session_requests"
}
