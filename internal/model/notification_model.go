package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Notification struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1;index:idx_notifications_user_unread,priority:1"`

	Type  string `gorm:"type:varchar(50);not null"`
	Title string `gorm:"type:varchar(120);not null"`
	Body  string `gorm:"type:text"`

	// Deep-links for the UI, not ownership references.
	SessionRequestId *uuid.UUID `gorm:"type:uuid"`
	SkillId          *uuid.UUID `gorm:"type:uuid"`

	Metadata datatypes.JSON `gorm:"type:jsonb"`

	IsRead    bool       `gorm:"not null;default:false;index:idx_notifications_user_unread,priority:2"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"not null;index:idx_notifications_user_created,priority:2"`

	User *User `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Notification) TableName() string {
	return "notifications"
}
