package model

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionRequestId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_review_one_per_user_per_session,priority:1"`
	FromUserId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_review_one_per_user_per_session,priority:2"`
	ToUserId         uuid.UUID `gorm:"type:uuid;not null;index"`

	Rating  int    `gorm:"not null"`
	Comment string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt *time.Time

	SessionRequest *SessionRequest `gorm:"foreignKey:SessionRequestId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	FromUser       *User           `gorm:"foreignKey:FromUserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ToUser         *User           `gorm:"foreignKey:ToUserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Review) TableName() string {
	return "reviews"
}
