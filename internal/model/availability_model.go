package model

import (
	"time"

	"github.com/google/uuid"
)

type AvailabilitySlot struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId uuid.UUID `gorm:"type:uuid;not null;index"`

	StartTime time.Time `gorm:"not null;index"`
	EndTime   time.Time `gorm:"not null"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'America/Denver'"`

	IsActive bool `gorm:"not null;default:true;index"`

	// Soft hold: at most one request reserves a slot at a time.
	ReservedRequestId *uuid.UUID `gorm:"type:uuid;index"`
	ReservedAt        *time.Time

	CreatedAt time.Time `gorm:"not null"`

	User            *User           `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ReservedRequest *SessionRequest `gorm:"foreignKey:ReservedRequestId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (AvailabilitySlot) TableName() string {
	return "availability"
}
