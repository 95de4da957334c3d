package model

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId uuid.UUID `gorm:"type:uuid;not null;index"`

	Type        string `gorm:"type:varchar(10);not null"`
	Title       string `gorm:"type:varchar(120);not null"`
	Description string `gorm:"type:text"`
	Tags        string `gorm:"type:varchar(255)"`
	Visibility  string `gorm:"type:varchar(10);not null;default:'public'"`

	CreatedAt time.Time `gorm:"not null"`

	User *User `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Skill) TableName() string {
	return "skills"
}
