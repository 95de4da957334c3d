package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByParticipant matches requests where the user is requester or provider.
type ByParticipant struct {
	UserID uuid.UUID
}

func (s ByParticipant) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("requester_id = ? OR provider_id = ?", s.UserID, s.UserID)
}

// ByRequester filters by the requesting user.
type ByRequester struct {
	UserID uuid.UUID
}

func (s ByRequester) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("requester_id = ?", s.UserID)
}

// BySkill filters by skill reference.
type BySkill struct {
	SkillID uuid.UUID
}

func (s BySkill) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("skill_id = ?", s.SkillID)
}

// StatusIn filters by a set of primary statuses.
type StatusIn struct {
	Statuses []string
}

func (s StatusIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}
