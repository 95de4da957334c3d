package mapper

import (
	"skillswap-be/internal/entity"
	"skillswap-be/internal/model"
)

type SkillMapper struct{}

func NewSkillMapper() *SkillMapper {
	return &SkillMapper{}
}

func (m *SkillMapper) ToEntity(s *model.Skill) *entity.Skill {
	if s == nil {
		return nil
	}
	return &entity.Skill{
		Id:          s.Id,
		UserId:      s.UserId,
		Type:        entity.SkillType(s.Type),
		Title:       s.Title,
		Description: s.Description,
		Tags:        s.Tags,
		Visibility:  entity.SkillVisibility(s.Visibility),
		CreatedAt:   s.CreatedAt,
	}
}

func (m *SkillMapper) ToModel(s *entity.Skill) *model.Skill {
	if s == nil {
		return nil
	}
	return &model.Skill{
		Id:          s.Id,
		UserId:      s.UserId,
		Type:        string(s.Type),
		Title:       s.Title,
		Description: s.Description,
		Tags:        s.Tags,
		Visibility:  string(s.Visibility),
		CreatedAt:   s.CreatedAt,
	}
}

func (m *SkillMapper) ToEntities(skills []*model.Skill) []*entity.Skill {
	entities := make([]*entity.Skill, len(skills))
	for i, s := range skills {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
