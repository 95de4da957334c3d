package service

import (
	"context"

	"skillswap-be/internal/apperr"
	"skillswap-be/internal/dto"
	"skillswap-be/internal/entity"
	"skillswap-be/internal/pkg/clock"
	"skillswap-be/internal/repository/specification"
	"skillswap-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ISkillService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSkillRequest) (*dto.SkillResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSkillRequest) (*dto.SkillResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Show(ctx context.Context, actor Actor, id uuid.UUID) (*dto.SkillResponse, error)
	List(ctx context.Context, req *dto.ListSkillsRequest) ([]*dto.SkillResponse, error)
}

type skillService struct {
	uowFactory unitofwork.RepositoryFactory
	clock      clock.Clock
}

func NewSkillService(uowFactory unitofwork.RepositoryFactory, clk clock.Clock) ISkillService {
	return &skillService{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

func (s *skillService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSkillRequest) (*dto.SkillResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	visibility := entity.SkillVisibility(req.Visibility)
	if visibility == "" {
		visibility = entity.SkillVisibilityPublic
	}

	skill := entity.Skill{
		Id:          uuid.New(),
		UserId:      userId,
		Type:        entity.SkillType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Visibility:  visibility,
		CreatedAt:   s.clock.Now(),
	}

	if err := uow.SkillRepository().Create(ctx, &skill); err != nil {
		return nil, err
	}

	return toSkillResponse(&skill, ""), nil
}

func (s *skillService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSkillRequest) (*dto.SkillResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	skill, err := uow.SkillRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, apperr.NotFound("skill not found")
	}

	if req.Title != nil {
		skill.Title = *req.Title
	}
	if req.Description != nil {
		skill.Description = *req.Description
	}
	if req.Tags != nil {
		skill.Tags = *req.Tags
	}
	if req.Visibility != nil {
		skill.Visibility = entity.SkillVisibility(*req.Visibility)
	}

	if err := uow.SkillRepository().Update(ctx, skill); err != nil {
		return nil, err
	}
	return toSkillResponse(skill, ""), nil
}

func (s *skillService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	skill, err := uow.SkillRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if skill == nil {
		return apperr.NotFound("skill not found")
	}

	// Open requests keep their snapshot of provider_id; deleting a skill does
	// not touch the request lifecycle.
	return uow.SkillRepository().Delete(ctx, id)
}

func (s *skillService) Show(ctx context.Context, actor Actor, id uuid.UUID) (*dto.SkillResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	skill, err := uow.SkillRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, apperr.NotFound("skill not found")
	}
	if skill.Visibility == entity.SkillVisibilityPrivate && skill.UserId != actor.UserId && !actor.IsAdmin() {
		return nil, apperr.NotFound("skill not found")
	}

	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: skill.UserId})
	if err != nil {
		return nil, err
	}
	ownerName := ""
	if owner != nil {
		ownerName = owner.Name
	}
	return toSkillResponse(skill, ownerName), nil
}

func (s *skillService) List(ctx context.Context, req *dto.ListSkillsRequest) ([]*dto.SkillResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := 0
	if req.Page > 1 {
		offset = (req.Page - 1) * limit
	}

	specs := []specification.Specification{
		specification.Filter("visibility", string(entity.SkillVisibilityPublic)),
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if req.Type != "" {
		specs = append(specs, specification.Filter("type", req.Type))
	}
	if req.UserId != nil {
		specs = append(specs, specification.UserOwnedBy{UserID: *req.UserId})
	}
	if req.Query != "" {
		specs = append(specs, titleSearch{query: req.Query})
	}

	skills, err := uow.SkillRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SkillResponse, 0, len(skills))
	for _, skill := range skills {
		res = append(res, toSkillResponse(skill, ""))
	}
	return res, nil
}

// titleSearch is a case-insensitive substring match on title and tags.
type titleSearch struct {
	query string
}

func (s titleSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.query + "%"
	return db.Where("LOWER(title) LIKE LOWER(?) OR LOWER(tags) LIKE LOWER(?)", pattern, pattern)
}

func toSkillResponse(skill *entity.Skill, ownerName string) *dto.SkillResponse {
	return &dto.SkillResponse{
		Id:          skill.Id,
		UserId:      skill.UserId,
		UserName:    ownerName,
		Type:        string(skill.Type),
		Title:       skill.Title,
		Description: skill.Description,
		Tags:        skill.Tags,
		Visibility:  string(skill.Visibility),
		CreatedAt:   skill.CreatedAt,
	}
}
