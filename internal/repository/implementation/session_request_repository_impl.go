package implementation

import (
	"context"
	"errors"

	"skillswap-be/internal/entity"
	"skillswap-be/internal/mapper"
	"skillswap-be/internal/model"
	"skillswap-be/internal/repository/contract"
	"skillswap-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SessionRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionRequestMapper
}

func NewSessionRequestRepository(db *gorm.DB) contract.SessionRequestRepository {
	return &SessionRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionRequestMapper(),
	}
}

func (r *SessionRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SessionRequestRepositoryImpl) Create(ctx context.Context, request *entity.SessionRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *SessionRequestRepositoryImpl) Update(ctx context.Context, request *entity.SessionRequest) error {
	m := r.mapper.ToModel(request)
	// Save writes every column so cleared schedule fields persist as NULL.
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *SessionRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionRequest, error) {
	var m model.SessionRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SessionRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionRequest, error) {
	var models []*model.SessionRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SessionRequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SessionRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
