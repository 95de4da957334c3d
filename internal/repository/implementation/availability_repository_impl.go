package implementation

import (
	"context"
	"errors"
	"time"

	"skillswap-be/internal/entity"
	"skillswap-be/internal/mapper"
	"skillswap-be/internal/model"
	"skillswap-be/internal/repository/contract"
	"skillswap-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AvailabilityMapper
}

func NewAvailabilityRepository(db *gorm.DB) contract.AvailabilityRepository {
	return &AvailabilityRepositoryImpl{
		db:     db,
		mapper: mapper.NewAvailabilityMapper(),
	}
}

func (r *AvailabilityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AvailabilityRepositoryImpl) Create(ctx context.Context, slot *entity.AvailabilitySlot) error {
	m := r.mapper.ToModel(slot)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*slot = *r.mapper.ToEntity(m)
	return nil
}

func (r *AvailabilityRepositoryImpl) Update(ctx context.Context, slot *entity.AvailabilitySlot) error {
	m := r.mapper.ToModel(slot)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*slot = *r.mapper.ToEntity(m)
	return nil
}

func (r *AvailabilityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AvailabilitySlot, error) {
	var m model.AvailabilitySlot
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AvailabilityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AvailabilitySlot, error) {
	var models []*model.AvailabilitySlot
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AvailabilityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AvailabilitySlot{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Reserve is the serialization point for double-booking: a single conditional
// UPDATE so two competing proposals cannot both win the same slot. The row
// check covers activity and current holder in one statement.
func (r *AvailabilityRepositoryImpl) Reserve(ctx context.Context, slotID, requestID uuid.UUID, reservedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.AvailabilitySlot{}).
		Where("id = ? AND is_active = ?", slotID, true).
		Where("reserved_request_id IS NULL OR reserved_request_id = ?", requestID).
		Updates(map[string]interface{}{
			"reserved_request_id": requestID,
			"reserved_at":         reservedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *AvailabilityRepositoryImpl) ReleaseByRequest(ctx context.Context, requestID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.AvailabilitySlot{}).
		Where("reserved_request_id = ?", requestID).
		Updates(map[string]interface{}{
			"reserved_request_id": nil,
			"reserved_at":         nil,
		}).Error
}

func (r *AvailabilityRepositoryImpl) Deactivate(ctx context.Context, slotID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.AvailabilitySlot{}).
		Where("id = ?", slotID).
		Update("is_active", false).Error
}
