package implementation

import (
	"context"
	"errors"

	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/mapper"
	"restro-orders-be/internal/model"
	"restro-orders-be/internal/repository/contract"
	"restro-orders-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRequestRepository(db *gorm.DB) contract.SubscriptionRequestRepository {
	return &SubscriptionRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRequestRepositoryImpl) Create(ctx context.Context, req *entity.SubscriptionRequest) error {
	m := r.mapper.RequestToModel(req)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.RequestToEntity(m)
	return nil
}

func (r *SubscriptionRequestRepositoryImpl) Update(ctx context.Context, req *entity.SubscriptionRequest) error {
	m := r.mapper.RequestToModel(req)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.RequestToEntity(m)
	return nil
}

func (r *SubscriptionRequestRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SubscriptionRequest{}).Error
}

func (r *SubscriptionRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionRequest, error) {
	var m model.SubscriptionRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.RequestToEntity(&m), nil
}

func (r *SubscriptionRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionRequest, error) {
	var models []*model.SubscriptionRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.RequestsToEntities(models), nil
}

func (r *SubscriptionRequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SubscriptionRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
