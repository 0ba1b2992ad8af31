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

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderMapper
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderMapper(),
	}
}

func (r *OrderRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *entity.Order) error {
	modelOrder := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Create(modelOrder).Error; err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(modelOrder)
	return nil
}

func (r *OrderRepositoryImpl) Update(ctx context.Context, order *entity.Order) error {
	modelOrder := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Save(modelOrder).Error; err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(modelOrder)
	return nil
}

func (r *OrderRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Order{}).Error
}

func (r *OrderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	var modelOrder model.Order
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelOrder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelOrder), nil
}

func (r *OrderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	var modelOrders []*model.Order
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelOrders).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelOrders), nil
}

func (r *OrderRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Order{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *OrderRepositoryImpl) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
