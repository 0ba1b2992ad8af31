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

type PointsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LoyaltyMapper
}

func NewPointsRepository(db *gorm.DB) contract.PointsRepository {
	return &PointsRepositoryImpl{
		db:     db,
		mapper: mapper.NewLoyaltyMapper(),
	}
}

func (r *PointsRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PointsRepositoryImpl) Create(ctx context.Context, tx *entity.PointsTransaction) error {
	m := r.mapper.TransactionToModel(tx)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tx = *r.mapper.TransactionToEntity(m)
	return nil
}

func (r *PointsRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PointsTransaction, error) {
	var m model.PointsTransaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.TransactionToEntity(&m), nil
}

func (r *PointsRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PointsTransaction, error) {
	var models []*model.PointsTransaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.TransactionsToEntities(models), nil
}

func (r *PointsRepositoryImpl) SumByUser(ctx context.Context, userId uuid.UUID) (int, error) {
	var sum *int
	err := r.db.WithContext(ctx).
		Model(&model.PointsTransaction{}).
		Select("SUM(CASE WHEN direction = 'earned' THEN amount ELSE -amount END)").
		Where("user_id = ?", userId).
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
