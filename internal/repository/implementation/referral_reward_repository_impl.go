package implementation

import (
	"context"
	"errors"

	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/mapper"
	"restro-orders-be/internal/model"
	"restro-orders-be/internal/repository/contract"
	"restro-orders-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ReferralRewardRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LoyaltyMapper
}

func NewReferralRewardRepository(db *gorm.DB) contract.ReferralRewardRepository {
	return &ReferralRewardRepositoryImpl{
		db:     db,
		mapper: mapper.NewLoyaltyMapper(),
	}
}

func (r *ReferralRewardRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReferralRewardRepositoryImpl) Create(ctx context.Context, reward *entity.ReferralReward) error {
	m := r.mapper.RewardToModel(reward)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*reward = *r.mapper.RewardToEntity(m)
	return nil
}

func (r *ReferralRewardRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReferralReward, error) {
	var m model.ReferralReward
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.RewardToEntity(&m), nil
}

func (r *ReferralRewardRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReferralReward, error) {
	var models []*model.ReferralReward
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.RewardsToEntities(models), nil
}

func (r *ReferralRewardRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ReferralReward{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
