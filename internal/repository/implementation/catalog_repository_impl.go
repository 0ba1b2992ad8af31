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

type CatalogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCatalogRepository(db *gorm.DB) contract.CatalogRepository {
	return &CatalogRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *CatalogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Categories

func (r *CatalogRepositoryImpl) CreateCategory(ctx context.Context, category *entity.MenuCategory) error {
	m := r.mapper.CategoryToModel(category)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*category = *r.mapper.CategoryToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) UpdateCategory(ctx context.Context, category *entity.MenuCategory) error {
	m := r.mapper.CategoryToModel(category)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*category = *r.mapper.CategoryToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuCategory{}).Error
}

func (r *CatalogRepositoryImpl) FindOneCategory(ctx context.Context, specs ...specification.Specification) (*entity.MenuCategory, error) {
	var m model.MenuCategory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CategoryToEntity(&m), nil
}

func (r *CatalogRepositoryImpl) FindAllCategories(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuCategory, error) {
	var models []*model.MenuCategory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CategoriesToEntities(models), nil
}

// Items

func (r *CatalogRepositoryImpl) CreateItem(ctx context.Context, item *entity.MenuItem) error {
	m := r.mapper.ItemToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ItemToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) UpdateItem(ctx context.Context, item *entity.MenuItem) error {
	m := r.mapper.ItemToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ItemToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuItem{}).Error
}

func (r *CatalogRepositoryImpl) FindOneItem(ctx context.Context, specs ...specification.Specification) (*entity.MenuItem, error) {
	var m model.MenuItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ItemToEntity(&m), nil
}

func (r *CatalogRepositoryImpl) FindAllItems(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuItem, error) {
	var models []*model.MenuItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ItemsToEntities(models), nil
}

// Festival Specials

func (r *CatalogRepositoryImpl) CreateSpecial(ctx context.Context, special *entity.FestivalSpecial) error {
	m := r.mapper.SpecialToModel(special)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*special = *r.mapper.SpecialToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) UpdateSpecial(ctx context.Context, special *entity.FestivalSpecial) error {
	m := r.mapper.SpecialToModel(special)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*special = *r.mapper.SpecialToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) DeleteSpecial(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FestivalSpecial{}).Error
}

func (r *CatalogRepositoryImpl) FindOneSpecial(ctx context.Context, specs ...specification.Specification) (*entity.FestivalSpecial, error) {
	var m model.FestivalSpecial
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SpecialToEntity(&m), nil
}

func (r *CatalogRepositoryImpl) FindAllSpecials(ctx context.Context, specs ...specification.Specification) ([]*entity.FestivalSpecial, error) {
	var models []*model.FestivalSpecial
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SpecialsToEntities(models), nil
}
