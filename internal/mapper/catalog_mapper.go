package mapper

import (
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) CategoryToEntity(c *model.MenuCategory) *entity.MenuCategory {
	if c == nil {
		return nil
	}
	return &entity.MenuCategory{
		Id:        c.Id,
		Name:      c.Name,
		SortOrder: c.SortOrder,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CatalogMapper) CategoryToModel(c *entity.MenuCategory) *model.MenuCategory {
	if c == nil {
		return nil
	}
	return &model.MenuCategory{
		Id:        c.Id,
		Name:      c.Name,
		SortOrder: c.SortOrder,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CatalogMapper) CategoriesToEntities(models []*model.MenuCategory) []*entity.MenuCategory {
	entities := make([]*entity.MenuCategory, len(models))
	for i, mdl := range models {
		entities[i] = m.CategoryToEntity(mdl)
	}
	return entities
}

func (m *CatalogMapper) ItemToEntity(i *model.MenuItem) *entity.MenuItem {
	if i == nil {
		return nil
	}
	return &entity.MenuItem{
		Id:          i.Id,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		CategoryId:  i.CategoryId,
		ImageURL:    i.ImageURL,
		IsAvailable: i.IsAvailable,
		IsVisible:   i.IsVisible,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (m *CatalogMapper) ItemToModel(i *entity.MenuItem) *model.MenuItem {
	if i == nil {
		return nil
	}
	return &model.MenuItem{
		Id:          i.Id,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		CategoryId:  i.CategoryId,
		ImageURL:    i.ImageURL,
		IsAvailable: i.IsAvailable,
		IsVisible:   i.IsVisible,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (m *CatalogMapper) ItemsToEntities(models []*model.MenuItem) []*entity.MenuItem {
	entities := make([]*entity.MenuItem, len(models))
	for i, mdl := range models {
		entities[i] = m.ItemToEntity(mdl)
	}
	return entities
}

func (m *CatalogMapper) SpecialToEntity(s *model.FestivalSpecial) *entity.FestivalSpecial {
	if s == nil {
		return nil
	}
	return &entity.FestivalSpecial{
		Id:          s.Id,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		ImageURL:    s.ImageURL,
		StartsAt:    s.StartsAt,
		EndsAt:      s.EndsAt,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *CatalogMapper) SpecialToModel(s *entity.FestivalSpecial) *model.FestivalSpecial {
	if s == nil {
		return nil
	}
	return &model.FestivalSpecial{
		Id:          s.Id,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		ImageURL:    s.ImageURL,
		StartsAt:    s.StartsAt,
		EndsAt:      s.EndsAt,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *CatalogMapper) SpecialsToEntities(models []*model.FestivalSpecial) []*entity.FestivalSpecial {
	entities := make([]*entity.FestivalSpecial, len(models))
	for i, mdl := range models {
		entities[i] = m.SpecialToEntity(mdl)
	}
	return entities
}
