package service

import (
	"context"
	"time"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/dto"
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/repository/specification"
	"restro-orders-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const menuCacheKey = "public_menu"

type ICatalogService interface {
	GetMenu(ctx context.Context) (*dto.MenuResponse, error)

	CreateCategory(ctx context.Context, req *dto.MenuCategoryRequest) (*dto.MenuCategoryResponse, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *dto.MenuCategoryRequest) (*dto.MenuCategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateItem(ctx context.Context, req *dto.MenuItemRequest) (*dto.MenuItemResponse, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req *dto.MenuItemRequest) (*dto.MenuItemResponse, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error

	CreateSpecial(ctx context.Context, req *dto.FestivalSpecialRequest) (*dto.FestivalSpecialResponse, error)
	UpdateSpecial(ctx context.Context, id uuid.UUID, req *dto.FestivalSpecialRequest) (*dto.FestivalSpecialResponse, error)
	DeleteSpecial(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, c *cache.Cache) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		cache:      c,
	}
}

// GetMenu serves the public menu from cache. Any write through this service
// invalidates the entry, so staleness is bounded by the TTL only for writes
// that bypass the service entirely.
func (s *catalogService) GetMenu(ctx context.Context) (*dto.MenuResponse, error) {
	if cached, found := s.cache.Get(menuCacheKey); found {
		if menu, ok := cached.(*dto.MenuResponse); ok {
			return menu, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CatalogRepository().FindAllCategories(ctx,
		specification.OrderBy{Field: "sort_order", Desc: false},
	)
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	items, err := uow.CatalogRepository().FindAllItems(ctx,
		specification.FilterBy{Field: "is_visible", Value: true},
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	now := time.Now()
	specials, err := uow.CatalogRepository().FindAllSpecials(ctx,
		specification.FilterBy{Field: "is_active", Value: true},
	)
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	menu := buildMenu(categories, items, specials, now)
	s.cache.Set(menuCacheKey, menu, cache.DefaultExpiration)
	return menu, nil
}

func buildMenu(categories []*entity.MenuCategory, items []*entity.MenuItem, specials []*entity.FestivalSpecial, now time.Time) *dto.MenuResponse {
	sections := make([]dto.MenuCategorySection, 0, len(categories)+1)
	index := make(map[uuid.UUID]int, len(categories))

	for _, c := range categories {
		index[c.Id] = len(sections)
		id := c.Id
		sections = append(sections, dto.MenuCategorySection{
			Id:    &id,
			Name:  c.Name,
			Items: make([]dto.MenuItemResponse, 0),
		})
	}

	// Orphaned items fall back to a synthetic bucket.
	uncategorized := dto.MenuCategorySection{
		Name:  "Uncategorized",
		Items: make([]dto.MenuItemResponse, 0),
	}

	for _, item := range items {
		resp := mapMenuItem(item, "")
		if item.CategoryId != nil {
			if pos, ok := index[*item.CategoryId]; ok {
				resp.CategoryName = sections[pos].Name
				sections[pos].Items = append(sections[pos].Items, resp)
				continue
			}
		}
		resp.CategoryName = uncategorized.Name
		uncategorized.Items = append(uncategorized.Items, resp)
	}
	if len(uncategorized.Items) > 0 {
		sections = append(sections, uncategorized)
	}

	specialResponses := make([]dto.FestivalSpecialResponse, 0, len(specials))
	for _, sp := range specials {
		if sp.StartsAt != nil && now.Before(*sp.StartsAt) {
			continue
		}
		if sp.EndsAt != nil && now.After(*sp.EndsAt) {
			continue
		}
		specialResponses = append(specialResponses, mapSpecial(sp))
	}

	return &dto.MenuResponse{
		Categories: sections,
		Specials:   specialResponses,
	}
}

func (s *catalogService) invalidateMenu() {
	s.cache.Delete(menuCacheKey)
}

// Categories

func (s *catalogService) CreateCategory(ctx context.Context, req *dto.MenuCategoryRequest) (*dto.MenuCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	category := &entity.MenuCategory{
		Id:        uuid.New(),
		Name:      req.Name,
		SortOrder: req.SortOrder,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.CatalogRepository().CreateCategory(ctx, category); err != nil {
		return nil, apperr.Persistence(err)
	}
	s.invalidateMenu()
	return mapCategory(category), nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, req *dto.MenuCategoryRequest) (*dto.MenuCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	category, err := uow.CatalogRepository().FindOneCategory(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if category == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "category %s not found", id)
	}
	category.Name = req.Name
	category.SortOrder = req.SortOrder
	category.UpdatedAt = time.Now()
	if err := uow.CatalogRepository().UpdateCategory(ctx, category); err != nil {
		return nil, apperr.Persistence(err)
	}
	s.invalidateMenu()
	return mapCategory(category), nil
}

// DeleteCategory removes the category only. Its items keep their dangling
// reference and surface under "Uncategorized" on the menu.
func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CatalogRepository().DeleteCategory(ctx, id); err != nil {
		return apperr.Persistence(err)
	}
	s.invalidateMenu()
	return nil
}

// Items

func (s *catalogService) CreateItem(ctx context.Context, req *dto.MenuItemRequest) (*dto.MenuItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	item := &entity.MenuItem{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryId:  req.CategoryId,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
		IsVisible:   req.IsVisible,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uow.CatalogRepository().CreateItem(ctx, item); err != nil {
		return nil, apperr.Persistence(err)
	}
	s.invalidateMenu()
	resp := mapMenuItem(item, "")
	return &resp, nil
}

func (s *catalogService) UpdateItem(ctx context.Context, id uuid.UUID, req *dto.MenuItemRequest) (*dto.MenuItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	item, err := uow.CatalogRepository().FindOneItem(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if item == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "menu item %s not found", id)
	}
	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.CategoryId = req.CategoryId
	item.ImageURL = req.ImageURL
	item.IsAvailable = req.IsAvailable
	item.IsVisible = req.IsVisible
	item.UpdatedAt = time.Now()
	if err := uow.CatalogRepository().UpdateItem(ctx, item); err != nil {
		return nil, apperr.Persistence(err)
	}
	s.invalidateMenu()
	resp := mapMenuItem(item, "")
	return &resp, nil
}

func (s *catalogService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CatalogRepository().DeleteItem(ctx, id); err != nil {
		return apperr.Persistence(err)
	}
	s.invalidateMenu()
	return nil
}

// Festival Specials

func (s *catalogService) CreateSpecial(ctx context.Context, req *dto.FestivalSpecialRequest) (*dto.FestivalSpecialResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	special := &entity.FestivalSpecial{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		IsActive:    req.IsActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uow.CatalogRepository().CreateSpecial(ctx, special); err != nil {
		return nil, apperr.Persistence(err)
	}
	s.invalidateMenu()
	resp := mapSpecial(special)
	return &resp, nil
}

func (s *catalogService) UpdateSpecial(ctx context.Context, id uuid.UUID, req *dto.FestivalSpecialRequest) (*dto.FestivalSpecialResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	special, err := uow.CatalogRepository().FindOneSpecial(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if special == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "festival special %s not found", id)
	}
	special.Name = req.Name
	special.Description = req.Description
	special.Price = req.Price
	special.ImageURL = req.ImageURL
	special.StartsAt = req.StartsAt
	special.EndsAt = req.EndsAt
	special.IsActive = req.IsActive
	special.UpdatedAt = time.Now()
	if err := uow.CatalogRepository().UpdateSpecial(ctx, special); err != nil {
		return nil, apperr.Persistence(err)
	}
	s.invalidateMenu()
	resp := mapSpecial(special)
	return &resp, nil
}

func (s *catalogService) DeleteSpecial(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CatalogRepository().DeleteSpecial(ctx, id); err != nil {
		return apperr.Persistence(err)
	}
	s.invalidateMenu()
	return nil
}

// Mappers

func mapCategory(c *entity.MenuCategory) *dto.MenuCategoryResponse {
	return &dto.MenuCategoryResponse{
		Id:        c.Id,
		Name:      c.Name,
		SortOrder: c.SortOrder,
		CreatedAt: c.CreatedAt,
	}
}

func mapMenuItem(i *entity.MenuItem, categoryName string) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		Id:           i.Id,
		Name:         i.Name,
		Description:  i.Description,
		Price:        i.Price,
		CategoryId:   i.CategoryId,
		CategoryName: categoryName,
		ImageURL:     i.ImageURL,
		IsAvailable:  i.IsAvailable,
		CreatedAt:    i.CreatedAt,
	}
}

func mapSpecial(sp *entity.FestivalSpecial) dto.FestivalSpecialResponse {
	return dto.FestivalSpecialResponse{
		Id:          sp.Id,
		Name:        sp.Name,
		Description: sp.Description,
		Price:       sp.Price,
		ImageURL:    sp.ImageURL,
		StartsAt:    sp.StartsAt,
		EndsAt:      sp.EndsAt,
		IsActive:    sp.IsActive,
	}
}
