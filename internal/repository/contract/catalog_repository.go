package contract

import (
	"context"

	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CatalogRepository interface {
	// Categories
	CreateCategory(ctx context.Context, category *entity.MenuCategory) error
	UpdateCategory(ctx context.Context, category *entity.MenuCategory) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	FindOneCategory(ctx context.Context, specs ...specification.Specification) (*entity.MenuCategory, error)
	FindAllCategories(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuCategory, error)

	// Items
	CreateItem(ctx context.Context, item *entity.MenuItem) error
	UpdateItem(ctx context.Context, item *entity.MenuItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	FindOneItem(ctx context.Context, specs ...specification.Specification) (*entity.MenuItem, error)
	FindAllItems(ctx context.Context, specs ...specification.Specification) ([]*entity.MenuItem, error)

	// Festival Specials
	CreateSpecial(ctx context.Context, special *entity.FestivalSpecial) error
	UpdateSpecial(ctx context.Context, special *entity.FestivalSpecial) error
	DeleteSpecial(ctx context.Context, id uuid.UUID) error
	FindOneSpecial(ctx context.Context, specs ...specification.Specification) (*entity.FestivalSpecial, error)
	FindAllSpecials(ctx context.Context, specs ...specification.Specification) ([]*entity.FestivalSpecial, error)
}
