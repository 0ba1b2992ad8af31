package controller

import (
	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/dto"
	"restro-orders-be/internal/pkg/serverutils"
	"restro-orders-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	GetMenu(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	r.Get("/menu", c.GetMenu)

	a := r.Group("/admin/catalog")
	a.Use(adminMiddleware)
	a.Post("/categories", c.createCategory)
	a.Put("/categories/:id", c.updateCategory)
	a.Delete("/categories/:id", c.deleteCategory)
	a.Post("/items", c.createItem)
	a.Put("/items/:id", c.updateItem)
	a.Delete("/items/:id", c.deleteItem)
	a.Post("/specials", c.createSpecial)
	a.Put("/specials/:id", c.updateSpecial)
	a.Delete("/specials/:id", c.deleteSpecial)
}

func (c *catalogController) GetMenu(ctx *fiber.Ctx) error {
	res, err := c.service.GetMenu(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get menu", res))
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperr.Withf(apperr.ErrValidation, "invalid id")
	}
	return id, nil
}

func (c *catalogController) createCategory(ctx *fiber.Ctx) error {
	var req dto.MenuCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.CreateCategory(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Category created", res))
}

func (c *catalogController) updateCategory(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	var req dto.MenuCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.UpdateCategory(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Category updated", res))
}

func (c *catalogController) deleteCategory(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.service.DeleteCategory(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Category deleted", nil))
}

func (c *catalogController) createItem(ctx *fiber.Ctx) error {
	var req dto.MenuItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.CreateItem(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Menu item created", res))
}

func (c *catalogController) updateItem(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	var req dto.MenuItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.UpdateItem(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Menu item updated", res))
}

func (c *catalogController) deleteItem(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.service.DeleteItem(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Menu item deleted", nil))
}

func (c *catalogController) createSpecial(ctx *fiber.Ctx) error {
	var req dto.FestivalSpecialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.CreateSpecial(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Festival special created", res))
}

func (c *catalogController) updateSpecial(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	var req dto.FestivalSpecialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.UpdateSpecial(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Festival special updated", res))
}

func (c *catalogController) deleteSpecial(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.service.DeleteSpecial(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Festival special deleted", nil))
}
