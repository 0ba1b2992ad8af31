package controller

import (
	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/dto"
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/pkg/serverutils"
	"restro-orders-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IOrderController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	ListAll(ctx *fiber.Ctx) error
	Transition(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type orderController struct {
	service service.IOrderService
}

func NewOrderController(service service.IOrderService) IOrderController {
	return &orderController{service: service}
}

func (c *orderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/orders")

	// Guests may place orders; a valid token just attaches the account.
	h.Post("", c.Create)

	h.Get("/my", serverutils.JwtMiddleware, c.ListMine)
	h.Get("/:id", serverutils.JwtMiddleware, c.Show)
	h.Post("/:id/cancel", serverutils.JwtMiddleware, c.Cancel)

	a := r.Group("/admin/orders")
	a.Use(adminMiddleware)
	a.Get("", c.ListAll)
	a.Put("/:id/status", c.Transition)
	a.Delete("/:id", c.Delete)
}

func (c *orderController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), optionalUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Order placed", res))
}

func (c *orderController) ListMine(ctx *fiber.Ctx) error {
	res, err := c.service.ListMine(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list orders", res))
}

func (c *orderController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.Withf(apperr.ErrValidation, "invalid order id")
	}

	userId := currentUserId(ctx)
	res, err := c.service.Get(ctx.Context(), id, &userId, false)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show order", res))
}

func (c *orderController) Cancel(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.Withf(apperr.ErrValidation, "invalid order id")
	}

	var req dto.CancelOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Transition(ctx.Context(), id, string(entity.OrderStatusCancelledUser), req.Reason, currentUserId(ctx), false)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Order cancelled", res))
}

func (c *orderController) ListAll(ctx *fiber.Ctx) error {
	var q dto.ListOrdersQuery
	if err := ctx.QueryParser(&q); err != nil {
		return err
	}

	res, err := c.service.ListAll(ctx.Context(), &q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list orders", res))
}

func (c *orderController) Transition(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.Withf(apperr.ErrValidation, "invalid order id")
	}

	var req dto.TransitionOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Transition(ctx.Context(), id, req.Status, req.Reason, currentUserId(ctx), true)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Order status updated", res))
}

func (c *orderController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.Withf(apperr.ErrValidation, "invalid order id")
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Order deleted", nil))
}
