package controller

import (
	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/dto"
	"restro-orders-be/internal/pkg/serverutils"
	"restro-orders-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	CreateRequest(ctx *fiber.Ctx) error
	MySubscription(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
	ListPending(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
	Reject(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	service service.ISubscriptionService
}

func NewSubscriptionController(service service.ISubscriptionService) ISubscriptionController {
	return &subscriptionController{service: service}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscriptions")

	// Midtrans posts here; authenticated by signature, not JWT.
	h.Post("/webhook/midtrans", c.Webhook)

	h.Post("/request", serverutils.JwtMiddleware, c.CreateRequest)
	h.Get("/me", serverutils.JwtMiddleware, c.MySubscription)
	h.Get("/requests", serverutils.JwtMiddleware, c.ListMine)

	a := r.Group("/admin/subscriptions")
	a.Use(adminMiddleware)
	a.Get("/pending", c.ListPending)
	a.Post("/:id/approve", c.Approve)
	a.Post("/:id/reject", c.Reject)
}

func (c *subscriptionController) CreateRequest(ctx *fiber.Ctx) error {
	var req dto.CreateSubscriptionRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateRequest(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription request created", res))
}

func (c *subscriptionController) MySubscription(ctx *fiber.Ctx) error {
	res, err := c.service.MySubscription(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get subscription", res))
}

func (c *subscriptionController) ListMine(ctx *fiber.Ctx) error {
	res, err := c.service.ListMine(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list subscription requests", res))
}

func (c *subscriptionController) Webhook(ctx *fiber.Ctx) error {
	var req dto.MidtransWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.service.HandleWebhook(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("OK", nil))
}

func (c *subscriptionController) ListPending(ctx *fiber.Ctx) error {
	res, err := c.service.ListPending(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list pending requests", res))
}

func (c *subscriptionController) Approve(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.Withf(apperr.ErrValidation, "invalid request id")
	}

	res, err := c.service.Approve(ctx.Context(), id, currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription approved", res))
}

func (c *subscriptionController) Reject(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.Withf(apperr.ErrValidation, "invalid request id")
	}

	var req dto.RejectSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Reject(ctx.Context(), id, currentUserId(ctx), req.Reason)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription rejected", res))
}
