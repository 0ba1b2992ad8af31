package controller

import (
	"restro-orders-be/internal/dto"
	"restro-orders-be/internal/pkg/serverutils"
	"restro-orders-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILoyaltyController interface {
	RegisterRoutes(r fiber.Router)
	GetBalance(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	ListReferralRewards(ctx *fiber.Ctx) error
	AdminAdjust(ctx *fiber.Ctx) error
}

type loyaltyController struct {
	service service.ILoyaltyService
}

func NewLoyaltyController(service service.ILoyaltyService) ILoyaltyController {
	return &loyaltyController{service: service}
}

func (c *loyaltyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/loyalty")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/balance", c.GetBalance)
	h.Get("/history", c.GetHistory)
	h.Get("/referrals", c.ListReferralRewards)

	a := r.Group("/admin/loyalty")
	a.Use(adminMiddleware)
	a.Post("/adjust", c.AdminAdjust)
}

func (c *loyaltyController) GetBalance(ctx *fiber.Ctx) error {
	res, err := c.service.GetBalance(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get points balance", res))
}

func (c *loyaltyController) GetHistory(ctx *fiber.Ctx) error {
	res, err := c.service.GetHistory(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get points history", res))
}

func (c *loyaltyController) ListReferralRewards(ctx *fiber.Ctx) error {
	res, err := c.service.ListReferralRewards(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list referral rewards", res))
}

func (c *loyaltyController) AdminAdjust(ctx *fiber.Ctx) error {
	var req dto.AdminAdjustPointsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AdminAdjust(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Points adjusted", res))
}
