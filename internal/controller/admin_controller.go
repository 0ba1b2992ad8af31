package controller

import (
	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/dto"
	"restro-orders-be/internal/pkg/serverutils"
	"restro-orders-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	GetDashboardStats(ctx *fiber.Ctx) error
	SearchUsers(ctx *fiber.Ctx) error
	UpdateUserStatus(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type adminController struct {
	service     service.IAdminService
	authService service.IAuthService
}

func NewAdminController(service service.IAdminService, authService service.IAuthService) IAdminController {
	return &adminController{
		service:     service,
		authService: authService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")

	h.Post("/login", c.Login)

	h.Use(adminMiddleware)
	h.Get("/dashboard", c.GetDashboardStats)
	h.Get("/users", c.SearchUsers)
	h.Put("/users/:id/status", c.UpdateUserStatus)
	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogDetail)
}

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	loginReq := dto.LoginRequest{Email: req.Email, Password: req.Password}
	res, err := c.authService.LoginAdmin(ctx.Context(), &loginReq, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Admin login successful", res))
}

func (c *adminController) GetDashboardStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetDashboard(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard stats", res))
}

func (c *adminController) SearchUsers(ctx *fiber.Ctx) error {
	var q dto.AdminSearchUsersQuery
	if err := ctx.QueryParser(&q); err != nil {
		return err
	}

	res, err := c.service.SearchUsers(ctx.Context(), &q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success search users", res))
}

func (c *adminController) UpdateUserStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperr.Withf(apperr.ErrValidation, "invalid user id")
	}

	var req dto.AdminUpdateUserStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpdateUserStatus(ctx.Context(), id, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User status updated", nil))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	var q dto.AdminLogsQuery
	if err := ctx.QueryParser(&q); err != nil {
		return err
	}

	res, err := c.service.GetLogs(&q)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	res, err := c.service.GetLogById(ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get log detail", res))
}
