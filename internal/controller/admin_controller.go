package controller

import (
	"skillswap-be/internal/dto"
	"skillswap-be/internal/pkg/serverutils"
	"skillswap-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Report(ctx *fiber.Ctx) error
	ListUsers(ctx *fiber.Ctx) error
	SetUserRole(ctx *fiber.Ctx) error
	SetUserActive(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware, serverutils.AdminOnly)
	h.Get("report", c.Report)
	h.Get("users", c.ListUsers)
	h.Put("users/:id/role", c.SetUserRole)
	h.Put("users/:id/active", c.SetUserActive)
	h.Get("logs", c.GetLogs)
}

func (c *adminController) Report(ctx *fiber.Ctx) error {
	res, err := c.adminService.Report(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Platform report", res))
}

func (c *adminController) ListUsers(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListUsers(ctx.Context(), ctx.QueryInt("page", 1), ctx.QueryInt("limit", 20))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Users", res))
}

func (c *adminController) SetUserRole(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid user ID"))
	}

	var req dto.UpdateUserRoleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.SetUserRole(ctx.Context(), id, req.Role); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Role updated", nil))
}

func (c *adminController) SetUserActive(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid user ID"))
	}

	var req dto.UpdateUserActiveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.SetUserActive(ctx.Context(), id, *req.IsActive); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Active flag updated", nil))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	logs, err := c.adminService.GetLogs(
		ctx.Query("level"),
		ctx.QueryInt("limit", 100),
		ctx.QueryInt("offset", 0),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Logs", logs))
}
