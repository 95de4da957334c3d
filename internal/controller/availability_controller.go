package controller

import (
	"skillswap-be/internal/dto"
	"skillswap-be/internal/pkg/serverutils"
	"skillswap-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAvailabilityController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	ListForUser(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type availabilityController struct {
	availabilityService service.IAvailabilityService
}

func NewAvailabilityController(availabilityService service.IAvailabilityService) IAvailabilityController {
	return &availabilityController{
		availabilityService: availabilityService,
	}
}

func (c *availabilityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/availability/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.ListMine)
	h.Get("user/:id", c.ListForUser)
	h.Delete(":id", c.Delete)
}

func (c *availabilityController) Create(ctx *fiber.Ctx) error {
	actor := currentActor(ctx)

	var req dto.CreateAvailabilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.availabilityService.CreateSlot(ctx.Context(), actor.UserId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Slot created", res))
}

func (c *availabilityController) ListMine(ctx *fiber.Ctx) error {
	actor := currentActor(ctx)

	res, err := c.availabilityService.ListActiveSlots(ctx.Context(), actor.UserId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Availability slots", res))
}

func (c *availabilityController) ListForUser(ctx *fiber.Ctx) error {
	ownerId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid user ID"))
	}

	res, err := c.availabilityService.ListActiveSlots(ctx.Context(), ownerId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Availability slots", res))
}

func (c *availabilityController) Delete(ctx *fiber.Ctx) error {
	actor := currentActor(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid slot ID"))
	}

	if err := c.availabilityService.SoftDeleteSlot(ctx.Context(), actor.UserId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Slot deleted", nil))
}
