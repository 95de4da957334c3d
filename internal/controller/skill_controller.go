package controller

import (
	"skillswap-be/internal/dto"
	"skillswap-be/internal/pkg/serverutils"
	"skillswap-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISkillController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type skillController struct {
	skillService service.ISkillService
}

func NewSkillController(skillService service.ISkillService) ISkillController {
	return &skillController{
		skillService: skillService,
	}
}

func (c *skillController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/skill/v1")
	h.Get("", c.List)
	h.Post("", serverutils.JwtMiddleware, c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", serverutils.JwtMiddleware, c.Update)
	h.Delete(":id", serverutils.JwtMiddleware, c.Delete)
}

func (c *skillController) Create(ctx *fiber.Ctx) error {
	actor := currentActor(ctx)

	var req dto.CreateSkillRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.skillService.Create(ctx.Context(), actor.UserId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Skill created", res))
}

func (c *skillController) Update(ctx *fiber.Ctx) error {
	actor := currentActor(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid skill ID"))
	}

	var req dto.UpdateSkillRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.skillService.Update(ctx.Context(), actor.UserId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Skill updated", res))
}

func (c *skillController) Delete(ctx *fiber.Ctx) error {
	actor := currentActor(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid skill ID"))
	}

	if err := c.skillService.Delete(ctx.Context(), actor.UserId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Skill deleted", nil))
}

func (c *skillController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid skill ID"))
	}

	res, err := c.skillService.Show(ctx.Context(), currentActor(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Skill details", res))
}

func (c *skillController) List(ctx *fiber.Ctx) error {
	req := dto.ListSkillsRequest{
		Type:  ctx.Query("type"),
		Query: ctx.Query("q"),
		Page:  ctx.QueryInt("page", 1),
		Limit: ctx.QueryInt("limit", 20),
	}
	if userIdStr := ctx.Query("user_id"); userIdStr != "" {
		if userId, err := uuid.Parse(userIdStr); err == nil {
			req.UserId = &userId
		}
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.skillService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Skills", res))
}
