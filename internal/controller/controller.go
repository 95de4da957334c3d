package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skillswap-be/internal/entity"
	"skillswap-be/internal/service"
)

// currentActor reads the identity placed in locals by the JWT middleware.
// On public routes it returns a zero actor.
func currentActor(ctx *fiber.Ctx) service.Actor {
	actor := service.Actor{Role: entity.UserRoleStudent}
	if userIdStr, ok := ctx.Locals("user_id").(string); ok {
		if userId, err := uuid.Parse(userIdStr); err == nil {
			actor.UserId = userId
		}
	}
	if role, ok := ctx.Locals("role").(string); ok {
		actor.Role = entity.UserRole(role)
	}
	return actor
}
