package controller

import (
	"skillswap-be/internal/dto"
	"skillswap-be/internal/pkg/serverutils"
	"skillswap-be/internal/service"
	ws "skillswap-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type INotificationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	UnreadCount(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
	MarkAllRead(ctx *fiber.Ctx) error
}

type notificationController struct {
	notificationService service.INotificationService
	hub                 *ws.Hub
}

func NewNotificationController(notificationService service.INotificationService, hub *ws.Hub) INotificationController {
	return &notificationController{
		notificationService: notificationService,
		hub:                 hub,
	}
}

func (c *notificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notification/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Get("unread-count", c.UnreadCount)
	h.Put("read-all", c.MarkAllRead)
	h.Put(":id/read", c.MarkRead)

	// Live push channel; locals survive the upgrade.
	h.Get("ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	}, websocket.New(func(conn *websocket.Conn) {
		userIdStr, _ := conn.Locals("user_id").(string)
		userId, err := uuid.Parse(userIdStr)
		if err != nil {
			conn.Close()
			return
		}
		ws.ServeWs(c.hub, conn, userId)
	}))
}

func (c *notificationController) List(ctx *fiber.Ctx) error {
	actor := currentActor(ctx)

	req := dto.ListNotificationsRequest{
		Limit:      ctx.QueryInt("limit", 0),
		UnreadOnly: ctx.QueryBool("unread_only", false),
	}

	res, err := c.notificationService.List(ctx.Context(), actor.UserId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Notifications", res))
}

func (c *notificationController) UnreadCount(ctx *fiber.Ctx) error {
	actor := currentActor(ctx)

	res, err := c.notificationService.UnreadCount(ctx.Context(), actor.UserId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Unread count", res))
}

func (c *notificationController) MarkRead(ctx *fiber.Ctx) error {
	actor := currentActor(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid notification ID"))
	}

	if err := c.notificationService.MarkRead(ctx.Context(), actor.UserId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Notification marked as read", nil))
}

func (c *notificationController) MarkAllRead(ctx *fiber.Ctx) error {
	actor := currentActor(ctx)

	if err := c.notificationService.MarkAllRead(ctx.Context(), actor.UserId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("All notifications marked as read", nil))
}
