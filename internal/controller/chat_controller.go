package controller

import (
	"portfolio-be/internal/dto"
	"portfolio-be/internal/pkg/serverutils"
	"portfolio-be/internal/service"
	"portfolio-be/pkg/portfolio"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	ListMessages(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	AdminReply(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	ListConversations(ctx *fiber.Ctx) error
	UnreadCount(ctx *fiber.Ctx) error
	MarkConversationRead(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
	auth    fiber.Handler
}

func NewChatController(service service.IChatService, auth fiber.Handler) IChatController {
	return &chatController{service: service, auth: auth}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Get("/conversations/:conversationId/messages", c.ListMessages)
	h.Post("/conversations/:conversationId/messages", c.SendMessage)

	admin := h.Group("/admin", c.auth, serverutils.RequireAdmin)
	admin.Get("/conversations", c.ListConversations)
	admin.Get("/unread-count", c.UnreadCount)
	admin.Post("/conversations/:conversationId/messages", c.AdminReply)
	admin.Patch("/conversations/:conversationId/read", c.MarkConversationRead)
	admin.Patch("/messages/:id/status", c.UpdateStatus)
}

func (c *chatController) ListMessages(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", service.DefaultMessageLimit)

	res, err := c.service.ListMessages(ctx.UserContext(), ctx.Params("conversationId"), limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get messages", res))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	sender := portfolio.SenderUser
	if req.Sender != "" {
		sender = portfolio.Sender(req.Sender)
	}

	res, err := c.service.InsertMessage(ctx.UserContext(), ctx.Params("conversationId"), sender, req.Message)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Message sent", res))
}

func (c *chatController) AdminReply(ctx *fiber.Ctx) error {
	var req dto.AdminReplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.InsertMessage(ctx.UserContext(), ctx.Params("conversationId"), portfolio.SenderAdmin, req.Message)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Reply sent", res))
}

func (c *chatController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return service.ErrNotFound
	}

	var req dto.UpdateMessageStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpdateStatus(ctx.UserContext(), id, portfolio.MessageStatus(req.Status)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Message status updated", nil))
}

func (c *chatController) ListConversations(ctx *fiber.Ctx) error {
	res, err := c.service.ListConversations(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get conversations", res))
}

func (c *chatController) UnreadCount(ctx *fiber.Ctx) error {
	count, err := c.service.UnreadCount(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get unread count", dto.UnreadCountResponse{Count: count}))
}

func (c *chatController) MarkConversationRead(ctx *fiber.Ctx) error {
	updated, err := c.service.MarkConversationRead(ctx.UserContext(), ctx.Params("conversationId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Conversation marked read", dto.MarkReadResponse{Updated: updated}))
}
