package controller

import (
	"portfolio-be/internal/dto"
	"portfolio-be/internal/pkg/serverutils"
	"portfolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	ShowPublic(ctx *fiber.Ctx) error
	Upsert(ctx *fiber.Ctx) error
}

type contentController struct {
	service service.IContentService
	auth    fiber.Handler
}

func NewContentController(service service.IContentService, auth fiber.Handler) IContentController {
	return &contentController{service: service, auth: auth}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content/v1")
	h.Get("/public", c.ShowPublic)
	h.Get("", c.auth, c.Show)
	h.Put("", c.auth, c.Upsert)
}

func (c *contentController) Show(ctx *fiber.Ctx) error {
	owner, err := ownerID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetContent(ctx.UserContext(), owner)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get portfolio content", res))
}

func (c *contentController) ShowPublic(ctx *fiber.Ctx) error {
	res, err := c.service.GetPublicContent(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get portfolio content", res))
}

func (c *contentController) Upsert(ctx *fiber.Ctx) error {
	owner, err := ownerID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpsertContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpsertContent(ctx.UserContext(), owner, *req.Content)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update portfolio content", res))
}
