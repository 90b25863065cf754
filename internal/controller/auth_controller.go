package controller

import (
	"portfolio-be/internal/dto"
	"portfolio-be/internal/pkg/serverutils"
	"portfolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

// ownerID reads the id the JWT middleware stored for this request.
func ownerID(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals(serverutils.LocalUserID).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, service.ErrUnauthenticated
	}
	return id, nil
}
