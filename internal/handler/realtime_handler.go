package handler

import (
	"portfolio-be/internal/entity"
	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/pkg/serverutils"
	internalWS "portfolio-be/internal/websocket"
	"portfolio-be/pkg/portfolio"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RealtimeHandler upgrades clients onto one change-feed topic.
//
// content:<owner> and conversation:<id> are open to anyone holding the key,
// the admin inbox needs an admin token.
type RealtimeHandler struct {
	hub       *internalWS.Hub
	jwtSecret string
	logger    logger.ILogger
}

func NewRealtimeHandler(hub *internalWS.Hub, jwtSecret string, log logger.ILogger) *RealtimeHandler {
	return &RealtimeHandler{
		hub:       hub,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

func (h *RealtimeHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/realtime/ws", h.ServeWs)
}

func (h *RealtimeHandler) ServeWs(c *fiber.Ctx) error {
	topic := c.Query("topic")
	kind, _, ok := portfolio.ParseTopic(topic)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "unknown topic")
	}

	tokenStr := c.Query("token")
	if tokenStr == "" {
		tokenStr = serverutils.BearerToken(c)
	}

	role := ""
	if tokenStr != "" {
		claims, err := serverutils.ParseToken(h.jwtSecret, tokenStr)
		if err != nil {
			h.logger.Warn("RealtimeHandler", "Invalid token in handshake", map[string]interface{}{"error": err.Error()})
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		role, _ = claims["role"].(string)
	}

	if kind == portfolio.InboxTopic && role != string(entity.OwnerRoleAdmin) {
		return fiber.NewError(fiber.StatusForbidden, "admins only")
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("RealtimeHandler", "Session started", map[string]interface{}{"topic": topic})
		internalWS.ServeWs(h.hub, conn, topic)
		h.logger.Info("RealtimeHandler", "Session ended", map[string]interface{}{"topic": topic})
	})(c)
}
