package client

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"portfolio-be/pkg/livesync"
	"portfolio-be/pkg/portfolio"

	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reply(ctx *fiber.Ctx, code int, data interface{}) error {
	return ctx.Status(code).JSON(fiber.Map{
		"success": code < 300,
		"code":    code,
		"message": "test",
		"data":    data,
	})
}

type recorded struct {
	mu     sync.Mutex
	bodies []map[string]string
	auth   []string
}

func (r *recorded) add(ctx *fiber.Ctx) {
	var body map[string]string
	_ = json.Unmarshal(ctx.Body(), &body)
	r.mu.Lock()
	r.bodies = append(r.bodies, body)
	r.auth = append(r.auth, ctx.Get(fiber.HeaderAuthorization))
	r.mu.Unlock()
}

func startServer(t *testing.T, rec *recorded) string {
	t.Helper()
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	api.Get("/content/v1/public", func(ctx *fiber.Ctx) error {
		return reply(ctx, fiber.StatusNotFound, nil)
	})
	api.Get("/content/v1", func(ctx *fiber.Ctx) error {
		if ctx.Get(fiber.HeaderAuthorization) != "Bearer good" {
			return reply(ctx, fiber.StatusUnauthorized, nil)
		}
		return reply(ctx, fiber.StatusOK, portfolio.DefaultContent())
	})
	api.Put("/content/v1", func(ctx *fiber.Ctx) error {
		rec.add(ctx)
		return reply(ctx, fiber.StatusOK, nil)
	})
	api.Get("/chat/v1/conversations/:id/messages", func(ctx *fiber.Ctx) error {
		if ctx.Params("id") == "broken" {
			return reply(ctx, fiber.StatusInternalServerError, nil)
		}
		return reply(ctx, fiber.StatusOK, []portfolio.ChatMessage{
			{Id: "m1", ConversationId: ctx.Params("id"), Sender: portfolio.SenderUser, Message: ctx.Query("limit")},
		})
	})
	api.Post("/chat/v1/conversations/:id/messages", func(ctx *fiber.Ctx) error {
		rec.add(ctx)
		return reply(ctx, fiber.StatusCreated, portfolio.ChatMessage{Id: "m2", ConversationId: ctx.Params("id"), Message: "stored"})
	})
	api.Post("/chat/v1/admin/conversations/:id/messages", func(ctx *fiber.Ctx) error {
		rec.add(ctx)
		return reply(ctx, fiber.StatusCreated, portfolio.ChatMessage{Id: "m3", Sender: portfolio.SenderAdmin})
	})
	api.Patch("/chat/v1/admin/messages/:id/status", func(ctx *fiber.Ctx) error {
		return reply(ctx, fiber.StatusBadRequest, nil)
	})
	api.Get("/realtime/ws", func(ctx *fiber.Ctx) error {
		if ctx.Query("topic") == "conversation:denied" {
			return reply(ctx, fiber.StatusForbidden, nil)
		}
		if !fiberws.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		return fiberws.New(func(conn *fiberws.Conn) {
			msg, _ := json.Marshal(portfolio.ChatMessage{Id: "pushed", ConversationId: "chat-1"})
			for _, env := range []portfolio.FeedEnvelope{
				{Topic: conn.Query("topic"), Type: portfolio.FeedMessageUpdated, Data: msg},
				{Topic: conn.Query("topic"), Type: portfolio.FeedMessageInserted, Data: msg},
			} {
				raw, _ := json.Marshal(env)
				if err := conn.WriteMessage(fiberws.TextMessage, raw); err != nil {
					return
				}
			}
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		})(ctx)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String() + "/api"
}

func TestNew_RejectsUnknownScheme(t *testing.T) {
	_, err := New("ftp://example.com/api")
	assert.Error(t, err)

	c, err := New("https://example.com/api/")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api", c.baseURL)
	assert.Equal(t, "wss://example.com/api", c.wsURL)
}

func TestStatusError(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{fiber.StatusUnauthorized, livesync.ErrNotAuthenticated},
		{fiber.StatusForbidden, livesync.ErrNotAuthenticated},
		{fiber.StatusNotFound, livesync.ErrNotFound},
		{fiber.StatusInternalServerError, livesync.ErrTransient},
		{fiber.StatusBadGateway, livesync.ErrTransient},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, statusError(tt.code, "x"), tt.want, "status %d", tt.code)
	}

	assert.NoError(t, statusError(fiber.StatusCreated, ""))

	var apiErr *APIError
	require.ErrorAs(t, statusError(fiber.StatusBadRequest, "bad"), &apiErr)
	assert.Equal(t, fiber.StatusBadRequest, apiErr.Code)
}

func TestContentStore(t *testing.T) {
	rec := &recorded{}
	base := startServer(t, rec)
	ctx := context.Background()

	c, err := New(base)
	require.NoError(t, err)

	doc, err := c.GetContent(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, doc, "nothing published yet")

	_, err = c.GetContent(ctx, "owner-1")
	assert.ErrorIs(t, err, livesync.ErrNotAuthenticated)
	assert.ErrorIs(t, c.UpsertContent(ctx, "owner-1", portfolio.DefaultContent()), livesync.ErrNotAuthenticated)

	c.SetToken("expired")
	_, err = c.GetContent(ctx, "owner-1")
	assert.ErrorIs(t, err, livesync.ErrNotAuthenticated)

	c.SetToken("good")
	doc, err = c.GetContent(ctx, "owner-1")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Len(t, doc.Chat.AutoResponses, 6)

	require.NoError(t, c.UpsertContent(ctx, "owner-1", portfolio.DefaultContent()))
	assert.Equal(t, []string{"Bearer good"}, rec.auth)
}

func TestMessageStore(t *testing.T) {
	rec := &recorded{}
	c, err := New(startServer(t, rec))
	require.NoError(t, err)
	ctx := context.Background()

	msgs, err := c.ListMessages(ctx, "chat-1", 50)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "chat-1", msgs[0].ConversationId)
	assert.Equal(t, "50", msgs[0].Message)

	_, err = c.ListMessages(ctx, "broken", 50)
	assert.ErrorIs(t, err, livesync.ErrTransient)

	stored, err := c.InsertMessage(ctx, "chat-1", portfolio.SenderBot, "hello")
	require.NoError(t, err)
	assert.Equal(t, "m2", stored.Id)

	stored, err = c.InsertMessage(ctx, "chat-1", portfolio.SenderAdmin, "thanks")
	require.NoError(t, err)
	assert.Equal(t, "m3", stored.Id)

	require.Len(t, rec.bodies, 2)
	assert.Equal(t, map[string]string{"message": "hello", "sender": "bot"}, rec.bodies[0])
	assert.Equal(t, map[string]string{"message": "thanks"}, rec.bodies[1])

	err = c.UpdateStatus(ctx, livesync.NewProvisionalID(), portfolio.StatusRead)
	assert.ErrorIs(t, err, livesync.ErrNotFound)

	var apiErr *APIError
	assert.ErrorAs(t, c.UpdateStatus(ctx, "m1", portfolio.StatusRead), &apiErr)
}

func TestSubscribeInserts(t *testing.T) {
	c, err := New(startServer(t, &recorded{}))
	require.NoError(t, err)

	got := make(chan portfolio.ChatMessage, 4)
	sub, err := c.SubscribeInserts(context.Background(), "chat-1", func(m portfolio.ChatMessage) {
		got <- m
	})
	require.NoError(t, err)

	select {
	case m := <-got:
		assert.Equal(t, "pushed", m.Id)
	case <-time.After(3 * time.Second):
		t.Fatal("no insert delivered")
	}

	require.NoError(t, sub.Unsubscribe())
	assert.NoError(t, sub.Unsubscribe())
	assert.Empty(t, got, "updates are not inserts")
}

func TestSubscribe_HandshakeErrors(t *testing.T) {
	c, err := New(startServer(t, &recorded{}))
	require.NoError(t, err)

	_, err = c.SubscribeInserts(context.Background(), "denied", func(portfolio.ChatMessage) {})
	assert.ErrorIs(t, err, livesync.ErrNotAuthenticated)

	_, err = c.SubscribeContent(context.Background(), "", func(portfolio.Content) {})
	assert.ErrorIs(t, err, livesync.ErrNotAuthenticated)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	dead, err := New("http://" + addr + "/api")
	require.NoError(t, err)
	_, err = dead.SubscribeInserts(context.Background(), "chat-1", func(portfolio.ChatMessage) {})
	assert.True(t, errors.Is(err, livesync.ErrTransient), "got %v", err)

	_, err = dead.ListMessages(context.Background(), "chat-1", 10)
	assert.ErrorIs(t, err, livesync.ErrTransient)
}
