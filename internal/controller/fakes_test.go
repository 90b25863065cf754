package controller

import (
	"context"
	"time"

	"portfolio-be/internal/dto"
	"portfolio-be/internal/entity"
	"portfolio-be/internal/pkg/serverutils"
	"portfolio-be/internal/service"
	"portfolio-be/pkg/portfolio"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "controller-secret"

var testOwner = uuid.MustParse("0b6f4c7e-2a1d-4d8e-9a51-6c3e2f1a9b10")

func signToken(role string) string {
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": testOwner.String(),
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	return signed
}

func newTestApp(register ...func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	for _, fn := range register {
		fn(api)
	}
	return app
}

type fakeAuthService struct {
	res *dto.LoginResponse
	err error
	got *dto.LoginRequest
}

func (f *fakeAuthService) Login(_ context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	f.got = req
	return f.res, f.err
}

func (f *fakeAuthService) SeedOwner(context.Context, string, string, string) (*entity.Owner, error) {
	return nil, nil
}

type fakeContentService struct {
	content  *portfolio.Content
	err      error
	ownerArg uuid.UUID
	upserted *portfolio.Content
}

func (f *fakeContentService) GetContent(_ context.Context, owner uuid.UUID) (*portfolio.Content, error) {
	f.ownerArg = owner
	return f.content, f.err
}

func (f *fakeContentService) GetPublicContent(context.Context) (*portfolio.Content, error) {
	return f.content, f.err
}

func (f *fakeContentService) UpsertContent(_ context.Context, owner uuid.UUID, c portfolio.Content) (*portfolio.Content, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.ownerArg = owner
	f.upserted = &c
	return &c, nil
}

type insertCall struct {
	conversation string
	sender       portfolio.Sender
	text         string
}

type fakeChatService struct {
	messages  []portfolio.ChatMessage
	summaries []portfolio.ConversationSummary
	unread    int64
	err       error

	limitArg    int
	inserted    []insertCall
	statusID    uuid.UUID
	statusValue portfolio.MessageStatus
	readArg     string
}

func (f *fakeChatService) ListMessages(_ context.Context, _ string, limit int) ([]portfolio.ChatMessage, error) {
	f.limitArg = limit
	return f.messages, f.err
}

func (f *fakeChatService) InsertMessage(_ context.Context, conversationId string, sender portfolio.Sender, text string) (*portfolio.ChatMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inserted = append(f.inserted, insertCall{conversationId, sender, text})
	return &portfolio.ChatMessage{
		Id:             uuid.NewString(),
		ConversationId: conversationId,
		Sender:         sender,
		Message:        text,
		Status:         portfolio.StatusSent,
		CreatedAt:      time.Now(),
	}, nil
}

func (f *fakeChatService) UpdateStatus(_ context.Context, id uuid.UUID, status portfolio.MessageStatus) error {
	f.statusID = id
	f.statusValue = status
	return f.err
}

func (f *fakeChatService) ListConversations(context.Context) ([]portfolio.ConversationSummary, error) {
	return f.summaries, f.err
}

func (f *fakeChatService) MarkConversationRead(_ context.Context, conversationId string) (int64, error) {
	f.readArg = conversationId
	return 3, f.err
}

func (f *fakeChatService) UnreadCount(context.Context) (int64, error) {
	return f.unread, f.err
}

var (
	_ service.IAuthService    = (*fakeAuthService)(nil)
	_ service.IContentService = (*fakeContentService)(nil)
	_ service.IChatService    = (*fakeChatService)(nil)
)
