package bootstrap

import (
	"context"

	"portfolio-be/internal/config"
	"portfolio-be/internal/controller"
	"portfolio-be/internal/handler"
	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/pkg/mailer"
	"portfolio-be/internal/pkg/serverutils"
	"portfolio-be/internal/repository/memory"
	"portfolio-be/internal/repository/unitofwork"
	"portfolio-be/internal/service"
	"portfolio-be/internal/websocket"

	pktNats "portfolio-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	ContentController controller.IContentController
	ChatController    controller.IChatController

	// Realtime
	RealtimeHandler *handler.RealtimeHandler
	WebSocketHub    *websocket.Hub

	// Background
	FeedService  service.IFeedService
	AlertService service.IAlertService

	Logger logger.ILogger

	natsPub *pktNats.Publisher
	natsSub *pktNats.Subscriber
	rdb     *redis.Client
	pubSub  *gochannel.GoChannel
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	wsLogger := logger.NewIsolatedLogger(cfg.App.RealtimeLogFilePath)

	// 2. Infrastructure
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		sysLogger.Warn("BOOTSTRAP", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		sysLogger.Warn("BOOTSTRAP", "Failed to connect to Redis, hub runs single-instance", map[string]interface{}{"error": err.Error()})
		rdb.Close()
		rdb = nil
	}

	wsHub := websocket.NewHub(rdb, wsLogger)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	feedService := service.NewFeedService(pubSub, wsHub, wsLogger)

	var publisher service.EventPublisher
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger.Zap())
	if err != nil {
		sysLogger.Warn("BOOTSTRAP", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
	} else {
		publisher = natsPub
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL, sysLogger.Zap())
	if err != nil {
		sysLogger.Warn("BOOTSTRAP", "Failed to connect to NATS Subscriber", map[string]interface{}{"error": err.Error()})
	}

	contentCache := memory.NewContentCache(cfg.Content.CacheTTL)
	alertThrottle := memory.NewAlertThrottle(cfg.Alert.Throttle)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
		sysLogger,
	)

	// 3. Services
	authService := service.NewAuthService(uowFactory, cfg.Auth.JwtSecret, cfg.Auth.TokenTTL)
	contentService := service.NewContentService(uowFactory, contentCache, feedService, publisher, sysLogger)
	chatService := service.NewChatService(uowFactory, feedService, publisher, sysLogger)
	alertService := service.NewAlertService(emailService, alertThrottle, cfg.Alert.OwnerEmail, sysLogger)

	// 4. Controllers
	jwtMiddleware := serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret)

	return &Container{
		AuthController:    controller.NewAuthController(authService),
		ContentController: controller.NewContentController(contentService, jwtMiddleware),
		ChatController:    controller.NewChatController(chatService, jwtMiddleware),

		RealtimeHandler: handler.NewRealtimeHandler(wsHub, cfg.Auth.JwtSecret, wsLogger),
		WebSocketHub:    wsHub,

		FeedService:  feedService,
		AlertService: alertService,

		Logger: sysLogger,

		natsPub: natsPub,
		natsSub: natsSub,
		rdb:     rdb,
		pubSub:  pubSub,
	}
}

// StartBackground runs the hub, the feed consumer and the alert worker until ctx ends.
func (c *Container) StartBackground(ctx context.Context) {
	go c.WebSocketHub.Run(ctx)

	go func() {
		if err := c.FeedService.Consume(ctx); err != nil {
			c.Logger.Error("BOOTSTRAP", "Feed consumer stopped", map[string]interface{}{"error": err.Error()})
		}
	}()

	if c.natsSub == nil {
		c.Logger.Warn("BOOTSTRAP", "NATS unavailable, owner alerts disabled", nil)
		return
	}
	if err := c.AlertService.Start(ctx, c.natsSub); err != nil {
		c.Logger.Error("BOOTSTRAP", "Failed to start alert worker", map[string]interface{}{"error": err.Error()})
	}
}

func (c *Container) Close() {
	if c.natsSub != nil {
		c.natsSub.Close()
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if err := c.pubSub.Close(); err != nil {
		c.Logger.Warn("BOOTSTRAP", "Failed to close feed", map[string]interface{}{"error": err.Error()})
	}
	if c.rdb != nil {
		c.rdb.Close()
	}
	c.Logger.Sync()
}
