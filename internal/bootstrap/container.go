package bootstrap

import (
	"context"
	"log"

	"skillswap-be/internal/config"
	"skillswap-be/internal/controller"
	"skillswap-be/internal/pkg/clock"
	"skillswap-be/internal/pkg/logger"
	"skillswap-be/internal/repository/unitofwork"
	"skillswap-be/internal/service"
	"skillswap-be/internal/websocket"
	pktNats "skillswap-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	AuthController         controller.IAuthController
	SkillController        controller.ISkillController
	AvailabilityController controller.IAvailabilityController
	SessionController      controller.ISessionController
	ReviewController       controller.IReviewController
	NotificationController controller.INotificationController
	AdminController        controller.IAdminController

	// Exposed for main.go to run in the background.
	DeliveryService service.IDeliveryService

	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	clk := clock.Real()

	// In-process event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// Optional cross-instance infrastructure
	var natsPub *pktNats.Publisher
	var natsSub *pktNats.Subscriber
	if cfg.Events.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS publisher: %v", err)
		}
		natsSub, err = pktNats.NewSubscriber(cfg.Events.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS subscriber: %v", err)
		}
	}

	var rdb *redis.Client
	if cfg.Events.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.Events.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.Events.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// WebSocket hub
	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// Services
	publisherService := service.NewPublisherService(cfg.Events.TopicName, pubSub)
	deliveryService := service.NewDeliveryService(pubSub, cfg.Events.TopicName, wsHub, natsPub, natsSub, sysLogger)

	authService := service.NewAuthService(uowFactory, clk)
	skillService := service.NewSkillService(uowFactory, clk)
	availabilityService := service.NewAvailabilityService(uowFactory, publisherService, clk)
	sessionService := service.NewSessionService(uowFactory, publisherService, clk, sysLogger)
	reviewService := service.NewReviewService(uowFactory, clk)
	notificationService := service.NewNotificationService(uowFactory)
	adminService := service.NewAdminService(uowFactory, sysLogger)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		SkillController:        controller.NewSkillController(skillService),
		AvailabilityController: controller.NewAvailabilityController(availabilityService),
		SessionController:      controller.NewSessionController(sessionService),
		ReviewController:       controller.NewReviewController(reviewService),
		NotificationController: controller.NewNotificationController(notificationService, wsHub),
		AdminController:        controller.NewAdminController(adminService),

		DeliveryService: deliveryService,
		WebSocketHub:    wsHub,
	}
}
