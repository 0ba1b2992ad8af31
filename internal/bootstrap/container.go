package bootstrap

import (
	"context"
	"log"
	"time"

	"restro-orders-be/internal/config"
	"restro-orders-be/internal/controller"
	"restro-orders-be/internal/handler"
	"restro-orders-be/internal/pkg/logger"
	"restro-orders-be/internal/pkg/mailer"
	"restro-orders-be/internal/repository/implementation"
	"restro-orders-be/internal/repository/unitofwork"
	"restro-orders-be/internal/service"
	"restro-orders-be/internal/websocket"
	"restro-orders-be/pkg/loyalty"
	"restro-orders-be/pkg/membership"

	pktNats "restro-orders-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// cashbackTopic is the in-process queue carrying delivered-order ids to the
// cashback consumer.
const cashbackTopic = "order_delivered"

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	UserController         controller.IUserController
	OrderController        controller.IOrderController
	LoyaltyController      controller.ILoyaltyController
	SubscriptionController controller.ISubscriptionController
	CatalogController      controller.ICatalogController
	AdminController        controller.IAdminController

	// Background services (main.go runs these)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// In-process event bus for the cashback pipeline
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS for cross-cutting domain events
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis backs cross-instance websocket fan-out
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Domain cores
	ledger := loyalty.NewLedger()
	referralEngine := loyalty.NewEngine(ledger, cfg.Loyalty.SignupReward)
	membershipManager := membership.NewManager()
	menuCache := cache.New(5*time.Minute, 10*time.Minute)

	// Cashback pipeline
	publisherService := service.NewPublisherService(pubSub, cashbackTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cashbackTopic,
		uowFactory,
		ledger,
		cfg.Loyalty.CashbackRate,
	)

	// Services
	authService := service.NewAuthService(uowFactory, emailService, referralEngine, natsPub)
	userService := service.NewUserService(uowFactory)
	orderService := service.NewOrderService(uowFactory, ledger, publisherService, natsPub, emailService)
	loyaltyService := service.NewLoyaltyService(uowFactory, ledger, natsPub)
	subscriptionService := service.NewSubscriptionService(uowFactory, membershipManager, cfg.Payment, emailService, natsPub)
	catalogService := service.NewCatalogService(uowFactory, menuCache)
	adminService := service.NewAdminService(uowFactory, sysLogger)

	// Notification system
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}
	notifHandler := handler.NewNotificationHandler(notifService, natsPub, wsHub, wsLogger)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		UserController:         controller.NewUserController(userService),
		OrderController:        controller.NewOrderController(orderService),
		LoyaltyController:      controller.NewLoyaltyController(loyaltyService),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService),
		CatalogController:      controller.NewCatalogController(catalogService),
		AdminController:        controller.NewAdminController(adminService, authService),

		ConsumerService: consumerService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		Logger: sysLogger,
	}
}
