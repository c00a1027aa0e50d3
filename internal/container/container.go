package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joshua-takyi/venuehub/internal/config"
	"github.com/joshua-takyi/venuehub/internal/mailer"
	"github.com/joshua-takyi/venuehub/internal/models"
	"github.com/joshua-takyi/venuehub/internal/payments"
	"github.com/joshua-takyi/venuehub/internal/services"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary
	// Database clients
	MongoDBClient *mongo.Client
	RedisClient   *redis.Client

	UserService         *services.UserService
	VenueService        *services.VenuesService
	BookingService      *services.BookingService
	PaymentService      *services.PaymentService
	NotificationService *services.NotificationService
	FavouritesService   *services.FavouriteService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	cfg *config.Config,
	logger *slog.Logger,
	cld *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
	redisClient *redis.Client,
) *Container {
	// Initialize repositories
	repo := models.MongodbNewRepo(mongoDBClient)

	mail := mailer.NewMailjetMailer(cfg.MailjetAPIKey, cfg.MailjetSecretKey, cfg.MailFromEmail, cfg.MailFromName)
	gateway := payments.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpaySecret)

	userService := services.NewUserService(repo, redisClient, mail, logger)
	venueService := services.NewVenuesService(repo)
	bookingService := services.NewBookingService(repo, repo, repo, mail, cfg.AdminEmail, logger)
	paymentService := services.NewPaymentService(repo, gateway, cfg.RazorpaySecret, logger)
	notificationService := services.NewNotificationService(repo, redisClient, logger)
	favouriteService := services.NewFavouriteService(repo)

	return &Container{
		Logger:              logger,
		Cloudinary:          cld,
		MongoDBClient:       mongoDBClient,
		RedisClient:         redisClient,
		UserService:         userService,
		VenueService:        venueService,
		BookingService:      bookingService,
		PaymentService:      paymentService,
		NotificationService: notificationService,
		FavouritesService:   favouriteService,
	}
}
