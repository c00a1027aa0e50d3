package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/venuehub/internal/container"
	"github.com/joshua-takyi/venuehub/internal/handlers"
	"github.com/joshua-takyi/venuehub/internal/middleware"
	"github.com/joshua-takyi/venuehub/internal/models"
	"golang.org/x/time/rate"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// Credential endpoints get a tighter per-IP budget than the rest of the API.
	authLimiter := middleware.NewRateLimiter(rate.Limit(1), 5)

	requireOwner := middleware.RequireRole(models.RoleVenueOwner)
	requireCustomer := middleware.RequireRole(models.RoleCustomer)

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "venuehub-api",
			})
		})

		// public routes
		v1.POST("/signup", authLimiter.Limit(), handlers.CreateUser(container.UserService))
		v1.POST("/verify-otp", authLimiter.Limit(), handlers.VerifyOTP(container.UserService))
		v1.POST("/login", authLimiter.Limit(), handlers.AuthenticateUser(container.UserService))
		v1.POST("/refresh", handlers.RefreshToken(container.UserService))
		v1.POST("/google", handlers.GoogleSignIn(container.UserService))
		v1.POST("/logout", handlers.Logout(container.UserService))

		// venue discovery is open to unauthenticated visitors
		v1.GET("/venues", handlers.ListVenues(container.VenueService))
		v1.GET("/venues/filter-options", handlers.VenueFilterOptions(container.VenueService))
		v1.GET("/venues/:id", handlers.ListVenueByID(container.VenueService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.UserService, container.Logger))

	userRoutes := protected.Group("/users")
	{
		userRoutes.GET("/:id", handlers.GetUser(container.UserService))
		userRoutes.PATCH("/:id", handlers.UpdateUser(container.UserService))
		userRoutes.DELETE("/:id", handlers.DeleteUser(container.UserService))
		userRoutes.POST("/avatar", handlers.UploadAvatar(container.UserService))
	}

	venueRoutes := protected.Group("/venues")
	{
		venueRoutes.POST("", requireOwner, handlers.CreateVenueHandler(container.VenueService))
		venueRoutes.PATCH("/:id", requireOwner, handlers.UpdateVenue(container.VenueService))
		venueRoutes.DELETE("/:id", requireOwner, handlers.DeleteVenue(container.VenueService))
		venueRoutes.GET("/owner", requireOwner, handlers.ListOwnerVenues(container.VenueService))
	}

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.POST("/inquiry", requireCustomer, handlers.CreateInquiry(container.BookingService))
		bookingRoutes.PUT("/:id/status", requireOwner, handlers.UpdateBookingStatus(container.BookingService))
		bookingRoutes.GET("/owner", requireOwner, handlers.ListOwnerBookings(container.BookingService))
		bookingRoutes.GET("/customer", requireCustomer, handlers.ListCustomerBookings(container.BookingService))

		bookingRoutes.GET("/owner/inquiry-count", requireOwner, handlers.OwnerInquiryCount(container.NotificationService))
		bookingRoutes.GET("/owner/inquiries", requireOwner, handlers.OwnerInquiries(container.NotificationService))
		bookingRoutes.GET("/customer/notification-count", requireCustomer, handlers.CustomerNotificationCount(container.NotificationService))
		bookingRoutes.GET("/customer/notifications", requireCustomer, handlers.CustomerNotifications(container.NotificationService))
		bookingRoutes.PUT("/:id/acknowledge", requireCustomer, handlers.AcknowledgeNotification(container.NotificationService))
	}

	paymentRoutes := protected.Group("/payments")
	{
		paymentRoutes.POST("/create-order", requireCustomer, handlers.CreatePaymentOrder(container.PaymentService))
		paymentRoutes.POST("/verify-payment", requireCustomer, handlers.VerifyPayment(container.PaymentService))
		paymentRoutes.POST("/failure", requireCustomer, handlers.ReportPaymentFailure(container.PaymentService))
	}

	favouriteRoutes := protected.Group("/favourites")
	{
		favouriteRoutes.GET("", handlers.GetUserFavourites(container.FavouritesService))
		favouriteRoutes.POST("/:id", handlers.AddToFavourites(container.FavouritesService))
		favouriteRoutes.DELETE("/:id", handlers.RemoveFromFavourites(container.FavouritesService))
	}

	return r
}
