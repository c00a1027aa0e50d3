package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/venuehub/internal/models"
	"github.com/joshua-takyi/venuehub/internal/services"
)

// Notification surfaces are polling endpoints; dashboards hit the count
// endpoints on short intervals and the list endpoints on tab focus.

func OwnerInquiryCount(n *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		count, err := n.OwnerInquiryCount(c.Request.Context(), userId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"count": count}, ""))
	}
}

func OwnerInquiries(n *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		inquiries, err := n.OwnerInquiries(c.Request.Context(), userId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(inquiries, ""))
	}
}

func CustomerNotificationCount(n *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		count, err := n.CustomerNotificationCount(c.Request.Context(), userId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"count": count}, ""))
	}
}

func CustomerNotifications(n *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		notifications, err := n.CustomerNotifications(c.Request.Context(), userId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(notifications, ""))
	}
}

func AcknowledgeNotification(n *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		bookingId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		if err := n.Acknowledge(c.Request.Context(), userId, bookingId); err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Notification acknowledged"))
	}
}
