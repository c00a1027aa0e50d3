package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/venuehub/internal/models"
	"github.com/joshua-takyi/venuehub/internal/services"
)

func CreateInquiry(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		var input services.InquiryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		booking, err := b.CreateInquiry(c.Request.Context(), userId, &input)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "Inquiry submitted successfully"))
	}
}

func UpdateBookingStatus(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		bookingId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var reqBody struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("status is required"))
			return
		}

		booking, err := b.UpdateStatus(c.Request.Context(), userId, bookingId, models.BookingStatus(reqBody.Status))
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking status updated"))
	}
}

func ListOwnerBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		bookings, err := b.ListOwnerBookings(c.Request.Context(), userId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

func ListCustomerBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		bookings, err := b.ListCustomerBookings(c.Request.Context(), userId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}
