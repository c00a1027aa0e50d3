package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/venuehub/internal/models"
	"github.com/joshua-takyi/venuehub/internal/services"
)

func CreateVenueHandler(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, userId, ok := currentUser(c)
		if !ok {
			return
		}

		if !claims.IsVenueOwner() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("only venue owners can create venues"))
			return
		}

		var venue models.Venue
		if err := c.ShouldBindJSON(&venue); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		createdVenue, err := v.CreateVenue(c.Request.Context(), &venue, userId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(createdVenue, "Venue created successfully"))
	}
}

func UpdateVenue(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		venueId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		updated, err := v.UpdateVenue(c.Request.Context(), fields, venueId, userId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Venue updated successfully"))
	}
}

func DeleteVenue(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		venueId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		if err := v.DeleteVenue(c.Request.Context(), venueId, userId); err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "venue deleted successfully"))
	}
}

func ListVenues(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}

		filter := models.VenueFilter{
			Location: c.Query("location"),
			Type:     c.Query("type"),
			Search:   c.Query("search"),
		}

		venues, total, err := v.ListVenues(c.Request.Context(), filter, offset, limit)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.PaginatedResponse(venues, offset, limit, total))
	}
}

func ListVenueByID(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		venue, err := v.GetVenueByID(c.Request.Context(), venueId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(venue, ""))
	}
}

func ListOwnerVenues(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}

		venues, total, err := v.ListVenuesByOwner(c.Request.Context(), userId, offset, limit)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.PaginatedResponse(venues, offset, limit, total))
	}
}

func VenueFilterOptions(v *services.VenuesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts, err := v.GetFilterOptions(c.Request.Context())
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(opts, ""))
	}
}
