package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/venuehub/internal/models"
	"github.com/joshua-takyi/venuehub/internal/services"
)

func GetUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		user, err := u.GetUser(c.Request.Context(), userId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(user, ""))
	}
}

func UpdateUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _, ok := currentUser(c)
		if !ok {
			return
		}

		userId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		if !claims.IsOwner(userId.String()) {
			c.JSON(http.StatusForbidden, models.ErrorResponse("you can only update your own profile"))
			return
		}

		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		updated, err := u.UpdateUser(c.Request.Context(), fields, userId)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Profile updated successfully"))
	}
}

func DeleteUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, currentId, ok := currentUser(c)
		if !ok {
			return
		}

		userId, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		if currentId != userId {
			c.JSON(http.StatusForbidden, models.ErrorResponse("you can only delete your own account"))
			return
		}

		if err := u.DeleteUser(c.Request.Context(), userId); err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Account deleted"))
	}
}

func UploadAvatar(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		var reqBody struct {
			Image string `json:"image" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("image payload is required"))
			return
		}

		url, err := u.UploadAvatar(c.Request.Context(), userId, reqBody.Image)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"avatar_url": url}, "Avatar uploaded"))
	}
}
