package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/venuehub/internal/middleware"
	"github.com/joshua-takyi/venuehub/internal/models"
	"github.com/joshua-takyi/venuehub/internal/services"
)

func CreateUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := u.CreateUser(c.Request.Context(), &user)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Account created, check your email for the verification code"))
	}
}

func VerifyOTP(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			Email string `json:"email" binding:"required,email"`
			OTP   string `json:"otp" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		if err := u.VerifyOTP(c.Request.Context(), reqBody.Email, reqBody.OTP); err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Account verified successfully"))
	}
}

func AuthenticateUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		pair, err := u.AuthenticateUser(c.Request.Context(), reqBody.Email, reqBody.Password)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		middleware.SetAuthCookies(c, pair.AccessToken, pair.RefreshToken)
		c.JSON(http.StatusOK, models.SuccessResponse(pair, "Logged in successfully"))
	}
}

func RefreshToken(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		refreshToken, err := c.Cookie("refresh_token")
		if err != nil || refreshToken == "" {
			var reqBody struct {
				RefreshToken string `json:"refresh_token"`
			}
			_ = c.ShouldBindJSON(&reqBody)
			refreshToken = reqBody.RefreshToken
		}

		pair, err := u.RefreshToken(c.Request.Context(), refreshToken)
		if err != nil {
			c.JSON(statusFromError(err), models.ErrorResponse(err.Error()))
			return
		}

		middleware.SetAuthCookies(c, pair.AccessToken, pair.RefreshToken)
		c.JSON(http.StatusOK, models.SuccessResponse(pair, "Token refreshed"))
	}
}

func GoogleSignIn(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			IDToken string `json:"id_token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("id_token is required"))
			return
		}

		pair, err := u.GoogleSignIn(c.Request.Context(), reqBody.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(err.Error()))
			return
		}

		middleware.SetAuthCookies(c, pair.AccessToken, pair.RefreshToken)
		c.JSON(http.StatusOK, models.SuccessResponse(pair, "Logged in with Google"))
	}
}

func Logout(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if refreshToken, err := c.Cookie("refresh_token"); err == nil {
			u.Logout(c.Request.Context(), refreshToken)
		}

		// Clear all auth cookies
		c.SetCookie("access_token", "", -1, "/", "", false, true)
		c.SetCookie("refresh_token", "", -1, "/", "", false, true)

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Logged out successfully"))
	}
}
