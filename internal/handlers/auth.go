// internal/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/severyanochka/storefront-backend/internal/i18n"
	"github.com/severyanochka/storefront-backend/internal/services"
	"github.com/severyanochka/storefront-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthPhonePasswordNeeded))
		return
	}

	authResponse, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPhonePasswordRequired):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthPhonePasswordNeeded))
		case errors.Is(err, services.ErrPhoneInvalid):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthPhoneInvalid))
		case errors.Is(err, services.ErrPasswordTooShort):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthPasswordTooShort))
		case errors.Is(err, services.ErrPasswordTooWeak):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthPasswordTooWeak))
		case errors.Is(err, services.ErrPhoneTaken):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyAuthPhoneTaken))
		default:
			logrus.WithError(err).Error("register failed")
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyAuthRegisterFailed))
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  authResponse.User,
		"token": authResponse.Token,
	})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthCredentialsRequired))
		return
	}

	authResponse, err := h.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPhonePasswordRequired):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthCredentialsRequired))
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
		default:
			logrus.WithError(err).Error("login failed")
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyAuthLoginFailed))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  authResponse.User,
		"token": authResponse.Token,
	})
}

// GET /api/auth/me
func (h *AuthHandler) GetProfile(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthTokenMissing))
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthTokenInvalid))
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.NotFoundResponse(c, i18n.T(lang, i18n.KeyUserNotFound))
			return
		}
		logrus.WithError(err).Error("profile lookup failed")
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyAuthProfileFailed))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user,
	})
}
