package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medicore-health/hms/internal/constants"
	"github.com/medicore-health/hms/internal/dto"
	apperrors "github.com/medicore-health/hms/internal/errors"
	"github.com/medicore-health/hms/internal/service"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Login authenticates by email or phone plus password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", err.Error()))
		return
	}

	response, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		h.logger.Warn("login failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Authentication failed", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, response)
}

// Refresh exchanges a refresh token for a new access token. The token comes
// from the JSON body; an empty body is a 401, an unrecognized or invalid
// token a 403.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	// Binding errors fall through with an empty token, which the service
	// reports as a missing token.
	_ = c.ShouldBindJSON(&req)

	response, err := h.auth.Refresh(c.Request.Context(), req.Token)
	if err != nil {
		h.logger.Warn("token refresh failed", zap.Error(err))
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Token refresh failed", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, response)
}

// Logout revokes the refresh token carried in the body. Always succeeds so a
// client can clear its session even with a stale token.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.auth.Logout(c.Request.Context(), req.Token); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		c.JSON(apperrors.ToHTTPStatus(err),
			constants.BuildErrorResponse("Logout failed", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Logged out successfully"))
}
