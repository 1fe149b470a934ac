package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/medicore-health/hms/internal/constants"
	"github.com/medicore-health/hms/internal/service"
	"github.com/medicore-health/hms/pkg/logger"
	"go.uber.org/zap"
)

// RequireAuth validates the Bearer access token and exposes the caller's
// identity as user_id, user_type and role on the request context.
func RequireAuth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse("Authorization header required", nil))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse("Invalid authorization header format", nil))
			c.Abort()
			return
		}

		claims, err := tokens.VerifyAccessToken(parts[1])
		if err != nil {
			logger.GetLogger().Warn("access token rejected",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
				zap.Error(err))
			c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse("Invalid or expired access token", nil))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_type", claims.UserType)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRole restricts a route to callers holding one of the named roles.
// Callers whose token carries no role (refresh-derived tokens) are rejected.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		role, _ := value.(string)
		if !exists || role == "" {
			c.JSON(http.StatusForbidden, constants.BuildErrorResponse("Insufficient permissions", nil))
			c.Abort()
			return
		}
		if _, ok := allowed[role]; !ok {
			logger.GetLogger().Warn("role denied",
				zap.String("role", role),
				zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusForbidden, constants.BuildErrorResponse("Insufficient permissions", nil))
			c.Abort()
			return
		}
		c.Next()
	}
}
