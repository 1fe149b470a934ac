package router

import "github.com/gin-gonic/gin"

// Logout is public on purpose: it accepts the refresh token in the body and
// succeeds even when the token is unknown, so an expired access token never
// blocks a client from revoking its session.
func (r *Router) authRoutes(v1 *gin.RouterGroup) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/refresh", r.authHandler.Refresh)
		auth.POST("/logout", r.authHandler.Logout)
	}
}
