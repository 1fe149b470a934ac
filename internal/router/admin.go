package router

import (
	"github.com/gin-gonic/gin"
	"github.com/medicore-health/hms/internal/middleware"
)

// Role, screen and template management stays Admin-only.
func (r *Router) adminRoutes(v1 *gin.RouterGroup) {
	roles := v1.Group("/roles")
	roles.Use(middleware.RequireAuth(r.tokens), middleware.RequireRole("Admin"))
	{
		roles.POST("", r.roleHandler.Create)
		roles.GET("", r.roleHandler.List)
		roles.GET("/:id", r.roleHandler.Get)
		roles.PUT("/:id", r.roleHandler.Update)
		roles.DELETE("/:id", r.roleHandler.Delete)
	}

	screens := v1.Group("/screens")
	screens.Use(middleware.RequireAuth(r.tokens), middleware.RequireRole("Admin"))
	{
		screens.POST("", r.screenHandler.Create)
		screens.GET("", r.screenHandler.List)
		screens.GET("/:id", r.screenHandler.Get)
		screens.PUT("/:id", r.screenHandler.Update)
		screens.DELETE("/:id", r.screenHandler.Delete)
	}

	templates := v1.Group("/templates")
	templates.Use(middleware.RequireAuth(r.tokens), middleware.RequireRole("Admin"))
	{
		templates.POST("", r.templateHandler.Create)
		templates.GET("", r.templateHandler.List)
		templates.GET("/:id", r.templateHandler.Get)
		templates.PUT("/:id", r.templateHandler.Update)
		templates.DELETE("/:id", r.templateHandler.Delete)
		templates.POST("/:id/send", r.templateHandler.Send)
	}
}
