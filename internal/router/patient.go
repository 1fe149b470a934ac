package router

import (
	"github.com/gin-gonic/gin"
	"github.com/medicore-health/hms/internal/middleware"
)

func (r *Router) patientRoutes(v1 *gin.RouterGroup) {
	patients := v1.Group("/patients")
	patients.Use(middleware.RequireAuth(r.tokens))
	{
		patients.POST("", r.patientHandler.Create)
		patients.GET("", r.patientHandler.List)
		patients.GET("/stats", r.patientHandler.Stats)
		patients.GET("/:id", r.patientHandler.Get)
		patients.PUT("/:id", r.patientHandler.Update)
		patients.DELETE("/:id", middleware.RequireRole("Admin"), r.patientHandler.Delete)
	}
}
