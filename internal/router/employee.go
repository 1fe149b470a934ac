package router

import (
	"github.com/gin-gonic/gin"
	"github.com/medicore-health/hms/internal/middleware"
)

func (r *Router) employeeRoutes(v1 *gin.RouterGroup) {
	employees := v1.Group("/employees")
	employees.Use(middleware.RequireAuth(r.tokens))
	{
		employees.GET("/doctors", r.employeeHandler.ListDoctors)
		employees.GET("/:id", r.employeeHandler.Get)

		admin := employees.Group("")
		admin.Use(middleware.RequireRole("Admin"))
		{
			admin.POST("", r.employeeHandler.Create)
			admin.GET("", r.employeeHandler.List)
			admin.PUT("/:id", r.employeeHandler.Update)
			admin.DELETE("/:id", r.employeeHandler.Delete)
		}
	}
}
