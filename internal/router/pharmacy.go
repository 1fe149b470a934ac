package router

import (
	"github.com/gin-gonic/gin"
	"github.com/medicore-health/hms/internal/middleware"
)

func (r *Router) pharmacyRoutes(v1 *gin.RouterGroup) {
	inventory := v1.Group("/inventory")
	inventory.Use(middleware.RequireAuth(r.tokens))
	{
		inventory.POST("", r.inventoryHandler.Create)
		inventory.GET("", r.inventoryHandler.List)
		inventory.GET("/expiring", r.inventoryHandler.ListExpiring)
		inventory.GET("/:id", r.inventoryHandler.Get)
		inventory.PUT("/:id", r.inventoryHandler.Update)
		inventory.DELETE("/:id", middleware.RequireRole("Admin"), r.inventoryHandler.Delete)
	}

	suppliers := v1.Group("/suppliers")
	suppliers.Use(middleware.RequireAuth(r.tokens))
	{
		suppliers.POST("", r.supplierHandler.Create)
		suppliers.GET("", r.supplierHandler.List)
		suppliers.GET("/:id", r.supplierHandler.Get)
		suppliers.PUT("/:id", r.supplierHandler.Update)
		suppliers.DELETE("/:id", r.supplierHandler.Delete)
	}

	sales := v1.Group("/sales")
	sales.Use(middleware.RequireAuth(r.tokens))
	{
		sales.POST("", r.saleHandler.Create)
		sales.GET("", r.saleHandler.List)
		sales.GET("/:id", r.saleHandler.Get)
		sales.PATCH("/:id/status", r.saleHandler.UpdateStatus)
	}
}
