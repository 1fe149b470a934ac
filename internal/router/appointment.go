package router

import (
	"github.com/gin-gonic/gin"
	"github.com/medicore-health/hms/internal/middleware"
)

func (r *Router) appointmentRoutes(v1 *gin.RouterGroup) {
	appointments := v1.Group("/appointments")
	appointments.Use(middleware.RequireAuth(r.tokens))
	{
		appointments.POST("", r.appointmentHandler.Create)
		appointments.GET("", r.appointmentHandler.List)
		appointments.GET("/:id", r.appointmentHandler.Get)
		appointments.PUT("/:id", r.appointmentHandler.Update)
		appointments.POST("/:id/cancel", r.appointmentHandler.Cancel)
	}

	prescriptions := v1.Group("/prescriptions")
	prescriptions.Use(middleware.RequireAuth(r.tokens))
	{
		prescriptions.POST("", r.prescriptionHandler.Create)
		prescriptions.GET("", r.prescriptionHandler.List)
		prescriptions.GET("/appointment/:appointmentId", r.prescriptionHandler.GetByAppointment)
		prescriptions.GET("/:id", r.prescriptionHandler.Get)
		prescriptions.PUT("/:id", r.prescriptionHandler.Update)
		prescriptions.DELETE("/:id", r.prescriptionHandler.Delete)
	}
}
