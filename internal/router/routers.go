package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medicore-health/hms/config"
	"github.com/medicore-health/hms/internal/handler"
	"github.com/medicore-health/hms/internal/middleware"
	"github.com/medicore-health/hms/internal/service"
)

type Router struct {
	authHandler         *handler.AuthHandler
	healthHandler       *handler.HealthHandler
	patientHandler      *handler.PatientHandler
	employeeHandler     *handler.EmployeeHandler
	appointmentHandler  *handler.AppointmentHandler
	prescriptionHandler *handler.PrescriptionHandler
	inventoryHandler    *handler.InventoryHandler
	supplierHandler     *handler.SupplierHandler
	saleHandler         *handler.SaleHandler
	roleHandler         *handler.RoleHandler
	screenHandler       *handler.ScreenHandler
	templateHandler     *handler.TemplateHandler

	tokens *service.TokenService
	config *config.Config
}

func NewRouter(
	auth *handler.AuthHandler,
	health *handler.HealthHandler,
	patient *handler.PatientHandler,
	employee *handler.EmployeeHandler,
	appointment *handler.AppointmentHandler,
	prescription *handler.PrescriptionHandler,
	inventory *handler.InventoryHandler,
	supplier *handler.SupplierHandler,
	sale *handler.SaleHandler,
	role *handler.RoleHandler,
	screen *handler.ScreenHandler,
	template *handler.TemplateHandler,
	tokens *service.TokenService,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:         auth,
		healthHandler:       health,
		patientHandler:      patient,
		employeeHandler:     employee,
		appointmentHandler:  appointment,
		prescriptionHandler: prescription,
		inventoryHandler:    inventory,
		supplierHandler:     supplier,
		saleHandler:         sale,
		roleHandler:         role,
		screenHandler:       screen,
		templateHandler:     template,
		tokens:              tokens,
		config:              cfg,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	if r.config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORS(r.config.App.FrontendURL))

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.Health)

		v1 := api.Group("/v1")
		{
			v1.Use(middleware.RateLimit(
				r.config.RateLimit.Request,
				time.Duration(r.config.RateLimit.Duration)*time.Second,
			))

			r.authRoutes(v1)
			r.patientRoutes(v1)
			r.employeeRoutes(v1)
			r.appointmentRoutes(v1)
			r.pharmacyRoutes(v1)
			r.adminRoutes(v1)
		}
	}

	return router
}
