package main

import (
	"os"
	"os/signal"
	"syscall"

	configs "github.com/medicore-health/hms/config"
	"github.com/medicore-health/hms/internal/dto"
	"github.com/medicore-health/hms/internal/handler"
	"github.com/medicore-health/hms/internal/repository"
	"github.com/medicore-health/hms/internal/router"
	"github.com/medicore-health/hms/internal/service"
	"github.com/medicore-health/hms/pkg/database"
	"github.com/medicore-health/hms/pkg/logger"
	"github.com/medicore-health/hms/pkg/redis"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize Zap logger
	if err := logger.InitLogger(config); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
	)

	db, err := database.NewPostgresDB(database.Config{
		Host:            config.Database.Host,
		Port:            config.Database.Port,
		User:            config.Database.User,
		Password:        config.Database.Password,
		Database:        config.Database.Name,
		SSLMode:         config.Database.SSLMode,
		MaxIdleConns:    config.Database.MaxIdleConns,
		MaxOpenConns:    config.Database.MaxOpenConns,
		ConnMaxLifetime: int(config.Database.ConnMaxLifetime.Minutes()),
		ConnMaxIdleTime: int(config.Database.ConnMaxIdleTime.Minutes()),
	})
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	// Seed data may already exist, so a failure here is not fatal
	if err := database.Seed(db); err != nil {
		logger.GetLogger().Error("Failed to seed database", zap.Error(err))
	} else {
		logger.GetLogger().Info("Database seeded successfully")
	}

	if err := database.OptimizedIndexes(db); err != nil {
		logger.GetLogger().Error("Failed to create optimized indexes", zap.Error(err))
	}

	// Repositories
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	prescriptionRepo := repository.NewPrescriptionRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	screenRepo := repository.NewScreenRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	redisClient := redis.NewClient(redis.Config{
		Host:         config.Redis.Host,
		Port:         config.Redis.Port,
		Password:     config.Redis.Password,
		DB:           config.Redis.Database,
		Enabled:      config.Redis.Enabled,
		PoolSize:     config.Redis.PoolSize,
		MinIdleConns: config.Redis.MinIdleConns,
		DialTimeout:  config.Redis.DialTimeout,
		ReadTimeout:  config.Redis.ReadTimeout,
		WriteTimeout: config.Redis.WriteTimeout,
	}, logger.GetLogger())
	defer redisClient.Close()

	logger.GetLogger().Info("Redis client initialized",
		zap.Bool("enabled", redisClient.IsEnabled()),
	)

	// Services
	tokenService := service.NewTokenService(config.JWT)
	authService := service.NewAuthService(employeeRepo, patientRepo, refreshTokenRepo, tokenService, logger.GetLogger())
	mailer := service.NewSMTPMailer(config.Mail, logger.GetLogger())
	templateService := service.NewTemplateService(templateRepo, mailer, logger.GetLogger())
	employeeService := service.NewEmployeeService(employeeRepo, roleRepo, sequenceRepo, templateService, config.Defaults, config.Mail, logger.GetLogger())
	patientService := service.NewPatientService(patientRepo, redisClient, config.Defaults, logger.GetLogger())
	appointmentService := service.NewAppointmentService(appointmentRepo, patientRepo, employeeRepo, logger.GetLogger())
	prescriptionService := service.NewPrescriptionService(prescriptionRepo, appointmentRepo, logger.GetLogger())
	inventoryService := service.NewInventoryService(inventoryRepo, logger.GetLogger())
	supplierService := service.NewSupplierService(supplierRepo, logger.GetLogger())
	saleService := service.NewSaleService(saleRepo, inventoryRepo, logger.GetLogger())
	roleService := service.NewRoleService(roleRepo, screenRepo, sequenceRepo, logger.GetLogger())
	screenService := service.NewScreenService(screenRepo, sequenceRepo, logger.GetLogger())

	if err := dto.RegisterValidations(); err != nil {
		logger.GetLogger().Fatal("Failed to register request validations", zap.Error(err))
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authService, logger.GetLogger())
	healthHandler := handler.NewHealthHandler(db, redisClient)
	patientHandler := handler.NewPatientHandler(patientService, logger.GetLogger())
	employeeHandler := handler.NewEmployeeHandler(employeeService, logger.GetLogger())
	appointmentHandler := handler.NewAppointmentHandler(appointmentService, logger.GetLogger())
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionService, logger.GetLogger())
	inventoryHandler := handler.NewInventoryHandler(inventoryService, logger.GetLogger())
	supplierHandler := handler.NewSupplierHandler(supplierService, logger.GetLogger())
	saleHandler := handler.NewSaleHandler(saleService, logger.GetLogger())
	roleHandler := handler.NewRoleHandler(roleService, logger.GetLogger())
	screenHandler := handler.NewScreenHandler(screenService, logger.GetLogger())
	templateHandler := handler.NewTemplateHandler(templateService, logger.GetLogger())

	r := router.NewRouter(
		authHandler,
		healthHandler,
		patientHandler,
		employeeHandler,
		appointmentHandler,
		prescriptionHandler,
		inventoryHandler,
		supplierHandler,
		saleHandler,
		roleHandler,
		screenHandler,
		templateHandler,
		tokenService,
		config,
	).SetupRoutes()

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
			zap.String("host", "0.0.0.0"),
		)
		if err := r.Run(":" + config.App.Port); err != nil {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")
}
