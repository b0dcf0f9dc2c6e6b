// File: clinic/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic/config"
	"clinic/cron"
	"clinic/database"
	appointmentRepo "clinic/database/repository/appointment"
	catalogRepo "clinic/database/repository/catalog"
	clientRepo "clinic/database/repository/client"
	notificationRepo "clinic/database/repository/notification"
	receptionRepo "clinic/database/repository/reception"
	scheduleRepo "clinic/database/repository/schedule"
	"clinic/handlers"
	"clinic/middleware"
	"clinic/routes"
	"clinic/services/availability"
	"clinic/services/booking"
	"clinic/services/catalog"
	clientSvc "clinic/services/client"
	"clinic/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	database.InitLegacyDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	recepRepo := receptionRepo.NewGormReceptionRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	cliRepo := clientRepo.NewMongoClientRepo()
	catRepo := catalogRepo.NewMongoCatalogRepo()
	notifRepo := notificationRepo.NewMongoNotificationRepo()

	// services.
	engine := &availability.DefaultAvailabilityEngine{
		Schedule:     schedRepo,
		Receptions:   recepRepo,
		Appointments: apptRepo,
	}

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer reminderClient.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:     apptRepo,
		Reminder: reminderClient,
	}
	clientService := &clientSvc.DefaultClientService{
		Repo: cliRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:  catRepo,
		Cache: utils.GetCacheClient(),
	}

	stopWorker := cron.InitReminderWorker(notifRepo)

	availabilityHandler := handlers.NewAvailabilityHandler(engine)
	appointmentHandler := handlers.NewAppointmentHandler(bookingService)
	clientHandler := handlers.NewClientHandler(clientService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetAvailabilityHandler: availabilityHandler.GetAvailabilityHandler,

		CreateAppointmentHandler: appointmentHandler.CreateAppointmentHandler,

		GetClientHandler:      clientHandler.GetClientHandler,
		RegisterClientHandler: clientHandler.RegisterClientHandler,
		UpdateClientHandler:   clientHandler.UpdateClientHandler,

		ListDoctorsHandler:        catalogHandler.ListDoctorsHandler,
		ListSpecialtiesHandler:    catalogHandler.ListSpecialtiesHandler,
		ListServicesHandler:       catalogHandler.ListServicesHandler,
		ListDoctorServicesHandler: catalogHandler.ListDoctorServicesHandler,

		DebugDBHandler: handlers.DebugDBHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3001"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
