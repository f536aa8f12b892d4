package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	// Application Layer
	appService "bodhira/internal/application/service"

	// Infrastructure Layer
	"bodhira/internal/infrastructure/database/sqlite"
	"bodhira/internal/infrastructure/push"
	"bodhira/internal/infrastructure/scheduler"

	// Interfaces Layer
	"bodhira/internal/interfaces/api/handler"
	"bodhira/internal/interfaces/api/router"

	// Packages
	appLogger "bodhira/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

func gracefulShutdown(apiServer *http.Server, schedulerService appService.SchedulerService, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the scheduler first
	log.Println("Stopping scheduler...")
	schedulerService.Stop()
	log.Println("Scheduler stopped.")

	// Close database connection
	log.Println("Closing database connection...")
	if err := sqlite.CloseDB(); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("Database connection closed.")
	}

	// Shutdown HTTP server
	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	// --- Initialization ---
	appLog := appLogger.New()
	appLog.Info("Logger initialized.")

	// Load Environment Variables (using autoload)
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080" // Default port
		appLog.Warn("PORT environment variable not set, defaulting to 8080")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		appLog.Error("Invalid PORT environment variable", err)
		os.Exit(1)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		appLog.Error("JWT_SECRET environment variable must be set", nil)
		os.Exit(1)
	}

	// --- Infrastructure ---
	db := sqlite.NewDB()
	userRepo := sqlite.NewUserRepository(db)
	reminderRepo := sqlite.NewReminderRepository(db)
	appLog.Info("Database and repositories initialized.")

	pushClient := push.NewClient(context.Background(), appLog)
	cronScheduler := scheduler.NewScheduler(appLog)

	// --- Application Services ---
	notifierSvc := appService.NewNotifierService(userRepo, pushClient, appLog)
	schedulerSvc := appService.NewSchedulerService(cronScheduler, reminderRepo, notifierSvc, appLog)
	authSvc := appService.NewAuthService(userRepo, jwtSecret, appLog)
	userSvc := appService.NewUserService(userRepo, reminderRepo, schedulerSvc, appLog)
	reminderSvc := appService.NewReminderService(reminderRepo, schedulerSvc, appLog)
	appLog.Info("Application services initialized.")

	// --- Rebuild Triggers ---
	// All triggers must be installed before the clock starts, so the
	// scheduler never runs against a partially populated table.
	appLog.Info("Rebuilding reminder triggers...")
	if err := schedulerSvc.Rehydrate(context.Background()); err != nil {
		// Log the error but continue starting the server
		appLog.Error("Failed to rebuild triggers on startup", err)
	}
	schedulerSvc.Start()

	// --- API Handlers ---
	authHandler := handler.NewAuthHandler(authSvc, userSvc, appLog)
	profileHandler := handler.NewProfileHandler(userSvc, appLog)
	reminderHandler := handler.NewReminderHandler(reminderSvc, appLog)
	appLog.Info("API handlers initialized.")

	// --- Router ---
	routerCfg := &router.Config{
		AuthHandler:     authHandler,
		ProfileHandler:  profileHandler,
		ReminderHandler: reminderHandler,
		AuthService:     authSvc,
		Logger:          appLog,
	}
	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, schedulerSvc, done) // Pass scheduler service for stopping

	appLog.Info(fmt.Sprintf("Server starting on port %d", port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	// Wait for graceful shutdown signal
	<-done
	appLog.Info("Graceful shutdown complete.")
}
