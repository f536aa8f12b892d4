package router

import (
	"fmt"
	"net/http"

	"bodhira/internal/application/service"
	"bodhira/internal/interfaces/api/handler"
	authMiddleware "bodhira/internal/interfaces/api/middleware"
	"bodhira/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the dependencies for the router.
type Config struct {
	AuthHandler     *handler.AuthHandler
	ProfileHandler  *handler.ProfileHandler
	ReminderHandler *handler.ReminderHandler
	AuthService     service.AuthService
	Logger          logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()

	// Middleware
	e.Use(middleware.RequestID())
	// Use custom logger that integrates with our logger interface
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogHost:      true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	requireAuth := authMiddleware.RequireAuth(cfg.AuthService, cfg.Logger)

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", cfg.AuthHandler.Register)
	auth.POST("/token", cfg.AuthHandler.Login)
	auth.POST("/device", cfg.AuthHandler.RegisterDevice, requireAuth)
	auth.POST("/notifications/toggle", cfg.AuthHandler.ToggleNotifications, requireAuth)

	profile := api.Group("/profile", requireAuth)
	profile.GET("", cfg.ProfileHandler.GetProfile)
	profile.PUT("", cfg.ProfileHandler.UpdateProfile)
	profile.DELETE("", cfg.ProfileHandler.DeleteAccount)

	reminders := api.Group("/reminders", requireAuth)
	reminders.POST("", cfg.ReminderHandler.CreateReminder)
	reminders.GET("", cfg.ReminderHandler.ListReminders)
	reminders.DELETE("/:id", cfg.ReminderHandler.DeleteReminder)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
