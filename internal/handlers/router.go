package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/waylo/companion/backend/internal/logger"
	"github.com/waylo/companion/backend/internal/metrics"
	"github.com/waylo/companion/backend/internal/middleware"
	"github.com/waylo/companion/backend/internal/report"
	"github.com/waylo/companion/backend/internal/service"
)

// RouterConfig carries everything the HTTP surface is built from.
type RouterConfig struct {
	Env         string
	Logger      logger.Logger
	Verifier    middleware.TokenVerifier
	Auth        service.AuthService
	Devices     service.DeviceService
	Reports     service.ReportService
	Dashboard   service.DashboardService
	Calendar    report.Calendar
	Metrics     *metrics.Metrics
	AuthLimiter *middleware.RateLimiter
}

// NewRouter wires the /api/v1 routes plus /health and /metrics.
func NewRouter(cfg RouterConfig) *gin.Engine {
	authHandler := NewAuthHandler(cfg.Auth)
	deviceHandler := NewDeviceHandler(cfg.Devices)
	reportHandler := NewReportHandler(cfg.Reports, cfg.Dashboard, cfg.Calendar)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.SecurityHeaders(cfg.Env == "production"))
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	requireAuth := middleware.Auth(cfg.Verifier)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			if cfg.AuthLimiter != nil {
				auth.POST("/login", cfg.AuthLimiter.Handler(), authHandler.Login)
				auth.POST("/register", cfg.AuthLimiter.Handler(), authHandler.Register)
			} else {
				auth.POST("/login", authHandler.Login)
				auth.POST("/register", authHandler.Register)
			}
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		devices := v1.Group("/devices")
		devices.Use(requireAuth)
		{
			devices.GET("", deviceHandler.List)
			devices.POST("", deviceHandler.Pair)

			device := devices.Group("/:device_id")
			device.Use(middleware.RequireDevice(cfg.Devices))
			{
				device.GET("/reports/daily", reportHandler.Daily)
				device.GET("/reports/weekly", reportHandler.Weekly)
				device.GET("/reports/sentiments/weekday", reportHandler.WeekdaySentiments)
				device.GET("/reports/sentiments/date", reportHandler.DateSentiments)
				device.GET("/interests/:interest", reportHandler.Interest)
				device.GET("/dashboard", reportHandler.Dashboard)
				device.GET("/logs", reportHandler.ToyLogs)
			}
		}
	}

	return router
}
