package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/waylo/companion/backend/internal/config"
	"github.com/waylo/companion/backend/internal/handlers"
	"github.com/waylo/companion/backend/internal/logger"
	"github.com/waylo/companion/backend/internal/metrics"
	"github.com/waylo/companion/backend/internal/middleware"
	"github.com/waylo/companion/backend/internal/repository"
	"github.com/waylo/companion/backend/internal/service"
	"github.com/waylo/companion/backend/pkg/supabase"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(cfg.LoggerConfig())
	logger.SetDefault(log)

	cal, err := cfg.Calendar()
	if err != nil {
		return fmt.Errorf("invalid report calendar: %w", err)
	}

	log.Info("starting companion API",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
		logger.String("timezone", cal.Location.String()),
		logger.String("week_start", cal.WeekStart.String()),
	)

	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
	m := metrics.New()

	toyLogRepo := repository.NewToyLogRepository(supabaseClient)
	sentimentRepo := repository.NewSentimentRepository(supabaseClient)
	interestRepo := repository.NewInterestRepository(supabaseClient)
	userRepo := repository.NewUserRepository(supabaseClient)
	deviceRepo := repository.NewDeviceRepository(supabaseClient)

	reportService := service.NewReportService(toyLogRepo, sentimentRepo, interestRepo, m)
	dashboardService := service.NewDashboardService(reportService, m)
	authService := service.NewAuthService(supabaseClient, userRepo)
	deviceService := service.NewDeviceService(deviceRepo)

	authLimiter := middleware.NewAuthRateLimiter()
	defer authLimiter.Stop()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Env:         cfg.Server.Env,
		Logger:      log,
		Verifier:    supabaseClient,
		Auth:        authService,
		Devices:     deviceService,
		Reports:     reportService,
		Dashboard:   dashboardService,
		Calendar:    cal,
		Metrics:     m,
		AuthLimiter: authLimiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", logger.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
