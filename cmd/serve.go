package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
	"github.com/spf13/cobra"

	"taskpro.com/taskpro/internal/cache"
	config "taskpro.com/taskpro/internal/configs"
	httpapi "taskpro.com/taskpro/internal/http"
	"taskpro.com/taskpro/internal/logging"
	repository "taskpro.com/taskpro/internal/repositories"
	"taskpro.com/taskpro/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task tracking HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			logging.Logger.Info(".env file not found, using environment variables")
		}

		cfg := config.Load()
		logging.Init(cfg.LogFile)

		database := config.NewDatabase(cfg.DatabaseDSN)

		var redisClient rueidis.Client
		if cfg.RedisAddr != "" {
			redisClient = config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
		}
		dashboardCache := cache.NewDashboardCache(redisClient, cfg.DashboardCacheTTL)

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		assignmentRepo := repository.NewAssignmentRepository(database)
		notificationRepo := repository.NewNotificationRepository(database)

		directory := services.NewDirectoryService(userRepo)
		notifier := services.NewNotificationService(notificationRepo)
		taskService := services.NewTaskService(taskRepo, directory, dashboardCache)
		assignmentService := services.NewAssignmentService(taskRepo, assignmentRepo, directory, notifier, dashboardCache)
		dashboardService := services.NewDashboardService(taskRepo, directory, dashboardCache)
		reportService := services.NewReportService(taskRepo, directory)
		userService := services.NewUserService(userRepo, directory)

		e := echo.New()
		handler := httpapi.NewHandler(taskService, assignmentService, dashboardService, reportService, userService, notifier)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			logging.Logger.Infof("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				logging.Logger.Infof("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		logging.Logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
