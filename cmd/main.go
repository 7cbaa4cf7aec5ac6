package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/cobra"

	"license-compliance-system/internal/compliance"
	"license-compliance-system/internal/config"
	"license-compliance-system/internal/database"
	"license-compliance-system/internal/handler"
	"license-compliance-system/internal/logging"
	"license-compliance-system/internal/metrics"
	"license-compliance-system/internal/repository"
	"license-compliance-system/internal/service"
	"license-compliance-system/internal/util"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "lcs",
		Short:         "Software license compliance service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml")

	root.AddCommand(serveCmd(), reportCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// bootstrap 加载配置、初始化日志与数据库
func bootstrap() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logging.Init(cfg.Logging)
	util.ConfigureTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	if err := database.InitDB(cfg.Database, cfg.Auth); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newEngine(cfg *config.Config, store *repository.GormStore, recorder compliance.Recorder) *compliance.Engine {
	return compliance.NewEngine(store,
		compliance.WithRecorder(recorder),
		compliance.WithLogger(slog.Default()),
		compliance.WithWorkers(cfg.Compliance.Workers))
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap()
			if err != nil {
				return err
			}
			if cfg.Auth.JWTSecret == "" {
				slog.Warn("LCS_AUTH_JWT_SECRET is not set, using the built-in development secret")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sheetSync, err := service.NewSheetSyncService(ctx, cfg.Sheets)
			if err != nil {
				return fmt.Errorf("init sheet sync: %w", err)
			}

			collector := metrics.NewCollector()
			store := repository.NewGormStore(database.DB)
			handler.Init(newEngine(cfg, store, collector), store, sheetSync)

			app := fiber.New(fiber.Config{
				ErrorHandler: handler.ErrorHandler,
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
			})

			// 中间件
			app.Use(logger.New())
			app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.Origins()}))

			handler.SetupRoutes(app, collector)

			go func() {
				<-ctx.Done()
				slog.Info("shutting down")
				_ = app.Shutdown()
			}()

			addr := fmt.Sprintf(":%d", cfg.Server.Port)
			slog.Info("listening", "addr", addr)
			return app.Listen(addr)
		},
	}
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Evaluate compliance once and print the report as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap()
			if err != nil {
				return err
			}

			store := repository.NewGormStore(database.DB)
			rows, err := newEngine(cfg, store, nil).GenerateReport(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and seed the default admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := bootstrap(); err != nil {
				return err
			}
			slog.Info("migrations applied")
			return nil
		},
	}
}

