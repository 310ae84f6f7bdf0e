package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalog-manager/core/loader"
	"catalog-manager/core/logger"
	"catalog-manager/core/middleware/auth"
	"catalog-manager/core/middleware/rayid"

	"catalog-manager/feature/connection"
	"catalog-manager/feature/integrity"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "catalog-manager/docs/swagger"
)

// @title Catalog Manager API
// @version 1.0
// @description API for merging configured catalogs with discovered source schemas.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := bootstrap(false)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		cfg, logg := rt.cfg, rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if err := rt.migrate(); err != nil {
			logg.Fatal("Failed to prepare configuration store", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		connections := connection.NewFeature(rt.client, cfg.Storage.Bucket, logg, rt.db, cfg.Reconcile)
		go connections.RunCacheSweeper(ctx, cfg.Reconcile.CacheTTL())

		mgr := loader.NewManager(logg)
		mgr.Register(connections)
		mgr.Register(integrity.NewFeature(rt.client, cfg.Storage.Bucket, []string{cfg.Reconcile.SnapshotPrefix}, rt.db, logg))

		// ray ID first so every log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

		if !cfg.Server.AuthEnabled() {
			logg.Warn("API key is empty, authentication is disabled")
		}
		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Skip:   []string{"/swagger", "/metrics"},
		}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
