package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"sales-reconciler/core/config"
	"sales-reconciler/core/database"
	"sales-reconciler/core/loader"
	"sales-reconciler/core/logger"
	"sales-reconciler/core/middleware/auth"
	"sales-reconciler/core/middleware/rayid"
	"sales-reconciler/core/reconcile"
	"sales-reconciler/core/storage"
	"sales-reconciler/feature/reconciliation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "sales-reconciler/docs/swagger"
)

// @title Sales Reconciler API
// @version 1.0
// @description API for reconciling recorded sales against the stock ledger.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciliation server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// The server still starts without a database; requests then answer 503
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		source, err := reconciliation.NewSource(cfg.Reconcile, db, store, cfg.Storage, logg)
		if err != nil {
			logg.Fatal("Failed to create reconcile source", zap.Error(err))
		}
		if cfg.Reconcile.Source == reconcile.SourceDatabase && db != nil {
			if schema, err := reconciliation.CheckSchema(db); err == nil && !schema.Valid {
				logg.Warn("Database schema is missing reconciliation columns, run migrate", zap.Any("tables", schema.Tables))
			}
		}

		svc := reconciliation.NewService(source, cfg.Reconcile, reconciliation.NewArchiver(store, cfg.Storage), db, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(reconciliation.NewFeature(svc))

		// RayID first so every later log line carries it
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

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("source", source.Name()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
