package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/navarrastar/devfolio/pkg/api"
	"github.com/navarrastar/devfolio/pkg/clients/airtable"
	"github.com/navarrastar/devfolio/pkg/config"
	"github.com/navarrastar/devfolio/pkg/content"
	"github.com/navarrastar/devfolio/pkg/services"
	"github.com/navarrastar/devfolio/pkg/store"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "devfolio",
	Short:         "Portfolio site with a server-side contact form",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading .env file: %w", err)
		}

		var err error
		logger, err = newLogger(verbose || os.Getenv("LOG_LEVEL") == "debug")
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd, validateCmd, messagesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// buildSubmitter picks the contact sink; the returned func releases its resources
func buildSubmitter(cfg *config.Config) (services.Submitter, func(), error) {
	switch cfg.ContactSink {
	case config.SinkSQLite:
		sqliteStore, err := store.NewSQLiteStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return services.NewStoreSubmitter(sqliteStore, logger), func() { sqliteStore.Close() }, nil
	case config.SinkAirtable:
		client := airtable.NewClient(cfg.AirtableAPIKey, cfg.AirtableBaseID, logger)
		return services.NewAirtableSubmitter(client, cfg.AirtableContactTable, logger), func() {}, nil
	default:
		return services.NewSimulatedSubmitter(cfg.SubmitDelay, logger), func() {}, nil
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	site, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}

	submitter, closeSubmitter, err := buildSubmitter(cfg)
	if err != nil {
		return err
	}
	defer closeSubmitter()

	validator := services.NewValidator()
	sessions := services.NewSessionStore(func() *services.ContactForm {
		return services.NewContactForm(submitter, validator, logger)
	}, cfg.SessionTTL, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.GinMode)
	router, err := api.NewRouter(api.NewHandlers(sessions, validator, site, logger), logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sessions.Run(gctx, time.Minute)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("contact_sink", cfg.ContactSink))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		// a clean close still has to stop the janitor
		stop()
		return nil
	})
	return g.Wait()
}
