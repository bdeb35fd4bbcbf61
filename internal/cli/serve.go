package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"blog-service/internal/config"
	"blog-service/internal/handler"
	"blog-service/internal/logger"
	"blog-service/internal/policy"
	"blog-service/internal/service"
	"blog-service/internal/validator"
)

const poolStatsInterval = 15 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config()
			if port != "" {
				cfg.ServerPort = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides SERVER_PORT)")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	be, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer be.close()

	be.poolStats.Start(poolStatsInterval)
	defer be.poolStats.Stop()

	blobs, local, err := openBlobStore(cfg)
	if err != nil {
		return err
	}

	publisher := openPublisher(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close event publisher", slog.String("error", err.Error()))
		}
	}()

	v := validator.NewValidator(cfg.MaxImageBytes)
	workflow := service.NewPostWorkflow(be.posts, blobs, v, publisher)
	postService := service.NewPostService(be.posts, workflow, policy.NewPostPolicy(), blobs, cfg.PageSize)

	deps := routerDeps{
		posts:  handler.NewPostHandler(postService, cfg.MaxImageBytes),
		health: handler.NewHealthHandler(be.ping, Version),
	}
	// Local blobs are only served here when the base URL is a path on this server.
	if local != nil && strings.HasPrefix(cfg.BlobBaseURL, "/") {
		deps.staticPrefix = cfg.BlobBaseURL
		deps.staticDir = local.Root()
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      newRouter(deps),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("db_driver", cfg.DBDriver),
			slog.String("blob_backend", cfg.BlobBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server exited")
	return nil
}
