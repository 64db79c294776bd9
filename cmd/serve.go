package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/pathfinder/internal/api"
	"github.com/spigell/pathfinder/internal/dialogue"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON HTTP API",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		logger, config := setup()

		deps, err := newAPIDeps(ctx, config, logger)
		if err != nil {
			logger.Fatal("initializing the api", zap.Error(err))
		}

		if err := serve(ctx, config.Server.Address, api.NewHandler(deps), logger); err != nil {
			logger.Fatal("serving", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "listen address (default is server.address)")
	viper.BindPFlag("server.address", serveCmd.Flags().Lookup("address"))
}

func newAPIDeps(ctx context.Context, config *Config, logger *zap.Logger) (api.Deps, error) {
	generator := optionalGenerator(ctx, config.AI.Gemini, logger)

	rec, err := newRecommender(config, generator, logger)
	if err != nil {
		return api.Deps{}, err
	}

	sessions := newSessions(config, generator, rec, logger)
	if !sessions.Available() {
		logger.Warn("session endpoints are disabled", zap.Error(dialogue.ErrUnavailable))
	}

	return api.Deps{
		Recommender: rec,
		Sessions:    sessions,
		Logger:      logger.Named("api"),
	}, nil
}

// serve runs the server until SIGINT or SIGTERM and then shuts it down gracefully.
func serve(ctx context.Context, address string, handler http.Handler, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting the http server", zap.String("address", address), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down the http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
