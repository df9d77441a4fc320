package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/litigation-cli/internal/loader"
	"github.com/sells-group/litigation-cli/internal/model"
	"github.com/sells-group/litigation-cli/internal/resilience"
	"github.com/sells-group/litigation-cli/internal/server"
)

var servePort int

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the read-only case API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg.Server.Port = resolvePort(servePort, cfg.Server.Port)
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		cache := loader.NewCache(time.Duration(cfg.Cache.TTLMinutes)*time.Minute, loaderOptions(cfg))

		// Warm the cache so a bad data path fails at startup. A missing file
		// may still be on its way, so that case is retried.
		t, err := resilience.DoVal(ctx, resilience.Policy{
			Attempts:   cfg.Data.WaitAttempts,
			Backoff:    time.Duration(cfg.Data.WaitBackoffMS) * time.Millisecond,
			MaxBackoff: 30 * time.Second,
			Multiplier: 2,
			Jitter:     0.1,
			Retryable:  loader.IsNotExist,
			OnRetry:    resilience.LogRetry("load case table"),
		}, func(ctx context.Context) (*model.Table, error) {
			return cache.Get(ctx, cfg.Data.Path)
		})
		if err != nil {
			return eris.Wrap(err, "load case table")
		}
		zap.L().Info("case table ready", zap.String("path", cfg.Data.Path), zap.Int("cases", t.Len()))

		srv := server.New(cache, server.Options{
			DataPath:       cfg.Data.Path,
			CORSOrigins:    cfg.Server.CORSOrigins,
			RateLimitRPS:   cfg.Server.RateLimitRPS,
			RateLimitBurst: cfg.Server.RateLimitBurst,
		})

		return startServer(ctx, srv.Handler(), cfg.Server.Port)
	},
}

// resolvePort prefers the --port flag over the configured port.
func resolvePort(flagPort, configPort int) int {
	if flagPort != 0 {
		return flagPort
	}
	return configPort
}

// startServer serves h on port until ctx is cancelled, then shuts down
// gracefully.
func startServer(ctx context.Context, h http.Handler, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- eris.Wrap(err, "server listen")
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "server shutdown")
	}
	return <-errCh
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
