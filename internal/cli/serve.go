package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpavel/cliquer/internal/server"
	"github.com/mpavel/cliquer/pkg/bench"
	"github.com/mpavel/cliquer/pkg/cache"
	"github.com/mpavel/cliquer/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string
	redisURL string // shared Redis result cache
	mongoURI string // run history backend
	noCache  bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the solvers over HTTP",
		Long: `Start an HTTP server exposing the solvers.

Endpoints:
  POST /api/v1/solve      solve a JSON graph
  GET  /api/v1/runs       list benchmark run history (requires --mongo)
  GET  /api/v1/runs/{id}  fetch one run
  GET  /healthz           liveness check

With --redis, solver results are cached in Redis so multiple instances
share one result store; otherwise the local file cache is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "Redis URL for the result cache")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo", "", "MongoDB URI for run history")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable result caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	var cch cache.Cache
	var err error
	switch {
	case opts.noCache:
		cch = cache.NewNullCache()
	case opts.redisURL != "":
		cch, err = cache.NewRedisCache(ctx, opts.redisURL)
		if err != nil {
			return fmt.Errorf("redis cache: %w", err)
		}
	default:
		cch, err = newCache(false)
		if err != nil {
			return err
		}
	}
	defer cch.Close()

	var st store.Store
	if opts.mongoURI != "" {
		st, err = store.NewMongoStore(ctx, opts.mongoURI)
		if err != nil {
			return fmt.Errorf("mongo store: %w", err)
		}
		defer st.Close(context.Background())
	}

	runner := bench.NewRunner(cch, nil, c.Logger)
	runner.Store = st
	srv := server.New(runner, st, c.Logger)

	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}
