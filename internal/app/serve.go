package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/blackwell-systems/booklist/internal/web"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the book list over HTTP",
		Long: `Serve the book list as a web page and a JSON API.

Routes:
  GET /             browsing page
  GET /books.json   the loaded catalog
  GET /api/books    one page of results (search, country, language,
                    century, pageRange, sort, page, perPage)
  GET /api/facets   filter values
  GET /healthz      health check`,
		Example: `  booklist serve
  booklist serve --port 9000 --source https://example.com/books.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("host") {
				cfg.Serve.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Serve.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store := openStore(cmd)
			srv := web.NewServer(store, web.Options{
				PerPage:     cfg.Browse.EffectivePerPage(),
				Sort:        cfg.Browse.SortKey(),
				Locale:      cfg.Browse.LocaleTag(),
				CORSOrigins: cfg.Serve.CORSOrigins,
			}, logger)

			return listenAndServe(ctx, net.JoinHostPort(cfg.Serve.Host, strconv.Itoa(cfg.Serve.Port)), srv)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Address to listen on (default from config)")
	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (default from config)")
	return cmd
}

// listenAndServe runs h until ctx is done, then shuts down gracefully.
func listenAndServe(ctx context.Context, addr string, h http.Handler) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "addr", "http://"+addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
