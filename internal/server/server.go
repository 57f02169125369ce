package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/saedabdu/stockradar/internal/api/handler"
)

const shutdownTimeout = 10 * time.Second

// Routes mounts the stock endpoints on a new mux
func Routes(h *handler.StockHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /price", h.HandlePrice)
	mux.HandleFunc("GET /news", h.HandleNews)
	mux.HandleFunc("GET /radar", h.HandleRadar)
	mux.HandleFunc("GET /health", h.HandleHealth)
	mux.HandleFunc("/", h.HandleNotFound)

	return loggingMiddleware(mux)
}

// New creates the HTTP server listening on the given port
func New(port string, h *handler.StockHandler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      Routes(h),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// Run serves until ctx is cancelled, then shuts the server down gracefully
func Run(ctx context.Context, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info(fmt.Sprintf("Server is running on port %s", strings.TrimPrefix(server.Addr, ":")))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return nil
}
