package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/logger"
	"github.com/hpungsan/sift/internal/metrics"
	"github.com/hpungsan/sift/internal/store"
)

// maxBodyBytes caps POST bodies before JSON decoding.
const maxBodyBytes = 1 << 20

// NewServer creates and configures the HTTP server for the Sift API.
func NewServer(st store.Store, cfg *config.Config, version string) *http.Server {
	h := &Handlers{
		store:   st,
		cfg:     cfg,
		version: version,
	}

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Bind, cfg.Port),
		Handler:           NewHandler(h),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewHandler builds the routed handler with middleware applied.
func NewHandler(h *Handlers) http.Handler {
	mux := http.NewServeMux()

	// Routes using Go 1.22+ pattern syntax
	mux.HandleFunc("GET /{$}", h.HandleDocs)
	mux.HandleFunc("POST /strings", h.HandleCreate)
	mux.HandleFunc("GET /strings", h.HandleList)
	mux.HandleFunc("GET /strings/filter-by-natural-language", h.HandleQuery)
	mux.HandleFunc("GET /strings/{value}", h.HandleFetch)
	mux.HandleFunc("DELETE /strings/{value}", h.HandleDelete)
	mux.Handle("GET /metrics", metrics.Handler())

	// instrument reads the matched pattern off the request, so it must wrap
	// the mux directly with no request cloning in between.
	var handler http.Handler = instrument(mux)
	handler = securityHeaders(handler)
	handler = requestID(handler)
	handler = cors.AllowAll().Handler(handler)

	return handler
}

// securityHeaders adds security-related HTTP headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

// Run starts the HTTP server and handles graceful shutdown on SIGINT/SIGTERM.
func Run(srv *http.Server) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Logger.Infow("Sift API listening", "addr", srv.Addr)

	if strings.Contains(srv.Addr, "0.0.0.0") || strings.Contains(srv.Addr, "::") {
		logger.Logger.Warnw("Server is binding to all interfaces and may be accessible from the network", "addr", srv.Addr)
	}

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Logger.Infow("Shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
