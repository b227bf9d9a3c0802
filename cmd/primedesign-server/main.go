// cmd/primedesign-server/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"primedesign-core/design"
	"primedesign/internal/server"
	"primedesign/internal/version"
)

// main wires dependencies and keeps the server lifecycle small.
// Domain logic lives in primedesign-core.
func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	reg := prometheus.NewRegistry()
	handler := server.New(design.NewService(), logger, server.NewMetrics(reg))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           handler.Router(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting primedesign-server", "addr", *addr, "version", version.Version)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
