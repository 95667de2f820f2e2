package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// readHeaderTimeout bounds how long a client may take to send headers.
const readHeaderTimeout = 10 * time.Second

// Signals that trigger a graceful shutdown.
var shutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// startHTTPServer listens on the configured port and serves router until a
// shutdown signal arrives or ctx is canceled.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	addr := fmt.Sprintf(":%d", app.config.Server.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	// Set up graceful shutdown with signal handling
	sigCtx, stop := signal.NotifyContext(ctx, shutdownSignals...)
	defer stop()

	return app.serve(sigCtx, ln, router)
}

// serve runs an HTTP server on ln until ctx is done, then shuts it down
// within the configured timeout.
func (app *application) serve(ctx context.Context, ln net.Listener, router http.Handler) error {
	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "addr", ln.Addr().String())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("Server failed", "error", err)
			serveErr <- err
			cancelServer()
			return
		}
		serveErr <- nil
	}()

	<-serverCtx.Done()
	app.logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := <-serveErr; err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	app.cleanup()
	app.logger.Info("Server shutdown completed")
	return nil
}
