package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// shutdownSignals are the signals that end the process gracefully.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

// closer releases one resource on shutdown.
type closer struct {
	name string
	fn   func(context.Context) error
}

// Start serves HTTP in the background. The returned channel is closed once a
// shutdown signal arrives or the app context is cancelled.
func (a *App) Start() <-chan struct{} {
	go a.listen()

	sigCtx, stop := signal.NotifyContext(a.ctx, shutdownSignals...)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer stop()

		<-sigCtx.Done()
		a.cancel()
		slog.Info("shutdown requested")
	}()

	return done
}

func (a *App) listen() {
	slog.Info("http server listening", "address", a.httpServer.Addr)

	err := a.httpServer.ListenAndServe()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}
	slog.Error("http server stopped unexpectedly", "error", err)
	os.Exit(1)
}

// Stop drains in-flight requests and then runs every closer in order. A
// failing closer is logged and does not prevent the rest from running.
func (a *App) Stop(ctx context.Context) {
	a.cancel()

	steps := append([]closer{{name: "HTTP Server", fn: a.httpServer.Shutdown}}, a.closers...)
	for _, c := range steps {
		if err := c.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to release resource", "name", c.name, "error", err)
		}
	}
	slog.InfoContext(ctx, "application stopped")
}
