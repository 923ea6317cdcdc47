package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Start serves HTTP on the configured address. The returned channel is
// closed on SIGINT, SIGTERM or SIGHUP, after which the caller should Stop.
func (a *App) Start() <-chan struct{} {
	done := make(chan struct{})

	go func() {
		slog.Info("portfolio email api listening", "address", a.httpServer.Addr, "mail_driver", a.mail.Name())
		a.exitOnServeError(a.httpServer.ListenAndServe())
	}()

	go func() {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
		defer stop()

		<-ctx.Done()
		slog.Info("termination signal received, shutting down")
		close(done)
	}()

	return done
}

// Serve runs the HTTP server on l instead of the configured address. The
// channel yields the server's exit error once it stops.
func (a *App) Serve(l net.Listener) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		defer close(errChan)
		errChan <- a.httpServer.Serve(l)
	}()

	return errChan
}

func (a *App) exitOnServeError(err error) {
	if errors.Is(err, http.ErrServerClosed) {
		return
	}
	slog.Error("http server stopped unexpectedly", "address", a.httpServer.Addr, "error", err)
	os.Exit(1)
}

// Stop drains in-flight requests, waits for background tasks such as the
// transport self-check and then releases resources in order.
func (a *App) Stop(ctx context.Context) {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
	}

	a.cancel()

	if err := a.goroutine.Wait(); err != nil {
		slog.WarnContext(ctx, "background tasks finished with errors", "error", err)
	}

	for _, c := range a.closers {
		if err := c.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", c.name, "error", err)
		}
	}

	slog.InfoContext(ctx, "application stopped")
}
