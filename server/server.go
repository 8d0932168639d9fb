// Package server runs the HTTP servers of every service.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("server")

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Start serves handler on addr until ctx is cancelled, then drains in-flight
// requests. name only labels the log lines.
func Start(ctx context.Context, name, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("%s starting on %s", name, addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Infof("%s shutting down", name)
		return srv.Shutdown(shutdownCtx)
	}
}
