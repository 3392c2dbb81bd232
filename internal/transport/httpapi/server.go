package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"amendtrack/internal/bootstrap/config"
	"amendtrack/internal/bootstrap/logging"
	"amendtrack/internal/errs"
	amendmentuc "amendtrack/internal/usecase/amendment"
	cataloguc "amendtrack/internal/usecase/catalog"
)

// Server hosts the JSON API. Run blocks until the context is cancelled,
// then drains in-flight requests within the configured shutdown timeout.
type Server struct {
	cfg        config.ServerConfig
	amendments *amendmentuc.Service
	catalog    *cataloguc.Service
}

func NewServer(cfg config.ServerConfig, amendments *amendmentuc.Service, catalog *cataloguc.Service) (*Server, error) {
	if amendments == nil {
		return nil, errors.New("amendment service is required")
	}
	if catalog == nil {
		return nil, errors.New("catalog service is required")
	}

	return &Server{
		cfg:        cfg,
		amendments: amendments,
		catalog:    catalog,
	}, nil
}

func (s *Server) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "httpapi"))

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return logCtx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info(logCtx, "http server listening", slog.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return errs.Wrap(err, "http server")
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logging.Info(logCtx, "http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errs.Wrap(err, "shutdown http server")
	}
	return <-errCh
}
