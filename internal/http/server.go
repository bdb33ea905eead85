package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jaekwang-park/todo-cloud/internal/metrics"
	"github.com/jaekwang-park/todo-cloud/internal/middleware"
	"github.com/jaekwang-park/todo-cloud/internal/service"
)

type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// ServerDeps bundles what the HTTP server needs wired together.
type ServerDeps struct {
	TodoService *service.TodoService
	AuthService *service.AuthService
	Auth        *middleware.Auth
	Collector   *metrics.Collector
	Gatherer    prometheus.Gatherer
}

func NewServer(port string, logger *slog.Logger, deps ServerDeps) *Server {
	router := NewRouter(deps.TodoService, deps.AuthService, deps.Gatherer)

	// Middleware chain: recovery -> logging -> metrics -> auth -> router
	var chain http.Handler = router
	chain = deps.Auth.Middleware(chain)
	if deps.Collector != nil {
		chain = middleware.Metrics(deps.Collector)(chain)
	}
	chain = middleware.Logging(logger)(chain)
	chain = middleware.Recovery(logger)(chain)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      chain,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}
