package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jaekwang-park/todo-cloud/internal/http/handler"
	"github.com/jaekwang-park/todo-cloud/internal/metrics"
	"github.com/jaekwang-park/todo-cloud/internal/service"
)

func NewRouter(todoSvc *service.TodoService, authSvc *service.AuthService, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()

	// Health check - kept at the root for ALB health check compatibility
	mux.Handle("/health", handler.NewHealthHandler())

	if gatherer != nil {
		mux.Handle("/metrics", metrics.Handler(gatherer))
	}

	// Signup and login; absent when no identity provider is configured
	if authSvc != nil {
		mux.Handle("/auth/", handler.NewAuthHandler(authSvc))
	}

	// Todo CRUD and batch delete
	todoHandler := handler.NewTodoHandler(todoSvc)
	mux.Handle("/todos", todoHandler)
	mux.Handle("/todos/", todoHandler)

	return mux
}
