package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"fashionstore/internal/service/auth"
	"fashionstore/internal/service/catalog"
	"fashionstore/internal/service/chat"
	"fashionstore/internal/service/order"
	"fashionstore/internal/session"
	"fashionstore/pkg/storage"
)

// Deps carries the services the router wires handlers to.
type Deps struct {
	Catalog *catalog.Service
	Orders  *order.Service
	Auth    *auth.Service
	Chat    *chat.Service
	Carts   *session.Registry
	Uploads *storage.ObjectStorage
}

// Options tunes router behavior from config.
type Options struct {
	RateLimitPerSec float64
	RateLimitBurst  int
	SessionTTL      time.Duration
	MaxUploadBytes  int64
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	log        zerolog.Logger
}

// New builds a Server with all storefront routes. Responses are gzipped at
// the outermost layer.
func New(addr string, log zerolog.Logger, db *pgxpool.Pool, deps Deps, opts Options) *Server {
	router := buildRouter(log, db, deps, opts)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           gziphandler.GzipHandler(router),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{httpServer: httpSrv, log: log}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
