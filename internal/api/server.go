package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"compkit/internal/catalog"
	"compkit/internal/clone"
	"compkit/internal/config"
	"compkit/internal/conversation"
	"compkit/internal/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 10 * time.Second

// Services are the collaborators the HTTP handlers call into.
type Services struct {
	Catalog  *catalog.Catalog
	Clone    *clone.Service
	Template *conversation.Flow
	Landing  *conversation.Flow
}

// Server is the HTTP API.
type Server struct {
	cfg     config.Config
	svc     Services
	logger  *logging.AppLogger
	started time.Time
	router  chi.Router
}

// NewServer builds the router. Every field of svc must be set.
func NewServer(cfg config.Config, svc Services, logger *logging.AppLogger) (*Server, error) {
	if svc.Catalog == nil || svc.Clone == nil || svc.Template == nil || svc.Landing == nil {
		return nil, fmt.Errorf("api: missing service")
	}
	if logger == nil {
		logger = logging.GetDefault()
	}

	s := &Server{
		cfg:     cfg,
		svc:     svc,
		logger:  logger,
		started: time.Now(),
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(CORS(s.cfg.CORSOrigins))

	r.Get("/health", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/component/list", s.listComponents)
		r.Post("/component/details", s.componentDetails)
		r.Post("/clone", s.cloneFrontend)
		r.Post("/template", s.conversation(s.svc.Template))
		r.Post("/landing", s.conversation(s.svc.Landing))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		Error(w, http.StatusNotFound, "no route for "+r.Method+" "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		Error(w, http.StatusMethodNotAllowed, "method "+r.Method+" not allowed on "+r.URL.Path)
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on the configured address until ctx is done, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Server.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	// Captures can take as long as the navigation plus selector budgets.
	writeTimeout := s.cfg.Screenshot.NavigationTimeout + s.cfg.Screenshot.SelectorTimeout + 30*time.Second
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.logger.Info("Server stopped")
	return nil
}

type healthResponse struct {
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	Uptime        string    `json:"uptime"`
	UptimeSeconds int64     `json:"uptimeSeconds"`
	Components    int       `json:"components"`
	Timestamp     time.Time `json:"timestamp"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	up := time.Since(s.started)
	JSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       s.cfg.Version,
		Uptime:        up.Round(time.Second).String(),
		UptimeSeconds: int64(up.Seconds()),
		Components:    s.svc.Catalog.Len(),
		Timestamp:     time.Now().UTC(),
	})
}
