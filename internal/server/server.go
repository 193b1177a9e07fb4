package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"cookbook/internal/api"
	"cookbook/internal/config"
	"cookbook/internal/logging"
	"cookbook/internal/recipe"
)

const shutdownTimeout = 5 * time.Second

// Server serves the recipe API.
type Server struct {
	bind      string
	token     string
	maxUpload int64
	logger    *slog.Logger
	store     *recipe.Store
	svc       *api.RecipeService

	listener net.Listener
	server   *http.Server
	done     chan struct{}
}

// New builds a server for store using cfg.Server settings.
func New(cfg *config.Config, store *recipe.Store, logger *slog.Logger) (*Server, error) {
	if cfg == nil || store == nil {
		return nil, errors.New("server: config and store are required")
	}
	bind := strings.TrimSpace(cfg.Server.Bind)
	if bind == "" {
		return nil, errors.New("server: bind address is empty")
	}
	maxUpload := cfg.Server.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = config.Default().Server.MaxUploadBytes
	}

	srv := &Server{
		bind:      bind,
		token:     cfg.Server.Token,
		maxUpload: maxUpload,
		logger:    logging.NewComponentLogger(logger, "api-server"),
		store:     store,
		svc:       api.NewRecipeService(store),
	}
	srv.server = &http.Server{
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Handler returns the routed API handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/recipes", s.auth(s.handleList))
	mux.HandleFunc("POST /api/recipes", s.auth(s.handleCreate))
	mux.HandleFunc("GET /api/recipes/{id}", s.auth(s.handleGet))
	mux.HandleFunc("DELETE /api/recipes/{id}", s.auth(s.handleDelete))
	mux.HandleFunc("GET /api/recipes/{id}/export", s.auth(s.handleExportRecipe))
	mux.HandleFunc("GET /api/export", s.auth(s.handleExport))
	mux.HandleFunc("POST /api/import", s.auth(s.handleImport))
	mux.HandleFunc("GET /api/images/{name}", s.auth(s.handleImage))
	return mux
}

func (s *Server) auth(next http.HandlerFunc) http.HandlerFunc {
	return authMiddleware(s.token, next)
}

// Start binds the listener and serves in the background until Stop.
func (s *Server) Start(ctx context.Context) error {
	listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.ErrorWithContext(s.logger, "api server error", "api_serve_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check that "+s.bind+" is free"),
			)
		}
	}()

	s.logger.Info("api server listening",
		logging.String("address", listener.Addr().String()),
		logging.Bool("auth", s.token != ""),
	)
	return nil
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop gracefully shuts the server down and waits for it to exit.
func (s *Server) Stop() {
	if s == nil || s.server == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("api server shutdown incomplete",
			logging.String(logging.FieldEventType, "api_shutdown_timeout"),
			logging.Error(err),
		)
	}
	if s.done != nil {
		<-s.done
		s.done = nil
	}
	s.listener = nil
	s.logger.Info("api server stopped")
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	s.Stop()
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: message})
}

// writeStoreError maps a recipe store error to its status code.
func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	kind := recipe.Kind(err)
	status := http.StatusInternalServerError
	switch kind {
	case recipe.KindValidation, recipe.KindParse:
		status = http.StatusBadRequest
	case recipe.KindStorage:
		logging.ErrorWithContext(s.logger, "recipe storage failure", "api_storage_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the data directory and image backend"),
		)
	}
	s.writeJSON(w, status, api.ErrorResponse{Error: err.Error(), Kind: kind})
}
