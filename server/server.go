// Package server exposes the ranking pipeline and preference
// management over a small JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/tubescope/tubescope/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/ranker.go -pkg mocks -skip-ensure -fmt goimports . Ranker
//go:generate moq -out mocks/lister.go -pkg mocks -skip-ensure -fmt goimports . Lister
//go:generate moq -out mocks/resolver.go -pkg mocks -skip-ensure -fmt goimports . Resolver

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	db       Database
	ranker   Ranker
	lister   Lister
	resolver Resolver
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	GetPreferences(ctx context.Context) (*domain.Preferences, error)
	SaveProfile(ctx context.Context, profile domain.InterestProfile) error
	ListChannels(ctx context.Context) ([]domain.Channel, error)
	AddChannel(ctx context.Context, channel domain.Channel) error
	DeleteChannel(ctx context.Context, id string) error
}

// Ranker runs the personalization pipeline over a candidate pool
type Ranker interface {
	Rank(ctx context.Context, videos []domain.Video) []domain.Video
}

// Lister collects the candidate pool from tracked channels
type Lister interface {
	ListCandidates(ctx context.Context, channelIDs []string) ([]domain.Video, error)
}

// Resolver turns a channel URL, handle or name into a channel. A
// zero-value channel means no match.
type Resolver interface {
	ResolveChannel(ctx context.Context, query string) (domain.Channel, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, ranker Ranker, lister Lister, resolver Resolver, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		db:       db,
		ranker:   ranker,
		lister:   lister,
		resolver: resolver,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("tubescope", "tubescope", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /videos", s.videosHandler)
		r.HandleFunc("GET /preferences", s.getPreferencesHandler)
		r.HandleFunc("PUT /preferences", s.updatePreferencesHandler)
		r.HandleFunc("GET /channels", s.listChannelsHandler)
		r.HandleFunc("POST /channels", s.addChannelHandler)
		r.HandleFunc("POST /channels/resolve", s.resolveChannelHandler)
		r.HandleFunc("DELETE /channels/{id}", s.deleteChannelHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, rest.JSON{"status": "ok", "version": s.version, "time": time.Now().UTC()})
}

// videosHandler lists candidates from all tracked channels and runs
// the ranking pipeline over them
func (s *Server) videosHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	channels, err := s.db.ListChannels(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to list channels: %v", err)
		http.Error(w, "failed to list channels", http.StatusInternalServerError)
		return
	}
	if len(channels) == 0 {
		rest.RenderJSON(w, rest.JSON{"videos": []domain.Video{}, "total": 0})
		return
	}

	channelIDs := make([]string, 0, len(channels))
	for _, ch := range channels {
		channelIDs = append(channelIDs, ch.ID)
	}

	videos, err := s.lister.ListCandidates(ctx, channelIDs)
	if err != nil {
		lgr.Printf("[WARN] failed to list candidates: %v", err)
		http.Error(w, "failed to list candidates", http.StatusInternalServerError)
		return
	}

	ranked := s.ranker.Rank(ctx, videos)
	rest.RenderJSON(w, rest.JSON{"videos": ranked, "total": len(ranked)})
}

// getPreferencesHandler returns the persisted interest profile
func (s *Server) getPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.db.GetPreferences(r.Context())
	if err != nil {
		lgr.Printf("[WARN] failed to get preferences: %v", err)
		http.Error(w, "failed to get preferences", http.StatusInternalServerError)
		return
	}
	rest.RenderJSON(w, prefs.Profile)
}

// updatePreferencesHandler replaces the interest profile; the cached
// rubric is invalidated by the store
func (s *Server) updatePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var profile domain.InterestProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.db.SaveProfile(r.Context(), profile); err != nil {
		lgr.Printf("[WARN] failed to save profile: %v", err)
		http.Error(w, "failed to save preferences", http.StatusInternalServerError)
		return
	}
	rest.RenderJSON(w, profile)
}

// listChannelsHandler returns all tracked channels
func (s *Server) listChannelsHandler(w http.ResponseWriter, r *http.Request) {
	channels, err := s.db.ListChannels(r.Context())
	if err != nil {
		lgr.Printf("[WARN] failed to list channels: %v", err)
		http.Error(w, "failed to list channels", http.StatusInternalServerError)
		return
	}
	rest.RenderJSON(w, channels)
}

// addChannelHandler tracks a new channel
func (s *Server) addChannelHandler(w http.ResponseWriter, r *http.Request) {
	var channel domain.Channel
	if err := json.NewDecoder(r.Body).Decode(&channel); err != nil || channel.ID == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.db.AddChannel(r.Context(), channel); err != nil {
		lgr.Printf("[WARN] failed to add channel %s: %v", channel.ID, err)
		http.Error(w, "failed to add channel", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	rest.RenderJSON(w, channel)
}

// resolveChannelHandler resolves a channel URL, handle or name to a
// channel id so the client can track it
func (s *Server) resolveChannelHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	channel, err := s.resolver.ResolveChannel(r.Context(), req.URL)
	if err != nil {
		lgr.Printf("[WARN] failed to resolve channel %q: %v", req.URL, err)
		http.Error(w, "failed to resolve channel", http.StatusInternalServerError)
		return
	}
	if channel.ID == "" {
		http.Error(w, "no channel found for that URL", http.StatusBadRequest)
		return
	}
	rest.RenderJSON(w, channel)
}

// deleteChannelHandler stops tracking a channel
func (s *Server) deleteChannelHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.db.DeleteChannel(r.Context(), id); err != nil {
		lgr.Printf("[WARN] failed to delete channel %s: %v", id, err)
		http.Error(w, "failed to delete channel", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
