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
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/newsfeed/pkg/config"
	"github.com/umputun/newsfeed/pkg/domain"
	"github.com/umputun/newsfeed/pkg/feed"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/feed_service.go -pkg mocks -skip-ensure -fmt goimports . FeedService
//go:generate moq -out mocks/moderator.go -pkg mocks -skip-ensure -fmt goimports . Moderator

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	db        Database
	feeds     FeedService
	moderator Moderator
	generator *feed.Generator
	sanitizer *bluemonday.Policy
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	SetVerified(ctx context.Context, id string, verified bool) error
	UpdateProfile(ctx context.Context, id string, pref domain.Preference) error
	CreateSession(ctx context.Context, userID string) (*domain.Session, error)
	GetSession(ctx context.Context, token string) (*domain.Session, error)
	GetPreference(ctx context.Context, userID string) (domain.Preference, error)
	SetPreference(ctx context.Context, pref domain.Preference) error
	CreateArticle(ctx context.Context, article *domain.Article) error
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	CreateInteraction(ctx context.Context, it *domain.Interaction) error
	Ping(ctx context.Context) error
}

// FeedService assembles feeds and translates articles
type FeedService interface {
	AssembleFeed(ctx context.Context, req feed.FeedRequest) ([]domain.FeedItem, error)
	Translate(ctx context.Context, articleID, targetLang string) (domain.Translation, error)
}

// Moderator decides moderation status of submitted articles
type Moderator interface {
	Moderate(title, content string, submitterVerified bool) domain.ModerationResult
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetFeedConfig() config.FeedConfig
	GetBaseURL() string
	GetAdminSecret() string
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, feeds FeedService, moderator Moderator, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		db:        db,
		feeds:     feeds,
		moderator: moderator,
		generator: feed.NewGenerator(cfg.GetBaseURL()),
		sanitizer: bluemonday.StrictPolicy(),
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
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
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
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
	s.router.Use(rest.AppInfo("newsfeed", "umputun", s.version))
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

		r.HandleFunc("POST /auth/anonymous", s.anonymousAuthHandler)

		r.HandleFunc("GET /users/{id}/preferences", s.getPreferencesHandler)
		r.HandleFunc("POST /users/{id}/preferences", s.setPreferencesHandler)

		r.HandleFunc("POST /articles", s.createArticleHandler)
		r.HandleFunc("GET /articles/feed", s.feedHandler)
		r.HandleFunc("GET /articles/{id}", s.getArticleHandler)
		r.HandleFunc("POST /articles/{id}/translate", s.translateHandler)

		r.HandleFunc("POST /interactions", s.createInteractionHandler)

		r.HandleFunc("POST /admin/verify-user/{id}", s.verifyUserHandler)
	})

	// RSS routes
	s.router.HandleFunc("GET /rss/{user_id}", s.rssHandler)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

// renderServiceError maps domain errors to http status codes
func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorStatus(err)
	if code >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", r.Method, r.URL.Path, err)
	}
	renderError(w, r, err, code)
}

func errorStatus(err error) int {
	var trErr *domain.TranslationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &trErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
