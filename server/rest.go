package server

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/newsfeed/pkg/domain"
	"github.com/umputun/newsfeed/pkg/feed"
)

// preferencePayload is the request and response body of preference endpoints
type preferencePayload struct {
	Language   *string  `json:"language"`
	Region     *string  `json:"region"`
	Categories []string `json:"categories"`
}

// articleRequest is the body of article submission
type articleRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Language   string   `json:"language"`
	Region     string   `json:"region"`
	Categories []string `json:"categories"`
	Source     string   `json:"source"`
	MediaURLs  []string `json:"media_urls"`
}

// articleResponse is the full article representation
type articleResponse struct {
	ID               string                        `json:"id"`
	Title            string                        `json:"title"`
	Content          string                        `json:"content"`
	AuthorID         string                        `json:"author_id"`
	Language         string                        `json:"language"`
	Region           string                        `json:"region,omitempty"`
	Categories       []string                      `json:"categories"`
	Source           string                        `json:"source,omitempty"`
	MediaURLs        []string                      `json:"media_urls"`
	IsPublished      bool                          `json:"is_published"`
	ModerationStatus domain.ModerationStatus       `json:"moderation_status"`
	ModerationNotes  string                        `json:"moderation_notes"`
	CreatedAt        time.Time                     `json:"created_at"`
	Translated       map[string]domain.Translation `json:"translated"`
}

// interactionRequest is the body of interaction logging
type interactionRequest struct {
	ArticleID      string  `json:"article_id"`
	Action         string  `json:"action"`
	ReadingTimeSec int     `json:"reading_time_sec"`
	Engagement     float64 `json:"engagement"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":   "ok",
		"version":  s.version,
		"time":     time.Now().UTC(),
		"database": "ok",
	}
	code := http.StatusOK
	if err := s.db.Ping(r.Context()); err != nil {
		log.Printf("[WARN] database ping failed: %v", err)
		status["status"], status["database"] = "degraded", err.Error()
		code = http.StatusServiceUnavailable
	}
	renderJSON(w, r, code, status)
}

// anonymousAuthHandler creates an anonymous user with a session token
func (s *Server) anonymousAuthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user := &domain.User{AuthProvider: domain.AuthProviderAnonymous}
	if err := s.db.CreateUser(ctx, user); err != nil {
		renderServiceError(w, r, fmt.Errorf("create user: %w", err))
		return
	}

	session, err := s.db.CreateSession(ctx, user.ID)
	if err != nil {
		renderServiceError(w, r, fmt.Errorf("create session: %w", err))
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"user_id": user.ID, "token": session.Token})
}

// getPreferencesHandler returns user preferences, empty defaults for unknown users
func (s *Server) getPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	pref, err := s.db.GetPreference(r.Context(), r.PathValue("id"))
	if err != nil {
		renderServiceError(w, r, fmt.Errorf("get preferences: %w", err))
		return
	}

	categories := pref.Categories
	if categories == nil {
		categories = []string{}
	}
	renderJSON(w, r, http.StatusOK, preferencePayload{
		Language:   optional(pref.Language),
		Region:     optional(pref.Region),
		Categories: categories,
	})
}

// setPreferencesHandler stores user preferences and mirrors them onto the user profile
func (s *Server) setPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("id")

	var req preferencePayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	pref := domain.Preference{UserID: userID, Categories: req.Categories}
	if req.Language != nil {
		pref.Language = strings.TrimSpace(*req.Language)
	}
	if req.Region != nil {
		pref.Region = strings.TrimSpace(*req.Region)
	}
	if pref.Categories == nil {
		pref.Categories = []string{}
	}

	if err := s.db.SetPreference(ctx, pref); err != nil {
		renderServiceError(w, r, fmt.Errorf("set preferences: %w", err))
		return
	}

	// preferences may belong to an id without a user record
	if err := s.db.UpdateProfile(ctx, userID, pref); err != nil && !errors.Is(err, domain.ErrNotFound) {
		log.Printf("[WARN] can't mirror preferences to user %s: %v", userID, err)
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// createArticleHandler submits an article on behalf of user_id, moderation sets its status
func (s *Server) createArticleHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := s.requestUserID(r)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	if userID == "" {
		renderError(w, r, errors.New("user_id is required"), http.StatusBadRequest)
		return
	}

	var req articleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	title, content := s.sanitize(req.Title), s.sanitize(req.Content)
	if title == "" || content == "" {
		renderError(w, r, errors.New("title and content are required"), http.StatusBadRequest)
		return
	}

	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		renderServiceError(w, r, fmt.Errorf("get user: %w", err))
		return
	}

	verdict := s.moderator.Moderate(title, content, user.IsVerified)
	article := &domain.Article{
		Title:            title,
		Content:          content,
		AuthorID:         user.ID,
		Language:         strings.TrimSpace(req.Language),
		Region:           strings.TrimSpace(req.Region),
		Categories:       nonNil(req.Categories),
		Source:           s.sanitize(req.Source),
		MediaURLs:        nonNil(req.MediaURLs),
		IsPublished:      true,
		ModerationStatus: verdict.Status,
		ModerationNotes:  verdict.Notes,
	}
	if err := s.db.CreateArticle(ctx, article); err != nil {
		renderServiceError(w, r, fmt.Errorf("create article: %w", err))
		return
	}

	log.Printf("[INFO] article %s submitted by %s, moderation %s", article.ID, user.ID, article.ModerationStatus)
	renderJSON(w, r, http.StatusOK, map[string]string{
		"id":                article.ID,
		"moderation_status": string(article.ModerationStatus),
		"moderation_notes":  article.ModerationNotes,
	})
}

// getArticleHandler returns a single article with cached translations
func (s *Server) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	article, err := s.db.GetArticle(r.Context(), r.PathValue("id"))
	if err != nil {
		renderServiceError(w, r, fmt.Errorf("get article: %w", err))
		return
	}

	translated := article.Translated
	if translated == nil {
		translated = map[string]domain.Translation{}
	}
	renderJSON(w, r, http.StatusOK, articleResponse{
		ID:               article.ID,
		Title:            article.Title,
		Content:          article.Content,
		AuthorID:         article.AuthorID,
		Language:         article.Language,
		Region:           article.Region,
		Categories:       nonNil(article.Categories),
		Source:           article.Source,
		MediaURLs:        nonNil(article.MediaURLs),
		IsPublished:      article.IsPublished,
		ModerationStatus: article.ModerationStatus,
		ModerationNotes:  article.ModerationNotes,
		CreatedAt:        article.CreatedAt,
		Translated:       translated,
	})
}

// feedHandler returns the ranked feed of a user
func (s *Server) feedHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := s.requestUserID(r)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	req, err := s.feedRequest(r, userID)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	items, err := s.feeds.AssembleFeed(r.Context(), req)
	if err != nil {
		renderServiceError(w, r, fmt.Errorf("assemble feed: %w", err))
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"items": items})
}

// translateHandler translates an article, always recomputing the cached translation
func (s *Server) translateHandler(w http.ResponseWriter, r *http.Request) {
	targetLang := strings.TrimSpace(r.URL.Query().Get("target_lang"))
	if targetLang == "" {
		renderError(w, r, errors.New("target_lang is required"), http.StatusBadRequest)
		return
	}

	tr, err := s.feeds.Translate(r.Context(), r.PathValue("id"), targetLang)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	renderJSON(w, r, http.StatusOK, tr)
}

// createInteractionHandler appends an interaction of user_id
func (s *Server) createInteractionHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := s.requestUserID(r)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	if userID == "" {
		renderError(w, r, errors.New("user_id is required"), http.StatusBadRequest)
		return
	}

	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if req.ArticleID == "" {
		renderError(w, r, errors.New("article_id is required"), http.StatusBadRequest)
		return
	}
	action := domain.Action(strings.ToLower(req.Action))
	if !action.Valid() {
		renderError(w, r, fmt.Errorf("invalid action %q", req.Action), http.StatusBadRequest)
		return
	}

	it := &domain.Interaction{
		UserID:         userID,
		ArticleID:      req.ArticleID,
		Action:         action,
		ReadingTimeSec: req.ReadingTimeSec,
		Engagement:     req.Engagement,
	}
	if err := s.db.CreateInteraction(r.Context(), it); err != nil {
		renderServiceError(w, r, fmt.Errorf("create interaction: %w", err))
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// verifyUserHandler marks a user verified, guarded by the admin secret
func (s *Server) verifyUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	expected := s.config.GetAdminSecret()
	secret := r.URL.Query().Get("secret")
	if expected == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(expected)) != 1 {
		log.Printf("[WARN] rejected verify request for user %s", userID)
		renderServiceError(w, r, domain.ErrUnauthorized)
		return
	}

	if err := s.db.SetVerified(r.Context(), userID, true); err != nil {
		renderServiceError(w, r, fmt.Errorf("verify user: %w", err))
		return
	}

	log.Printf("[INFO] user %s verified", userID)
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "user_id": userID})
}

// requestUserID returns the user of the request, empty if not identified.
// A bearer session token is resolved to its user and must agree with user_id when both are set.
func (s *Server) requestUserID(r *http.Request) (string, error) {
	userID := r.URL.Query().Get("user_id")
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token = strings.TrimSpace(token); !ok || token == "" {
		return userID, nil
	}

	session, err := s.db.GetSession(r.Context(), token)
	if errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("unknown session token: %w", domain.ErrUnauthorized)
	}
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}
	if userID != "" && userID != session.UserID {
		return "", fmt.Errorf("session doesn't belong to user %s: %w", userID, domain.ErrUnauthorized)
	}
	return session.UserID, nil
}

// feedRequest builds a feed request from query parameters, limit bounds come from the config
func (s *Server) feedRequest(r *http.Request, userID string) (feed.FeedRequest, error) {
	if userID == "" {
		return feed.FeedRequest{}, errors.New("user_id is required")
	}

	feedCfg := s.config.GetFeedConfig()
	limit := feedCfg.DefaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil {
			return feed.FeedRequest{}, fmt.Errorf("invalid limit %q", limitStr)
		}
		limit = l
	}
	if limit < 1 || limit > feedCfg.MaxLimit {
		return feed.FeedRequest{}, fmt.Errorf("limit must be between 1 and %d", feedCfg.MaxLimit)
	}

	return feed.FeedRequest{
		UserID:   userID,
		Language: strings.TrimSpace(r.URL.Query().Get("language")),
		Region:   strings.TrimSpace(r.URL.Query().Get("region")),
		Limit:    limit,
	}, nil
}

// sanitize strips markup from submitted text, keeping it plain
func (s *Server) sanitize(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(text)))
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
