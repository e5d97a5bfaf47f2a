package server

import (
	"log"
	"net/http"
)

// rssHandler serves the personal feed of a user as RSS.
// Accepts the same language, region and limit parameters as the JSON feed.
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	req, err := s.feedRequest(r, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := s.feeds.AssembleFeed(r.Context(), req)
	if err != nil {
		log.Printf("[ERROR] failed to get items for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", errorStatus(err))
		return
	}

	rss, err := s.generator.GenerateRSS(items, userID, req.Language)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	// set content type and write RSS
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
