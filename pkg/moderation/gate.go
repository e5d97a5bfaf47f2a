// Package moderation decides the moderation status of submitted articles
package moderation

import (
	"slices"
	"strings"

	"github.com/umputun/newsfeed/pkg/domain"
)

// moderation notes
const (
	NotesAwaitingReview = "Awaiting manual review"
	NotesAutoApproved   = "Auto-approved"
	notesFlaggedPrefix  = "Contains flagged terms: "
)

// DefaultKeywords are rejected when no keywords are configured
var DefaultKeywords = []string{"fake", "terror", "hate"}

// Gate is a keyword based moderation gate. Unverified submitters always wait
// for manual review, verified ones are approved unless a banned keyword matches.
type Gate struct {
	keywords []string
}

// NewGate makes a Gate with the given banned keywords, matching is case-insensitive.
// Nil keywords mean DefaultKeywords, empty ones disable keyword rejection.
func NewGate(keywords []string) *Gate {
	if keywords == nil {
		keywords = DefaultKeywords
	}
	res := &Gate{}
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || slices.Contains(res.keywords, k) {
			continue
		}
		res.keywords = append(res.keywords, k)
	}
	return res
}

// Moderate returns the moderation status and notes for a submission
func (g *Gate) Moderate(title, content string, submitterVerified bool) domain.ModerationResult {
	if !submitterVerified {
		return domain.ModerationResult{Status: domain.ModerationPending, Notes: NotesAwaitingReview}
	}

	text := strings.ToLower(title + "\n" + content)
	var matched []string
	for _, k := range g.keywords {
		if strings.Contains(text, k) {
			matched = append(matched, k)
		}
	}
	if len(matched) > 0 {
		slices.Sort(matched)
		return domain.ModerationResult{Status: domain.ModerationRejected, Notes: notesFlaggedPrefix + strings.Join(matched, ", ")}
	}
	return domain.ModerationResult{Status: domain.ModerationApproved, Notes: NotesAutoApproved}
}

// Keywords returns the normalized banned keywords
func (g *Gate) Keywords() []string {
	return slices.Clone(g.keywords)
}
