package feed

import (
	"cmp"
	"slices"
	"time"

	"github.com/umputun/newsfeed/pkg/domain"
)

// scoring weights, terms are additive
const (
	approvedBonus  = 5.0
	categoryWeight = 2.0
	recencyWeight  = 10.0
	likedBonus     = 3.0
)

// Scorer computes heuristic relevance of an article for a user.
// Now is the clock used by the recency term, time.Now if nil.
type Scorer struct {
	Now func() time.Time
}

// Score returns the relevance score of the article, higher is more relevant
func (s Scorer) Score(article domain.Article, uc domain.UserContext) float64 {
	score := 0.0

	// unapproved articles stay eligible, they just rank lower
	if article.ModerationStatus == domain.ModerationApproved {
		score += approvedBonus
	}

	score += categoryWeight * float64(overlap(article.Categories, uc.Categories))

	if !article.CreatedAt.IsZero() {
		ageHours := s.now().Sub(article.CreatedAt).Hours()
		score += recencyWeight / max(1.0, ageHours)
	}

	if _, ok := uc.Liked[article.ID]; ok {
		score += likedBonus
	}

	return score
}

// Rank scores articles and sorts them by descending score, ties keep input order
func (s Scorer) Rank(articles []domain.Article, uc domain.UserContext) []domain.ScoredArticle {
	res := make([]domain.ScoredArticle, len(articles))
	for i, a := range articles {
		res[i] = domain.ScoredArticle{Article: a, Score: s.Score(a, uc)}
	}
	slices.SortStableFunc(res, func(a, b domain.ScoredArticle) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return res
}

func (s Scorer) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// overlap counts distinct tags present in both the article and the interest set
func overlap(tags []string, interests map[string]struct{}) int {
	if len(interests) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(tags))
	n := 0
	for _, t := range tags {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := interests[t]; ok {
			n++
		}
	}
	return n
}
