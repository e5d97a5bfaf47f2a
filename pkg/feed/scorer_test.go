package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/newsfeed/pkg/domain"
)

func fixedNow() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }

func TestScorer_Score(t *testing.T) {
	s := Scorer{Now: fixedNow}
	now := fixedNow()

	tbl := []struct {
		name    string
		article domain.Article
		uc      domain.UserContext
		want    float64
	}{
		{"cold start pending no timestamp", domain.Article{ID: "a", ModerationStatus: domain.ModerationPending},
			domain.NewUserContext(nil, nil), 0},
		{"approved only", domain.Article{ID: "a", ModerationStatus: domain.ModerationApproved},
			domain.NewUserContext(nil, nil), 5},
		{"rejected gets no bonus", domain.Article{ID: "a", ModerationStatus: domain.ModerationRejected},
			domain.NewUserContext(nil, nil), 0},
		{"fresh article", domain.Article{ID: "a", CreatedAt: now}, domain.NewUserContext(nil, nil), 10},
		{"30 minutes old", domain.Article{ID: "a", CreatedAt: now.Add(-30 * time.Minute)}, domain.NewUserContext(nil, nil), 10},
		{"exactly one hour", domain.Article{ID: "a", CreatedAt: now.Add(-time.Hour)}, domain.NewUserContext(nil, nil), 10},
		{"four hours", domain.Article{ID: "a", CreatedAt: now.Add(-4 * time.Hour)}, domain.NewUserContext(nil, nil), 2.5},
		{"created in the future", domain.Article{ID: "a", CreatedAt: now.Add(time.Hour)}, domain.NewUserContext(nil, nil), 10},
		{"two categories match", domain.Article{ID: "a", Categories: []string{"tech", "ai", "go"}},
			domain.NewUserContext([]string{"ai", "tech", "sports"}, nil), 4},
		{"duplicate tags count once", domain.Article{ID: "a", Categories: []string{"tech", "tech"}},
			domain.NewUserContext([]string{"tech"}, nil), 2},
		{"liked", domain.Article{ID: "a"},
			domain.NewUserContext(nil, []domain.Interaction{{ArticleID: "a", Action: domain.ActionLike}}), 3},
		{"viewed is not liked", domain.Article{ID: "a"},
			domain.NewUserContext(nil, []domain.Interaction{{ArticleID: "a", Action: domain.ActionView}}), 0},
		{"all terms", domain.Article{ID: "a", ModerationStatus: domain.ModerationApproved, Categories: []string{"tech"},
			CreatedAt: now.Add(-2 * time.Hour)},
			domain.NewUserContext([]string{"tech"}, []domain.Interaction{{ArticleID: "a", Action: domain.ActionLike}}), 5 + 2 + 5 + 3},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.Score(tt.article, tt.uc), 1e-9)
		})
	}
}

func TestScorer_Properties(t *testing.T) {
	s := Scorer{Now: fixedNow}
	now := fixedNow()

	t.Run("approved never below pending", func(t *testing.T) {
		uc := domain.NewUserContext([]string{"tech"}, nil)
		for _, age := range []time.Duration{0, time.Hour, 10 * time.Hour, 1000 * time.Hour} {
			approved := domain.Article{ID: "a", Categories: []string{"tech"}, CreatedAt: now.Add(-age),
				ModerationStatus: domain.ModerationApproved}
			pending := approved
			pending.ModerationStatus = domain.ModerationPending
			assert.GreaterOrEqual(t, s.Score(approved, uc), s.Score(pending, uc))
		}
	})

	t.Run("each extra matching category adds exactly 2", func(t *testing.T) {
		article := domain.Article{ID: "a", Categories: []string{"a", "b", "c"}, CreatedAt: now.Add(-3 * time.Hour)}
		interests := []string{"zzz"}
		prev := s.Score(article, domain.NewUserContext(interests, nil))
		for _, c := range []string{"a", "b", "c"} {
			interests = append(interests, c)
			cur := s.Score(article, domain.NewUserContext(interests, nil))
			assert.InDelta(t, 2.0, cur-prev, 1e-9)
			prev = cur
		}
	})

	t.Run("recency bounded and decaying", func(t *testing.T) {
		uc := domain.NewUserContext(nil, nil)
		prev := 10.0
		for h := 1; h <= 1000; h *= 2 {
			v := s.Score(domain.Article{ID: "a", CreatedAt: now.Add(-time.Duration(h) * time.Hour)}, uc)
			assert.LessOrEqual(t, v, 10.0)
			assert.LessOrEqual(t, v, prev)
			prev = v
		}
		assert.Less(t, prev, 0.02)
	})

	t.Run("like bonus is binary", func(t *testing.T) {
		article := domain.Article{ID: "a"}
		liked := []domain.Interaction{{ArticleID: "a", Action: domain.ActionLike}, {ArticleID: "a", Action: domain.ActionLike}}
		assert.InDelta(t, 3.0, s.Score(article, domain.NewUserContext(nil, liked)), 1e-9)
		assert.InDelta(t, 0.0, s.Score(article, domain.NewUserContext(nil, nil)), 1e-9)
	})

	t.Run("category beats unrelated article", func(t *testing.T) {
		uc := domain.NewUserContext([]string{"tech"}, nil)
		a := domain.Article{ID: "A", Categories: []string{"tech", "ai"}, ModerationStatus: domain.ModerationApproved, CreatedAt: now}
		b := domain.Article{ID: "B", Categories: []string{"sports"}, ModerationStatus: domain.ModerationApproved, CreatedAt: now}
		assert.GreaterOrEqual(t, s.Score(a, uc)-s.Score(b, uc), 2.0)
	})
}

func TestScorer_DefaultClock(t *testing.T) {
	s := Scorer{}
	v := s.Score(domain.Article{ID: "a", CreatedAt: time.Now()}, domain.NewUserContext(nil, nil))
	assert.InDelta(t, 10.0, v, 1e-9)
}

func TestScorer_Rank(t *testing.T) {
	s := Scorer{Now: fixedNow}
	now := fixedNow()
	articles := []domain.Article{
		{ID: "old", CreatedAt: now.Add(-100 * time.Hour)},
		{ID: "tie1", ModerationStatus: domain.ModerationApproved},
		{ID: "top", ModerationStatus: domain.ModerationApproved, CreatedAt: now},
		{ID: "tie2", ModerationStatus: domain.ModerationApproved},
		{ID: "tie3", ModerationStatus: domain.ModerationApproved},
	}

	ranked := s.Rank(articles, domain.NewUserContext(nil, nil))
	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"top", "tie1", "tie2", "tie3", "old"}, ids)
	assert.InDelta(t, 15.0, ranked[0].Score, 1e-9)
	assert.Empty(t, s.Rank(nil, domain.NewUserContext(nil, nil)))
}
