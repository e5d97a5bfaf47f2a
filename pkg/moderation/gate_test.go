package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/newsfeed/pkg/domain"
)

func TestGate_Moderate(t *testing.T) {
	gate := NewGate(nil)

	tbl := []struct {
		name     string
		title    string
		content  string
		verified bool
		want     domain.ModerationResult
	}{
		{"unverified clean", "Local news", "Nothing special", false,
			domain.ModerationResult{Status: domain.ModerationPending, Notes: "Awaiting manual review"}},
		{"unverified with banned term", "Hate speech", "content", false,
			domain.ModerationResult{Status: domain.ModerationPending, Notes: "Awaiting manual review"}},
		{"verified clean", "Local news", "Nothing special", true,
			domain.ModerationResult{Status: domain.ModerationApproved, Notes: "Auto-approved"}},
		{"verified hate in title", "Hate speech", "content", true,
			domain.ModerationResult{Status: domain.ModerationRejected, Notes: "Contains flagged terms: hate"}},
		{"verified substring match", "Clean", "a whatever-hateful remark", true,
			domain.ModerationResult{Status: domain.ModerationRejected, Notes: "Contains flagged terms: hate"}},
		{"verified multiple sorted", "TERROR alert", "this is FAKE, and hate", true,
			domain.ModerationResult{Status: domain.ModerationRejected, Notes: "Contains flagged terms: fake, hate, terror"}},
		{"verified empty submission", "", "", true,
			domain.ModerationResult{Status: domain.ModerationApproved, Notes: "Auto-approved"}},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.Moderate(tt.title, tt.content, tt.verified))
		})
	}
}

func TestGate_TitleContentBoundary(t *testing.T) {
	gate := NewGate([]string{"ab"})
	// title and content are joined with a newline, a term can't span them
	assert.Equal(t, domain.ModerationApproved, gate.Moderate("a", "b", true).Status)
	assert.Equal(t, domain.ModerationRejected, gate.Moderate("xab", "", true).Status)
}

func TestNewGate(t *testing.T) {
	tbl := []struct {
		name     string
		keywords []string
		want     []string
	}{
		{"defaults", nil, []string{"fake", "terror", "hate"}},
		{"normalized", []string{" Spam ", "SCAM", "spam", ""}, []string{"spam", "scam"}},
		{"disabled", []string{}, nil},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewGate(tt.keywords).Keywords())
		})
	}
}

func TestGate_NoKeywords(t *testing.T) {
	gate := NewGate([]string{})
	res := gate.Moderate("fake terror hate", "", true)
	assert.Equal(t, domain.ModerationApproved, res.Status)
	assert.Equal(t, "Auto-approved", res.Notes)
}
