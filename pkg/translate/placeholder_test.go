package translate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder_Translate(t *testing.T) {
	tbl := []struct {
		name   string
		source string
		text   string
		lang   string
		want   string
	}{
		{"default source", "", "Hello", "en", "Hello"},
		{"to spanish", "", "Hello", "es", "[es translation] Hello"},
		{"custom source", "de", "Hallo", "de", "Hallo"},
		{"custom source other target", "de", "Hallo", "en", "[en translation] Hallo"},
		{"empty text", "", "", "fr", "[fr translation] "},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Placeholder{Source: tt.source}.Translate(context.Background(), tt.text, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestPlaceholder_Deterministic(t *testing.T) {
	p := Placeholder{}
	a, err := p.Translate(context.Background(), "Breaking news", "ja")
	require.NoError(t, err)
	b, err := p.Translate(context.Background(), "Breaking news", "ja")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPlaceholder_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Placeholder{}.Translate(ctx, "text", "es")
	require.ErrorIs(t, err, context.Canceled)
}
