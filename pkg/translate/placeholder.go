// Package translate provides text translators used by the feed assembler
package translate

import (
	"context"
	"fmt"
)

// Placeholder marks text as translated without calling any service.
// Text requested in the source language is returned as is.
type Placeholder struct {
	Source string // defaults to "en"
}

// Translate returns text prefixed with the target language marker
func (p Placeholder) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	source := p.Source
	if source == "" {
		source = "en"
	}
	if targetLang == source {
		return text, nil
	}
	return fmt.Sprintf("[%s translation] %s", targetLang, text), nil
}
