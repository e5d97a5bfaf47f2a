package translate

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newsfeed/pkg/config"
)

// default system prompt for translation
const defaultSystemPrompt = `You are a professional news translator.
Translate the text provided by the user into the language given by its ISO 639-1 code.
Keep names, numbers, and quotes accurate. Preserve paragraph breaks.
Reply with the translated text only, without explanations, notes, or markup.`

var errStopRetry = errors.New("stop retry")

// permanentError is a failure retrying can't fix
type permanentError struct {
	err error
}

func (e *permanentError) Error() string        { return e.err.Error() }
func (e *permanentError) Unwrap() error        { return e.err }
func (e *permanentError) Is(target error) bool { return target == errStopRetry }

// LLM translates text with an OpenAI-compatible chat completion API
type LLM struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
	policy    *bluemonday.Policy
	retryBase time.Duration
}

// NewLLM creates a new LLM translator
func NewLLM(cfg config.LLMConfig) *LLM {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}

	return &LLM{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
		policy:    bluemonday.StrictPolicy(),
		retryBase: 500 * time.Millisecond,
	}
}

// Translate translates text into targetLang. Empty text is returned without a request.
func (l *LLM) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	req := openai.ChatCompletionRequest{
		Model:       l.config.Model,
		Temperature: float32(l.config.Temperature),
		MaxTokens:   l.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: l.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Target language: %s\n\n%s", targetLang, text)},
		},
	}

	var result string
	attempt := 0
	retrier := repeater.NewBackoff(l.config.MaxRetries, l.retryBase, repeater.WithMaxDelay(5*time.Second))
	err := retrier.Do(ctx, func() error {
		attempt++
		resp, err := l.client.CreateChatCompletion(ctx, req)
		if err != nil {
			if !retryable(err) {
				return &permanentError{err: fmt.Errorf("llm request failed: %w", err)}
			}
			lgr.Printf("[DEBUG] translation to %s failed, attempt %d: %v", targetLang, attempt, err)
			return fmt.Errorf("llm request failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return errors.New("no response from llm")
		}
		result = l.clean(resp.Choices[0].Message.Content)
		if result == "" {
			return errors.New("empty translation from llm")
		}
		return nil
	}, errStopRetry)
	if err != nil {
		return "", fmt.Errorf("translate to %s: %w", targetLang, err)
	}
	return result, nil
}

// clean strips markup the model may add and restores plain text entities
func (l *LLM) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(l.policy.Sanitize(s)))
}

// retryable reports whether a request error may succeed on another attempt
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests || reqErr.HTTPStatusCode >= 500
	}
	return true
}
