package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/promptly-social/activity-analyzer/pkg/config"
	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

// chatProvider implements the analysis operations over an OpenAI-compatible
// chat completion endpoint. The concrete providers differ only in client
// construction.
type chatProvider struct {
	client *openai.Client
	cfg    config.ProviderConfig
}

// OpenAIProvider talks to the OpenAI API or any server speaking its protocol
type OpenAIProvider struct {
	chatProvider
}

// NewOpenAIProvider creates a provider for an OpenAI-compatible endpoint
func NewOpenAIProvider(cfg config.ProviderConfig) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return &OpenAIProvider{chatProvider{client: openai.NewClientWithConfig(clientConfig), cfg: cfg}}
}

// openRouterBaseURL is the default endpoint for the OpenRouter aggregator
const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider talks to OpenRouter, which proxies many upstream models
// behind the OpenAI protocol
type OpenRouterProvider struct {
	chatProvider
}

// NewOpenRouterProvider creates a provider for the OpenRouter API
func NewOpenRouterProvider(cfg config.ProviderConfig) *OpenRouterProvider {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = openRouterBaseURL
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return &OpenRouterProvider{chatProvider{client: openai.NewClientWithConfig(clientConfig), cfg: cfg}}
}

// Name returns the configured provider identifier
func (p *chatProvider) Name() string {
	return p.cfg.Name
}

// AnalyzeWritingStyle derives a writing-style profile from content samples
func (p *chatProvider) AnalyzeWritingStyle(ctx context.Context, content []string, existingAnalysis string) (string, error) {
	var sb strings.Builder
	if existingAnalysis != "" {
		sb.WriteString("Existing writing style analysis:\n")
		sb.WriteString(existingAnalysis)
		sb.WriteString("\n\n")
	}
	sb.WriteString("Writing samples:\n\n")
	writeSamples(&sb, content)

	return p.complete(ctx, "writing_style", writingStyleSystemPrompt, sb.String(), false)
}

// AnalyzeTopicsOfInterest derives a bounded topic list from content samples
func (p *chatProvider) AnalyzeTopicsOfInterest(ctx context.Context, content []string) ([]domain.TopicInterest, error) {
	var sb strings.Builder
	sb.WriteString("Extract topics of interest from these samples:\n\n")
	writeSamples(&sb, content)

	resp, err := p.complete(ctx, "topics_of_interest", topicsSystemPrompt, sb.String(), true)
	if err != nil {
		return nil, err
	}

	topics, err := parseTopics(resp)
	if err != nil {
		// degraded but usable: derive a plain topic list from the text
		return extractTopicsFromText(resp), nil
	}
	return topics, nil
}

// UpdateUserBio refreshes the bio based on recent content
func (p *chatProvider) UpdateUserBio(ctx context.Context, currentBio string, recentContent []string) (string, error) {
	var sb strings.Builder
	sb.WriteString("Current bio:\n")
	sb.WriteString(currentBio)
	sb.WriteString("\n\nRecent content:\n\n")
	writeSamples(&sb, recentContent)

	return p.complete(ctx, "bio_update", bioSystemPrompt, sb.String(), false)
}

// AnalyzeNegativePatterns summarizes rejection patterns. Explicit negative
// feedback is presented separately from silent dismissals.
func (p *chatProvider) AnalyzeNegativePatterns(ctx context.Context, dismissedPosts, feedbackPosts []string) (string, error) {
	var sb strings.Builder
	sb.WriteString("Posts dismissed without comment:\n\n")
	if len(dismissedPosts) == 0 {
		sb.WriteString("(none)\n\n")
	} else {
		writeSamples(&sb, dismissedPosts)
	}
	sb.WriteString("Posts with explicit negative feedback:\n\n")
	if len(feedbackPosts) == 0 {
		sb.WriteString("(none)\n")
	} else {
		writeSamples(&sb, feedbackPosts)
	}

	return p.complete(ctx, "negative_analysis", negativeSystemPrompt, sb.String(), false)
}

// MakeAnalysisRequest sends a raw prompt/content pair
func (p *chatProvider) MakeAnalysisRequest(ctx context.Context, prompt, content string, analysisType domain.AnalysisType) (string, error) {
	return p.complete(ctx, string(analysisType), prompt, content, false)
}

// HealthCheck probes the provider with a canned prompt and checks the
// acknowledgement token
func (p *chatProvider) HealthCheck(ctx context.Context) error {
	resp, err := p.complete(ctx, "health_check", "You are a health probe responder.", healthPrompt, false)
	if err != nil {
		return err
	}
	if !strings.Contains(strings.ToUpper(resp), healthAckToken) {
		return &ProviderError{Provider: p.cfg.Name, Op: "health_check",
			Err: fmt.Errorf("unexpected probe response %q", truncate(resp, 60))}
	}
	return nil
}

// complete sends one chat completion request and returns the text content
func (p *chatProvider) complete(ctx context.Context, op, systemMsg, userMsg string, jsonMode bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       p.cfg.Model,
		Temperature: float32(p.cfg.Temperature),
		MaxTokens:   p.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: userMsg},
		},
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", p.classifyErr(op, err)
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: p.cfg.Name, Op: op, Err: fmt.Errorf("no choices in response")}
	}
	return resp.Choices[0].Message.Content, nil
}

// classifyErr maps transport/API failures into the package error taxonomy
func (p *chatProvider) classifyErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Provider: p.cfg.Name, Err: err}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests && isQuotaMessage(apiErr.Message):
			return &QuotaError{Provider: p.cfg.Name, Err: err}
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return &RateLimitError{Provider: p.cfg.Name, RetryAfter: parseRetryAfter(apiErr.Message), Err: err}
		case apiErr.HTTPStatusCode == http.StatusRequestTimeout || apiErr.HTTPStatusCode == http.StatusGatewayTimeout:
			return &TimeoutError{Provider: p.cfg.Name, Err: err}
		}
	}

	return &ProviderError{Provider: p.cfg.Name, Op: op, Err: err}
}

// isQuotaMessage distinguishes exhausted allowance from momentary throttling
func isQuotaMessage(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "quota") ||
		strings.Contains(lower, "insufficient") ||
		strings.Contains(lower, "billing") ||
		strings.Contains(lower, "exceeded your current")
}

// parseRetryAfter extracts a "try again in Ns" style hint from an API message
func parseRetryAfter(msg string) time.Duration {
	lower := strings.ToLower(msg)
	idx := strings.Index(lower, "try again in ")
	if idx == -1 {
		return 0
	}
	rest := lower[idx+len("try again in "):]
	token := rest
	if sp := strings.IndexByte(rest, ' '); sp != -1 {
		token = rest[:sp]
	}
	d, err := time.ParseDuration(strings.TrimRight(token, "."))
	if err != nil {
		return 0
	}
	return d
}

// writeSamples appends numbered content samples, each capped to keep prompts bounded
func writeSamples(sb *strings.Builder, samples []string) {
	for i, s := range samples {
		fmt.Fprintf(sb, "%d. %s\n\n", i+1, truncate(s, 1000))
	}
}

// truncate limits s to n characters
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
