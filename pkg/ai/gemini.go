package ai

import (
	"context"
	stdErrors "errors"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
	"github.com/johnquangdev/meeting-reporter/pkg/config"
)

// ErrNoContent is returned when there is nothing to summarize. No remote
// call is made in that case.
var ErrNoContent = stdErrors.New("no content provided for summarization")

// ErrMissingAPIKey is returned when no Gemini API key is configured.
var ErrMissingAPIKey = stdErrors.New("GEMINI_API_KEY is not set")

// DefaultInstruction is used when a caller does not supply a segment
// instruction.
const DefaultInstruction = `You are an assistant summarizing a professional meeting. Below is the full transcript. Your task is to:
1. Provide a clear, concise summary of the main discussion points.
2. Identify any decisions made or actions assigned.
3. List out follow-up tasks, if any, along with the responsible persons.
4. Include the meeting date and participants if available.
Keep the tone professional and suitable for email or documentation. Use bullet points where helpful.`

// Summarizer produces a summary of a piece of transcript text following an
// instruction. Implementations must be fail-soft: a failure comes back
// inside the SummaryResult, never as a panic, so one bad segment degrades
// only its own report section.
type Summarizer interface {
	Summarize(ctx context.Context, text, instruction string) entities.SummaryResult
}

// GeminiClient calls the Gemini text-generation API for segment summaries.
// Every call is independent and synchronous: no retry, no backoff, no
// caching.
type GeminiClient struct {
	apiKey  string
	model   string
	timeout time.Duration
}

// Generation parameters are fixed and deterministic-leaning so tests can
// mock the gateway with a canned response.
const (
	genTemperature     = 0.5
	genTopP            = 1
	genTopK            = 1
	genMaxOutputTokens = 256
)

// NewGeminiClient creates a Gemini client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewGeminiClient(cfg *config.GeminiConfig) *GeminiClient {
	var apiKey, model string
	timeout := 60 * time.Second

	if cfg != nil {
		apiKey = cfg.APIKey
		model = cfg.Model
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
	}
}

// Summarize sends text plus an instruction to Gemini and returns the
// generated summary. Empty or whitespace-only text short-circuits without a
// remote call.
func (g *GeminiClient) Summarize(ctx context.Context, text, instruction string) entities.SummaryResult {
	if strings.TrimSpace(text) == "" {
		return entities.SummaryResult{Err: ErrNoContent}
	}
	if g.apiKey == "" {
		return entities.SummaryResult{Err: ErrMissingAPIKey}
	}
	if instruction == "" {
		instruction = DefaultInstruction
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return entities.SummaryResult{Err: fmt.Errorf("create gemini client: %w", err)}
	}

	prompt := instruction + "\n\n---\n\n" + text

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](genTemperature),
		TopP:            genai.Ptr[float32](genTopP),
		TopK:            genai.Ptr[float32](genTopK),
		MaxOutputTokens: genMaxOutputTokens,
	})
	if err != nil {
		return entities.SummaryResult{Err: fmt.Errorf("generate content: %w", err)}
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return entities.SummaryResult{Err: stdErrors.New("empty response from gemini")}
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	summary := strings.TrimSpace(sb.String())
	if summary == "" {
		return entities.SummaryResult{Err: stdErrors.New("empty response from gemini")}
	}
	return entities.SummaryResult{Text: summary}
}
