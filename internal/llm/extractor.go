// Package llm provides the optional LLM-backed keyword extractor, the
// richer alternative to the built-in heuristic. It is selected at
// configuration time; runs using it trade reproducibility for better
// keyword candidates.
package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/553059210/Exam-gen/internal/model"
)

const extractorPrompt = "从下面的法律条文中提取名词短语关键词，每行一个，不要编号，不要解释：\n\n"

// Extractor extracts noun-phrase keywords through an OpenAI-compatible
// chat endpoint. Every failure degrades to an empty keyword list so
// downstream generation simply produces fewer keyword questions.
type Extractor struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

// NewExtractor creates an LLM extractor from config. The API key is
// required; base_url supports OpenAI-compatible local endpoints.
func NewExtractor(cfg model.LLMConfig) (*Extractor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm extractor requires an API key")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	mdl := cfg.Model
	if mdl == "" {
		mdl = openai.GPT4oMini
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Extractor{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   mdl,
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}, nil
}

// Name returns the extractor name
func (e *Extractor) Name() string {
	return "openai"
}

// Nouns extracts keyword candidates from one article text. It never
// fails: rate-limit, timeout and API errors all return an empty slice.
func (e *Extractor) Nouns(text string) []string {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	if err := e.limiter.Wait(ctx); err != nil {
		return nil
	}

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: extractorPrompt + text,
			},
		},
		MaxTokens:   300,
		Temperature: 0,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: keyword extraction failed, falling back to no nouns: %v\n", err)
		return nil
	}
	if len(resp.Choices) == 0 {
		return nil
	}

	return parseKeywords(resp.Choices[0].Message.Content)
}

// parseKeywords splits the model output into clean keyword candidates
func parseKeywords(content string) []string {
	fields := strings.FieldsFunc(content, func(r rune) bool {
		return r == '\n' || r == ',' || r == '，' || r == '、'
	})

	var keywords []string
	for _, f := range fields {
		kw := strings.TrimSpace(strings.Trim(f, "-*0123456789. "))
		if len([]rune(kw)) >= 2 {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
