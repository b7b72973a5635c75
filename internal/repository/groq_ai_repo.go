package repository

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"finance-dashboard/config"
	"finance-dashboard/internal/dto"
	"finance-dashboard/pkg/httpclient"
	"finance-dashboard/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	streamDataPrefix = "data: "
	streamDoneMarker = "[DONE]"

	// generous line buffer: provider events carry whole JSON objects per line
	maxStreamLineSize = 1024 * 1024
)

// StreamHandler receives each well-formed provider event as it arrives.
// payload is the raw JSON after the "data: " prefix, delta the incremental
// content fragment parsed from it (may be empty for bookkeeping events).
// Returning an error stops the stream.
type StreamHandler func(payload []byte, delta string) error

// AIRepository is the client side of the streaming chat relay: it forwards a
// conversation to the completion provider and demultiplexes the incremental
// event stream.
type AIRepository interface {
	StreamChatCompletion(ctx context.Context, messages []dto.ProviderMessage, fn StreamHandler) (string, error)
}

// groqAIRepository talks to the Groq OpenAI-compatible completions endpoint.
type groqAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	httpClient     httpclient.HTTPClient
	requestLimiter *rate.Limiter
}

func NewGroqAIRepository(cfg *config.Config, log *logger.Logger) AIRepository {
	perMinute := cfg.Groq.MaxRequestPerMinute
	if perMinute <= 0 {
		perMinute = 1
	}
	requestLimiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)

	return &groqAIRepository{
		cfg:            cfg,
		logger:         log,
		httpClient:     httpclient.New(cfg.Groq.BaseURL, cfg.Groq.Timeout, cfg.Groq.APIKey),
		requestLimiter: requestLimiter,
	}
}

// StreamChatCompletion issues a streaming completion request and reads the
// response body incrementally, one event line at a time. It returns the
// accumulated assistant text. Malformed event lines are logged and skipped;
// they are not fatal since providers may interleave keep-alive lines.
func (r *groqAIRepository) StreamChatCompletion(ctx context.Context, messages []dto.ProviderMessage, fn StreamHandler) (string, error) {
	if r.cfg.Groq.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for provider request limit: %w", err)
	}

	payload := dto.ChatCompletionRequest{
		Model:       r.cfg.Groq.Model,
		Messages:    messages,
		Stream:      true,
		Temperature: r.cfg.Groq.Temperature,
		MaxTokens:   r.cfg.Groq.MaxTokens,
	}

	resp, err := r.httpClient.PostStream(ctx, "/chat/completions", payload, nil)
	if err != nil {
		return "", fmt.Errorf("failed to send request to groq: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		r.logger.ErrorContext(ctx, "groq returned non-OK status",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var accumulated strings.Builder

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxStreamLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, streamDataPrefix) {
			// blank separators and comment/keep-alive lines
			continue
		}

		data := strings.TrimPrefix(line, streamDataPrefix)
		if data == streamDoneMarker {
			break
		}

		var chunk dto.ChatCompletionChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			r.logger.WarnContext(ctx, "skipping malformed stream line", zap.String("line", line))
			continue
		}

		var delta string
		if len(chunk.Choices) > 0 {
			delta = chunk.Choices[0].Delta.Content
		}
		if delta != "" {
			accumulated.WriteString(delta)
		}

		if fn != nil {
			if err := fn([]byte(data), delta); err != nil {
				return accumulated.String(), err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return accumulated.String(), ctx.Err()
		}
		return accumulated.String(), fmt.Errorf("failed to read groq stream: %w", err)
	}

	return accumulated.String(), nil
}
