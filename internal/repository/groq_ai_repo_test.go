package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-dashboard/config"
	"finance-dashboard/internal/dto"
	"finance-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGroqRepo(t *testing.T, baseURL, apiKey string) AIRepository {
	t.Helper()

	log, err := logger.New("error", "console")
	require.NoError(t, err)

	cfg := &config.Config{
		Groq: config.GroqConfig{
			APIKey:              apiKey,
			BaseURL:             baseURL,
			Model:               "llama3-8b-8192",
			Timeout:             5 * time.Second,
			Temperature:         0.7,
			MaxTokens:           100,
			MaxRequestPerMinute: 600,
		},
	}
	return NewGroqAIRepository(cfg, log)
}

func sseServer(t *testing.T, lines []string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		flusher, ok := w.(http.Flusher)
		require.True(t, ok)

		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		for _, line := range lines {
			fmt.Fprintf(w, "%s\n", line)
			flusher.Flush()
		}
	}))
}

func TestStreamChatCompletionAccumulatesFragments(t *testing.T) {
	ts := sseServer(t, []string{
		`data: {"choices":[{"delta":{"content":"Ol"}}]}`,
		``,
		`data: {"choices":[{"delta":{"content":"á"}}]}`,
		`data: [DONE]`,
	})
	defer ts.Close()

	repo := newTestGroqRepo(t, ts.URL, "test-key")

	var payloads [][]byte
	var deltas []string
	accumulated, err := repo.StreamChatCompletion(context.Background(),
		[]dto.ProviderMessage{{Role: dto.RoleUser, Content: "Olá?"}},
		func(payload []byte, delta string) error {
			payloads = append(payloads, payload)
			deltas = append(deltas, delta)
			return nil
		})

	require.NoError(t, err)
	assert.Equal(t, "Olá", accumulated)
	assert.Equal(t, []string{"Ol", "á"}, deltas)
	require.Len(t, payloads, 2)
	assert.JSONEq(t, `{"choices":[{"delta":{"content":"Ol"}}]}`, string(payloads[0]))
}

func TestStreamChatCompletionSkipsMalformedLines(t *testing.T) {
	ts := sseServer(t, []string{
		`data: {"choices":[{"delta":{"content":"antes"}}]}`,
		`data: not-json`,
		`: keep-alive comment`,
		`data: {"choices":[{"delta":{"content":" depois"}}]}`,
		`data: [DONE]`,
	})
	defer ts.Close()

	repo := newTestGroqRepo(t, ts.URL, "test-key")

	var forwarded int
	accumulated, err := repo.StreamChatCompletion(context.Background(),
		[]dto.ProviderMessage{{Role: dto.RoleUser, Content: "oi"}},
		func(payload []byte, delta string) error {
			forwarded++
			return nil
		})

	require.NoError(t, err)
	assert.Equal(t, "antes depois", accumulated)
	assert.Equal(t, 2, forwarded)
}

func TestStreamChatCompletionUpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"invalid api key"}}`)
	}))
	defer ts.Close()

	repo := newTestGroqRepo(t, ts.URL, "test-key")

	called := false
	accumulated, err := repo.StreamChatCompletion(context.Background(),
		[]dto.ProviderMessage{{Role: dto.RoleUser, Content: "oi"}},
		func(payload []byte, delta string) error {
			called = true
			return nil
		})

	require.Error(t, err)
	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.StatusCode)
	assert.Empty(t, accumulated)
	assert.False(t, called, "handler must not run when the upstream call fails before streaming")
}

func TestStreamChatCompletionMissingAPIKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called without a configured credential")
	}))
	defer ts.Close()

	repo := newTestGroqRepo(t, ts.URL, "")

	_, err := repo.StreamChatCompletion(context.Background(),
		[]dto.ProviderMessage{{Role: dto.RoleUser, Content: "oi"}}, nil)

	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestStreamChatCompletionHandlerStopsStream(t *testing.T) {
	ts := sseServer(t, []string{
		`data: {"choices":[{"delta":{"content":"um"}}]}`,
		`data: {"choices":[{"delta":{"content":"dois"}}]}`,
		`data: [DONE]`,
	})
	defer ts.Close()

	repo := newTestGroqRepo(t, ts.URL, "test-key")

	stop := errors.New("consumer went away")
	accumulated, err := repo.StreamChatCompletion(context.Background(),
		[]dto.ProviderMessage{{Role: dto.RoleUser, Content: "oi"}},
		func(payload []byte, delta string) error {
			return stop
		})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, "um", accumulated)
}
