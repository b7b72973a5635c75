package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/repository"
	"finance-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAIRepository struct {
	events   []string
	deltas   []string
	finalErr error
	preErr   error

	gotMessages []dto.ProviderMessage
}

func (f *fakeAIRepository) StreamChatCompletion(ctx context.Context, messages []dto.ProviderMessage, fn repository.StreamHandler) (string, error) {
	f.gotMessages = messages
	if f.preErr != nil {
		return "", f.preErr
	}

	var accumulated strings.Builder
	for i, ev := range f.events {
		delta := f.deltas[i]
		accumulated.WriteString(delta)
		if fn != nil {
			if err := fn([]byte(ev), delta); err != nil {
				return accumulated.String(), err
			}
		}
	}
	return accumulated.String(), f.finalErr
}

type captureStreamWriter struct {
	events []string
}

func (w *captureStreamWriter) WriteEvent(payload []byte) error {
	w.events = append(w.events, string(payload))
	return nil
}

func newTestChatService(t *testing.T, aiRepo repository.AIRepository) ChatService {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return NewChatService(log, aiRepo)
}

func chunkContent(t *testing.T, payload string) string {
	t.Helper()
	var chunk dto.ChatCompletionChunk
	require.NoError(t, json.Unmarshal([]byte(payload), &chunk))
	require.NotEmpty(t, chunk.Choices)
	return chunk.Choices[0].Delta.Content
}

func TestStreamChatRelaysEventsAndTerminates(t *testing.T) {
	aiRepo := &fakeAIRepository{
		events: []string{
			`{"choices":[{"delta":{"content":"Olá"}}]}`,
			`{"choices":[{"delta":{"content":", investidor"}}]}`,
		},
		deltas: []string{"Olá", ", investidor"},
	}
	w := &captureStreamWriter{}

	err := newTestChatService(t, aiRepo).StreamChat(context.Background(), dto.ChatRequest{
		Messages: []dto.ChatMessage{{Role: dto.RoleUser, Content: "oi"}},
	}, w)

	require.NoError(t, err)
	require.Len(t, w.events, 3)
	assert.Equal(t, aiRepo.events[0], w.events[0])
	assert.Equal(t, aiRepo.events[1], w.events[1])
	assert.Equal(t, "[DONE]", w.events[2])
}

func TestStreamChatPrependsAdvisorPersona(t *testing.T) {
	aiRepo := &fakeAIRepository{
		events: []string{`{"choices":[{"delta":{"content":"ok"}}]}`},
		deltas: []string{"ok"},
	}

	err := newTestChatService(t, aiRepo).StreamChat(context.Background(), dto.ChatRequest{
		Messages: []dto.ChatMessage{
			{Role: dto.RoleUser, Content: "primeira"},
			{Role: dto.RoleAssistant, Content: "resposta"},
			{Role: dto.RoleUser, Content: "segunda"},
		},
	}, &captureStreamWriter{})

	require.NoError(t, err)
	require.Len(t, aiRepo.gotMessages, 4)
	assert.Equal(t, dto.RoleSystem, aiRepo.gotMessages[0].Role)
	assert.Equal(t, advisorSystemPrompt, aiRepo.gotMessages[0].Content)
	assert.Equal(t, dto.RoleUser, aiRepo.gotMessages[1].Role)
	assert.Equal(t, "primeira", aiRepo.gotMessages[1].Content)
	assert.Equal(t, dto.RoleAssistant, aiRepo.gotMessages[2].Role)
	assert.Equal(t, "segunda", aiRepo.gotMessages[3].Content)
}

func TestStreamChatEmptyStreamFallback(t *testing.T) {
	aiRepo := &fakeAIRepository{}
	w := &captureStreamWriter{}

	err := newTestChatService(t, aiRepo).StreamChat(context.Background(), dto.ChatRequest{
		Messages: []dto.ChatMessage{{Role: dto.RoleUser, Content: "oi"}},
	}, w)

	require.NoError(t, err)
	require.Len(t, w.events, 2)
	assert.Equal(t, emptyStreamMessage, chunkContent(t, w.events[0]))
	assert.Equal(t, "[DONE]", w.events[1])
}

func TestStreamChatErrorBeforeFirstEvent(t *testing.T) {
	upstreamErr := &repository.UpstreamError{StatusCode: 401, Body: `{"error":"invalid api key"}`}
	aiRepo := &fakeAIRepository{preErr: upstreamErr}
	w := &captureStreamWriter{}

	err := newTestChatService(t, aiRepo).StreamChat(context.Background(), dto.ChatRequest{
		Messages: []dto.ChatMessage{{Role: dto.RoleUser, Content: "oi"}},
	}, w)

	var gotUpstream *repository.UpstreamError
	require.ErrorAs(t, err, &gotUpstream)
	assert.Equal(t, 401, gotUpstream.StatusCode)
	assert.Empty(t, w.events, "a pre-stream failure must leave the response untouched")
}

func TestStreamChatErrorMidStream(t *testing.T) {
	aiRepo := &fakeAIRepository{
		events:   []string{`{"choices":[{"delta":{"content":"parcial"}}]}`},
		deltas:   []string{"parcial"},
		finalErr: errors.New("connection reset"),
	}
	w := &captureStreamWriter{}

	err := newTestChatService(t, aiRepo).StreamChat(context.Background(), dto.ChatRequest{
		Messages: []dto.ChatMessage{{Role: dto.RoleUser, Content: "oi"}},
	}, w)

	require.NoError(t, err)
	require.Len(t, w.events, 3)
	assert.Equal(t, aiRepo.events[0], w.events[0])
	assert.Equal(t, streamErrorMessage, chunkContent(t, w.events[1]))
	assert.Equal(t, "[DONE]", w.events[2])
}

func TestStreamChatCanceledByCaller(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	aiRepo := &fakeAIRepository{
		events:   []string{`{"choices":[{"delta":{"content":"parcial"}}]}`},
		deltas:   []string{"parcial"},
		finalErr: context.Canceled,
	}
	w := &captureStreamWriter{}

	svc := newTestChatService(t, aiRepo)
	cancel()
	err := svc.StreamChat(ctx, dto.ChatRequest{
		Messages: []dto.ChatMessage{{Role: dto.RoleUser, Content: "oi"}},
	}, w)

	require.NoError(t, err)
	// no synthetic error message for a client that already went away
	for _, ev := range w.events[1:] {
		assert.NotContains(t, ev, streamErrorMessage)
	}
}
