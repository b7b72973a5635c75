package service

import (
	"context"
	"encoding/json"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/repository"
	"finance-dashboard/pkg/logger"

	"go.uber.org/zap"
)

const (
	doneEvent = "[DONE]"

	emptyStreamMessage = "Desculpe, não consegui gerar uma resposta agora. Tente novamente em instantes."
	streamErrorMessage = "Desculpe, ocorreu um erro ao processar sua solicitação. Tente novamente mais tarde."
)

// StreamWriter delivers one relayed event payload to the caller. The
// delivery layer frames each payload as a "data: <payload>" line and flushes
// it immediately.
type StreamWriter interface {
	WriteEvent(payload []byte) error
}

// ChatService relays a conversation to the completion provider and streams
// the incremental response back through a StreamWriter. Each invocation is a
// fully isolated pipeline; there is no shared state between in-flight
// streams.
type ChatService interface {
	StreamChat(ctx context.Context, req dto.ChatRequest, w StreamWriter) error
}

type chatService struct {
	log    *logger.Logger
	aiRepo repository.AIRepository
}

func NewChatService(log *logger.Logger, aiRepo repository.AIRepository) ChatService {
	return &chatService{
		log:    log,
		aiRepo: aiRepo,
	}
}

// StreamChat forwards the conversation (with the advisor persona prepended)
// upstream and relays each provider event to w in arrival order, always
// terminating the stream with a [DONE] event once any content has been
// written. Errors that occur before the first event reach the caller as a
// plain error so the delivery layer can still answer with a JSON status;
// errors after that point are reported inline as a synthetic assistant
// message, since the response is already streaming.
func (s *chatService) StreamChat(ctx context.Context, req dto.ChatRequest, w StreamWriter) error {
	messages := make([]dto.ProviderMessage, 0, len(req.Messages)+1)
	messages = append(messages, dto.ProviderMessage{Role: dto.RoleSystem, Content: advisorSystemPrompt})
	for _, m := range req.Messages {
		messages = append(messages, dto.ProviderMessage{Role: m.Role, Content: m.Content})
	}

	wrote := false
	forward := func(payload []byte, delta string) error {
		if err := w.WriteEvent(payload); err != nil {
			return err
		}
		wrote = true
		return nil
	}

	accumulated, err := s.aiRepo.StreamChatCompletion(ctx, messages, forward)

	switch {
	case err != nil && !wrote:
		return err
	case err != nil && ctx.Err() != nil:
		// caller went away mid-stream; upstream read already stopped
		s.log.InfoContext(ctx, "chat stream canceled by caller", zap.Error(err))
		return nil
	case err != nil:
		s.log.ErrorContext(ctx, "chat stream interrupted", zap.Error(err))
		if werr := s.writeAssistantEvent(w, streamErrorMessage); werr != nil {
			return nil
		}
	case accumulated == "":
		s.log.WarnContext(ctx, "chat stream produced no usable content")
		if werr := s.writeAssistantEvent(w, emptyStreamMessage); werr != nil {
			return nil
		}
	}

	if err := w.WriteEvent([]byte(doneEvent)); err != nil {
		s.log.DebugContext(ctx, "failed to write stream terminator", zap.Error(err))
	}
	return nil
}

// writeAssistantEvent emits a synthetic provider-shaped chunk so clients
// render fallback and error text through the same path as real content.
func (s *chatService) writeAssistantEvent(w StreamWriter, content string) error {
	chunk := dto.ChatCompletionChunk{
		Choices: []dto.ChunkChoice{{Delta: dto.ChunkDelta{Content: content}}},
	}
	payload, err := json.Marshal(chunk)
	if err != nil {
		return err
	}
	return w.WriteEvent(payload)
}
