package http

import (
	"errors"
	"fmt"
	"net/http"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (h *HttpAPIHandler) SetupChat(base *echo.Group) {
	base.POST("/chat", h.chat)
}

// sseWriter frames relayed payloads as "data: <payload>" lines and flushes
// each one so the client renders incrementally. Headers are written lazily on
// the first event, which keeps the JSON error path available until the stream
// actually starts.
type sseWriter struct {
	res   *echo.Response
	began bool
}

func (w *sseWriter) WriteEvent(payload []byte) error {
	if !w.began {
		header := w.res.Header()
		header.Set(echo.HeaderContentType, "text/plain; charset=utf-8")
		header.Set("Cache-Control", "no-cache")
		header.Set("Connection", "keep-alive")
		w.res.WriteHeader(http.StatusOK)
		w.began = true
	}

	if _, err := fmt.Fprintf(w.res, "data: %s\n", payload); err != nil {
		return err
	}
	w.res.Flush()
	return nil
}

func (h *HttpAPIHandler) chat(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.ChatRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Messages são obrigatórias"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Messages são obrigatórias"))
	}

	writer := &sseWriter{res: c.Response()}

	if err := h.service.ChatService.StreamChat(ctx, *req, writer); err != nil {
		var upstreamErr *repository.UpstreamError
		switch {
		case errors.Is(err, repository.ErrMissingAPIKey):
			h.log.ErrorContext(ctx, "chat relay has no provider credential configured")
			return c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse("API Key do Groq não configurada. Visite: https://console.groq.com/keys"))
		case errors.As(err, &upstreamErr):
			return c.JSON(upstreamErr.StatusCode,
				dto.NewErrorResponseWithDetails(fmt.Sprintf("Erro do Groq: %d", upstreamErr.StatusCode), upstreamErr.Body))
		default:
			h.log.ErrorContext(ctx, "chat request failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponseWithDetails("Erro interno do servidor", err.Error()))
		}
	}

	return nil
}
