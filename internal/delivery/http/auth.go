package http

import (
	"errors"
	"net/http"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/repository"
	"finance-dashboard/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (h *HttpAPIHandler) SetupAuth(base *echo.Group) {
	authGroup := base.Group("/auth")
	authGroup.POST("/register", h.register)
	authGroup.POST("/login", h.login)
}

func (h *HttpAPIHandler) register(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.RegisterRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Requisição inválida"))
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Nome, email e senha são obrigatórios"))
	}
	if len(req.Password) < 6 {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Senha deve ter pelo menos 6 caracteres"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email inválido"))
	}

	resp, err := h.service.AuthService.Register(ctx, *req)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email já está em uso"))
		}
		h.log.ErrorContext(ctx, "registration failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Erro interno do servidor"))
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *HttpAPIHandler) login(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.LoginRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Requisição inválida"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email e senha são obrigatórios"))
	}

	resp, err := h.service.AuthService.Login(ctx, *req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Credenciais inválidas"))
		}
		h.log.ErrorContext(ctx, "login failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Erro interno do servidor"))
	}

	return c.JSON(http.StatusOK, resp)
}
