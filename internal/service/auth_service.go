package service

import (
	"context"
	"fmt"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/model"
	"finance-dashboard/internal/repository"
	"finance-dashboard/pkg/logger"
	"finance-dashboard/pkg/token"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	log      *logger.Logger
	userRepo repository.UserRepository
	tokens   *token.Service
}

func NewAuthService(log *logger.Logger, userRepo repository.UserRepository, tokens *token.Service) AuthService {
	return &authService{
		log:      log,
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	// Duplicate emails are rejected by the unique index, not a pre-check.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	signed, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to issue token after registration", zap.Error(err))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.AuthResponse{
		User:    dto.NewUserPayload(user),
		Token:   signed,
		Message: "Usuário criado com sucesso",
	}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to issue token on login", zap.Error(err))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.AuthResponse{
		User:  dto.NewUserPayload(user),
		Token: signed,
	}, nil
}
