package usecase

import (
	"context"
	"fmt"

	"elaundry/internal/data/repository"
	"elaundry/internal/dto/response"

	"go.uber.org/zap"
)

type SessionService interface {
	Current(ctx context.Context, token string) (*response.SessionResponse, error)
	Navigation(ctx context.Context, token string) ([]response.NavEntry, error)
}

type sessionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSessionService(repo *repository.Repository, log *zap.Logger) SessionService {
	return &sessionService{repo: repo, log: log}
}

func (s *sessionService) Current(ctx context.Context, token string) (*response.SessionResponse, error) {
	sess, err := LoadSessionContext(ctx, s.repo.Session, token)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	return &response.SessionResponse{
		UserID:   sess.UserID(),
		ShopID:   sess.ShopID(),
		Role:     sess.Role(),
		Username: sess.Username(),
	}, nil
}

func (s *sessionService) Navigation(ctx context.Context, token string) ([]response.NavEntry, error) {
	sess, err := LoadSessionContext(ctx, s.repo.Session, token)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	return NavigationFor(sess.Role()), nil
}
