package service

import (
	"context"
	"time"

	"geoportal/internal/cache"
	"geoportal/internal/repository"
)

const (
	userCountCacheKey = "users:count"
	userCountCacheTTL = 5 * time.Minute
)

// UserService exposes read-only user operations. Users themselves are
// managed out of band by seeding.
type UserService interface {
	Count(ctx context.Context) (int64, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) Count(ctx context.Context) (int64, error) {
	var cached int64
	if s.cache.GetJSON(ctx, userCountCacheKey, &cached) {
		return cached, nil
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}

	s.cache.SetJSON(ctx, userCountCacheKey, count, userCountCacheTTL)
	return count, nil
}
