package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/servicehub/internal/persistence"
)

const presenceKeyPrefix = "presence:online:"

// PresenceService tracks ephemeral online flags in Redis. Flags expire on
// their own; nothing here is durable and nothing depends on it for
// correctness of the lifecycle or rating invariants.
type PresenceService struct {
	redis  *persistence.Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewPresenceService constructs the service.
func NewPresenceService(redis *persistence.Redis, ttl time.Duration, logger *zap.Logger) *PresenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PresenceService{redis: redis, ttl: ttl, logger: logger}
}

// SetOnline marks the user online until the TTL lapses or SetOffline clears it.
func (s *PresenceService) SetOnline(ctx context.Context, userID string) {
	if s.redis == nil || s.redis.Client == nil {
		return
	}
	if err := s.redis.Client.Set(ctx, presenceKeyPrefix+userID, "1", s.ttl).Err(); err != nil {
		s.logger.Warn("failed to set online flag", zap.String("user_id", userID), zap.Error(err))
	}
}

// SetOffline clears the user's online flag.
func (s *PresenceService) SetOffline(ctx context.Context, userID string) {
	if s.redis == nil || s.redis.Client == nil {
		return
	}
	if err := s.redis.Client.Del(ctx, presenceKeyPrefix+userID).Err(); err != nil {
		s.logger.Warn("failed to clear online flag", zap.String("user_id", userID), zap.Error(err))
	}
}

// IsOnline reports whether the user currently has an online flag. Errors are
// reported as offline.
func (s *PresenceService) IsOnline(ctx context.Context, userID string) bool {
	if s.redis == nil || s.redis.Client == nil {
		return false
	}
	count, err := s.redis.Client.Exists(ctx, presenceKeyPrefix+userID).Result()
	if err != nil {
		return false
	}
	return count > 0
}
