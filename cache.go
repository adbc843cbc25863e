package hraccess

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// accessCacheKey generates the Redis key for a cached access decision.
func (s *Service) accessCacheKey(actorID uint, role Role, employeeID uint) string {
	return fmt.Sprintf("%saccess:%d:%s:%d", s.cachePrefix, actorID, role, employeeID)
}

// checkAccessCache reports whether a positive decision is cached. Only
// allows are cached: a miss always falls through to a full resolve, so a
// cached entry can never mask the not-found/denied distinction.
func (s *Service) checkAccessCache(ctx context.Context, actorID uint, role Role, employeeID uint) (bool, error) {
	if s.redisClient == nil {
		return false, nil
	}

	val, err := s.redisClient.Get(ctx, s.accessCacheKey(actorID, role, employeeID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == "true", nil
}

// setAccessCache caches a positive access decision.
func (s *Service) setAccessCache(ctx context.Context, actorID uint, role Role, employeeID uint) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Set(ctx, s.accessCacheKey(actorID, role, employeeID), "true", s.cacheTTL).Err(); err != nil {
		s.log.Warnw("failed to cache access decision", "error", err)
	}
}

// invalidateAccessCache drops every cached decision. Called by any mutation
// that can change a decision (management assignments, employee department
// moves, employee deletes) before the mutation returns, so the next check
// recomputes against current data.
func (s *Service) invalidateAccessCache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}

	pattern := s.cachePrefix + "access:*"
	keys, err := s.redisClient.Keys(ctx, pattern).Result()
	if err != nil {
		s.log.Warnw("failed to scan access cache keys", "error", err)
		return
	}
	if len(keys) > 0 {
		if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
			s.log.Warnw("failed to invalidate access cache", "error", err)
		}
	}
}
