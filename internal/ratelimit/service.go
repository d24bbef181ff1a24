package ratelimit

import (
	redisClient "campaign-server/internal/clients/redis"
	"campaign-server/internal/observability"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const window = time.Minute

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service limits the campaign API requests of each customer with a
// sliding one-minute window kept in Redis.
type Service struct {
	redis  *redisClient.Client
	limit  int
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a new rate limiting service. A nil or disabled client, or
// a non-positive limit, lets every request through.
func NewService(redis *redisClient.Client, limit int, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		limit:  limit,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Service) enabled() bool {
	return s != nil && s.limit > 0 && s.redis.IsEnabled()
}

// CheckRateLimit records one request of the customer and reports whether it is allowed
func (s *Service) CheckRateLimit(ctx context.Context, customerID int64) (RateLimitResult, error) {
	if !s.enabled() {
		return RateLimitResult{Allowed: true}, nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_id", Value: customerID},
		observability.Field{Key: "rate_limit", Value: s.limit},
	)

	client := s.redis.GetClient()
	key := Key(customerID)
	now := s.now()
	windowStartMs := now.Add(-window).UnixMilli()

	err := client.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStartMs, 10)).Err()
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := client.ZCard(ctx, key).Result()
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= s.limit {
		oldest, err := client.ZRangeWithScores(ctx, key, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return RateLimitResult{
				Allowed:      false,
				Limit:        s.limit,
				ResetAt:      now.Add(window),
				RetryAfterMs: int(window.Milliseconds()),
			}, nil
		}

		resetAt := time.UnixMilli(int64(oldest[0].Score)).Add(window)
		retryAfter := max(resetAt.Sub(now), 0)
		return RateLimitResult{
			Allowed:      false,
			Limit:        s.limit,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	err = client.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: uuid.NewString(),
	}).Err()
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to add request: %w", err)
	}

	if err := client.Expire(ctx, key, 2*window).Err(); err != nil {
		s.logger.Error(ctx, "failed to set expiration on rate limit key", err)
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}

// Key returns the sorted set holding a customer's request timestamps
func Key(customerID int64) string {
	return fmt.Sprintf("rl:customer:%d", customerID)
}
