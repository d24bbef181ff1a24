package ratelimit

import (
	"campaign-server/internal/apierrors"
	authHandler "campaign-server/internal/auth/handler"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"

// Middleware limits authenticated requests. It must run after the JWT middleware.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := authHandler.CustomerID(c)
		if !ok || !s.enabled() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		result, err := s.CheckRateLimit(ctx, customerID)
		if err != nil {
			// Limiting is best effort; an unavailable Redis must not take the API down.
			s.logger.Error(ctx, "rate limit check failed", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", (result.RetryAfterMs+999)/1000))
			s.logger.Warn(ctx, "rate limit exceeded")
			apierrors.RespondWithError(c, &apierrors.APIError{
				StatusCode: http.StatusTooManyRequests,
				Code:       CodeRateLimitExceeded,
				Message:    "Rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
