package handler

import (
	"campaign-server/internal/apierrors"
	"campaign-server/internal/auth/processor"
	"campaign-server/internal/observability"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// Keys under which the middleware stores the caller in the gin context
const (
	CustomerIDKey = "Customer-ID"
	DeviceIDKey   = "Device-ID"
)

// Authenticator resolves a bearer token to the calling customer
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (processor.Identity, error)
}

type Handler struct {
	authenticator Authenticator
	logger        *observability.Logger
}

func New(authenticator Authenticator, logger *observability.Logger) Handler {
	return Handler{authenticator: authenticator, logger: logger}
}

func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	identity, err := h.authenticator.Authenticate(ctx, tokenString)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	fields := []observability.Field{{Key: "customer_id", Value: identity.CustomerID}}
	c.Set(CustomerIDKey, identity.CustomerID)
	if identity.DeviceID != nil {
		c.Set(DeviceIDKey, *identity.DeviceID)
		fields = append(fields, observability.Field{Key: "device_id", Value: *identity.DeviceID})
	}
	c.Request = c.Request.WithContext(observability.WithFields(ctx, fields...))

	c.Next()
}

// CustomerID returns the authenticated customer id set by HandleJWTMiddleware
func CustomerID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CustomerIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// DeviceID returns the device id claim, nil when the token carried none
func DeviceID(c *gin.Context) *string {
	v, ok := c.Get(DeviceIDKey)
	if !ok {
		return nil
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return nil
	}
	return &id
}
