package processor

import (
	"campaign-server/internal/observability"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "campaign-server"

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrParseJWTToken   = errors.New("failed to parse jwt token")
	ErrExpiredToken    = errors.New("token expired")
	ErrInvalidSubject  = errors.New("token subject is not a customer id")
	ErrFailedSignToken = errors.New("failed to sign token")
)

// AuthProcessor validates the bearer tokens issued to customers' devices.
// Tokens carry the customer id in `sub` and, when issued to a device, `device_id`.
type AuthProcessor struct {
	jwtSecret string
	logger    *observability.Logger
	now       func() time.Time
}

func New(jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		jwtSecret: jwtSecret,
		logger:    logger,
		now:       time.Now,
	}
}

type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf,omitempty"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud,omitempty"`
	DeviceID       string           `json:"device_id,omitempty"`
}

// Identity is the caller resolved from a valid token
type Identity struct {
	CustomerID int64
	DeviceID   *string
}
