package processor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken signs an HS256 token for a customer and optional device
func (p *AuthProcessor) GenerateJWTToken(ctx context.Context, customerID int64, deviceID string, ttl time.Duration) (string, error) {
	now := p.now()
	claims := &BaseClaims{
		ExpirationTime: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:       jwt.NewNumericDate(now),
		Issuer:         tokenIssuer,
		Subject:        strconv.FormatInt(customerID, 10),
		Audience:       jwt.ClaimStrings{tokenIssuer},
		DeviceID:       deviceID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.jwtSecret))
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", ErrFailedSignToken
	}

	return tokenString, nil
}

func (b *BaseClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return b.ExpirationTime, nil
}

func (b *BaseClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return b.IssuedAt, nil
}

func (b *BaseClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return b.NotBefore, nil
}

func (b *BaseClaims) GetIssuer() (string, error) {
	return b.Issuer, nil
}

func (b *BaseClaims) GetSubject() (string, error) {
	return b.Subject, nil
}

func (b *BaseClaims) GetAudience() (jwt.ClaimStrings, error) {
	return b.Audience, nil
}

func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (BaseClaims, error) {
	var baseClaims BaseClaims
	t, err := jwt.ParseWithClaims(token, &baseClaims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.jwtSecret), nil
	}, jwt.WithTimeFunc(p.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.Warn(ctx, "token expired")
			return BaseClaims{}, ErrExpiredToken
		}

		p.logger.Error(ctx, "failed to parse token", err)
		return BaseClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return BaseClaims{}, ErrInvalidJWTToken
	}

	claims, ok := t.Claims.(*BaseClaims)
	if !ok {
		return BaseClaims{}, ErrParseJWTToken
	}

	return *claims, nil
}

// Authenticate validates token and resolves the caller it identifies
func (p *AuthProcessor) Authenticate(ctx context.Context, token string) (Identity, error) {
	claims, err := p.ValidateJWTToken(ctx, token)
	if err != nil {
		return Identity{}, err
	}

	customerID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || customerID <= 0 {
		p.logger.Warn(ctx, "token subject is not a customer id")
		return Identity{}, ErrInvalidSubject
	}

	identity := Identity{CustomerID: customerID}
	if claims.DeviceID != "" {
		deviceID := claims.DeviceID
		identity.DeviceID = &deviceID
	}
	return identity, nil
}
