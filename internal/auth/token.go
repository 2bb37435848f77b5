package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type tokenClaims struct {
	UserID    string `json:"userId"`
	CompanyID string `json:"companyId"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the HS256 bearer tokens binding a user to
// its company. A token that fails any check is rejected outright; there is no
// anonymous fallback.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

func (m *TokenManager) Issue(principal model.Principal) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:    principal.UserID.String(),
		CompanyID: principal.CompanyID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) Parse(raw string) (model.Principal, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return model.Principal{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return model.Principal{}, ErrInvalidToken
	}
	companyID, err := uuid.Parse(claims.CompanyID)
	if err != nil {
		return model.Principal{}, ErrInvalidToken
	}
	return model.Principal{UserID: userID, CompanyID: companyID}, nil
}
