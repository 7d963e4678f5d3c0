package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/davidmtz/usuarios-api/internal/domain/service"
	"github.com/davidmtz/usuarios-api/pkg/apperrors"
)

// JWTService implements service.TokenService with HMAC-SHA256 signed tokens.
type JWTService struct {
	secret    []byte
	expiresIn time.Duration
}

type jwtClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func NewJWTService(secret string, expiresIn time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), expiresIn: expiresIn}
}

func (s *JWTService) Issue(claims service.Claims) (string, error) {
	now := time.Now()
	c := &jwtClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

// Verify parses and validates the token. Bad signature, wrong algorithm,
// malformed structure, expiry, and a missing user id all collapse into
// apperrors.ErrInvalidToken.
func (s *JWTService) Verify(token string) (*service.Claims, error) {
	c := &jwtClaims{}
	tkn, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if c.UserID == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return &service.Claims{UserID: c.UserID, Email: c.Email}, nil
}

var _ service.TokenService = (*JWTService)(nil)
