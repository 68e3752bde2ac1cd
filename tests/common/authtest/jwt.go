//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"stay-pricing/internal/domain/user"
	"stay-pricing/internal/pkg/config"
	pkgjwt "stay-pricing/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// MustSign issues an HS256 token the way the identity service does. A negative ttl yields an expired token.
func MustSign(t *testing.T, secret string, userID uuid.UUID, role string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := pkgjwt.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return MustSign(t, h.cfg.Secret, userID, role.String(), time.Hour)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return MustSign(t, h.cfg.Secret, userID, role.String(), -time.Minute)
}

// BearerHeader formats token as an Authorization header value.
func BearerHeader(token string) string {
	return "Bearer " + token
}
