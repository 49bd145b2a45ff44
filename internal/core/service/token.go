package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userhub/users-api/internal/core/domain"
	"github.com/userhub/users-api/internal/core/ports"
)

// JWTCodec implements ports.TokenCodec with HS256-signed JWTs. The token is
// the sole session mechanism: nothing is persisted server-side, so a token
// stays valid until its exp claim passes.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTCodec creates a codec signing with secret. A non-positive ttl
// defaults to 24 hours.
func NewJWTCodec(secret string, ttl time.Duration) *JWTCodec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTCodec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime, which the transport layer mirrors
// in the cookie max-age.
func (c *JWTCodec) TTL() time.Duration {
	return c.ttl
}

func (c *JWTCodec) Issue(userID int64, email string) (string, error) {
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"exp":   time.Now().Add(c.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates token. Every failure mode (wrong algorithm,
// bad signature, expired, malformed claims) collapses into
// domain.ErrInvalidToken so callers cannot distinguish the reason.
func (c *JWTCodec) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	// JSON numbers decode into float64.
	id, ok := claims["id"].(float64)
	email, okEmail := claims["email"].(string)
	if !ok || !okEmail {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{UserID: int64(id), Email: email}, nil
}
