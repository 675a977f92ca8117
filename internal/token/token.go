// Package token issues and verifies the signed bearer tokens that carry a
// user's identity between requests. Tokens are self-contained; rotating the
// secret invalidates everything outstanding (no revocation list).
package token

import (
	"errors"
	"time"

	"retrovault/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpirado means the token was well-formed and correctly signed but
	// its expiry window has passed.
	ErrExpirado = errors.New("Token expirado")
	// ErrInvalido covers everything else: bad signature, malformed token,
	// wrong signing algorithm.
	ErrInvalido = errors.New("Token inválido")
)

// Claims are the custom claims embedded in every access token.
type Claims struct {
	UserID uint      `json:"id"`
	Email  string    `json:"email"`
	Rol    model.Rol `json:"rol"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a process-wide HMAC secret.
type Service struct {
	secreto []byte
	ttl     time.Duration
}

func NewService(secreto string, ttl time.Duration) *Service {
	return &Service{secreto: []byte(secreto), ttl: ttl}
}

// Emitir signs a token carrying {id, email, rol} with the configured expiry.
func (s *Service) Emitir(id uint, email string, rol model.Rol) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: id,
		Email:  email,
		Rol:    rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secreto)
}

// Verificar parses and validates a token string. The two failure modes are
// distinguished so the auth middleware can tell the client which one it hit.
func (s *Service) Verificar(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secreto, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpirado
		}
		return nil, ErrInvalido
	}
	if !tok.Valid {
		return nil, ErrInvalido
	}
	return claims, nil
}
