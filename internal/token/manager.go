// Package token implements the JWT manager: RSA-signed access and refresh
// tokens whose keys come from the external vault.
package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sisgate/gateway-api/internal/vault"
)

var (
	// ErrTokenExpired signals a structurally valid token past its exp claim.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid signals any other verification failure.
	ErrTokenInvalid = errors.New("token invalid")
)

// Manager signs and verifies bearer tokens. Access tokens use the vault's
// primary key pair, refresh tokens the refresh pair.
type Manager struct {
	keys       vault.KeyProvider
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration

	// now is swapped in tests to control expiry.
	now func() time.Time
}

// NewManager builds a Manager for the configured RSA-family algorithm.
func NewManager(keys vault.KeyProvider, algorithm string, accessTTL, refreshTTL time.Duration) (*Manager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("algorithm %q is not RSA-family", algorithm)
	}
	return &Manager{
		keys:       keys,
		method:     method,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

// Create signs claims with the access private key. The password claim is
// never signed; it is stripped here regardless of what the caller passed.
func (m *Manager) Create(ctx context.Context, claims map[string]any) (string, error) {
	key, err := m.keys.PrivateKey(ctx)
	if err != nil {
		return "", err
	}
	return m.sign(claims, m.accessTTL, key)
}

// Refresh signs claims with the refresh private key and the longer TTL.
func (m *Manager) Refresh(ctx context.Context, claims map[string]any) (string, error) {
	key, err := m.keys.RefreshPrivateKey(ctx)
	if err != nil {
		return "", err
	}
	return m.sign(claims, m.refreshTTL, key)
}

func (m *Manager) sign(claims map[string]any, ttl time.Duration, key any) (string, error) {
	toEncode := jwt.MapClaims{}
	for k, v := range claims {
		toEncode[k] = v
	}
	delete(toEncode, "password")
	toEncode["exp"] = jwt.NewNumericDate(m.now().Add(ttl))

	tok := jwt.NewWithClaims(m.method, toEncode)
	signed, err := tok.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies an access token against the access public key.
func (m *Manager) Validate(ctx context.Context, token string) (jwt.MapClaims, error) {
	key, err := m.keys.PublicKey(ctx)
	if err != nil {
		return nil, err
	}
	return m.parse(token, key)
}

// ValidateRefresh verifies a refresh token against the refresh public key.
func (m *Manager) ValidateRefresh(ctx context.Context, token string) (jwt.MapClaims, error) {
	key, err := m.keys.RefreshPublicKey(ctx)
	if err != nil {
		return nil, err
	}
	return m.parse(token, key)
}

func (m *Manager) parse(token string, key any) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return key, nil
	}, jwt.WithValidMethods([]string{m.method.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %s", ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
