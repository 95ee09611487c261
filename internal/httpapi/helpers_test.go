package httpapi

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"testing"
	"time"

	"github.com/sisgate/gateway-api/internal/authz"
	"github.com/sisgate/gateway-api/internal/store/storetest"
	"github.com/sisgate/gateway-api/internal/token"
)

// staticKeys serves fixed RSA pairs so handler tests never touch the vault.
type staticKeys struct {
	access  *rsa.PrivateKey
	refresh *rsa.PrivateKey
}

func newStaticKeys(t *testing.T) staticKeys {
	t.Helper()
	access, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate access key: %v", err)
	}
	refresh, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate refresh key: %v", err)
	}
	return staticKeys{access: access, refresh: refresh}
}

func (k staticKeys) PrivateKey(context.Context) (*rsa.PrivateKey, error) {
	return k.access, nil
}

func (k staticKeys) RefreshPrivateKey(context.Context) (*rsa.PrivateKey, error) {
	return k.refresh, nil
}

func (k staticKeys) PublicKey(context.Context) (*rsa.PublicKey, error) {
	return &k.access.PublicKey, nil
}

func (k staticKeys) RefreshPublicKey(context.Context) (*rsa.PublicKey, error) {
	return &k.refresh.PublicKey, nil
}

// newTestServer wires a Server on the in-memory store with a limiter wide
// enough to stay out of the way.
func newTestServer(t *testing.T, fake *storetest.Fake) *Server {
	t.Helper()

	keys := newStaticKeys(t)
	tokens, err := token.NewManager(keys, "RS256", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("new token manager: %v", err)
	}

	return &Server{
		Store:    fake,
		Tokens:   tokens,
		Engine:   authz.NewEngine(fake),
		Keys:     keys,
		Limiter:  NewRateLimiter(1000, time.Second, time.Minute),
		Upstream: &http.Client{Timeout: 5 * time.Second},
	}
}

// mintToken issues an access token for the given claims.
func mintToken(t *testing.T, s *Server, claims map[string]any) string {
	t.Helper()
	tok, err := s.Tokens.Create(context.Background(), claims)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return tok
}
