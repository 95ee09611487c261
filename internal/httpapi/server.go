package httpapi

import (
	"net/http"
	"time"

	"github.com/sisgate/gateway-api/internal/authz"
	"github.com/sisgate/gateway-api/internal/config"
	"github.com/sisgate/gateway-api/internal/store"
	"github.com/sisgate/gateway-api/internal/token"
	"github.com/sisgate/gateway-api/internal/vault"
)

// upstreamTimeout is the hard cap on a proxied upstream HTTP call.
const upstreamTimeout = 600 * time.Second

// Server holds the collaborators for all HTTP handlers. Everything is
// constructor-injected; there is no process-wide mutable state.
type Server struct {
	Store    store.Store
	Tokens   *token.Manager
	Engine   *authz.Engine
	Keys     vault.KeyProvider
	Limiter  *RateLimiter
	Upstream *http.Client
}

// NewServer wires the handler dependencies from the loaded configuration.
func NewServer(st store.Store, tokens *token.Manager, engine *authz.Engine, keys vault.KeyProvider, cfg *config.Config) *Server {
	return &Server{
		Store:    st,
		Tokens:   tokens,
		Engine:   engine,
		Keys:     keys,
		Limiter:  NewRateLimiter(cfg.RequestsPerSecond, cfg.RateLimitInterval(), cfg.RateLimitBlock()),
		Upstream: &http.Client{Timeout: upstreamTimeout},
	}
}
