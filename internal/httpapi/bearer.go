package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/sisgate/gateway-api/internal/authz"
	"github.com/sisgate/gateway-api/internal/store"
)

type ctxKey string

// CtxClaims carries the verified token claims through the request context.
const CtxClaims ctxKey = "claims"

// Paths reachable without credentials regardless of endpoint configuration.
var credentialFreePaths = map[string]struct{}{
	"/authentication/login":    {},
	"/authentication/register": {},
}

// Claims extracts the verified claim set from the request context. Returns
// nil for unauthenticated admissions.
func Claims(ctx context.Context) jwt.MapClaims {
	if v := ctx.Value(CtxClaims); v != nil {
		if c, ok := v.(jwt.MapClaims); ok {
			return c
		}
	}
	return nil
}

// BearerAuth verifies the Authorization header and runs the authorization
// engine before admitting a request.
//
// Without credentials the request passes only for the login/register
// surface or for endpoints flagged endpoint_authenticated = false. With
// credentials the scheme must be Bearer, the signature must verify, the
// /administration/ surface additionally requires a superuser, and finally
// the policy engine decides.
func (s *Server) BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		path := r.URL.Path

		scheme, creds := splitAuthorization(r.Header.Get("Authorization"))

		if creds == "" || creds == "null" {
			if _, ok := credentialFreePaths[path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			open, err := s.Store.UnauthenticatedEndpoint(ctx, authz.StripGateway(path))
			if err != nil {
				log.Ctx(ctx).Error().Err(err).Msg("unauthenticated endpoint lookup failed")
				writeError(w, http.StatusInternalServerError, "Internal server error.")
				return
			}
			if open {
				next.ServeHTTP(w, r)
				return
			}

			writeError(w, http.StatusForbidden, "Not authenticated.")
			return
		}

		if scheme != "Bearer" {
			writeError(w, http.StatusForbidden, "[1] Invalid or expired token.")
			return
		}

		claims, err := s.Tokens.Validate(ctx, creds)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("token validation failed")
			writeError(w, http.StatusForbidden, "[1] Invalid or expired token.")
			return
		}

		email, _ := claims["email"].(string)
		if email == "" {
			writeError(w, http.StatusForbidden, "[1] Invalid or expired token.")
			return
		}

		if strings.HasPrefix(path, "/administration/") &&
			path != "/administration/users/get_current_user" {
			super, err := s.Store.IsSuperuserEmail(ctx, email)
			if err != nil {
				log.Ctx(ctx).Error().Err(err).Msg("superuser lookup failed")
				writeError(w, http.StatusInternalServerError, "Internal server error.")
				return
			}
			if !super {
				writeError(w, http.StatusForbidden, "[1] Access denied.")
				return
			}
		}

		userID, err := s.Store.UserIDByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				writeError(w, http.StatusForbidden, "[2] Access denied.")
				return
			}
			log.Ctx(ctx).Error().Err(err).Msg("user lookup failed")
			writeError(w, http.StatusInternalServerError, "Internal server error.")
			return
		}

		allowed, err := s.Engine.UserAccessControl(ctx, userID, path)
		if err != nil {
			if errors.Is(err, store.ErrEndpointNotFound) {
				writeError(w, http.StatusNotFound, "Endpoint not found.")
				return
			}
			log.Ctx(ctx).Error().Err(err).Msg("access control evaluation failed")
			writeError(w, http.StatusInternalServerError, "Internal server error.")
			return
		}
		if !allowed {
			writeError(w, http.StatusForbidden, "[2] Access denied.")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, CtxClaims, claims)))
	})
}

// splitAuthorization parses an Authorization header into scheme and
// credentials. Either may be empty.
func splitAuthorization(header string) (scheme, creds string) {
	if header == "" {
		return "", ""
	}
	parts := strings.SplitN(header, " ", 2)
	scheme = parts[0]
	if len(parts) == 2 {
		creds = strings.TrimSpace(parts[1])
	}
	return scheme, creds
}
