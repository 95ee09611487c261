package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

type renewRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type renewResult struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

// RenewToken handles POST /authentication/renew/token: verifies the
// refresh token and mints a fresh access token from its claims.
func (s *Server) RenewToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req renewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body.")
		return
	}

	claims, err := s.Tokens.ValidateRefresh(ctx, req.RefreshToken)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("refresh token validation failed")
		writeError(w, http.StatusForbidden, "[1] Invalid or expired token.")
		return
	}

	// The stale expiry must not survive into the new token.
	delete(claims, "exp")

	accessToken, err := s.Tokens.Create(ctx, claims)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("renew: access token signing failed")
		writeError(w, http.StatusInternalServerError, "Failed to issue token.")
		return
	}

	writeEnvelope(w, http.StatusOK, "El token fue renovado correctamente.", renewResult{
		Type:  "Bearer",
		Token: accessToken,
	})
}
