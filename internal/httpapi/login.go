package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sisgate/gateway-api/internal/hashing"
	"github.com/sisgate/gateway-api/internal/store"
)

// claimSizeWarning is the serialized-claims size past which a warning is
// logged: the endpoint manifest lives inside the token and can grow past
// proxy header limits.
const claimSizeWarning = 6 * 1024

type loginRequest struct {
	SystemCode string `json:"system_code"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

func (lr *loginRequest) validate() error {
	if len(lr.SystemCode) < 1 || len(lr.SystemCode) > 10 {
		return errors.New("La longitud del system_code debe tener entre 1 y 10 caracteres.")
	}
	if lr.Email == "" {
		return errors.New("El correo electrónico no puede estar vacío")
	}
	if !strings.Contains(lr.Email, "@") {
		return errors.New("El correo electrónico no es valido.")
	}
	if len(lr.Password) < 8 {
		return errors.New("La contraseña debe tener un mínimo de 8 caracteres.")
	}
	return nil
}

type loginResult struct {
	Type         string `json:"type"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// Login handles POST /authentication/login: validates credentials, checks
// the system entitlement, and issues the access/refresh token pair with
// the system's endpoint manifest embedded in the claims.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body.")
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	user, err := s.Store.UserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeError(w, http.StatusNotFound,
				fmt.Sprintf("El correo [%s], no existe.", req.Email))
			return
		}
		log.Ctx(ctx).Error().Err(err).Msg("login: user lookup failed")
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	if !hashing.Verify(user.Password, req.Password) {
		writeError(w, http.StatusNotFound, "Contraseña incorrecta.")
		return
	}

	userSystems, err := s.Store.UserSystems(ctx, user.ID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("login: user systems lookup failed")
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if _, entitled := userSystems[req.SystemCode]; !entitled && !user.IsSuperuser {
		writeError(w, http.StatusForbidden,
			"No tiene permisos para acceder al sistema, comuníquese con el área de soporte.")
		return
	}

	endpoints, err := s.Store.SystemEndpoints(ctx, req.SystemCode)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("login: endpoint manifest lookup failed")
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	claims := loginClaims(user, endpoints)
	if encoded, err := json.Marshal(claims); err == nil && len(encoded) > claimSizeWarning {
		log.Ctx(ctx).Warn().
			Str("email", user.Email).
			Int("claim_bytes", len(encoded)).
			Msg("login claims exceed recommended size; token may hit header limits")
	}

	accessToken, err := s.Tokens.Create(ctx, claims)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("login: access token signing failed")
		writeError(w, http.StatusInternalServerError, "Failed to issue token.")
		return
	}
	refreshToken, err := s.Tokens.Refresh(ctx, claims)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("login: refresh token signing failed")
		writeError(w, http.StatusInternalServerError, "Failed to issue token.")
		return
	}

	log.Ctx(ctx).Info().
		Str("email", user.Email).
		Str("system_code", req.SystemCode).
		Msg("login succeeded")

	writeEnvelope(w, http.StatusOK, "Se inició sesión correctamente.", loginResult{
		Type:         "Bearer",
		Token:        accessToken,
		RefreshToken: refreshToken,
	})
}

// loginClaims flattens the user record and the endpoint manifest into the
// token payload. The password hash is excluded; the manager additionally
// strips it defensively before signing.
func loginClaims(user *store.User, endpoints []store.EndpointManifest) map[string]any {
	roles := make([]map[string]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, map[string]string{"role_name": r})
	}
	groups := make([]map[string]string, 0, len(user.Groups))
	for _, g := range user.Groups {
		groups = append(groups, map[string]string{"group_name": g})
	}

	return map[string]any{
		"id":           user.ID,
		"email":        user.Email,
		"is_active":    user.IsActive,
		"is_superuser": user.IsSuperuser,
		"roles":        roles,
		"groups":       groups,
		"systems":      user.Systems,
		"endpoints":    endpoints,
	}
}
