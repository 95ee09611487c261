package httpapi

import (
	"net/http"
)

// GetCurrentUser handles GET /administration/users/get_current_user: it
// returns the verified claim set of the caller's token. Any authenticated
// user may call it; the rest of the administration surface is superuser
// only.
func (s *Server) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims := Claims(r.Context())
	if claims == nil {
		writeError(w, http.StatusForbidden, "Not authenticated.")
		return
	}

	writeEnvelope(w, http.StatusOK, "Usuario obtenido correctamente.", claims)
}
