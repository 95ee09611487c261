package httpapi

import (
	"crypto/x509"
	"encoding/pem"
	"net/http"

	"github.com/rs/zerolog/log"
)

// PublicKey handles GET /authentication/keys/public_key: serves the PEM
// of the access-token verification key so downstream services can verify
// tokens without their own vault credentials.
func (s *Server) PublicKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key, err := s.Keys.PublicKey(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("public key fetch failed")
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("public key encoding failed")
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	pemText := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	writeEnvelope(w, http.StatusOK, "Llave pública obtenida correctamente.", map[string]string{
		"public_key": string(pemText),
	})
}
