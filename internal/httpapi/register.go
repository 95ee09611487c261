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

type registerRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeat_password"`
}

func (rr *registerRequest) validate() error {
	if !strings.Contains(rr.Email, "@") {
		return fmt.Errorf("%s, no es un correo electrónico válido.", rr.Email)
	}
	if len(rr.Password) < 8 || len(rr.Password) > 16 {
		return errors.New("La contraseña debe tener un mínimo de 8 caracteres y un máximo de 16 caracteres.")
	}
	if rr.Password != rr.RepeatPassword {
		return errors.New("Las contraseñas deben ser las mismas.")
	}
	return nil
}

type registerResult struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Register handles POST /authentication/register: creates an inactive,
// non-superuser account. Activation and policy attachments happen out of
// band through the administration surface.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body.")
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	hash, err := hashing.Hash(req.Password)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("register: password hashing failed")
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	id, err := s.Store.CreateUser(ctx, req.Email, hash)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("El correo [%s], ya existe.", req.Email))
			return
		}
		log.Ctx(ctx).Error().Err(err).Msg("register: user insert failed")
		writeError(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	log.Ctx(ctx).Info().Str("email", req.Email).Int64("user_id", id).Msg("user registered")

	writeEnvelope(w, http.StatusCreated, "El usuario fue registrado exitosamente.", registerResult{
		ID:    id,
		Email: req.Email,
	})
}
