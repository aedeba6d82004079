package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/utils"
	"github.com/MKhiriev/go-job-keeper/models"
)

const tokenType = "bearer"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	ctx := r.Context()
	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	h.respondWithToken(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	ctx := r.Context()
	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	h.respondWithToken(w, r, user, http.StatusOK)
}

// respondWithToken issues a token for user and returns it both in the
// Authorization header and in the body.
func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, "*Handler.respondWithToken", err)
		return
	}

	logger.FromRequest(r).Info().
		Str("user_id", user.ID.String()).
		Bool("superuser", user.Superuser).
		Msg("token issued")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Token:     token.SignedString,
		TokenType: tokenType,
		User:      user,
	}, status)
}
