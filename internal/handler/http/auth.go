package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/gamey-gateway/internal/logger"
	"github.com/MKhiriev/gamey-gateway/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	user := models.User{
		Username: req.Username.String(),
		Age:      req.Age.Int(),
		Country:  req.Country.String(),
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user, req.Password.String())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.MessageResponse{
		Message: fmt.Sprintf("Hello %s! Your account has been created!", registeredUser.Username),
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Username.String(), req.Password.String())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("username", foundUser.Username).Msg("user successfully logged in")

	h.writeJSON(w, r, models.LoginResponse{
		Message:  fmt.Sprintf("Welcome back, %s!", foundUser.Username),
		Username: foundUser.Username,
		Score:    foundUser.Score,
	}, http.StatusOK)
}
