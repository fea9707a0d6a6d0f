package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fairwaylabs/pressbook/internal/auth"
	"github.com/fairwaylabs/pressbook/internal/models"
	userRepo "github.com/fairwaylabs/pressbook/internal/repositories/user"
)

// errEmailTaken is returned when registering an email that already exists
var errEmailTaken = HandlerError("email already registered")

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		h.writeError(w, errBadRequest)
		return
	}

	_, err := h.userRepo.GetUserByEmail(r.Context(), &userRepo.GetUserByEmailInput{
		Email: req.Email,
	})
	if err == nil {
		h.writeError(w, errEmailTaken)
		return
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		h.writeError(w, err)
		return
	}

	hash, err := h.auth.HashPassword(req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	user := &models.User{
		ID:           h.uuid.NewUUID(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		CreatedAt:    h.clock.Now(),
	}
	if err := h.userRepo.SaveUser(r.Context(), &userRepo.SaveUserInput{User: user}); err != nil {
		h.writeError(w, err)
		return
	}

	h.respondWithToken(w, http.StatusCreated, user)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	user, err := h.userRepo.GetUserByEmail(r.Context(), &userRepo.GetUserByEmailInput{
		Email: req.Email,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			h.writeError(w, auth.ErrInvalidCredentials)
			return
		}
		h.writeError(w, err)
		return
	}

	if err := h.auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		h.writeError(w, err)
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, status int, user *models.User) {
	token, err := h.auth.IssueToken(user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	// Never echo the hash back.
	sanitized := *user
	sanitized.PasswordHash = ""
	h.writeJSON(w, status, authResponse{Token: token, User: &sanitized})
}
