package server

import (
	"errors"
	"net/http"

	"github.com/hessin2010king/backend/internal/auth"
	"github.com/hessin2010king/backend/internal/types"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *handlers) adminLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, types.RoleAdmin, "Access denied. Not an admin.")
}

func (h *handlers) userLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, types.RoleUser, "Access denied. Not a user.")
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request, want types.Role, deniedMsg string) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.gate.Login(r.Context(), req.Username, req.Password, want)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.rr.Reject(w, r.Context(), http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, auth.ErrAccessDenied):
			h.rr.Reject(w, r.Context(), http.StatusForbidden, deniedMsg)
		default:
			h.rr.RespondAndLogError(w, r.Context(), err)
		}
		return
	}

	h.rr.SendJson(w, r.Context(), struct {
		Success bool       `json:"success"`
		Role    types.Role `json:"role"`
	}{Success: true, Role: user.Role})
}

func (h *handlers) signup(w http.ResponseWriter, r *http.Request) {
	var req auth.SignupRequest
	if !h.decode(w, r, &req) {
		return
	}

	_, err := h.gate.Signup(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUsernameTaken):
			h.rr.Reject(w, r.Context(), http.StatusConflict, "Username already exists")
		case errors.Is(err, auth.ErrBadRole):
			h.rr.Reject(w, r.Context(), http.StatusBadRequest, err.Error())
		default:
			h.rr.RespondAndLogError(w, r.Context(), err)
		}
		return
	}

	h.rr.SendJsonStatus(w, r.Context(), http.StatusCreated, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{Success: true, Message: "User created successfully"})
}
