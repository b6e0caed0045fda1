package server

import (
	"net/http"

	"github.com/hessin2010king/backend/internal/types"
)

func (h *handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.users.List(r.Context())
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), rows)
}

func (h *handlers) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	var user types.User
	if !h.decode(w, r, &user) {
		return
	}

	updated, err := h.users.Update(r.Context(), id, &user)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), updated)
}

func (h *handlers) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	err := h.users.Delete(r.Context(), id)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.NoContent(w)
}
