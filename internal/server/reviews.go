package server

import (
	"net/http"

	"github.com/hessin2010king/backend/internal/types"
)

func (h *handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reviews.List(r.Context())
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), rows)
}

func (h *handlers) createReview(w http.ResponseWriter, r *http.Request) {
	var review types.Review
	if !h.decode(w, r, &review) {
		return
	}

	created, err := h.reviews.Create(r.Context(), &review)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJsonStatus(w, r.Context(), http.StatusCreated, created)
}

func (h *handlers) updateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	var review types.Review
	if !h.decode(w, r, &review) {
		return
	}

	updated, err := h.reviews.Update(r.Context(), id, &review)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), updated)
}

func (h *handlers) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	err := h.reviews.Delete(r.Context(), id)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.NoContent(w)
}
