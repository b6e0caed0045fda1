package server

import (
	"net/http"

	"github.com/hessin2010king/backend/internal/types"
)

// Authors

func (h *handlers) listAuthors(w http.ResponseWriter, r *http.Request) {
	rows, err := h.authors.List(r.Context())
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), rows)
}

func (h *handlers) createAuthor(w http.ResponseWriter, r *http.Request) {
	var author types.Author
	if !h.decode(w, r, &author) {
		return
	}

	created, err := h.authors.Create(r.Context(), &author)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJsonStatus(w, r.Context(), http.StatusCreated, created)
}

func (h *handlers) updateAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	var author types.Author
	if !h.decode(w, r, &author) {
		return
	}

	updated, err := h.authors.Update(r.Context(), id, &author)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), updated)
}

func (h *handlers) deleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	err := h.authors.Delete(r.Context(), id)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.NoContent(w)
}

func (h *handlers) popularAuthors(w http.ResponseWriter, r *http.Request) {
	rows, err := h.views.PopularAuthors(r.Context())
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), rows)
}

func (h *handlers) booksByAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	rows, err := h.views.BooksByAuthor(r.Context(), id)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), rows)
}

// Categories

func (h *handlers) listCategories(w http.ResponseWriter, r *http.Request) {
	rows, err := h.categories.List(r.Context())
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), rows)
}

func (h *handlers) createCategory(w http.ResponseWriter, r *http.Request) {
	var category types.Category
	if !h.decode(w, r, &category) {
		return
	}

	created, err := h.categories.Create(r.Context(), &category)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJsonStatus(w, r.Context(), http.StatusCreated, created)
}

func (h *handlers) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	var category types.Category
	if !h.decode(w, r, &category) {
		return
	}

	updated, err := h.categories.Update(r.Context(), id, &category)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), updated)
}

func (h *handlers) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	err := h.categories.Delete(r.Context(), id)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.NoContent(w)
}

func (h *handlers) popularCategories(w http.ResponseWriter, r *http.Request) {
	rows, err := h.views.PopularCategories(r.Context())
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), rows)
}

func (h *handlers) booksByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	rows, err := h.views.BooksByCategory(r.Context(), id)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), rows)
}
