package server

import (
	"net/http"

	"github.com/hessin2010king/backend/internal/types"
)

func (h *handlers) listBooks(w http.ResponseWriter, r *http.Request) {
	rows, err := h.books.List(r.Context())
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), rows)
}

func (h *handlers) createBook(w http.ResponseWriter, r *http.Request) {
	var book types.Book
	if !h.decode(w, r, &book) {
		return
	}

	created, err := h.books.Create(r.Context(), &book)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJsonStatus(w, r.Context(), http.StatusCreated, created)
}

func (h *handlers) updateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	var book types.Book
	if !h.decode(w, r, &book) {
		return
	}

	updated, err := h.books.Update(r.Context(), id, &book)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), updated)
}

func (h *handlers) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	err := h.books.Delete(r.Context(), id)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.NoContent(w)
}

func (h *handlers) popularBooks(w http.ResponseWriter, r *http.Request) {
	rows, err := h.views.PopularBooks(r.Context())
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), rows)
}

func (h *handlers) bookDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	row, err := h.views.BookDetail(r.Context(), id)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	if row == nil {
		h.rr.Reject(w, r.Context(), http.StatusNotFound, "Book not found")
		return
	}

	h.rr.SendJson(w, r.Context(), row)
}

func (h *handlers) reviewsByBook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	rows, err := h.reviews.ListByBook(r.Context(), id)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.rr.SendJson(w, r.Context(), rows)
}
