package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hessin2010king/backend/internal/auth"
	"github.com/hessin2010king/backend/internal/response"
	"github.com/hessin2010king/backend/internal/storage/authors"
	"github.com/hessin2010king/backend/internal/storage/books"
	"github.com/hessin2010king/backend/internal/storage/categories"
	"github.com/hessin2010king/backend/internal/storage/reviews"
	"github.com/hessin2010king/backend/internal/storage/users"
	"github.com/hessin2010king/backend/internal/storage/views"
)

type handlers struct {
	authors    authors.Repository
	categories categories.Repository
	books      books.Repository
	reviews    reviews.Repository
	users      users.Repository
	views      views.Repository
	gate       *auth.Gate
	rr         *response.Responder
}

func Handler(ar authors.Repository, cr categories.Repository, br books.Repository,
	rvr reviews.Repository, ur users.Repository, vr views.Repository,
	gate *auth.Gate, rr *response.Responder) http.Handler {

	h := &handlers{
		authors:    ar,
		categories: cr,
		books:      br,
		reviews:    rvr,
		users:      ur,
		views:      vr,
		gate:       gate,
		rr:         rr,
	}

	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Welcome to Alex Library API"))
	})

	r.Post("/admin/login", h.adminLogin)
	r.Post("/user/login", h.userLogin)
	r.Post("/user/signup", h.signup)

	r.Get("/opds", h.opdsCatalog)

	r.Route("/admin", func(r chi.Router) {
		r.Route("/authors", func(r chi.Router) {
			r.Get("/", h.listAuthors)
			r.Post("/", h.createAuthor)
			r.Get("/popular", h.popularAuthors)
			r.Put("/{id}", h.updateAuthor)
			r.Delete("/{id}", h.deleteAuthor)
			r.Get("/{id}/books", h.booksByAuthor)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.listCategories)
			r.Post("/", h.createCategory)
			r.Get("/popular", h.popularCategories)
			r.Put("/{id}", h.updateCategory)
			r.Delete("/{id}", h.deleteCategory)
			r.Get("/{id}/books", h.booksByCategory)
		})

		r.Route("/books", func(r chi.Router) {
			r.Get("/", h.listBooks)
			r.Post("/", h.createBook)
			r.Get("/popular", h.popularBooks)
			r.Get("/{id}", h.bookDetail)
			r.Put("/{id}", h.updateBook)
			r.Delete("/{id}", h.deleteBook)
			r.Get("/{id}/reviews", h.reviewsByBook)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", h.listReviews)
			r.Post("/", h.createReview)
			r.Put("/{id}", h.updateReview)
			r.Delete("/{id}", h.deleteReview)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})
	})

	return r
}

// idParam parses the {id} route segment. The repositories do not care
// whether the id exists, but a non-numeric one is the caller's mistake.
func (h *handlers) idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.rr.RespondAndLogCustom(w, r.Context(), err, slog.LevelInfo, http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

func (h *handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		h.rr.RespondAndLogCustom(w, r.Context(), err, slog.LevelInfo, http.StatusBadRequest)
		return false
	}

	return true
}
