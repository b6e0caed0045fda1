package books

import (
	"context"

	"github.com/hessin2010king/backend/internal/types"
)

type Repository interface {
	List(ctx context.Context) ([]*types.Book, error)

	// Create fails when a supplied categoryId/authorId references a missing
	// row. Update enforces the same check.
	Create(ctx context.Context, book *types.Book) (*types.Book, error)
	Update(ctx context.Context, id int64, book *types.Book) (*types.Book, error)
	// Delete removes the book's reviews in the same statement via the
	// reviews.book_id ON DELETE CASCADE constraint.
	Delete(ctx context.Context, id int64) error
}
