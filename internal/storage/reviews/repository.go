package reviews

import (
	"context"

	"github.com/hessin2010king/backend/internal/types"
)

type Repository interface {
	List(ctx context.Context) ([]*types.Review, error)
	ListByBook(ctx context.Context, bookId int64) ([]*types.Review, error)

	// Create fails when bookId references a missing book.
	Create(ctx context.Context, review *types.Review) (*types.Review, error)
	// Update replaces reviewText/rating/stars; a review cannot be moved to
	// another book.
	Update(ctx context.Context, id int64, review *types.Review) (*types.Review, error)
	Delete(ctx context.Context, id int64) error
}
