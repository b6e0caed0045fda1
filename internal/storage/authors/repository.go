package authors

import (
	"context"

	"github.com/hessin2010king/backend/internal/types"
)

type Repository interface {
	List(ctx context.Context) ([]*types.Author, error)

	// Create assigns the id and returns the stored author.
	Create(ctx context.Context, author *types.Author) (*types.Author, error)
	// Update is a full-field replace keyed by id. A missing id is not an
	// error, the call just affects no rows.
	Update(ctx context.Context, id int64, author *types.Author) (*types.Author, error)
	// Delete does not cascade to books: their author_id keeps pointing at
	// the removed row.
	Delete(ctx context.Context, id int64) error
}
