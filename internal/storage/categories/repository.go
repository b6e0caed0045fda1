package categories

import (
	"context"

	"github.com/hessin2010king/backend/internal/types"
)

type Repository interface {
	List(ctx context.Context) ([]*types.Category, error)

	Create(ctx context.Context, category *types.Category) (*types.Category, error)
	Update(ctx context.Context, id int64, category *types.Category) (*types.Category, error)
	// Delete does not cascade to books: their category_id keeps pointing at
	// the removed row.
	Delete(ctx context.Context, id int64) error
}
