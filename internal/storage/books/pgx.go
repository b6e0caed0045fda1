package books

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/doug-martin/goqu/v9"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hessin2010king/backend/internal/types"
)

func NewPGXRepository(pg *pgxpool.Pool, l *slog.Logger) Repository {
	return &pgxRepo{pg: pg, g: goqu.Dialect("postgres"), l: l}
}

type pgxRepo struct {
	pg *pgxpool.Pool
	g  goqu.DialectWrapper
	l  *slog.Logger
}

type pgxBook struct {
	Id          int64  `db:"id"`
	Photo       string `db:"photo"`
	Name        string `db:"name"`
	Description string `db:"description"`
	CategoryId  *int64 `db:"category_id"`
	AuthorId    *int64 `db:"author_id"`
}

func (b *pgxBook) intoCommon() *types.Book {
	return &types.Book{
		Id:          b.Id,
		Photo:       b.Photo,
		Name:        b.Name,
		Description: b.Description,
		CategoryId:  b.CategoryId,
		AuthorId:    b.AuthorId,
	}
}

func (p *pgxRepo) List(ctx context.Context) ([]*types.Book, error) {
	sql, params, err := p.g.From("books").
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []pgxBook

	err = pgxscan.Select(ctx, p.pg, &rows, sql, params...)
	if err != nil {
		return nil, err
	}

	ret := make([]*types.Book, 0, len(rows))
	for _, row := range rows {
		ret = append(ret, row.intoCommon())
	}

	return ret, nil
}

// checkParents enforces referential integrity for the nullable links. The
// schema has no foreign keys on these columns (deletes must be able to
// leave dangling references), so inserts and updates verify here.
func (p *pgxRepo) checkParents(ctx context.Context, book *types.Book) error {
	if book.CategoryId != nil {
		err := p.parentExists(ctx, "categories", *book.CategoryId)
		if err != nil {
			return err
		}
	}

	if book.AuthorId != nil {
		err := p.parentExists(ctx, "authors", *book.AuthorId)
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *pgxRepo) parentExists(ctx context.Context, table string, id int64) error {
	sql, params, err := p.g.From(table).
		Select(goqu.L("1")).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return err
	}

	var one int

	err = pgxscan.Get(ctx, p.pg, &one, sql, params...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s row %d does not exist", table, id)
		}
		return err
	}

	return nil
}

func (p *pgxRepo) Create(ctx context.Context, book *types.Book) (*types.Book, error) {
	err := p.checkParents(ctx, book)
	if err != nil {
		return nil, err
	}

	sql, params, err := p.g.Insert("books").
		Rows(goqu.Record{
			"photo":       book.Photo,
			"name":        book.Name,
			"description": book.Description,
			"category_id": book.CategoryId,
			"author_id":   book.AuthorId,
		}).
		Returning("id").
		ToSQL()
	if err != nil {
		return nil, err
	}

	var id int64

	err = pgxscan.Get(ctx, p.pg, &id, sql, params...)
	if err != nil {
		return nil, err
	}

	ret := *book
	ret.Id = id

	return &ret, nil
}

func (p *pgxRepo) Update(ctx context.Context, id int64, book *types.Book) (*types.Book, error) {
	err := p.checkParents(ctx, book)
	if err != nil {
		return nil, err
	}

	sql, params, err := p.g.Update("books").
		Set(goqu.Record{
			"photo":       book.Photo,
			"name":        book.Name,
			"description": book.Description,
			"category_id": book.CategoryId,
			"author_id":   book.AuthorId,
		}).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, err
	}

	_, err = p.pg.Exec(ctx, sql, params...)
	if err != nil {
		return nil, err
	}

	ret := *book
	ret.Id = id

	return &ret, nil
}

func (p *pgxRepo) Delete(ctx context.Context, id int64) error {
	sql, params, err := p.g.Delete("books").
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = p.pg.Exec(ctx, sql, params...)
	return err
}
