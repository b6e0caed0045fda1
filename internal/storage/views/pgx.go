package views

import (
	"context"
	"errors"
	"log/slog"

	"github.com/doug-martin/goqu/v9"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const leaderboardLimit = 10

// fullName goes NULL when either part is NULL, so a book with no author row
// reports a NULL authorName instead of a stray space.
var fullName = goqu.L("a.first_name || ' ' || a.last_name")

func NewPGXRepository(pg *pgxpool.Pool, l *slog.Logger) Repository {
	return &pgxRepo{pg: pg, g: goqu.Dialect("postgres"), l: l}
}

type pgxRepo struct {
	pg *pgxpool.Pool
	g  goqu.DialectWrapper
	l  *slog.Logger
}

func (p *pgxRepo) PopularAuthors(ctx context.Context) ([]AuthorRank, error) {
	sql, params, err := p.g.From(goqu.T("authors").As("a")).
		Select(goqu.I("a.id"), goqu.I("a.first_name"), goqu.I("a.last_name"),
			goqu.COUNT(goqu.I("b.id")).As("book_count")).
		LeftJoin(goqu.T("books").As("b"), goqu.On(
			goqu.I("a.id").Eq(goqu.I("b.author_id")),
		)).
		GroupBy(goqu.I("a.id"), goqu.I("a.first_name"), goqu.I("a.last_name")).
		Order(goqu.C("book_count").Desc()).
		Limit(leaderboardLimit).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []AuthorRank

	err = pgxscan.Select(ctx, p.pg, &rows, sql, params...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (p *pgxRepo) PopularCategories(ctx context.Context) ([]CategoryRank, error) {
	sql, params, err := p.g.From(goqu.T("categories").As("c")).
		Select(goqu.I("c.id"), goqu.I("c.name"),
			goqu.COUNT(goqu.I("b.id")).As("book_count")).
		LeftJoin(goqu.T("books").As("b"), goqu.On(
			goqu.I("c.id").Eq(goqu.I("b.category_id")),
		)).
		GroupBy(goqu.I("c.id"), goqu.I("c.name")).
		Order(goqu.C("book_count").Desc()).
		Limit(leaderboardLimit).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []CategoryRank

	err = pgxscan.Select(ctx, p.pg, &rows, sql, params...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (p *pgxRepo) PopularBooks(ctx context.Context) ([]BookRank, error) {
	sql, params, err := p.g.From(goqu.T("books").As("b")).
		Select(goqu.I("b.id"), goqu.I("b.name"),
			goqu.COUNT(goqu.I("r.id")).As("popularity")).
		LeftJoin(goqu.T("reviews").As("r"), goqu.On(
			goqu.I("b.id").Eq(goqu.I("r.book_id")),
		)).
		GroupBy(goqu.I("b.id"), goqu.I("b.name")).
		Order(goqu.C("popularity").Desc()).
		Limit(leaderboardLimit).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []BookRank

	err = pgxscan.Select(ctx, p.pg, &rows, sql, params...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (p *pgxRepo) BookDetail(ctx context.Context, id int64) (*BookDetail, error) {
	sql, params, err := p.g.From(goqu.T("books").As("b")).
		Select(goqu.I("b.id"), goqu.I("b.name"), goqu.I("b.photo"), goqu.I("b.description"),
			goqu.I("c.name").As("category_name"),
			fullName.As("author_name"),
			// avg(int) is numeric in postgres, cast so it scans into float64;
			// stays NULL with zero reviews
			goqu.L("avg(r.rating)::float8").As("average_rating"),
			goqu.COUNT(goqu.I("r.id")).As("review_count")).
		LeftJoin(goqu.T("categories").As("c"), goqu.On(
			goqu.I("b.category_id").Eq(goqu.I("c.id")),
		)).
		LeftJoin(goqu.T("authors").As("a"), goqu.On(
			goqu.I("b.author_id").Eq(goqu.I("a.id")),
		)).
		LeftJoin(goqu.T("reviews").As("r"), goqu.On(
			goqu.I("b.id").Eq(goqu.I("r.book_id")),
		)).
		Where(goqu.I("b.id").Eq(id)).
		GroupBy(goqu.I("b.id"), goqu.I("b.name"), goqu.I("b.photo"), goqu.I("b.description"),
			goqu.I("c.name"), goqu.I("a.first_name"), goqu.I("a.last_name")).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var row BookDetail

	err = pgxscan.Get(ctx, p.pg, &row, sql, params...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = nil
		}
		return nil, err
	}

	return &row, nil
}

func (p *pgxRepo) BooksByAuthor(ctx context.Context, authorId int64) ([]BookByAuthor, error) {
	sql, params, err := p.g.From(goqu.T("books").As("b")).
		Select(goqu.I("b.id").As("book_id"), goqu.I("b.name").As("book_name"),
			goqu.I("b.photo").As("book_photo"),
			goqu.I("a.id").As("author_id"), fullName.As("author_name"),
			goqu.I("c.name").As("category_name")).
		Join(goqu.T("authors").As("a"), goqu.On(
			goqu.I("b.author_id").Eq(goqu.I("a.id")),
		)).
		Join(goqu.T("categories").As("c"), goqu.On(
			goqu.I("b.category_id").Eq(goqu.I("c.id")),
		)).
		Where(goqu.I("b.author_id").Eq(authorId)).
		Order(goqu.I("b.id").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []BookByAuthor

	err = pgxscan.Select(ctx, p.pg, &rows, sql, params...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (p *pgxRepo) BooksByCategory(ctx context.Context, categoryId int64) ([]BookByCategory, error) {
	sql, params, err := p.g.From(goqu.T("books").As("b")).
		Select(goqu.I("b.id").As("book_id"), goqu.I("b.name").As("book_name"),
			goqu.I("b.photo").As("book_photo"),
			goqu.I("a.id").As("author_id"), fullName.As("author_name")).
		Join(goqu.T("authors").As("a"), goqu.On(
			goqu.I("b.author_id").Eq(goqu.I("a.id")),
		)).
		// categories is joined for resolution only: a dangling category_id
		// drops the book from this listing even though the filter column
		// still matches
		Join(goqu.T("categories").As("c"), goqu.On(
			goqu.I("b.category_id").Eq(goqu.I("c.id")),
		)).
		Where(goqu.I("b.category_id").Eq(categoryId)).
		Order(goqu.I("b.id").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []BookByCategory

	err = pgxscan.Select(ctx, p.pg, &rows, sql, params...)
	if err != nil {
		return nil, err
	}

	return rows, nil
}
