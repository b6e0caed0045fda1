package reviews

import (
	"context"
	"log/slog"

	"github.com/doug-martin/goqu/v9"
	"github.com/georgysavva/scany/v2/pgxscan"
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

type pgxReview struct {
	Id         int64  `db:"id"`
	BookId     int64  `db:"book_id"`
	ReviewText string `db:"review_text"`
	Rating     int32  `db:"rating"`
	Stars      int32  `db:"stars"`
}

func (r *pgxReview) intoCommon() *types.Review {
	return &types.Review{
		Id:         r.Id,
		BookId:     r.BookId,
		ReviewText: r.ReviewText,
		Rating:     r.Rating,
		Stars:      r.Stars,
	}
}

func (p *pgxRepo) List(ctx context.Context) ([]*types.Review, error) {
	return p.list(ctx, nil)
}

func (p *pgxRepo) ListByBook(ctx context.Context, bookId int64) ([]*types.Review, error) {
	return p.list(ctx, goqu.C("book_id").Eq(bookId))
}

func (p *pgxRepo) list(ctx context.Context, cond goqu.Expression) ([]*types.Review, error) {
	qb := p.g.From("reviews").
		Order(goqu.C("id").Asc())
	if cond != nil {
		qb = qb.Where(cond)
	}

	sql, params, err := qb.ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []pgxReview

	err = pgxscan.Select(ctx, p.pg, &rows, sql, params...)
	if err != nil {
		return nil, err
	}

	ret := make([]*types.Review, 0, len(rows))
	for _, row := range rows {
		ret = append(ret, row.intoCommon())
	}

	return ret, nil
}

func (p *pgxRepo) Create(ctx context.Context, review *types.Review) (*types.Review, error) {
	sql, params, err := p.g.Insert("reviews").
		Rows(goqu.Record{
			"book_id":     review.BookId,
			"review_text": review.ReviewText,
			"rating":      review.Rating,
			"stars":       review.Stars,
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

	ret := *review
	ret.Id = id

	return &ret, nil
}

func (p *pgxRepo) Update(ctx context.Context, id int64, review *types.Review) (*types.Review, error) {
	sql, params, err := p.g.Update("reviews").
		Set(goqu.Record{
			"review_text": review.ReviewText,
			"rating":      review.Rating,
			"stars":       review.Stars,
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

	ret := *review
	ret.Id = id

	return &ret, nil
}

func (p *pgxRepo) Delete(ctx context.Context, id int64) error {
	sql, params, err := p.g.Delete("reviews").
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = p.pg.Exec(ctx, sql, params...)
	return err
}
