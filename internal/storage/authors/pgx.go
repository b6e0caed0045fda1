package authors

import (
	"context"
	"log/slog"
	"time"

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

type pgxAuthor struct {
	Id          int64     `db:"id"`
	Photo       string    `db:"photo"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	DateOfBirth time.Time `db:"date_of_birth"`
}

func (a *pgxAuthor) intoCommon() *types.Author {
	return &types.Author{
		Id:          a.Id,
		Photo:       a.Photo,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		DateOfBirth: types.Date{Time: a.DateOfBirth},
	}
}

func (p *pgxRepo) List(ctx context.Context) ([]*types.Author, error) {
	sql, params, err := p.g.From("authors").
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []pgxAuthor

	err = pgxscan.Select(ctx, p.pg, &rows, sql, params...)
	if err != nil {
		return nil, err
	}

	ret := make([]*types.Author, 0, len(rows))
	for _, row := range rows {
		ret = append(ret, row.intoCommon())
	}

	return ret, nil
}

func (p *pgxRepo) Create(ctx context.Context, author *types.Author) (*types.Author, error) {
	sql, params, err := p.g.Insert("authors").
		Rows(goqu.Record{
			"photo":         author.Photo,
			"first_name":    author.FirstName,
			"last_name":     author.LastName,
			"date_of_birth": author.DateOfBirth.Time,
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

	ret := *author
	ret.Id = id

	return &ret, nil
}

func (p *pgxRepo) Update(ctx context.Context, id int64, author *types.Author) (*types.Author, error) {
	sql, params, err := p.g.Update("authors").
		Set(goqu.Record{
			"photo":         author.Photo,
			"first_name":    author.FirstName,
			"last_name":     author.LastName,
			"date_of_birth": author.DateOfBirth.Time,
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

	ret := *author
	ret.Id = id

	return &ret, nil
}

func (p *pgxRepo) Delete(ctx context.Context, id int64) error {
	sql, params, err := p.g.Delete("authors").
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = p.pg.Exec(ctx, sql, params...)
	return err
}
