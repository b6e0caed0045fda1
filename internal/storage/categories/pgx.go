package categories

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

type pgxCategory struct {
	Id   int64  `db:"id"`
	Name string `db:"name"`
}

func (p *pgxRepo) List(ctx context.Context) ([]*types.Category, error) {
	sql, params, err := p.g.From("categories").
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []pgxCategory

	err = pgxscan.Select(ctx, p.pg, &rows, sql, params...)
	if err != nil {
		return nil, err
	}

	ret := make([]*types.Category, 0, len(rows))
	for _, row := range rows {
		ret = append(ret, &types.Category{Id: row.Id, Name: row.Name})
	}

	return ret, nil
}

func (p *pgxRepo) Create(ctx context.Context, category *types.Category) (*types.Category, error) {
	sql, params, err := p.g.Insert("categories").
		Rows(goqu.Record{"name": category.Name}).
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

	return &types.Category{Id: id, Name: category.Name}, nil
}

func (p *pgxRepo) Update(ctx context.Context, id int64, category *types.Category) (*types.Category, error) {
	sql, params, err := p.g.Update("categories").
		Set(goqu.Record{"name": category.Name}).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, err
	}

	_, err = p.pg.Exec(ctx, sql, params...)
	if err != nil {
		return nil, err
	}

	return &types.Category{Id: id, Name: category.Name}, nil
}

func (p *pgxRepo) Delete(ctx context.Context, id int64) error {
	sql, params, err := p.g.Delete("categories").
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = p.pg.Exec(ctx, sql, params...)
	return err
}
