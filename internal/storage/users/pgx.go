package users

import (
	"context"
	"errors"
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

type pgxUser struct {
	Id        int64  `db:"id"`
	Username  string `db:"username"`
	Password  string `db:"password"`
	Role      string `db:"role"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
}

func (u *pgxUser) intoCommon() *types.User {
	return &types.User{
		Id:        u.Id,
		Username:  u.Username,
		Password:  u.Password,
		Role:      types.Role(u.Role),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func (p *pgxRepo) List(ctx context.Context) ([]*types.User, error) {
	sql, params, err := p.g.From("users").
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []pgxUser

	err = pgxscan.Select(ctx, p.pg, &rows, sql, params...)
	if err != nil {
		return nil, err
	}

	ret := make([]*types.User, 0, len(rows))
	for _, row := range rows {
		ret = append(ret, row.intoCommon())
	}

	return ret, nil
}

func (p *pgxRepo) GetByUsername(ctx context.Context, username string) (*types.User, error) {
	return p.get(ctx, goqu.C("username").Eq(username))
}

func (p *pgxRepo) GetByCredentials(ctx context.Context, username, password string) (*types.User, error) {
	return p.get(ctx, goqu.And(
		goqu.C("username").Eq(username),
		goqu.C("password").Eq(password),
	))
}

func (p *pgxRepo) get(ctx context.Context, cond goqu.Expression) (*types.User, error) {
	sql, params, err := p.g.From("users").
		Where(cond).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var row pgxUser

	err = pgxscan.Get(ctx, p.pg, &row, sql, params...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = nil
		}
		return nil, err
	}

	return row.intoCommon(), nil
}

func (p *pgxRepo) Create(ctx context.Context, user *types.User) (*types.User, error) {
	sql, params, err := p.g.Insert("users").
		Rows(goqu.Record{
			"username":   user.Username,
			"password":   user.Password,
			"role":       string(user.Role),
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
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

	ret := *user
	ret.Id = id

	return &ret, nil
}

func (p *pgxRepo) Update(ctx context.Context, id int64, user *types.User) (*types.User, error) {
	sql, params, err := p.g.Update("users").
		Set(goqu.Record{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
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

	ret := *user
	ret.Id = id

	return &ret, nil
}

func (p *pgxRepo) Delete(ctx context.Context, id int64) error {
	sql, params, err := p.g.Delete("users").
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = p.pg.Exec(ctx, sql, params...)
	return err
}
