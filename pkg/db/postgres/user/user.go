package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	kdb "github.com/yaraku/he-tool/pkg/db"
	kpgerr "github.com/yaraku/he-tool/pkg/db/postgres/errors"
	kpool "github.com/yaraku/he-tool/pkg/db/postgres/pool"
	xe "github.com/yaraku/he-tool/pkg/errors"
)

type pgUser struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.UserInterface {
	return &pgUser{pool: pool}
}

const columns = `"id", "email", "password", "nativeLanguage", "createdAt", "updatedAt"`

func scan(row pgx.Row) (kdb.User, error) {
	var u kdb.User
	err := row.Scan(
		&u.Id, &u.Email, &u.Password, &u.NativeLanguage, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func (p *pgUser) Find(ctx context.Context) ([]kdb.User, error) {
	rows, err := p.pool.Query(
		ctx, `select `+columns+` from "user" order by "id"`,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	users := []kdb.User{}
	for rows.Next() {
		u, err := scan(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (p *pgUser) Get(ctx context.Context, id int) (kdb.User, error) {
	u, err := scan(p.pool.QueryRow(
		ctx, `select `+columns+` from "user" where "id" = $1`, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.User{}, kpgerr.Missing{
			Table: "user", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	return u, err
}

func (p *pgUser) GetByEmail(ctx context.Context, email string) (kdb.User, error) {
	u, err := scan(p.pool.QueryRow(
		ctx, `select `+columns+` from "user" where "email" = $1`, email,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.User{}, kpgerr.Missing{
			Table: "user", Identity: fmt.Sprintf("email=%s", email),
		}
	}
	return u, err
}

func (p *pgUser) Create(ctx context.Context, spec kdb.UserSpec) (kdb.User, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.User{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	u, err := scan(tx.QueryRow(
		ctx,
		`
		insert into "user" ("email", "password", "nativeLanguage")
		values ($1, $2, $3)
		returning `+columns,
		spec.Email, spec.Password, spec.NativeLanguage,
	))
	if err != nil {
		return kdb.User{}, kpgerr.Classify(err, fmt.Sprintf("email=%s", spec.Email))
	}
	return u, tx.Commit(ctx)
}

func (p *pgUser) Update(ctx context.Context, id int, spec kdb.UserSpec) (kdb.User, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.User{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	u, err := scan(tx.QueryRow(
		ctx,
		`
		update "user"
		set "email" = $1, "password" = $2, "nativeLanguage" = $3, "updatedAt" = now()
		where "id" = $4
		returning `+columns,
		spec.Email, spec.Password, spec.NativeLanguage, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.User{}, kpgerr.Missing{
			Table: "user", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	if err != nil {
		return kdb.User{}, kpgerr.Classify(err, fmt.Sprintf("email=%s", spec.Email))
	}
	return u, tx.Commit(ctx)
}

func (p *pgUser) Delete(ctx context.Context, id int) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `delete from "user" where "id" = $1`, id)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{
			Table: "user", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	return tx.Commit(ctx)
}
