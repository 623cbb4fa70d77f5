package system

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

type pgSystem struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.SystemInterface {
	return &pgSystem{pool: pool}
}

const columns = `"id", "name", "createdAt", "updatedAt"`

func scan(row pgx.Row) (kdb.System, error) {
	var s kdb.System
	err := row.Scan(&s.Id, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (p *pgSystem) Find(ctx context.Context) ([]kdb.System, error) {
	rows, err := p.pool.Query(
		ctx, `select `+columns+` from "system" order by "id"`,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	systems := []kdb.System{}
	for rows.Next() {
		s, err := scan(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		systems = append(systems, s)
	}
	return systems, rows.Err()
}

func (p *pgSystem) Get(ctx context.Context, id int) (kdb.System, error) {
	s, err := scan(p.pool.QueryRow(
		ctx, `select `+columns+` from "system" where "id" = $1`, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.System{}, kpgerr.Missing{
			Table: "system", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	return s, err
}

func (p *pgSystem) GetByName(ctx context.Context, name string) (kdb.System, error) {
	s, err := scan(p.pool.QueryRow(
		ctx, `select `+columns+` from "system" where "name" = $1`, name,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.System{}, kpgerr.Missing{
			Table: "system", Identity: fmt.Sprintf("name=%s", name),
		}
	}
	return s, err
}

func (p *pgSystem) Create(ctx context.Context, spec kdb.SystemSpec) (kdb.System, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.System{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	s, err := scan(tx.QueryRow(
		ctx,
		`insert into "system" ("name") values ($1) returning `+columns,
		spec.Name,
	))
	if err != nil {
		return kdb.System{}, kpgerr.Classify(err, fmt.Sprintf("name=%s", spec.Name))
	}
	return s, tx.Commit(ctx)
}

func (p *pgSystem) Update(ctx context.Context, id int, spec kdb.SystemSpec) (kdb.System, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.System{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	s, err := scan(tx.QueryRow(
		ctx,
		`
		update "system" set "name" = $1, "updatedAt" = now()
		where "id" = $2
		returning `+columns,
		spec.Name, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.System{}, kpgerr.Missing{
			Table: "system", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	if err != nil {
		return kdb.System{}, kpgerr.Classify(err, fmt.Sprintf("name=%s", spec.Name))
	}
	return s, tx.Commit(ctx)
}

func (p *pgSystem) Delete(ctx context.Context, id int) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `delete from "system" where "id" = $1`, id)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{
			Table: "system", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	return tx.Commit(ctx)
}
