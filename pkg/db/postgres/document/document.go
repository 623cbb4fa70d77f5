package document

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

type pgDocument struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.DocumentInterface {
	return &pgDocument{pool: pool}
}

const columns = `"id", "name", "createdAt", "updatedAt"`

func scan(row pgx.Row) (kdb.Document, error) {
	var d kdb.Document
	err := row.Scan(&d.Id, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (p *pgDocument) Find(ctx context.Context) ([]kdb.Document, error) {
	rows, err := p.pool.Query(
		ctx, `select `+columns+` from "document" order by "id"`,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	documents := []kdb.Document{}
	for rows.Next() {
		d, err := scan(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		documents = append(documents, d)
	}
	return documents, rows.Err()
}

func (p *pgDocument) Get(ctx context.Context, id int) (kdb.Document, error) {
	d, err := scan(p.pool.QueryRow(
		ctx, `select `+columns+` from "document" where "id" = $1`, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.Document{}, kpgerr.Missing{
			Table: "document", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	return d, err
}

func (p *pgDocument) Create(ctx context.Context, spec kdb.DocumentSpec) (kdb.Document, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.Document{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	d, err := scan(tx.QueryRow(
		ctx,
		`insert into "document" ("name") values ($1) returning `+columns,
		spec.Name,
	))
	if err != nil {
		return kdb.Document{}, kpgerr.Classify(err, fmt.Sprintf("name=%s", spec.Name))
	}
	return d, tx.Commit(ctx)
}

func (p *pgDocument) Update(ctx context.Context, id int, spec kdb.DocumentSpec) (kdb.Document, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.Document{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	d, err := scan(tx.QueryRow(
		ctx,
		`
		update "document" set "name" = $1, "updatedAt" = now()
		where "id" = $2
		returning `+columns,
		spec.Name, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.Document{}, kpgerr.Missing{
			Table: "document", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	if err != nil {
		return kdb.Document{}, xe.Wrap(err)
	}
	return d, tx.Commit(ctx)
}

func (p *pgDocument) Delete(ctx context.Context, id int) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `delete from "document" where "id" = $1`, id)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{
			Table: "document", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	return tx.Commit(ctx)
}
