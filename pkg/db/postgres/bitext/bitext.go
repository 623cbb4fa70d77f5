package bitext

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

type pgBitext struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.BitextInterface {
	return &pgBitext{pool: pool}
}

const columns = `"id", "documentId", "source", "target", "createdAt", "updatedAt"`

func scan(row pgx.Row) (kdb.Bitext, error) {
	var b kdb.Bitext
	err := row.Scan(
		&b.Id, &b.DocumentId, &b.Source, &b.Target, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func collect(rows pgx.Rows) ([]kdb.Bitext, error) {
	defer rows.Close()

	bitexts := []kdb.Bitext{}
	for rows.Next() {
		b, err := scan(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		bitexts = append(bitexts, b)
	}
	return bitexts, rows.Err()
}

func (p *pgBitext) Find(ctx context.Context) ([]kdb.Bitext, error) {
	rows, err := p.pool.Query(
		ctx, `select `+columns+` from "bitext" order by "id"`,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return collect(rows)
}

func (p *pgBitext) FindByDocument(ctx context.Context, documentId int) ([]kdb.Bitext, error) {
	rows, err := p.pool.Query(
		ctx,
		`select `+columns+` from "bitext" where "documentId" = $1 order by "id"`,
		documentId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return collect(rows)
}

func (p *pgBitext) Get(ctx context.Context, id int) (kdb.Bitext, error) {
	b, err := scan(p.pool.QueryRow(
		ctx, `select `+columns+` from "bitext" where "id" = $1`, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.Bitext{}, kpgerr.Missing{
			Table: "bitext", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	return b, err
}

func (p *pgBitext) Create(ctx context.Context, spec kdb.BitextSpec) (kdb.Bitext, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.Bitext{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	b, err := scan(tx.QueryRow(
		ctx,
		`
		insert into "bitext" ("documentId", "source", "target")
		values ($1, $2, $3)
		returning `+columns,
		spec.DocumentId, spec.Source, spec.Target,
	))
	if err != nil {
		return kdb.Bitext{}, kpgerr.Classify(err, fmt.Sprintf("documentId=%d", spec.DocumentId))
	}
	return b, tx.Commit(ctx)
}

func (p *pgBitext) Update(ctx context.Context, id int, spec kdb.BitextSpec) (kdb.Bitext, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.Bitext{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	b, err := scan(tx.QueryRow(
		ctx,
		`
		update "bitext"
		set "documentId" = $1, "source" = $2, "target" = $3, "updatedAt" = now()
		where "id" = $4
		returning `+columns,
		spec.DocumentId, spec.Source, spec.Target, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.Bitext{}, kpgerr.Missing{
			Table: "bitext", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	if err != nil {
		return kdb.Bitext{}, kpgerr.Classify(err, fmt.Sprintf("documentId=%d", spec.DocumentId))
	}
	return b, tx.Commit(ctx)
}

func (p *pgBitext) Delete(ctx context.Context, id int) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `delete from "bitext" where "id" = $1`, id)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{
			Table: "bitext", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	return tx.Commit(ctx)
}
