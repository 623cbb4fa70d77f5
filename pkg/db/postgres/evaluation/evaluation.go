package evaluation

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

type pgEvaluation struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.EvaluationInterface {
	return &pgEvaluation{pool: pool}
}

const columns = `"id", "name", "type", "isFinished", "createdAt", "updatedAt"`

func scan(row pgx.Row) (kdb.Evaluation, error) {
	var e kdb.Evaluation
	err := row.Scan(
		&e.Id, &e.Name, &e.Type, &e.IsFinished, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (p *pgEvaluation) Find(ctx context.Context) ([]kdb.Evaluation, error) {
	rows, err := p.pool.Query(
		ctx, `select `+columns+` from "evaluation" order by "id"`,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	evaluations := []kdb.Evaluation{}
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		evaluations = append(evaluations, e)
	}
	return evaluations, rows.Err()
}

func (p *pgEvaluation) Get(ctx context.Context, id int) (kdb.Evaluation, error) {
	e, err := scan(p.pool.QueryRow(
		ctx, `select `+columns+` from "evaluation" where "id" = $1`, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.Evaluation{}, kpgerr.Missing{
			Table: "evaluation", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	return e, err
}

func (p *pgEvaluation) GetByName(ctx context.Context, name string) (kdb.Evaluation, error) {
	e, err := scan(p.pool.QueryRow(
		ctx, `select `+columns+` from "evaluation" where "name" = $1`, name,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.Evaluation{}, kpgerr.Missing{
			Table: "evaluation", Identity: fmt.Sprintf("name=%s", name),
		}
	}
	return e, err
}

func (p *pgEvaluation) Create(ctx context.Context, spec kdb.EvaluationSpec) (kdb.Evaluation, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.Evaluation{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	e, err := scan(tx.QueryRow(
		ctx,
		`
		insert into "evaluation" ("name", "type", "isFinished")
		values ($1, $2, $3)
		returning `+columns,
		spec.Name, spec.Type, spec.IsFinished,
	))
	if err != nil {
		return kdb.Evaluation{}, kpgerr.Classify(err, fmt.Sprintf("name=%s", spec.Name))
	}
	return e, tx.Commit(ctx)
}

func (p *pgEvaluation) Update(ctx context.Context, id int, spec kdb.EvaluationSpec) (kdb.Evaluation, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.Evaluation{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	e, err := scan(tx.QueryRow(
		ctx,
		`
		update "evaluation"
		set "name" = $1, "type" = $2, "isFinished" = $3, "updatedAt" = now()
		where "id" = $4
		returning `+columns,
		spec.Name, spec.Type, spec.IsFinished, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.Evaluation{}, kpgerr.Missing{
			Table: "evaluation", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	if err != nil {
		return kdb.Evaluation{}, kpgerr.Classify(err, fmt.Sprintf("name=%s", spec.Name))
	}
	return e, tx.Commit(ctx)
}

func (p *pgEvaluation) Delete(ctx context.Context, id int) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `delete from "evaluation" where "id" = $1`, id)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{
			Table: "evaluation", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	return tx.Commit(ctx)
}
