package annotation

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

type pgAnnotation struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.AnnotationInterface {
	return &pgAnnotation{pool: pool}
}

const columns = `"id", "userId", "evaluationId", "bitextId", "isAnnotated", "comment", "createdAt", "updatedAt"`

func scan(row pgx.Row) (kdb.Annotation, error) {
	var a kdb.Annotation
	err := row.Scan(
		&a.Id, &a.UserId, &a.EvaluationId, &a.BitextId,
		&a.IsAnnotated, &a.Comment, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func collect(rows pgx.Rows) ([]kdb.Annotation, error) {
	defer rows.Close()

	annotations := []kdb.Annotation{}
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		annotations = append(annotations, a)
	}
	return annotations, rows.Err()
}

func (p *pgAnnotation) FindByUser(ctx context.Context, userId int) ([]kdb.Annotation, error) {
	rows, err := p.pool.Query(
		ctx,
		`select `+columns+` from "annotation" where "userId" = $1 order by "id"`,
		userId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return collect(rows)
}

func (p *pgAnnotation) FindByEvaluation(ctx context.Context, evaluationId int) ([]kdb.Annotation, error) {
	rows, err := p.pool.Query(
		ctx,
		`select `+columns+` from "annotation" where "evaluationId" = $1 order by "id"`,
		evaluationId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return collect(rows)
}

func (p *pgAnnotation) FindByEvaluationAndUser(ctx context.Context, evaluationId int, userId int) ([]kdb.Annotation, error) {
	rows, err := p.pool.Query(
		ctx,
		`
		select `+columns+` from "annotation"
		where "evaluationId" = $1 and "userId" = $2
		order by "id"
		`,
		evaluationId, userId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	return collect(rows)
}

func (p *pgAnnotation) Get(ctx context.Context, id int) (kdb.Annotation, error) {
	a, err := scan(p.pool.QueryRow(
		ctx, `select `+columns+` from "annotation" where "id" = $1`, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.Annotation{}, kpgerr.Missing{
			Table: "annotation", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	return a, err
}

func (p *pgAnnotation) Create(ctx context.Context, spec kdb.AnnotationSpec) (kdb.Annotation, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.Annotation{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	a, err := scan(tx.QueryRow(
		ctx,
		`
		insert into "annotation" ("userId", "evaluationId", "bitextId", "isAnnotated", "comment")
		values ($1, $2, $3, $4, $5)
		returning `+columns,
		spec.UserId, spec.EvaluationId, spec.BitextId, spec.IsAnnotated, spec.Comment,
	))
	if err != nil {
		return kdb.Annotation{}, kpgerr.Classify(
			err,
			fmt.Sprintf("userId=%d, evaluationId=%d, bitextId=%d", spec.UserId, spec.EvaluationId, spec.BitextId),
		)
	}
	return a, tx.Commit(ctx)
}

func (p *pgAnnotation) Update(ctx context.Context, id int, spec kdb.AnnotationSpec) (kdb.Annotation, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.Annotation{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	a, err := scan(tx.QueryRow(
		ctx,
		`
		update "annotation"
		set "userId" = $1, "evaluationId" = $2, "bitextId" = $3,
		    "isAnnotated" = $4, "comment" = $5, "updatedAt" = now()
		where "id" = $6
		returning `+columns,
		spec.UserId, spec.EvaluationId, spec.BitextId, spec.IsAnnotated, spec.Comment, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.Annotation{}, kpgerr.Missing{
			Table: "annotation", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	if err != nil {
		return kdb.Annotation{}, kpgerr.Classify(
			err,
			fmt.Sprintf("userId=%d, evaluationId=%d, bitextId=%d", spec.UserId, spec.EvaluationId, spec.BitextId),
		)
	}
	return a, tx.Commit(ctx)
}

func (p *pgAnnotation) Delete(ctx context.Context, id int) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `delete from "annotation" where "id" = $1`, id)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{
			Table: "annotation", Identity: fmt.Sprintf("id=%d", id),
		}
	}
	return tx.Commit(ctx)
}
