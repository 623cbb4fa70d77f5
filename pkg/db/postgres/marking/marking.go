package marking

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

type pgMarking struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.MarkingInterface {
	return &pgMarking{pool: pool}
}

const columns = `"id", "annotationId", "systemId", "errorStart", "errorEnd", "errorCategory", "errorSeverity", "isSource", "createdAt", "updatedAt"`

func scan(row pgx.Row) (kdb.Marking, error) {
	var m kdb.Marking
	err := row.Scan(
		&m.Id, &m.AnnotationId, &m.SystemId,
		&m.ErrorStart, &m.ErrorEnd, &m.ErrorCategory, &m.ErrorSeverity,
		&m.IsSource, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (p *pgMarking) FindByAnnotation(ctx context.Context, annotationId int) ([]kdb.Marking, error) {
	rows, err := p.pool.Query(
		ctx,
		`select `+columns+` from "marking" where "annotationId" = $1 order by "id"`,
		annotationId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	markings := []kdb.Marking{}
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		markings = append(markings, m)
	}
	return markings, rows.Err()
}

func (p *pgMarking) GetInScope(ctx context.Context, id int, annotationId int, systemId int) (kdb.Marking, error) {
	m, err := scan(p.pool.QueryRow(
		ctx,
		`
		select `+columns+` from "marking"
		where "id" = $1 and "annotationId" = $2 and "systemId" = $3
		`,
		id, annotationId, systemId,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.Marking{}, kpgerr.Missing{
			Table:    "marking",
			Identity: fmt.Sprintf("id=%d, annotationId=%d, systemId=%d", id, annotationId, systemId),
		}
	}
	return m, err
}

func (p *pgMarking) Create(ctx context.Context, spec kdb.MarkingSpec) (kdb.Marking, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.Marking{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	m, err := scan(tx.QueryRow(
		ctx,
		`
		insert into "marking" (
			"annotationId", "systemId",
			"errorStart", "errorEnd", "errorCategory", "errorSeverity", "isSource"
		)
		values ($1, $2, $3, $4, $5, $6, $7)
		returning `+columns,
		spec.AnnotationId, spec.SystemId,
		spec.ErrorStart, spec.ErrorEnd, spec.ErrorCategory, spec.ErrorSeverity, spec.IsSource,
	))
	if err != nil {
		return kdb.Marking{}, kpgerr.Classify(
			err,
			fmt.Sprintf("annotationId=%d, systemId=%d", spec.AnnotationId, spec.SystemId),
		)
	}
	return m, tx.Commit(ctx)
}

func (p *pgMarking) Update(ctx context.Context, id int, spec kdb.MarkingSpec) (kdb.Marking, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.Marking{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	m, err := scan(tx.QueryRow(
		ctx,
		`
		update "marking"
		set "errorStart" = $1, "errorEnd" = $2,
		    "errorCategory" = $3, "errorSeverity" = $4, "isSource" = $5,
		    "updatedAt" = now()
		where "id" = $6 and "annotationId" = $7 and "systemId" = $8
		returning `+columns,
		spec.ErrorStart, spec.ErrorEnd, spec.ErrorCategory, spec.ErrorSeverity, spec.IsSource,
		id, spec.AnnotationId, spec.SystemId,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.Marking{}, kpgerr.Missing{
			Table:    "marking",
			Identity: fmt.Sprintf("id=%d, annotationId=%d, systemId=%d", id, spec.AnnotationId, spec.SystemId),
		}
	}
	if err != nil {
		return kdb.Marking{}, xe.Wrap(err)
	}
	return m, tx.Commit(ctx)
}

func (p *pgMarking) DeleteInScope(ctx context.Context, id int, annotationId int, systemId int) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		`delete from "marking" where "id" = $1 and "annotationId" = $2 and "systemId" = $3`,
		id, annotationId, systemId,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{
			Table:    "marking",
			Identity: fmt.Sprintf("id=%d, annotationId=%d, systemId=%d", id, annotationId, systemId),
		}
	}
	return tx.Commit(ctx)
}
