package annotationsystem

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

type pgAnnotationSystem struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kdb.AnnotationSystemInterface {
	return &pgAnnotationSystem{pool: pool}
}

const columns = `"id", "annotationId", "systemId", "translation", "createdAt", "updatedAt"`

func scan(row pgx.Row) (kdb.AnnotationSystem, error) {
	var s kdb.AnnotationSystem
	err := row.Scan(
		&s.Id, &s.AnnotationId, &s.SystemId, &s.Translation, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (p *pgAnnotationSystem) FindByAnnotation(ctx context.Context, annotationId int) ([]kdb.AnnotationSystem, error) {
	rows, err := p.pool.Query(
		ctx,
		`select `+columns+` from "annotationSystem" where "annotationId" = $1 order by "id"`,
		annotationId,
	)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	defer rows.Close()

	records := []kdb.AnnotationSystem{}
	for rows.Next() {
		s, err := scan(rows)
		if err != nil {
			return nil, xe.Wrap(err)
		}
		records = append(records, s)
	}
	return records, rows.Err()
}

func (p *pgAnnotationSystem) GetByAnnotationAndSystem(ctx context.Context, annotationId int, systemId int) (kdb.AnnotationSystem, error) {
	s, err := scan(p.pool.QueryRow(
		ctx,
		`
		select `+columns+` from "annotationSystem"
		where "annotationId" = $1 and "systemId" = $2
		`,
		annotationId, systemId,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.AnnotationSystem{}, kpgerr.Missing{
			Table:    "annotationSystem",
			Identity: fmt.Sprintf("annotationId=%d, systemId=%d", annotationId, systemId),
		}
	}
	return s, err
}

func (p *pgAnnotationSystem) Create(ctx context.Context, spec kdb.AnnotationSystemSpec) (kdb.AnnotationSystem, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.AnnotationSystem{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	s, err := scan(tx.QueryRow(
		ctx,
		`
		insert into "annotationSystem" ("annotationId", "systemId", "translation")
		values ($1, $2, $3)
		returning `+columns,
		spec.AnnotationId, spec.SystemId, spec.Translation,
	))
	if err != nil {
		return kdb.AnnotationSystem{}, kpgerr.Classify(
			err,
			fmt.Sprintf("annotationId=%d, systemId=%d", spec.AnnotationId, spec.SystemId),
		)
	}
	return s, tx.Commit(ctx)
}

func (p *pgAnnotationSystem) UpdateTranslation(ctx context.Context, annotationId int, systemId int, translation string) (kdb.AnnotationSystem, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return kdb.AnnotationSystem{}, xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	s, err := scan(tx.QueryRow(
		ctx,
		`
		update "annotationSystem"
		set "translation" = $1, "updatedAt" = now()
		where "annotationId" = $2 and "systemId" = $3
		returning `+columns,
		translation, annotationId, systemId,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.AnnotationSystem{}, kpgerr.Missing{
			Table:    "annotationSystem",
			Identity: fmt.Sprintf("annotationId=%d, systemId=%d", annotationId, systemId),
		}
	}
	if err != nil {
		return kdb.AnnotationSystem{}, xe.Wrap(err)
	}
	return s, tx.Commit(ctx)
}

func (p *pgAnnotationSystem) DeleteByAnnotationAndSystem(ctx context.Context, annotationId int, systemId int) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(
		ctx,
		`delete from "annotationSystem" where "annotationId" = $1 and "systemId" = $2`,
		annotationId, systemId,
	)
	if err != nil {
		return xe.Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{
			Table:    "annotationSystem",
			Identity: fmt.Sprintf("annotationId=%d, systemId=%d", annotationId, systemId),
		}
	}
	return tx.Commit(ctx)
}
