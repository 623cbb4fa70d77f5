package schema

import (
	"context"
	_ "embed"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	kpool "github.com/yaraku/he-tool/pkg/db/postgres/pool"
)

//go:embed schema.sql
var ddl string

const currentVersion = 1

// Ensure brings the database schema up to the version this build needs.
//
// Already-applied versions are skipped; each upgrade runs in its own
// transaction, so a failed upgrade leaves the schema at the version it
// had before.
func Ensure(ctx context.Context, pool kpool.Pool) error {
	applied, err := version(ctx, pool)
	if err != nil {
		return err
	}
	if applied >= currentVersion {
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, ddl); err != nil {
		return err
	}
	if _, err := tx.Exec(
		ctx,
		`
		create table if not exists "schemaVersion" ("version" integer not null);
		`,
	); err != nil {
		return err
	}
	if _, err := tx.Exec(
		ctx, `insert into "schemaVersion" ("version") values ($1)`, currentVersion,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func version(ctx context.Context, pool kpool.Pool) (int, error) {
	var v *int
	if err := pool.QueryRow(
		ctx, `select max("version") from "schemaVersion"`,
	).Scan(&v); err != nil {
		if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) {
			if pgerr.Code == pgerrcode.UndefinedTable {
				return 0, nil
			}
		}
		return -1, err
	}
	if v == nil {
		return 0, nil
	}
	return *v, nil
}
