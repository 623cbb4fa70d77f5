package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	kdb "github.com/yaraku/he-tool/pkg/db"
	kpgann "github.com/yaraku/he-tool/pkg/db/postgres/annotation"
	kpgans "github.com/yaraku/he-tool/pkg/db/postgres/annotationsystem"
	kpgbit "github.com/yaraku/he-tool/pkg/db/postgres/bitext"
	kpgdoc "github.com/yaraku/he-tool/pkg/db/postgres/document"
	kpgeval "github.com/yaraku/he-tool/pkg/db/postgres/evaluation"
	kpgmark "github.com/yaraku/he-tool/pkg/db/postgres/marking"
	kpool "github.com/yaraku/he-tool/pkg/db/postgres/pool"
	kpgschema "github.com/yaraku/he-tool/pkg/db/postgres/schema"
	kpgsys "github.com/yaraku/he-tool/pkg/db/postgres/system"
	kpguser "github.com/yaraku/he-tool/pkg/db/postgres/user"
	xe "github.com/yaraku/he-tool/pkg/errors"
)

type hetDBPostgres struct {
	pool              *pgxpool.Pool
	users             kdb.UserInterface
	documents         kdb.DocumentInterface
	bitexts           kdb.BitextInterface
	systems           kdb.SystemInterface
	evaluations       kdb.EvaluationInterface
	annotations       kdb.AnnotationInterface
	annotationSystems kdb.AnnotationSystemInterface
	markings          kdb.MarkingInterface
}

type Config struct {
	EnsureSchema bool
}

func DefaultConfig() Config {
	return Config{EnsureSchema: true}
}

type Option func(*Config) *Config

// WithoutSchemaEnsure skips applying the schema at connect time.
// Meant for deployments where migrations run out of band.
func WithoutSchemaEnsure() Option {
	return func(c *Config) *Config {
		c.EnsureSchema = false
		return c
	}
}

func New(
	ctx context.Context,
	url string,
	options ...Option,
) (kdb.Database, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	c := DefaultConfig()
	for _, option := range options {
		c = *option(&c)
	}

	p := kpool.Wrap(pool)
	if c.EnsureSchema {
		if err := kpgschema.Ensure(ctx, p); err != nil {
			pool.Close()
			return nil, xe.Wrap(err)
		}
	}

	return &hetDBPostgres{
		pool:              pool,
		users:             kpguser.New(p),
		documents:         kpgdoc.New(p),
		bitexts:           kpgbit.New(p),
		systems:           kpgsys.New(p),
		evaluations:       kpgeval.New(p),
		annotations:       kpgann.New(p),
		annotationSystems: kpgans.New(p),
		markings:          kpgmark.New(p),
	}, nil
}

func (h *hetDBPostgres) Users() kdb.UserInterface {
	return h.users
}

func (h *hetDBPostgres) Documents() kdb.DocumentInterface {
	return h.documents
}

func (h *hetDBPostgres) Bitexts() kdb.BitextInterface {
	return h.bitexts
}

func (h *hetDBPostgres) Systems() kdb.SystemInterface {
	return h.systems
}

func (h *hetDBPostgres) Evaluations() kdb.EvaluationInterface {
	return h.evaluations
}

func (h *hetDBPostgres) Annotations() kdb.AnnotationInterface {
	return h.annotations
}

func (h *hetDBPostgres) AnnotationSystems() kdb.AnnotationSystemInterface {
	return h.annotationSystems
}

func (h *hetDBPostgres) Markings() kdb.MarkingInterface {
	return h.markings
}

func (h *hetDBPostgres) Close() error {
	h.pool.Close()
	return nil
}
