package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	kdb "github.com/yaraku/he-tool/pkg/db"
)

// requested record is missing.
type Missing struct {
	Table    string
	Identity string
}

var _ error = Missing{}

func (m Missing) Error() string {
	return fmt.Sprintf("%s is not found in %s ", m.Identity, m.Table)
}
func (m Missing) Unwrap() error {
	return kdb.ErrMissing
}

// a write collided with an unique constraint.
type Conflict struct {
	Table    string
	Identity string
}

var _ error = Conflict{}

func (c Conflict) Error() string {
	return fmt.Sprintf("%s already exists in %s ", c.Identity, c.Table)
}
func (c Conflict) Unwrap() error {
	return kdb.ErrConflict
}

// a write pointed at a foreign key which does not resolve.
type InvalidReference struct {
	Table      string
	Constraint string
}

var _ error = InvalidReference{}

func (i InvalidReference) Error() string {
	return fmt.Sprintf("reference from %s is broken (constraint: %s)", i.Table, i.Constraint)
}
func (i InvalidReference) Unwrap() error {
	return kdb.ErrInvalidReference
}

// BrokenConstraint names the foreign key constraint that failed, as
// postgres reports it.
func (i InvalidReference) BrokenConstraint() string {
	return i.Constraint
}

// Classify translates postgres constraint violations into store errors.
//
// Unique violations become Conflict, foreign key violations become
// InvalidReference. Anything else is passed through as is.
func Classify(err error, identity string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return Conflict{Table: pgErr.TableName, Identity: identity}
	case pgerrcode.ForeignKeyViolation:
		return InvalidReference{Table: pgErr.TableName, Constraint: pgErr.ConstraintName}
	}
	return err
}
