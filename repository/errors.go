package repository

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
)

// MissingEntityError is returned when a row that the caller expects to exist
// is not in the database.
type MissingEntityError struct {
	Entity string
	Key    string
}

func (e *MissingEntityError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

func IsMissing(err error) bool {
	var missing *MissingEntityError
	return errors.As(err, &missing)
}

// IsDuplicate reports whether err is a MySQL unique key violation.
func IsDuplicate(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}

// IsReferenced reports whether err is a MySQL foreign key violation raised
// because other rows still point at the row being deleted.
func IsReferenced(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlRowIsReferenced
}

func missingOr(err error, entity, key string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &MissingEntityError{Entity: entity, Key: key}
	}
	return errors.Wrapf(err, "error loading %s %s", entity, key)
}
