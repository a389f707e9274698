package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"
)

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	DriverCode       string `json:"driver_code,omitempty"`
	DriverConstraint string `json:"driver_constraint,omitempty"`
	DriverTable      string `json:"driver_table,omitempty"`
	DriverColumn     string `json:"driver_column,omitempty"`
	DriverDetail     string `json:"driver_detail,omitempty"`
	DriverMessage    string `json:"driver_message,omitempty"`
}

// Dump flattens an error chain, pulling out driver-level detail for sqlite and
// postgres so duplicate-key and constraint failures are diagnosable from logs.
func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		d.DriverCode = fmt.Sprintf("%d/%d", int(sqliteErr.Code), int(sqliteErr.ExtendedCode))
		d.DriverMessage = sqliteErr.Error()
		return d
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		d.DriverCode = pgxErr.Code
		d.DriverConstraint = pgxErr.ConstraintName
		d.DriverTable = pgxErr.TableName
		d.DriverColumn = pgxErr.ColumnName
		d.DriverDetail = pgxErr.Detail
		d.DriverMessage = pgxErr.Message
		return d
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		d.DriverCode = string(pqErr.Code)
		d.DriverConstraint = pqErr.Constraint
		d.DriverTable = pqErr.Table
		d.DriverColumn = pqErr.Column
		d.DriverDetail = pqErr.Detail
		d.DriverMessage = pqErr.Message
		return d
	}

	return d
}

// IsDuplicateKey reports whether the error is a unique-constraint violation on
// either supported driver.
func IsDuplicateKey(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
