// Package database provides SQLite access for the booking audit trail.
//
// It wraps database/sql with connection setup (WAL mode, busy timeout,
// restricted file permissions) and schema migrations embedded into the
// binary via the migrations package.
//
// # Thread Safety
//
// The pool is limited to a single connection to match SQLite's
// single-writer model, so concurrent use serialises inside database/sql.
package database
