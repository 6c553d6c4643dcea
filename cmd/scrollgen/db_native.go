//go:build !cgo_sqlite

package main

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// initDB opens the namebook database with the pure-Go driver, which
// spells its connection pragmas differently from the cgo one.
func initDB(dataSource string) (*sql.DB, error) {
	return sql.Open("sqlite", dataSource+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
}
