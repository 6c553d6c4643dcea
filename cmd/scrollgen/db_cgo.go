//go:build cgo_sqlite

package main

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// initDB opens the namebook database with the cgo driver. WAL with a busy
// timeout keeps concurrent scrollgen invocations from tripping over each
// other.
func initDB(dataSource string) (*sql.DB, error) {
	return sql.Open("sqlite3", dataSource+"?_journal_mode=WAL&_busy_timeout=5000")
}
