package namebook

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vlysnebek/scrollgen/pkg/scroll"
)

var (
	// ErrUnknownGame is returned when a named game does not exist.
	ErrUnknownGame = errors.New("unknown game")
	// ErrUnknownKind is returned when a game holds no title for a kind.
	ErrUnknownKind = errors.New("unknown scroll kind")
)

// SetupSchema initializes the namebook tables in the provided database.
// It should be called once on a new database before a Book is opened on
// it. It is idempotent and safe to call on an already-initialized
// database.
func SetupSchema(db *sql.DB) error {

	const (
		schemaGames = `
CREATE TABLE IF NOT EXISTS namebook_games (
    game_id INTEGER PRIMARY KEY,
    game_name TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`
		schemaTitles = `
CREATE TABLE IF NOT EXISTS namebook_titles (
    game_id INTEGER NOT NULL,
    kind TEXT NOT NULL,
    title TEXT NOT NULL,
    identified INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (game_id, kind)
);
`
	)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.Exec(schemaGames); err != nil {
		return fmt.Errorf("could not create games schema: %w", err)
	}

	if _, err = tx.Exec(schemaTitles); err != nil {
		return fmt.Errorf("could not create titles schema: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	return nil
}

// Book records scroll title assignments per game. It holds the database
// connection, the generator used to roll fresh titles, and prepared SQL
// statements for the common lookups.
type Book struct {
	db            *sql.DB
	gen           *scroll.Generator
	stmtGetGame   *sql.Stmt
	stmtGetGames  *sql.Stmt
	stmtAddGame   *sql.Stmt
	stmtGetTitle  *sql.Stmt
	stmtGetTitles *sql.Stmt
	stmtIdentify  *sql.Stmt
	logger        *slog.Logger
}

// New creates a Book on the given database. Titles for new games are
// rolled with the provided generator. All statements are prepared up
// front; an error is returned if any preparation fails.
func New(db *sql.DB, gen *scroll.Generator) (*Book, error) {
	stmtGetGame, err := db.Prepare(`SELECT game_id, created_at FROM namebook_games WHERE game_name = ?;`)
	if err != nil {
		return nil, err
	}

	stmtGetGames, err := db.Prepare(`SELECT game_id, game_name, created_at FROM namebook_games;`)
	if err != nil {
		return nil, err
	}

	stmtAddGame, err := db.Prepare(`INSERT INTO namebook_games (game_name) VALUES (?);`)
	if err != nil {
		return nil, err
	}

	stmtGetTitle, err := db.Prepare(`SELECT title, identified FROM namebook_titles WHERE game_id = ? AND kind = ?;`)
	if err != nil {
		return nil, err
	}

	stmtGetTitles, err := db.Prepare(`SELECT kind, title, identified FROM namebook_titles WHERE game_id = ? ORDER BY kind;`)
	if err != nil {
		return nil, err
	}

	stmtIdentify, err := db.Prepare(`UPDATE namebook_titles SET identified = 1 WHERE game_id = ? AND kind = ?;`)
	if err != nil {
		return nil, err
	}

	return &Book{
		db:            db,
		gen:           gen,
		stmtGetGame:   stmtGetGame,
		stmtGetGames:  stmtGetGames,
		stmtAddGame:   stmtAddGame,
		stmtGetTitle:  stmtGetTitle,
		stmtGetTitles: stmtGetTitles,
		stmtIdentify:  stmtIdentify,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// Close releases all prepared SQL statements held by the Book. It should
// be called when the Book is no longer needed.
func (b *Book) Close() {
	_ = b.stmtGetGame.Close()
	_ = b.stmtGetGames.Close()
	_ = b.stmtAddGame.Close()
	_ = b.stmtGetTitle.Close()
	_ = b.stmtGetTitles.Close()
	_ = b.stmtIdentify.Close()
}

// SetLogger sets the logger for the Book. By default, all logs are
// discarded.
func (b *Book) SetLogger(logger *slog.Logger) {
	if logger != nil {
		b.logger = logger
	}
}
