package namebook

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// GameInfo holds the metadata for a single recorded game.
type GameInfo struct {
	Id      int
	Name    string
	Created string
}

// Naming is one kind-to-title assignment within a game.
type Naming struct {
	Kind       string
	Title      string
	Identified bool
}

// CreateGame records a new game and rolls a fresh title for every scroll
// kind the generator knows. The whole assignment happens in one
// transaction: either the game exists with all of its titles or not at
// all. The game name must be unused.
func (b *Book) CreateGame(ctx context.Context, name string) (GameInfo, error) {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return GameInfo{}, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	res, err := tx.StmtContext(ctx, b.stmtAddGame).ExecContext(ctx, name)
	if err != nil {
		return GameInfo{}, fmt.Errorf("could not create game %q: %w", name, err)
	}
	gameID, err := res.LastInsertId()
	if err != nil {
		return GameInfo{}, fmt.Errorf("could not read new game id: %w", err)
	}

	stmtAssign, err := tx.PrepareContext(ctx, `INSERT INTO namebook_titles (game_id, kind, title) VALUES (?, ?, ?);`)
	if err != nil {
		return GameInfo{}, fmt.Errorf("failed to prepare title insert statement: %w", err)
	}
	defer func(stmt *sql.Stmt) {
		_ = stmt.Close()
	}(stmtAssign)

	kinds := b.gen.Kinds()
	for _, kind := range kinds {
		title := b.gen.Title()
		if _, err = stmtAssign.ExecContext(ctx, gameID, kind.Text, title); err != nil {
			return GameInfo{}, fmt.Errorf("could not assign title for kind %q: %w", kind.Text, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return GameInfo{}, fmt.Errorf("could not commit transaction: %w", err)
	}

	b.logger.InfoContext(ctx, "Game created",
		slog.String("game_name", name),
		slog.Int("game_id", int(gameID)),
		slog.Int("titles_assigned", len(kinds)),
	)

	return b.GetGame(ctx, name)
}

// GetGame retrieves the metadata for a single game by name.
func (b *Book) GetGame(ctx context.Context, name string) (GameInfo, error) {
	var gameID int
	var created string
	err := b.stmtGetGame.QueryRowContext(ctx, name).Scan(&gameID, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return GameInfo{}, fmt.Errorf("%w: %q", ErrUnknownGame, name)
	}
	if err != nil {
		return GameInfo{}, err
	}
	return GameInfo{
		Id:      gameID,
		Name:    name,
		Created: created,
	}, nil
}

// GetGames retrieves metadata for all recorded games, returned in a map
// keyed by game name.
func (b *Book) GetGames(ctx context.Context) (map[string]GameInfo, error) {
	rows, err := b.stmtGetGames.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	games := make(map[string]GameInfo)
	for rows.Next() {
		var game GameInfo
		if err = rows.Scan(&game.Id, &game.Name, &game.Created); err != nil {
			return nil, err
		}
		games[game.Name] = game
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return games, nil
}

// Titles returns every kind-to-title assignment of a game, ordered by
// kind.
func (b *Book) Titles(ctx context.Context, game GameInfo) ([]Naming, error) {
	rows, err := b.stmtGetTitles.QueryContext(ctx, game.Id)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var namings []Naming
	for rows.Next() {
		var n Naming
		if err = rows.Scan(&n.Kind, &n.Title, &n.Identified); err != nil {
			return nil, err
		}
		namings = append(namings, n)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return namings, nil
}

// Title returns the assignment for a single kind within a game.
func (b *Book) Title(ctx context.Context, game GameInfo, kind string) (Naming, error) {
	n := Naming{Kind: kind}
	err := b.stmtGetTitle.QueryRowContext(ctx, game.Id, kind).Scan(&n.Title, &n.Identified)
	if errors.Is(err, sql.ErrNoRows) {
		return Naming{}, fmt.Errorf("%w: %q in game %q", ErrUnknownKind, kind, game.Name)
	}
	if err != nil {
		return Naming{}, err
	}
	return n, nil
}

// Identify marks the title of one kind within a game as identified.
func (b *Book) Identify(ctx context.Context, game GameInfo, kind string) error {
	res, err := b.stmtIdentify.ExecContext(ctx, game.Id, kind)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %q in game %q", ErrUnknownKind, kind, game.Name)
	}

	b.logger.InfoContext(ctx, "Scroll identified",
		slog.String("game_name", game.Name),
		slog.String("kind", kind),
	)

	return nil
}

// RemoveGame deletes a game and all of its title assignments. The
// operation is performed within a transaction.
func (b *Book) RemoveGame(ctx context.Context, game GameInfo) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.ExecContext(ctx, `DELETE FROM namebook_titles WHERE game_id = ?`, game.Id); err != nil {
		return fmt.Errorf("failed to remove titles for game %d: %w", game.Id, err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM namebook_games WHERE game_id = ?`, game.Id); err != nil {
		return fmt.Errorf("failed to remove game %d: %w", game.Id, err)
	}

	b.logger.InfoContext(ctx, "Game removed",
		slog.String("game_name", game.Name),
		slog.Int("game_id", game.Id),
	)

	return tx.Commit()
}
