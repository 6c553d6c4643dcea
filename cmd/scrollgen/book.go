package main

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vlysnebek/scrollgen/pkg/namebook"
	"github.com/vlysnebek/scrollgen/pkg/scroll"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Manage per-game scroll title assignments",
	Long: `Book keeps a local SQLite ledger of scroll titles per game, the way
Rogue assigns every scroll kind a fixed random title when a game starts.
Use subcommands to start games, list their titles, and mark scrolls
identified.`,
}

// openBook opens the configured database, ensures the schema exists, and
// builds a Book whose generator uses the config file bounds.
func openBook(cmd *cobra.Command) (*namebook.Book, *sql.DB, error) {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = appConfig.DatabasePath
	}

	db, err := initDB(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := namebook.SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to set up namebook schema: %w", err)
	}

	gen, err := scroll.New(generatorOptions(cmd, appConfig.Generation)...)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	book, err := namebook.New(db, gen)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	book.SetLogger(logger)
	return book, db, nil
}

// --- new subcommand ---

var bookNewCmd = &cobra.Command{
	Use:   "new [game]",
	Short: "Start a game and roll a title for every scroll kind",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookNew,
}

func runBookNew(cmd *cobra.Command, args []string) error {
	book, db, err := openBook(cmd)
	if err != nil {
		return err
	}
	defer func() {
		book.Close()
		_ = db.Close()
	}()

	game, err := book.CreateGame(context.Background(), args[0])
	if err != nil {
		return err
	}
	namings, err := book.Titles(context.Background(), game)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created game %q with %d scroll titles\n", game.Name, len(namings))
	return nil
}

// --- list subcommand ---

var bookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded games",
	Args:  cobra.NoArgs,
	RunE:  runBookList,
}

func runBookList(cmd *cobra.Command, args []string) error {
	book, db, err := openBook(cmd)
	if err != nil {
		return err
	}
	defer func() {
		book.Close()
		_ = db.Close()
	}()

	games, err := book.GetGames(context.Background())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(games) == 0 {
		fmt.Fprintln(out, "No games recorded.")
		return nil
	}

	names := make([]string, 0, len(games))
	for name := range games {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "%-20s  created %s\n", name, games[name].Created)
	}
	return nil
}

// --- titles subcommand ---

var bookTitlesCmd = &cobra.Command{
	Use:   "titles [game]",
	Short: "Show the title assigned to every scroll kind in a game",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookTitles,
}

func runBookTitles(cmd *cobra.Command, args []string) error {
	book, db, err := openBook(cmd)
	if err != nil {
		return err
	}
	defer func() {
		book.Close()
		_ = db.Close()
	}()

	game, err := book.GetGame(context.Background(), args[0])
	if err != nil {
		return err
	}
	namings, err := book.Titles(context.Background(), game)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-30s  %-42s  %s\n", "Kind", "Title", "Identified")
	fmt.Fprintln(out, strings.Repeat("-", 84))
	for _, n := range namings {
		mark := ""
		if n.Identified {
			mark = "yes"
		}
		fmt.Fprintf(out, "%-30s  %-42s  %s\n", n.Kind, n.Title, mark)
	}
	return nil
}

// --- identify subcommand ---

var bookIdentifyCmd = &cobra.Command{
	Use:   "identify [game] [kind]",
	Short: "Mark one scroll kind in a game as identified",
	Args:  cobra.ExactArgs(2),
	RunE:  runBookIdentify,
}

func runBookIdentify(cmd *cobra.Command, args []string) error {
	book, db, err := openBook(cmd)
	if err != nil {
		return err
	}
	defer func() {
		book.Close()
		_ = db.Close()
	}()

	game, err := book.GetGame(context.Background(), args[0])
	if err != nil {
		return err
	}
	if err := book.Identify(context.Background(), game, args[1]); err != nil {
		return err
	}
	n, err := book.Title(context.Background(), game, args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%q is the scroll of %s\n", n.Title, n.Kind)
	return nil
}

// --- rm subcommand ---

var bookRmCmd = &cobra.Command{
	Use:   "rm [game]",
	Short: "Remove a game and all of its title assignments",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookRm,
}

func runBookRm(cmd *cobra.Command, args []string) error {
	book, db, err := openBook(cmd)
	if err != nil {
		return err
	}
	defer func() {
		book.Close()
		_ = db.Close()
	}()

	game, err := book.GetGame(context.Background(), args[0])
	if err != nil {
		return err
	}
	if err := book.RemoveGame(context.Background(), game); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed game %q\n", game.Name)
	return nil
}

func init() {
	bookCmd.PersistentFlags().String("db", "", "database path (default from config)")

	bookCmd.AddCommand(bookNewCmd)
	bookCmd.AddCommand(bookListCmd)
	bookCmd.AddCommand(bookTitlesCmd)
	bookCmd.AddCommand(bookIdentifyCmd)
	bookCmd.AddCommand(bookRmCmd)

	rootCmd.AddCommand(bookCmd)
}
