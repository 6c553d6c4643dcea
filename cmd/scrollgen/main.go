// Package main is the entry point for the scrollgen CLI, a generator of
// scroll titles in the style of the game Rogue.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vlysnebek/scrollgen/pkg/scroll"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

const defaultConfigPath = "./scrollgen.json"

var (
	appConfig *Config
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "scrollgen",
	Short: "Generate scroll titles in the style of Rogue",
	Long: `scrollgen prints random scroll titles like the ones unidentified
scrolls wear in the game Rogue, such as "potrhov sunsna glenzok" or
"wahzeb of valturs". Titles are drawn from a CSPRNG unless --seed pins
them down.

Word and title lengths are configurable through syllable and word count
bounds; the entropy subcommand reports how large the configured title
space is. The book subcommands keep per-game title assignments in a
local SQLite database, the way Rogue fixes its scroll names at the
start of every game.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: loadAppConfig,
	RunE:              runGenerate,
}

// loadAppConfig reads the config file named by --config (or the default
// path) and prepares the application logger before any command runs.
func loadAppConfig(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	appConfig = cfg
	logger = newLogger(cfg.LogLevel)
	return nil
}

// newLogger builds a text logger to stderr at the named level. Titles go
// to stdout, so logging stays out of the way of pipes.
func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// addGenerationFlags registers the title-shape flags shared by the root
// and entropy commands.
func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("min-syllables", "s", scroll.DefaultMinSyllables, "minimum syllables per word")
	cmd.Flags().IntP("max-syllables", "S", scroll.DefaultMaxSyllables, "maximum syllables per word")
	cmd.Flags().IntP("min-words", "w", scroll.DefaultMinWords, "minimum words per title")
	cmd.Flags().IntP("max-words", "W", scroll.DefaultMaxWords, "maximum words per title")
	cmd.Flags().Int("connector-chance", scroll.DefaultConnectorChance, `percent chance of an interior "of"`)
}

// intFlagOr returns the flag value when it was set on the command line
// and the fallback from the config file otherwise.
func intFlagOr(cmd *cobra.Command, name string, fallback int) int {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetInt(name)
		return v
	}
	return fallback
}

// generatorOptions assembles scroll.Options from the command line layered
// over the config file defaults.
func generatorOptions(cmd *cobra.Command, cfg *GenerationConfig) []scroll.Option {
	opts := []scroll.Option{
		scroll.WithSyllableCount(
			intFlagOr(cmd, "min-syllables", cfg.MinSyllables),
			intFlagOr(cmd, "max-syllables", cfg.MaxSyllables),
		),
		scroll.WithWordCount(
			intFlagOr(cmd, "min-words", cfg.MinWords),
			intFlagOr(cmd, "max-words", cfg.MaxWords),
		),
		scroll.WithConnectorChance(intFlagOr(cmd, "connector-chance", cfg.ConnectorChance)),
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		opts = append(opts, scroll.WithSeed(seed))
	}
	return opts
}

// runGenerate is the root command: print scroll titles, one per line.
func runGenerate(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 0 {
		return fmt.Errorf("you owe me %d scroll titles", -count)
	}

	showKind, _ := cmd.Flags().GetBool("kind")
	kindOnly, _ := cmd.Flags().GetBool("kind-only")
	showEntropy, _ := cmd.Flags().GetBool("entropy")

	gen, err := scroll.New(generatorOptions(cmd, appConfig.Generation)...)
	if err != nil {
		return err
	}
	logger.Debug("generator ready",
		slog.Int("count", count),
		slog.Bool("kind", showKind),
		slog.Bool("kind_only", kindOnly),
	)

	out := cmd.OutOrStdout()
	for i := 0; i < count; i++ {
		switch {
		case kindOnly:
			fmt.Fprintln(out, gen.Kind())
		case showKind:
			fmt.Fprintf(out, "%s [%s]\n", gen.Title(), gen.Kind())
		default:
			fmt.Fprintln(out, gen.Title())
		}
	}

	if showEntropy {
		fmt.Fprintln(out, gen.Entropy())
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: "+defaultConfigPath+")")

	addGenerationFlags(rootCmd)
	rootCmd.Flags().IntP("count", "n", 1, "number of scroll titles to generate")
	rootCmd.Flags().BoolP("kind", "k", false, "show kind of scroll")
	rootCmd.Flags().BoolP("kind-only", "K", false, "only show kind of scroll")
	rootCmd.Flags().BoolP("entropy", "H", false, "print the title entropy after generating")
	rootCmd.Flags().Uint64("seed", 0, "seed for reproducible output (random when unset)")
	rootCmd.MarkFlagsMutuallyExclusive("kind", "kind-only")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
