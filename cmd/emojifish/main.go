package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/kotaroooo0/emojifish"
	"github.com/kotaroooo0/emojifish/morphology"
	"github.com/rs/zerolog"
)

var (
	flagConfig string
	flagDebug  bool
)

var errUsage = errors.New("usage")

func init() {
	flag.StringVar(&flagConfig, "config", "emojifish.yaml", "Config file path")
	flag.BoolVar(&flagDebug, "debug", false, "Dump results and log at debug level")
	flag.Usage = usage
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: emojifish [-config path] [-debug] <command> args...")
	fmt.Fprintln(os.Stderr, `Commands:
  search TERM          substring search over names, keywords and aliases
  text TEXT...         free-text search through the query analyzer
  suggest TERM         fuzzy name suggestions
  aliases NAME         every name of the same emoji
  tone EMOJI TONE      apply a skin tone (light..dark or 1..5)
  variations EMOJI     every skin tone variation
  name EMOJI           reverse lookup
  validate STR         check an emoji, a name and a tone
  categories           list categories
  import               copy the embedded dataset into the configured database`)
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(flagConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}
	log := setupLogger(cfg)

	if err := run(cfg, log, os.Stdout, flag.Arg(0), flag.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) {
			usage()
			os.Exit(2)
		}
		log.Error().Err(err).Str("command", flag.Arg(0)).Msg("command failed")
		os.Exit(1)
	}
}

func setupLogger(cfg *Config) zerolog.Logger {
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	if flagDebug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func run(cfg *Config, log zerolog.Logger, w io.Writer, command string, args []string) error {
	if command == "import" {
		return runImport(cfg, log)
	}

	engine, closeStorage, err := newEngine(cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	switch command {
	case "search", "text", "suggest":
		if len(args) == 0 {
			return errUsage
		}
		if command == "suggest" {
			suggestions := engine.Suggest(args[0], 10)
			for _, s := range suggestions {
				c, _ := engine.Character(s.Name)
				fmt.Fprintf(w, "%s %s (%s, %d)\n", c, s.Name, s.Matched, s.Distance)
			}
			dump(suggestions)
			return nil
		}
		var results []emojifish.SearchResult
		if command == "search" {
			results = engine.Search(args[0])
		} else {
			results = engine.SearchText(strings.Join(args, " "))
		}
		for _, r := range results {
			fmt.Fprintf(w, "%s %s %s\n", r.Character, r.Name, strconv.FormatFloat(r.Score, 'f', 1, 64))
		}
		dump(results)
	case "aliases":
		if len(args) != 1 {
			return errUsage
		}
		fmt.Fprintln(w, strings.Join(engine.GetAllNames(args[0]), " "))
	case "tone":
		if len(args) != 2 {
			return errUsage
		}
		toned, err := engine.ApplySkinTone(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(w, toned)
	case "variations":
		if len(args) != 1 {
			return errUsage
		}
		variations := engine.GetAllSkinToneVariations(args[0])
		fmt.Fprintf(w, "%s: %s\n", emojifish.DefaultVariation, variations[emojifish.DefaultVariation])
		for _, tone := range emojifish.SkinTones {
			fmt.Fprintf(w, "%s: %s\n", tone, variations[string(tone)])
		}
		if !engine.SupportsSkinTone(emojifish.ByCharacter(args[0])) {
			log.Warn().Str("emoji", args[0]).Msg("emoji is not skin-tone capable")
		}
	case "name":
		if len(args) != 1 {
			return errUsage
		}
		name, ok := engine.GetNameFromEmoji(args[0])
		if !ok {
			name, ok = engine.GetNameFromEmoji(engine.RemoveSkinTone(args[0]))
		}
		if !ok {
			return fmt.Errorf("unknown emoji %q", args[0])
		}
		fmt.Fprintln(w, name)
	case "validate":
		if len(args) != 1 {
			return errUsage
		}
		fmt.Fprintf(w, "emoji: %t\nname: %t\ntone: %t\n",
			engine.IsValidEmoji(args[0]), emojifish.IsValidEmojiName(args[0]), emojifish.IsValidSkinTone(args[0]))
	case "categories":
		for _, c := range engine.GetCategories() {
			fmt.Fprintf(w, "%s\t%d\n", c, len(engine.GetByCategory(c)))
		}
	default:
		return errUsage
	}
	return nil
}

func newEngine(cfg *Config, log zerolog.Logger) (*emojifish.Engine, func() error, error) {
	storage, closeStorage, err := newStorage(cfg)
	if err != nil {
		return nil, nil, err
	}
	opts := []emojifish.Option{emojifish.WithLogger(log)}
	if cfg.QueryAnalyzer == analyzerJapanese {
		kagome, err := morphology.NewKagome()
		if err != nil {
			closeStorage()
			return nil, nil, err
		}
		opts = append(opts, emojifish.WithQueryAnalyzer(emojifish.NewJapaneseAnalyzer(kagome)))
	}
	engine, err := emojifish.NewEngine(storage, opts...)
	if err != nil {
		closeStorage()
		return nil, nil, err
	}
	return engine, closeStorage, nil
}

// newStorage returns the storage and a func releasing what it holds.
func newStorage(cfg *Config) (emojifish.Storage, func() error, error) {
	if cfg.Storage == storageRdb {
		db, err := emojifish.NewDBClient(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return emojifish.NewStorageRdbImpl(db), db.Close, nil
	}
	storage, err := emojifish.NewEmbeddedStorage()
	if err != nil {
		return nil, nil, err
	}
	return storage, func() error { return nil }, nil
}

func runImport(cfg *Config, log zerolog.Logger) error {
	if cfg.Storage != storageRdb {
		return fmt.Errorf("import needs storage %q, got %q", storageRdb, cfg.Storage)
	}
	embedded, err := emojifish.NewEmbeddedStorage()
	if err != nil {
		return err
	}
	catalog, err := emojifish.NewCatalog(embedded)
	if err != nil {
		return err
	}
	db, err := emojifish.NewDBClient(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	storage := emojifish.NewStorageRdbImpl(db)
	if err := storage.CreateSchema(); err != nil {
		return err
	}
	if err := storage.Import(catalog); err != nil {
		return err
	}
	count, err := storage.CountEmojis()
	if err != nil {
		return err
	}
	log.Info().Str("driver", cfg.Database.Driver).Int("emojis", count).Msg("dataset imported")
	return nil
}

func dump(v interface{}) {
	if flagDebug {
		pp.Fprintln(os.Stderr, v)
	}
}
