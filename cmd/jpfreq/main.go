/*
Package main implements the jpfreq word frequency server and CLI.

jpfreq serves a precomputed Japanese word frequency table to a grid
frontend. The table is loaded once at startup from a frequency CSV and an
optional known-vocabulary list, then filtered on every search-text or
highlight-toggle change from the UI. Rows carry a 1-based rank assigned
by file order and a flag marking words present in the known-vocabulary
set (a WaniKani export in the original data).

# Usage

Start the IPC server with default settings:

	jpfreq

Use custom data files and enable debug mode:

	jpfreq -freq data/clean/word_frequency.csv -vocab data/clean/wk_vocab.txt -d

Run in CLI mode for interactive searching:

	jpfreq -c -limit 10

The frequency file must be a CSV with a header row containing a "word"
column. Rank is derived from row order, not from any input column. The
vocabulary file is plain text, one word per line; if it is missing, the
highlight feature degrades to "no word highlighted" without failing
startup. A SQLite vocabulary source can be merged in with -vocab-db.

# Configuration

Runtime configuration is managed through a TOML file with data, server
and CLI sections:

	[data]
	frequency_file = "data/clean/word_frequency.csv"
	vocab_file = "data/clean/wk_vocab.txt"
	annotate_readings = false

	[server]
	max_results = 0
	max_completions = 24

The config file is automatically created with defaults if it doesn't
exist. Flags override the file for the current run.

# IPC Protocol

The server communicates via msgpack over stdin/stdout. Filter requests
re-run the substring search the grid issues on every keystroke:

	{"id": "req1", "op": "filter", "q": "る", "hl": true}

and receive matching rows in rank order plus the count label:

	{"id": "req1", "rows": [{"r": 3, "w": "食べる", "k": false}], "c": 1, "m": "Showing 1 words", "t": 120}

See the server package for the complete message set.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/kirisagi/jpfreq/internal/cli"
	"github.com/kirisagi/jpfreq/pkg/config"
	"github.com/kirisagi/jpfreq/pkg/server"
	"github.com/kirisagi/jpfreq/pkg/suggest"
	"github.com/kirisagi/jpfreq/pkg/vocab"
)

const (
	Version = "0.3.0"
	AppName = "jpfreq"
	gh      = "https://github.com/kirisagi/jpfreq"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- interactive search instead of IPC server")
	configPath := flag.String("config", "", "Path to config.toml (default: ~/.config/jpfreq/config.toml)")
	freqFile := flag.String("freq", "", "Frequency CSV file (overrides config)")
	vocabFile := flag.String("vocab", "", "Known-vocabulary list file (overrides config)")
	vocabDB := flag.String("vocab-db", "", "Known-vocabulary SQLite database (overrides config)")
	readings := flag.Bool("readings", false, "Annotate words with katakana readings at startup")
	limit := flag.Int("limit", 0, "Rows printed per search in CLI mode (default from config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	if *freqFile != "" {
		appConfig.Data.FrequencyFile = *freqFile
	}
	if *vocabFile != "" {
		appConfig.Data.VocabFile = *vocabFile
	}
	if *vocabDB != "" {
		appConfig.Data.VocabDB = *vocabDB
	}
	if *readings {
		appConfig.Data.AnnotateReadings = true
	}
	if *limit > 0 {
		appConfig.CLI.DefaultLimit = *limit
	}

	table, err := loadTable(appConfig)
	if err != nil {
		log.Fatalf("Failed to load table: %v", err)
	}
	log.Debugf("Table ready: %d words, %d known", table.Len(), table.KnownCount())

	index := suggest.NewIndex(table)

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(table, index,
			appConfig.CLI.DefaultLimit, appConfig.CLI.HighlightWK, appConfig.CLI.ShowReadings)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(table, index, appConfig)

	showStartupInfo(appConfig, table)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadTable builds the immutable table from the configured sources:
// frequency CSV (required), vocab list file and vocab database (both
// optional), plus optional reading annotation.
func loadTable(cfg *config.Config) (*vocab.Table, error) {
	known, err := vocab.LoadKnownFile(cfg.Data.VocabFile)
	if err != nil {
		return nil, err
	}
	dbKnown, err := vocab.LoadKnownDB(cfg.Data.VocabDB)
	if err != nil {
		return nil, err
	}
	known.Union(dbKnown)

	table, err := vocab.Load(cfg.Data.FrequencyFile, known)
	if err != nil {
		return nil, err
	}

	if cfg.Data.AnnotateReadings {
		annotator, err := vocab.NewAnnotator()
		if err != nil {
			return nil, fmt.Errorf("init reading annotator: %w", err)
		}
		annotator.Annotate(table)
	}
	return table, nil
}

// printVersion displays the styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ jpfreq ] Japanese word frequency table server")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(cfg *config.Config, table *vocab.Table) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("frequency file: ( %s )", cfg.Data.FrequencyFile)
	log.Infof("words: %d, known: %d", table.Len(), table.KnownCount())
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
