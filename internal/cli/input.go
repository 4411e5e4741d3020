// Package cli handles cmd line input for searching the table interactively and testing features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kirisagi/jpfreq/pkg/suggest"
	"github.com/kirisagi/jpfreq/pkg/vocab"
)

// InputHandler processes search terms from stdin and prints matching
// rows. Slash commands adjust display behavior:
//
//	/wk      toggle known-vocabulary highlighting
//	/top N   change how many rows are printed per search
//	/p TEXT  prefix suggestions instead of a substring search
type InputHandler struct {
	table        *vocab.Table
	index        *suggest.Index
	printLimit   int
	highlight    bool
	showReadings bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(table *vocab.Table, index *suggest.Index, printLimit int, highlight, showReadings bool) *InputHandler {
	return &InputHandler{
		table:        table,
		index:        index,
		printLimit:   printLimit,
		highlight:    highlight,
		showReadings: showReadings,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("jpfreq CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Printf("Table loaded: %d words, %d known", h.table.Len(), h.table.KnownCount())
	log.Print("type a search term and press Enter (/wk, /top N, /p TEXT; Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			h.printView(h.table.Filter("", h.highlight))
			continue
		}
		h.handleInput(line)
	}
}

// handleInput processes a single line: a slash command or a search term.
func (h *InputHandler) handleInput(line string) {
	switch {
	case line == "/wk":
		h.highlight = !h.highlight
		log.Printf("Known-vocabulary highlighting: %v", h.highlight)
		return
	case strings.HasPrefix(line, "/top "):
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "/top ")))
		if err != nil || n < 1 {
			log.Errorf("Bad /top argument: %s", line)
			return
		}
		h.printLimit = n
		log.Printf("Printing up to %d rows", n)
		return
	case strings.HasPrefix(line, "/p "):
		h.handlePrefix(strings.TrimSpace(strings.TrimPrefix(line, "/p ")))
		return
	}

	start := time.Now()
	view := h.table.Filter(line, h.highlight)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for term '%s'", elapsed, line)

	if view.Count == 0 {
		log.Warnf("No words match '%s'", line)
		return
	}
	h.printView(view)
}

// handlePrefix prints prefix suggestions from the index.
func (h *InputHandler) handlePrefix(prefix string) {
	if prefix == "" {
		log.Error("Empty prefix")
		return
	}
	suggestions := h.index.Complete(prefix, h.printLimit)
	if len(suggestions) == 0 {
		log.Warnf("No suggestions for prefix '%s'", prefix)
		return
	}
	log.Printf("Found %d suggestions for prefix '%s':", len(suggestions), prefix)
	for _, s := range suggestions {
		h.printRow(vocab.Record{Rank: s.Rank, Word: s.Word, Reading: s.Reading, Known: s.Known}, h.highlight && s.Known)
	}
}

// printView prints up to printLimit rows plus the count label.
func (h *InputHandler) printView(view vocab.View) {
	shown := view.Rows
	if len(shown) > h.printLimit {
		shown = shown[:h.printLimit]
	}
	for i, r := range shown {
		h.printRow(r, view.KnownAt(i))
	}
	if len(shown) < view.Count {
		log.Printf("... and %d more", view.Count-len(shown))
	}
	log.Print(view.CountLabel())
}

// printRow prints one row, marking known vocabulary in purple when
// highlighting is on.
func (h *InputHandler) printRow(r vocab.Record, known bool) {
	word := r.Word
	if known {
		word = fmt.Sprintf("\033[38;5;171m%s\033[0m", word)
	}
	if h.showReadings && r.Reading != "" {
		log.Printf("%6d. %-24s (%s)", r.Rank, word, r.Reading)
		return
	}
	log.Printf("%6d. %s", r.Rank, word)
}
