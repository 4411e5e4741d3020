package vocab

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// KnownSet is the membership oracle used while building the table.
// It is not retained once the table exists.
type KnownSet map[string]struct{}

// NewKnownSet returns an empty known-vocabulary set.
func NewKnownSet() KnownSet {
	return make(KnownSet)
}

// Add inserts a trimmed word into the set. Blank input is ignored.
func (s KnownSet) Add(word string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}
	s[word] = struct{}{}
}

// Has reports set membership.
func (s KnownSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Union merges other into s.
func (s KnownSet) Union(other KnownSet) {
	for word := range other {
		s[word] = struct{}{}
	}
}

// LoadKnownFile reads a newline-delimited UTF-8 vocabulary list.
// A missing file is not an error: the highlight feature degrades to
// "no word highlighted" and startup continues with an empty set.
func LoadKnownFile(path string) (KnownSet, error) {
	set := NewKnownSet()
	if path == "" {
		return set, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Vocab file %s not found, highlighting disabled", path)
			return set, nil
		}
		return nil, fmt.Errorf("open vocab file %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		set.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vocab file %s: %w", path, err)
	}

	log.Debugf("Loaded %d known words from %s", len(set), path)
	return set, nil
}

// Load builds the table from the frequency CSV and a known-vocabulary
// set. The CSV must have a header row with a "word" column; other columns
// are ignored and rank is assigned by row order. Malformed rows fail the
// load rather than being skipped, so a bad input file surfaces at startup
// instead of as silently missing rows.
func Load(freqPath string, known KnownSet) (*Table, error) {
	file, err := os.Open(freqPath)
	if err != nil {
		return nil, fmt.Errorf("open frequency file %s: %w", freqPath, err)
	}
	defer file.Close()

	table, err := parse(file, known)
	if err != nil {
		return nil, fmt.Errorf("parse frequency file %s: %w", freqPath, err)
	}
	return table, nil
}

// LoadFiles is the startup entry point: frequency CSV plus optional
// vocabulary list. Only the frequency file is required.
func LoadFiles(freqPath, vocabPath string) (*Table, error) {
	known, err := LoadKnownFile(vocabPath)
	if err != nil {
		return nil, err
	}
	return Load(freqPath, known)
}

// parse reads the CSV rows into records. Split out from Load so the
// format handling is testable without touching the filesystem.
func parse(r io.Reader, known KnownSet) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, err
	}

	wordCol := -1
	for i, name := range header {
		if strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) == "word" {
			wordCol = i
			break
		}
	}
	if wordCol == -1 {
		return nil, fmt.Errorf("no 'word' column in header %v", header)
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		word := strings.TrimSpace(row[wordCol])
		if word == "" {
			return nil, fmt.Errorf("empty word at row %d", len(records)+2)
		}

		records = append(records, Record{
			Rank:  len(records) + 1,
			Word:  word,
			Known: known.Has(word),
		})
	}

	log.Debugf("Loaded %d words", len(records))
	return &Table{records: records}, nil
}
