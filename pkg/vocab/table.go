/*
Package vocab loads and filters the Japanese word frequency table.

The table is built exactly once at process start from a frequency CSV and
an optional known-vocabulary list, and is immutable afterwards. Filtering
is a pure function over the table and can run concurrently against it
without locking.
*/
package vocab

import (
	"fmt"

	"github.com/kirisagi/jpfreq/internal/utils"
)

// Record is one row of the frequency table. Rank is 1-based and assigned
// by input file order, so rank 1 is the most frequent word.
type Record struct {
	Rank    int
	Word    string
	Reading string // katakana reading, empty unless annotated at startup
	Known   bool   // member of the known-vocabulary set at load time
}

// Table is the rank-ordered word table. Read-only for every consumer
// except the loader.
type Table struct {
	records []Record
}

// NewTableFromWords builds a table directly from a word list, assigning
// ranks by position and known flags from the set. Production code loads
// tables from files; this constructor serves embedding and tests.
func NewTableFromWords(words []string, known KnownSet) *Table {
	records := make([]Record, len(words))
	for i, w := range words {
		records[i] = Record{Rank: i + 1, Word: w, Known: known.Has(w)}
	}
	return &Table{records: records}
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.records)
}

// At returns the record at index i (0-based, so At(0) has Rank 1).
func (t *Table) At(i int) Record {
	return t.records[i]
}

// Records returns the backing slice as a read-only view.
// Callers must not modify it.
func (t *Table) Records() []Record {
	return t.records
}

// KnownCount returns how many records carry the known-vocabulary flag.
func (t *Table) KnownCount() int {
	n := 0
	for _, r := range t.records {
		if r.Known {
			n++
		}
	}
	return n
}

// View is a filtered, rank-ordered subset of a Table plus the display
// instructions the presentation layer needs to render it.
type View struct {
	Rows  []Record
	Count int
	// Highlight mirrors the UI toggle. It never changes which rows are in
	// the view or their stored Known flags; it only gates KnownAt.
	Highlight bool
}

// KnownAt reports whether row i should be highlighted as known
// vocabulary. Always false when highlighting is disabled.
func (v View) KnownAt(i int) bool {
	return v.Highlight && v.Rows[i].Known
}

// CountLabel returns the human readable row count, e.g. "Showing 1,234 words".
func (v View) CountLabel() string {
	return fmt.Sprintf("Showing %s words", utils.FormatWithCommas(v.Count))
}
