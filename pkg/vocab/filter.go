package vocab

import (
	"github.com/kirisagi/jpfreq/internal/utils"
)

// Filter returns the rows whose word contains term as a case-insensitive
// substring, preserving rank order. An empty term matches every row.
// The highlight flag is passed through to the view untouched; it never
// changes the row set (the UI toggle only affects styling).
//
// Filter is pure: it always recomputes from the immutable table, so it is
// safe to call concurrently and never fails. An unmatched term yields an
// empty view with Count 0.
func (t *Table) Filter(term string, highlight bool) View {
	if term == "" {
		return View{Rows: t.records, Count: len(t.records), Highlight: highlight}
	}

	var rows []Record
	for _, r := range t.records {
		if utils.ContainsFold(r.Word, term) {
			rows = append(rows, r)
		}
	}
	return View{Rows: rows, Count: len(rows), Highlight: highlight}
}
