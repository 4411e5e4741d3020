package vocab

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Annotator attaches katakana readings to table records using the IPA
// dictionary. Readings are display-only metadata: rank, word and known
// flags are never touched.
type Annotator struct {
	t *tokenizer.Tokenizer
}

// NewAnnotator creates a tokenizer instance backed by the embedded IPA dict.
func NewAnnotator() (*Annotator, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Annotator{t: t}, nil
}

// Reading returns the katakana reading of a word. Segments without a
// dictionary reading fall back to their surface form, so unknown words
// come back unchanged rather than empty.
func (a *Annotator) Reading(word string) string {
	var b strings.Builder
	for _, tok := range a.t.Tokenize(word) {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		// IPA feature 7 is the reading; "*" means none recorded.
		features := tok.Features()
		if len(features) > 7 && features[7] != "*" {
			b.WriteString(features[7])
		} else {
			b.WriteString(tok.Surface)
		}
	}
	return b.String()
}

// Annotate fills in the Reading field of every record. It runs during
// startup, before the table is shared with any consumer; the table is
// immutable from then on.
func (a *Annotator) Annotate(t *Table) {
	for i := range t.records {
		t.records[i].Reading = a.Reading(t.records[i].Word)
	}
	log.Debugf("Annotated readings for %d words", len(t.records))
}
