/*
Package suggest provides prefix suggestions over the loaded word table.

The index is a Patricia trie built once after the table is loaded and
never mutated, so lookups are safe under concurrent requests. Suggestions
are ordered by frequency rank (rank 1 first), matching the table order
the grid displays.
*/
package suggest

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/kirisagi/jpfreq/pkg/vocab"
)

// Suggestion is one prefix match.
type Suggestion struct {
	Word    string
	Rank    int
	Reading string
	Known   bool
}

// Index holds the prefix trie over table words.
type Index struct {
	trie *patricia.Trie
}

// NewIndex builds the trie from a loaded table. Duplicate words keep
// their best (lowest) rank, since the table does not guarantee word
// uniqueness.
func NewIndex(t *vocab.Table) *Index {
	trie := patricia.NewTrie()
	for _, r := range t.Records() {
		key := patricia.Prefix(r.Word)
		if existing := trie.Get(key); existing != nil {
			if existing.(vocab.Record).Rank <= r.Rank {
				continue
			}
		}
		trie.Insert(key, r)
	}
	log.Debugf("Prefix index built over %d words", t.Len())
	return &Index{trie: trie}
}

// Complete returns up to limit words starting with prefix, best rank
// first. An empty prefix yields no suggestions; limit <= 0 means no cap.
func (ix *Index) Complete(prefix string, limit int) []Suggestion {
	if prefix == "" {
		return nil
	}

	var suggestions []Suggestion
	err := ix.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		r, ok := item.(vocab.Record)
		if !ok {
			log.Errorf("Unknown item type %T for word %s", item, p)
			return nil
		}
		suggestions = append(suggestions, Suggestion{
			Word:    r.Word,
			Rank:    r.Rank,
			Reading: r.Reading,
			Known:   r.Known,
		})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].Rank < suggestions[j].Rank
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
