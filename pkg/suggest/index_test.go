package suggest

import (
	"testing"

	"github.com/kirisagi/jpfreq/pkg/vocab"
)

func testIndex() *Index {
	known := vocab.NewKnownSet()
	known.Add("日本")
	table := vocab.NewTableFromWords([]string{"の", "日本", "日本語", "日曜日", "食べる"}, known)
	return NewIndex(table)
}

func TestCompletePrefixMatch(t *testing.T) {
	ix := testIndex()

	testCases := []struct {
		prefix   string
		limit    int
		expected []string
	}{
		{"日本", 10, []string{"日本", "日本語"}},
		{"日", 10, []string{"日本", "日本語", "日曜日"}},
		{"日", 2, []string{"日本", "日本語"}},
		{"食", 10, []string{"食べる"}},
		{"猫", 10, nil},
		{"", 10, nil},
	}

	for _, tc := range testCases {
		got := ix.Complete(tc.prefix, tc.limit)
		if len(got) != len(tc.expected) {
			t.Errorf("Complete(%q, %d): got %d suggestions, want %d", tc.prefix, tc.limit, len(got), len(tc.expected))
			continue
		}
		for i, want := range tc.expected {
			if got[i].Word != want {
				t.Errorf("Complete(%q, %d): suggestion %d = %q, want %q", tc.prefix, tc.limit, i, got[i].Word, want)
			}
		}
	}
}

func TestCompleteOrderedByRank(t *testing.T) {
	ix := testIndex()

	got := ix.Complete("日", 10)
	prev := 0
	for _, s := range got {
		if s.Rank <= prev {
			t.Fatalf("suggestions not in rank order: %d after %d", s.Rank, prev)
		}
		prev = s.Rank
	}
}

func TestCompleteCarriesKnownFlag(t *testing.T) {
	ix := testIndex()

	got := ix.Complete("日本", 10)
	if len(got) == 0 || got[0].Word != "日本" {
		t.Fatalf("unexpected suggestions: %v", got)
	}
	if !got[0].Known {
		t.Error("日本 should carry the known flag")
	}
	if got[1].Known {
		t.Error("日本語 should not carry the known flag")
	}
}

func TestIndexDuplicateWordsKeepBestRank(t *testing.T) {
	table := vocab.NewTableFromWords([]string{"日本", "の", "日本"}, vocab.NewKnownSet())
	ix := NewIndex(table)

	got := ix.Complete("日本", 10)
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if got[0].Rank != 1 {
		t.Errorf("duplicate word kept rank %d, want 1", got[0].Rank)
	}
}
