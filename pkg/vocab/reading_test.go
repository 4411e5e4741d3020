package vocab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnnotatorReading(t *testing.T) {
	annotator, err := NewAnnotator()
	require.NoError(t, err)

	require.Equal(t, "トウキョウ", annotator.Reading("東京"))

	// words without a dictionary reading fall back to their surface form
	require.Equal(t, "xyzzy", annotator.Reading("xyzzy"))
}

func TestAnnotateFillsEveryRecord(t *testing.T) {
	annotator, err := NewAnnotator()
	require.NoError(t, err)

	table := NewTableFromWords([]string{"日本", "食べる", "の"}, NewKnownSet())
	annotator.Annotate(table)

	for _, r := range table.Records() {
		require.NotEmpty(t, r.Reading, "word %s", r.Word)
	}

	// annotation is display-only: rank, word and known flags untouched
	require.Equal(t, "日本", table.At(0).Word)
	require.Equal(t, 1, table.At(0).Rank)
}
