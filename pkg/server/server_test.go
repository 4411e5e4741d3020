package server

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/kirisagi/jpfreq/pkg/config"
	"github.com/kirisagi/jpfreq/pkg/suggest"
	"github.com/kirisagi/jpfreq/pkg/vocab"
)

// runServer feeds the encoded requests through a server over an
// in-memory table and returns a decoder positioned at the first
// response (after the ready status).
func runServer(t *testing.T, cfg *config.Config, requests ...Request) *msgpack.Decoder {
	t.Helper()

	known := vocab.NewKnownSet()
	known.Add("日本")
	table := vocab.NewTableFromWords([]string{"の", "日本", "食べる", "日本語"}, known)
	index := suggest.NewIndex(table)

	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		require.NoError(t, enc.Encode(req))
	}

	srv := NewServerIO(table, index, cfg, &in, &out)
	require.NoError(t, srv.Start(), "server must exit cleanly at EOF")

	dec := msgpack.NewDecoder(&out)
	var ready map[string]string
	require.NoError(t, dec.Decode(&ready))
	require.Equal(t, "ready", ready["status"])
	return dec
}

func TestServerFilter(t *testing.T) {
	dec := runServer(t, config.DefaultConfig(),
		Request{ID: "f1", Op: "filter", Term: "る", Highlight: true})

	var resp FilterResponse
	require.NoError(t, dec.Decode(&resp))
	require.Equal(t, "f1", resp.ID)
	require.Equal(t, 1, resp.Count)
	require.Len(t, resp.Rows, 1)
	require.Equal(t, "食べる", resp.Rows[0].Word)
	require.Equal(t, 3, resp.Rows[0].Rank)
	require.False(t, resp.Rows[0].Known)
	require.Equal(t, "Showing 1 words", resp.Label)
}

func TestServerFilterEmptyTermReturnsAll(t *testing.T) {
	dec := runServer(t, config.DefaultConfig(),
		Request{ID: "f2", Op: "filter"})

	var resp FilterResponse
	require.NoError(t, dec.Decode(&resp))
	require.Equal(t, 4, resp.Count)
	require.Len(t, resp.Rows, 4)
	require.Equal(t, "Showing 4 words", resp.Label)
}

func TestServerFilterHighlightGatesKnownFlag(t *testing.T) {
	dec := runServer(t, config.DefaultConfig(),
		Request{ID: "on", Op: "filter", Term: "日本", Highlight: true},
		Request{ID: "off", Op: "filter", Term: "日本", Highlight: false})

	var on, off FilterResponse
	require.NoError(t, dec.Decode(&on))
	require.NoError(t, dec.Decode(&off))

	// identical row sets, differing only in the display flag
	require.Equal(t, on.Count, off.Count)
	require.True(t, on.Rows[0].Known)
	for _, row := range off.Rows {
		require.False(t, row.Known)
	}
}

func TestServerFilterNoMatchIsNotAnError(t *testing.T) {
	dec := runServer(t, config.DefaultConfig(),
		Request{ID: "f3", Op: "filter", Term: "存在しない"})

	var resp FilterResponse
	require.NoError(t, dec.Decode(&resp))
	require.Equal(t, 0, resp.Count)
	require.Empty(t, resp.Rows)
	require.Equal(t, "Showing 0 words", resp.Label)
}

func TestServerFilterMaxResultsCapsRowsNotCount(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxResults = 2
	dec := runServer(t, cfg, Request{ID: "f4", Op: "filter"})

	var resp FilterResponse
	require.NoError(t, dec.Decode(&resp))
	require.Len(t, resp.Rows, 2)
	require.Equal(t, 4, resp.Count, "count reports all matches")
}

func TestServerComplete(t *testing.T) {
	dec := runServer(t, config.DefaultConfig(),
		Request{ID: "c1", Op: "complete", Term: "日本", Limit: 10})

	var resp CompleteResponse
	require.NoError(t, dec.Decode(&resp))
	require.Equal(t, "c1", resp.ID)
	require.Equal(t, 2, resp.Count)
	require.Equal(t, "日本", resp.Rows[0].Word)
	require.Equal(t, "日本語", resp.Rows[1].Word)
}

func TestServerCompleteMissingTerm(t *testing.T) {
	dec := runServer(t, config.DefaultConfig(),
		Request{ID: "c2", Op: "complete"})

	var resp ErrorResponse
	require.NoError(t, dec.Decode(&resp))
	require.Equal(t, "c2", resp.ID)
	require.Equal(t, 400, resp.Code)
}

func TestServerInfo(t *testing.T) {
	dec := runServer(t, config.DefaultConfig(),
		Request{ID: "i1", Op: "info"})

	var resp InfoResponse
	require.NoError(t, dec.Decode(&resp))
	require.Equal(t, "ok", resp.Status)
	require.Equal(t, 4, resp.TotalWords)
	require.Equal(t, 1, resp.KnownWords)
}

func TestServerUnknownOp(t *testing.T) {
	dec := runServer(t, config.DefaultConfig(),
		Request{ID: "x1", Op: "bogus"})

	var resp ErrorResponse
	require.NoError(t, dec.Decode(&resp))
	require.Equal(t, "x1", resp.ID)
	require.Equal(t, 400, resp.Code)
}

func TestServerTermTooLong(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxTermLength = 4
	dec := runServer(t, cfg,
		Request{ID: "t1", Op: "filter", Term: "日本語辞書"})

	var resp ErrorResponse
	require.NoError(t, dec.Decode(&resp))
	require.Equal(t, 400, resp.Code)
}

func TestServerStopsAtEOF(t *testing.T) {
	table := vocab.NewTableFromWords(nil, vocab.NewKnownSet())
	srv := NewServerIO(table, suggest.NewIndex(table), config.DefaultConfig(),
		bytes.NewReader(nil), io.Discard)
	require.NoError(t, srv.Start())
}
